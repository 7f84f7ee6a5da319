package repositories

import (
	"context"

	"fintrack/internal/constants"
	"fintrack/internal/models"
	"fintrack/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	DocumentRepository
	FindByUsername(ctx context.Context, username string) (bson.M, error)
	ExistsByRole(ctx context.Context, role string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type userRepository struct {
	*documentRepository
}

func NewUserRepository(mongoClient *mongodb.MongoDBClient) UserRepository {
	return &userRepository{
		documentRepository: newDocumentRepository(mongoClient.GetCollectionByName(constants.CollectionUsers), mongoClient),
	}
}

// FindByUsername returns the raw user document, or nil when no user matches.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (bson.M, error) {
	var user bson.M
	err := r.collection.FindOne(ctx, bson.M{constants.FieldUsername: username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) ExistsByRole(ctx context.Context, role string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{constants.FieldID: 1})
	err := r.collection.FindOne(ctx, bson.M{constants.FieldRole: role}, opts).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *userRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{constants.FieldID: id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
