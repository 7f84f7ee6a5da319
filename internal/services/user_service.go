package services

import (
	"context"
	"net/http"

	"fintrack/internal/apis/dtos"
	"fintrack/internal/constants"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) ([]models.UserSummary, uint, error)
	InsertMany(ctx context.Context, docs []bson.M) (*dtos.InsertManyResponse, uint, error)
	ReplaceAll(ctx context.Context, docs []bson.M) (uint, error)
	Create(ctx context.Context, req *dtos.CreateUserRequest) (*dtos.CreateUserResponse, uint, error)
	Delete(ctx context.Context, id string) (uint, error)
	Login(ctx context.Context, req *dtos.LoginRequest) (bson.M, uint, error)
}

type userService struct {
	userRepo  repositories.UserRepository
	documents DocumentService
	logger    *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepo:  userRepo,
		documents: NewDocumentService(userRepo, constants.CollectionUsers, logger),
		logger:    logger,
	}
}

// List returns every user reduced to id, username and role.
func (s *userService) List(ctx context.Context) ([]models.UserSummary, uint, error) {
	docs, statusCode, err := s.documents.List(ctx)
	if err != nil {
		return nil, statusCode, err
	}

	users := make([]models.UserSummary, 0, len(docs))
	for _, doc := range docs {
		users = append(users, models.SummaryFromDocument(doc))
	}
	return users, http.StatusOK, nil
}

func (s *userService) InsertMany(ctx context.Context, docs []bson.M) (*dtos.InsertManyResponse, uint, error) {
	return s.documents.InsertMany(ctx, docs)
}

func (s *userService) ReplaceAll(ctx context.Context, docs []bson.M) (uint, error) {
	return s.documents.ReplaceAll(ctx, docs)
}

func (s *userService) Create(ctx context.Context, req *dtos.CreateUserRequest) (*dtos.CreateUserResponse, uint, error) {
	password := req.Password
	if password != "" {
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		password = hashedPassword
	}

	user := models.NewUser(req.Username, password, req.Role)
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("UserService -> Create -> insert failed", zap.String("username", req.Username), zap.Error(err))
		return nil, http.StatusInternalServerError, err
	}

	s.logger.Info("UserService -> Create -> user created",
		zap.String("id", user.ID.Hex()),
		zap.String("role", user.Role),
	)
	return &dtos.CreateUserResponse{
		Success: true,
		User:    user.Summary(),
	}, http.StatusOK, nil
}

func (s *userService) Delete(ctx context.Context, id string) (uint, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return http.StatusInternalServerError, constants.ErrInvalidUserID
	}

	deleted, err := s.userRepo.DeleteByID(ctx, objectID)
	if err != nil {
		s.logger.Error("UserService -> Delete -> delete failed", zap.String("id", id), zap.Error(err))
		return http.StatusInternalServerError, err
	}
	if deleted == 0 {
		return http.StatusNotFound, constants.ErrUserNotFound
	}
	return http.StatusOK, nil
}

// Login returns the stored user minus its password. Unknown usernames and wrong
// passwords produce the same error.
func (s *userService) Login(ctx context.Context, req *dtos.LoginRequest) (bson.M, uint, error) {
	if req.Username == "" || req.Password == "" {
		return nil, http.StatusBadRequest, constants.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("UserService -> Login -> lookup failed", zap.Error(err))
		return nil, http.StatusInternalServerError, err
	}
	if user == nil {
		return nil, http.StatusUnauthorized, constants.ErrInvalidCredentials
	}

	stored, _ := user[constants.FieldPassword].(string)
	if !utils.CheckPasswordHash(req.Password, stored) {
		return nil, http.StatusUnauthorized, constants.ErrInvalidCredentials
	}

	return models.WithoutPassword(user), http.StatusOK, nil
}
