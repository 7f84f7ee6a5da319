package services_test

import (
	"context"

	"fintrack/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]bson.M)
	return docs, args.Error(1)
}

func (m *MockUserRepository) InsertMany(ctx context.Context, docs []bson.M) (int, error) {
	args := m.Called(ctx, docs)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ReplaceAll(ctx context.Context, docs []bson.M) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (bson.M, error) {
	args := m.Called(ctx, username)
	doc, _ := args.Get(0).(bson.M)
	return doc, args.Error(1)
}

func (m *MockUserRepository) ExistsByRole(ctx context.Context, role string) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockDatabaseAdmin struct {
	mock.Mock
}

func (m *MockDatabaseAdmin) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDatabaseAdmin) EnsureCollection(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

type MockLocker struct {
	mock.Mock
	released int
}

func (m *MockLocker) Lock(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func() { m.released++ }, nil
}
