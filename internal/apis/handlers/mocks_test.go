package handlers_test

import (
	"context"

	"fintrack/internal/apis/dtos"
	"fintrack/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context) ([]bson.M, uint, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]bson.M)
	return docs, args.Get(1).(uint), args.Error(2)
}

func (m *MockDocumentService) InsertMany(ctx context.Context, docs []bson.M) (*dtos.InsertManyResponse, uint, error) {
	args := m.Called(ctx, docs)
	resp, _ := args.Get(0).(*dtos.InsertManyResponse)
	return resp, args.Get(1).(uint), args.Error(2)
}

func (m *MockDocumentService) ReplaceAll(ctx context.Context, docs []bson.M) (uint, error) {
	args := m.Called(ctx, docs)
	return args.Get(0).(uint), args.Error(1)
}

type MockUserService struct {
	MockDocumentService
}

func (m *MockUserService) List(ctx context.Context) ([]models.UserSummary, uint, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.UserSummary)
	return users, args.Get(1).(uint), args.Error(2)
}

func (m *MockUserService) Create(ctx context.Context, req *dtos.CreateUserRequest) (*dtos.CreateUserResponse, uint, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dtos.CreateUserResponse)
	return resp, args.Get(1).(uint), args.Error(2)
}

func (m *MockUserService) Delete(ctx context.Context, id string) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dtos.LoginRequest) (bson.M, uint, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(bson.M)
	return user, args.Get(1).(uint), args.Error(2)
}

type MockDatabaseService struct {
	mock.Mock
}

func (m *MockDatabaseService) TestConnection(ctx context.Context) (uint, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockDatabaseService) InitDatabase(ctx context.Context) (uint, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint), args.Error(1)
}
