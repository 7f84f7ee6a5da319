package services

import (
	"context"
	"net/http"

	"fintrack/internal/apis/dtos"
	"fintrack/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DocumentService exposes list, bulk insert and replace-all over one collection.
type DocumentService interface {
	List(ctx context.Context) ([]bson.M, uint, error)
	InsertMany(ctx context.Context, docs []bson.M) (*dtos.InsertManyResponse, uint, error)
	ReplaceAll(ctx context.Context, docs []bson.M) (uint, error)
}

type documentService struct {
	repo       repositories.DocumentRepository
	collection string
	logger     *zap.Logger
}

func NewDocumentService(repo repositories.DocumentRepository, collection string, logger *zap.Logger) DocumentService {
	return &documentService{
		repo:       repo,
		collection: collection,
		logger:     logger,
	}
}

func (s *documentService) List(ctx context.Context) ([]bson.M, uint, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("DocumentService -> List -> find failed", zap.String("collection", s.collection), zap.Error(err))
		return nil, http.StatusInternalServerError, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, http.StatusOK, nil
}

func (s *documentService) InsertMany(ctx context.Context, docs []bson.M) (*dtos.InsertManyResponse, uint, error) {
	count, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		s.logger.Error("DocumentService -> InsertMany -> insert failed", zap.String("collection", s.collection), zap.Error(err))
		return nil, http.StatusInternalServerError, err
	}

	s.logger.Debug("DocumentService -> InsertMany -> inserted",
		zap.String("collection", s.collection),
		zap.Int("count", count),
	)
	return &dtos.InsertManyResponse{
		Success:       true,
		InsertedCount: count,
	}, http.StatusOK, nil
}

func (s *documentService) ReplaceAll(ctx context.Context, docs []bson.M) (uint, error) {
	if err := s.repo.ReplaceAll(ctx, docs); err != nil {
		s.logger.Error("DocumentService -> ReplaceAll -> replace failed",
			zap.String("collection", s.collection),
			zap.Int("count", len(docs)),
			zap.Error(err),
		)
		return http.StatusInternalServerError, err
	}

	s.logger.Info("DocumentService -> ReplaceAll -> collection replaced",
		zap.String("collection", s.collection),
		zap.Int("count", len(docs)),
	)
	return http.StatusOK, nil
}
