package services

import (
	"context"
	"net/http"

	"fintrack/internal/constants"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/utils"

	"go.uber.org/zap"
)

const initDatabaseLockKey = "init-database"

// DatabaseAdmin is the subset of the store handle used for health and setup.
type DatabaseAdmin interface {
	Ping(ctx context.Context) error
	EnsureCollection(ctx context.Context, name string) error
}

// Locker serializes first-time initialization.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type AdminCredentials struct {
	Username string
	Password string
}

type DatabaseService interface {
	TestConnection(ctx context.Context) (uint, error)
	InitDatabase(ctx context.Context) (uint, error)
}

type databaseService struct {
	db       DatabaseAdmin
	userRepo repositories.UserRepository
	locker   Locker
	admin    AdminCredentials
	logger   *zap.Logger
}

func NewDatabaseService(db DatabaseAdmin, userRepo repositories.UserRepository, locker Locker, admin AdminCredentials, logger *zap.Logger) DatabaseService {
	return &databaseService{
		db:       db,
		userRepo: userRepo,
		locker:   locker,
		admin:    admin,
		logger:   logger,
	}
}

func (s *databaseService) TestConnection(ctx context.Context) (uint, error) {
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("DatabaseService -> TestConnection -> ping failed", zap.Error(err))
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

// InitDatabase creates the collections and seeds a default admin when no user
// holds the admin role. Safe to call repeatedly.
func (s *databaseService) InitDatabase(ctx context.Context) (uint, error) {
	for _, name := range constants.Collections {
		if err := s.db.EnsureCollection(ctx, name); err != nil {
			s.logger.Error("DatabaseService -> InitDatabase -> create collection failed", zap.String("collection", name), zap.Error(err))
			return http.StatusInternalServerError, err
		}
	}

	unlock, err := s.locker.Lock(ctx, initDatabaseLockKey)
	if err != nil {
		s.logger.Error("DatabaseService -> InitDatabase -> lock failed", zap.Error(err))
		return http.StatusInternalServerError, err
	}
	defer unlock()

	exists, err := s.userRepo.ExistsByRole(ctx, constants.RoleAdmin)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if exists {
		s.logger.Debug("DatabaseService -> InitDatabase -> admin already present")
		return http.StatusOK, nil
	}

	hashedPassword, err := utils.HashPassword(s.admin.Password)
	if err != nil {
		return http.StatusInternalServerError, err
	}

	admin := models.NewUser(s.admin.Username, hashedPassword, constants.RoleAdmin)
	if err := s.userRepo.Create(ctx, admin); err != nil {
		s.logger.Error("DatabaseService -> InitDatabase -> admin insert failed", zap.Error(err))
		return http.StatusInternalServerError, err
	}

	s.logger.Info("DatabaseService -> InitDatabase -> default admin created", zap.String("username", admin.Username))
	return http.StatusOK, nil
}
