package user

import (
	"context"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// CreateUserRequest - запрос на создание пользователя
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Service содержит бизнес-логику работы с пользователями
type Service struct {
	userRepo repository.UserRepository
	logger   logger.Logger
}

// NewService создает новый экземпляр UserService
func NewService(userRepo repository.UserRepository, logger logger.Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser создает нового пользователя
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User created", map[string]interface{}{
		"user_id": user.ID,
	})

	return user, nil
}

// GetUserByID возвращает пользователя по ID
func (s *Service) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers возвращает всех пользователей
func (s *Service) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
