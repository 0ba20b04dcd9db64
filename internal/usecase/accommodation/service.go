package accommodation

import (
	"context"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// CreateAccommodationRequest - запрос на создание жилья
type CreateAccommodationRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
}

// UpdateAccommodationRequest - запрос на полную замену строки жилья
type UpdateAccommodationRequest struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
}

// Service содержит бизнес-логику работы с жильем
type Service struct {
	accommodationRepo repository.AccommodationRepository
	logger            logger.Logger
}

// NewService создает новый экземпляр AccommodationService
func NewService(accommodationRepo repository.AccommodationRepository, logger logger.Logger) *Service {
	return &Service{
		accommodationRepo: accommodationRepo,
		logger:            logger,
	}
}

// CreateAccommodation создает новое жилье
func (s *Service) CreateAccommodation(ctx context.Context, req *CreateAccommodationRequest) (*domain.Accommodation, error) {
	accommodation := &domain.Accommodation{
		Name:    req.Name,
		Address: req.Address,
		Price:   req.Price,
	}

	if err := accommodation.Validate(); err != nil {
		return nil, err
	}

	if err := s.accommodationRepo.Create(ctx, accommodation); err != nil {
		s.logger.Error("Failed to create accommodation", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Accommodation created", map[string]interface{}{
		"accommodation_id": accommodation.ID,
		"name":             accommodation.Name,
	})

	return accommodation, nil
}

// GetAccommodationByID возвращает жилье по ID
func (s *Service) GetAccommodationByID(ctx context.Context, id int) (*domain.Accommodation, error) {
	return s.accommodationRepo.GetByID(ctx, id)
}

// GetAllAccommodations возвращает все жилье
func (s *Service) GetAllAccommodations(ctx context.Context) ([]*domain.Accommodation, error) {
	return s.accommodationRepo.GetAll(ctx)
}

// UpdateAccommodation полностью заменяет строку жилья по id
func (s *Service) UpdateAccommodation(ctx context.Context, req *UpdateAccommodationRequest) (*domain.Accommodation, error) {
	accommodation := &domain.Accommodation{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Price:   req.Price,
	}

	if err := accommodation.Validate(); err != nil {
		return nil, err
	}

	if err := s.accommodationRepo.Update(ctx, accommodation); err != nil {
		return nil, err
	}

	return accommodation, nil
}

// DeleteAccommodation удаляет жилье по id
func (s *Service) DeleteAccommodation(ctx context.Context, id int) error {
	return s.accommodationRepo.Delete(ctx, id)
}
