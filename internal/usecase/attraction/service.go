package attraction

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// CreateAttractionRequest - запрос на создание достопримечательности
type CreateAttractionRequest struct {
	LocationID int     `json:"location_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

// Service содержит бизнес-логику работы с достопримечательностями
type Service struct {
	attractionRepo repository.AttractionRepository
	locationRepo   repository.LocationRepository
	logger         logger.Logger
}

// NewService создает новый экземпляр AttractionService
func NewService(
	attractionRepo repository.AttractionRepository,
	locationRepo repository.LocationRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		attractionRepo: attractionRepo,
		locationRepo:   locationRepo,
		logger:         logger,
	}
}

// CreateAttraction создает новую достопримечательность
func (s *Service) CreateAttraction(ctx context.Context, req *CreateAttractionRequest) (*domain.Attraction, error) {
	attraction := &domain.Attraction{
		LocationID: req.LocationID,
		Name:       req.Name,
		Price:      req.Price,
	}

	if err := attraction.Validate(); err != nil {
		return nil, err
	}

	// Локация должна существовать
	location, err := s.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if err := s.attractionRepo.Create(ctx, attraction); err != nil {
		s.logger.Error("Failed to create attraction", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	attraction.Location = location

	s.logger.Info("Attraction created", map[string]interface{}{
		"attraction_id": attraction.ID,
		"location_id":   attraction.LocationID,
		"name":          attraction.Name,
	})

	return attraction, nil
}

// GetAllAttractions возвращает все достопримечательности
func (s *Service) GetAllAttractions(ctx context.Context) ([]*domain.Attraction, error) {
	return s.attractionRepo.GetAll(ctx)
}

// DeleteAttraction удаляет достопримечательность. Репозиторий сначала
// зачищает join-строки itinerary_attraction, затем удаляет саму строку -
// оба шага в одной транзакции.
func (s *Service) DeleteAttraction(ctx context.Context, id int) error {
	if err := s.attractionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Attraction deleted", map[string]interface{}{
		"attraction_id": id,
	})

	return nil
}
