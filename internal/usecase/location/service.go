package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// CreateLocationRequest - запрос на создание локации
type CreateLocationRequest struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// Service содержит бизнес-логику работы с локациями
type Service struct {
	locationRepo repository.LocationRepository
	logger       logger.Logger
}

// NewService создает новый экземпляр LocationService
func NewService(locationRepo repository.LocationRepository, logger logger.Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// CreateLocation создает новую локацию. Повторная пара (country, city)
// возвращает конфликт - валидация выполняется до записи.
func (s *Service) CreateLocation(ctx context.Context, req *CreateLocationRequest) (*domain.Location, error) {
	location := &domain.Location{
		Country: req.Country,
		City:    req.City,
	}

	if err := location.Validate(); err != nil {
		return nil, err
	}

	// Проверяем, что такая пара еще не зарегистрирована
	existing, err := s.locationRepo.FindByCountryAndCity(ctx, req.Country, req.City)
	if err != nil && !errors.Is(err, domain.ErrLocationNotFound) {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}
	if existing != nil {
		s.logger.Warn("Location already exists", map[string]interface{}{
			"country": req.Country,
			"city":    req.City,
		})
		return nil, domain.ErrLocationAlreadyExists
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		s.logger.Error("Failed to create location", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Location created", map[string]interface{}{
		"location_id": location.ID,
		"country":     location.Country,
		"city":        location.City,
	})

	return location, nil
}

// GetAllLocations возвращает все локации
func (s *Service) GetAllLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.locationRepo.GetAll(ctx)
}

// FindByCountryAndCity возвращает локацию по точному совпадению пары
func (s *Service) FindByCountryAndCity(ctx context.Context, country, city string) (*domain.Location, error) {
	return s.locationRepo.FindByCountryAndCity(ctx, country, city)
}

// DeleteLocation удаляет локацию вместе с зависимыми достопримечательностями
// и маршрутами. Операция деструктивная и необратимая.
func (s *Service) DeleteLocation(ctx context.Context, id int) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Location deleted with dependents", map[string]interface{}{
		"location_id": id,
	})

	return nil
}
