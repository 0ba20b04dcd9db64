package itineraryattraction

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// CreateLinkRequest - запрос на привязку достопримечательности к маршруту
type CreateLinkRequest struct {
	ItineraryID  int64 `json:"itinerary_id"`
	AttractionID int   `json:"attraction_id"`
}

// Service содержит бизнес-логику работы со связями маршрут-достопримечательность
type Service struct {
	linkRepo       repository.ItineraryAttractionRepository
	itineraryRepo  repository.ItineraryRepository
	attractionRepo repository.AttractionRepository
	logger         logger.Logger
}

// NewService создает новый экземпляр ItineraryAttractionService
func NewService(
	linkRepo repository.ItineraryAttractionRepository,
	itineraryRepo repository.ItineraryRepository,
	attractionRepo repository.AttractionRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		linkRepo:       linkRepo,
		itineraryRepo:  itineraryRepo,
		attractionRepo: attractionRepo,
		logger:         logger,
	}
}

// CreateLink вставляет одну join-строку. Оба внешних id должны существовать,
// дубликат пары (itinerary, attraction) - конфликт.
func (s *Service) CreateLink(ctx context.Context, req *CreateLinkRequest) (*domain.ItineraryAttraction, error) {
	link := &domain.ItineraryAttraction{
		ItineraryID:  req.ItineraryID,
		AttractionID: req.AttractionID,
	}

	if err := link.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.itineraryRepo.GetByID(ctx, req.ItineraryID); err != nil {
		if errors.Is(err, domain.ErrItineraryNotFound) {
			return nil, domain.ErrItineraryNotFound
		}
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}

	if _, err := s.attractionRepo.GetByID(ctx, req.AttractionID); err != nil {
		if errors.Is(err, domain.ErrAttractionNotFound) {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, fmt.Errorf("failed to get attraction: %w", err)
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		if errors.Is(err, domain.ErrItineraryAttractionAlreadyExists) {
			s.logger.Warn("Duplicate itinerary-attraction link", map[string]interface{}{
				"itinerary_id":  req.ItineraryID,
				"attraction_id": req.AttractionID,
			})
			return nil, domain.ErrItineraryAttractionAlreadyExists
		}
		s.logger.Error("Failed to create itinerary-attraction link", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return link, nil
}

// GetAllLinks возвращает все связи; клиент восстанавливает по ним
// состав каждого маршрута
func (s *Service) GetAllLinks(ctx context.Context) ([]*domain.ItineraryAttraction, error) {
	return s.linkRepo.GetAll(ctx)
}

// DeleteByAttractionID массово удаляет все связи достопримечательности.
// Обязательный шаг перед удалением самой достопримечательности.
func (s *Service) DeleteByAttractionID(ctx context.Context, attractionID int) error {
	if err := s.linkRepo.DeleteByAttractionID(ctx, attractionID); err != nil {
		return err
	}

	s.logger.Info("Itinerary-attraction links removed", map[string]interface{}{
		"attraction_id": attractionID,
	})

	return nil
}
