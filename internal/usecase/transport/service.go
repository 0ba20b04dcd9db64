package transport

import (
	"context"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// CreateTransportRequest - запрос на создание транспорта
type CreateTransportRequest struct {
	Type  domain.TransportType `json:"type"`
	Price float64              `json:"price"`
}

// UpdateTransportRequest - запрос на полную замену строки транспорта
type UpdateTransportRequest struct {
	ID    int                  `json:"id"`
	Type  domain.TransportType `json:"type"`
	Price float64              `json:"price"`
}

// Service содержит бизнес-логику работы с транспортом
type Service struct {
	transportRepo repository.TransportRepository
	logger        logger.Logger
}

// NewService создает новый экземпляр TransportService
func NewService(transportRepo repository.TransportRepository, logger logger.Logger) *Service {
	return &Service{
		transportRepo: transportRepo,
		logger:        logger,
	}
}

// CreateTransport создает новый транспорт
func (s *Service) CreateTransport(ctx context.Context, req *CreateTransportRequest) (*domain.Transport, error) {
	transport := &domain.Transport{
		Type:  req.Type,
		Price: req.Price,
	}

	if err := transport.Validate(); err != nil {
		return nil, err
	}

	if err := s.transportRepo.Create(ctx, transport); err != nil {
		s.logger.Error("Failed to create transport", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transport created", map[string]interface{}{
		"transport_id": transport.ID,
		"type":         transport.Type,
	})

	return transport, nil
}

// GetTransportByID возвращает транспорт по ID
func (s *Service) GetTransportByID(ctx context.Context, id int) (*domain.Transport, error) {
	return s.transportRepo.GetByID(ctx, id)
}

// GetAllTransports возвращает весь транспорт
func (s *Service) GetAllTransports(ctx context.Context) ([]*domain.Transport, error) {
	return s.transportRepo.GetAll(ctx)
}

// UpdateTransport полностью заменяет строку транспорта по id
func (s *Service) UpdateTransport(ctx context.Context, req *UpdateTransportRequest) (*domain.Transport, error) {
	transport := &domain.Transport{
		ID:    req.ID,
		Type:  req.Type,
		Price: req.Price,
	}

	if err := transport.Validate(); err != nil {
		return nil, err
	}

	if err := s.transportRepo.Update(ctx, transport); err != nil {
		return nil, err
	}

	return transport, nil
}

// DeleteTransport удаляет транспорт по id
func (s *Service) DeleteTransport(ctx context.Context, id int) error {
	return s.transportRepo.Delete(ctx, id)
}
