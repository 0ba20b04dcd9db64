package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/transport"
)

// TransportService определяет интерфейс для сервиса транспорта
type TransportService interface {
	CreateTransport(ctx context.Context, req *transport.CreateTransportRequest) (*domain.Transport, error)
	GetTransportByID(ctx context.Context, id int) (*domain.Transport, error)
	GetAllTransports(ctx context.Context) ([]*domain.Transport, error)
	UpdateTransport(ctx context.Context, req *transport.UpdateTransportRequest) (*domain.Transport, error)
	DeleteTransport(ctx context.Context, id int) error
}

// TransportHandler обрабатывает запросы связанные с транспортом
type TransportHandler struct {
	transportService TransportService
	logger           logger.Logger
}

// NewTransportHandler создает новый handler
func NewTransportHandler(transportService TransportService, logger logger.Logger) *TransportHandler {
	return &TransportHandler{
		transportService: transportService,
		logger:           logger,
	}
}

// CreateTransport создает новый транспорт
// POST /api/transport
func (h *TransportHandler) CreateTransport(w http.ResponseWriter, r *http.Request) {
	var req transport.CreateTransportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.transportService.CreateTransport(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    t,
	})
}

// GetTransportByID возвращает транспорт по ID
// GET /api/transport/{id}
func (h *TransportHandler) GetTransportByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transport ID")
		return
	}

	t, err := h.transportService.GetTransportByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    t,
	})
}

// GetAllTransports возвращает весь транспорт
// GET /api/transport
func (h *TransportHandler) GetAllTransports(w http.ResponseWriter, r *http.Request) {
	transports, err := h.transportService.GetAllTransports(r.Context())
	if err != nil {
		h.logger.Error("Failed to get transports", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get transports")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transports,
	})
}

// UpdateTransport полностью заменяет строку транспорта (id в теле запроса)
// PUT /api/transport
func (h *TransportHandler) UpdateTransport(w http.ResponseWriter, r *http.Request) {
	var req transport.UpdateTransportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.transportService.UpdateTransport(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    t,
	})
}

// DeleteTransport удаляет транспорт
// DELETE /api/transport/{id}
func (h *TransportHandler) DeleteTransport(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transport ID")
		return
	}

	if err := h.transportService.DeleteTransport(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
