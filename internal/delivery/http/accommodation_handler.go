package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/accommodation"
)

// AccommodationService определяет интерфейс для сервиса жилья
type AccommodationService interface {
	CreateAccommodation(ctx context.Context, req *accommodation.CreateAccommodationRequest) (*domain.Accommodation, error)
	GetAccommodationByID(ctx context.Context, id int) (*domain.Accommodation, error)
	GetAllAccommodations(ctx context.Context) ([]*domain.Accommodation, error)
	UpdateAccommodation(ctx context.Context, req *accommodation.UpdateAccommodationRequest) (*domain.Accommodation, error)
	DeleteAccommodation(ctx context.Context, id int) error
}

// AccommodationHandler обрабатывает запросы связанные с жильем
type AccommodationHandler struct {
	accommodationService AccommodationService
	logger               logger.Logger
}

// NewAccommodationHandler создает новый handler
func NewAccommodationHandler(accommodationService AccommodationService, logger logger.Logger) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationService: accommodationService,
		logger:               logger,
	}
}

// CreateAccommodation создает новое жилье
// POST /api/accommodation
func (h *AccommodationHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var req accommodation.CreateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.accommodationService.CreateAccommodation(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    a,
	})
}

// GetAccommodationByID возвращает жилье по ID
// GET /api/accommodation/{id}
func (h *AccommodationHandler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	a, err := h.accommodationService.GetAccommodationByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    a,
	})
}

// GetAllAccommodations возвращает все жилье
// GET /api/accommodation
func (h *AccommodationHandler) GetAllAccommodations(w http.ResponseWriter, r *http.Request) {
	accommodations, err := h.accommodationService.GetAllAccommodations(r.Context())
	if err != nil {
		h.logger.Error("Failed to get accommodations", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get accommodations")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    accommodations,
	})
}

// UpdateAccommodation полностью заменяет строку жилья (id в теле запроса)
// PUT /api/accommodation
func (h *AccommodationHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	var req accommodation.UpdateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.accommodationService.UpdateAccommodation(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    a,
	})
}

// DeleteAccommodation удаляет жилье
// DELETE /api/accommodation/{id}
func (h *AccommodationHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	if err := h.accommodationService.DeleteAccommodation(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
