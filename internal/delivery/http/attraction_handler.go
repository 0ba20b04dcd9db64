package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/attraction"
)

// AttractionService определяет интерфейс для сервиса достопримечательностей
type AttractionService interface {
	CreateAttraction(ctx context.Context, req *attraction.CreateAttractionRequest) (*domain.Attraction, error)
	GetAllAttractions(ctx context.Context) ([]*domain.Attraction, error)
	DeleteAttraction(ctx context.Context, id int) error
}

// AttractionHandler обрабатывает запросы связанные с достопримечательностями
type AttractionHandler struct {
	attractionService AttractionService
	logger            logger.Logger
}

// NewAttractionHandler создает новый handler
func NewAttractionHandler(attractionService AttractionService, logger logger.Logger) *AttractionHandler {
	return &AttractionHandler{
		attractionService: attractionService,
		logger:            logger,
	}
}

// CreateAttraction создает новую достопримечательность
// POST /api/attraction
func (h *AttractionHandler) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	var req attraction.CreateAttractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.attractionService.CreateAttraction(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    a,
	})
}

// GetAllAttractions возвращает все достопримечательности
// GET /api/attraction
func (h *AttractionHandler) GetAllAttractions(w http.ResponseWriter, r *http.Request) {
	attractions, err := h.attractionService.GetAllAttractions(r.Context())
	if err != nil {
		h.logger.Error("Failed to get attractions", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get attractions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    attractions,
	})
}

// DeleteAttraction удаляет достопримечательность вместе с ее join-строками
// DELETE /api/attraction/{id}
func (h *AttractionHandler) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid attraction ID")
		return
	}

	if err := h.attractionService.DeleteAttraction(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
