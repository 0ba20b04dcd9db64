package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/itineraryattraction"
)

// ItineraryAttractionService определяет интерфейс для сервиса связей
// маршрут-достопримечательность
type ItineraryAttractionService interface {
	CreateLink(ctx context.Context, req *itineraryattraction.CreateLinkRequest) (*domain.ItineraryAttraction, error)
	GetAllLinks(ctx context.Context) ([]*domain.ItineraryAttraction, error)
	DeleteByAttractionID(ctx context.Context, attractionID int) error
}

// ItineraryAttractionHandler обрабатывает запросы к таблице связей
type ItineraryAttractionHandler struct {
	linkService ItineraryAttractionService
	logger      logger.Logger
}

// NewItineraryAttractionHandler создает новый handler
func NewItineraryAttractionHandler(linkService ItineraryAttractionService, logger logger.Logger) *ItineraryAttractionHandler {
	return &ItineraryAttractionHandler{
		linkService: linkService,
		logger:      logger,
	}
}

// CreateLink привязывает достопримечательность к маршруту
// POST /api/itat
func (h *ItineraryAttractionHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req itineraryattraction.CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.linkService.CreateLink(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    link,
	})
}

// GetAllLinks возвращает все связи
// GET /api/itat
func (h *ItineraryAttractionHandler) GetAllLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.linkService.GetAllLinks(r.Context())
	if err != nil {
		h.logger.Error("Failed to get itinerary-attraction links", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get links")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    links,
	})
}

// DeleteByAttraction массово удаляет связи достопримечательности
// DELETE /api/itat/attraction/{id}
func (h *ItineraryAttractionHandler) DeleteByAttraction(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid attraction ID")
		return
	}

	if err := h.linkService.DeleteByAttractionID(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
