package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/location"
)

// LocationService определяет интерфейс для сервиса локаций
type LocationService interface {
	CreateLocation(ctx context.Context, req *location.CreateLocationRequest) (*domain.Location, error)
	GetAllLocations(ctx context.Context) ([]*domain.Location, error)
	FindByCountryAndCity(ctx context.Context, country, city string) (*domain.Location, error)
	DeleteLocation(ctx context.Context, id int) error
}

// LocationHandler обрабатывает запросы связанные с локациями
type LocationHandler struct {
	locationService LocationService
	logger          logger.Logger
}

// NewLocationHandler создает новый handler
func NewLocationHandler(locationService LocationService, logger logger.Logger) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		logger:          logger,
	}
}

// CreateLocation создает новую локацию
// POST /api/location
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req location.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	l, err := h.locationService.CreateLocation(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    l,
	})
}

// GetAllLocations возвращает все локации
// GET /api/location
func (h *LocationHandler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationService.GetAllLocations(r.Context())
	if err != nil {
		h.logger.Error("Failed to get locations", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get locations")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    locations,
	})
}

// FindByCountryAndCity ищет локацию по точному совпадению пары
// GET /api/location/search?country=Italy&city=Rome
func (h *LocationHandler) FindByCountryAndCity(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	city := r.URL.Query().Get("city")
	if country == "" || city == "" {
		respondError(w, http.StatusBadRequest, "country and city are required")
		return
	}

	l, err := h.locationService.FindByCountryAndCity(r.Context(), country, city)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    l,
	})
}

// DeleteLocation удаляет локацию вместе с зависимыми сущностями
// DELETE /api/location/{id}
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := h.locationService.DeleteLocation(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
