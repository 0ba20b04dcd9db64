package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/itinerary"
)

// ItineraryService определяет интерфейс для сервиса маршрутов
type ItineraryService interface {
	CreateFromInsert(ctx context.Context, insert *domain.ItineraryInsert) (*domain.Itinerary, error)
	GetAllItineraries(ctx context.Context) ([]*domain.Itinerary, error)
	UpdateItinerary(ctx context.Context, req *itinerary.UpdateItineraryRequest) (*domain.Itinerary, error)
	DeleteItinerary(ctx context.Context, id int64) error
}

// ItineraryHandler обрабатывает запросы связанные с маршрутами
type ItineraryHandler struct {
	itineraryService ItineraryService
	logger           logger.Logger
}

// NewItineraryHandler создает новый handler
func NewItineraryHandler(itineraryService ItineraryService, logger logger.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// CreateItinerary собирает маршрут вместе с транспортом, жильем и локациями
// из одного запроса клиента
// POST /api/itinerary
func (h *ItineraryHandler) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var insert domain.ItineraryInsert
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	i, err := h.itineraryService.CreateFromInsert(r.Context(), &insert)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    i,
	})
}

// GetAllItineraries возвращает все маршруты
// GET /api/itinerary
func (h *ItineraryHandler) GetAllItineraries(w http.ResponseWriter, r *http.Request) {
	itineraries, err := h.itineraryService.GetAllItineraries(r.Context())
	if err != nil {
		h.logger.Error("Failed to get itineraries", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get itineraries")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    itineraries,
	})
}

// UpdateItinerary полностью заменяет строку маршрута (id в теле запроса)
// PUT /api/itinerary
func (h *ItineraryHandler) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	var req itinerary.UpdateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	i, err := h.itineraryService.UpdateItinerary(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    i,
	})
}

// DeleteItinerary удаляет маршрут (без каскада на каталоги)
// DELETE /api/itinerary/{id}
func (h *ItineraryHandler) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := getInt64Param(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	if err := h.itineraryService.DeleteItinerary(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
