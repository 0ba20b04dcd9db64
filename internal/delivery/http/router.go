package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itinerease/backend/internal/delivery/http/middleware"
	"github.com/itinerease/backend/internal/pkg/config"
	"github.com/itinerease/backend/internal/pkg/logger"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	locationHandler      *LocationHandler
	attractionHandler    *AttractionHandler
	transportHandler     *TransportHandler
	accommodationHandler *AccommodationHandler
	itineraryHandler     *ItineraryHandler
	linkHandler          *ItineraryAttractionHandler
	userHandler          *UserHandler
	config               *config.Config
	logger               logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	locationHandler *LocationHandler,
	attractionHandler *AttractionHandler,
	transportHandler *TransportHandler,
	accommodationHandler *AccommodationHandler,
	itineraryHandler *ItineraryHandler,
	linkHandler *ItineraryAttractionHandler,
	userHandler *UserHandler,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		locationHandler:      locationHandler,
		attractionHandler:    attractionHandler,
		transportHandler:     transportHandler,
		accommodationHandler: accommodationHandler,
		itineraryHandler:     itineraryHandler,
		linkHandler:          linkHandler,
		userHandler:          userHandler,
		config:               config,
		logger:               logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/location", func(r chi.Router) {
			r.Get("/", rt.locationHandler.GetAllLocations)
			r.Post("/", rt.locationHandler.CreateLocation)
			r.Get("/search", rt.locationHandler.FindByCountryAndCity)
			r.Delete("/{id}", rt.locationHandler.DeleteLocation)
		})

		r.Route("/attraction", func(r chi.Router) {
			r.Get("/", rt.attractionHandler.GetAllAttractions)
			r.Post("/", rt.attractionHandler.CreateAttraction)
			r.Delete("/{id}", rt.attractionHandler.DeleteAttraction)
		})

		r.Route("/transport", func(r chi.Router) {
			r.Get("/", rt.transportHandler.GetAllTransports)
			r.Post("/", rt.transportHandler.CreateTransport)
			r.Put("/", rt.transportHandler.UpdateTransport)
			r.Get("/{id}", rt.transportHandler.GetTransportByID)
			r.Delete("/{id}", rt.transportHandler.DeleteTransport)
		})

		r.Route("/accommodation", func(r chi.Router) {
			r.Get("/", rt.accommodationHandler.GetAllAccommodations)
			r.Post("/", rt.accommodationHandler.CreateAccommodation)
			r.Put("/", rt.accommodationHandler.UpdateAccommodation)
			r.Get("/{id}", rt.accommodationHandler.GetAccommodationByID)
			r.Delete("/{id}", rt.accommodationHandler.DeleteAccommodation)
		})

		r.Route("/itinerary", func(r chi.Router) {
			r.Get("/", rt.itineraryHandler.GetAllItineraries)
			r.Post("/", rt.itineraryHandler.CreateItinerary)
			r.Put("/", rt.itineraryHandler.UpdateItinerary)
			r.Delete("/{id}", rt.itineraryHandler.DeleteItinerary)
		})

		r.Route("/itat", func(r chi.Router) {
			r.Get("/", rt.linkHandler.GetAllLinks)
			r.Post("/", rt.linkHandler.CreateLink)
			r.Delete("/attraction/{id}", rt.linkHandler.DeleteByAttraction)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/", rt.userHandler.GetAllUsers)
			r.Post("/", rt.userHandler.CreateUser)
			r.Get("/{id}", rt.userHandler.GetUserByID)
		})
	})

	return r
}
