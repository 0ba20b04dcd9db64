package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/itinerease/backend/internal/delivery/http"
	"github.com/itinerease/backend/internal/pkg/config"
	"github.com/itinerease/backend/internal/pkg/database"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository/postgres"
	"github.com/itinerease/backend/internal/usecase/accommodation"
	"github.com/itinerease/backend/internal/usecase/attraction"
	"github.com/itinerease/backend/internal/usecase/itinerary"
	"github.com/itinerease/backend/internal/usecase/itineraryattraction"
	"github.com/itinerease/backend/internal/usecase/location"
	"github.com/itinerease/backend/internal/usecase/transport"
	"github.com/itinerease/backend/internal/usecase/user"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting ItinerEase API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Создание repositories
	// =========================================================================

	locationRepo := postgres.NewLocationRepository(db)
	attractionRepo := postgres.NewAttractionRepository(db)
	transportRepo := postgres.NewTransportRepository(db)
	accommodationRepo := postgres.NewAccommodationRepository(db)
	itineraryRepo := postgres.NewItineraryRepository(db)
	linkRepo := postgres.NewItineraryAttractionRepository(db)
	userRepo := postgres.NewUserRepository(db)

	log.Info("Repositories initialized")

	// =========================================================================
	// Создание use case services
	// =========================================================================

	locationService := location.NewService(locationRepo, log)
	attractionService := attraction.NewService(attractionRepo, locationRepo, log)
	transportService := transport.NewService(transportRepo, log)
	accommodationService := accommodation.NewService(accommodationRepo, log)
	itineraryService := itinerary.NewService(itineraryRepo, log)
	linkService := itineraryattraction.NewService(linkRepo, itineraryRepo, attractionRepo, log)
	userService := user.NewService(userRepo, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers
	// =========================================================================

	locationHandler := deliveryHTTP.NewLocationHandler(locationService, log)
	attractionHandler := deliveryHTTP.NewAttractionHandler(attractionService, log)
	transportHandler := deliveryHTTP.NewTransportHandler(transportService, log)
	accommodationHandler := deliveryHTTP.NewAccommodationHandler(accommodationService, log)
	itineraryHandler := deliveryHTTP.NewItineraryHandler(itineraryService, log)
	linkHandler := deliveryHTTP.NewItineraryAttractionHandler(linkService, log)
	userHandler := deliveryHTTP.NewUserHandler(userService, log)

	log.Info("HTTP handlers initialized")

	// =========================================================================
	// Создание и настройка HTTP router
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		locationHandler,
		attractionHandler,
		transportHandler,
		accommodationHandler,
		itineraryHandler,
		linkHandler,
		userHandler,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Блокируемся до получения сигнала или ошибки сервера
	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		// Даем серверу 30 секунд на graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
