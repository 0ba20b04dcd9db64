package itinerary

import (
	"context"
	"fmt"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/repository"
)

// UpdateItineraryRequest - запрос на полную замену строки маршрута
type UpdateItineraryRequest struct {
	ID              int64             `json:"id"`
	DestinationID   int               `json:"destination_id"`
	DepartureID     int               `json:"departure_id"`
	TransportID     int               `json:"transport_id"`
	AccommodationID int               `json:"accommodation_id"`
	UserID          int               `json:"user_id"`
	Name            string            `json:"name"`
	DepartureDate   domain.DateStruct `json:"departure_date"`
	ArrivalDate     domain.DateStruct `json:"arrival_date"`
	Budget          int               `json:"budget"`
	Persons         int               `json:"persons"`
}

// Service содержит бизнес-логику работы с маршрутами
type Service struct {
	itineraryRepo repository.ItineraryRepository
	logger        logger.Logger
}

// NewService создает новый экземпляр ItineraryService
func NewService(itineraryRepo repository.ItineraryRepository, logger logger.Logger) *Service {
	return &Service{
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

// CreateFromInsert собирает и атомарно сохраняет маршрут из одного запроса:
// локации назначения и отправления разрешаются по паре (country, city) с
// переиспользованием существующих строк, транспорт и жилье создаются новыми,
// маршрут связывает всё вместе с пользователем. Вся валидация выполняется
// до единственной транзакции записи - при любом отказе БД остается нетронутой.
func (s *Service) CreateFromInsert(ctx context.Context, insert *domain.ItineraryInsert) (*domain.Itinerary, error) {
	departureDate, err := insert.DateStartModal.Date()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid departure date", domain.ErrInvalidItineraryData)
	}
	arrivalDate, err := insert.DateEndModal.Date()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid arrival date", domain.ErrInvalidItineraryData)
	}

	destination := &domain.Location{
		Country: insert.SelectedCountryDestination,
		City:    insert.SelectedCityDestination,
	}
	departure := &domain.Location{
		Country: insert.SelectedCountryDeparting,
		City:    insert.SelectedCityDeparting,
	}
	transport := &domain.Transport{
		Type:  domain.TransportType(insert.TransportType),
		Price: insert.TransportPrice,
	}
	accommodation := &domain.Accommodation{
		Name:    insert.AccommodationName,
		Address: insert.AddressArea,
		Price:   insert.PriceAccommodation,
	}
	itinerary := &domain.Itinerary{
		UserID:        insert.IDUser,
		Name:          insert.ItineraryName,
		DepartureDate: departureDate,
		ArrivalDate:   arrivalDate,
		Budget:        insert.Budget,
		Persons:       insert.SelectedPersonsOption,
	}

	for _, validate := range []func() error{
		destination.Validate,
		departure.Validate,
		transport.Validate,
		accommodation.Validate,
		itinerary.Validate,
	} {
		if err := validate(); err != nil {
			return nil, err
		}
	}

	if err := s.itineraryRepo.CreateAggregate(ctx, itinerary, destination, departure, transport, accommodation); err != nil {
		s.logger.Error("Failed to create itinerary aggregate", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	itinerary.Destination = destination
	itinerary.Departure = departure
	itinerary.Transport = transport
	itinerary.Accommodation = accommodation

	s.logger.Info("Itinerary created", map[string]interface{}{
		"itinerary_id": itinerary.ID,
		"user_id":      itinerary.UserID,
		"name":         itinerary.Name,
	})

	return itinerary, nil
}

// GetAllItineraries возвращает все маршруты
func (s *Service) GetAllItineraries(ctx context.Context) ([]*domain.Itinerary, error) {
	return s.itineraryRepo.GetAll(ctx)
}

// UpdateItinerary полностью заменяет строку маршрута по id
func (s *Service) UpdateItinerary(ctx context.Context, req *UpdateItineraryRequest) (*domain.Itinerary, error) {
	departureDate, err := req.DepartureDate.Date()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid departure date", domain.ErrInvalidItineraryData)
	}
	arrivalDate, err := req.ArrivalDate.Date()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid arrival date", domain.ErrInvalidItineraryData)
	}

	itinerary := &domain.Itinerary{
		ID:              req.ID,
		DestinationID:   req.DestinationID,
		DepartureID:     req.DepartureID,
		TransportID:     req.TransportID,
		AccommodationID: req.AccommodationID,
		UserID:          req.UserID,
		Name:            req.Name,
		DepartureDate:   departureDate,
		ArrivalDate:     arrivalDate,
		Budget:          req.Budget,
		Persons:         req.Persons,
	}

	if err := itinerary.Validate(); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		return nil, err
	}

	return itinerary, nil
}

// DeleteItinerary удаляет маршрут. Транспорт, жилье, локации и пользователь
// остаются - каскада на каталоги нет.
func (s *Service) DeleteItinerary(ctx context.Context, id int64) error {
	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Itinerary deleted", map[string]interface{}{
		"itinerary_id": id,
	})

	return nil
}
