package repository

import (
	"context"

	"github.com/itinerease/backend/internal/domain"
)

// LocationRepository определяет методы для работы с локациями
type LocationRepository interface {
	// Create создает новую локацию; дубликат пары (country, city)
	// возвращает domain.ErrLocationAlreadyExists
	Create(ctx context.Context, location *domain.Location) error

	// GetByID возвращает локацию по ID
	GetByID(ctx context.Context, id int) (*domain.Location, error)

	// FindByCountryAndCity возвращает локацию по точному совпадению пары
	FindByCountryAndCity(ctx context.Context, country, city string) (*domain.Location, error)

	// GetAll возвращает все локации
	GetAll(ctx context.Context) ([]*domain.Location, error)

	// Delete удаляет локацию и каскадно - зависимые достопримечательности,
	// маршруты (и отправления, и назначения) и их join-строки. Одна транзакция.
	Delete(ctx context.Context, id int) error
}

// AttractionRepository определяет методы для работы с достопримечательностями
type AttractionRepository interface {
	// Create создает новую достопримечательность
	Create(ctx context.Context, attraction *domain.Attraction) error

	// GetByID возвращает достопримечательность по ID
	GetByID(ctx context.Context, id int) (*domain.Attraction, error)

	// GetAll возвращает все достопримечательности вместе с их локациями
	GetAll(ctx context.Context) ([]*domain.Attraction, error)

	// Delete удаляет достопримечательность, предварительно удалив все
	// ее строки itinerary_attraction. Оба шага в одной транзакции.
	Delete(ctx context.Context, id int) error
}

// TransportRepository определяет методы для работы с транспортом
type TransportRepository interface {
	Create(ctx context.Context, transport *domain.Transport) error
	GetByID(ctx context.Context, id int) (*domain.Transport, error)
	GetAll(ctx context.Context) ([]*domain.Transport, error)

	// Update полностью заменяет строку по id
	Update(ctx context.Context, transport *domain.Transport) error
	Delete(ctx context.Context, id int) error
}

// AccommodationRepository определяет методы для работы с жильем
type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *domain.Accommodation) error
	GetByID(ctx context.Context, id int) (*domain.Accommodation, error)
	GetAll(ctx context.Context) ([]*domain.Accommodation, error)
	Update(ctx context.Context, accommodation *domain.Accommodation) error
	Delete(ctx context.Context, id int) error
}

// ItineraryRepository определяет методы для работы с маршрутами
type ItineraryRepository interface {
	// CreateAggregate атомарно создает маршрут вместе с его транспортом,
	// жильем и локациями (find-or-create по паре country/city).
	// При любой ошибке транзакция откатывается целиком - осиротевших
	// строк transport/accommodation не остается.
	// ID созданных сущностей проставляются в переданные структуры.
	CreateAggregate(
		ctx context.Context,
		itinerary *domain.Itinerary,
		destination, departure *domain.Location,
		transport *domain.Transport,
		accommodation *domain.Accommodation,
	) error

	GetByID(ctx context.Context, id int64) (*domain.Itinerary, error)
	GetAll(ctx context.Context) ([]*domain.Itinerary, error)
	Update(ctx context.Context, itinerary *domain.Itinerary) error

	// Delete удаляет маршрут и его join-строки; каталоги
	// transport/accommodation НЕ трогаются
	Delete(ctx context.Context, id int64) error
}

// ItineraryAttractionRepository определяет методы для работы со связями
// маршрут-достопримечательность
type ItineraryAttractionRepository interface {
	// Create вставляет одну join-строку; дубликат составного ключа
	// возвращает domain.ErrItineraryAttractionAlreadyExists
	Create(ctx context.Context, link *domain.ItineraryAttraction) error

	// GetAll возвращает все связи
	GetAll(ctx context.Context) ([]*domain.ItineraryAttraction, error)

	// DeleteByAttractionID удаляет все связи достопримечательности.
	// Отсутствие строк ошибкой не является.
	DeleteByAttractionID(ctx context.Context, attractionID int) error
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
}
