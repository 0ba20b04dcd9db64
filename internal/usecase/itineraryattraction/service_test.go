package itineraryattraction

import (
	"context"
	"testing"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLinkRepo struct {
	mock.Mock
}

func (m *mockLinkRepo) Create(ctx context.Context, link *domain.ItineraryAttraction) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockLinkRepo) GetAll(ctx context.Context) ([]*domain.ItineraryAttraction, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*domain.ItineraryAttraction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLinkRepo) DeleteByAttractionID(ctx context.Context, attractionID int) error {
	return m.Called(ctx, attractionID).Error(0)
}

type mockItineraryRepo struct {
	mock.Mock
}

func (m *mockItineraryRepo) CreateAggregate(
	ctx context.Context,
	itinerary *domain.Itinerary,
	destination, departure *domain.Location,
	transport *domain.Transport,
	accommodation *domain.Accommodation,
) error {
	return m.Called(ctx, itinerary, destination, departure, transport, accommodation).Error(0)
}

func (m *mockItineraryRepo) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*domain.Itinerary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItineraryRepo) GetAll(ctx context.Context) ([]*domain.Itinerary, error) {
	args := m.Called(ctx)
	if i := args.Get(0); i != nil {
		return i.([]*domain.Itinerary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItineraryRepo) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *mockItineraryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAttractionRepo struct {
	mock.Mock
}

func (m *mockAttractionRepo) Create(ctx context.Context, attraction *domain.Attraction) error {
	return m.Called(ctx, attraction).Error(0)
}

func (m *mockAttractionRepo) GetByID(ctx context.Context, id int) (*domain.Attraction, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Attraction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttractionRepo) GetAll(ctx context.Context) ([]*domain.Attraction, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]*domain.Attraction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttractionRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// TestService_CreateLink тестирует привязку достопримечательности к маршруту
func TestService_CreateLink(t *testing.T) {
	ctx := context.Background()
	itinerary := &domain.Itinerary{ID: 10, Name: "Summer trip"}
	attraction := &domain.Attraction{ID: 3, Name: "Colosseum"}

	t.Run("успешное создание", func(t *testing.T) {
		linkRepo := new(mockLinkRepo)
		itineraryRepo := new(mockItineraryRepo)
		attractionRepo := new(mockAttractionRepo)
		itineraryRepo.On("GetByID", mock.Anything, int64(10)).Return(itinerary, nil)
		attractionRepo.On("GetByID", mock.Anything, 3).Return(attraction, nil)
		linkRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ItineraryAttraction")).Return(nil)

		svc := NewService(linkRepo, itineraryRepo, attractionRepo, logger.NewNoop())
		link, err := svc.CreateLink(ctx, &CreateLinkRequest{ItineraryID: 10, AttractionID: 3})

		assert.NoError(t, err)
		assert.Equal(t, int64(10), link.ItineraryID)
		assert.Equal(t, 3, link.AttractionID)
		linkRepo.AssertExpectations(t)
	})

	t.Run("маршрут не найден", func(t *testing.T) {
		linkRepo := new(mockLinkRepo)
		itineraryRepo := new(mockItineraryRepo)
		attractionRepo := new(mockAttractionRepo)
		itineraryRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrItineraryNotFound)

		svc := NewService(linkRepo, itineraryRepo, attractionRepo, logger.NewNoop())
		_, err := svc.CreateLink(ctx, &CreateLinkRequest{ItineraryID: 99, AttractionID: 3})

		assert.ErrorIs(t, err, domain.ErrItineraryNotFound)
		attractionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		linkRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("достопримечательность не найдена", func(t *testing.T) {
		linkRepo := new(mockLinkRepo)
		itineraryRepo := new(mockItineraryRepo)
		attractionRepo := new(mockAttractionRepo)
		itineraryRepo.On("GetByID", mock.Anything, int64(10)).Return(itinerary, nil)
		attractionRepo.On("GetByID", mock.Anything, 42).Return(nil, domain.ErrAttractionNotFound)

		svc := NewService(linkRepo, itineraryRepo, attractionRepo, logger.NewNoop())
		_, err := svc.CreateLink(ctx, &CreateLinkRequest{ItineraryID: 10, AttractionID: 42})

		assert.ErrorIs(t, err, domain.ErrAttractionNotFound)
		linkRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("дубликат пары", func(t *testing.T) {
		linkRepo := new(mockLinkRepo)
		itineraryRepo := new(mockItineraryRepo)
		attractionRepo := new(mockAttractionRepo)
		itineraryRepo.On("GetByID", mock.Anything, int64(10)).Return(itinerary, nil)
		attractionRepo.On("GetByID", mock.Anything, 3).Return(attraction, nil)
		linkRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ItineraryAttraction")).
			Return(domain.ErrItineraryAttractionAlreadyExists)

		svc := NewService(linkRepo, itineraryRepo, attractionRepo, logger.NewNoop())
		_, err := svc.CreateLink(ctx, &CreateLinkRequest{ItineraryID: 10, AttractionID: 3})

		assert.ErrorIs(t, err, domain.ErrItineraryAttractionAlreadyExists)
	})

	t.Run("нулевой id не проходит валидацию", func(t *testing.T) {
		linkRepo := new(mockLinkRepo)
		itineraryRepo := new(mockItineraryRepo)
		attractionRepo := new(mockAttractionRepo)

		svc := NewService(linkRepo, itineraryRepo, attractionRepo, logger.NewNoop())
		_, err := svc.CreateLink(ctx, &CreateLinkRequest{ItineraryID: 0, AttractionID: 3})

		assert.ErrorIs(t, err, domain.ErrInvalidItineraryAttractionData)
		itineraryRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

// TestService_DeleteByAttractionID тестирует массовое удаление связей
func TestService_DeleteByAttractionID(t *testing.T) {
	ctx := context.Background()

	t.Run("удаление идемпотентно", func(t *testing.T) {
		linkRepo := new(mockLinkRepo)
		linkRepo.On("DeleteByAttractionID", mock.Anything, 7).Return(nil)

		svc := NewService(linkRepo, new(mockItineraryRepo), new(mockAttractionRepo), logger.NewNoop())
		assert.NoError(t, svc.DeleteByAttractionID(ctx, 7))
		linkRepo.AssertExpectations(t)
	})
}
