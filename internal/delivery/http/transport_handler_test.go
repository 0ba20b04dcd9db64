package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/pkg/logger"
	"github.com/itinerease/backend/internal/usecase/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTransportService struct {
	mock.Mock
}

func (m *MockTransportService) CreateTransport(ctx context.Context, req *transport.CreateTransportRequest) (*domain.Transport, error) {
	args := m.Called(ctx, req)
	if t := args.Get(0); t != nil {
		return t.(*domain.Transport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportService) GetTransportByID(ctx context.Context, id int) (*domain.Transport, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*domain.Transport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportService) GetAllTransports(ctx context.Context) ([]*domain.Transport, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.([]*domain.Transport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportService) UpdateTransport(ctx context.Context, req *transport.UpdateTransportRequest) (*domain.Transport, error) {
	args := m.Called(ctx, req)
	if t := args.Get(0); t != nil {
		return t.(*domain.Transport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportService) DeleteTransport(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// TestTransportHandler_CreateTransport тестирует создание транспорта
func TestTransportHandler_CreateTransport(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockTransportService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешное создание",
			requestBody: transport.CreateTransportRequest{
				Type:  domain.TransportTypeAirplane,
				Price: 199.99,
			},
			mockSetup: func(m *MockTransportService) {
				m.On("CreateTransport", mock.Anything, mock.AnythingOfType("*transport.CreateTransportRequest")).
					Return(&domain.Transport{
						ID:    1,
						Type:  domain.TransportTypeAirplane,
						Price: 199.99,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.True(t, success)
				}
				if data, ok := resp["data"].(map[string]interface{}); ok {
					assert.Equal(t, "Airplane", data["type"])
				}
			},
		},
		{
			name: "невалидный тип транспорта",
			requestBody: transport.CreateTransportRequest{
				Type:  "Rocket",
				Price: 10,
			},
			mockSetup: func(m *MockTransportService) {
				m.On("CreateTransport", mock.Anything, mock.AnythingOfType("*transport.CreateTransportRequest")).
					Return(nil, domain.ErrInvalidTransportData)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid",
			mockSetup:      func(m *MockTransportService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTransportService)
			tt.mockSetup(mockService)

			handler := NewTransportHandler(mockService, logger.NewNoop())

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/transport", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateTransport(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestTransportHandler_UpdateTransport тестирует полную замену строки транспорта
func TestTransportHandler_UpdateTransport(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockTransportService)
		expectedStatus int
	}{
		{
			name: "успешное обновление",
			requestBody: transport.UpdateTransportRequest{
				ID:    1,
				Type:  domain.TransportTypeTrain,
				Price: 45,
			},
			mockSetup: func(m *MockTransportService) {
				m.On("UpdateTransport", mock.Anything, mock.AnythingOfType("*transport.UpdateTransportRequest")).
					Return(&domain.Transport{ID: 1, Type: domain.TransportTypeTrain, Price: 45}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "транспорт не найден",
			requestBody: transport.UpdateTransportRequest{
				ID:    999,
				Type:  domain.TransportTypeBus,
				Price: 12,
			},
			mockSetup: func(m *MockTransportService) {
				m.On("UpdateTransport", mock.Anything, mock.AnythingOfType("*transport.UpdateTransportRequest")).
					Return(nil, domain.ErrTransportNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTransportService)
			tt.mockSetup(mockService)

			handler := NewTransportHandler(mockService, logger.NewNoop())

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPut, "/api/transport", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdateTransport(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestTransportHandler_DeleteTransport тестирует удаление транспорта
func TestTransportHandler_DeleteTransport(t *testing.T) {
	tests := []struct {
		name           string
		transportID    string
		mockSetup      func(*MockTransportService)
		expectedStatus int
	}{
		{
			name:        "успешное удаление",
			transportID: "1",
			mockSetup: func(m *MockTransportService) {
				m.On("DeleteTransport", mock.Anything, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "транспорт не найден",
			transportID: "999",
			mockSetup: func(m *MockTransportService) {
				m.On("DeleteTransport", mock.Anything, 999).Return(domain.ErrTransportNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "нечисловой id",
			transportID:    "abc",
			mockSetup:      func(m *MockTransportService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTransportService)
			tt.mockSetup(mockService)

			handler := NewTransportHandler(mockService, logger.NewNoop())

			req := httptest.NewRequest(http.MethodDelete, "/api/transport/"+tt.transportID, nil)

			// Настраиваем chi router для передачи параметра id
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.transportID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.DeleteTransport(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
