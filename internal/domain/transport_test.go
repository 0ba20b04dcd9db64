package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTransport_Validate тестирует валидацию транспорта
func TestTransport_Validate(t *testing.T) {
	tests := []struct {
		name      string
		transport Transport
		wantErr   bool
	}{
		{
			name:      "валидный транспорт",
			transport: Transport{Type: TransportTypeTrain, Price: 49.99},
			wantErr:   false,
		},
		{
			name:      "минимальная положительная цена",
			transport: Transport{Type: TransportTypeBus, Price: 0.01},
			wantErr:   false,
		},
		{
			name:      "нулевая цена",
			transport: Transport{Type: TransportTypeBus, Price: 0},
			wantErr:   true,
		},
		{
			name:      "отрицательная цена",
			transport: Transport{Type: TransportTypeBus, Price: -1},
			wantErr:   true,
		},
		{
			name:      "неизвестный тип",
			transport: Transport{Type: "Bicycle", Price: 10},
			wantErr:   true,
		},
		{
			name:      "тип в нижнем регистре",
			transport: Transport{Type: "bus", Price: 10},
			wantErr:   true,
		},
		{
			name:      "пустой тип",
			transport: Transport{Price: 10},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transport.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransportData)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
