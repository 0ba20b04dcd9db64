package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAccommodation_Validate тестирует валидацию жилья
func TestAccommodation_Validate(t *testing.T) {
	tests := []struct {
		name          string
		accommodation Accommodation
		wantErr       bool
	}{
		{
			name:          "валидное жилье",
			accommodation: Accommodation{Name: "Hotel Roma", Address: "Via Nazionale 22", Price: 120},
			wantErr:       false,
		},
		{
			name:          "пустое имя",
			accommodation: Accommodation{Name: "", Address: "Via Nazionale 22", Price: 120},
			wantErr:       true,
		},
		{
			name:          "имя из пробелов",
			accommodation: Accommodation{Name: "   ", Address: "Via Nazionale 22", Price: 120},
			wantErr:       true,
		},
		{
			name:          "пустой адрес",
			accommodation: Accommodation{Name: "Hotel Roma", Address: "", Price: 120},
			wantErr:       true,
		},
		{
			// лимит в символах: 150 кириллических букв = 300 байт, но валидно
			name:          "кириллическое имя в пределах лимита",
			accommodation: Accommodation{Name: strings.Repeat("я", 150), Address: "Невский проспект 28", Price: 120},
			wantErr:       false,
		},
		{
			name:          "256 символов кириллицы",
			accommodation: Accommodation{Name: strings.Repeat("я", 256), Address: "Невский проспект 28", Price: 120},
			wantErr:       true,
		},
		{
			name:          "слишком длинный адрес",
			accommodation: Accommodation{Name: "Hotel Roma", Address: strings.Repeat("a", 256), Price: 120},
			wantErr:       true,
		},
		{
			name:          "нулевая цена",
			accommodation: Accommodation{Name: "Hotel Roma", Address: "Via Nazionale 22", Price: 0},
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.accommodation.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAccommodationData)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
