package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUser_Validate тестирует валидацию пользователя
func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name:    "валидный пользователь",
			user:    User{Username: "traveler", Email: "traveler@example.com"},
			wantErr: false,
		},
		{
			name:    "пустое имя",
			user:    User{Username: "   ", Email: "traveler@example.com"},
			wantErr: true,
		},
		{
			// лимит в символах, не в байтах
			name:    "кириллическое имя в пределах лимита",
			user:    User{Username: strings.Repeat("ю", 150), Email: "traveler@example.com"},
			wantErr: false,
		},
		{
			name:    "имя длиннее 255 символов",
			user:    User{Username: strings.Repeat("ю", 256), Email: "traveler@example.com"},
			wantErr: true,
		},
		{
			name:    "email без @",
			user:    User{Username: "traveler", Email: "traveler.example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUserData)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
