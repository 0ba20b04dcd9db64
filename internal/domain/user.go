package domain

import (
	"strings"
	"unicode/utf8"
)

// User - пользователь, владелец маршрутов. Минимальный реестр:
// аутентификация в этом сервисе не реализуется, id_user в маршруте
// должен лишь ссылаться на существующую строку.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Validate проверяет корректность данных пользователя
func (u *User) Validate() error {
	var v violations

	if strings.TrimSpace(u.Username) == "" {
		v.add("username cannot be blank")
	} else if utf8.RuneCountInString(u.Username) > 255 {
		v.add("username is too long")
	}

	if !strings.Contains(u.Email, "@") {
		v.add("invalid email")
	}

	return v.wrap(ErrInvalidUserData)
}
