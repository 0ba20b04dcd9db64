package domain

import (
	"strings"
	"unicode/utf8"
)

// Accommodation - жилье маршрута. Как и транспорт, одна строка может
// быть привязана максимум к одному маршруту.
type Accommodation struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
}

// Validate проверяет корректность данных жилья
func (a *Accommodation) Validate() error {
	var v violations

	// Лимиты считаются в символах, не в байтах: многобайтовые имена
	// (кириллица и т.п.) валидны, пока не превышают 255 символов
	if strings.TrimSpace(a.Name) == "" {
		v.add("name cannot be blank")
	} else if utf8.RuneCountInString(a.Name) > 255 {
		v.add("name is too long")
	}

	if strings.TrimSpace(a.Address) == "" {
		v.add("address cannot be blank")
	} else if utf8.RuneCountInString(a.Address) > 255 {
		v.add("address is too long")
	}

	if a.Price <= 0 {
		v.add("price must be a positive number")
	}

	return v.wrap(ErrInvalidAccommodationData)
}
