package domain

// Location - страна и город, на которые ссылаются достопримечательности
// и маршруты. Пара (country, city) уникальна - повторные вставки той же
// пары должны переиспользовать существующую строку (find-or-create).
type Location struct {
	ID      int    `json:"id"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// Validate проверяет корректность данных локации
func (l *Location) Validate() error {
	var v violations

	if l.Country == "" {
		v.add("country cannot be empty")
	} else {
		if len(l.Country) > 255 {
			v.add("country name is too long")
		}
		if !capitalizedName.MatchString(l.Country) {
			v.add("country name must start with an uppercase letter")
		}
	}

	if l.City == "" {
		v.add("city cannot be empty")
	} else {
		if len(l.City) > 255 {
			v.add("city name is too long")
		}
		if !capitalizedName.MatchString(l.City) {
			v.add("city name must start with an uppercase letter")
		}
	}

	return v.wrap(ErrInvalidLocationData)
}
