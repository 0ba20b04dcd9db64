package domain

// Attraction - достопримечательность, ОБЯЗАТЕЛЬНО привязана к локации
// (LocationID NOT NULL). Удаление локации удаляет и ее достопримечательности.
type Attraction struct {
	ID         int     `json:"id"`
	LocationID int     `json:"location_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`

	// Связанные данные (не хранятся в БД, заполняются при необходимости)
	Location *Location `json:"location,omitempty"`
}

// Validate проверяет корректность данных достопримечательности
func (a *Attraction) Validate() error {
	var v violations

	if a.LocationID <= 0 {
		v.add("location cannot be null")
	}

	if a.Name == "" {
		v.add("name cannot be empty")
	} else {
		if len(a.Name) < 3 || len(a.Name) > 50 {
			v.add("name must be between 3 and 50 characters")
		}
		if !capitalizedName.MatchString(a.Name) {
			v.add("name must start with an uppercase letter")
		}
	}

	if a.Price <= 0 {
		v.add("price must be a positive number")
	}

	return v.wrap(ErrInvalidAttractionData)
}
