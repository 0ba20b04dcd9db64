package domain

// ItineraryAttraction - связь между маршрутом и достопримечательностью
// (many-to-many). Идентичность строки - составной ключ (itinerary, attraction),
// поэтому пара может существовать максимум в одном экземпляре.
// Эти строки - единственный источник истины о составе маршрута.
type ItineraryAttraction struct {
	ItineraryID  int64 `json:"itinerary_id"`
	AttractionID int   `json:"attraction_id"`
}

// Validate проверяет корректность данных связи
func (ia *ItineraryAttraction) Validate() error {
	var v violations

	if ia.ItineraryID <= 0 {
		v.add("itinerary id is required")
	}
	if ia.AttractionID <= 0 {
		v.add("attraction id is required")
	}

	return v.wrap(ErrInvalidItineraryAttractionData)
}
