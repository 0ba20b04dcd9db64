package domain

// TransportType представляет вид транспорта
type TransportType string

const (
	TransportTypeBus      TransportType = "Bus"
	TransportTypeTrain    TransportType = "Train"
	TransportTypeCar      TransportType = "Car"
	TransportTypeAirplane TransportType = "Airplane"
	TransportTypeBoat     TransportType = "Boat"
)

// Transport - транспорт маршрута. Одна строка transport может быть
// привязана максимум к одному маршруту (one-to-one со стороны itinerary).
type Transport struct {
	ID    int           `json:"id"`
	Type  TransportType `json:"type"`
	Price float64       `json:"price"`
}

// Validate проверяет корректность данных транспорта
func (t *Transport) Validate() error {
	var v violations

	switch t.Type {
	case TransportTypeBus, TransportTypeTrain, TransportTypeCar, TransportTypeAirplane, TransportTypeBoat:
	default:
		v.add("type must be: Bus, Train, Car, Airplane or Boat")
	}

	if t.Price <= 0 {
		v.add("price must be a positive number")
	}

	return v.wrap(ErrInvalidTransportData)
}
