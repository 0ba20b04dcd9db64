package domain

import (
	"time"
	"unicode/utf8"
)

// Itinerary - маршрут путешествия. Агрегирует локации отправления и
// назначения, транспорт, жилье, пользователя и набор достопримечательностей
// (через таблицу itinerary_attraction).
//
// Удаление маршрута НЕ каскадирует на transport/accommodation - строки
// каталогов переживают свой маршрут.
type Itinerary struct {
	ID              int64     `json:"id"`
	DestinationID   int       `json:"destination_id"`
	DepartureID     int       `json:"departure_id"`
	TransportID     int       `json:"transport_id"`
	AccommodationID int       `json:"accommodation_id"`
	UserID          int       `json:"user_id"`
	Name            string    `json:"name"`
	DepartureDate   time.Time `json:"departure_date"`
	ArrivalDate     time.Time `json:"arrival_date"`
	Budget          int       `json:"budget"`
	Persons         int       `json:"persons"`

	// Связанные данные (не хранятся в строке itinerary, заполняются при необходимости)
	Destination   *Location      `json:"destination,omitempty"`
	Departure     *Location      `json:"departure,omitempty"`
	Transport     *Transport     `json:"transport,omitempty"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
}

// Validate проверяет корректность данных маршрута.
// Обе даты должны лежать строго в будущем. Порядок arrival/departure
// между собой НЕ проверяется (поведение исходной системы сохранено).
func (i *Itinerary) Validate() error {
	var v violations

	if i.Name == "" {
		v.add("name cannot be empty")
	} else if utf8.RuneCountInString(i.Name) > 255 {
		v.add("name is too long")
	}

	if !isFutureDate(i.DepartureDate) {
		v.add("departure date must be in the future")
	}
	if !isFutureDate(i.ArrivalDate) {
		v.add("arrival date must be in the future")
	}

	if i.Budget <= 0 {
		v.add("budget must be a positive number")
	}
	if i.Persons <= 0 {
		v.add("persons must be a positive number")
	}

	return v.wrap(ErrInvalidItineraryData)
}

// DateStruct - дата, разобранная на компоненты (приходит так с клиента)
type DateStruct struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Date собирает календарную дату из компонентов. Некорректные триплеты
// (31 февраля и т.п.) отлавливаются сравнением после нормализации time.Date.
func (d DateStruct) Date() (time.Time, error) {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != d.Year || t.Month() != time.Month(d.Month) || t.Day() != d.Day {
		return time.Time{}, ErrInvalidItineraryData
	}
	return t, nil
}

// ItineraryInsert - транзиентная структура для создания маршрута вместе
// с его транспортом и жильем одним запросом. Не персистится сама по себе.
// Имена json-полей повторяют контракт клиента.
type ItineraryInsert struct {
	ItineraryName              string     `json:"itineraryName"`
	DateStartModal             DateStruct `json:"dateStartModal"`
	DateEndModal               DateStruct `json:"dateEndModal"`
	Budget                     int        `json:"budget"`
	SelectedPersonsOption      int        `json:"selectedPersonsOption"`
	SelectedCountryDestination string     `json:"selectedCountryDestination"`
	SelectedCityDestination    string     `json:"selectedCityDestination"`
	SelectedCountryDeparting   string     `json:"selectedCountryDeparting"`
	SelectedCityDeparting      string     `json:"selectedCityDeparting"`
	TransportType              string     `json:"transportType"`
	TransportPrice             float64    `json:"transportPrice"`
	AccommodationName          string     `json:"accommodationName"`
	AddressArea                string     `json:"addressArea"`
	PriceAccommodation         float64    `json:"priceAccommodation"`
	IDUser                     int        `json:"idUser"`
}
