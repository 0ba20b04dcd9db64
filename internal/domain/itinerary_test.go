package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func futureDay(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

// TestItinerary_Validate тестирует валидацию маршрута
func TestItinerary_Validate(t *testing.T) {
	valid := Itinerary{
		Name:          "Summer trip",
		DepartureDate: futureDay(10),
		ArrivalDate:   futureDay(20),
		Budget:        1000,
		Persons:       2,
	}

	t.Run("валидный маршрут", func(t *testing.T) {
		it := valid
		assert.NoError(t, it.Validate())
	})

	t.Run("пустое имя", func(t *testing.T) {
		it := valid
		it.Name = ""
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})

	// Лимит длины имени считается в символах: многобайтовое имя
	// в пределах 255 символов валидно
	t.Run("кириллическое имя в пределах лимита", func(t *testing.T) {
		it := valid
		it.Name = strings.Repeat("п", 150)
		assert.NoError(t, it.Validate())
	})

	t.Run("имя длиннее 255 символов", func(t *testing.T) {
		it := valid
		it.Name = strings.Repeat("п", 256)
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})

	t.Run("дата отправления сегодня", func(t *testing.T) {
		it := valid
		it.DepartureDate = time.Now()
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})

	t.Run("дата отправления в прошлом", func(t *testing.T) {
		it := valid
		it.DepartureDate = futureDay(-1)
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})

	t.Run("дата прибытия в прошлом", func(t *testing.T) {
		it := valid
		it.ArrivalDate = futureDay(-5)
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})

	// Порядок дат между собой не проверяется: прибытие раньше отправления
	// проходит валидацию, если обе даты в будущем. Тест фиксирует это
	// поведение явно.
	t.Run("прибытие раньше отправления проходит", func(t *testing.T) {
		it := valid
		it.DepartureDate = futureDay(20)
		it.ArrivalDate = futureDay(10)
		assert.NoError(t, it.Validate())
	})

	t.Run("нулевой бюджет", func(t *testing.T) {
		it := valid
		it.Budget = 0
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})

	t.Run("ноль человек", func(t *testing.T) {
		it := valid
		it.Persons = 0
		assert.ErrorIs(t, it.Validate(), ErrInvalidItineraryData)
	})
}

// TestDateStruct_Date тестирует сборку даты из компонентов
func TestDateStruct_Date(t *testing.T) {
	t.Run("валидная дата", func(t *testing.T) {
		d, err := DateStruct{Year: 2030, Month: 7, Day: 15}.Date()
		assert.NoError(t, err)
		assert.Equal(t, 2030, d.Year())
		assert.Equal(t, time.July, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("31 февраля отклоняется", func(t *testing.T) {
		_, err := DateStruct{Year: 2030, Month: 2, Day: 31}.Date()
		assert.ErrorIs(t, err, ErrInvalidItineraryData)
	})

	t.Run("нулевой месяц отклоняется", func(t *testing.T) {
		_, err := DateStruct{Year: 2030, Month: 0, Day: 10}.Date()
		assert.Error(t, err)
	})
}

// TestItineraryAttraction_Validate тестирует валидацию join-строки
func TestItineraryAttraction_Validate(t *testing.T) {
	assert.NoError(t, (&ItineraryAttraction{ItineraryID: 1, AttractionID: 2}).Validate())
	assert.ErrorIs(t, (&ItineraryAttraction{AttractionID: 2}).Validate(), ErrInvalidItineraryAttractionData)
	assert.ErrorIs(t, (&ItineraryAttraction{ItineraryID: 1}).Validate(), ErrInvalidItineraryAttractionData)
}
