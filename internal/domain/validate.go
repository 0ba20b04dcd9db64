package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// capitalizedName - общий паттерн для названий: начинается с заглавной
// латинской буквы, дальше только буквы
var capitalizedName = regexp.MustCompile(`^[A-Z][a-zA-Z]*$`)

// violations накапливает нарушения валидации для одной сущности.
// Все нарушения собираются до первой записи в БД и возвращаются разом.
type violations []string

func (v *violations) add(format string, args ...interface{}) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

// wrap возвращает базовую ошибку сущности со списком нарушений,
// либо nil если нарушений нет
func (v violations) wrap(base error) error {
	if len(v) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", base, strings.Join(v, "; "))
}

// isFutureDate проверяет, что дата строго позже сегодняшнего дня
// (сравниваются календарные дни, не моменты времени)
func isFutureDate(d time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}
