package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды PostgreSQL для нарушения ограничений
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// isUniqueViolation проверяет, что ошибка - нарушение unique-индекса
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// foreignKeyConstraint возвращает имя нарушенного FK-ограничения,
// либо пустую строку. Нарушение FK возможно даже после проверки
// существования в сервисе - строку могли удалить конкурентно.
func foreignKeyConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return pgErr.ConstraintName
	}
	return ""
}
