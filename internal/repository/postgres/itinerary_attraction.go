package postgres

import (
	"context"
	"strings"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type itineraryAttractionRepository struct {
	db *pgxpool.Pool
}

func NewItineraryAttractionRepository(db *pgxpool.Pool) repository.ItineraryAttractionRepository {
	return &itineraryAttractionRepository{db: db}
}

// Create вставляет одну join-строку. Составной первичный ключ
// (id_itinerary, id_attraction) гарантирует максимум одну связь на пару.
func (r *itineraryAttractionRepository) Create(ctx context.Context, link *domain.ItineraryAttraction) error {
	query := `
		INSERT INTO itinerary_attraction (id_itinerary, id_attraction)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, link.ItineraryID, link.AttractionID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrItineraryAttractionAlreadyExists
		}
		// Маршрут или достопримечательность могли удалить между проверкой
		// существования в сервисе и вставкой join-строки
		if notFound := linkNotFoundError(err); notFound != nil {
			return notFound
		}
		return err
	}

	return nil
}

// linkNotFoundError маппит нарушение FK join-таблицы на not-found ошибку
// исчезнувшей стороны, либо возвращает nil для остальных ошибок
func linkNotFoundError(err error) error {
	switch constraint := foreignKeyConstraint(err); {
	case strings.Contains(constraint, "id_itinerary"):
		return domain.ErrItineraryNotFound
	case strings.Contains(constraint, "id_attraction"):
		return domain.ErrAttractionNotFound
	}
	return nil
}

func (r *itineraryAttractionRepository) GetAll(ctx context.Context) ([]*domain.ItineraryAttraction, error) {
	query := `
		SELECT id_itinerary, id_attraction
		FROM itinerary_attraction
		ORDER BY id_itinerary, id_attraction
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLinks(rows)
}

// DeleteByAttractionID удаляет все связи достопримечательности разом.
// Ноль удаленных строк - не ошибка: bulk-очистка перед удалением
// достопримечательности должна быть идемпотентной.
func (r *itineraryAttractionRepository) DeleteByAttractionID(ctx context.Context, attractionID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM itinerary_attraction WHERE id_attraction = $1`, attractionID)
	return err
}

func scanLinks(rows pgx.Rows) ([]*domain.ItineraryAttraction, error) {
	var links []*domain.ItineraryAttraction
	for rows.Next() {
		link := &domain.ItineraryAttraction{}
		if err := rows.Scan(&link.ItineraryID, &link.AttractionID); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
