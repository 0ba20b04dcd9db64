package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type attractionRepository struct {
	db *pgxpool.Pool
}

func NewAttractionRepository(db *pgxpool.Pool) repository.AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) Create(ctx context.Context, attraction *domain.Attraction) error {
	query := `
		INSERT INTO attraction (id_location, name, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		attraction.LocationID,
		attraction.Name,
		attraction.Price,
	).Scan(&attraction.ID)

	if err != nil {
		// Локацию могли удалить между проверкой в сервисе и вставкой
		if foreignKeyConstraint(err) != "" {
			return domain.ErrLocationNotFound
		}
		return err
	}

	return nil
}

func (r *attractionRepository) GetByID(ctx context.Context, id int) (*domain.Attraction, error) {
	query := `
		SELECT a.id, a.id_location, a.name, a.price, l.id, l.country, l.city
		FROM attraction a
		JOIN location l ON l.id = a.id_location
		WHERE a.id = $1
	`

	attraction := &domain.Attraction{Location: &domain.Location{}}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&attraction.ID,
		&attraction.LocationID,
		&attraction.Name,
		&attraction.Price,
		&attraction.Location.ID,
		&attraction.Location.Country,
		&attraction.Location.City,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, err
	}

	return attraction, nil
}

func (r *attractionRepository) GetAll(ctx context.Context) ([]*domain.Attraction, error) {
	query := `
		SELECT a.id, a.id_location, a.name, a.price, l.id, l.country, l.city
		FROM attraction a
		JOIN location l ON l.id = a.id_location
		ORDER BY a.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attractions []*domain.Attraction
	for rows.Next() {
		attraction := &domain.Attraction{Location: &domain.Location{}}
		err := rows.Scan(
			&attraction.ID,
			&attraction.LocationID,
			&attraction.Name,
			&attraction.Price,
			&attraction.Location.ID,
			&attraction.Location.Country,
			&attraction.Location.City,
		)
		if err != nil {
			return nil, err
		}
		attractions = append(attractions, attraction)
	}

	return attractions, rows.Err()
}

// Delete удаляет достопримечательность в два шага внутри одной транзакции:
// сначала ее join-строки itinerary_attraction, затем саму строку.
// Пропуск первого шага оставил бы осиротевшие join-строки.
func (r *attractionRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_attraction WHERE id_attraction = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM attraction WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAttractionNotFound
	}

	return tx.Commit(ctx)
}
