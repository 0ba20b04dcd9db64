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

type locationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO location (country, city)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, location.Country, location.City).Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLocationAlreadyExists
		}
		return err
	}

	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int) (*domain.Location, error) {
	query := `
		SELECT id, country, city
		FROM location
		WHERE id = $1
	`

	location := &domain.Location{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Country,
		&location.City,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}

	return location, nil
}

func (r *locationRepository) FindByCountryAndCity(ctx context.Context, country, city string) (*domain.Location, error) {
	query := `
		SELECT id, country, city
		FROM location
		WHERE country = $1 AND city = $2
	`

	location := &domain.Location{}
	err := r.db.QueryRow(ctx, query, country, city).Scan(
		&location.ID,
		&location.Country,
		&location.City,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}

	return location, nil
}

func (r *locationRepository) GetAll(ctx context.Context) ([]*domain.Location, error) {
	query := `
		SELECT id, country, city
		FROM location
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		location := &domain.Location{}
		err := rows.Scan(
			&location.ID,
			&location.Country,
			&location.City,
		)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, rows.Err()
}

// Delete удаляет локацию и все зависимые строки.
// Каскад реализован явно в коде приложения (не в метаданных БД):
// сначала join-строки достопримечательностей локации и маршрутов,
// ссылающихся на нее, затем сами достопримечательности и маршруты,
// последней - локация. Все внутри одной транзакции.
func (r *locationRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	queries := []string{
		`DELETE FROM itinerary_attraction
		 WHERE id_attraction IN (SELECT id FROM attraction WHERE id_location = $1)`,
		`DELETE FROM itinerary_attraction
		 WHERE id_itinerary IN (SELECT id FROM itinerary WHERE id_destination = $1 OR id_departure = $1)`,
		`DELETE FROM attraction WHERE id_location = $1`,
		`DELETE FROM itinerary WHERE id_destination = $1 OR id_departure = $1`,
	}

	for _, query := range queries {
		if _, err := tx.Exec(ctx, query, id); err != nil {
			return err
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM location WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLocationNotFound
	}

	return tx.Commit(ctx)
}
