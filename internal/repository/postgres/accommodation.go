package postgres

import (
	"context"
	"errors"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accommodationRepository struct {
	db *pgxpool.Pool
}

func NewAccommodationRepository(db *pgxpool.Pool) repository.AccommodationRepository {
	return &accommodationRepository{db: db}
}

func (r *accommodationRepository) Create(ctx context.Context, accommodation *domain.Accommodation) error {
	query := `
		INSERT INTO accommodation (name, address, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		accommodation.Name,
		accommodation.Address,
		accommodation.Price,
	).Scan(&accommodation.ID)
}

func (r *accommodationRepository) GetByID(ctx context.Context, id int) (*domain.Accommodation, error) {
	query := `
		SELECT id, name, address, price
		FROM accommodation
		WHERE id = $1
	`

	accommodation := &domain.Accommodation{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&accommodation.ID,
		&accommodation.Name,
		&accommodation.Address,
		&accommodation.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccommodationNotFound
		}
		return nil, err
	}

	return accommodation, nil
}

func (r *accommodationRepository) GetAll(ctx context.Context) ([]*domain.Accommodation, error) {
	query := `
		SELECT id, name, address, price
		FROM accommodation
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accommodations []*domain.Accommodation
	for rows.Next() {
		accommodation := &domain.Accommodation{}
		err := rows.Scan(
			&accommodation.ID,
			&accommodation.Name,
			&accommodation.Address,
			&accommodation.Price,
		)
		if err != nil {
			return nil, err
		}
		accommodations = append(accommodations, accommodation)
	}

	return accommodations, rows.Err()
}

func (r *accommodationRepository) Update(ctx context.Context, accommodation *domain.Accommodation) error {
	query := `
		UPDATE accommodation
		SET name = $2, address = $3, price = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.Address,
		accommodation.Price,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAccommodationNotFound
	}

	return nil
}

func (r *accommodationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM accommodation WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAccommodationNotFound
	}

	return nil
}
