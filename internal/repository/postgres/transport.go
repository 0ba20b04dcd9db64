package postgres

import (
	"context"
	"errors"

	"github.com/itinerease/backend/internal/domain"
	"github.com/itinerease/backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transportRepository struct {
	db *pgxpool.Pool
}

func NewTransportRepository(db *pgxpool.Pool) repository.TransportRepository {
	return &transportRepository{db: db}
}

func (r *transportRepository) Create(ctx context.Context, transport *domain.Transport) error {
	query := `
		INSERT INTO transport (type, price)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, transport.Type, transport.Price).Scan(&transport.ID)
}

func (r *transportRepository) GetByID(ctx context.Context, id int) (*domain.Transport, error) {
	query := `
		SELECT id, type, price
		FROM transport
		WHERE id = $1
	`

	transport := &domain.Transport{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&transport.ID,
		&transport.Type,
		&transport.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransportNotFound
		}
		return nil, err
	}

	return transport, nil
}

func (r *transportRepository) GetAll(ctx context.Context) ([]*domain.Transport, error) {
	query := `
		SELECT id, type, price
		FROM transport
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transports []*domain.Transport
	for rows.Next() {
		transport := &domain.Transport{}
		err := rows.Scan(
			&transport.ID,
			&transport.Type,
			&transport.Price,
		)
		if err != nil {
			return nil, err
		}
		transports = append(transports, transport)
	}

	return transports, rows.Err()
}

func (r *transportRepository) Update(ctx context.Context, transport *domain.Transport) error {
	query := `
		UPDATE transport
		SET type = $2, price = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, transport.ID, transport.Type, transport.Price)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTransportNotFound
	}

	return nil
}

func (r *transportRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM transport WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTransportNotFound
	}

	return nil
}
