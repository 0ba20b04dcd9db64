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

type itineraryRepository struct {
	db *pgxpool.Pool
}

func NewItineraryRepository(db *pgxpool.Pool) repository.ItineraryRepository {
	return &itineraryRepository{db: db}
}

const itinerarySelect = `
	SELECT i.id, i.id_destination, i.id_departure, i.id_transport, i.id_accommodation,
	       i.id_user, i.name, i.departure_date, i.arrival_date, i.budget, i.persons,
	       dst.country, dst.city,
	       dep.country, dep.city,
	       t.type, t.price,
	       ac.name, ac.address, ac.price
	FROM itinerary i
	JOIN location dst ON dst.id = i.id_destination
	JOIN location dep ON dep.id = i.id_departure
	JOIN transport t ON t.id = i.id_transport
	JOIN accommodation ac ON ac.id = i.id_accommodation
`

// CreateAggregate создает маршрут вместе с его транспортом, жильем и
// локациями в одной транзакции. Локации разрешаются по паре (country, city):
// существующая строка переиспользуется, новая пара создается ровно один раз.
// Любая ошибка откатывает всё - частично созданных строк не остается.
func (r *itineraryRepository) CreateAggregate(
	ctx context.Context,
	itinerary *domain.Itinerary,
	destination, departure *domain.Location,
	transport *domain.Transport,
	accommodation *domain.Accommodation,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Пользователь должен существовать до любой вставки
	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, itinerary.UserID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	if err := resolveLocation(ctx, tx, destination); err != nil {
		return err
	}
	if err := resolveLocation(ctx, tx, departure); err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO transport (type, price) VALUES ($1, $2) RETURNING id`,
		transport.Type, transport.Price,
	).Scan(&transport.ID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO accommodation (name, address, price) VALUES ($1, $2, $3) RETURNING id`,
		accommodation.Name, accommodation.Address, accommodation.Price,
	).Scan(&accommodation.ID)
	if err != nil {
		return err
	}

	itinerary.DestinationID = destination.ID
	itinerary.DepartureID = departure.ID
	itinerary.TransportID = transport.ID
	itinerary.AccommodationID = accommodation.ID

	err = tx.QueryRow(ctx, `
		INSERT INTO itinerary (id_destination, id_departure, id_transport, id_accommodation,
		                       id_user, name, departure_date, arrival_date, budget, persons)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		itinerary.DestinationID,
		itinerary.DepartureID,
		itinerary.TransportID,
		itinerary.AccommodationID,
		itinerary.UserID,
		itinerary.Name,
		itinerary.DepartureDate,
		itinerary.ArrivalDate,
		itinerary.Budget,
		itinerary.Persons,
	).Scan(&itinerary.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// resolveLocation реализует find-or-create по паре (country, city)
// внутри транзакции
func resolveLocation(ctx context.Context, tx pgx.Tx, location *domain.Location) error {
	err := tx.QueryRow(ctx,
		`SELECT id FROM location WHERE country = $1 AND city = $2`,
		location.Country, location.City,
	).Scan(&location.ID)

	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	return tx.QueryRow(ctx,
		`INSERT INTO location (country, city) VALUES ($1, $2) RETURNING id`,
		location.Country, location.City,
	).Scan(&location.ID)
}

func (r *itineraryRepository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	itinerary, err := scanItinerary(r.db.QueryRow(ctx, itinerarySelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItineraryNotFound
		}
		return nil, err
	}
	return itinerary, nil
}

func (r *itineraryRepository) GetAll(ctx context.Context) ([]*domain.Itinerary, error) {
	rows, err := r.db.Query(ctx, itinerarySelect+` ORDER BY i.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var itineraries []*domain.Itinerary
	for rows.Next() {
		itinerary, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	return itineraries, rows.Err()
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	query := `
		UPDATE itinerary
		SET id_destination = $2, id_departure = $3, id_transport = $4, id_accommodation = $5,
		    id_user = $6, name = $7, departure_date = $8, arrival_date = $9, budget = $10, persons = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		itinerary.ID,
		itinerary.DestinationID,
		itinerary.DepartureID,
		itinerary.TransportID,
		itinerary.AccommodationID,
		itinerary.UserID,
		itinerary.Name,
		itinerary.DepartureDate,
		itinerary.ArrivalDate,
		itinerary.Budget,
		itinerary.Persons,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrItineraryNotFound
	}

	return nil
}

// Delete удаляет маршрут и его join-строки. Строки transport/accommodation,
// локации и пользователь остаются (каскада на каталоги нет).
func (r *itineraryRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_attraction WHERE id_itinerary = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM itinerary WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrItineraryNotFound
	}

	return tx.Commit(ctx)
}

func scanItinerary(row pgx.Row) (*domain.Itinerary, error) {
	itinerary := &domain.Itinerary{
		Destination:   &domain.Location{},
		Departure:     &domain.Location{},
		Transport:     &domain.Transport{},
		Accommodation: &domain.Accommodation{},
	}

	err := row.Scan(
		&itinerary.ID,
		&itinerary.DestinationID,
		&itinerary.DepartureID,
		&itinerary.TransportID,
		&itinerary.AccommodationID,
		&itinerary.UserID,
		&itinerary.Name,
		&itinerary.DepartureDate,
		&itinerary.ArrivalDate,
		&itinerary.Budget,
		&itinerary.Persons,
		&itinerary.Destination.Country,
		&itinerary.Destination.City,
		&itinerary.Departure.Country,
		&itinerary.Departure.City,
		&itinerary.Transport.Type,
		&itinerary.Transport.Price,
		&itinerary.Accommodation.Name,
		&itinerary.Accommodation.Address,
		&itinerary.Accommodation.Price,
	)
	if err != nil {
		return nil, err
	}

	itinerary.Destination.ID = itinerary.DestinationID
	itinerary.Departure.ID = itinerary.DepartureID
	itinerary.Transport.ID = itinerary.TransportID
	itinerary.Accommodation.ID = itinerary.AccommodationID

	return itinerary, nil
}
