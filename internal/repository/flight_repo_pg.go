package repository

import (
	"context"
	"errors"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightFilter narrows flight listings to a departure and/or arrival
// calendar date. Route text filtering happens in the service layer.
type FlightFilter struct {
	DepartureDate *time.Time
	ArrivalDate   *time.Time
}

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	List(ctx context.Context, filter FlightFilter) ([]domain.FlightInfo, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightInfo, error)
	GetAirplaneFor(ctx context.Context, flightID int64) (*domain.Airplane, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightInfoSelect = `
	SELECT f.id, f.number, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
	       f.created_at, f.updated_at,
	       src.name, src.close_big_city,
	       dst.name, dst.close_big_city,
	       a.name, a.rows, a.seats_in_row,
	       count(t.id)
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	LEFT JOIN tickets t ON t.flight_id = f.id`

const flightInfoGroup = ` GROUP BY f.id, src.name, src.close_big_city, dst.name, dst.close_big_city, a.name, a.rows, a.seats_in_row`

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (number, route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		flight.Number, flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
}

func (r *PGFlightRepository) List(ctx context.Context, filter FlightFilter) ([]domain.FlightInfo, error) {
	query := flightInfoSelect + `
	WHERE ($1::date IS NULL OR f.departure_time::date = $1::date)
	  AND ($2::date IS NULL OR f.arrival_time::date = $2::date)` +
		flightInfoGroup + `
	ORDER BY f.departure_time DESC`

	rows, err := r.db.Query(ctx, query, filter.DepartureDate, filter.ArrivalDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightInfo, 0)
	for rows.Next() {
		var fi domain.FlightInfo
		if err := scanFlightInfo(rows, &fi); err != nil {
			return nil, err
		}
		flights = append(flights, fi)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightInfo, error) {
	query := flightInfoSelect + ` WHERE f.id = $1` + flightInfoGroup

	row := r.db.QueryRow(ctx, query, id)
	var fi domain.FlightInfo
	if err := scanFlightInfo(row, &fi); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("flight", id)
		}
		return nil, err
	}
	return &fi, nil
}

func (r *PGFlightRepository) GetAirplaneFor(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, a.image_url
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1`, flightID)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("flight", flightID)
		}
		return nil, err
	}
	return &a, nil
}

func scanFlightInfo(row pgx.Row, fi *domain.FlightInfo) error {
	return row.Scan(
		&fi.ID, &fi.Number, &fi.RouteID, &fi.AirplaneID, &fi.DepartureTime, &fi.ArrivalTime,
		&fi.CreatedAt, &fi.UpdatedAt,
		&fi.SourceName, &fi.SourceCity,
		&fi.DestinationName, &fi.DestinationCity,
		&fi.AirplaneName, &fi.Rows, &fi.SeatsInRow,
		&fi.TicketsSold,
	)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
