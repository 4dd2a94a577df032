package repository

import (
	"context"
	"errors"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouteFilter narrows route listings by case-insensitive substring match
// on the close-big-city label of an endpoint.
type RouteFilter struct {
	Source      string
	Destination string
}

type CatalogRepository interface {
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	ListDestinations(ctx context.Context, sourceAirportID int64) ([]string, error)

	CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)

	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)

	CreateCrew(ctx context.Context, crew *domain.Crew) error
	ListCrew(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)

	CreateRoute(ctx context.Context, route *domain.Route) error
	ListRoutes(ctx context.Context, filter RouteFilter) ([]domain.RouteInfo, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
}

type PGCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGCatalogRepository{db: db}
}

func (r *PGCatalogRepository) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (name, close_big_city, image_url) VALUES ($1, $2, $3) RETURNING id`,
		airport.Name, airport.CloseBigCity, airport.ImageURL).Scan(&airport.ID)
}

func (r *PGCatalogRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, close_big_city, image_url FROM airports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.CloseBigCity, &a.ImageURL); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGCatalogRepository) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, close_big_city, image_url FROM airports WHERE id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Name, &a.CloseBigCity, &a.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("airport", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGCatalogRepository) ListDestinations(ctx context.Context, sourceAirportID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT dst.name
		FROM routes r
		JOIN airports dst ON dst.id = r.destination_id
		WHERE r.source_id = $1
		ORDER BY dst.name`, sourceAirportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PGCatalogRepository) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
}

func (r *PGCatalogRepository) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGCatalogRepository) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id)
	var t domain.AirplaneType
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("airplane type", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGCatalogRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id, image_url)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID, airplane.ImageURL).Scan(&airplane.ID)
}

func (r *PGCatalogRepository) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, rows, seats_in_row, airplane_type_id, image_url FROM airplanes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.ImageURL); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGCatalogRepository) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, rows, seats_in_row, airplane_type_id, image_url FROM airplanes WHERE id=$1`, id)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("airplane", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGCatalogRepository) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	return r.db.QueryRow(ctx, `INSERT INTO crew (first_name, last_name, image_url) VALUES ($1, $2, $3) RETURNING id`,
		crew.FirstName, crew.LastName, crew.ImageURL).Scan(&crew.ID)
}

func (r *PGCatalogRepository) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, image_url FROM crew ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.ImageURL); err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	return members, rows.Err()
}

func (r *PGCatalogRepository) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, image_url FROM crew WHERE id=$1`, id)
	var c domain.Crew
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("crew member", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCatalogRepository) CreateRoute(ctx context.Context, route *domain.Route) error {
	return r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id) VALUES ($1, $2) RETURNING id`,
		route.SourceID, route.DestinationID).Scan(&route.ID)
}

func (r *PGCatalogRepository) ListRoutes(ctx context.Context, filter RouteFilter) ([]domain.RouteInfo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.source_id, r.destination_id,
		       src.name, src.close_big_city,
		       dst.name, dst.close_big_city
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE ($1 = '' OR src.close_big_city ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR dst.close_big_city ILIKE '%' || $2 || '%')
		ORDER BY src.name, dst.name`, filter.Source, filter.Destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.RouteInfo, 0)
	for rows.Next() {
		var ri domain.RouteInfo
		if err := rows.Scan(&ri.ID, &ri.SourceID, &ri.DestinationID,
			&ri.SourceName, &ri.SourceCity, &ri.DestinationName, &ri.DestinationCity); err != nil {
			return nil, err
		}
		routes = append(routes, ri)
	}
	return routes, rows.Err()
}

func (r *PGCatalogRepository) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, `SELECT id, source_id, destination_id FROM routes WHERE id=$1`, id)
	var route domain.Route
	if err := row.Scan(&route.ID, &route.SourceID, &route.DestinationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("route", id)
		}
		return nil, err
	}
	return &route, nil
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
