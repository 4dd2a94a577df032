package flights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/repository"
)

// Filter narrows flight listings. Route matches a substring of either
// endpoint's close-big-city label, case-insensitively. Dates match the
// calendar date portion of departure/arrival.
type Filter struct {
	Route       string
	Date        *time.Time
	ArrivalDate *time.Time
}

func (f Filter) empty() bool {
	return f.Route == "" && f.Date == nil && f.ArrivalDate == nil
}

type CreateFlightInput struct {
	Number        string
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
}

type FlightUseCase interface {
	List(ctx context.Context, filter Filter) ([]domain.FlightInfo, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightInfo, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.FlightInfo, error)
	SetFlights(ctx context.Context, flights []domain.FlightInfo) error
}

type FlightService struct {
	repo    repository.FlightRepository
	catalog repository.CatalogRepository
	cache   Cache
}

func NewFlightService(repo repository.FlightRepository, catalog repository.CatalogRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, catalog: catalog, cache: cache}
}

// List returns flights ordered by descending departure time with
// tickets_available derived from the airplane geometry and sold count.
// Flights whose geometry cannot yield a capacity are skipped.
func (s *FlightService) List(ctx context.Context, filter Filter) ([]domain.FlightInfo, error) {
	if filter.empty() && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	raw, err := s.repo.List(ctx, repository.FlightFilter{
		DepartureDate: filter.Date,
		ArrivalDate:   filter.ArrivalDate,
	})
	if err != nil {
		return nil, err
	}

	route := strings.ToLower(filter.Route)
	result := make([]domain.FlightInfo, 0, len(raw))
	for _, fi := range raw {
		if fi.Rows <= 0 || fi.SeatsInRow <= 0 {
			continue
		}
		if route != "" && !matchesRoute(fi, route) {
			continue
		}
		fi.TicketsAvailable = fi.Rows*fi.SeatsInRow - fi.TicketsSold
		result = append(result, fi)
	}

	if filter.empty() && s.cache != nil {
		_ = s.cache.SetFlights(ctx, result)
	}
	return result, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.FlightInfo, error) {
	fi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fi.Rows <= 0 || fi.SeatsInRow <= 0 {
		return nil, &domain.DataIntegrityError{
			FlightID: id,
			Reason:   fmt.Sprintf("airplane %q has non-positive geometry (%d rows, %d seats per row)", fi.AirplaneName, fi.Rows, fi.SeatsInRow),
		}
	}
	fi.TicketsAvailable = fi.Rows*fi.SeatsInRow - fi.TicketsSold
	return fi, nil
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if !input.ArrivalTime.After(input.DepartureTime) {
		return nil, fmt.Errorf("%w: arrival time must be after departure time", domain.ErrInvalidInput)
	}
	if _, err := s.catalog.GetRoute(ctx, input.RouteID); err != nil {
		return nil, err
	}
	if _, err := s.catalog.GetAirplane(ctx, input.AirplaneID); err != nil {
		return nil, err
	}

	number := input.Number
	if number == "" {
		number = domain.DefaultFlightNumber
	}
	flight := &domain.Flight{
		Number:        number,
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func matchesRoute(fi domain.FlightInfo, route string) bool {
	return strings.Contains(strings.ToLower(fi.SourceCity), route) ||
		strings.Contains(strings.ToLower(fi.DestinationCity), route)
}

var _ FlightUseCase = (*FlightService)(nil)
