package catalog

import (
	"context"
	"fmt"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/repository"
)

type CreateAirportInput struct {
	Name         string
	CloseBigCity string
	ImageURL     string
}

type CreateAirplaneInput struct {
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
	ImageURL       string
}

type CreateCrewInput struct {
	FirstName string
	LastName  string
	ImageURL  string
}

type CreateRouteInput struct {
	SourceID      int64
	DestinationID int64
}

type CatalogUseCase interface {
	CreateAirport(ctx context.Context, input CreateAirportInput) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirportDetail(ctx context.Context, id int64) (*domain.AirportDetail, error)

	CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error)
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)

	CreateAirplane(ctx context.Context, input CreateAirplaneInput) (*domain.Airplane, error)
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)

	CreateCrew(ctx context.Context, input CreateCrewInput) (*domain.Crew, error)
	ListCrew(ctx context.Context) ([]domain.Crew, error)

	CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
	ListRoutes(ctx context.Context, filter repository.RouteFilter) ([]domain.RouteInfo, error)
}

type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateAirport(ctx context.Context, input CreateAirportInput) (*domain.Airport, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: airport name is required", domain.ErrInvalidInput)
	}
	if input.CloseBigCity == "" {
		return nil, fmt.Errorf("%w: close big city is required", domain.ErrInvalidInput)
	}
	airport := &domain.Airport{Name: input.Name, CloseBigCity: input.CloseBigCity, ImageURL: input.ImageURL}
	if err := s.repo.CreateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.ListAirports(ctx)
}

// GetAirportDetail resolves the airport along with the names of airports
// reachable via routes sourced at it.
func (s *CatalogService) GetAirportDetail(ctx context.Context, id int64) (*domain.AirportDetail, error) {
	airport, err := s.repo.GetAirport(ctx, id)
	if err != nil {
		return nil, err
	}
	destinations, err := s.repo.ListDestinations(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AirportDetail{Airport: *airport, Destinations: destinations}, nil
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: airplane type name is required", domain.ErrInvalidInput)
	}
	t := &domain.AirplaneType{Name: name}
	if err := s.repo.CreateAirplaneType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.repo.ListAirplaneTypes(ctx)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, input CreateAirplaneInput) (*domain.Airplane, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: airplane name is required", domain.ErrInvalidInput)
	}
	if input.Rows < 1 {
		return nil, fmt.Errorf("%w: rows must be at least 1", domain.ErrInvalidInput)
	}
	if input.SeatsInRow < 1 {
		return nil, fmt.Errorf("%w: seats in row must be at least 1", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetAirplaneType(ctx, input.AirplaneTypeID); err != nil {
		return nil, err
	}
	airplane := &domain.Airplane{
		Name:           input.Name,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
		ImageURL:       input.ImageURL,
	}
	if err := s.repo.CreateAirplane(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *CatalogService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.repo.ListAirplanes(ctx)
}

func (s *CatalogService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.repo.GetAirplane(ctx, id)
}

func (s *CatalogService) CreateCrew(ctx context.Context, input CreateCrewInput) (*domain.Crew, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	crew := &domain.Crew{FirstName: input.FirstName, LastName: input.LastName, ImageURL: input.ImageURL}
	if err := s.repo.CreateCrew(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func (s *CatalogService) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	return s.repo.ListCrew(ctx)
}

func (s *CatalogService) CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error) {
	if input.SourceID == input.DestinationID {
		return nil, fmt.Errorf("%w: source and destination must differ", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetAirport(ctx, input.SourceID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetAirport(ctx, input.DestinationID); err != nil {
		return nil, err
	}
	route := &domain.Route{SourceID: input.SourceID, DestinationID: input.DestinationID}
	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *CatalogService) ListRoutes(ctx context.Context, filter repository.RouteFilter) ([]domain.RouteInfo, error) {
	return s.repo.ListRoutes(ctx, filter)
}

var _ CatalogUseCase = (*CatalogService)(nil)
