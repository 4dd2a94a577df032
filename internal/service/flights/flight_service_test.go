package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) List(ctx context.Context, filter repository.FlightFilter) ([]domain.FlightInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightInfo), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightInfo), args.Error(1)
}

func (m *MockFlightRepository) GetAirplaneFor(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCatalogRepository) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockCatalogRepository) ListDestinations(ctx context.Context, sourceAirportID int64) ([]string, error) {
	args := m.Called(ctx, sourceAirportID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepository) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogRepository) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockCatalogRepository) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockCatalogRepository) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Crew), args.Error(1)
}

func (m *MockCatalogRepository) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCatalogRepository) CreateRoute(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListRoutes(ctx context.Context, filter repository.RouteFilter) ([]domain.RouteInfo, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.RouteInfo), args.Error(1)
}

func (m *MockCatalogRepository) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightInfo), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.FlightInfo) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func flightInfo(id int64, srcCity, dstCity string, rows, seats, sold int) domain.FlightInfo {
	return domain.FlightInfo{
		Flight:          domain.Flight{ID: id, Number: "TBD"},
		SourceCity:      srcCity,
		DestinationCity: dstCity,
		Rows:            rows,
		SeatsInRow:      seats,
		TicketsSold:     sold,
	}
}

func TestFlightService_List_ComputesAvailability(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return([]domain.FlightInfo{
		flightInfo(1, "Riga", "Madrid", 3, 10, 2),
	}, nil).Once()

	result, err := service.List(ctx, Filter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 28, result[0].TicketsAvailable)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_RouteFilterMatchesEitherEndpoint(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return([]domain.FlightInfo{
		flightInfo(1, "Riga", "Madrid", 3, 10, 0),
		flightInfo(2, "Berlin", "Riga", 3, 10, 0),
		flightInfo(3, "Berlin", "Madrid", 3, 10, 0),
	}, nil)

	result, err := service.List(ctx, Filter{Route: "riga"})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)

	// Substring match, case-insensitive.
	result, err = service.List(ctx, Filter{Route: "RIG"})
	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestFlightService_List_SkipsBadGeometry(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return([]domain.FlightInfo{
		flightInfo(1, "Riga", "Madrid", 0, 10, 0),
		flightInfo(2, "Riga", "Madrid", 3, 10, 5),
	}, nil).Once()

	result, err := service.List(ctx, Filter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
}

func TestFlightService_List_DateFiltersPassedToRepository(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	arrival := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	mockRepo.On("List", ctx, repository.FlightFilter{DepartureDate: &date, ArrivalDate: &arrival}).
		Return([]domain.FlightInfo{}, nil).Once()

	result, err := service.List(ctx, Filter{Date: &date, ArrivalDate: &arrival})

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, mockCache)

	ctx := context.Background()
	cached := []domain.FlightInfo{flightInfo(1, "Riga", "Madrid", 3, 10, 0)}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	result, err := service.List(ctx, Filter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, mockCache)

	ctx := context.Background()
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return([]domain.FlightInfo{
		flightInfo(1, "Riga", "Madrid", 3, 10, 0),
	}, nil).Once()

	result, err := service.List(ctx, Filter{Route: "riga"})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	mockCache.AssertNotCalled(t, "GetFlights")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_List_CacheMissPopulates(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, mockCache)

	ctx := context.Background()
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return([]domain.FlightInfo{
		flightInfo(1, "Riga", "Madrid", 3, 10, 1),
	}, nil).Once()
	mockCache.On("SetFlights", ctx, mock.Anything).Return(nil).Once()

	result, err := service.List(ctx, Filter{})

	assert.NoError(t, err)
	assert.Equal(t, 29, result[0].TicketsAvailable)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	expectedErr := errors.New("database error")
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return(nil, expectedErr).Once()

	result, err := service.List(ctx, Filter{})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
}

func TestFlightService_GetByID_ComputesAvailability(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	fi := flightInfo(4, "Riga", "Madrid", 3, 10, 4)
	mockRepo.On("GetByID", ctx, int64(4)).Return(&fi, nil).Once()

	result, err := service.GetByID(ctx, 4)

	assert.NoError(t, err)
	assert.Equal(t, 26, result.TicketsAvailable)
}

func TestFlightService_GetByID_BadGeometry(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, &MockCatalogRepository{}, nil)

	ctx := context.Background()
	fi := flightInfo(4, "Riga", "Madrid", 3, 0, 0)
	mockRepo.On("GetByID", ctx, int64(4)).Return(&fi, nil).Once()

	result, err := service.GetByID(ctx, 4)

	assert.Nil(t, result)
	var integrity *domain.DataIntegrityError
	assert.ErrorAs(t, err, &integrity)
	assert.Equal(t, int64(4), integrity.FlightID)
}

func TestFlightService_Create_ValidatesTimes(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCatalog := &MockCatalogRepository{}

	service := NewFlightService(mockRepo, mockCatalog, nil)

	ctx := context.Background()
	departure := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	flight, err := service.Create(ctx, CreateFlightInput{
		RouteID:       1,
		AirplaneID:    1,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(-time.Hour),
	})

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_DefaultsNumber(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCatalog := &MockCatalogRepository{}

	service := NewFlightService(mockRepo, mockCatalog, nil)

	ctx := context.Background()
	departure := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	mockCatalog.On("GetRoute", ctx, int64(1)).Return(&domain.Route{ID: 1, SourceID: 1, DestinationID: 2}, nil).Once()
	mockCatalog.On("GetAirplane", ctx, int64(2)).Return(&domain.Airplane{ID: 2, Rows: 3, SeatsInRow: 10}, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Once()

	flight, err := service.Create(ctx, CreateFlightInput{
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultFlightNumber, flight.Number)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Create_RouteNotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCatalog := &MockCatalogRepository{}

	service := NewFlightService(mockRepo, mockCatalog, nil)

	ctx := context.Background()
	departure := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	mockCatalog.On("GetRoute", ctx, int64(99)).Return(nil, domain.NotFoundError("route", 99)).Once()

	flight, err := service.Create(ctx, CreateFlightInput{
		RouteID:       99,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(time.Hour),
	})

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Create")
}
