package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context, filter flights.Filter) ([]domain.FlightInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightInfo), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.FlightInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightInfo), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func newFlightTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, w
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newFlightTestContext(t, "/flights")

	list := []domain.FlightInfo{
		{
			Flight:           domain.Flight{ID: 1, Number: "AB-100"},
			SourceCity:       "Riga",
			DestinationCity:  "Madrid",
			TicketsAvailable: 28,
		},
	}
	mockService.On("List", c.Request.Context(), flights.Filter{}).Return(list, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tickets_available":28`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_withFilters(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newFlightTestContext(t, "/flights?route=Riga&date=2026-06-01")

	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("List", c.Request.Context(), flights.Filter{Route: "Riga", Date: &date}).
		Return([]domain.FlightInfo{}, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_invalidDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newFlightTestContext(t, "/flights?date=01.06.2026")

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List")
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newFlightTestContext(t, "/flights/4")
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	fi := &domain.FlightInfo{
		Flight:           domain.Flight{ID: 4, Number: "AB-100"},
		SourceCity:       "Riga",
		DestinationCity:  "Madrid",
		TicketsAvailable: 30,
	}
	mockService.On("GetByID", c.Request.Context(), int64(4)).Return(fi, nil).Once()

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_notFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newFlightTestContext(t, "/flights/999")
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	mockService.On("GetByID", c.Request.Context(), int64(999)).
		Return(nil, domain.NotFoundError("flight", 999)).Once()

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_get_badGeometry(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newFlightTestContext(t, "/flights/4")
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	mockService.On("GetByID", c.Request.Context(), int64(4)).
		Return(nil, &domain.DataIntegrityError{FlightID: 4, Reason: "airplane has non-positive geometry"}).Once()

	handler.get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
