package booking

import (
	"context"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/kafka"
	"github.com/akozyreva/airlines/internal/repository"
	"github.com/google/uuid"
)

type TicketRequest struct {
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type CreateOrderInput struct {
	UserID  int64
	Tickets []TicketRequest
}

type OrderPage struct {
	Orders   []domain.OrderDetail
	Total    int
	Page     int
	PageSize int
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, page, pageSize int) (*OrderPage, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	ordersTopic        string
	notificationsTopic string
	seatLockTTL        time.Duration
	pageSize           int
	pageSizeMax        int
}

type OrderServiceOption func(*OrderService)

func WithPageSizes(defaultSize, maxSize int) OrderServiceOption {
	return func(s *OrderService) {
		s.pageSize = defaultSize
		s.pageSizeMax = maxSize
	}
}

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	ordersTopic string,
	seatLockTTL time.Duration,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		flights:     flights,
		cache:       cache,
		producer:    producer,
		ordersTopic: ordersTopic,
		seatLockTTL: seatLockTTL,
		pageSize:    10,
		pageSizeMax: 100,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateOrder validates every requested ticket against its flight's
// airplane geometry, then persists the order and all tickets as one
// transaction. Any failure leaves no partial state behind.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Tickets) == 0 {
		return nil, domain.ErrEmptySelection
	}

	airplanes := make(map[int64]*domain.Airplane)
	requested := make(map[TicketRequest]struct{}, len(input.Tickets))
	for _, req := range input.Tickets {
		airplane, ok := airplanes[req.FlightID]
		if !ok {
			var err error
			airplane, err = s.flights.GetAirplaneFor(ctx, req.FlightID)
			if err != nil {
				return nil, err
			}
			airplanes[req.FlightID] = airplane
		}
		if err := validateSeat(req, airplane); err != nil {
			return nil, err
		}
		if _, dup := requested[req]; dup {
			return nil, &domain.SeatTakenError{FlightID: req.FlightID, Row: req.Row, Seat: req.Seat}
		}
		requested[req] = struct{}{}
	}

	locked, err := s.acquireLocks(ctx, input.Tickets)
	if err != nil {
		s.releaseLocks(ctx, locked)
		return nil, err
	}

	order := &domain.Order{
		Reference: uuid.NewString(),
		UserID:    input.UserID,
		Tickets:   make([]domain.Ticket, 0, len(input.Tickets)),
	}
	for _, req := range input.Tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{FlightID: req.FlightID, Row: req.Row, Seat: req.Seat})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.releaseLocks(ctx, locked)
		return nil, err
	}

	// Tickets are committed; locks and the cached listing are stale.
	s.releaseLocks(ctx, locked)
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	_ = s.publish(ctx, "order_created", order)

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64, page, pageSize int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.pageSize
	}
	if pageSize > s.pageSizeMax {
		pageSize = s.pageSizeMax
	}

	orders, total, err := s.orders.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: orders, Total: total, Page: page, PageSize: pageSize}, nil
}

func validateSeat(req TicketRequest, airplane *domain.Airplane) error {
	if airplane.Rows <= 0 || airplane.SeatsInRow <= 0 {
		return &domain.DataIntegrityError{
			FlightID: req.FlightID,
			Reason:   "airplane has non-positive geometry",
		}
	}
	if req.Row < 1 || req.Row > airplane.Rows {
		return &domain.OutOfRangeError{Field: "row", Value: req.Row, Min: 1, Max: airplane.Rows}
	}
	if req.Seat < 1 || req.Seat > airplane.SeatsInRow {
		return &domain.OutOfRangeError{Field: "seat", Value: req.Seat, Min: 1, Max: airplane.SeatsInRow}
	}
	return nil
}

func (s *OrderService) acquireLocks(ctx context.Context, tickets []TicketRequest) ([]TicketRequest, error) {
	if s.cache == nil {
		return nil, nil
	}
	locked := make([]TicketRequest, 0, len(tickets))
	for _, req := range tickets {
		ok, err := s.cache.AcquireSeatLock(ctx, req.FlightID, req.Row, req.Seat, s.seatLockTTL)
		if err != nil {
			return locked, err
		}
		if !ok {
			return locked, &domain.SeatTakenError{FlightID: req.FlightID, Row: req.Row, Seat: req.Seat}
		}
		locked = append(locked, req)
	}
	return locked, nil
}

func (s *OrderService) releaseLocks(ctx context.Context, locked []TicketRequest) {
	if s.cache == nil {
		return
	}
	for _, req := range locked {
		_ = s.cache.ReleaseSeatLock(ctx, req.FlightID, req.Row, req.Seat)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}
	event := kafka.OrderEvent{
		Type:      eventType,
		Reference: order.Reference,
		OrderID:   order.ID,
		UserID:    order.UserID,
		CreatedAt: order.CreatedAt,
	}
	for _, t := range order.Tickets {
		event.Tickets = append(event.Tickets, kafka.TicketEvent{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}
	if err := s.producer.Publish(ctx, s.ordersTopic, order.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.Reference, event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
