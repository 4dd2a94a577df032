package domain

import "time"

// Order bundles one or more tickets bought by a user in a single
// atomic purchase. Orders are immutable once created.
type Order struct {
	ID        int64
	Reference string
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	FlightID int64
	OrderID  int64
	Row      int
	Seat     int
}

// TicketDetail is a ticket joined with its flight for order listings.
type TicketDetail struct {
	Ticket
	FlightNumber    string
	SourceCity      string
	DestinationCity string
	DepartureTime   time.Time
	ArrivalTime     time.Time
}

// OrderDetail is the listing projection of an order with nested
// ticket/flight detail.
type OrderDetail struct {
	ID        int64
	Reference string
	UserID    int64
	CreatedAt time.Time
	Tickets   []TicketDetail
}
