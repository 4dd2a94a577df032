package domain

import "time"

// DefaultFlightNumber is assigned when a flight is created without a number.
const DefaultFlightNumber = "TBD"

type Flight struct {
	ID            int64
	Number        string
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FlightInfo is the listing projection of a flight: route endpoints,
// airplane geometry and the number of tickets already sold.
// TicketsAvailable is derived as rows*seats_in_row - TicketsSold.
type FlightInfo struct {
	Flight
	SourceName       string
	SourceCity       string
	DestinationName  string
	DestinationCity  string
	AirplaneName     string
	Rows             int
	SeatsInRow       int
	TicketsSold      int
	TicketsAvailable int
}
