package domain

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned when an order is requested with no tickets.
var ErrEmptySelection = errors.New("order must contain at least one ticket")

// ErrNotFound is the sentinel wrapped by all missing-entity errors.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is the sentinel wrapped by catalog validation failures.
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError wraps ErrNotFound with the entity kind and id.
func NotFoundError(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// OutOfRangeError reports a ticket row or seat outside the airplane geometry.
type OutOfRangeError struct {
	Field string // "row" or "seat"
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d must be in available range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// SeatTakenError reports a (flight, row, seat) triple that is already booked.
type SeatTakenError struct {
	FlightID int64
	Row      int
	Seat     int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat already booked: flight %d row %d seat %d", e.FlightID, e.Row, e.Seat)
}

// DataIntegrityError reports a flight whose availability cannot be computed,
// e.g. an airplane with non-positive geometry.
type DataIntegrityError struct {
	FlightID int64
	Reason   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("flight %d: %s", e.FlightID, e.Reason)
}
