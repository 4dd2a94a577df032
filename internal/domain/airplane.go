package domain

type AirplaneType struct {
	ID   int64
	Name string
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
	ImageURL       string
}

// Capacity is the total number of seats on the airplane.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
