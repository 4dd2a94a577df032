package domain

type Airport struct {
	ID           int64
	Name         string
	CloseBigCity string
	ImageURL     string
}

// AirportDetail adds the names of airports reachable by routes
// sourced at this airport.
type AirportDetail struct {
	Airport
	Destinations []string
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
}

// RouteInfo is the listing projection of a route with both endpoints resolved.
type RouteInfo struct {
	Route
	SourceName      string
	SourceCity      string
	DestinationName string
	DestinationCity string
}
