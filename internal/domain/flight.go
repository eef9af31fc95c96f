package domain

// Flight is an ephemeral search result. Flights are never persisted: the
// search endpoint fabricates a fixed set per request with the caller's
// origin/destination/date substituted in.
type Flight struct {
	ID             string  `json:"id"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flight_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration"`
	Price          int     `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
	Date           *string `json:"date"`
}

// SearchParams echoes the normalized query back to the caller alongside the
// flight list.
type SearchParams struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        *string `json:"date"`
	Passengers  int     `json:"passengers"`
}
