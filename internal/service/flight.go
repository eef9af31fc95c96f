package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skyroute/travel-backend/internal/domain"
	"github.com/skyroute/travel-backend/internal/repo"
)

// SearchQuery carries the raw, un-normalized flight search input.
// Pointer fields distinguish absent from provided; normalization (upper-case,
// defaults) happens in Search so every caller gets identical behavior.
type SearchQuery struct {
	Origin        *string
	Destination   *string
	DepartureDate *string
	Passengers    *int
	UserID        *string
}

// SearchResult bundles the synthetic flight list with the normalized
// parameters echoed back to the caller.
type SearchResult struct {
	Flights []domain.Flight
	Params  domain.SearchParams
}

// flightCatalog is the fixed set of results every search returns.
// Origin, destination, and date are filled in per request; everything else —
// airline, times, price, seats — is constant regardless of the query.
// A real availability engine is explicitly out of scope for this service.
var flightCatalog = []domain.Flight{
	{
		ID:             "FL001",
		Airline:        "Air India",
		FlightNumber:   "AI101",
		DepartureTime:  "08:00 AM",
		ArrivalTime:    "10:30 AM",
		Duration:       "2h 30m",
		Price:          12500,
		SeatsAvailable: 45,
	},
	{
		ID:             "FL002",
		Airline:        "IndiGo",
		FlightNumber:   "6E202",
		DepartureTime:  "14:15 PM",
		ArrivalTime:    "16:45 PM",
		Duration:       "2h 30m",
		Price:          8900,
		SeatsAvailable: 32,
	},
	{
		ID:             "FL003",
		Airline:        "SpiceJet",
		FlightNumber:   "SG303",
		DepartureTime:  "19:30 PM",
		ArrivalTime:    "22:00 PM",
		Duration:       "2h 30m",
		Price:          7600,
		SeatsAvailable: 28,
	},
}

// FlightService implements the mock flight search.
type FlightService struct {
	history repo.SearchHistoryRepo
}

// NewFlightService constructs a FlightService backed by the provided search
// history repo.
func NewFlightService(history repo.SearchHistoryRepo) *FlightService {
	return &FlightService{history: history}
}

// Search normalizes the query (origin/destination upper-cased, empty when
// absent, passengers defaulting to 1) and returns the catalog with the
// query's route and date substituted into every entry.
//
// When the query carries a user id, a search history row is written as a side
// effect. A history write failure fails the whole search — the caller cannot
// tell it apart from any other search failure.
func (s *FlightService) Search(ctx context.Context, query SearchQuery) (SearchResult, error) {
	params := domain.SearchParams{
		Origin:      strings.ToUpper(deref(query.Origin)),
		Destination: strings.ToUpper(deref(query.Destination)),
		Date:        query.DepartureDate,
		Passengers:  1,
	}
	if query.Passengers != nil {
		params.Passengers = *query.Passengers
	}

	flights := make([]domain.Flight, len(flightCatalog))
	for i, f := range flightCatalog {
		f.Origin = params.Origin
		f.Destination = params.Destination
		f.Date = params.Date
		flights[i] = f
	}

	if query.UserID != nil {
		entry := domain.SearchHistoryEntry{
			UserID:        *query.UserID,
			Origin:        params.Origin,
			Destination:   params.Destination,
			DepartureDate: params.Date,
			Passengers:    params.Passengers,
			SearchedAt:    time.Now().UTC(),
		}
		if err := s.history.Create(ctx, entry); err != nil {
			return SearchResult{}, fmt.Errorf("service.FlightService.Search: %w", err)
		}
	}

	return SearchResult{Flights: flights, Params: params}, nil
}

// deref returns the pointed-to string, or "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
