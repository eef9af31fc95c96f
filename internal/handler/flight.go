package handler

import (
	"net/http"

	"github.com/skyroute/travel-backend/internal/service"
)

// searchFlightsRequest mirrors the search body. Everything is optional; the
// service supplies the normalization and defaults.
type searchFlightsRequest struct {
	Origin        *string `json:"origin"`
	Destination   *string `json:"destination"`
	DepartureDate *string `json:"departure_date"`
	Passengers    *int    `json:"passengers"`
	UserID        *string `json:"user_id"`
}

// searchFlights handles POST /api/flights/search.
// The response always carries exactly the fixed catalog with the caller's
// route substituted in; a failed search-history write fails the whole
// request with the same 400 as anything else.
func (s *Server) searchFlights(w http.ResponseWriter, r *http.Request) {
	var req searchFlightsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	result, err := s.flights.Search(r.Context(), service.SearchQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
		UserID:        req.UserID,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"flights":       result.Flights,
		"search_params": result.Params,
	})
}
