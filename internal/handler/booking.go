package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyroute/travel-backend/internal/domain"
)

// createBookingRequest mirrors the booking body. Every field is optional and
// copied verbatim into the stored record — absent fields become NULL columns.
// There is intentionally no required-field validation here.
type createBookingRequest struct {
	UserID         *string  `json:"user_id"`
	FlightID       *string  `json:"flight_id"`
	PassengerName  *string  `json:"passenger_name"`
	PassengerEmail *string  `json:"passenger_email"`
	PassengerPhone *string  `json:"passenger_phone"`
	Origin         *string  `json:"origin"`
	Destination    *string  `json:"destination"`
	DepartureDate  *string  `json:"departure_date"`
	FlightTime     *string  `json:"flight_time"`
	Airline        *string  `json:"airline"`
	FlightNumber   *string  `json:"flight_number"`
	TotalAmount    *float64 `json:"total_amount"`
}

// createBooking handles POST /api/bookings/create.
func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	booking := domain.Booking{
		UserID:         req.UserID,
		FlightID:       req.FlightID,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureDate:  req.DepartureDate,
		FlightTime:     req.FlightTime,
		Airline:        req.Airline,
		FlightNumber:   req.FlightNumber,
		TotalAmount:    req.TotalAmount,
	}

	stored, reference, err := s.bookings.Create(r.Context(), booking)
	if err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	// stored is nil when the store returned no row; the booking field is then
	// null while the generated reference is still reported.
	writeJSON(w, http.StatusOK, map[string]any{
		"message":           "Booking created successfully",
		"booking":           stored,
		"booking_reference": reference,
	})
}

// getUserBookings handles GET /api/bookings/user/{userID}.
// Any caller supplying any user id receives that user's bookings; an unknown
// id is an empty 200 list, not an error.
func (s *Server) getUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	bookings, err := s.bookings.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}
