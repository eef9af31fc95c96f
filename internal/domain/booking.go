package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatusConfirmed is the only status this service ever writes.
// There is no payment or availability step in front of it.
const BookingStatusConfirmed = "confirmed"

// Booking is a flight booking row. Every passenger/flight field is copied
// verbatim from the request body with no required-field validation, so all of
// them are nullable pointers — an absent field is stored as NULL.
//
// BookingReference is "BK" + the creation instant as YYYYMMDDHHMMSS. The
// second granularity means two bookings created within the same second share
// a reference; that collision is a documented limitation of the upstream
// contract, not something this service deduplicates.
type Booking struct {
	ID               uuid.UUID `json:"id"`
	UserID           *string   `json:"user_id"`
	FlightID         *string   `json:"flight_id"`
	PassengerName    *string   `json:"passenger_name"`
	PassengerEmail   *string   `json:"passenger_email"`
	PassengerPhone   *string   `json:"passenger_phone"`
	Origin           *string   `json:"origin"`
	Destination      *string   `json:"destination"`
	DepartureDate    *string   `json:"departure_date"`
	FlightTime       *string   `json:"flight_time"`
	Airline          *string   `json:"airline"`
	FlightNumber     *string   `json:"flight_number"`
	TotalAmount      *float64  `json:"total_amount"`
	BookingStatus    string    `json:"booking_status"`
	BookingReference string    `json:"booking_reference"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewBookingReference derives the human-facing confirmation code from a
// creation instant: "BK" followed by exactly 14 digits.
func NewBookingReference(t time.Time) string {
	return "BK" + t.Format("20060102150405")
}
