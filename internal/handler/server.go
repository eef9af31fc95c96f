// Package handler implements the HTTP handlers for the travel backend API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (auth.go, flight.go, booking.go, profile.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyroute/travel-backend/internal/auth"
	"github.com/skyroute/travel-backend/internal/domain"
	"github.com/skyroute/travel-backend/internal/service"
)

// AuthServicer defines the auth operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the provider or the service layer.
type AuthServicer interface {
	SignUp(ctx context.Context, email, password string, fullName *string) (auth.Identity, error)
	Login(ctx context.Context, email, password string) (auth.Credentials, error)
}

// FlightServicer defines the flight search operation the handlers depend on.
type FlightServicer interface {
	Search(ctx context.Context, query service.SearchQuery) (service.SearchResult, error)
}

// BookingServicer defines the booking operations the handlers depend on.
type BookingServicer interface {
	Create(ctx context.Context, booking domain.Booking) (*domain.Booking, string, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// ProfileServicer defines the profile operations the handlers depend on.
type ProfileServicer interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error)
}

// Server holds the dependencies shared by every endpoint.
type Server struct {
	auth     AuthServicer
	flights  FlightServicer
	bookings BookingServicer
	profiles ProfileServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, flights FlightServicer, bookings BookingServicer, profiles ProfileServicer) *Server {
	return &Server{auth: auth, flights: flights, bookings: bookings, profiles: profiles}
}

// Routes returns the full route table. Paths and methods mirror the public
// API contract exactly; middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.home)
	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.signup)
		r.Post("/auth/login", s.login)
		r.Post("/flights/search", s.searchFlights)
		r.Post("/bookings/create", s.createBooking)
		r.Get("/bookings/user/{userID}", s.getUserBookings)
		r.Get("/profile/{userID}", s.getProfile)
		r.Post("/profile/update", s.updateProfile)
	})

	return r
}

// home handles GET /. It is the liveness message the frontend pings on load.
func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Travel App Backend is running!",
		"status":  "success",
	})
}

// health handles GET /healthz with the conventional ops-facing body.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
