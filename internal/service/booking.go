package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skyroute/travel-backend/internal/domain"
	"github.com/skyroute/travel-backend/internal/repo"
)

// BookingService implements booking creation and retrieval.
type BookingService struct {
	bookings repo.BookingRepo
}

// NewBookingService constructs a BookingService backed by the provided
// booking repo.
func NewBookingService(bookings repo.BookingRepo) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create stamps the booking (status always "confirmed", reference derived
// from the creation instant) and persists it. Input fields are stored
// verbatim; absent ones stay NULL. There is no payment or availability check.
//
// Returns the stored row (nil when the store produced none) together with
// the generated reference, which is reported even when the row is nil.
func (s *BookingService) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, string, error) {
	now := time.Now()
	booking.BookingStatus = domain.BookingStatusConfirmed
	booking.BookingReference = domain.NewBookingReference(now)
	booking.CreatedAt = now.UTC()

	stored, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, "", fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return stored, booking.BookingReference, nil
}

// ListByUser returns all bookings for the given user id, most recent first.
// Always returns a non-nil slice so an unknown user serializes as an empty
// JSON array, not null. No authorization check ties the caller to the id.
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListByUser: %w", err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}
