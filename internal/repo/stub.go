package repo

import (
	"context"

	"github.com/skyroute/travel-backend/internal/domain"
)

// Stub implementations are substituted at startup when the table store is not
// configured. They satisfy the same interfaces as the Postgres repos but
// every call silently succeeds with empty data, so the service keeps serving
// requests instead of refusing to start. main logs the substitution loudly —
// empty responses from a misconfigured deployment should be traceable to one
// obvious startup log line.

// StubProfileRepo is the no-op ProfileRepo.
type StubProfileRepo struct{}

// NewStubProfileRepo returns the no-op ProfileRepo.
func NewStubProfileRepo() ProfileRepo { return StubProfileRepo{} }

// Create discards the profile.
func (StubProfileRepo) Create(context.Context, domain.Profile) error { return nil }

// GetByID reports every profile as absent.
func (StubProfileRepo) GetByID(context.Context, string) (*domain.Profile, error) {
	return nil, nil
}

// Update matches no row.
func (StubProfileRepo) Update(context.Context, string, domain.ProfileUpdate) (*domain.Profile, error) {
	return nil, nil
}

// StubBookingRepo is the no-op BookingRepo.
type StubBookingRepo struct{}

// NewStubBookingRepo returns the no-op BookingRepo.
func NewStubBookingRepo() BookingRepo { return StubBookingRepo{} }

// Create discards the booking and returns no stored row, which the handler
// reports as a null booking alongside the generated reference.
func (StubBookingRepo) Create(context.Context, domain.Booking) (*domain.Booking, error) {
	return nil, nil
}

// ListByUser returns no bookings for any user.
func (StubBookingRepo) ListByUser(context.Context, string) ([]domain.Booking, error) {
	return nil, nil
}

// StubSearchHistoryRepo is the no-op SearchHistoryRepo.
type StubSearchHistoryRepo struct{}

// NewStubSearchHistoryRepo returns the no-op SearchHistoryRepo.
func NewStubSearchHistoryRepo() SearchHistoryRepo { return StubSearchHistoryRepo{} }

// Create discards the entry.
func (StubSearchHistoryRepo) Create(context.Context, domain.SearchHistoryEntry) error { return nil }
