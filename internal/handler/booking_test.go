package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/travel-backend/internal/domain"
	"github.com/skyroute/travel-backend/internal/handler"
)

// ---- mock BookingServicer --------------------------------------------------

type mockBookingServicer struct {
	create     func(ctx context.Context, booking domain.Booking) (*domain.Booking, string, error)
	listByUser func(ctx context.Context, userID string) ([]domain.Booking, error)
}

func (m *mockBookingServicer) Create(ctx context.Context, b domain.Booking) (*domain.Booking, string, error) {
	return m.create(ctx, b)
}
func (m *mockBookingServicer) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return m.listByUser(ctx, userID)
}

var _ handler.BookingServicer = (*mockBookingServicer)(nil)

func newBookingHTTPHandler(svc handler.BookingServicer) http.Handler {
	return handler.NewServer(nil, nil, svc, nil).Routes()
}

func bookingFixture() domain.Booking {
	userID := "user-1"
	flightNumber := "AI101"
	amount := 12500.0
	return domain.Booking{
		ID:               uuid.New(),
		UserID:           &userID,
		FlightNumber:     &flightNumber,
		TotalAmount:      &amount,
		BookingStatus:    "confirmed",
		BookingReference: "BK20260915080000",
		CreatedAt:        time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
	}
}

// ---- POST /api/bookings/create ---------------------------------------------

func TestCreateBooking_Success(t *testing.T) {
	stored := bookingFixture()
	svc := &mockBookingServicer{
		create: func(_ context.Context, b domain.Booking) (*domain.Booking, string, error) {
			require.NotNil(t, b.UserID)
			assert.Equal(t, "user-1", *b.UserID)
			require.NotNil(t, b.TotalAmount)
			assert.Equal(t, 12500.0, *b.TotalAmount)
			assert.Nil(t, b.PassengerName, "absent fields arrive nil")
			return &stored, stored.BookingReference, nil
		},
	}

	rec := postJSON(t, newBookingHTTPHandler(svc), "/api/bookings/create",
		`{"user_id":"user-1","flight_number":"AI101","total_amount":12500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Booking created successfully", body["message"])
	assert.Equal(t, "BK20260915080000", body["booking_reference"])
	booking, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "confirmed", booking["booking_status"])
}

// TestCreateBooking_NilRowStillReportsReference covers the stub-store path:
// the booking field is null but the generated reference is still returned.
func TestCreateBooking_NilRowStillReportsReference(t *testing.T) {
	svc := &mockBookingServicer{
		create: func(context.Context, domain.Booking) (*domain.Booking, string, error) {
			return nil, "BK20260915080000", nil
		},
	}

	rec := postJSON(t, newBookingHTTPHandler(svc), "/api/bookings/create", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Nil(t, body["booking"])
	assert.Equal(t, "BK20260915080000", body["booking_reference"])
}

func TestCreateBooking_ServiceFailureIs400(t *testing.T) {
	svc := &mockBookingServicer{
		create: func(context.Context, domain.Booking) (*domain.Booking, string, error) {
			return nil, "", domain.ErrUpstreamStore
		},
	}

	rec := postJSON(t, newBookingHTTPHandler(svc), "/api/bookings/create", `{"user_id":"user-1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "storage backend error", decodeBody(t, rec)["error"])
}

// ---- GET /api/bookings/user/{userID} ---------------------------------------

func TestGetUserBookings_EmptyListIsEmptyArray(t *testing.T) {
	svc := &mockBookingServicer{
		listByUser: func(_ context.Context, userID string) ([]domain.Booking, error) {
			assert.Equal(t, "u123", userID)
			return []domain.Booking{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/u123", nil)
	rec := httptest.NewRecorder()
	newBookingHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String(),
		"unknown user ids are an empty list, never an error")
}

func TestGetUserBookings_ReturnsBookings(t *testing.T) {
	svc := &mockBookingServicer{
		listByUser: func(context.Context, string) ([]domain.Booking, error) {
			return []domain.Booking{bookingFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/user-1", nil)
	rec := httptest.NewRecorder()
	newBookingHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	bookings, ok := body["bookings"].([]any)
	require.True(t, ok)
	require.Len(t, bookings, 1)
	first := bookings[0].(map[string]any)
	assert.Equal(t, "BK20260915080000", first["booking_reference"])
	assert.Equal(t, "user-1", first["user_id"])
}

func TestGetUserBookings_ServiceFailureIs400(t *testing.T) {
	svc := &mockBookingServicer{
		listByUser: func(context.Context, string) ([]domain.Booking, error) {
			return nil, domain.ErrUpstreamStore
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/user-1", nil)
	rec := httptest.NewRecorder()
	newBookingHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
