package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/skyroute/travel-backend/internal/domain"
)

// BookingRepo defines the persistence operations for Bookings.
type BookingRepo interface {
	// Create inserts a new booking and returns the persisted record (with
	// store-generated id populated). Returns (nil, nil) only when the store
	// produced no row, which the handler surfaces as a null booking.
	Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error)

	// ListByUser returns all bookings for a user ordered by created_at
	// descending. An unknown user yields an empty list, never an error —
	// there is no authorization or existence check on user_id.
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, user_id, flight_id, passenger_name, passenger_email, passenger_phone,
		origin, destination, departure_date, flight_time, airline, flight_number,
		total_amount, booking_status, booking_reference, created_at`

// Create inserts a booking row and returns the full persisted record.
// Nil pointer fields become NULL columns; nothing is validated here.
func (r *pgBookingRepo) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	const q = `
		INSERT INTO bookings (user_id, flight_id, passenger_name, passenger_email, passenger_phone,
			origin, destination, departure_date, flight_time, airline, flight_number,
			total_amount, booking_status, booking_reference, created_at)
		VALUES (@user_id, @flight_id, @passenger_name, @passenger_email, @passenger_phone,
			@origin, @destination, @departure_date, @flight_time, @airline, @flight_number,
			@total_amount, @booking_status, @booking_reference, @created_at)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"user_id":           booking.UserID,
		"flight_id":         booking.FlightID,
		"passenger_name":    booking.PassengerName,
		"passenger_email":   booking.PassengerEmail,
		"passenger_phone":   booking.PassengerPhone,
		"origin":            booking.Origin,
		"destination":       booking.Destination,
		"departure_date":    booking.DepartureDate,
		"flight_time":       booking.FlightTime,
		"airline":           booking.Airline,
		"flight_number":     booking.FlightNumber,
		"total_amount":      booking.TotalAmount,
		"booking_status":    booking.BookingStatus,
		"booking_reference": booking.BookingReference,
		"created_at":        booking.CreatedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBooking(row)
	if err != nil {
		return nil, storeErr("repo.BookingRepo.Create", err)
	}
	return &result, nil
}

// ListByUser returns the user's bookings, most recent first.
func (r *pgBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = @user_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, storeErr("repo.BookingRepo.ListByUser", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, storeErr("repo.BookingRepo.ListByUser: scan", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("repo.BookingRepo.ListByUser: rows", err)
	}

	return bookings, nil
}

// scanBooking maps a single database row into a domain.Booking.
// All passenger/flight columns are nullable and scan into pointer fields.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b  domain.Booking
		id pgtype.UUID
	)

	err := s.Scan(&id, &b.UserID, &b.FlightID, &b.PassengerName, &b.PassengerEmail, &b.PassengerPhone,
		&b.Origin, &b.Destination, &b.DepartureDate, &b.FlightTime, &b.Airline, &b.FlightNumber,
		&b.TotalAmount, &b.BookingStatus, &b.BookingReference, &b.CreatedAt)
	if err != nil {
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	return b, nil
}
