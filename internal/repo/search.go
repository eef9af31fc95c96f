package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/skyroute/travel-backend/internal/domain"
)

// SearchHistoryRepo records flight searches for known users.
// The table is write-only from this service's point of view.
type SearchHistoryRepo interface {
	// Create inserts one search history row.
	Create(ctx context.Context, entry domain.SearchHistoryEntry) error
}

// pgSearchHistoryRepo is the Postgres implementation of SearchHistoryRepo.
type pgSearchHistoryRepo struct {
	db db
}

// NewSearchHistoryRepo constructs a SearchHistoryRepo backed by the provided
// db connection.
func NewSearchHistoryRepo(db db) SearchHistoryRepo {
	return &pgSearchHistoryRepo{db: db}
}

// Create inserts a search history row. The row id is store-generated and
// never read back, so the insert returns nothing.
func (r *pgSearchHistoryRepo) Create(ctx context.Context, entry domain.SearchHistoryEntry) error {
	const q = `
		INSERT INTO search_history (user_id, origin, destination, departure_date, passengers, searched_at)
		VALUES (@user_id, @origin, @destination, @departure_date, @passengers, @searched_at)`

	args := pgx.NamedArgs{
		"user_id":        entry.UserID,
		"origin":         entry.Origin,
		"destination":    entry.Destination,
		"departure_date": entry.DepartureDate,
		"passengers":     entry.Passengers,
		"searched_at":    entry.SearchedAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return storeErr("repo.SearchHistoryRepo.Create", err)
	}
	return nil
}
