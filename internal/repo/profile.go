package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/skyroute/travel-backend/internal/domain"
)

// ProfileRepo defines the persistence operations for Profiles.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ProfileRepo interface {
	// Create inserts a new profile row keyed by the auth identity id.
	Create(ctx context.Context, profile domain.Profile) error

	// GetByID retrieves a profile by identity id.
	// Returns (nil, nil) when no row exists — a missing profile is not an
	// error at the HTTP boundary, it is a 200 with a null body.
	GetByID(ctx context.Context, id string) (*domain.Profile, error)

	// Update applies a partial update: only non-nil fields of update are
	// written, and updated_at is always bumped to now. Returns the updated
	// row, or (nil, nil) when no row matched the id.
	Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error)
}

// pgProfileRepo is the Postgres implementation of ProfileRepo.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

// Create inserts a new profile row. created_at comes from the caller so the
// signup flow stamps the same instant it reports; updated_at starts equal.
func (r *pgProfileRepo) Create(ctx context.Context, profile domain.Profile) error {
	const q = `
		INSERT INTO profiles (id, email, full_name, created_at, updated_at)
		VALUES (@id, @email, @full_name, @created_at, @created_at)`

	args := pgx.NamedArgs{
		"id":         profile.ID,
		"email":      profile.Email,
		"full_name":  profile.FullName, // nil becomes NULL
		"created_at": profile.CreatedAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return storeErr("repo.ProfileRepo.Create", err)
	}
	return nil
}

// GetByID retrieves a profile by primary key.
func (r *pgProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const q = `
		SELECT id, email, full_name, phone, date_of_birth, nationality, created_at, updated_at
		FROM profiles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("repo.ProfileRepo.GetByID", err)
	}
	return &profile, nil
}

// Update writes only the fields present in update. The SET clause is built
// dynamically because omission and "leave unchanged" are the same thing in
// this contract — a nil field must not appear in the statement at all.
func (r *pgProfileRepo) Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error) {
	sets := []string{"updated_at = @updated_at"}
	args := pgx.NamedArgs{
		"id":         id,
		"updated_at": time.Now().UTC(),
	}

	if update.FullName != nil {
		sets = append(sets, "full_name = @full_name")
		args["full_name"] = *update.FullName
	}
	if update.Phone != nil {
		sets = append(sets, "phone = @phone")
		args["phone"] = *update.Phone
	}
	if update.DateOfBirth != nil {
		sets = append(sets, "date_of_birth = @date_of_birth")
		args["date_of_birth"] = *update.DateOfBirth
	}
	if update.Nationality != nil {
		sets = append(sets, "nationality = @nationality")
		args["nationality"] = *update.Nationality
	}

	q := `
		UPDATE profiles
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = @id
		RETURNING id, email, full_name, phone, date_of_birth, nationality, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, args)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("repo.ProfileRepo.Update", err)
	}
	return &profile, nil
}

// scanProfile maps a single database row into a domain.Profile.
// Optional columns scan into pointer fields, so NULL arrives as nil.
func scanProfile(s scanner) (domain.Profile, error) {
	var p domain.Profile
	err := s.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.DateOfBirth, &p.Nationality, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
