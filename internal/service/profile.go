package service

import (
	"context"
	"fmt"

	"github.com/skyroute/travel-backend/internal/domain"
	"github.com/skyroute/travel-backend/internal/repo"
)

// ProfileService implements profile retrieval and partial update.
type ProfileService struct {
	profiles repo.ProfileRepo
}

// NewProfileService constructs a ProfileService backed by the provided
// profile repo.
func NewProfileService(profiles repo.ProfileRepo) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the profile for the given identity id, or nil when none exists.
// A nil profile is not an error — the handler serializes it as null with a
// 200, matching the upstream contract. No authorization check is applied.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	return profile, nil
}

// Update applies a partial update: only the fields present in update are
// written, so an omitted field keeps its stored value and cannot be cleared.
// updated_at is always bumped. Returns the updated row, or nil when no
// profile matched the id.
func (s *ProfileService) Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.profiles.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return profile, nil
}
