// Package service contains the business logic for the travel backend.
// Services orchestrate calls against the hosted auth provider and the table
// store. No SQL and no HTTP types live here — services depend on the auth
// and repo interfaces, not on implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skyroute/travel-backend/internal/auth"
	"github.com/skyroute/travel-backend/internal/domain"
	"github.com/skyroute/travel-backend/internal/repo"
)

// AuthService implements signup and login against the hosted auth provider.
type AuthService struct {
	auth     auth.Client
	profiles repo.ProfileRepo
}

// NewAuthService constructs an AuthService backed by the provided auth client
// and profile repo.
func NewAuthService(client auth.Client, profiles repo.ProfileRepo) *AuthService {
	return &AuthService{auth: client, profiles: profiles}
}

// SignUp creates an identity with the auth provider, then stores a profile
// row keyed by the new identity's id.
//
// The two calls are independent with no compensation: if the profile insert
// fails after the auth call succeeded, the error propagates and the caller
// sees the same 400 as an auth failure, leaving an orphaned auth identity
// with no profile row. That asymmetry is part of the documented contract.
func (s *AuthService) SignUp(ctx context.Context, email, password string, fullName *string) (auth.Identity, error) {
	identity, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}
	if identity.ID == "" {
		return auth.Identity{}, fmt.Errorf("service.AuthService.SignUp: %w: User creation failed", domain.ErrUpstreamAuth)
	}

	profile := domain.Profile{
		ID:        identity.ID,
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return auth.Identity{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}

	return identity, nil
}

// Login exchanges an email/password pair for the provider's user and session
// objects, both passed through verbatim.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.Credentials, error) {
	creds, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return auth.Credentials{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return creds, nil
}
