package auth

import (
	"context"
	"fmt"

	"github.com/skyroute/travel-backend/internal/domain"
)

// StubClient is the Client substituted at startup when the auth provider
// credentials are missing. The process still starts and serves traffic, but
// every auth-backed call fails with domain.ErrUpstreamAuth, which surfaces as
// the usual 400/401 responses rather than a crash.
type StubClient struct{}

// NewStubClient returns the no-op auth client.
func NewStubClient() *StubClient {
	return &StubClient{}
}

// SignUp always fails: no identity can be created without a provider.
func (*StubClient) SignUp(context.Context, string, string) (Identity, error) {
	return Identity{}, fmt.Errorf("auth.StubClient.SignUp: %w: auth provider not configured", domain.ErrUpstreamAuth)
}

// SignInWithPassword always fails; the login handler turns this into its
// blanket 401.
func (*StubClient) SignInWithPassword(context.Context, string, string) (Credentials, error) {
	return Credentials{}, fmt.Errorf("auth.StubClient.SignInWithPassword: %w: auth provider not configured", domain.ErrUpstreamAuth)
}

// compile-time checks: both implementations must satisfy Client.
var (
	_ Client = (*HTTPClient)(nil)
	_ Client = (*StubClient)(nil)
)
