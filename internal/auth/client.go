// Package auth wraps the hosted authentication provider behind a narrow
// client interface. The service only ever needs two operations — creating an
// identity and exchanging a password for a session — so the interface stays
// deliberately small and the HTTP implementation speaks the provider's REST
// API directly (no SDK).
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skyroute/travel-backend/internal/domain"
)

// Identity is the opaque user record issued by the provider at signup.
// ID becomes the primary key of the user's profile row.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials is the raw result of a password sign-in. User and Session are
// kept as opaque JSON because the login response passes them through to the
// caller verbatim — this service never inspects or validates them.
type Credentials struct {
	User    json.RawMessage
	Session json.RawMessage
}

// Client defines the operations delegated to the hosted auth provider.
// Defining the interface here lets services take either the real HTTP client
// or the no-op stub selected at startup.
type Client interface {
	// SignUp creates a new identity from an email and password.
	// A zero-ID identity with a nil error means the provider answered but
	// produced no user (the caller maps that to "User creation failed").
	SignUp(ctx context.Context, email, password string) (Identity, error)

	// SignInWithPassword exchanges an email/password pair for a session.
	SignInWithPassword(ctx context.Context, email, password string) (Credentials, error)
}

// HTTPClient is the real Client implementation. It talks to the provider's
// REST endpoints under {baseURL}/auth/v1, authenticating with the project API
// key header the provider issues.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewHTTPClient constructs an HTTPClient for the given project URL and key.
// The underlying http.Client carries a timeout so a hung provider call fails
// the request instead of pinning a goroutine forever.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// credentialsBody is the JSON body both endpoints accept.
type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp calls POST /auth/v1/signup.
// Depending on provider configuration the response is either the bare user
// object or a session wrapping a "user" field; both shapes are handled.
func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (Identity, error) {
	raw, err := c.post(ctx, "/auth/v1/signup", credentialsBody{Email: email, Password: password})
	if err != nil {
		return Identity{}, fmt.Errorf("auth.HTTPClient.SignUp: %w", err)
	}

	var envelope struct {
		Identity
		User *Identity `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Identity{}, fmt.Errorf("auth.HTTPClient.SignUp: decode response: %w: %v", domain.ErrUpstreamAuth, err)
	}
	if envelope.User != nil {
		return *envelope.User, nil
	}
	return envelope.Identity, nil
}

// SignInWithPassword calls POST /auth/v1/token?grant_type=password.
// The whole response body is the session; its "user" field is split out so
// the login handler can return both objects verbatim.
func (c *HTTPClient) SignInWithPassword(ctx context.Context, email, password string) (Credentials, error) {
	raw, err := c.post(ctx, "/auth/v1/token?grant_type=password", credentialsBody{Email: email, Password: password})
	if err != nil {
		return Credentials{}, fmt.Errorf("auth.HTTPClient.SignInWithPassword: %w", err)
	}

	var envelope struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Credentials{}, fmt.Errorf("auth.HTTPClient.SignInWithPassword: decode response: %w: %v", domain.ErrUpstreamAuth, err)
	}

	return Credentials{User: envelope.User, Session: raw}, nil
}

// post sends one JSON request to the provider and returns the raw response
// body. Any non-2xx status is surfaced as domain.ErrUpstreamAuth carrying the
// provider's own error text, which handlers expose to the caller unchanged.
func (c *HTTPClient) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamAuth, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrUpstreamAuth, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamAuth, providerErrorMessage(raw, resp.StatusCode))
	}
	return raw, nil
}

// providerErrorMessage digs the human-readable message out of a provider
// error body. The provider has used several field names across API versions,
// so each is tried in turn before falling back to the HTTP status text.
func providerErrorMessage(raw []byte, status int) string {
	var body struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, m := range []string{body.ErrorDescription, body.Msg, body.Message} {
			if m != "" {
				return m
			}
		}
	}
	return http.StatusText(status)
}
