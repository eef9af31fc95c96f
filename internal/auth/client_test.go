package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/travel-backend/internal/auth"
	"github.com/skyroute/travel-backend/internal/domain"
)

// newProviderServer returns an httptest server that plays the auth provider,
// asserting the request shape before answering with the given handler.
func newProviderServer(t *testing.T, wantPath string, respond func(w http.ResponseWriter, body map[string]string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		respond(w, body)
	}))
}

// ---- SignUp ----------------------------------------------------------------

func TestHTTPClient_SignUp_BareUserResponse(t *testing.T) {
	srv := newProviderServer(t, "/auth/v1/signup", func(w http.ResponseWriter, body map[string]string) {
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","email":"ada@example.com","aud":"authenticated"}`))
	})
	defer srv.Close()

	client := auth.NewHTTPClient(srv.URL, "test-key")
	identity, err := client.SignUp(context.Background(), "ada@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

// Providers configured with autoconfirm return a session envelope instead of
// the bare user; the identity then lives under the "user" field.
func TestHTTPClient_SignUp_SessionEnvelopeResponse(t *testing.T) {
	srv := newProviderServer(t, "/auth/v1/signup", func(w http.ResponseWriter, _ map[string]string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","user":{"id":"user-2","email":"ada@example.com"}}`))
	})
	defer srv.Close()

	client := auth.NewHTTPClient(srv.URL, "test-key")
	identity, err := client.SignUp(context.Background(), "ada@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "user-2", identity.ID)
}

func TestHTTPClient_SignUp_ProviderErrorSurfacesMessage(t *testing.T) {
	srv := newProviderServer(t, "/auth/v1/signup", func(w http.ResponseWriter, _ map[string]string) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"msg":"Signup requires a valid password"}`))
	})
	defer srv.Close()

	client := auth.NewHTTPClient(srv.URL, "test-key")
	_, err := client.SignUp(context.Background(), "ada@example.com", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
	assert.ErrorContains(t, err, "Signup requires a valid password")
}

// ---- SignInWithPassword ----------------------------------------------------

func TestHTTPClient_SignIn_SplitsUserOutOfSession(t *testing.T) {
	session := `{"access_token":"tok","token_type":"bearer","user":{"id":"user-1","email":"ada@example.com"}}`
	srv := newProviderServer(t, "/auth/v1/token", func(w http.ResponseWriter, body map[string]string) {
		assert.Equal(t, "ada@example.com", body["email"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(session))
	})
	defer srv.Close()

	client := auth.NewHTTPClient(srv.URL, "test-key")
	creds, err := client.SignInWithPassword(context.Background(), "ada@example.com", "hunter2")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user-1","email":"ada@example.com"}`, string(creds.User))
	assert.JSONEq(t, session, string(creds.Session), "the session is the whole provider response")
}

func TestHTTPClient_SignIn_WrongPassword(t *testing.T) {
	srv := newProviderServer(t, "/auth/v1/token", func(w http.ResponseWriter, _ map[string]string) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	})
	defer srv.Close()

	client := auth.NewHTTPClient(srv.URL, "test-key")
	_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
	assert.ErrorContains(t, err, "Invalid login credentials")
}

func TestHTTPClient_ErrorWithUnparseableBodyFallsBackToStatusText(t *testing.T) {
	srv := newProviderServer(t, "/auth/v1/token", func(w http.ResponseWriter, _ map[string]string) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	})
	defer srv.Close()

	client := auth.NewHTTPClient(srv.URL, "test-key")
	_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "x")

	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
	assert.ErrorContains(t, err, "Bad Gateway")
}

func TestHTTPClient_UnreachableProvider(t *testing.T) {
	client := auth.NewHTTPClient("http://127.0.0.1:1", "test-key")

	_, err := client.SignUp(context.Background(), "ada@example.com", "hunter2")

	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
}

// ---- StubClient ------------------------------------------------------------

func TestStubClient_AlwaysFails(t *testing.T) {
	stub := auth.NewStubClient()

	_, err := stub.SignUp(context.Background(), "a@b.c", "x")
	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
	assert.ErrorContains(t, err, "auth provider not configured")

	_, err = stub.SignInWithPassword(context.Background(), "a@b.c", "x")
	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
}
