package handler

import (
	"encoding/json"
	"net/http"
)

// signupRequest mirrors the signup body. Fields are pointers because nothing
// is validated here: an absent email or password is forwarded as empty and
// the provider's rejection becomes the 400 the caller sees.
type signupRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
}

type loginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// loginResponse passes the provider's user and session objects through
// verbatim. Nil RawMessage fields serialize as null.
type loginResponse struct {
	Message string          `json:"message"`
	User    json.RawMessage `json:"user"`
	Session json.RawMessage `json:"session"`
}

// signup handles POST /api/auth/signup.
// A profile-insert failure after a successful auth call returns the same 400
// as an auth failure; the two are indistinguishable to the caller.
func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	identity, err := s.auth.SignUp(r.Context(), orEmpty(req.Email), orEmpty(req.Password), req.FullName)
	if err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User created successfully",
		"user": map[string]string{
			"id":    identity.ID,
			"email": identity.Email,
		},
	})
}

// login handles POST /api/auth/login.
// Every failure — malformed body, unknown user, wrong password, provider
// outage — collapses into the same blanket 401 so the response never leaks
// which part was wrong.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	creds, err := s.auth.Login(r.Context(), orEmpty(req.Email), orEmpty(req.Password))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    creds.User,
		Session: creds.Session,
	})
}

// orEmpty returns the pointed-to string, or "" for nil.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
