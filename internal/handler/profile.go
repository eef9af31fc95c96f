package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyroute/travel-backend/internal/domain"
)

// updateProfileRequest mirrors the update body. Nil fields are excluded from
// the update payload entirely — omission and "leave unchanged" are the same
// thing, and a field can never be cleared back to null once set.
type updateProfileRequest struct {
	UserID      *string `json:"user_id"`
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Nationality *string `json:"nationality"`
}

// getProfile handles GET /api/profile/{userID}.
// A missing profile is a 200 with a null profile, not a 404. No check ties
// the caller to the requested id.
func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

// updateProfile handles POST /api/profile/update.
func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	update := domain.ProfileUpdate{
		FullName:    req.FullName,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Nationality: req.Nationality,
	}

	profile, err := s.profiles.Update(r.Context(), orEmpty(req.UserID), update)
	if err != nil {
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}
