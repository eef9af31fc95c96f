package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skyroute/travel-backend/internal/domain"
)

// writeJSON serializes v with the given status. Encoding failures at this
// point can only come from unmarshalable values, which is a programming bug;
// the header has already been written, so the error is swallowed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst. A missing or malformed body
// is a validation failure: the caller maps it to a 400 carrying the decoder's
// message, the same way any downstream failure is reported.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", domain.ErrValidation)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
