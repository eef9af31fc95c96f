package domain

import "time"

// SearchHistoryEntry records one flight search for a known user. It is
// write-only: nothing in this service ever reads it back.
type SearchHistoryEntry struct {
	UserID        string    `json:"user_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate *string   `json:"departure_date"`
	Passengers    int       `json:"passengers"`
	SearchedAt    time.Time `json:"searched_at"`
}
