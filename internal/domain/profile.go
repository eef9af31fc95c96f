// Package domain contains the core data types for the travel backend.
// This package has zero heavy dependencies and is imported by every other
// internal package (auth, repo, service, handler).
package domain

import "time"

// Profile holds the per-user data stored alongside the hosted auth identity.
// ID always equals the identity issued by the authentication provider, so a
// profile row and its auth user share a primary key.
//
// Optional fields are pointers: nil means the column is NULL in the store.
// There is deliberately no way to distinguish "never set" from "cleared" —
// the update contract only ever writes fields that are present.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name"`
	Phone       *string   `json:"phone"`
	DateOfBirth *string   `json:"date_of_birth"`
	Nationality *string   `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial update. Only non-nil fields are written;
// nil fields are excluded from the update payload entirely, so an omitted
// field keeps its prior stored value.
type ProfileUpdate struct {
	FullName    *string
	Phone       *string
	DateOfBirth *string
	Nationality *string
}
