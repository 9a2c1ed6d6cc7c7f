package domain

import (
	"context"

	"github.com/google/uuid"
)

// Profile is the display profile attached to a user. At most one profile
// exists per user; the user_id unique constraint is enforced by the store.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Bio      string    `json:"bio"`
	Location string    `json:"location"`
	Image    *string   `json:"image"`
	Email    string    `json:"email"`
}

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	// Upsert fully replaces the profile document for fields.UserID,
	// creating it if absent. Fields not set by the caller are written
	// as sent (no merge-patch).
	Upsert(ctx context.Context, fields *Profile) (*Profile, error)

	// GetOrCreateDefault returns the profile for userID. If none exists
	// it persists one with empty phone/bio/location and a nil image, and
	// returns that. This read has a write side effect on first call.
	GetOrCreateDefault(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
