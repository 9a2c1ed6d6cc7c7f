package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Report is a sighting report filed by a user. A user may have any number
// of reports; Date is free-form text, stored and sorted as a string.
type Report struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportRepository defines the interface for report persistence operations.
type ReportRepository interface {
	// Create always inserts a new report, never replaces an existing one.
	Create(ctx context.Context, fields *Report) (*Report, error)

	// ListOrdered returns the user's reports ordered by Date descending
	// (lexical string order, matching the stored text dates). If the user
	// has no reports it persists a single blank placeholder report and
	// returns it as a one-element slice. This read has a write side
	// effect on first call.
	ListOrdered(ctx context.Context, userID uuid.UUID) ([]*Report, error)
}
