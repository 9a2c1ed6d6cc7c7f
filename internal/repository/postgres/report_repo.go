package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

// ReportRepository implements domain.ReportRepository using PostgreSQL
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Create always inserts a new report row, regardless of how many the user
// already has.
func (r *ReportRepository) Create(ctx context.Context, fields *domain.Report) (*domain.Report, error) {
	query := `
		INSERT INTO reports (user_id, name, date, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, date, image, created_at`

	report := &domain.Report{}
	err := r.pool.QueryRow(ctx, query, fields.UserID, fields.Name, fields.Date, fields.Image).
		Scan(&report.ID, &report.UserID, &report.Name, &report.Date, &report.Image, &report.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// ListOrdered returns the user's reports sorted by the date column
// descending. date is text with COLLATE "C", so the sort is byte-wise
// lexical, which is correct for ISO dates and accepted for anything else.
// An empty result materializes a blank placeholder report and returns it
// as a one-element slice.
func (r *ReportRepository) ListOrdered(ctx context.Context, userID uuid.UUID) ([]*domain.Report, error) {
	query := `
		SELECT id, user_id, name, date, image, created_at
		FROM reports
		WHERE user_id = $1
		ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report := &domain.Report{}
		if err := rows.Scan(&report.ID, &report.UserID, &report.Name,
			&report.Date, &report.Image, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	if len(reports) == 0 {
		placeholder, err := r.Create(ctx, &domain.Report{UserID: userID})
		if err != nil {
			return nil, err
		}
		return []*domain.Report{placeholder}, nil
	}

	return reports, nil
}
