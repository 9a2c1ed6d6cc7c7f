package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Upsert fully replaces the profile row for fields.UserID, inserting it if
// absent. Uniqueness of user_id is the table's constraint; concurrent
// upserts for the same user are last-write-wins.
func (r *ProfileRepository) Upsert(ctx context.Context, fields *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, name, phone, bio, location, image, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			image = EXCLUDED.image,
			email = EXCLUDED.email
		RETURNING id, user_id, name, phone, bio, location, image, email`

	profile := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query,
		fields.UserID, fields.Name, fields.Phone, fields.Bio, fields.Location, fields.Image, fields.Email).
		Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Phone,
			&profile.Bio, &profile.Location, &profile.Image, &profile.Email)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}

// GetOrCreateDefault returns the profile for userID, persisting an empty
// default first if the user has none. Note the write side effect on a read
// path; callers rely on the default being durable.
func (r *ProfileRepository) GetOrCreateDefault(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, name, phone, bio, location, image, email
		FROM profiles
		WHERE user_id = $1`

	profile := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Phone,
			&profile.Bio, &profile.Location, &profile.Image, &profile.Email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	// First read for this user: materialize the default row. ON CONFLICT
	// DO NOTHING plus a re-read keeps a concurrent materialization from
	// failing on the unique constraint.
	insert := `
		INSERT INTO profiles (user_id, name, phone, bio, location, image, email)
		VALUES ($1, '', '', '', '', NULL, '')
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id, user_id, name, phone, bio, location, image, email`

	err = r.pool.QueryRow(ctx, insert, userID).
		Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Phone,
			&profile.Bio, &profile.Location, &profile.Image, &profile.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race; the row exists now.
		return r.GetOrCreateDefault(ctx, userID)
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("create default profile: %w", err)
	}
	return profile, nil
}
