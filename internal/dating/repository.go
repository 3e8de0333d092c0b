package dating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

var ErrProfileNotFound = errors.New("profile not found")

// Repository reads profiles from the user directory
type Repository interface {
	GetUserProfile(ctx context.Context, userID string) (*matching.UserProfile, error)
	ListCandidates(ctx context.Context, excludeID string, limit int) ([]*matching.UserProfile, error)
	CountActiveProfiles(ctx context.Context) (int, error)
}

const profileColumns = `
	id, first_name, last_name, date_of_birth, gender, looking_for,
	preferred_age_range, preferred_age_min, preferred_age_max,
	location, interests, relationship, orientation, smoking, alcohol,
	bio, profile_pic`

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetUserProfile(ctx context.Context, userID string) (*matching.UserProfile, error) {
	var row profileRow
	query := `SELECT` + profileColumns + `
		FROM user_profiles
		WHERE id::text = $1 AND is_active = TRUE`

	err := r.db.GetContext(ctx, &row, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}

	return row.toProfile(), nil
}

func (r *postgresRepository) ListCandidates(ctx context.Context, excludeID string, limit int) ([]*matching.UserProfile, error) {
	var rows []profileRow
	query := `SELECT` + profileColumns + `
		FROM user_profiles
		WHERE is_active = TRUE AND id::text <> $1
		ORDER BY id
		LIMIT $2`

	if err := r.db.SelectContext(ctx, &rows, query, excludeID, limit); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	profiles := make([]*matching.UserProfile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toProfile())
	}
	return profiles, nil
}

func (r *postgresRepository) CountActiveProfiles(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_profiles WHERE is_active = TRUE`)
	return count, err
}
