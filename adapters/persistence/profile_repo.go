package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/profile"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(&p.ID, &p.Name, &p.Headline, &p.Bio, &p.Location, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, name, headline, bio, location, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Headline, p.Bio, p.Location, p.AvatarURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		// The constant unique index on profiles makes the singleton rule
		// hold even for two concurrent creates.
		if isUniqueViolation(err) {
			return apperror.NewConflict("profile", "singleton", "a profile already exists")
		}
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			name = $2, headline = $3, bio = $4, location = $5, avatar_url = $6, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Headline, p.Bio, p.Location, p.AvatarURL)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	return nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return false, apperror.NewInternal("failed to delete profile", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresProfileRepo) GetProfile(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, headline, bio, location, avatar_url, created_at, updated_at
		FROM profiles LIMIT 1
	`
	p, err := scanProfile(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to scan profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) ProfileExists(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles)`).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check profile existence", err)
	}
	return exists, nil
}
