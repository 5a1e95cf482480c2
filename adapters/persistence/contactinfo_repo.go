package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/contactinfo"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type postgresContactInfoRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactInfoRepo(db *pgxpool.Pool, log logger.Logger) contactinfo.Repository {
	return &postgresContactInfoRepo{db: db, logger: log}
}

func scanContactInfo(row pgx.Row) (*contactinfo.ContactInformation, error) {
	c := &contactinfo.ContactInformation{}
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.Email, &c.Phone,
		&c.LinkedInURL, &c.GitHubURL, &c.WebsiteURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresContactInfoRepo) Save(ctx context.Context, c *contactinfo.ContactInformation) error {
	query := `
		INSERT INTO contact_information (id, profile_id, email, phone, linkedin_url, github_url, website_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.ProfileID, c.Email, c.Phone, c.LinkedInURL, c.GitHubURL, c.WebsiteURL, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("contact information", "profile_id", c.ProfileID.String())
		}
		return apperror.NewInternal("failed to save contact information", err)
	}
	return nil
}

func (r *postgresContactInfoRepo) Update(ctx context.Context, c *contactinfo.ContactInformation) error {
	query := `
		UPDATE contact_information SET
			email = $2, phone = $3, linkedin_url = $4, github_url = $5, website_url = $6, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, c.ID, c.Email, c.Phone, c.LinkedInURL, c.GitHubURL, c.WebsiteURL)
	if err != nil {
		return apperror.NewInternal("failed to update contact information", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("contact information", c.ID.String())
	}
	return nil
}

func (r *postgresContactInfoRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contact_information WHERE id = $1`, id)
	if err != nil {
		return false, apperror.NewInternal("failed to delete contact information", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresContactInfoRepo) FindByID(ctx context.Context, id uuid.UUID) (*contactinfo.ContactInformation, error) {
	query := `
		SELECT id, profile_id, email, phone, linkedin_url, github_url, website_url, created_at, updated_at
		FROM contact_information WHERE id = $1
	`
	c, err := scanContactInfo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact information", id.String())
		}
		return nil, apperror.NewInternal("failed to scan contact information", err)
	}
	return c, nil
}

func (r *postgresContactInfoRepo) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*contactinfo.ContactInformation, error) {
	query := `
		SELECT id, profile_id, email, phone, linkedin_url, github_url, website_url, created_at, updated_at
		FROM contact_information WHERE profile_id = $1
	`
	c, err := scanContactInfo(r.db.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to scan contact information", err)
	}
	return c, nil
}
