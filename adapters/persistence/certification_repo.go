package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/certification"
	"portfolio-api/pkg/logger"
)

func NewPostgresCertificationRepo(db *pgxpool.Pool, log logger.Logger) certification.Repository {
	return newCollectionRepo(db, entityMapper[*certification.Certification]{
		table:    "certifications",
		resource: "certification",
		columns: []string{
			"id", "profile_id", "title", "issuer", "issue_date", "expiry_date",
			"credential_id", "credential_url", "order_index", "created_at", "updated_at",
		},
		values: func(c *certification.Certification) []any {
			return []any{
				c.ID, c.ProfileID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate,
				c.CredentialID, c.CredentialURL, c.OrderIndex, c.CreatedAt, c.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (*certification.Certification, error) {
			c := &certification.Certification{}
			err := row.Scan(
				&c.ID, &c.ProfileID, &c.Title, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
				&c.CredentialID, &c.CredentialURL, &c.OrderIndex, &c.CreatedAt, &c.UpdatedAt,
			)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}, log)
}
