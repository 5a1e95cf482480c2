package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/social"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type postgresSocialRepo struct {
	*collectionRepo[*social.SocialNetwork]
}

func NewPostgresSocialRepo(db *pgxpool.Pool, log logger.Logger) social.Repository {
	return &postgresSocialRepo{
		collectionRepo: newCollectionRepo(db, entityMapper[*social.SocialNetwork]{
			table:    "social_networks",
			resource: "social network",
			columns: []string{
				"id", "profile_id", "platform", "url", "username", "order_index",
				"created_at", "updated_at",
			},
			values: func(s *social.SocialNetwork) []any {
				return []any{s.ID, s.ProfileID, s.Platform, s.URL, s.Username, s.OrderIndex, s.CreatedAt, s.UpdatedAt}
			},
			scan: func(row pgx.Row) (*social.SocialNetwork, error) {
				s := &social.SocialNetwork{}
				err := row.Scan(&s.ID, &s.ProfileID, &s.Platform, &s.URL, &s.Username, &s.OrderIndex, &s.CreatedAt, &s.UpdatedAt)
				if err != nil {
					return nil, err
				}
				return s, nil
			},
		}, log),
	}
}

func (r *postgresSocialRepo) ExistsByPlatform(ctx context.Context, profileID uuid.UUID, platform string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM social_networks WHERE profile_id = $1 AND LOWER(platform) = LOWER($2))`
	if err := r.db.QueryRow(ctx, query, profileID, platform).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check platform existence", err)
	}
	return exists, nil
}
