package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/project"
	"portfolio-api/pkg/logger"
)

func NewPostgresProjectRepo(db *pgxpool.Pool, log logger.Logger) project.Repository {
	return newCollectionRepo(db, entityMapper[*project.Project]{
		table:    "projects",
		resource: "project",
		columns: []string{
			"id", "profile_id", "title", "description", "start_date", "end_date",
			"live_url", "repo_url", "technologies", "order_index",
			"created_at", "updated_at",
		},
		values: func(p *project.Project) []any {
			return []any{
				p.ID, p.ProfileID, p.Title, p.Description, p.StartDate, p.EndDate,
				p.LiveURL, p.RepoURL, p.Technologies, p.OrderIndex,
				p.CreatedAt, p.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (*project.Project, error) {
			p := &project.Project{}
			err := row.Scan(
				&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
				&p.LiveURL, &p.RepoURL, &p.Technologies, &p.OrderIndex,
				&p.CreatedAt, &p.UpdatedAt,
			)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	}, log)
}
