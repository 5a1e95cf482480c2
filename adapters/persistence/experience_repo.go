package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/experience"
	"portfolio-api/pkg/logger"
)

func NewPostgresExperienceRepo(db *pgxpool.Pool, log logger.Logger) experience.Repository {
	return newCollectionRepo(db, entityMapper[*experience.WorkExperience]{
		table:    "work_experiences",
		resource: "work experience",
		columns: []string{
			"id", "profile_id", "role", "company", "description",
			"start_date", "end_date", "responsibilities", "order_index",
			"created_at", "updated_at",
		},
		values: func(e *experience.WorkExperience) []any {
			return []any{
				e.ID, e.ProfileID, e.Role, e.Company, e.Description,
				e.StartDate, e.EndDate, e.Responsibilities, e.OrderIndex,
				e.CreatedAt, e.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (*experience.WorkExperience, error) {
			e := &experience.WorkExperience{}
			err := row.Scan(
				&e.ID, &e.ProfileID, &e.Role, &e.Company, &e.Description,
				&e.StartDate, &e.EndDate, &e.Responsibilities, &e.OrderIndex,
				&e.CreatedAt, &e.UpdatedAt,
			)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
	}, log)
}
