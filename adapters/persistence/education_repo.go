package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/education"
	"portfolio-api/pkg/logger"
)

func NewPostgresEducationRepo(db *pgxpool.Pool, log logger.Logger) education.Repository {
	return newCollectionRepo(db, entityMapper[*education.Education]{
		table:    "education",
		resource: "education",
		columns: []string{
			"id", "profile_id", "institution", "degree", "field", "description",
			"start_date", "end_date", "order_index", "created_at", "updated_at",
		},
		values: func(e *education.Education) []any {
			return []any{
				e.ID, e.ProfileID, e.Institution, e.Degree, e.Field, e.Description,
				e.StartDate, e.EndDate, e.OrderIndex, e.CreatedAt, e.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (*education.Education, error) {
			e := &education.Education{}
			err := row.Scan(
				&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.Field, &e.Description,
				&e.StartDate, &e.EndDate, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt,
			)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
	}, log)
}
