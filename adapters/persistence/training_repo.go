package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/training"
	"portfolio-api/pkg/logger"
)

func NewPostgresTrainingRepo(db *pgxpool.Pool, log logger.Logger) training.Repository {
	return newCollectionRepo(db, entityMapper[*training.AdditionalTraining]{
		table:    "additional_trainings",
		resource: "training",
		columns: []string{
			"id", "profile_id", "title", "provider", "duration", "description",
			"order_index", "created_at", "updated_at",
		},
		values: func(t *training.AdditionalTraining) []any {
			return []any{
				t.ID, t.ProfileID, t.Title, t.Provider, t.Duration, t.Description,
				t.OrderIndex, t.CreatedAt, t.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (*training.AdditionalTraining, error) {
			t := &training.AdditionalTraining{}
			err := row.Scan(
				&t.ID, &t.ProfileID, &t.Title, &t.Provider, &t.Duration, &t.Description,
				&t.OrderIndex, &t.CreatedAt, &t.UpdatedAt,
			)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}, log)
}
