package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/tool"
	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/logger"
)

func NewPostgresToolRepo(db *pgxpool.Pool, log logger.Logger) tool.Repository {
	return newCollectionRepo(db, entityMapper[*tool.Tool]{
		table:      "tools",
		resource:   "tool",
		nameColumn: "name",
		columns:    []string{"id", "profile_id", "name", "category", "order_index", "knowledge_level", "created_at", "updated_at"},
		values: func(t *tool.Tool) []any {
			var level *string
			if t.KnowledgeLevel != nil {
				v := t.KnowledgeLevel.String()
				level = &v
			}
			return []any{t.ID, t.ProfileID, t.Name, t.Category, t.OrderIndex, level, t.CreatedAt, t.UpdatedAt}
		},
		scan: func(row pgx.Row) (*tool.Tool, error) {
			t := &tool.Tool{}
			var level *string
			err := row.Scan(&t.ID, &t.ProfileID, &t.Name, &t.Category, &t.OrderIndex, &level, &t.CreatedAt, &t.UpdatedAt)
			if err != nil {
				return nil, err
			}
			if level != nil {
				v := value.SkillLevel(*level)
				t.KnowledgeLevel = &v
			}
			return t, nil
		},
	}, log)
}
