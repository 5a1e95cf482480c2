package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/skill"
	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/logger"
)

func NewPostgresSkillRepo(db *pgxpool.Pool, log logger.Logger) skill.Repository {
	return newCollectionRepo(db, entityMapper[*skill.Skill]{
		table:      "skills",
		resource:   "skill",
		nameColumn: "name",
		columns:    []string{"id", "profile_id", "name", "category", "order_index", "level", "created_at", "updated_at"},
		values: func(s *skill.Skill) []any {
			var level *string
			if s.Level != nil {
				v := s.Level.String()
				level = &v
			}
			return []any{s.ID, s.ProfileID, s.Name, s.Category, s.OrderIndex, level, s.CreatedAt, s.UpdatedAt}
		},
		scan: func(row pgx.Row) (*skill.Skill, error) {
			s := &skill.Skill{}
			var level *string
			err := row.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.OrderIndex, &level, &s.CreatedAt, &s.UpdatedAt)
			if err != nil {
				return nil, err
			}
			if level != nil {
				v := value.SkillLevel(*level)
				s.Level = &v
			}
			return s, nil
		},
	}, log)
}
