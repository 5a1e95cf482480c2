package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/language"
	"portfolio-api/internal/domain/proglang"
	"portfolio-api/internal/domain/value"
	"portfolio-api/pkg/logger"
)

func NewPostgresLanguageRepo(db *pgxpool.Pool, log logger.Logger) language.Repository {
	return newCollectionRepo(db, entityMapper[*language.Language]{
		table:    "languages",
		resource: "language",
		columns:  []string{"id", "profile_id", "name", "proficiency", "order_index", "created_at", "updated_at"},
		values: func(l *language.Language) []any {
			var proficiency *string
			if l.Proficiency != nil {
				v := l.Proficiency.String()
				proficiency = &v
			}
			return []any{l.ID, l.ProfileID, l.Name, proficiency, l.OrderIndex, l.CreatedAt, l.UpdatedAt}
		},
		scan: func(row pgx.Row) (*language.Language, error) {
			l := &language.Language{}
			var proficiency *string
			err := row.Scan(&l.ID, &l.ProfileID, &l.Name, &proficiency, &l.OrderIndex, &l.CreatedAt, &l.UpdatedAt)
			if err != nil {
				return nil, err
			}
			if proficiency != nil {
				v := value.Proficiency(*proficiency)
				l.Proficiency = &v
			}
			return l, nil
		},
	}, log)
}

func NewPostgresProgrammingLanguageRepo(db *pgxpool.Pool, log logger.Logger) proglang.Repository {
	return newCollectionRepo(db, entityMapper[*proglang.ProgrammingLanguage]{
		table:    "programming_languages",
		resource: "programming language",
		columns:  []string{"id", "profile_id", "name", "level", "order_index", "created_at", "updated_at"},
		values: func(p *proglang.ProgrammingLanguage) []any {
			var level *string
			if p.Level != nil {
				v := p.Level.String()
				level = &v
			}
			return []any{p.ID, p.ProfileID, p.Name, level, p.OrderIndex, p.CreatedAt, p.UpdatedAt}
		},
		scan: func(row pgx.Row) (*proglang.ProgrammingLanguage, error) {
			p := &proglang.ProgrammingLanguage{}
			var level *string
			err := row.Scan(&p.ID, &p.ProfileID, &p.Name, &level, &p.OrderIndex, &p.CreatedAt, &p.UpdatedAt)
			if err != nil {
				return nil, err
			}
			if level != nil {
				v := value.SkillLevel(*level)
				p.Level = &v
			}
			return p, nil
		},
	}, log)
}
