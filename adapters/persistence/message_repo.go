package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/message"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

type postgresMessageRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresMessageRepo(db *pgxpool.Pool, log logger.Logger) message.Repository {
	return &postgresMessageRepo{db: db, logger: log}
}

const messageColumns = "id, name, email, message, status, read_at, replied_at, created_at, updated_at"

func scanMessage(row pgx.Row) (*message.ContactMessage, error) {
	m := &message.ContactMessage{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Message, &m.Status,
		&m.ReadAt, &m.RepliedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresMessageRepo) scanMessages(rows pgx.Rows) ([]*message.ContactMessage, error) {
	defer rows.Close()
	out := make([]*message.ContactMessage, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan contact message row", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return out, nil
}

func (r *postgresMessageRepo) Save(ctx context.Context, m *message.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, message, status, read_at, replied_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Email, m.Message, m.Status, m.ReadAt, m.RepliedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresMessageRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, apperror.NewInternal("failed to delete contact message", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*message.ContactMessage, error) {
	query := "SELECT " + messageColumns + " FROM contact_messages WHERE id = $1"
	m, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", id.String())
		}
		return nil, apperror.NewInternal("failed to scan contact message", err)
	}
	return m, nil
}

func (r *postgresMessageRepo) List(ctx context.Context, ascending bool) ([]*message.ContactMessage, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}
	query := "SELECT " + messageColumns + " FROM contact_messages ORDER BY created_at " + direction
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to list contact messages", err)
	}
	return r.scanMessages(rows)
}

func (r *postgresMessageRepo) ListByStatus(ctx context.Context, status message.Status) ([]*message.ContactMessage, error) {
	query, args, err := psql.Select(messageColumns).
		From("contact_messages").
		Where(sq.Eq{"status": status}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list by status query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list contact messages by status", err)
	}
	return r.scanMessages(rows)
}

func (r *postgresMessageRepo) ListRecent(ctx context.Context, limit int) ([]*message.ContactMessage, error) {
	query, args, err := psql.Select(messageColumns).
		From("contact_messages").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build recent messages query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list recent contact messages", err)
	}
	return r.scanMessages(rows)
}

func (r *postgresMessageRepo) CountByStatus(ctx context.Context) (map[message.Status]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM contact_messages GROUP BY status`)
	if err != nil {
		return nil, apperror.NewInternal("failed to count contact messages", err)
	}
	defer rows.Close()

	counts := make(map[message.Status]int)
	for rows.Next() {
		var status message.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, apperror.NewInternal("failed to scan message counts", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating message counts", err)
	}
	return counts, nil
}

// MarkAsRead advances pending -> read in one statement; a message already
// past pending is left untouched but still reported as found.
func (r *postgresMessageRepo) MarkAsRead(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE contact_messages
		SET status = 'read', read_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, apperror.NewInternal("failed to mark contact message read", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return true, nil
	}
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM contact_messages WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check contact message existence", err)
	}
	return exists, nil
}

// MarkAsReplied is terminal: it also stamps read_at when the message skipped
// the read state.
func (r *postgresMessageRepo) MarkAsReplied(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE contact_messages
		SET status = 'replied',
		    read_at = COALESCE(read_at, NOW()),
		    replied_at = COALESCE(replied_at, NOW()),
		    updated_at = NOW()
		WHERE id = $1 AND status <> 'replied'
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, apperror.NewInternal("failed to mark contact message replied", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return true, nil
	}
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM contact_messages WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check contact message existence", err)
	}
	return exists, nil
}
