package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain/collection"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// entityMapper binds one ordered family to its table. columns and values
// must stay in the same order; scan reads them back in that order.
type entityMapper[T any] struct {
	table    string
	resource string
	// nameColumn enables the per-owner name lookups, empty disables them.
	nameColumn string
	columns    []string
	values     func(T) []any
	scan       func(row pgx.Row) (T, error)
}

// collectionRepo is the shared Postgres implementation behind every ordered
// family repository. Each family wraps it with its own mapper.
type collectionRepo[T any] struct {
	db     *pgxpool.Pool
	mapper entityMapper[T]
	logger logger.Logger
}

func newCollectionRepo[T any](db *pgxpool.Pool, mapper entityMapper[T], log logger.Logger) *collectionRepo[T] {
	return &collectionRepo[T]{db: db, mapper: mapper, logger: log}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *collectionRepo[T]) Save(ctx context.Context, entity T) error {
	query, args, err := psql.Insert(r.mapper.table).
		Columns(r.mapper.columns...).
		Values(r.mapper.values(entity)...).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert query", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict(r.mapper.resource, "unique constraint", "")
		}
		return apperror.NewInternal("failed to save "+r.mapper.resource, err)
	}
	return nil
}

func (r *collectionRepo[T]) Update(ctx context.Context, entity T) error {
	values := r.mapper.values(entity)
	setMap := make(map[string]any, len(values))
	for i, col := range r.mapper.columns {
		if col == "id" || col == "created_at" {
			continue
		}
		setMap[col] = values[i]
	}

	query, args, err := psql.Update(r.mapper.table).
		SetMap(setMap).
		Where(sq.Eq{"id": values[0]}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update query", err)
	}
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict(r.mapper.resource, "unique constraint", "")
		}
		return apperror.NewInternal("failed to update "+r.mapper.resource, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.mapper.resource, "")
	}
	return nil
}

func (r *collectionRepo[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := psql.Delete(r.mapper.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, apperror.NewInternal("failed to build delete query", err)
	}
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, apperror.NewInternal("failed to delete "+r.mapper.resource, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *collectionRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	query, args, err := psql.Select(r.mapper.columns...).
		From(r.mapper.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, apperror.NewInternal("failed to build find query", err)
	}

	entity, err := r.mapper.scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, apperror.NewNotFound(r.mapper.resource, id.String())
		}
		return zero, apperror.NewInternal("failed to scan "+r.mapper.resource, err)
	}
	return entity, nil
}

func (r *collectionRepo[T]) List(ctx context.Context, opts collection.ListOptions) ([]T, error) {
	opts = opts.Normalize()

	builder := psql.Select(r.mapper.columns...).
		From(r.mapper.table).
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Skip))
	// An empty SortBy keeps storage-natural order.
	if opts.SortBy != "" {
		direction := "DESC"
		if opts.Ascending {
			direction = "ASC"
		}
		builder = builder.OrderBy(opts.SortBy + " " + direction)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list "+r.mapper.resource, err)
	}
	return r.scanAll(rows)
}

func (r *collectionRepo[T]) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(r.mapper.table).
		Where(sq.Eq{"profile_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count query", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count "+r.mapper.resource, err)
	}
	return n, nil
}

func (r *collectionRepo[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM " + r.mapper.table + " WHERE id = $1)"
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check "+r.mapper.resource+" existence", err)
	}
	return exists, nil
}

func (r *collectionRepo[T]) FindByOrderIndex(ctx context.Context, ownerID uuid.UUID, index int) (T, bool, error) {
	var zero T
	query, args, err := psql.Select(r.mapper.columns...).
		From(r.mapper.table).
		Where(sq.Eq{"profile_id": ownerID, "order_index": index}).
		ToSql()
	if err != nil {
		return zero, false, apperror.NewInternal("failed to build order index query", err)
	}

	entity, err := r.mapper.scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, apperror.NewInternal("failed to scan "+r.mapper.resource, err)
	}
	return entity, true, nil
}

func (r *collectionRepo[T]) ListByOwner(ctx context.Context, ownerID uuid.UUID, ascending bool) ([]T, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}
	query, args, err := psql.Select(r.mapper.columns...).
		From(r.mapper.table).
		Where(sq.Eq{"profile_id": ownerID}).
		OrderBy("order_index " + direction).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list by owner query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list "+r.mapper.resource+" by owner", err)
	}
	return r.scanAll(rows)
}

// Reorder moves one row to newIndex and shifts every row between the old and
// new position by one, all inside a single transaction. The per-owner unique
// index on order_index is deferred, so intermediate states inside the
// transaction are allowed to collide.
func (r *collectionRepo[T]) Reorder(ctx context.Context, ownerID, id uuid.UUID, newIndex int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin reorder transaction", err)
	}
	defer tx.Rollback(ctx)

	var oldIndex int
	query := "SELECT order_index FROM " + r.mapper.table + " WHERE id = $1 AND profile_id = $2 FOR UPDATE"
	if err := tx.QueryRow(ctx, query, id, ownerID).Scan(&oldIndex); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFound(r.mapper.resource, id.String())
		}
		return apperror.NewInternal("failed to read current order index", err)
	}
	if oldIndex == newIndex {
		return tx.Commit(ctx)
	}

	var shift string
	var lo, hi int
	if newIndex > oldIndex {
		shift = "UPDATE " + r.mapper.table + " SET order_index = order_index - 1, updated_at = NOW() WHERE profile_id = $1 AND order_index > $2 AND order_index <= $3"
		lo, hi = oldIndex, newIndex
	} else {
		shift = "UPDATE " + r.mapper.table + " SET order_index = order_index + 1, updated_at = NOW() WHERE profile_id = $1 AND order_index >= $2 AND order_index < $3"
		lo, hi = newIndex, oldIndex
	}
	if _, err := tx.Exec(ctx, shift, ownerID, lo, hi); err != nil {
		return apperror.NewInternal("failed to shift order indexes", err)
	}

	place := "UPDATE " + r.mapper.table + " SET order_index = $1, updated_at = NOW() WHERE id = $2"
	if _, err := tx.Exec(ctx, place, newIndex, id); err != nil {
		return apperror.NewInternal("failed to place "+r.mapper.resource, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit reorder", err)
	}
	return nil
}

func (r *collectionRepo[T]) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM " + r.mapper.table +
		" WHERE profile_id = $1 AND LOWER(" + r.mapper.nameColumn + ") = LOWER($2))"
	if err := r.db.QueryRow(ctx, query, ownerID, name).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check "+r.mapper.resource+" name", err)
	}
	return exists, nil
}

func (r *collectionRepo[T]) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (T, bool, error) {
	var zero T
	query, args, err := psql.Select(r.mapper.columns...).
		From(r.mapper.table).
		Where(sq.Eq{"profile_id": ownerID}).
		Where("LOWER("+r.mapper.nameColumn+") = LOWER(?)", name).
		ToSql()
	if err != nil {
		return zero, false, apperror.NewInternal("failed to build find by name query", err)
	}

	entity, err := r.mapper.scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, apperror.NewInternal("failed to scan "+r.mapper.resource, err)
	}
	return entity, true, nil
}

func (r *collectionRepo[T]) scanAll(rows pgx.Rows) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		entity, err := r.mapper.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan "+r.mapper.resource+" row", err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating "+r.mapper.resource+" rows", err)
	}
	return out, nil
}
