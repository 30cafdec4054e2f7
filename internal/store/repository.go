package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const defaultListLimit = 20

// Fields maps column names to values for inserts and partial updates.
// Only columns known to the entity's mapper are accepted.
type Fields map[string]any

type rowScanner interface {
	Scan(dest ...any) error
}

// Mapper describes how an entity type maps onto its table: the table
// name, the writable column set, and how to scan a full row.
type Mapper[T any] struct {
	Table   string
	Columns []string
	Scan    func(rowScanner) (T, error)
}

func (m Mapper[T]) hasColumn(name string) bool {
	for _, column := range m.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// Repository is a generic data-access object over a single entity type.
// It holds no state beyond the connection pool and mapper, so a single
// instance is safe for concurrent requests.
type Repository[T any] struct {
	db     *sql.DB
	mapper Mapper[T]
}

func NewRepository[T any](db *sql.DB, mapper Mapper[T]) *Repository[T] {
	return &Repository[T]{db: db, mapper: mapper}
}

// List returns at most limit entities ordered by id, skipping the first
// skip rows. An empty result is not an error.
func (r *Repository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultListLimit
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY id OFFSET $1 LIMIT $2",
		strings.Join(r.mapper.Columns, ", "), r.mapper.Table,
	)
	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows, limit)
}

// Create inserts a new row from the given fields and returns the stored
// entity with its generated id. Constraint violations surface as raw
// store errors; duplicate detection is the domain layer's job.
func (r *Repository[T]) Create(ctx context.Context, fields Fields) (T, error) {
	var zero T

	columns, err := r.fieldColumns(fields)
	if err != nil {
		return zero, err
	}
	if len(columns) == 0 {
		return zero, errors.New("create requires at least one field")
	}

	query := buildInsert(r.mapper.Table, columns, r.mapper.Columns)
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		args = append(args, fields[column])
	}

	return r.mapper.Scan(r.db.QueryRowContext(ctx, query, args...))
}

// GetBy performs an equality lookup on a single column. A missing row
// is reported through the bool, not as an error.
func (r *Repository[T]) GetBy(ctx context.Context, column string, value any) (T, bool, error) {
	var zero T
	if !r.mapper.hasColumn(column) {
		return zero, false, fmt.Errorf("unknown column %q on %s", column, r.mapper.Table)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY id LIMIT 1",
		strings.Join(r.mapper.Columns, ", "), r.mapper.Table, column,
	)
	entity, err := r.mapper.Scan(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return entity, true, nil
}

// GetByID looks up an entity by primary key.
func (r *Repository[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	return r.GetBy(ctx, "id", id)
}

// GetAllBy returns every entity whose column equals value, ordered by id.
func (r *Repository[T]) GetAllBy(ctx context.Context, column string, value any) ([]T, error) {
	if !r.mapper.hasColumn(column) {
		return nil, fmt.Errorf("unknown column %q on %s", column, r.mapper.Table)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY id",
		strings.Join(r.mapper.Columns, ", "), r.mapper.Table, column,
	)
	rows, err := r.db.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows, 0)
}

// Update mutates only the given fields and returns the updated entity.
// An empty field set returns the entity unchanged; a missing id is
// reported through the bool, not as an error.
func (r *Repository[T]) Update(ctx context.Context, id int, fields Fields) (T, bool, error) {
	var zero T

	columns, err := r.fieldColumns(fields)
	if err != nil {
		return zero, false, err
	}
	if len(columns) == 0 {
		return r.GetByID(ctx, id)
	}

	query := buildUpdate(r.mapper.Table, columns, r.mapper.Columns)
	args := make([]any, 0, len(columns)+1)
	for _, column := range columns {
		args = append(args, fields[column])
	}
	args = append(args, id)

	entity, err := r.mapper.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return entity, true, nil
}

// Delete removes the row with the given id. It returns false when no
// such row exists.
func (r *Repository[T]) Delete(ctx context.Context, id int) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.mapper.Table)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository[T]) collect(rows *sql.Rows, sizeHint int) ([]T, error) {
	entities := make([]T, 0, sizeHint)
	for rows.Next() {
		entity, err := r.mapper.Scan(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entities, nil
}

// fieldColumns validates the field names against the mapper's column
// set and returns them sorted, so generated SQL is deterministic.
func (r *Repository[T]) fieldColumns(fields Fields) ([]string, error) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		if column == "id" || !r.mapper.hasColumn(column) {
			return nil, fmt.Errorf("unknown column %q on %s", column, r.mapper.Table)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns, nil
}

func buildInsert(table string, columns, returning []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(returning, ", "),
	)
}

func buildUpdate(table string, columns, returning []string) string {
	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table,
		strings.Join(assignments, ", "),
		len(columns)+1,
		strings.Join(returning, ", "),
	)
}
