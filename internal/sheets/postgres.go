package sheets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benuhq/benubot/core/logger"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresStore persists sheet rows in the sheet_rows table, one text
// array per row. Append order is kept by a per-collection row index.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an open sqlx handle.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) AppendRow(ctx context.Context, collection string, cells []string) error {
	const q = `
		INSERT INTO sheet_rows (collection, row_idx, cells)
		SELECT $1, COALESCE(MAX(row_idx), 0) + 1, $2
		FROM sheet_rows WHERE collection = $1`
	if _, err := s.db.ExecContext(ctx, q, collection, pq.Array(cells)); err != nil {
		return fmt.Errorf("append row to %s: %w", collection, err)
	}
	logger.SVCSheets.LogAttrs(ctx, slog.LevelDebug, "row.appended",
		slog.String("collection", collection),
		slog.Int("cells", len(cells)),
	)
	return nil
}

func (s *PostgresStore) FindRow(ctx context.Context, collection, key string) (int, []string, error) {
	const q = `
		SELECT row_idx, cells FROM sheet_rows
		WHERE collection = $1 AND cells[1] = $2
		ORDER BY row_idx LIMIT 1`
	var (
		rowIdx int
		cells  pq.StringArray
	)
	row := s.db.QueryRowxContext(ctx, q, collection, key)
	if err := row.Scan(&rowIdx, &cells); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil, ErrRowNotFound
		}
		return 0, nil, fmt.Errorf("find row in %s: %w", collection, err)
	}
	return rowIdx, []string(cells), nil
}

func (s *PostgresStore) UpdateCell(ctx context.Context, collection string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("sheets: invalid cell address %d/%d", row, col)
	}
	// Pad the array first so updates past the current width stick.
	const q = `
		UPDATE sheet_rows
		SET cells = (
			SELECT array_agg(CASE WHEN i = $4 THEN $3 ELSE COALESCE(cells[i], '') END)
			FROM generate_series(1, GREATEST(cardinality(cells), $4)) AS i
		)
		WHERE collection = $1 AND row_idx = $2`
	res, err := s.db.ExecContext(ctx, q, collection, row, value, col)
	if err != nil {
		return fmt.Errorf("update cell %s[%d,%d]: %w", collection, row, col, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("sheets: row %d out of range for %s", row, collection)
	}
	return nil
}

func (s *PostgresStore) Rows(ctx context.Context, collection string) ([][]string, error) {
	const q = `
		SELECT cells FROM sheet_rows
		WHERE collection = $1 ORDER BY row_idx`
	rows, err := s.db.QueryxContext(ctx, q, collection)
	if err != nil {
		return nil, fmt.Errorf("list rows of %s: %w", collection, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells pq.StringArray
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scan row of %s: %w", collection, err)
		}
		out = append(out, []string(cells))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows of %s: %w", collection, err)
	}
	return out, nil
}
