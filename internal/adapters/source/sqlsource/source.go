package sqlsource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"dental-lab/internal/query"
)

var tableRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func checkTable(t string) error {
	if !tableRe.MatchString(t) {
		return fmt.Errorf("sqlsource: invalid table name %q", t)
	}
	return nil
}

// Source lee una colección de una tabla (id, payload) donde payload es el
// documento JSON de la entidad. Es de solo lectura.
type Source[T any] struct {
	db    *sql.DB
	table string
}

func New[T any](db *sql.DB, table string) (*Source[T], error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	return &Source[T]{db: db, table: table}, nil
}

func (s *Source[T]) Name() string { return "sql:" + s.table }

func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM `+s.table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		var v T
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, fmt.Errorf("decode %s row %d: %w", s.table, len(out)+1, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}
	return out, nil
}

// Load reemplaza el contenido de table con items, en una transacción.
// Lo usa el comando de carga inicial; el servidor nunca escribe.
func Load[T query.Entity](ctx context.Context, db *sql.DB, driver, table string, items []T) error {
	if err := checkTable(table); err != nil {
		return err
	}

	insert := `INSERT INTO ` + table + ` (id, payload) VALUES ($1, $2)`
	if driver == DriverSQLite {
		insert = `INSERT INTO ` + table + ` (id, payload) VALUES (?, ?)`
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	for _, it := range items {
		payload, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("encode %s id %d: %w", table, it.EntityID(), err)
		}
		if _, err := tx.ExecContext(ctx, insert, it.EntityID(), string(payload)); err != nil {
			return fmt.Errorf("insert %s id %d: %w", table, it.EntityID(), err)
		}
	}
	return tx.Commit()
}
