package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // sqlite en Go puro
)

// Drivers registrados en database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Tablas por colección.
const (
	TableDoctors   = "doctors"
	TablePractices = "practices"
	TablePatients  = "patients"
)

// Open abre un pool y verifica la conexión con un ping.
func Open(driver, dsn string) (*sql.DB, error) {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		driver = DriverPostgres
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("sqlsource: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// ":memory:" es una base por conexión; una sola conexión la comparte
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea las tablas (id, payload) si no existen. Sirve para
// ambos drivers.
func EnsureSchema(ctx context.Context, db *sql.DB, tables ...string) error {
	for _, t := range tables {
		if err := checkTable(t); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+t+` (
			id INTEGER PRIMARY KEY,
			payload TEXT NOT NULL
		)`)
		if err != nil {
			return fmt.Errorf("create table %s: %w", t, err)
		}
	}
	return nil
}
