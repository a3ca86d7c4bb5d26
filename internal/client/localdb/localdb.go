// Package localdb opens the client's SQLite cache and applies migrations.
package localdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/CarlosParra69/Citas-sub001/internal/client/migrations"
	"github.com/CarlosParra69/Citas-sub001/internal/client/repositories/appointments"
	"github.com/CarlosParra69/Citas-sub001/internal/client/repositories/session"
)

// Repositories bundles the repositories backed by the local cache DB.
type Repositories struct {
	Session      session.Repository
	Appointments appointments.Repository
	DB           *sql.DB
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn,
// applies pending migrations and returns the ready repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}

	return &Repositories{
		Session:      session.NewSQLiteRepository(db),
		Appointments: appointments.NewSQLiteRepository(db),
		DB:           db,
	}, nil
}
