package migrations

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Dir is where goose looks for migration sources. The migrations in this
// package are registered from Go, so only their versions matter.
const Dir = "."

// Up applies every registered migration against dsn.
func Up(ctx context.Context, dsn string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	return goose.UpContext(ctx, db, Dir)
}
