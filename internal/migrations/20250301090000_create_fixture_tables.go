package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateFixtureTables, downCreateFixtureTables)
}

func upCreateFixtureTables(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE users (
		id              INTEGER PRIMARY KEY,
		username        VARCHAR NOT NULL UNIQUE,
		full_name       VARCHAR NOT NULL,
		profile_picture VARCHAR NOT NULL,
		is_verified     BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE stories (
		id         INTEGER PRIMARY KEY,
		user_id    INTEGER NOT NULL REFERENCES users (id),
		media_type VARCHAR NOT NULL,
		media_url  VARCHAR NOT NULL,
		caption    VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		duration   INTEGER NOT NULL,
		views      INTEGER NOT NULL,
		has_viewed BOOLEAN NOT NULL DEFAULT FALSE
	);
	`)
	return err
}

func downCreateFixtureTables(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE stories;
	DROP TABLE users;
	`)
	return err
}
