package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateStoryInteractions, downCreateStoryInteractions)
}

func upCreateStoryInteractions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE story_views (
		id         INTEGER PRIMARY KEY,
		story_id   INTEGER NOT NULL REFERENCES stories (id),
		user_id    INTEGER NOT NULL REFERENCES users (id),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		UNIQUE (story_id, user_id)
	);

	CREATE TABLE story_replies (
		id         INTEGER PRIMARY KEY,
		story_id   INTEGER NOT NULL REFERENCES stories (id),
		user_id    INTEGER NOT NULL REFERENCES users (id),
		message    VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		UNIQUE (story_id, user_id)
	);

	CREATE INDEX story_views_story_id_idx ON story_views (story_id);
	CREATE INDEX story_replies_story_id_idx ON story_replies (story_id);
	`)
	return err
}

func downCreateStoryInteractions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE story_replies;
	DROP TABLE story_views;
	`)
	return err
}
