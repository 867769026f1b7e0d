package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/repositories"
	"github.com/orgball2608/story-fixtures/pkg/logger"
)

const insertBatchSize = 500

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("FixtureRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

type statement struct {
	table string
	query string
	args  []any
}

func (r *PgxRepository) Replace(ctx context.Context, ds *domain.Dataset) error {
	statements, err := buildInserts(ds)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE story_replies, story_views, stories, users RESTART IDENTITY`); err != nil {
		return errors.Join(fmt.Errorf("failed to truncate fixture tables: %w", err), ErrCannotReplace)
	}

	for _, st := range statements {
		if _, err := tx.Exec(ctx, st.query, st.args...); err != nil {
			return errors.Join(fmt.Errorf("failed to insert into %s: %w", st.table, err), ErrCannotReplace)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Join(fmt.Errorf("failed to commit fixtures: %w", err), ErrCannotReplace)
	}

	r.logger.Info("Fixtures replaced",
		"users", len(ds.Users),
		"stories", len(ds.Stories),
		"story_views", len(ds.StoryViews),
		"story_replies", len(ds.StoryReplies),
		"statements", len(statements),
	)
	return nil
}

func (r *PgxRepository) Counts(ctx context.Context) (domain.Summary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM stories),
			(SELECT COUNT(*) FROM story_views),
			(SELECT COUNT(*) FROM story_replies)
	`

	var s domain.Summary
	err := r.pool.QueryRow(ctx, query).Scan(&s.Users, &s.Stories, &s.StoryViews, &s.StoryReplies)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to count fixtures: %w", err)
	}
	return s, nil
}

// buildInserts renders multi-row INSERTs in parent-before-child order so
// foreign keys hold at every statement.
func buildInserts(ds *domain.Dataset) ([]statement, error) {
	var out []statement

	add := func(table string, columns []string, n int, row func(i int) []any) error {
		for start := 0; start < n; start += insertBatchSize {
			end := min(start+insertBatchSize, n)

			builder := repositories.SqBuilder.Insert(table).Columns(columns...)
			for i := start; i < end; i++ {
				builder = builder.Values(row(i)...)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return repositories.ErrBadQuery
			}
			out = append(out, statement{table: table, query: query, args: args})
		}
		return nil
	}

	err := add("users",
		[]string{"id", "username", "full_name", "profile_picture", "is_verified"},
		len(ds.Users), func(i int) []any {
			u := ds.Users[i]
			return []any{u.ID, u.Username, u.FullName, u.ProfilePicture, u.IsVerified}
		})
	if err != nil {
		return nil, err
	}

	err = add("stories",
		[]string{"id", "user_id", "media_type", "media_url", "caption", "created_at", "duration", "views", "has_viewed"},
		len(ds.Stories), func(i int) []any {
			s := ds.Stories[i]
			return []any{s.ID, s.UserID, s.MediaType, s.MediaURL, s.Caption, s.Timestamp.Time, s.Duration, s.Views, s.HasViewed}
		})
	if err != nil {
		return nil, err
	}

	err = add("story_views",
		[]string{"id", "story_id", "user_id", "created_at"},
		len(ds.StoryViews), func(i int) []any {
			v := ds.StoryViews[i]
			return []any{v.ID, v.StoryID, v.UserID, v.Timestamp.Time}
		})
	if err != nil {
		return nil, err
	}

	err = add("story_replies",
		[]string{"id", "story_id", "user_id", "message", "created_at"},
		len(ds.StoryReplies), func(i int) []any {
			r := ds.StoryReplies[i]
			return []any{r.ID, r.StoryID, r.UserID, r.Message, r.Timestamp.Time}
		})
	if err != nil {
		return nil, err
	}

	return out, nil
}
