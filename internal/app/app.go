package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/story-fixtures/internal/fetch"
	"github.com/orgball2608/story-fixtures/internal/fixtures"
	"github.com/orgball2608/story-fixtures/internal/generator"
	"github.com/orgball2608/story-fixtures/internal/generator/generatorimpl"
	"github.com/orgball2608/story-fixtures/internal/migrations"
	"github.com/orgball2608/story-fixtures/internal/mockserver"
	repositories "github.com/orgball2608/story-fixtures/internal/repositories/fx"
	"github.com/orgball2608/story-fixtures/internal/sink"
	"github.com/orgball2608/story-fixtures/internal/sink/jsonfile"
	"github.com/orgball2608/story-fixtures/internal/sink/pgsink"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"github.com/orgball2608/story-fixtures/pkg/pgx"
	"go.uber.org/fx"
)

var Generate = fx.Options(
	fx.Provide(
		fx.Annotate(
			generatorimpl.New,
			fx.As(new(generator.Client)),
		),
		fx.Annotate(
			jsonfile.New,
			fx.As(new(sink.Sink)),
			fx.ResultTags(sink.Group),
		),
		fixtures.New,
	),
)

// Postgres adds the seed sink. The schema is migrated right after the pool
// answers its first ping.
var Postgres = fx.Options(
	fx.Provide(pgx.New),
	repositories.Module,
	fx.Provide(
		fx.Annotate(
			pgsink.New,
			fx.As(new(sink.Sink)),
			fx.ResultTags(sink.Group),
		),
	),
	fx.Invoke(
		func(lc fx.Lifecycle, cfg *config.Config, log logger.Logger, _ *pgxpool.Pool) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if err := migrations.Up(ctx, cfg.GetDSN()); err != nil {
						return err
					}
					log.Info("Fixture schema is up to date")
					return nil
				},
			})
		}),
)

var Serve = fx.Options(
	fx.Provide(mockserver.New),
	fx.Invoke(func(*mockserver.Server) {}),
)

var Fetch = fx.Options(
	fx.Provide(fetch.New),
)

// New builds an fx application around an already loaded configuration.
func New(cfg *config.Config, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.Provide(logger.FxOption),
		fx.WithLogger(logger.FxEventLogger),
		fx.Options(opts...),
	)
}
