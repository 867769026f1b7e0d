package pgsink

import (
	"context"
	"fmt"

	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/repositories/fixture"
	"github.com/orgball2608/story-fixtures/internal/sink"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/errors"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Repo   fixture.Repository
	Config *config.Config
	Logger logger.Logger
}

type Sink struct {
	repo     fixture.Repository
	location string
	logger   logger.Logger
}

var _ sink.Sink = (*Sink)(nil)

func New(opts Opts) *Sink {
	return &Sink{
		repo:     opts.Repo,
		location: fmt.Sprintf("postgres://%s:%d/%s", opts.Config.Postgres.Host, opts.Config.Postgres.Port, opts.Config.Postgres.Name),
		logger:   opts.Logger.WithComponent("PostgresSink"),
	}
}

func (s *Sink) Name() string { return "postgres" }

func (s *Sink) Location() string { return s.location }

// Write replaces the stored fixtures and checks the tables hold exactly
// what was sent.
func (s *Sink) Write(ctx context.Context, ds *domain.Dataset) error {
	if err := s.repo.Replace(ctx, ds); err != nil {
		return errors.Wrap(err, "failed to seed postgres")
	}

	stored, err := s.repo.Counts(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to verify postgres seed")
	}

	if want := ds.Summary(); stored != want {
		s.logger.Error("Seed verification mismatch", "want", want, "stored", stored)
		return errors.Newf("postgres holds %+v after seeding, want %+v", stored, want)
	}

	s.logger.Debug("Postgres seeded", "location", s.location)
	return nil
}
