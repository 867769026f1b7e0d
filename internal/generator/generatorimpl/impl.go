package generatorimpl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/generator"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/errors"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"go.uber.org/fx"
)

const (
	verifiedProbability  = 0.3
	hasViewedProbability = 0.3
	replyProbability     = 0.4

	storyLookback       = 3 * day
	interactionLookback = 2 * day

	maxViewsPerStory   = 5
	minRepliesPerStory = 1
	maxRepliesPerStory = 3
)

type Opts struct {
	fx.In

	Logger logger.Logger
	Config *config.Config
}

type GeneratorImpl struct {
	rnd    *rand.Rand
	now    func() time.Time
	logger logger.Logger
}

var _ generator.Client = (*GeneratorImpl)(nil)

func New(opts Opts) *GeneratorImpl {
	return NewWithSource(newRand(opts.Config.Generator.Seed), time.Now, opts.Logger)
}

// NewWithSource builds a generator over an explicit random source and clock.
func NewWithSource(rnd *rand.Rand, now func() time.Time, log logger.Logger) *GeneratorImpl {
	return &GeneratorImpl{
		rnd:    rnd,
		now:    now,
		logger: log.WithComponent("Generator"),
	}
}

// newRand seeds deterministically for a non-zero seed.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (g *GeneratorImpl) Generate(ctx context.Context, counts generator.Counts) (*domain.Dataset, error) {
	if counts.Users <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "user count must be positive, got %d", counts.Users)
	}
	if counts.Stories <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "story count must be positive, got %d", counts.Stories)
	}

	now := g.now()
	ds := &domain.Dataset{}

	ds.Users = g.generateUsers(counts.Users)
	g.logger.Debug("Generated users", "count", len(ds.Users))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds.Stories = g.generateStories(now, counts.Stories, counts.Users)
	g.logger.Debug("Generated stories", "count", len(ds.Stories))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds.StoryViews = g.generateStoryViews(now, ds.Stories, counts.Users)
	g.logger.Debug("Generated story views", "count", len(ds.StoryViews))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds.StoryReplies = g.generateStoryReplies(now, ds.Stories, counts.Users)
	g.logger.Debug("Generated story replies", "count", len(ds.StoryReplies))

	return ds, nil
}
