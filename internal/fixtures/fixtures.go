package fixtures

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/generator"
	"github.com/orgball2608/story-fixtures/internal/sink"
	"github.com/orgball2608/story-fixtures/pkg/errors"
	"github.com/orgball2608/story-fixtures/pkg/formatter"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Generator generator.Client
	Sinks     []sink.Sink `group:"sinks"`
	Logger    logger.Logger
}

// Runner generates one dataset per run and hands it to every sink.
type Runner struct {
	generator generator.Client
	sinks     []sink.Sink
	logger    logger.Logger
	out       io.Writer
}

func New(opts Opts) *Runner {
	sinks := append([]sink.Sink(nil), opts.Sinks...)
	sort.Slice(sinks, func(i, j int) bool { return sinks[i].Name() < sinks[j].Name() })

	return &Runner{
		generator: opts.Generator,
		sinks:     sinks,
		logger:    opts.Logger.WithComponent("FixturesRunner"),
		out:       os.Stdout,
	}
}

// SetOutput redirects the human-readable progress text.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

func (r *Runner) Run(ctx context.Context, counts generator.Counts) (domain.Summary, error) {
	fmt.Fprintf(r.out, "Generating %d %s and %d %s...\n",
		counts.Users, formatter.Plural(counts.Users, "user", "users"),
		counts.Stories, formatter.Plural(counts.Stories, "story", "stories"),
	)

	started := time.Now()
	ds, err := r.generator.Generate(ctx, counts)
	if err != nil {
		return domain.Summary{}, errors.Wrap(err, "failed to generate fixtures")
	}

	for _, s := range r.sinks {
		if err := s.Write(ctx, ds); err != nil {
			r.logger.Error("Sink failed", "sink", s.Name(), "location", s.Location(), "error", err)
			return domain.Summary{}, errors.Wrapf(err, "%s sink", s.Name())
		}
		r.logger.Info("Fixtures written", "sink", s.Name(), "location", s.Location())
	}

	summary := ds.Summary()
	r.logger.Debug("Run finished", "elapsed", time.Since(started).String())
	r.printSummary(summary)
	return summary, nil
}

func (r *Runner) printSummary(s domain.Summary) {
	fmt.Fprintln(r.out, "Done! Generated:")

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Collection", "Records"})
	t.AppendRows([]table.Row{
		{"users", formatter.FormatNumber(s.Users)},
		{"stories", formatter.FormatNumber(s.Stories)},
		{"story views", formatter.FormatNumber(s.StoryViews)},
		{"story replies", formatter.FormatNumber(s.StoryReplies)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()

	for _, s := range r.sinks {
		fmt.Fprintf(r.out, "Output (%s): %s\n", s.Name(), s.Location())
	}
}
