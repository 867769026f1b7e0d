package sink

import (
	"context"

	"github.com/orgball2608/story-fixtures/internal/domain"
)

// Sink receives the complete dataset once per run and replaces whatever it
// held before.
type Sink interface {
	Name() string
	Location() string
	Write(ctx context.Context, ds *domain.Dataset) error
}

// Group is the fx value group every sink is provided into.
const Group = `group:"sinks"`
