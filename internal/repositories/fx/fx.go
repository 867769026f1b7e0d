package fx

import (
	"github.com/orgball2608/story-fixtures/internal/repositories/fixture"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fixture.Module,
)
