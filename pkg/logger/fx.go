package logger

import (
	"log/slog"

	"github.com/orgball2608/story-fixtures/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var FxOption = fx.Annotate(
	func(cfg *config.Config) *Impl {
		return New(
			Opts{
				Env:       cfg.App.Env,
				Level:     cfg.App.LogLevel,
				SentryDSN: cfg.App.SentryUrl,
			},
		)
	},
	fx.As(new(Logger)),
)

// FxEventLogger routes fx's own lifecycle events to the application logger
// at debug level.
func FxEventLogger(log Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: log.Slog()}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
