package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/sink"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/errors"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Writer struct {
	path   string
	logger logger.Logger
}

var _ sink.Sink = (*Writer)(nil)

func New(opts Opts) *Writer {
	return NewWriter(opts.Config.Generator.OutputPath, opts.Logger)
}

func NewWriter(path string, log logger.Logger) *Writer {
	return &Writer{
		path:   path,
		logger: log.WithComponent("JSONFileSink"),
	}
}

func (w *Writer) Name() string { return "json" }

func (w *Writer) Location() string { return w.path }

func (w *Writer) Write(_ context.Context, ds *domain.Dataset) error {
	body, err := Encode(ds)
	if err != nil {
		return errors.Wrap(err, "failed to encode dataset")
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}

	if err := os.WriteFile(w.path, body, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", w.path)
	}

	w.logger.Debug("Dataset written", "path", w.path, "bytes", len(body))
	return nil
}

// Encode renders the dataset with two-space indentation and without HTML
// escaping, so captions keep their literal characters.
func Encode(ds *domain.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
