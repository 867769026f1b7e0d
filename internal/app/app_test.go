package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/fetch"
	"github.com/orgball2608/story-fixtures/internal/fixtures"
	"github.com/orgball2608/story-fixtures/internal/generator"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.LogLevel = "error"
	cfg.Generator.OutputPath = filepath.Join(t.TempDir(), "data", "db.json")
	cfg.Generator.Seed = 11
	return cfg
}

func TestGenerateGraph(t *testing.T) {
	cfg := testConfig(t)

	var runner *fixtures.Runner
	app := New(cfg, Generate, fx.Populate(&runner))
	require.NoError(t, app.Err())

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	defer app.Stop(ctx)

	var out bytes.Buffer
	runner.SetOutput(&out)
	summary, err := runner.Run(ctx, generator.Counts{Users: 3, Stories: 5})
	require.NoError(t, err)
	require.Equal(t, 3, summary.Users)

	raw, err := os.ReadFile(cfg.Generator.OutputPath)
	require.NoError(t, err)
	var ds domain.Dataset
	require.NoError(t, json.Unmarshal(raw, &ds))
	require.Len(t, ds.Stories, 5)
}

func TestFetchGraph(t *testing.T) {
	cfg := testConfig(t)
	cfg.Api.BaseURL = "http://localhost:3000"

	var client *fetch.Client
	app := New(cfg, Fetch, fx.Populate(&client))
	require.NoError(t, app.Err())
	require.Equal(t, "http://localhost:3000", client.BaseURL())
}

func TestServeGraphNeedsDocument(t *testing.T) {
	cfg := testConfig(t)

	app := New(cfg, Serve)
	require.Error(t, app.Err())
}
