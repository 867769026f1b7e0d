package mockserver

import (
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestServerLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	cfg := &config.Config{}
	cfg.App.Port = freePort(t)
	cfg.Generator.OutputPath = path

	lc := fxtest.NewLifecycle(t)
	s, err := New(Opts{LC: lc, Config: cfg, Logger: logger.New(logger.Opts{Out: io.Discard})})
	require.NoError(t, err)
	require.Equal(t, []string{"stories", "storyReplies", "storyViews", "users"}, s.Store().Collections())

	lc.RequireStart()
	res, err := http.Get("http://127.0.0.1:" + strconv.Itoa(cfg.App.Port) + "/healthz")
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	lc.RequireStop()
}

func TestServerMissingDocument(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generator.OutputPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := New(Opts{LC: fxtest.NewLifecycle(t), Config: cfg, Logger: logger.New(logger.Opts{Out: io.Discard})})
	require.Error(t, err)
}
