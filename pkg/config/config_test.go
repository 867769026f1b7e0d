package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"GENERATOR_USERS", "GENERATOR_STORIES", "GENERATOR_OUTPUT", "API_BASE_URL", "POSTGRES_ENABLED"} {
		os.Unsetenv(key)
	}

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 20, c.Generator.Users)
	require.Equal(t, 50, c.Generator.Stories)
	require.Equal(t, "src/data/db.json", c.Generator.OutputPath)
	require.Equal(t, 10*time.Second, c.Api.Timeout)
	require.False(t, c.Postgres.Enabled)
	require.Equal(t, "disable", c.Postgres.SslMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GENERATOR_USERS", "7")
	t.Setenv("API_BASE_URL", "http://localhost:3000")
	t.Setenv("API_TIMEOUT", "2s")
	t.Setenv("POSTGRES_ENABLED", "true")
	t.Setenv("POSTGRES_USER", "fixtures")
	t.Setenv("POSTGRES_NAME", "stories")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7, c.Generator.Users)
	require.Equal(t, "http://localhost:3000", c.Api.BaseURL)
	require.Equal(t, 2*time.Second, c.Api.Timeout)
	require.True(t, c.Postgres.Enabled)
	require.Equal(t, "postgres://fixtures:@localhost:5432/stories?sslmode=disable", c.GetPgxURL())
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	os.Unsetenv("GENERATOR_STORIES")
	t.Cleanup(func() { os.Unsetenv("GENERATOR_STORIES") })
	require.NoError(t, os.WriteFile(".env", []byte("GENERATOR_STORIES=12\n"), 0o600))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 12, c.Generator.Stories)
}
