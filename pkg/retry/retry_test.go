package retry

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	log := logger.New(logger.Opts{Out: io.Discard})
	attempts := 0

	err := Do(context.Background(), log, "ping", func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, fastConfig())

	require.NoError(t, err)
	require.Equal(t, 3, attempts)
}

func TestDoGivesUp(t *testing.T) {
	log := logger.New(logger.Opts{Out: io.Discard})
	attempts := 0

	err := Do(context.Background(), log, "ping", func() error {
		attempts++
		return errors.New("connection refused")
	}, fastConfig())

	require.EqualError(t, err, "connection refused")
	require.Equal(t, 4, attempts)
}

func TestDoStopsOnPermanent(t *testing.T) {
	log := logger.New(logger.Opts{Out: io.Discard})
	attempts := 0

	err := Do(context.Background(), log, "ping", func() error {
		attempts++
		return backoff.Permanent(errors.New("bad password"))
	}, fastConfig())

	require.EqualError(t, err, "bad password")
	require.Equal(t, 1, attempts)
}
