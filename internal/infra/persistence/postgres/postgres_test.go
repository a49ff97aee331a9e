package postgres

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, waited := poolWaitAttrs(prev, prev)
		assert.False(t, waited)
		assert.Empty(t, attrs)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, MaxOpenConnections: 20, InUse: 20}
		level, attrs, waited := poolWaitAttrs(prev, cur)
		require.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))
		assert.Contains(t, attrs, slog.Int("inUseConns", 20))
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond}
		level, attrs, waited := poolWaitAttrs(prev, cur)
		require.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
		assert.Contains(t, attrs, slog.Int64("waitCountDelta", 1))
	})
}

func TestPingUntilReady(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	errRefused := errors.New("connection refused")

	t.Run("succeeds after retries", func(t *testing.T) {
		calls := 0
		ping := func(context.Context) error {
			calls++
			if calls < 3 {
				return errRefused
			}

			return nil
		}

		require.NoError(t, pingUntilReady(context.Background(), logger, ping, time.Millisecond))
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when the deadline passes", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := pingUntilReady(ctx, logger, func(context.Context) error { return errRefused }, time.Millisecond)
		assert.ErrorIs(t, err, errRefused)
	})
}
