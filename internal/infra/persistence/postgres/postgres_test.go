package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Check(t *testing.T) {
	var buf bytes.Buffer
	stats := sql.DBStats{MaxOpenConnections: 10}
	m := &poolMonitor{
		stats:  func() sql.DBStats { return stats },
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	m.check(context.Background())
	assert.Empty(t, buf.String(), "no waits, nothing to report")

	stats.WaitCount, stats.WaitDuration = 2, 10*time.Millisecond
	m.check(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")

	buf.Reset()
	stats.WaitCount, stats.WaitDuration = 6, 210*time.Millisecond
	m.check(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "avg_wait=50ms")
}
