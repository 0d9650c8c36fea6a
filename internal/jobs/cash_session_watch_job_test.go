package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type finderFunc func(ctx context.Context, q queries.GetStaleCashSessionsQuery) ([]queries.GetStaleCashSessionsQueryResponse, error)

func (f finderFunc) Handle(
	ctx context.Context, q queries.GetStaleCashSessionsQuery,
) ([]queries.GetStaleCashSessionsQueryResponse, error) {
	return f(ctx, q)
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCashSessionWatchJob_Run_WarnsAboutStaleSessions(t *testing.T) {
	// Given a session opened 14 hours ago and a 12 hour limit
	now := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)
	sessionID := kernel.NewUUID()

	var cutoff time.Time
	finder := finderFunc(func(_ context.Context, q queries.GetStaleCashSessionsQuery) ([]queries.GetStaleCashSessionsQueryResponse, error) {
		cutoff = q.OpenedBefore()
		return []queries.GetStaleCashSessionsQueryResponse{{
			ID:           sessionID,
			CompanyID:    1,
			OpenedBy:     7,
			InitialValue: kernel.MustMoney("100.00"),
			StartedAt:    now.Add(-14 * time.Hour),
		}}, nil
	})

	var buf bytes.Buffer
	job := jobs.NewCashSessionWatchJob(finder, "0 */15 * * * *", 12*time.Hour, kernel.FixedClock(now), jsonLogger(&buf))

	// When the check runs
	count, err := job.Run(t.Context())

	// Then sessions started before 21:00 of the previous day are reported
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, now.Add(-12*time.Hour), cutoff)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "cash_session_watch_job", entry["component"])
	assert.Equal(t, sessionID.String(), entry["session_id"])
	assert.Equal(t, "14h0m0s", entry["open_for"])
}

func TestCashSessionWatchJob_Run_PropagatesErrors(t *testing.T) {
	finder := finderFunc(func(context.Context, queries.GetStaleCashSessionsQuery) ([]queries.GetStaleCashSessionsQueryResponse, error) {
		return nil, errors.New("database is down")
	})
	var buf bytes.Buffer
	job := jobs.NewCashSessionWatchJob(finder, "@every 1m", time.Hour, nil, jsonLogger(&buf))

	count, err := job.Run(t.Context())

	require.EqualError(t, err, "database is down")
	assert.Zero(t, count)
	assert.Empty(t, buf.String())
}

func TestCashSessionWatchJob_Start_RejectsBadSchedule(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewCashSessionWatchJob(finderFunc(nil), "every now and then", time.Hour, nil, jsonLogger(&buf))

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	var buf bytes.Buffer
	finder := finderFunc(func(context.Context, queries.GetStaleCashSessionsQuery) ([]queries.GetStaleCashSessionsQueryResponse, error) {
		return nil, nil
	})
	manager := jobs.NewJobManager(finder, "0 0 4 * * *", 12*time.Hour, jsonLogger(&buf))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Cash session watch job started")
	assert.Contains(t, buf.String(), "Cash session watch job stopped")

	failing := jobs.NewJobManager(finder, "not a schedule", time.Hour, jsonLogger(&buf))
	require.ErrorContains(t, failing.StartAll(), "failed to start cash session watch job")
}
