package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StaleCashSessionsFinder is satisfied by queries.GetStaleCashSessionsQueryHandler.
type StaleCashSessionsFinder interface {
	Handle(ctx context.Context, query queries.GetStaleCashSessionsQuery) ([]queries.GetStaleCashSessionsQueryResponse, error)
}

// CashSessionWatchJob logs a warning for every session still open after maxOpen.
type CashSessionWatchJob struct {
	finder   StaleCashSessionsFinder
	schedule string
	maxOpen  time.Duration
	clock    kernel.Clock
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCashSessionWatchJob(
	finder StaleCashSessionsFinder,
	schedule string,
	maxOpen time.Duration,
	clock kernel.Clock,
	logger *slog.Logger,
) *CashSessionWatchJob {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &CashSessionWatchJob{
		finder:   finder,
		schedule: schedule,
		maxOpen:  maxOpen,
		clock:    clock,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cash_session_watch_job"),
	}
}

func (j *CashSessionWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Cash session watch failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cash session watch job started",
		"schedule", j.schedule, "max_open", j.maxOpen.String())
	return nil
}

// Run performs one check and returns how many stale sessions were reported.
func (j *CashSessionWatchJob) Run(ctx context.Context) (int, error) {
	now := j.clock.Now()
	query, err := queries.NewGetStaleCashSessionsQuery(now.Add(-j.maxOpen))
	if err != nil {
		return 0, err
	}

	stale, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, s := range stale {
		j.logger.WarnContext(ctx, "Cash register session open too long",
			"session_id", s.ID.String(),
			"company_id", s.CompanyID.Int64(),
			"opened_by", s.OpenedBy.Int64(),
			"started_at", s.StartedAt,
			"open_for", now.Sub(s.StartedAt).Round(time.Minute).String(),
		)
	}
	return len(stale), nil
}

// Stop waits for a running check to finish.
func (j *CashSessionWatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cash session watch job stopped")
}
