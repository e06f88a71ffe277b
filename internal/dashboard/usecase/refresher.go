package usecase

import (
	"context"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/pkg/dateutil"
	"teamboard/pkg/log"
)

// RefresherConfig controls the periodic background reload.
type RefresherConfig struct {
	Interval time.Duration
	// Polling only runs between WindowStart (inclusive) and WindowEnd
	// (exclusive), as local-time hours in the calendar's timezone.
	WindowStart int
	WindowEnd   int
}

// Refresher drives periodic snapshot reloads, suppressed outside the
// configured local-time window. Manual refreshes through the use case are
// unaffected by the window.
type Refresher struct {
	l        log.Logger
	uc       dashboard.UseCase
	calendar *dateutil.Calendar
	cfg      RefresherConfig
}

func NewRefresher(l log.Logger, uc dashboard.UseCase, calendar *dateutil.Calendar, cfg RefresherConfig) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.WindowStart == 0 && cfg.WindowEnd == 0 {
		cfg.WindowStart, cfg.WindowEnd = 8, 19
	}
	return &Refresher{l: l, uc: uc, calendar: calendar, cfg: cfg}
}

// Run blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	r.l.Infof(ctx, "refresher started: every %s between %02d:00 and %02d:00",
		r.cfg.Interval, r.cfg.WindowStart, r.cfg.WindowEnd)

	for {
		select {
		case <-ctx.Done():
			r.l.Info(ctx, "refresher stopped")
			return
		case <-ticker.C:
			if !r.withinWindow(time.Now()) {
				r.l.Debug(ctx, "refresh skipped outside working hours")
				continue
			}
			out := r.uc.Refresh(ctx)
			if !out.Connected {
				r.l.Warnf(ctx, "background refresh degraded: %s", out.Message)
			}
		}
	}
}

func (r *Refresher) withinWindow(t time.Time) bool {
	hour := t.In(r.calendar.Location()).Hour()
	return hour >= r.cfg.WindowStart && hour < r.cfg.WindowEnd
}
