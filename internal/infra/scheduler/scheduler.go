package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IntervalWaiter blocks the poll loop until the next run of a cron schedule.
// With the default "@every 10m" this is a fixed 600 second pause.
type IntervalWaiter struct {
	schedule cron.Schedule
	spec     string
	now      func() time.Time
	logger   *logrus.Entry
}

func NewIntervalWaiter(spec string, logger *logrus.Entry) (*IntervalWaiter, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &IntervalWaiter{
		schedule: schedule,
		spec:     spec,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// Next returns when the following poll is due.
func (w *IntervalWaiter) Next() time.Time {
	return w.schedule.Next(w.now())
}

// Wait sleeps until the next scheduled time or until ctx is done.
func (w *IntervalWaiter) Wait(ctx context.Context) error {
	next := w.Next()
	delay := next.Sub(w.now())
	w.logger.WithFields(logrus.Fields{
		"schedule": w.spec,
		"next_run": next.Format(time.RFC3339),
	}).Debug("Waiting for next poll")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (w *IntervalWaiter) String() string {
	return w.spec
}
