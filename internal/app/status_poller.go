// internal/app/status_poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const failureMessagePrefix = "Сбой в работе программы: "

// HomeworkFetcher is the homework API as seen by the poller.
type HomeworkFetcher interface {
	Fetch(ctx context.Context, since int64) (homework.RawResponse, error)
}

// Waiter blocks between poll cycles.
type Waiter interface {
	Wait(ctx context.Context) error
}

// StatusPoller polls the homework API and forwards status changes to the chat.
type StatusPoller struct {
	creds    homework.Credentials
	fetcher  HomeworkFetcher
	notifier Notifier
	waiter   Waiter
	logger   *logrus.Entry
	now      func() time.Time
}

func NewStatusPoller(
	creds homework.Credentials,
	fetcher HomeworkFetcher,
	notifier Notifier,
	waiter Waiter,
	logger *logrus.Entry,
) *StatusPoller {
	return &StatusPoller{
		creds:    creds,
		fetcher:  fetcher,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger,
		now:      time.Now,
	}
}

// Run validates credentials and then polls until ctx is done.
// A *homework.ConfigError is returned before any request is made if a
// credential is missing; otherwise Run returns nil on cancellation.
func (p *StatusPoller) Run(ctx context.Context) error {
	if err := p.creds.Validate(); err != nil {
		return err
	}

	state := homework.PollState{CurrentTimestamp: p.now().Unix()}
	p.logger.WithField("from_date", state.CurrentTimestamp).Info("Status poller started")

	for {
		state = p.PollOnce(ctx, state)
		if err := p.waiter.Wait(ctx); err != nil {
			p.logger.WithField("reason", err).Info("Status poller stopped")
			return nil
		}
	}
}

// PollOnce runs a single fetch, validate, format and notify cycle and returns
// the state for the next one. It never panics and never returns an error;
// failures are logged and, when new, reported to the chat.
func (p *StatusPoller) PollOnce(ctx context.Context, state homework.PollState) (next homework.PollState) {
	logCtx := p.logger.WithFields(logrus.Fields{
		"cycle_id":  uuid.NewString(),
		"from_date": state.CurrentTimestamp,
	})
	next = state

	defer func() {
		if r := recover(); r != nil {
			next = p.reportFailure(ctx, logCtx, next, fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	raw, err := p.fetcher.Fetch(ctx, state.CurrentTimestamp)
	if err != nil {
		if ctx.Err() != nil {
			logCtx.WithError(err).Info("Fetch interrupted by shutdown")
			return next
		}
		return p.reportFailure(ctx, logCtx, next, err)
	}

	if ts, ok := raw.CurrentDate(); ok {
		next = next.Advance(ts)
	}

	resp, err := homework.ParseResponse(raw)
	if err != nil {
		return p.reportFailure(ctx, logCtx, next, err)
	}
	if next.LastErrorMessage != "" {
		logCtx.Info("Homework API recovered")
		next.LastErrorMessage = ""
	}

	if len(resp.Homeworks) == 0 {
		logCtx.Info("No homework status changes")
		return next
	}

	// A malformed entry is skipped; the rest of the cycle still runs.
	for i, rawEntry := range resp.Homeworks {
		message, err := formatEntry(rawEntry)
		if err != nil {
			logCtx.WithError(err).WithField("entry_index", i).Error("Skipping homework entry")
			continue
		}
		p.notifier.Notify(ctx, message)
	}
	return next
}

func formatEntry(raw homework.RawEntry) (string, error) {
	entry, err := raw.Decode()
	if err != nil {
		return "", err
	}
	return homework.FormatStatus(entry)
}

func (p *StatusPoller) reportFailure(ctx context.Context, logCtx *logrus.Entry, state homework.PollState, err error) homework.PollState {
	message := failureMessagePrefix + err.Error()
	logCtx = logCtx.WithError(err).WithFields(errorFields(err))

	if message == state.LastErrorMessage {
		logCtx.Error("Poll cycle failed; same failure already reported")
		return state
	}

	logCtx.Error("Poll cycle failed")
	p.notifier.Notify(ctx, message)
	state.LastErrorMessage = message
	return state
}

func errorFields(err error) logrus.Fields {
	var (
		fetchErr *homework.FetchError
		shapeErr *homework.ShapeError
	)
	switch {
	case errors.As(err, &fetchErr):
		fields := logrus.Fields{"error_kind": "fetch", "fetch_kind": fetchErr.Kind.String()}
		if fetchErr.Code != 0 {
			fields["status_code"] = fetchErr.Code
		}
		return fields
	case errors.As(err, &shapeErr):
		return logrus.Fields{"error_kind": "shape", "shape_kind": shapeErr.Kind.String()}
	default:
		return logrus.Fields{"error_kind": "unexpected"}
	}
}
