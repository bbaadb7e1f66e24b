// Package poller runs the fetch → validate → diff → notify cycle.
//
// One logical thread of control: a cycle runs to completion before the next
// starts, and the watermark plus both dedup slots are touched only from
// inside Run. Recoverable failures are reported to the chat at most once per
// distinct message text; the loop always sleeps its full interval afterwards
// (intentional backpressure against a rate-limited API).
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hwbot/internal/practicum"
	logx "hwbot/pkg/logx"
)

// Fetcher is the remote status API (practicum.Client in production).
type Fetcher interface {
	Fetch(ctx context.Context, from int64) (practicum.Response, error)
}

// Notifier is the outbound channel (telegram.Adapter in production).
// One delivery attempt per call; retry policy lives here, not there.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Poller struct {
	fetcher  Fetcher
	notifier Notifier
	log      logx.Logger

	mu       sync.Mutex
	interval time.Duration

	// Loop-owned state. cursor only ever advances, and only after a fully
	// successful cycle; lastMessage/lastError are the dedup slots.
	cursor      int64
	lastMessage string
	lastError   string
}

func New(fetcher Fetcher, notifier Notifier, interval time.Duration, log logx.Logger) *Poller {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Poller{
		fetcher:  fetcher,
		notifier: notifier,
		interval: interval,
		log:      log,
	}
}

func (p *Poller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// SetInterval takes effect at the next sleep boundary.
func (p *Poller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	p.interval = d
	p.mu.Unlock()
}

// Run polls until ctx is cancelled (returns nil) or an unclassified failure
// occurs (returns the failure, after a best-effort notification).
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info("poller started", logx.Duration("interval", p.Interval()), logx.Int64("cursor", p.cursor))
	for {
		select {
		case <-ctx.Done():
			p.log.Info("poller stopped")
			return nil
		default:
		}

		if err := p.cycle(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				p.log.Info("poller stopped")
				return nil
			}
			return err
		}

		t := time.NewTimer(p.Interval())
		select {
		case <-ctx.Done():
			t.Stop()
			p.log.Info("poller stopped")
			return nil
		case <-t.C:
		}
	}
}

func (p *Poller) cycle(ctx context.Context) error {
	resp, err := p.fetcher.Fetch(ctx, p.cursor)
	if err != nil {
		return p.fail(ctx, err)
	}

	records, next, err := practicum.CheckResponse(resp)
	if err != nil {
		return p.fail(ctx, err)
	}

	// Parse everything before notifying anything: one bad record aborts the
	// whole cycle with the cursor unchanged.
	messages := make([]string, 0, len(records))
	for _, raw := range records {
		hw, err := practicum.ParseRecord(raw)
		if err != nil {
			return p.fail(ctx, err)
		}
		messages = append(messages, hw.Notification())
	}

	// Oldest first, one notification per record. A delivery failure is logged
	// locally and does not block the remaining records.
	for _, msg := range messages {
		if msg == p.lastMessage {
			p.log.Debug("status unchanged; notification suppressed")
			continue
		}
		if err := p.notifier.Send(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			cat, _ := Classify(err)
			p.log.Error("notification delivery failed",
				logx.String("category", cat.String()), logx.Err(err))
		}
		p.lastMessage = msg
	}

	// The watermark never rolls back, even if the server hands us a smaller
	// cursor than the one we already hold.
	if next > p.cursor {
		p.cursor = next
	} else if next < p.cursor {
		p.log.Warn("server cursor behind watermark; keeping watermark",
			logx.Int64("cursor", p.cursor), logx.Int64("server", next))
	}
	p.log.Debug("cycle complete", logx.Int64("cursor", p.cursor), logx.Int("records", len(records)))
	return nil
}

// fail handles one cycle-level error: classify, log, report once per distinct
// text, and decide whether the process lives. The cursor is never touched.
func (p *Poller) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		// Shutting down; not a cycle failure.
		return ctx.Err()
	}

	cat, fatal := Classify(err)
	p.log.Error("poll cycle failed",
		logx.String("category", cat.String()), logx.Bool("fatal", fatal), logx.Err(err))

	if cat.Notifiable() {
		msg := fmt.Sprintf("Сбой в работе программы: %v", err)
		if msg != p.lastError {
			// Best-effort: a failure to report a failure is only logged.
			if serr := p.notifier.Send(ctx, msg); serr != nil {
				p.log.Error("error notification delivery failed", logx.Err(serr))
			}
			p.lastError = msg
		} else {
			p.log.Debug("error unchanged; notification suppressed")
		}
	}

	if fatal {
		return fmt.Errorf("unrecoverable poll failure: %w", err)
	}
	return nil
}
