// Package poller waits for a remote condition to settle by querying it on a
// fixed cadence until the answer is terminal.
package poller

import (
	"context"
	"time"

	"yoho/internal/errcodes"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultInterval = 3 * time.Second

// Query fetches one snapshot of the remote state. A returned error aborts the
// poll, it is never retried.
type Query[T any] func(ctx context.Context) (T, error)

// Classifier must be pure: the same snapshot always yields the same verdict.
type Classifier[T, V any] func(snapshot T) Classification[V]

// Tick is handed to the progress callback once per completed query.
type Tick[T any] struct {
	Attempt  int
	Elapsed  time.Duration
	Snapshot T
	Verdict  Verdict
	Reason   string
	// Graced is set when a failure was downgraded to pending by FailureGrace.
	Graced bool
}

type Options struct {
	// Interval between ticks. The first query runs one interval after start.
	Interval time.Duration
	// Timeout bounds the whole poll, zero means no bound.
	Timeout time.Duration
	// MaxAttempts bounds the number of pending answers, zero means no bound.
	MaxAttempts int
	// Backoff multiplies the interval after every pending answer. Values <= 1
	// keep a fixed cadence.
	Backoff float64
	// MaxInterval caps the interval growth from Backoff.
	MaxInterval time.Duration
	// FailureGrace is how many consecutive failures are treated as pending
	// before the failure is final.
	FailureGrace int
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Timeout < 0 {
		o.Timeout = 0
	}
	if o.MaxAttempts < 0 {
		o.MaxAttempts = 0
	}
	if o.FailureGrace < 0 {
		o.FailureGrace = 0
	}

	return o
}

// NextInterval returns the interval to use after a pending answer.
func NextInterval(current time.Duration, o Options) time.Duration {
	if o.Backoff <= 1 {
		return current
	}

	next := time.Duration(float64(current) * o.Backoff)
	if o.MaxInterval > 0 && next > o.MaxInterval {
		next = o.MaxInterval
	}
	if next < current {
		return current
	}

	return next
}

type queryResult[T any] struct {
	snapshot T
	err      error
}

// Poll runs query on a ticker until classify reports a terminal verdict, the
// timeout or attempt cap is reached, or ctx is cancelled. Cancellation of ctx
// is reported as an error wrapping errcodes.ErrCancelled. At most one query is
// in flight at any time; ticks that fire while one is running are skipped.
func Poll[T, V any](
	ctx context.Context,
	query Query[T],
	classify Classifier[T, V],
	opts Options,
	onTick func(Tick[T]),
) (Outcome[V], error) {
	opts = opts.withDefaults()
	parent := ctx

	var cancel context.CancelFunc
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	defer cancel()

	start := time.Now()
	interval := opts.Interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	results := make(chan queryResult[T], 1)
	inFlight := false
	attempts := 0
	failures := 0

	stopped := func() (Outcome[V], error) {
		if err := parent.Err(); err != nil {
			return Outcome[V]{Attempts: attempts}, errors.Wrapf(
				errcodes.ErrCancelled,
				"poll stopped after %d attempts (%v)",
				attempts,
				err,
			)
		}

		return Outcome[V]{Kind: TimedOut, Attempts: attempts}, nil
	}

	for {
		select {
		case <-ctx.Done():
			return stopped()

		case <-ticker.C:
			if ctx.Err() != nil {
				return stopped()
			}
			if inFlight {
				log.Debug().Int("attempt", attempts).Msg("previous query still running, skipping tick")
				continue
			}

			inFlight = true
			attempts++
			go func() {
				snapshot, err := query(ctx)
				results <- queryResult[T]{snapshot: snapshot, err: err}
			}()

		case r := <-results:
			inFlight = false
			if ctx.Err() != nil {
				return stopped()
			}
			if r.err != nil {
				return Outcome[V]{Attempts: attempts}, r.err
			}

			c := classify(r.snapshot)
			graced := false
			if c.Verdict == Failure {
				failures++
				if failures <= opts.FailureGrace {
					graced = true
				}
			} else {
				failures = 0
			}

			verdict := c.Verdict
			if graced {
				verdict = Pending
			}

			log.Debug().
				Int("attempt", attempts).
				Str("verdict", verdict.String()).
				Bool("graced", graced).
				Msg("poll tick")

			if onTick != nil {
				onTick(Tick[T]{
					Attempt:  attempts,
					Elapsed:  time.Since(start),
					Snapshot: r.snapshot,
					Verdict:  verdict,
					Reason:   c.Reason,
					Graced:   graced,
				})
			}

			switch verdict {
			case Success:
				return Outcome[V]{Kind: Resolved, Value: c.Value, Attempts: attempts}, nil
			case Failure:
				return Outcome[V]{Kind: Failed, Reason: c.Reason, Attempts: attempts}, nil
			}

			if opts.MaxAttempts > 0 && attempts >= opts.MaxAttempts {
				return Outcome[V]{Kind: TimedOut, Attempts: attempts}, nil
			}

			if next := NextInterval(interval, opts); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}
