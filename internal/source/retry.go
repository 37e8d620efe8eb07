package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNotFound signals a 404 from the upstream API. It is not retried:
// for page-addressed APIs it usually means the requested page is past the
// end of pagination, and the caller decides what that implies.
var ErrNotFound = errors.New("endpoint not found (possible end of pagination)")

// terminalError marks a failure that must not be retried.
type terminalError struct {
	err error
}

func (e *terminalError) Error() string { return e.err.Error() }
func (e *terminalError) Unwrap() error { return e.err }

// Terminal wraps err so RetryPolicy.Do returns it immediately.
func Terminal(err error) error {
	return &terminalError{err: err}
}

// rateLimitError carries the upstream's Retry-After wait from a 429.
type rateLimitError struct {
	wait time.Duration
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.wait)
}

// RateLimited signals a 429. The wait is honored without consuming the
// attempt budget.
func RateLimited(wait time.Duration) error {
	return &rateLimitError{wait: wait}
}

// RetryPolicy drives the retry loop around one HTTP request. Transient
// failures are retried with backoff delay = BaseDelay x attempt. Rate-limit
// (429) waits do not count against MaxAttempts, but their cumulative
// duration is capped by MaxRetryAfter so a hostile upstream cannot stall a
// run forever.
type RetryPolicy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxRetryAfter time.Duration

	// Sleep is injectable for tests. Defaults to a context-aware wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

func (p RetryPolicy) Delay(attempt int) time.Duration {
	return p.BaseDelay * time.Duration(attempt)
}

func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return Wait(ctx, d)
}

// Do runs op until it succeeds, returns a terminal error, or the attempt
// budget is exhausted.
func (p RetryPolicy) Do(ctx context.Context, logger *slog.Logger, op func() error) error {
	var err error
	var rateLimitWaited time.Duration

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		var rle *rateLimitError
		if errors.As(err, &rle) {
			wait := rle.wait
			if wait > p.MaxRetryAfter {
				wait = p.MaxRetryAfter
			}
			rateLimitWaited += wait
			if rateLimitWaited > p.MaxRetryAfter {
				return fmt.Errorf("rate-limit wait budget exhausted: %w", err)
			}

			logger.Warn("rate limited, honoring retry-after",
				"wait", wait,
				"attempt", attempt,
			)
			if serr := p.sleep(ctx, wait); serr != nil {
				return serr
			}
			attempt--
			continue
		}

		var te *terminalError
		if errors.As(err, &te) {
			return te.err
		}

		if attempt == p.MaxAttempts {
			break
		}

		backoff := p.Delay(attempt)
		logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)
		if serr := p.sleep(ctx, backoff); serr != nil {
			return serr
		}
	}

	return fmt.Errorf("after %d attempts: %w", p.MaxAttempts, err)
}

// Wait blocks for d or until ctx is cancelled.
func Wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
