// Copyright (c) 2026 taigamcp Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package client

// In this file: retry loop with backoff for transient transport failures.

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defNumAttempts = 3

var (
	// maxAllowedWaitTime caps the backoff delay for a transient error.
	maxAllowedWaitTime = 5 * time.Minute
	// waitFn returns the delay before the next attempt.  A variable so that
	// tests can shrink it.
	waitFn    = cubicWait
	netWaitFn = expWait
)

// ErrRetryFailed is returned when the callback could not complete within the
// allowed number of attempts.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// withRetry runs fn up to maxAttempts times, waiting on the limiter before
// each try.  It retries 429 (honouring Retry-After when present),
// recoverable server statuses and transient network read/write errors;
// everything else is returned to the caller on the first occurrence.
func withRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, lg *slog.Logger, fn func() error) error {
	if maxAttempts == 0 {
		maxAttempts = defNumAttempts
	}
	var ok bool
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := lim.Wait(ctx); err != nil {
			return err
		}

		cbErr := fn()
		if cbErr == nil {
			ok = true
			break
		}

		var (
			se *StatusError
			ne *net.OpError
		)
		switch {
		case errors.As(cbErr, &se) && se.Code == http.StatusTooManyRequests:
			delay := se.RetryAfter
			if delay <= 0 {
				delay = waitFn(attempt)
			}
			lg.DebugContext(ctx, "rate limited, backing off", "delay", delay, "attempt", attempt+1)
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			continue
		case errors.As(cbErr, &se) && isRecoverable(se.Code):
			delay := waitFn(attempt)
			lg.DebugContext(ctx, "server error, backing off", "code", se.Code, "delay", delay, "attempt", attempt+1)
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			continue
		case errors.As(cbErr, &ne) && (ne.Op == "read" || ne.Op == "write"):
			delay := netWaitFn(attempt)
			lg.DebugContext(ctx, "network error, backing off", "op", ne.Op, "delay", delay, "attempt", attempt+1)
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			continue
		}
		return cbErr
	}
	if !ok {
		return ErrRetryFailed
	}
	return nil
}

// isRecoverable reports whether the status code may be transient.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != http.StatusNotImplemented) ||
		statusCode == http.StatusRequestTimeout
}

// cubicWait computes the delay as (attempt+2)^3 seconds, capped at
// maxAllowedWaitTime, so the first retry sleeps at least 8 seconds.
func cubicWait(attempt int) time.Duration {
	x := attempt + 2
	delay := time.Duration(x*x*x) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

// expWait computes the delay as 2^attempt seconds, capped at
// maxAllowedWaitTime.
func expWait(attempt int) time.Duration {
	delay := time.Duration(1<<uint(attempt)) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

// sleepCtx sleeps for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
