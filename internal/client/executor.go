package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/mayple/swydo/internal/constants"
	"github.com/mayple/swydo/pkg/swydo"
)

// quotaGate is the local call quota: a shared limiter sized to the
// ceiling the Swydo service enforces remotely. Callers past the quota are
// delayed, never rejected. Held per executor so that independent clients
// in one process budget independently.
type quotaGate struct {
	limiter *rate.Limiter
}

func newQuotaGate(callsPerSecond, burst int) *quotaGate {
	return &quotaGate{
		limiter: rate.NewLimiter(rate.Limit(callsPerSecond), burst),
	}
}

// admit blocks until the quota admits one call or the context ends.
func (g *quotaGate) admit(ctx context.Context) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for call quota: %w", err)
	}

	return nil
}

// backoffPolicy is the throttle retry schedule: delays double from base,
// and retrying stops once the cumulative retry time would exceed budget.
type backoffPolicy struct {
	base   time.Duration
	budget time.Duration
}

// next returns the delay before attempt (0-based first retry) and whether
// the budget still admits it given the time already spent.
func (p backoffPolicy) next(attempt int, spent time.Duration) (time.Duration, bool) {
	delay := p.base << attempt
	if spent+delay > p.budget {
		return 0, false
	}

	return delay, true
}

// executor wraps an invoker with the quota gate and the backoff retry
// loop. The two strategies compose explicitly: every attempt first passes
// the gate, and only throttling answers re-enter the loop.
type executor struct {
	inv    swydo.Invoker
	gate   *quotaGate
	policy backoffPolicy

	// disabled issues every call exactly once with no gate and no retry.
	disabled bool

	logger swydo.Logger
}

func newExecutor(inv swydo.Invoker, config *swydo.Config) *executor {
	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = constants.DefaultRateLimit
	}

	burst := config.RateBurst
	if burst <= 0 {
		burst = rateLimit
	}

	base := config.RetryWaitBase
	if base <= 0 {
		base = constants.DefaultRetryWaitBase
	}

	budget := config.RetryBudget
	if budget <= 0 {
		budget = constants.DefaultRetryBudget
	}

	return &executor{
		inv:      inv,
		gate:     newQuotaGate(rateLimit, burst),
		policy:   backoffPolicy{base: base, budget: budget},
		disabled: config.DisableRetry,
		logger:   config.Logger,
	}
}

// Invoke implements swydo.Invoker. Throttling answers (HTTP 429) are
// retried with doubling delays until the retry budget is spent, then the
// last error is surfaced. Every other error propagates immediately.
//
// Retried calls can repeat server-side side effects of non-idempotent
// operations; see the package documentation of pkg/swydo.
func (e *executor) Invoke(ctx context.Context, operationID string, params swydo.Params) (json.RawMessage, error) {
	if e.disabled {
		return e.inv.Invoke(ctx, operationID, params)
	}

	start := time.Now()

	for attempt := 0; ; attempt++ {
		if err := e.gate.admit(ctx); err != nil {
			return nil, err
		}

		raw, err := e.inv.Invoke(ctx, operationID, params)
		if err == nil || !swydo.IsThrottled(err) {
			return raw, err
		}

		delay, ok := e.policy.next(attempt, time.Since(start))
		if !ok {
			return nil, fmt.Errorf("%w after %s: %w", swydo.ErrRetryBudgetSpent, time.Since(start).Round(time.Millisecond), err)
		}

		if e.logger != nil {
			e.logger.Warn("throttled, backing off", map[string]interface{}{
				"operation": operationID,
				"attempt":   attempt + 1,
				"delay":     delay.String(),
			})
		}

		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// sleep waits for d unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting out backoff: %w", ctx.Err())
	}
}
