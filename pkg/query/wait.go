package query

import (
	"context"
	"time"
)

// WaitFor re-runs check on the configured fixed interval until it returns
// nil, the deadline set at call start elapses, or ctx is done. Each attempt
// is a complete synchronous evaluation; no state carries over between polls.
// On deadline expiry the returned TimeoutError wraps the error the final
// attempt produced, so the asynchronous forms reject with exactly what their
// synchronous equivalents would have raised at that moment. Configuration
// errors are never retried and surface immediately.
func WaitFor(ctx context.Context, cfg *Config, check func() error) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	deadline := time.Now().Add(cfg.Timeout)
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		err := check()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if !time.Now().Before(deadline) {
			return &TimeoutError{Timeout: cfg.Timeout, Err: err}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
