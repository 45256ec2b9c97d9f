package timing

import (
	"context"
	"time"
)

// Sleep returns a channel that is closed once d has elapsed.
func Sleep(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	time.AfterFunc(d, func() {
		close(done)
	})
	return done
}

// SleepMillis is Sleep with the duration given in milliseconds.
func SleepMillis(ms int) <-chan struct{} {
	return Sleep(time.Duration(ms) * time.Millisecond)
}

// SleepContext blocks until d has elapsed or ctx is done, whichever comes
// first. It returns ctx.Err() when the wait was cut short.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
