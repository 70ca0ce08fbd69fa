// Package schedule runs callbacks on a timer with an explicit lifecycle.
//
// Every periodic or delayed callback in the service goes through a Ticker
// so it can be cancelled when the thing that owns it goes away (a session
// logs out, an upload is cancelled, the app shuts down).
package schedule

import (
	"context"
	"sync"
	"time"
)

// Ticker is a running schedule. The zero value is not usable, build one
// with Every or After.
type Ticker struct {
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func newTicker() *Ticker {
	return &Ticker{
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Every calls fn once per interval until Stop is called. Calls never
// overlap: a slow fn delays the next tick rather than stacking them.
func Every(interval time.Duration, fn func()) *Ticker {
	t := newTicker()
	go func() {
		defer close(t.doneCh)

		tk := time.NewTicker(interval)
		defer tk.Stop()

		for {
			select {
			case <-tk.C:
				// Stop may have raced the tick, it wins.
				select {
				case <-t.stopCh:
					return
				default:
				}
				fn()
			case <-t.stopCh:
				return
			}
		}
	}()
	return t
}

// After calls fn once after d unless Stop is called first.
func After(d time.Duration, fn func()) *Ticker {
	t := newTicker()
	go func() {
		defer close(t.doneCh)

		tm := time.NewTimer(d)
		defer tm.Stop()

		select {
		case <-tm.C:
			fn()
		case <-t.stopCh:
		}
	}()
	return t
}

// Stop cancels the schedule. It is safe to call more than once and from
// inside the callback itself. Stop does not wait for an in-flight callback,
// use Done for that.
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() { close(t.stopCh) })
}

// Done is closed once the schedule goroutine has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.doneCh
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	tm := time.NewTimer(d)
	defer tm.Stop()

	select {
	case <-tm.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
