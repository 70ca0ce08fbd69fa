package schedule_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/schedule"
	"github.com/stretchr/testify/require"
)

func TestEvery(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	tk := schedule.Every(5*time.Millisecond, func() { n.Add(1) })

	require.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

	tk.Stop()
	<-tk.Done()

	// Nothing runs once Done has closed
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, after, n.Load())
}

func TestEveryStopFromCallback(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	var tk *schedule.Ticker
	ready := make(chan struct{})
	tk = schedule.Every(time.Millisecond, func() {
		<-ready
		if n.Add(1) == 2 {
			tk.Stop()
		}
	})
	close(ready)

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop itself")
	}
	require.Equal(t, int32(2), n.Load())
}

func TestAfter(t *testing.T) {
	t.Parallel()

	t.Run("fires once", func(t *testing.T) {
		t.Parallel()

		var n atomic.Int32
		tk := schedule.After(5*time.Millisecond, func() { n.Add(1) })
		<-tk.Done()
		require.Equal(t, int32(1), n.Load())
	})

	t.Run("stop before firing", func(t *testing.T) {
		t.Parallel()

		var n atomic.Int32
		tk := schedule.After(time.Hour, func() { n.Add(1) })
		tk.Stop()
		tk.Stop() // twice is fine
		<-tk.Done()
		require.Zero(t, n.Load())
	})
}

func TestStopNil(t *testing.T) {
	var tk *schedule.Ticker
	require.NotPanics(t, tk.Stop)
}

func TestSleep(t *testing.T) {
	t.Parallel()

	t.Run("elapses", func(t *testing.T) {
		require.NoError(t, schedule.Sleep(context.Background(), time.Millisecond))
	})

	t.Run("zero duration", func(t *testing.T) {
		require.NoError(t, schedule.Sleep(context.Background(), 0))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := schedule.Sleep(ctx, time.Hour)
		require.ErrorIs(t, err, context.Canceled)
		require.Less(t, time.Since(start), time.Second)
	})
}
