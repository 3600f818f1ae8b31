package room

import (
	"sync"
	"time"
)

// roundTimer is the cancellable handle for one round's countdown. Cancel is
// safe to call from every exit path (round end, last player leaving, a fresh
// startRound); only the first call tears the ticker down.
type roundTimer struct {
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

func newRoundTimer(interval time.Duration) *roundTimer {
	return &roundTimer{
		ticker: time.NewTicker(interval),
		stop:   make(chan struct{}),
	}
}

func (t *roundTimer) Cancel() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.stop)
	})
}

// cancelTimer stops the active countdown, if any. Caller holds r.Mu.
func (r *Room) cancelTimer() {
	if r.timer != nil {
		r.timer.Cancel()
		r.timer = nil
	}
}
