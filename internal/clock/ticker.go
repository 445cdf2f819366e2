// Package clock drives the once-a-second header refresh.
package clock

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("clock: interval must be positive")

// Tick carries the wall-clock time the tick fired at.
type Tick struct {
	At time.Time
}

// Ticker emits a Tick every interval on a buffered channel. A slow consumer
// loses ticks instead of blocking the loop; Dropped counts them.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	out      chan Tick
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	dropped  uint64
}

func NewTicker(interval time.Duration, bufferSize int) (*Ticker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Ticker{
		interval: interval,
		now:      time.Now,
		out:      make(chan Tick, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (t *Ticker) C() <-chan Tick {
	return t.out
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped {
		return
	}
	t.started = true
	go t.loop()
}

// Stop ends the loop and closes C. It is safe to call more than once.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.stopCh)
	started := t.started
	t.mu.Unlock()
	if started {
		<-t.doneCh
		return
	}
	close(t.out)
}

func (t *Ticker) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

func (t *Ticker) loop() {
	defer close(t.doneCh)
	defer close(t.out)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.emit(Tick{At: t.now()})
		case <-t.stopCh:
			return
		}
	}
}

func (t *Ticker) emit(tick Tick) {
	select {
	case t.out <- tick:
	default:
		atomic.AddUint64(&t.dropped, 1)
	}
}
