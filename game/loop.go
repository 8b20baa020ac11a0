package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives a Game at a fixed interval on its own goroutine.
// While running, the loop owns the game: other goroutines may only call
// Send, Ticks and Running.
type Loop struct {
	game     *Game
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	ticks  atomic.Int64
}

// NewLoop creates a stopped loop. interval <= 0 ticks as fast as possible.
func NewLoop(g *Game, interval time.Duration) *Loop {
	return &Loop{game: g, interval: interval}
}

// Start launches the tick goroutine. It returns false if already running.
// The loop stops when ctx is cancelled or Stop is called, and may be
// started again after either.
func (l *Loop) Start(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		select {
		case <-l.done:
			// exited on its own when the parent context ended
			l.cancel()
			l.cancel, l.done = nil, nil
		default:
			return false
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	go func() {
		defer close(done)
		l.run(ctx)
	}()
	return true
}

func (l *Loop) run(ctx context.Context) {
	if l.interval <= 0 {
		for ctx.Err() == nil {
			l.tick()
		}
		return
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Loop) tick() {
	l.game.Tick()
	l.ticks.Add(1)
}

// Stop cancels the loop and waits for the current tick to finish.
// Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the tick goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Ticks returns the number of ticks this loop has run.
func (l *Loop) Ticks() int64 {
	return l.ticks.Load()
}

// Send queues an input event for the next tick.
func (l *Loop) Send(ev InputEvent) bool {
	return l.game.Input(ev)
}

// Run ticks g on the calling goroutine until ctx is done or maxTicks steps
// have run (0 = unlimited). It returns the context error, if any.
func Run(ctx context.Context, g *Game, maxTicks int64) error {
	for maxTicks <= 0 || g.Ticks() < maxTicks {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Tick()
	}
	return nil
}
