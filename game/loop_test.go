package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopStartStop(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	l := NewLoop(g, 0)
	assert.False(t, l.Running())

	require.True(t, l.Start(context.Background()))
	assert.False(t, l.Start(context.Background()), "second start is a no-op")
	assert.True(t, l.Running())

	assert.Eventually(t, func() bool { return l.Ticks() >= 20 }, 5*time.Second, time.Millisecond)

	l.Stop()
	assert.False(t, l.Running())
	stopped := l.Ticks()
	assert.Equal(t, stopped, g.Ticks())

	l.Stop()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, l.Ticks(), "no ticks after stop")
}

func TestLoopRestart(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	l := NewLoop(g, time.Millisecond)

	require.True(t, l.Start(context.Background()))
	assert.Eventually(t, func() bool { return l.Ticks() >= 3 }, 5*time.Second, time.Millisecond)
	l.Stop()

	first := l.Ticks()
	require.True(t, l.Start(context.Background()))
	assert.Eventually(t, func() bool { return l.Ticks() > first }, 5*time.Second, time.Millisecond)
	l.Stop()
	assert.Equal(t, l.Ticks(), g.Ticks())
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	l := NewLoop(g, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, l.Start(ctx))
	cancel()
	assert.Eventually(t, func() bool { return !l.Running() }, 5*time.Second, time.Millisecond)
	l.Stop()
}

func TestLoopStartsAgainAfterContextCancel(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	l := NewLoop(g, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, l.Start(ctx))
	cancel()
	require.Eventually(t, func() bool { return !l.Running() }, 5*time.Second, time.Millisecond)

	first := l.Ticks()
	require.True(t, l.Start(context.Background()), "a loop ended by its context can be started again")
	assert.True(t, l.Running())
	assert.Eventually(t, func() bool { return l.Ticks() > first }, 5*time.Second, time.Millisecond)

	l.Stop()
	assert.False(t, l.Running())
	assert.Equal(t, l.Ticks(), g.Ticks())
}

func TestLoopSendReachesGame(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	l := NewLoop(g, 0)
	require.True(t, l.Start(context.Background()))

	assert.True(t, l.Send(InputEvent{Kind: EventTogglePause}))
	assert.Eventually(t, func() bool {
		before := l.Ticks()
		time.Sleep(2 * time.Millisecond)
		return l.Ticks() > before
	}, 5*time.Second, time.Millisecond)
	l.Stop()

	assert.True(t, g.Paused())
	assert.Less(t, g.Ticks(), l.Ticks(), "paused ticks do not advance scene time")
}

func TestRunMaxTicks(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	require.NoError(t, Run(context.Background(), g, 50))
	assert.Equal(t, int64(50), g.Ticks())
}

func TestRunCancelled(t *testing.T) {
	g := newTestGame(t, testConfig(t), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Run(ctx, g, 0), context.Canceled)
	assert.Zero(t, g.Ticks())
}
