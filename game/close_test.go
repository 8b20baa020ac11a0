package game

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/sunset/audio"
	"github.com/pthm-cable/sunset/telemetry"
)

type failingCloser struct{ closed int }

func (c *failingCloser) Close() error {
	c.closed++
	return errors.New("device busy")
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestCloseLoggedReportsFailure(t *testing.T) {
	logs := captureLogs(t)
	c := &failingCloser{}

	closeLogged("audio", c)

	assert.Equal(t, 1, c.closed)
	assert.Contains(t, logs.String(), "failed to close audio")
	assert.Contains(t, logs.String(), "device busy")
}

func TestCloseLoggedQuietOnNilResources(t *testing.T) {
	logs := captureLogs(t)

	var p *audio.Player
	var om *telemetry.OutputManager
	closeLogged("audio", p)
	closeLogged("output", om)

	assert.Empty(t, logs.String())
}
