// Package audio plays the scene's ambient surf and music through beep.
package audio

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/pthm-cable/sunset/config"
)

// Track names one of the two looping sounds.
type Track int

const (
	Ambient Track = iota
	Music
)

func (t Track) String() string {
	switch t {
	case Ambient:
		return "ambient"
	case Music:
		return "music"
	default:
		return "unknown"
	}
}

// handle is a looping sound with its own volume stage.
type handle struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64 // Linear level in [0, 1] restored on unmute
}

// Player owns the ambient and music handles and the device they play on.
// A nil *Player is valid and does nothing, so callers need no checks when
// audio is disabled.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	buffer  time.Duration
	mixer   *beep.Mixer
	tracks  [2]*handle
	muted   bool
	started bool
	closers []io.Closer
}

// New builds both tracks from cfg without touching the audio device.
// Configured files are decoded and looped; missing files fall back to
// the procedural generators.
func New(cfg config.AudioConfig) (*Player, error) {
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		buffer: time.Duration(cfg.BufferMillis) * time.Millisecond,
		mixer:  &beep.Mixer{},
		muted:  cfg.Muted,
	}

	ambient, err := p.source(cfg.AmbientFile, func() beep.Streamer { return NewSurfGenerator(p.rate, 1) })
	if err != nil {
		return nil, fmt.Errorf("ambient track: %w", err)
	}
	music, err := p.source(cfg.MusicFile, func() beep.Streamer { return NewArpeggioGenerator(p.rate) })
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("music track: %w", err)
	}

	p.tracks[Ambient] = p.track(ambient, cfg.AmbientVolume)
	p.tracks[Music] = p.track(music, cfg.MusicVolume)
	return p, nil
}

// source opens a WAV file as an endless loop at the player's rate, or
// returns the fallback generator when path is empty.
func (p *Player) source(path string, fallback func() beep.Streamer) (beep.Streamer, error) {
	if path == "" {
		return fallback(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	p.closers = append(p.closers, s)

	looped := beep.Loop(-1, s)
	if format.SampleRate == p.rate {
		return looped, nil
	}
	return beep.Resample(4, format.SampleRate, p.rate, looped), nil
}

func (p *Player) track(s beep.Streamer, level float64) *handle {
	h := &handle{
		ctrl:  &beep.Ctrl{Streamer: s},
		level: clamp01(level),
	}
	h.volume = &effects.Volume{Streamer: h.ctrl, Base: 2}
	p.apply(h)
	p.mixer.Add(h.volume)
	return h
}

// apply maps the linear level onto beep's logarithmic volume.
func (p *Player) apply(h *handle) {
	h.volume.Silent = p.muted || h.level <= 0
	if h.level > 0 {
		h.volume.Volume = math.Log2(h.level)
	}
}

// Start opens the speaker and begins playback.
func (p *Player) Start() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(p.buffer)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	slog.Info("audio started", "sample_rate", int(p.rate), "muted", p.muted)
	return nil
}

// lock guards handle changes against the speaker goroutine once playing.
func (p *Player) lock() {
	p.mu.Lock()
	if p.started {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.started {
		speaker.Unlock()
	}
	p.mu.Unlock()
}

// SetVolume sets a track's linear level, clamped to [0, 1].
// While muted the level is stored and applied on unmute.
func (p *Player) SetVolume(t Track, level float64) {
	if p == nil || int(t) >= len(p.tracks) {
		return
	}
	p.lock()
	defer p.unlock()
	h := p.tracks[t]
	h.level = clamp01(level)
	p.apply(h)
}

// Volume returns a track's configured level.
func (p *Player) Volume(t Track) float64 {
	if p == nil || int(t) >= len(p.tracks) {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracks[t].level
}

// SetMuted silences or restores both tracks.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.lock()
	defer p.unlock()
	p.muted = muted
	for _, h := range p.tracks {
		p.apply(h)
	}
}

// ToggleMute flips the mute state and returns the new state.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	muted := !p.Muted()
	p.SetMuted(muted)
	return muted
}

// Muted reports whether output is silenced. A nil player is always muted.
func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Streamer exposes the mixed output, for offline rendering and tests.
// It must not be read while the speaker is playing it.
func (p *Player) Streamer() beep.Streamer {
	return p.mixer
}

// Close stops playback and releases decoded files.
// It returns the first error encountered.
func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	p.lock()
	for _, h := range p.tracks {
		if h != nil {
			h.ctrl.Paused = true
		}
	}
	p.mixer.Clear()
	p.unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Close()
		p.started = false
	}

	var firstErr error
	for _, c := range p.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.closers = nil
	return firstErr
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
