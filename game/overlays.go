package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sunset/audio"
	"github.com/pthm-cable/sunset/telemetry"
	"github.com/pthm-cable/sunset/ui"
)

// handleOverlayKeys toggles panels from the keyboard.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}
}

// overUI reports whether pos is inside a visible interactive panel.
func (g *Game) overUI(pos rl.Vector2) bool {
	if g.overlays.IsEnabled(ui.OverlayAudio) && rl.CheckCollisionPointRec(pos, g.audioUI.Bounds()) {
		return true
	}
	return false
}

// drawActiveOverlays draws every enabled panel in screen space.
func (g *Game) drawActiveOverlays() {
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayHUD:
			g.hud.Draw(g.hudData())
		case ui.OverlayControls:
			w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
			g.hud.DrawControls(w, h, ui.ControlsLegend+"   "+g.overlays.Legend())
		case ui.OverlayAudio:
			g.drawAudioPanel()
		case ui.OverlayPerf:
			stats := g.perf.Stats()
			g.perfPanel.Draw(ui.PerfPanelData{
				PhaseTimes: stats.PhaseAvg,
				Total:      stats.AvgTickDuration,
				FPS:        stats.FPS,
				Registry:   g.registry,
			}, telemetry.Phases)
		case ui.OverlayInspector:
			g.inspector.Draw(g.sceneInfo())
		}
	}
}

func (g *Game) hudData() ui.HUDData {
	return ui.HUDData{
		Title:      g.cfg.Screen.Title,
		Tick:       g.clock.Ticks(),
		SceneTime:  g.uptime(),
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		CameraMode: g.camera.Mode().String(),
		Radius:     g.camera.Radius,
		Muted:      g.audio.Muted(),
	}
}

// drawAudioPanel queues slider and button changes as input events.
func (g *Game) drawAudioPanel() {
	act := g.audioUI.Draw(ui.AudioState{
		Muted:   g.audio.Muted(),
		Ambient: g.audio.Volume(audio.Ambient),
		Music:   g.audio.Volume(audio.Music),
	})
	if act.ToggleMute {
		g.Input(InputEvent{Kind: EventToggleMute})
	}
	if act.AmbientChanged {
		g.Input(InputEvent{Kind: EventSetVolume, Track: audio.Ambient, Value: act.Ambient})
	}
	if act.MusicChanged {
		g.Input(InputEvent{Kind: EventSetVolume, Track: audio.Music, Value: act.Music})
	}
}

func (g *Game) sceneInfo() ui.SceneInfo {
	s := g.scene
	kinds := make(map[string]int)
	for k, n := range s.Graph.CountKinds() {
		kinds[k.String()] = n
	}
	counts := s.Registry.Counts()
	sample := g.sampleFrame()
	return ui.SceneInfo{
		Nodes:      s.Graph.Len(),
		Kinds:      kinds,
		Flames:     counts.Flames,
		Tulips:     counts.Tulips,
		Wines:      counts.Wines,
		Palms:      counts.Palms,
		Fronds:     counts.Fronds,
		Sparks:     sample.AliveSpark,
		SparkCap:   s.Sparkler.Count(),
		Respawns:   sample.Respawns,
		WavePeak:   sample.WavePeak,
		FrontZ:     sample.FrontZ,
		Message:    sample.Message,
		CloudAngle: s.Graph.Node(s.Clouds).Local.Rotation.Y,
	}
}
