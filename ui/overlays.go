package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies a toggleable panel.
type OverlayID string

// Panel IDs.
const (
	OverlayHUD       OverlayID = "hud"
	OverlayControls  OverlayID = "controls"
	OverlayAudio     OverlayID = "audio"
	OverlayPerf      OverlayID = "perf"
	OverlayInspector OverlayID = "inspector"
)

// OverlayDescriptor defines a panel that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // Keyboard key to toggle (0 = no key)
	KeyLabel    string // Key label for display (e.g., "H")
	Category    string // "info" or "debug"
	Default     bool   // Enabled at startup
	Exclusive   []OverlayID
}

// OverlayRegistry manages panel visibility and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
	order       []OverlayID // Insertion order for display
}

// NewOverlayRegistry creates a registry with the default panels.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayHUD,
		Name:        "HUD",
		Description: "Tick, FPS and camera state",
		Key:         rl.KeyH,
		KeyLabel:    "H",
		Category:    "info",
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayControls,
		Name:        "Controls",
		Description: "Key and gesture legend",
		Key:         rl.KeyF1,
		KeyLabel:    "F1",
		Category:    "info",
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayAudio,
		Name:        "Audio",
		Description: "Mute toggle and track volumes",
		Key:         rl.KeyV,
		KeyLabel:    "V",
		Category:    "info",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Performance",
		Description: "Per-phase tick timing",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "debug",
		Exclusive:   []OverlayID{OverlayAudio},
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayInspector,
		Name:        "Scene",
		Description: "Node and animation counts",
		Key:         rl.KeyI,
		KeyLabel:    "I",
		Category:    "debug",
	})
}

// Register adds a panel to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.order = append(r.order, desc.ID)
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches a panel on or off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets a panel's state.
// Enabling a panel disables the panels it excludes, in both directions.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if !enabled {
		return
	}
	for _, excl := range desc.Exclusive {
		r.enabled[excl] = false
	}
	for _, other := range r.descriptors {
		for _, excl := range other.Exclusive {
			if excl == id {
				r.enabled[other.ID] = false
			}
		}
	}
}

// IsEnabled returns whether a panel is shown.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns a descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all panels in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress toggles the panel bound to key.
// Returns the panel ID, its new state, and whether a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// EnabledOverlays returns the enabled panel IDs in registration order.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var result []OverlayID
	for _, id := range r.order {
		if r.enabled[id] {
			result = append(result, id)
		}
	}
	return result
}

// Legend returns a one-line key summary for the controls bar.
func (r *OverlayRegistry) Legend() string {
	s := ""
	for i, desc := range r.descriptors {
		if desc.KeyLabel == "" {
			continue
		}
		if i > 0 {
			s += "  "
		}
		s += "[" + desc.KeyLabel + "] " + desc.Name
	}
	return s
}
