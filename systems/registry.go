package systems

// SystemInfo describes a per-tick system for the perf panel.
type SystemInfo struct {
	ID          string // Perf phase name
	Name        string // Display name
	Description string
	Category    string // "control", "animation" or "effects"
}

// SystemRegistry keeps system naming in one place so the HUD and the
// perf collector agree on phase names.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems in tick order.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "input", Name: "Input", Description: "Drain queued camera and audio events", Category: "control"})
	r.Register(SystemInfo{ID: "ocean", Name: "Ocean", Description: "Background ripple heights", Category: "animation"})
	r.Register(SystemInfo{ID: "waves", Name: "Waves", Description: "Shoreline run-up, depth tint and foam", Category: "animation"})
	r.Register(SystemInfo{ID: "sway", Name: "Sway", Description: "Flames, tulips, wine and palms", Category: "animation"})
	r.Register(SystemInfo{ID: "particles", Name: "Sparkler", Description: "Spark pool integrate and respawn", Category: "effects"})
	r.Register(SystemInfo{ID: "clouds", Name: "Clouds", Description: "Cloud drift and message fade-in", Category: "effects"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Frame stats and CSV output", Category: "control"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
