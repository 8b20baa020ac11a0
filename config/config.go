// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Ocean     OceanConfig     `yaml:"ocean"`
	Wave      WaveConfig      `yaml:"wave"`
	Sparkler  SparklerConfig  `yaml:"sparkler"`
	Sway      SwayConfig      `yaml:"sway"`
	Clouds    CloudsConfig    `yaml:"clouds"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// SimConfig holds frame loop settings.
type SimConfig struct {
	Step             float64 `yaml:"step"`                // Scene time added per tick
	Realtime         bool    `yaml:"realtime"`            // Advance by wall time instead of one step per frame
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // Realtime catch-up cap
	Workers          int     `yaml:"workers"`             // Ocean row workers (0 = single-threaded)
}

// CameraConfig holds orbit camera limits and sensitivities.
type CameraConfig struct {
	Focus            Vec3    `yaml:"focus"`
	Radius           float64 `yaml:"radius"`
	MinRadius        float64 `yaml:"min_radius"`
	MaxRadius        float64 `yaml:"max_radius"`
	WheelMaxRadius   float64 `yaml:"wheel_max_radius"` // Wheel zoom stops here, pinch may go to max_radius
	MaxHorizontalDeg float64 `yaml:"max_horizontal_deg"`
	MaxVerticalDeg   float64 `yaml:"max_vertical_deg"`
	BaseHeight       float64 `yaml:"base_height"`
	HeightAmplitude  float64 `yaml:"height_amplitude"`
	DragSensitivity  float64 `yaml:"drag_sensitivity"`  // Radians per pixel
	WheelSensitivity float64 `yaml:"wheel_sensitivity"` // Radius units per wheel unit
	PinchSensitivity float64 `yaml:"pinch_sensitivity"` // Radius units per pixel of pinch distance
	FovY             float64 `yaml:"fov_y"`
}

// SceneConfig holds sky and fog settings.
type SceneConfig struct {
	SkyColor Color   `yaml:"sky_color"`
	FogColor Color   `yaml:"fog_color"`
	FogNear  float64 `yaml:"fog_near"`
	FogFar   float64 `yaml:"fog_far"`
}

// OceanConfig holds background ocean ripple parameters.
// Height is the sum of three terms: sin along x, cos along y, sin along x+y.
type OceanConfig struct {
	Width    float64 `yaml:"width"`
	Depth    float64 `yaml:"depth"`
	Segments int     `yaml:"segments"`
	Position Vec3    `yaml:"position"`
	Color    Color   `yaml:"color"`

	XFreq     float64 `yaml:"x_freq"`
	XSpeed    float64 `yaml:"x_speed"`
	XAmp      float64 `yaml:"x_amp"`
	YFreq     float64 `yaml:"y_freq"`
	YSpeed    float64 `yaml:"y_speed"`
	YAmp      float64 `yaml:"y_amp"`
	DiagFreq  float64 `yaml:"diag_freq"`
	DiagSpeed float64 `yaml:"diag_speed"`
	DiagAmp   float64 `yaml:"diag_amp"`
}

// WaveConfig holds shoreline run-up parameters.
type WaveConfig struct {
	Width    float64 `yaml:"width"`
	Depth    float64 `yaml:"depth"`
	Segments int     `yaml:"segments"`
	Position Vec3    `yaml:"position"`
	Opacity  float64 `yaml:"opacity"`

	RetreatZ      float64 `yaml:"retreat_z"`      // Shoreline at cycle 0
	RunUpZ        float64 `yaml:"run_up_z"`       // Shoreline at cycle 1
	CycleSpeed    float64 `yaml:"cycle_speed"`    // Angular speed of the run-up cycle
	CycleExponent float64 `yaml:"cycle_exponent"` // Shapes time spent near the run-up bound
	CurveFreq     float64 `yaml:"curve_freq"`     // Parabolic front: cos(x*freq)*depth - depth
	CurveDepth    float64 `yaml:"curve_depth"`

	HeightScale float64 `yaml:"height_scale"` // sqrt(distance) * this
	MaxHeight   float64 `yaml:"max_height"`   // 0 = uncapped
	RippleFreq  float64 `yaml:"ripple_freq"`
	RippleSpeed float64 `yaml:"ripple_speed"`
	RippleAmp   float64 `yaml:"ripple_amp"`

	DepthRange   float64 `yaml:"depth_range"`   // Distance at which color is fully deep
	FoamDistance float64 `yaml:"foam_distance"` // Foam band width behind the front
	FoamLift     float64 `yaml:"foam_lift"`
	ShallowColor Color   `yaml:"shallow_color"`
	DeepColor    Color   `yaml:"deep_color"`
	FoamColor    Color   `yaml:"foam_color"`
}

// SparklerConfig holds sparkler particle pool parameters.
type SparklerConfig struct {
	Capacity    int     `yaml:"capacity"`
	Position    Vec3    `yaml:"position"` // Stick base in cake space
	TipHeight   float64 `yaml:"tip_height"`
	Gravity     float64 `yaml:"gravity"`
	Decay       float64 `yaml:"decay"`
	LifeMin     float64 `yaml:"life_min"`
	LifeJitter  float64 `yaml:"life_jitter"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	LiftMin     float64 `yaml:"lift_min"`
	LiftJitter  float64 `yaml:"lift_jitter"`
	SizeScale   float64 `yaml:"size_scale"`
}

// SwayConfig holds per-class oscillator constants.
type SwayConfig struct {
	Flame FlameSwayConfig `yaml:"flame"`
	Tulip TulipSwayConfig `yaml:"tulip"`
	Wine  WineSwayConfig  `yaml:"wine"`
	Palm  PalmSwayConfig  `yaml:"palm"`
	Frond FrondSwayConfig `yaml:"frond"`
}

// FlameSwayConfig drives candle flame flicker.
type FlameSwayConfig struct {
	ScaleBase   float64 `yaml:"scale_base"`
	ScaleAmp    float64 `yaml:"scale_amp"`
	ScaleSpeed  float64 `yaml:"scale_speed"`
	ScaleJitter float64 `yaml:"scale_jitter"`
	DriftAmp    float64 `yaml:"drift_amp"`
	DriftSpeedX float64 `yaml:"drift_speed_x"`
	DriftSpeedZ float64 `yaml:"drift_speed_z"`
}

// TulipSwayConfig drives tulip wind sway.
type TulipSwayConfig struct {
	SpeedX float64 `yaml:"speed_x"`
	AmpX   float64 `yaml:"amp_x"`
	SpeedZ float64 `yaml:"speed_z"`
	AmpZ   float64 `yaml:"amp_z"`
}

// WineSwayConfig drives wine surface wobble.
type WineSwayConfig struct {
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
	Amp    float64 `yaml:"amp"`
}

// PalmSwayConfig drives whole-tree sway.
type PalmSwayConfig struct {
	Speed float64 `yaml:"speed"`
	Amp   float64 `yaml:"amp"`
}

// FrondSwayConfig drives frond droop.
type FrondSwayConfig struct {
	Base   float64 `yaml:"base"`
	Speed  float64 `yaml:"speed"`
	Spread float64 `yaml:"spread"` // Phase step between fronds
	Amp    float64 `yaml:"amp"`
}

// CloudsConfig holds cloud and message settings.
type CloudsConfig struct {
	DriftPerTick float64 `yaml:"drift_per_tick"`
	FadePerTick  float64 `yaml:"fade_per_tick"`
	Message      string  `yaml:"message"`
	Tint         Color   `yaml:"tint"`
	MessageTint  Color   `yaml:"message_tint"`
	TextureSize  int     `yaml:"texture_size"`
	NoiseSeed    int64   `yaml:"noise_seed"`
	NoiseScale   float64 `yaml:"noise_scale"`
	NoiseOctaves int     `yaml:"noise_octaves"`
	BaseOpacity  float64 `yaml:"base_opacity"`
}

// AudioConfig holds ambient and music playback settings.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	BufferMillis  int     `yaml:"buffer_ms"`
	AmbientVolume float64 `yaml:"ambient_volume"`
	MusicVolume   float64 `yaml:"music_volume"`
	AmbientFile   string  `yaml:"ambient_file"` // WAV; empty = procedural surf
	MusicFile     string  `yaml:"music_file"`   // WAV; empty = procedural arpeggio
	Muted         bool    `yaml:"muted"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of scene time per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxHorizontal float64 // Camera.MaxHorizontalDeg in radians
	MaxVertical   float64 // Camera.MaxVerticalDeg in radians
	FogRange      float64 // FogFar - FogNear
	TicksPerStats int     // Telemetry.StatsWindow / Sim.Step
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the animators cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim.Step <= 0 || math.IsNaN(c.Sim.Step) {
		errs = append(errs, fmt.Errorf("sim.step must be positive, got %v", c.Sim.Step))
	}
	if c.Camera.MinRadius <= 0 || c.Camera.MinRadius > c.Camera.MaxRadius {
		errs = append(errs, fmt.Errorf("camera radius range [%v, %v] is invalid", c.Camera.MinRadius, c.Camera.MaxRadius))
	}
	if c.Camera.WheelMaxRadius < c.Camera.MinRadius || c.Camera.WheelMaxRadius > c.Camera.MaxRadius {
		errs = append(errs, fmt.Errorf("camera.wheel_max_radius %v outside [%v, %v]", c.Camera.WheelMaxRadius, c.Camera.MinRadius, c.Camera.MaxRadius))
	}
	if c.Camera.MaxHorizontalDeg < 0 || c.Camera.MaxVerticalDeg < 0 {
		errs = append(errs, errors.New("camera angle limits must not be negative"))
	}
	if c.Wave.RetreatZ >= c.Wave.RunUpZ {
		errs = append(errs, fmt.Errorf("wave.retreat_z %v must be below wave.run_up_z %v", c.Wave.RetreatZ, c.Wave.RunUpZ))
	}
	if c.Ocean.Segments < 1 || c.Wave.Segments < 1 {
		errs = append(errs, errors.New("ocean and wave segments must be at least 1"))
	}
	if c.Sparkler.Capacity < 1 {
		errs = append(errs, errors.New("sparkler.capacity must be at least 1"))
	}
	if c.Sparkler.Decay <= 0 {
		errs = append(errs, errors.New("sparkler.decay must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MaxHorizontal = c.Camera.MaxHorizontalDeg * math.Pi / 180
	c.Derived.MaxVertical = c.Camera.MaxVerticalDeg * math.Pi / 180
	c.Derived.FogRange = c.Scene.FogFar - c.Scene.FogNear

	c.Derived.TicksPerStats = int(c.Telemetry.StatsWindow / c.Sim.Step)
	if c.Derived.TicksPerStats < 1 {
		c.Derived.TicksPerStats = 1
	}

	if c.Sim.MaxStepsPerFrame < 1 {
		c.Sim.MaxStepsPerFrame = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
