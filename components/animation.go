package components

// NodeRef points an animated record at the transform it drives.
// The transform is owned by the scene graph; the record only writes to it.
type NodeRef struct {
	Node      int
	Transform *Transform
}

// Rest is the transform captured when the record was created.
// Animators offset from it and never modify it.
type Rest struct {
	Transform
}

// Phase desynchronises otherwise identical oscillators.
type Phase struct {
	Offset float64
}

// Capability components select which animator drives a record.
// A record carries exactly one of them.

// Flicker marks a candle flame. Jitter scales the random height noise.
type Flicker struct {
	Jitter float64
}

// WindSway marks a tulip head swaying in the breeze.
type WindSway struct {
	Strength float64
}

// LiquidWobble marks a wine surface. Index is the glass number.
type LiquidWobble struct {
	Index int
}

// PalmSway marks a whole palm tree. Index offsets its phase.
type PalmSway struct {
	Index int
}

// FrondSway marks a frond group. Index is its position around the crown.
type FrondSway struct {
	Index int
}

// Drift marks a group that turns slowly about Y every tick.
type Drift struct {
	Rate float64 // radians per tick
}

// FadeIn raises a material's opacity every tick until it reaches Target.
type FadeIn struct {
	Material *Material
	Rate     float64
	Target   float64
}
