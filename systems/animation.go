package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sunset/components"
)

// AnimationRegistry owns the animated entity records for one scene.
// The builder registers records once; the animator queries them every tick.
// Each animation class has its own component set so filters never overlap.
type AnimationRegistry struct {
	world *ecs.World

	flames *ecs.Map4[components.NodeRef, components.Rest, components.Phase, components.Flicker]
	tulips *ecs.Map4[components.NodeRef, components.Rest, components.Phase, components.WindSway]
	wines  *ecs.Map4[components.NodeRef, components.Rest, components.Phase, components.LiquidWobble]
	palms  *ecs.Map3[components.NodeRef, components.Rest, components.PalmSway]
	fronds *ecs.Map3[components.NodeRef, components.Rest, components.FrondSway]
	drifts *ecs.Map2[components.NodeRef, components.Drift]
	fades  *ecs.Map1[components.FadeIn]

	flameFilter *ecs.Filter4[components.NodeRef, components.Rest, components.Phase, components.Flicker]
	tulipFilter *ecs.Filter4[components.NodeRef, components.Rest, components.Phase, components.WindSway]
	wineFilter  *ecs.Filter4[components.NodeRef, components.Rest, components.Phase, components.LiquidWobble]
	palmFilter  *ecs.Filter3[components.NodeRef, components.Rest, components.PalmSway]
	frondFilter *ecs.Filter3[components.NodeRef, components.Rest, components.FrondSway]
	driftFilter *ecs.Filter2[components.NodeRef, components.Drift]
	fadeFilter  *ecs.Filter1[components.FadeIn]

	counts RegistryCounts
}

// RegistryCounts reports how many records of each class exist.
type RegistryCounts struct {
	Flames int
	Tulips int
	Wines  int
	Palms  int
	Fronds int
	Drifts int
	Fades  int
}

// Total returns the number of records.
func (c RegistryCounts) Total() int {
	return c.Flames + c.Tulips + c.Wines + c.Palms + c.Fronds + c.Drifts + c.Fades
}

// NewAnimationRegistry creates an empty registry.
func NewAnimationRegistry() *AnimationRegistry {
	r := &AnimationRegistry{world: ecs.NewWorld()}
	w := r.world

	r.flames = ecs.NewMap4[components.NodeRef, components.Rest, components.Phase, components.Flicker](w)
	r.tulips = ecs.NewMap4[components.NodeRef, components.Rest, components.Phase, components.WindSway](w)
	r.wines = ecs.NewMap4[components.NodeRef, components.Rest, components.Phase, components.LiquidWobble](w)
	r.palms = ecs.NewMap3[components.NodeRef, components.Rest, components.PalmSway](w)
	r.fronds = ecs.NewMap3[components.NodeRef, components.Rest, components.FrondSway](w)
	r.drifts = ecs.NewMap2[components.NodeRef, components.Drift](w)
	r.fades = ecs.NewMap1[components.FadeIn](w)

	r.flameFilter = ecs.NewFilter4[components.NodeRef, components.Rest, components.Phase, components.Flicker](w)
	r.tulipFilter = ecs.NewFilter4[components.NodeRef, components.Rest, components.Phase, components.WindSway](w)
	r.wineFilter = ecs.NewFilter4[components.NodeRef, components.Rest, components.Phase, components.LiquidWobble](w)
	r.palmFilter = ecs.NewFilter3[components.NodeRef, components.Rest, components.PalmSway](w)
	r.frondFilter = ecs.NewFilter3[components.NodeRef, components.Rest, components.FrondSway](w)
	r.driftFilter = ecs.NewFilter2[components.NodeRef, components.Drift](w)
	r.fadeFilter = ecs.NewFilter1[components.FadeIn](w)

	return r
}

func snapshot(node int, t *components.Transform) (components.NodeRef, components.Rest) {
	return components.NodeRef{Node: node, Transform: t}, components.Rest{Transform: *t}
}

// AddFlame registers a candle flame.
func (r *AnimationRegistry) AddFlame(node int, t *components.Transform, phase, jitter float64) ecs.Entity {
	ref, rest := snapshot(node, t)
	ph := components.Phase{Offset: phase}
	tag := components.Flicker{Jitter: jitter}
	r.counts.Flames++
	return r.flames.NewEntity(&ref, &rest, &ph, &tag)
}

// AddTulip registers a swaying tulip.
func (r *AnimationRegistry) AddTulip(node int, t *components.Transform, phase, strength float64) ecs.Entity {
	ref, rest := snapshot(node, t)
	ph := components.Phase{Offset: phase}
	tag := components.WindSway{Strength: strength}
	r.counts.Tulips++
	return r.tulips.NewEntity(&ref, &rest, &ph, &tag)
}

// AddWine registers a wine surface. Its phase is derived from the glass index.
func (r *AnimationRegistry) AddWine(node int, t *components.Transform, index int) ecs.Entity {
	ref, rest := snapshot(node, t)
	ph := components.Phase{Offset: float64(index) * 2}
	tag := components.LiquidWobble{Index: index}
	r.counts.Wines++
	return r.wines.NewEntity(&ref, &rest, &ph, &tag)
}

// AddPalm registers a whole palm tree.
func (r *AnimationRegistry) AddPalm(node int, t *components.Transform, index int) ecs.Entity {
	ref, rest := snapshot(node, t)
	tag := components.PalmSway{Index: index}
	r.counts.Palms++
	return r.palms.NewEntity(&ref, &rest, &tag)
}

// AddFrond registers a frond group at child position index within its palm.
func (r *AnimationRegistry) AddFrond(node int, t *components.Transform, index int) ecs.Entity {
	ref, rest := snapshot(node, t)
	tag := components.FrondSway{Index: index}
	r.counts.Fronds++
	return r.fronds.NewEntity(&ref, &rest, &tag)
}

// AddDrift registers a group that turns about Y by rate radians per tick.
func (r *AnimationRegistry) AddDrift(node int, t *components.Transform, rate float64) ecs.Entity {
	ref, _ := snapshot(node, t)
	tag := components.Drift{Rate: rate}
	r.counts.Drifts++
	return r.drifts.NewEntity(&ref, &tag)
}

// AddFade registers a material whose opacity rises by rate per tick up to target.
func (r *AnimationRegistry) AddFade(m *components.Material, rate, target float64) ecs.Entity {
	fade := components.FadeIn{Material: m, Rate: rate, Target: target}
	r.counts.Fades++
	return r.fades.NewEntity(&fade)
}

// Counts returns the number of registered records per class.
func (r *AnimationRegistry) Counts() RegistryCounts {
	return r.counts
}
