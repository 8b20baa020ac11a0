package renderer

import (
	"image/color"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/camera"
	"github.com/pthm-cable/sunset/components"
	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/scene"
	"github.com/pthm-cable/sunset/systems"
)

const rad2deg = 180 / math.Pi

var defaultMaterial = components.Material{Color: config.Color{R: 1, G: 1, B: 1}, Opacity: 1}

// spriteDraw is a billboard queued during the walk and drawn after all
// opaque geometry.
type spriteDraw struct {
	pos    r3.Vec
	size   r3.Vec
	sprite scene.Sprite
	tint   color.RGBA
	dist   float64
}

// SceneRenderer draws the scene graph with rlgl's matrix stack.
// It implements scene.Visitor.
type SceneRenderer struct {
	scene    *scene.Scene
	fog      Fog
	textures *spriteTextures

	meshes  map[int]mesh // Static geometry built on first draw
	stack   []frame
	sprites []spriteDraw
	eye     r3.Vec
	cam     rl.Camera3D
}

// NewSceneRenderer creates a renderer for s.
// Must be called after the raylib window is created.
func NewSceneRenderer(cfg *config.Config, s *scene.Scene) *SceneRenderer {
	return &SceneRenderer{
		scene:    s,
		fog:      NewFog(cfg.Scene),
		textures: loadSpriteTextures(cfg, s),
		meshes:   make(map[int]mesh),
		stack:    make([]frame, 0, 16),
	}
}

// Camera3D converts the orbit camera into a raylib camera.
func Camera3D(c *camera.Camera) rl.Camera3D {
	p, t := c.Position(), c.Target()
	return rl.Camera3D{
		Position:   vec3(p),
		Target:     vec3(t),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(c.FovY),
		Projection: rl.CameraPerspective,
	}
}

// Draw renders the whole scene from cam. Call between BeginDrawing and EndDrawing.
func (r *SceneRenderer) Draw(cam *camera.Camera) {
	r.cam = Camera3D(cam)
	r.eye = cam.Position()
	r.sprites = r.sprites[:0]
	r.stack = append(r.stack[:0], identityFrame())

	rl.BeginMode3D(r.cam)
	rl.DisableBackfaceCulling()

	r.scene.Graph.Walk(r)
	r.drawSprites()

	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

// Enter implements scene.Visitor.
func (r *SceneRenderer) Enter(i int, n *scene.Node) bool {
	f := r.stack[len(r.stack)-1].child(&n.Local)
	r.stack = append(r.stack, f)

	rl.PushMatrix()
	applyTransform(&n.Local)
	r.drawNode(i, n, f)
	return true
}

// Leave implements scene.Visitor.
func (r *SceneRenderer) Leave(i int, n *scene.Node) {
	rl.PopMatrix()
	r.stack = r.stack[:len(r.stack)-1]
}

// applyTransform multiplies the current matrix by T * Rx * Ry * Rz * S,
// matching components.Transform.Apply.
func applyTransform(t *components.Transform) {
	rl.Translatef(float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z))
	if t.Rotation.X != 0 {
		rl.Rotatef(float32(t.Rotation.X*rad2deg), 1, 0, 0)
	}
	if t.Rotation.Y != 0 {
		rl.Rotatef(float32(t.Rotation.Y*rad2deg), 0, 1, 0)
	}
	if t.Rotation.Z != 0 {
		rl.Rotatef(float32(t.Rotation.Z*rad2deg), 0, 0, 1)
	}
	rl.Scalef(float32(t.Scale.X), float32(t.Scale.Y), float32(t.Scale.Z))
}

func (r *SceneRenderer) drawNode(i int, n *scene.Node, f frame) {
	sh := &n.Shape
	if sh.Kind == scene.KindGroup {
		return
	}
	m := n.Material
	if m == nil {
		m = &defaultMaterial
	}
	if m.Opacity <= 0 {
		return
	}

	switch sh.Kind {
	case scene.KindSprite:
		r.queueSprite(n, m, f)
		return
	case scene.KindPoints:
		r.drawSparks(sh.Sparkler)
		return
	}

	if m.Additive {
		rl.BeginBlendMode(rl.BlendAdditive)
		defer rl.EndBlendMode()
	}

	if sh.Kind == scene.KindGrid {
		r.drawGrid(sh.Grid, m, f)
		return
	}

	col := r.shade(m, f.O)
	switch sh.Kind {
	case scene.KindBox:
		rl.DrawCube(rl.Vector3{}, float32(sh.Size.X), float32(sh.Size.Y), float32(sh.Size.Z), col)
	case scene.KindCylinder:
		h := float32(sh.Size.Y)
		rl.DrawCylinder(rl.NewVector3(0, -h/2, 0), float32(sh.Size.Z), float32(sh.Size.X), h, slices(sh.Slices, 16), col)
	case scene.KindSphere:
		s := slices(sh.Slices, 12)
		rl.DrawSphereEx(rl.Vector3{}, float32(sh.Radius), max(s/2, 4), s, col)
	default:
		drawMesh(r.mesh(i, sh), col)
	}
}

// mesh returns the cached triangle list for a static shape.
func (r *SceneRenderer) mesh(i int, sh *scene.Shape) mesh {
	if m, ok := r.meshes[i]; ok {
		return m
	}
	var m mesh
	switch sh.Kind {
	case scene.KindTorus:
		m = torusMesh(sh.Radius, sh.Tube, sh.Slices)
	case scene.KindTube:
		m = tubeMesh(sh.Path, sh.Radius, sh.Taper, sh.Slices)
	case scene.KindLathe:
		m = latheMesh(sh.Path, sh.Slices)
	case scene.KindFan:
		m = fanMesh(sh.Path)
	case scene.KindDisc:
		m = discMesh(sh.Radius, sh.Slices)
	}
	r.meshes[i] = m
	return m
}

// shade applies fog to a material at world position p.
func (r *SceneRenderer) shade(m *components.Material, p r3.Vec) color.RGBA {
	if m.Unlit {
		return rgba(m.Color, m.Opacity)
	}
	return r.fog.Apply(m.Color, m.Opacity, r3.Norm(r3.Sub(p, r.eye)))
}

func drawMesh(m mesh, col color.RGBA) {
	if len(m) == 0 {
		return
	}
	rl.CheckRenderBatchLimit(int32(len(m)))
	rl.Begin(rl.Triangles)
	rl.Color4ub(col.R, col.G, col.B, col.A)
	for _, v := range m {
		rl.Vertex3f(float32(v.X), float32(v.Y), float32(v.Z))
	}
	rl.End()
}

// drawGrid draws a vertex grid in local space. Vertex colors are fogged by
// their world distance unless the material is unlit.
func (r *SceneRenderer) drawGrid(g *systems.Grid, m *components.Material, f frame) {
	cols := g.Cols()
	vertex := func(i int, col color.RGBA) {
		rl.Color4ub(col.R, col.G, col.B, col.A)
		rl.Vertex3f(float32(g.X[i]), float32(g.Y[i]), float32(g.Z[i]))
	}
	shadeAt := func(i int, c config.Color) color.RGBA {
		if m.Unlit {
			return rgba(c, m.Opacity)
		}
		p := f.point(r3.Vec{X: g.X[i], Y: g.Y[i], Z: g.Z[i]})
		return r.fog.Apply(c, m.Opacity, r3.Norm(r3.Sub(p, r.eye)))
	}

	idx := [6]int{}
	for iy := 0; iy < g.SegY; iy++ {
		rl.CheckRenderBatchLimit(int32(g.SegX * 6))
		rl.Begin(rl.Triangles)
		for ix := 0; ix < g.SegX; ix++ {
			a := ix + cols*iy
			b := ix + cols*(iy+1)
			c := ix + 1 + cols*(iy+1)
			d := ix + 1 + cols*iy
			idx = [6]int{a, b, d, b, c, d}
			if g.CellColors != nil {
				col := shadeAt(a, g.CellColors[iy*g.SegX+ix])
				for _, v := range idx {
					vertex(v, col)
				}
				continue
			}
			for _, v := range idx {
				vertex(v, shadeAt(v, g.Colors[v]))
			}
		}
		rl.End()
	}
}

// drawSparks draws live sparks as small additive spheres in the emitter's space.
func (r *SceneRenderer) drawSparks(s *systems.Sparkler) {
	if s == nil {
		return
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := range s.Sparks {
		p := &s.Sparks[i]
		if p.Life <= 0 || p.Size <= 0 {
			continue
		}
		rl.DrawSphereEx(vec3(p.Pos), float32(p.Size/2), 3, 6, rgba(p.Color, 1))
	}
	rl.EndBlendMode()
}

func (r *SceneRenderer) queueSprite(n *scene.Node, m *components.Material, f frame) {
	s := f.scale()
	r.sprites = append(r.sprites, spriteDraw{
		pos:    f.O,
		size:   r3.Scale(s, n.Shape.Size),
		sprite: n.Shape.Sprite,
		tint:   rgba(m.Color, m.Opacity),
		dist:   r3.Norm(r3.Sub(f.O, r.eye)),
	})
}

// drawSprites draws queued billboards back to front without depth writes.
func (r *SceneRenderer) drawSprites() {
	sort.Slice(r.sprites, func(i, j int) bool {
		return r.sprites[i].dist > r.sprites[j].dist
	})

	rl.DisableDepthMask()
	rl.BeginBlendMode(rl.BlendAdditive)
	for _, s := range r.sprites {
		tex, ok := r.textures.get(s.sprite)
		if !ok {
			continue
		}
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		rl.DrawBillboardRec(r.cam, tex, src, vec3(s.pos), rl.NewVector2(float32(s.size.X), float32(s.size.Y)), s.tint)
	}
	rl.EndBlendMode()
	rl.EnableDepthMask()
}

// Unload frees GPU textures.
func (r *SceneRenderer) Unload() {
	r.textures.unload()
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func slices(n, fallback int) int32 {
	if n < 3 {
		n = fallback
	}
	return int32(n)
}
