// Package scene builds the static layout of the greeting scene: a flat node
// graph of primitive shapes and animated surfaces, plus the animation records
// that drive it.
package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/components"
	"github.com/pthm-cable/sunset/systems"
)

// Kind selects how a node is drawn.
type Kind uint8

const (
	KindGroup    Kind = iota // No geometry, only a transform
	KindGrid                 // Animated or rippled vertex grid
	KindBox                  // Size holds the full extents
	KindCylinder             // Size.X bottom radius, Size.Y height, Size.Z top radius; centred
	KindSphere               // Radius
	KindTorus                // Ring of Radius in the XY plane, Tube thickness
	KindTube                 // Swept circle along Path with Radius, narrowing by Taper
	KindLathe                // Path is a profile (X radius, Y height) revolved about Y
	KindFan                  // Flat polygon in the XY plane from Path
	KindDisc                 // Flat circle of Radius in the XY plane
	KindSprite               // Camera-facing quad, Size.X by Size.Y
	KindPoints               // Sparkler particles
)

var kindNames = [...]string{
	"group", "grid", "box", "cylinder", "sphere", "torus",
	"tube", "lathe", "fan", "disc", "sprite", "points",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Sprite identifies a runtime-generated texture.
type Sprite uint8

const (
	SpriteNone Sprite = iota
	SpriteSun
	SpriteCloud
	SpriteMessage
	SpriteSpark
)

// Shape is the geometry a node owns. Only the fields its Kind uses are set.
type Shape struct {
	Kind   Kind
	Size   r3.Vec
	Radius float64
	Tube   float64
	Taper  float64
	Slices int
	Path   []r3.Vec

	Grid     *systems.Grid
	Sparkler *systems.Sparkler
	Sprite   Sprite
}

// Node is one object in the scene.
// Local is mutated in place by animators; everything else is fixed after build.
type Node struct {
	Name     string
	Parent   int
	Local    components.Transform
	Shape    Shape
	Material *components.Material
	Children []int
}

// Root is the index of the graph's root group.
const Root = 0

// Graph is a flat parent-indexed tree of nodes.
// Nodes are heap-allocated so transform pointers stay valid as the graph grows.
type Graph struct {
	Nodes []*Node
}

// NewGraph returns a graph holding only the root group.
func NewGraph() *Graph {
	return &Graph{Nodes: []*Node{{Name: "root", Parent: -1, Local: components.Identity()}}}
}

// Add appends a child of parent and returns its index.
func (g *Graph) Add(parent int, name string, local components.Transform, shape Shape, m *components.Material) int {
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, &Node{
		Name:     name,
		Parent:   parent,
		Local:    local,
		Shape:    shape,
		Material: m,
	})
	g.Nodes[parent].Children = append(g.Nodes[parent].Children, idx)
	return idx
}

// Group appends a geometry-free node.
func (g *Graph) Group(parent int, name string, local components.Transform) int {
	return g.Add(parent, name, local, Shape{Kind: KindGroup}, nil)
}

// Node returns the node at i.
func (g *Graph) Node(i int) *Node {
	return g.Nodes[i]
}

// Len returns the number of nodes including the root.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// ChildIndex returns the position of node i among its parent's children.
func (g *Graph) ChildIndex(i int) int {
	p := g.Nodes[i].Parent
	if p < 0 {
		return 0
	}
	for k, c := range g.Nodes[p].Children {
		if c == i {
			return k
		}
	}
	return -1
}

// WorldPoint maps p from node i's local space into world space.
func (g *Graph) WorldPoint(i int, p r3.Vec) r3.Vec {
	for i >= 0 {
		n := g.Nodes[i]
		p = n.Local.Apply(p)
		i = n.Parent
	}
	return p
}

// WorldPosition returns the world-space origin of node i.
func (g *Graph) WorldPosition(i int) r3.Vec {
	return g.WorldPoint(i, r3.Vec{})
}

// Find returns the first node with the given name.
func (g *Graph) Find(name string) (int, bool) {
	for i, n := range g.Nodes {
		if n.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Visitor receives nodes in depth-first order. Enter is called before a
// node's children and Leave after them, so renderers can push and pop
// transforms. Returning false from Enter skips the subtree and its Leave.
type Visitor interface {
	Enter(i int, n *Node) bool
	Leave(i int, n *Node)
}

// Walk visits the whole graph from the root.
func (g *Graph) Walk(v Visitor) {
	g.walk(Root, v)
}

func (g *Graph) walk(i int, v Visitor) {
	n := g.Nodes[i]
	if !v.Enter(i, n) {
		return
	}
	for _, c := range n.Children {
		g.walk(c, v)
	}
	v.Leave(i, n)
}

// CountKinds tallies nodes per kind.
func (g *Graph) CountKinds() map[Kind]int {
	out := make(map[Kind]int)
	for _, n := range g.Nodes {
		out[n.Shape.Kind]++
	}
	return out
}
