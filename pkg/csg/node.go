package csg

import "gonum.org/v1/gonum/spatial/r3"

// Node is a node in a CSG tree. It is a sealed interface: the concrete node
// types in this package are the only implementations.
type Node interface {
	node()
}

// Box is a rectangular cuboid. The box occupies [0,Size.X] x [0,Size.Y] x
// [0,Size.Z] with its minimum corner at the origin, or is centered on the
// origin when Center is set.
type Box struct {
	Size   r3.Vec `json:"size"`
	Center bool   `json:"center,omitempty"`
}

// Cylinder is a Z-axis cylinder or cone frustum. BottomRadius is the radius
// at the base, TopRadius at the top; equal radii give a plain cylinder. The
// base sits at z=0, or the solid is centered on the origin when Center is
// set.
type Cylinder struct {
	Height       float64 `json:"height"`
	BottomRadius float64 `json:"bottom_radius"`
	TopRadius    float64 `json:"top_radius"`
	Center       bool    `json:"center,omitempty"`
}

// Union is the boolean union of its children.
type Union struct {
	Kids []Node `json:"kids"`
}

// Difference subtracts every node in Cuts from Base.
type Difference struct {
	Base Node   `json:"base"`
	Cuts []Node `json:"cuts"`
}

// Hull is the convex hull of its children.
type Hull struct {
	Kids []Node `json:"kids"`
}

// Transform applies a rigid motion to Child: first the rotation (Euler
// angles in degrees, applied X then Y then Z), then the translation.
type Transform struct {
	Child       Node   `json:"child"`
	Translation r3.Vec `json:"translation"`
	Rotation    r3.Vec `json:"rotation"`
}

func (Box) node()        {}
func (Cylinder) node()   {}
func (Union) node()      {}
func (Difference) node() {}
func (Hull) node()       {}
func (Transform) node()  {}

// Cyl builds a constant-radius cylinder of the given height, base at z=0.
func Cyl(height, radius float64) Cylinder {
	return Cylinder{Height: height, BottomRadius: radius, TopRadius: radius}
}

// UnionOf unions the given nodes. A single node is returned unwrapped.
func UnionOf(kids ...Node) Node {
	if len(kids) == 1 {
		return kids[0]
	}
	return Union{Kids: kids}
}

// DifferenceOf subtracts cuts from base. With no cuts the base is returned
// unwrapped.
func DifferenceOf(base Node, cuts ...Node) Node {
	if len(cuts) == 0 {
		return base
	}
	return Difference{Base: base, Cuts: cuts}
}

// HullOf takes the convex hull of the given nodes.
func HullOf(kids ...Node) Node {
	return Hull{Kids: kids}
}

// Translate moves n by (x, y, z). Pure translations on an existing pure
// translation collapse into one Transform.
func Translate(n Node, x, y, z float64) Node {
	if t, ok := n.(Transform); ok && t.Rotation == (r3.Vec{}) {
		t.Translation = r3.Add(t.Translation, r3.Vec{X: x, Y: y, Z: z})
		return t
	}
	return Transform{Child: n, Translation: r3.Vec{X: x, Y: y, Z: z}}
}

// Rotate rotates n by Euler angles in degrees (X then Y then Z order).
func Rotate(n Node, rx, ry, rz float64) Node {
	return Transform{Child: n, Rotation: r3.Vec{X: rx, Y: ry, Z: rz}}
}
