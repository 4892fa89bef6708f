package csg

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min r3.Vec `json:"min"`
	Max r3.Vec `json:"max"`
}

// Size returns the extent of the bounds along each axis.
func (b Bounds) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// union grows b to cover o.
func (b Bounds) union(o Bounds) Bounds {
	return Bounds{
		Min: r3.Vec{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		Max: r3.Vec{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	}
}

// BoundingBox computes an analytic axis-aligned bounding box for the tree.
// Differences report the bounds of their base: cuts only ever remove
// material, and the parts built here always cut strictly inside or through
// the base, so the base bounds are exact.
func BoundingBox(n Node) Bounds {
	switch n := n.(type) {
	case Box:
		if n.Center {
			h := r3.Scale(0.5, n.Size)
			return Bounds{Min: r3.Scale(-1, h), Max: h}
		}
		return Bounds{Max: n.Size}
	case Cylinder:
		r := math.Max(n.BottomRadius, n.TopRadius)
		b := Bounds{
			Min: r3.Vec{X: -r, Y: -r, Z: 0},
			Max: r3.Vec{X: r, Y: r, Z: n.Height},
		}
		if n.Center {
			b.Min.Z = -n.Height / 2
			b.Max.Z = n.Height / 2
		}
		return b
	case Union:
		return boundsOver(n.Kids)
	case Hull:
		return boundsOver(n.Kids)
	case Difference:
		return BoundingBox(n.Base)
	case Transform:
		return transformBounds(BoundingBox(n.Child), n)
	}
	return Bounds{}
}

func boundsOver(kids []Node) Bounds {
	if len(kids) == 0 {
		return Bounds{}
	}
	b := BoundingBox(kids[0])
	for _, k := range kids[1:] {
		b = b.union(BoundingBox(k))
	}
	return b
}

// transformBounds maps the 8 corners of b through the transform and rewraps
// them. Conservative for rotated children, exact for pure translations.
func transformBounds(b Bounds, t Transform) Bounds {
	rot := eulerRotation(t.Rotation)
	out := Bounds{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for i := 0; i < 8; i++ {
		c := r3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z}
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		c = r3.Add(rot.Rotate(c), t.Translation)
		out.Min.X = math.Min(out.Min.X, c.X)
		out.Min.Y = math.Min(out.Min.Y, c.Y)
		out.Min.Z = math.Min(out.Min.Z, c.Z)
		out.Max.X = math.Max(out.Max.X, c.X)
		out.Max.Y = math.Max(out.Max.Y, c.Y)
		out.Max.Z = math.Max(out.Max.Z, c.Z)
	}
	return out
}

// eulerRotation composes the X, Y, Z Euler rotations (degrees) into one
// rotation, X applied first.
func eulerRotation(deg r3.Vec) r3.Rotation {
	rx := quat.Number(r3.NewRotation(deg.X*math.Pi/180, r3.Vec{X: 1}))
	ry := quat.Number(r3.NewRotation(deg.Y*math.Pi/180, r3.Vec{Y: 1}))
	rz := quat.Number(r3.NewRotation(deg.Z*math.Pi/180, r3.Vec{Z: 1}))
	return r3.Rotation(quat.Mul(rz, quat.Mul(ry, rx)))
}
