package tessellate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnsupportedHull is returned for hull shapes the lowering cannot
// express exactly in the kernel's primitive vocabulary.
var ErrUnsupportedHull = errors.New("unsupported hull")

var r3Zero r3.Vec

// placed is a primitive with its accumulated pure-translation offset.
type placed struct {
	prim   csg.Node
	offset r3.Vec
}

// unwrapPlaced strips pure-translation transforms off a hull child. Rotated
// children and nested operators are not hullable.
func unwrapPlaced(n csg.Node) (placed, bool) {
	var off r3.Vec
	for {
		t, ok := n.(csg.Transform)
		if !ok {
			break
		}
		if t.Rotation != r3Zero {
			return placed{}, false
		}
		off = r3.Add(off, t.Translation)
		n = t.Child
	}
	switch n.(type) {
	case csg.Box, csg.Cylinder:
		return placed{prim: n, offset: off}, true
	}
	return placed{}, false
}

// lowerHull rewrites a hull into exact kernel primitives. Two shapes are
// supported: coaxial Z cylinders (lowered to a stack of cone frustums
// following the convex radius envelope) and axis-aligned boxes sharing a
// vertical extent (lowered to an extruded 2D convex hull).
func lowerHull(h csg.Hull, k kernel.Kernel) (kernel.Solid, error) {
	if len(h.Kids) < 2 {
		return nil, fmt.Errorf("%w: %d children", ErrUnsupportedHull, len(h.Kids))
	}

	kids := make([]placed, len(h.Kids))
	allCyl, allBox := true, true
	for i, kid := range h.Kids {
		p, ok := unwrapPlaced(kid)
		if !ok {
			return nil, fmt.Errorf("%w: child %d is not a translated primitive", ErrUnsupportedHull, i)
		}
		kids[i] = p
		switch p.prim.(type) {
		case csg.Cylinder:
			allBox = false
		case csg.Box:
			allCyl = false
		}
	}

	switch {
	case allCyl:
		return hullCylinders(kids, k)
	case allBox:
		return hullBoxes(kids, k)
	}
	return nil, fmt.Errorf("%w: mixed primitive kinds", ErrUnsupportedHull)
}

// zr is a point in the (z, radius) half-plane of a solid of revolution.
type zr struct {
	z, r float64
}

// hullCylinders lowers a hull of coaxial Z cylinders. The hull of coaxial
// discs is a solid of revolution whose radius profile is the upper convex
// envelope of the children's (z, radius) corner points; the envelope
// segments become cone frustums stacked along the shared axis.
func hullCylinders(kids []placed, k kernel.Kernel) (kernel.Solid, error) {
	ax, ay := kids[0].offset.X, kids[0].offset.Y
	var pts []zr
	for i, p := range kids {
		c := p.prim.(csg.Cylinder)
		if p.offset.X != ax || p.offset.Y != ay {
			return nil, fmt.Errorf("%w: cylinder %d off axis", ErrUnsupportedHull, i)
		}
		z0 := p.offset.Z
		if c.Center {
			z0 -= c.Height / 2
		}
		pts = append(pts, zr{z0, c.BottomRadius}, zr{z0 + c.Height, c.TopRadius})
	}

	env := upperEnvelope(pts)
	if len(env) < 2 {
		return nil, fmt.Errorf("%w: degenerate cylinder hull", ErrUnsupportedHull)
	}

	var acc kernel.Solid
	for i := 0; i+1 < len(env); i++ {
		a, b := env[i], env[i+1]
		var seg kernel.Solid
		if a.r == b.r {
			seg = k.Cylinder(b.z-a.z, a.r)
		} else {
			seg = k.Cone(b.z-a.z, a.r, b.r)
		}
		seg = k.Translate(seg, ax, ay, a.z)
		if acc == nil {
			acc = seg
		} else {
			acc = k.Union(acc, seg)
		}
	}
	return acc, nil
}

// upperEnvelope computes the upper convex chain of the points, left to
// right in z. Collinear points are dropped.
func upperEnvelope(pts []zr) []zr {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].z != pts[j].z {
			return pts[i].z < pts[j].z
		}
		return pts[i].r > pts[j].r
	})
	// Keep only the highest point at each z.
	uniq := pts[:0]
	for _, p := range pts {
		if len(uniq) == 0 || p.z != uniq[len(uniq)-1].z {
			uniq = append(uniq, p)
		}
	}

	var chain []zr
	for _, p := range uniq {
		for len(chain) >= 2 {
			a, b := chain[len(chain)-2], chain[len(chain)-1]
			// Drop b unless it turns the chain downward (convex from above).
			if (b.z-a.z)*(p.r-a.r)-(p.z-a.z)*(b.r-a.r) < 0 {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

// hullBoxes lowers a hull of axis-aligned boxes sharing a z extent: the 2D
// convex hull of their footprints, extruded through the shared extent.
func hullBoxes(kids []placed, k kernel.Kernel) (kernel.Solid, error) {
	var z0, z1 float64
	var corners [][2]float64
	for i, p := range kids {
		b := p.prim.(csg.Box)
		min := p.offset
		if b.Center {
			min = r3.Sub(min, r3.Scale(0.5, b.Size))
		}
		if i == 0 {
			z0, z1 = min.Z, min.Z+b.Size.Z
		} else if min.Z != z0 || min.Z+b.Size.Z != z1 {
			return nil, fmt.Errorf("%w: box %d z extent differs", ErrUnsupportedHull, i)
		}
		corners = append(corners,
			[2]float64{min.X, min.Y},
			[2]float64{min.X + b.Size.X, min.Y},
			[2]float64{min.X + b.Size.X, min.Y + b.Size.Y},
			[2]float64{min.X, min.Y + b.Size.Y},
		)
	}

	profile := convexHull2D(corners)
	if len(profile) < 3 {
		return nil, fmt.Errorf("%w: degenerate box hull footprint", ErrUnsupportedHull)
	}
	return k.Translate(k.Prism(profile, z1-z0), 0, 0, z0), nil
}

// convexHull2D is the monotone-chain convex hull, counter-clockwise.
func convexHull2D(pts [][2]float64) [][2]float64 {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})
	uniq := pts[:0]
	for _, p := range pts {
		if len(uniq) == 0 || p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) < 3 {
		return uniq
	}

	cross := func(o, a, b [2]float64) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower, upper [][2]float64
	for _, p := range uniq {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
