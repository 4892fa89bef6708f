package parts

import (
	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/track"
	"gonum.org/v1/gonum/spatial/r3"
)

// axis names a coordinate axis an edge runs along.
type axis int

const (
	alongX axis = iota
	alongY
	alongZ
)

// chamferEdge is one convex edge to be beveled: the axis it runs along, its
// midpoint (already nudged off the exact edge by the bevel pad, toward the
// open side), and its length including any overlap extension.
type chamferEdge struct {
	run  axis
	mid  r3.Vec
	span float64
}

// stamp builds the cutter for one edge: a square prism whose side is the
// bevel allowance, rotated 45 degrees about the run axis and centered on
// the (nudged) edge midpoint. The diamond cross-section then penetrates
// Bevel.Height past the edge along each adjoining face.
func (e chamferEdge) stamp(cfg track.ManifoldConfig) csg.Node {
	s := cfg.BevelSize()
	var box csg.Box
	var n csg.Node
	switch e.run {
	case alongX:
		box = csg.Box{Size: r3.Vec{X: e.span, Y: s, Z: s}, Center: true}
		n = csg.Rotate(box, 45, 0, 0)
	case alongY:
		box = csg.Box{Size: r3.Vec{X: s, Y: e.span, Z: s}, Center: true}
		n = csg.Rotate(box, 0, 45, 0)
	default:
		box = csg.Box{Size: r3.Vec{X: s, Y: s, Z: e.span}, Center: true}
		n = csg.Rotate(box, 0, 0, 45)
	}
	return csg.Translate(n, e.mid.X, e.mid.Y, e.mid.Z)
}

// stampAll builds cutters for a set of edges.
func stampAll(cfg track.ManifoldConfig, edges []chamferEdge) []csg.Node {
	out := make([]csg.Node, len(edges))
	for i, e := range edges {
		out[i] = e.stamp(cfg)
	}
	return out
}
