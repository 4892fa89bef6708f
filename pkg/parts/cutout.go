package parts

import (
	"fmt"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/track"
	"gonum.org/v1/gonum/spatial/r3"
)

// PlugCutout builds the female socket as a cutting solid: a neck slot
// opening onto the mating face plus a bore at the neck's inner end. The
// bore is a constant-radius core pierced through both deck faces, flared
// by two interpolated-radius hulls whose mouths open to radius+bevel, so
// both bore openings come out self-chamfered. The cutter lives in the
// connector frame (face at x=0, centerline y=0, deck z in [0,Height]) and
// is meant to be subtracted from a deck-height solid.
func (b *Builder) PlugCutout(radius, neckLength float64) (csg.Node, error) {
	o := b.Manifold.Overlap
	bv := b.Manifold.Bevel()
	switch {
	case radius <= 0:
		return nil, fmt.Errorf("%w: cutout radius %g must be positive", ErrInvalidParameter, radius)
	case neckLength <= 0:
		return nil, fmt.Errorf("%w: cutout neck length %g must be positive", ErrInvalidParameter, neckLength)
	case radius <= bv.Pad:
		return nil, fmt.Errorf("%w: cutout radius %g does not survive the bevel waist %g",
			ErrInvalidParameter, radius, bv.Pad)
	}

	h := b.Wood.Height

	// Neck slot, pierced through the mating face and both deck faces.
	neck := csg.Translate(
		csg.Box{Size: r3.Vec{X: neckLength + o, Y: track.NeckWidth, Z: h + 2*o}},
		-o, -track.NeckWidth/2, -o,
	)

	// Bore: a constant-radius core with a flare hull at each opening. The
	// hull waists sit at radius-pad so they stay buried inside the core;
	// the halves overlap across the midplane so their union shares no face.
	wide := radius + bv.Radius
	narrow := radius - bv.Pad
	core := csg.Translate(csg.Cyl(h+2*o, radius), 0, 0, -o)
	lower := csg.HullOf(
		csg.Translate(csg.Cyl(o, wide), 0, 0, -o),
		csg.Translate(csg.Cyl(o, narrow), 0, 0, h/2),
	)
	upper := csg.HullOf(
		csg.Translate(csg.Cyl(o, narrow), 0, 0, h/2-o),
		csg.Translate(csg.Cyl(o, wide), 0, 0, h),
	)
	bore := csg.Translate(csg.UnionOf(core, lower, upper), neckLength, 0, 0)

	// Entrance bevels where the slot meets the mating face: the two
	// vertical corner edges and the two horizontal opening edges.
	edges := []chamferEdge{
		{run: alongZ, mid: r3.Vec{X: -bv.Pad, Y: -track.NeckWidth / 2, Z: h / 2}, span: h + 2*o},
		{run: alongZ, mid: r3.Vec{X: -bv.Pad, Y: track.NeckWidth / 2, Z: h / 2}, span: h + 2*o},
		{run: alongY, mid: r3.Vec{X: -bv.Pad, Y: 0, Z: 0}, span: track.NeckWidth + 2*o},
		{run: alongY, mid: r3.Vec{X: -bv.Pad, Y: 0, Z: h}, span: track.NeckWidth + 2*o},
	}

	kids := []csg.Node{neck, bore}
	kids = append(kids, stampAll(b.Manifold, edges)...)
	return csg.UnionOf(kids...), nil
}

// WoodCutout builds the wooden female socket cutter: the wood plug head
// radius plus clearance, at the wood neck length.
func (b *Builder) WoodCutout() (csg.Node, error) {
	return b.PlugCutout(b.Wood.CutoutRadius(track.Wood), b.Wood.CutoutNeckLength)
}

// TrackmasterCutout builds the trackmaster female socket cutter.
func (b *Builder) TrackmasterCutout() (csg.Node, error) {
	return b.PlugCutout(b.Trackmaster.CutoutRadius(track.Trackmaster), b.Trackmaster.CutoutNeckLength)
}
