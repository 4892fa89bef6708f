package parts

import (
	"github.com/chazu/trackgen/pkg/csg"
	"gonum.org/v1/gonum/spatial/r3"
)

// Keyway dimensions for the compliant wood plug head. The keyway splits
// the head so it can flex while snapping into a socket.
const (
	keywaySlotWidth    = 2
	keywayReliefRadius = 2
	keywayCutterSide   = 2
)

// WoodPlug builds the wooden male connector: a wedge shank from the track
// face out to the head center, topped with a chamfered cylindrical head.
// With solid false the head gets a compliance keyway (an offset notch, a
// relief bore, and two angled cutters opening the notch out the tip); the
// shank is identical in both variants.
func (b *Builder) WoodPlug(solid bool) (csg.Node, error) {
	o := b.Manifold.Overlap
	bv := b.Manifold.Bevel()
	p := b.Wood
	h := p.Height
	r := p.PlugRadius
	nl := p.PlugNeckLength

	// Wedge shank: narrow at the track face, widening toward the head.
	shank := csg.HullOf(
		csg.Translate(csg.Box{Size: r3.Vec{X: 1 + o, Y: 6, Z: h}}, -o, -3, 0),
		csg.Translate(csg.Box{Size: r3.Vec{X: 2, Y: 7, Z: h}}, nl-2, -3.5, 0),
	)

	// Head with a tapered top entry: full radius up to the taper start,
	// reduced radius all the way up, hulled into a chamfered rim.
	head := csg.HullOf(
		csg.Cyl(h-bv.Height, r),
		csg.Cyl(h, r-b.Manifold.BevelSize()),
	)

	if !solid {
		notch := csg.Translate(
			csg.Box{Size: r3.Vec{X: r + 1 + o, Y: keywaySlotWidth, Z: h + 2*o}},
			-1, -1, -o,
		)
		relief := csg.Translate(csg.Cyl(h+2*o, keywayReliefRadius), -1, 0, -o)
		cutters := []csg.Node{
			csg.Translate(
				csg.Rotate(csg.Box{Size: r3.Vec{X: keywayCutterSide, Y: keywayCutterSide, Z: h + 2*o}, Center: true}, 0, 0, 45),
				r, 1, h/2,
			),
			csg.Translate(
				csg.Rotate(csg.Box{Size: r3.Vec{X: keywayCutterSide, Y: keywayCutterSide, Z: h + 2*o}, Center: true}, 0, 0, 45),
				r, -1, h/2,
			),
		}
		cuts := append([]csg.Node{notch, relief}, cutters...)
		head = csg.DifferenceOf(head, cuts...)
	}

	return csg.UnionOf(shank, csg.Translate(head, nl, 0, 0)), nil
}
