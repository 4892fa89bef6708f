package parts

import (
	"github.com/chazu/trackgen/pkg/csg"
	"gonum.org/v1/gonum/spatial/r3"
)

// Trackmaster connector constants. The plastic system snaps rather than
// drops in, so the plug head is relieved by a through-bore plus a slot out
// the tip.
const (
	tmShankWidth = 4
	tmBoreRadius = 1.75
	tmSlotWidth  = 1.5
	tmSlotLead   = 1
)

// TrackmasterPlug builds the trackmaster male connector: a straight shank
// out to the head center and a chamfered cylindrical head. With solid
// false the head is relieved by a vertical through-bore and a narrow slot
// opening out the tip, which lets the head compress as it snaps in.
func (b *Builder) TrackmasterPlug(solid bool) (csg.Node, error) {
	o := b.Manifold.Overlap
	bv := b.Manifold.Bevel()
	p := b.Trackmaster
	h := p.WellHeight
	r := p.PlugRadius
	nl := p.PlugNeckLength

	shank := csg.Translate(
		csg.Box{Size: r3.Vec{X: nl + o, Y: tmShankWidth, Z: h}},
		-o, -tmShankWidth/2, 0,
	)

	head := csg.HullOf(
		csg.Cyl(h-bv.Height, r),
		csg.Cyl(h, r-b.Manifold.BevelSize()),
	)

	if !solid {
		bore := csg.Translate(csg.Cyl(h+2*o, tmBoreRadius), 0, 0, -o)
		slot := csg.Translate(
			csg.Box{Size: r3.Vec{X: r + tmSlotLead + o, Y: tmSlotWidth, Z: h + 2*o}},
			0, -tmSlotWidth/2, -o,
		)
		head = csg.DifferenceOf(head, bore, slot)
	}

	return csg.UnionOf(shank, csg.Translate(head, nl, 0, 0)), nil
}
