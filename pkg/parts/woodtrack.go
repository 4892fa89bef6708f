package parts

import (
	"fmt"

	"github.com/chazu/trackgen/pkg/csg"
	"gonum.org/v1/gonum/spatial/r3"
)

// WoodTrack builds a straight wooden track segment of the given length:
// a slab with two wheel-well grooves cut into the deck, all exposed long
// edges beveled. The segment occupies [0,length] x [0,Width] x [0,Height].
func (b *Builder) WoodTrack(length float64) (csg.Node, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: track length %g must be positive", ErrInvalidParameter, length)
	}
	p := b.Wood

	o := b.Manifold.Overlap
	bv := b.Manifold.Bevel()
	wellDepth := p.Height - p.WellHeight
	wellYs := []float64{p.WellPadding(), p.WellPadding() + p.WellWidth + p.WellSpacing}

	base := csg.Box{Size: r3.Vec{X: length, Y: p.Width, Z: p.Height}}

	var cuts []csg.Node

	// Wheel wells, oversized through both end faces and past the deck top.
	for _, y := range wellYs {
		well := csg.Box{Size: r3.Vec{X: length + 2*o, Y: p.WellWidth, Z: wellDepth + o}}
		cuts = append(cuts, csg.Translate(well, -o, y, p.WellHeight))
	}

	var edges []chamferEdge

	// Deck edges of each well, running the full length. Nudged up and into
	// the groove so the cutter clears both faces.
	for _, y := range wellYs {
		for _, wall := range []struct{ y, in float64 }{
			{y, 1},                // near wall, groove on the +y side
			{y + p.WellWidth, -1}, // far wall, groove on the -y side
		} {
			edges = append(edges, chamferEdge{
				run:  alongX,
				mid:  r3.Vec{X: length / 2, Y: wall.y + wall.in*bv.Pad, Z: p.Height + bv.Pad},
				span: length + 2*o,
			})
		}
	}

	// Vertical edges where the well walls meet the end faces.
	for _, y := range wellYs {
		for _, wy := range []float64{y, y + p.WellWidth} {
			for _, end := range []struct{ x, out float64 }{
				{0, -1},
				{length, 1},
			} {
				edges = append(edges, chamferEdge{
					run:  alongZ,
					mid:  r3.Vec{X: end.x + end.out*bv.Pad, Y: wy, Z: (p.WellHeight + p.Height) / 2},
					span: wellDepth + 2*o,
				})
			}
		}
	}

	// The four outer long edges of the slab.
	for _, yz := range []struct{ y, z, oy, oz float64 }{
		{0, 0, -1, -1},
		{p.Width, 0, 1, -1},
		{0, p.Height, -1, 1},
		{p.Width, p.Height, 1, 1},
	} {
		edges = append(edges, chamferEdge{
			run:  alongX,
			mid:  r3.Vec{X: length / 2, Y: yz.y + yz.oy*bv.Pad, Z: yz.z + yz.oz*bv.Pad},
			span: length + 2*o,
		})
	}

	cuts = append(cuts, stampAll(b.Manifold, edges)...)
	return csg.DifferenceOf(base, cuts...), nil
}
