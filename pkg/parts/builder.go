// Package parts builds the connector and track-segment geometry as CSG
// trees. Every part comes out of a Builder holding the dimensional catalog;
// the package-level functions build with the stock catalog.
//
// Parts are built in a local frame: track length runs along +X, the
// transverse axis is +Y, up is +Z. Connectors place their mating face at
// x=0 with the connector centerline at y=0.
package parts

import (
	"errors"
	"fmt"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/track"
)

// ErrInvalidParameter is wrapped by every constructor rejection. Callers
// can match it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrUnsupportedPart marks catalog combinations the generator does not
// produce.
var ErrUnsupportedPart = errors.New("unsupported part")

// DefaultTrackLength is the standard straight-segment length.
const DefaultTrackLength = 53.5

// Builder produces part trees from a dimensional catalog.
type Builder struct {
	Manifold    track.ManifoldConfig
	Wood        track.StandardParams
	Trackmaster track.StandardParams
}

// NewBuilder returns a Builder on the stock catalog.
func NewBuilder() *Builder {
	return FromCatalog(track.DefaultCatalog())
}

// FromCatalog returns a Builder on the given catalog.
func FromCatalog(c track.Catalog) *Builder {
	return &Builder{
		Manifold:    c.Manifold,
		Wood:        c.Wood,
		Trackmaster: c.Trackmaster,
	}
}

// Build dispatches a part request to the matching constructor. Track
// requests with a zero length use DefaultTrackLength.
func (b *Builder) Build(req track.PartRequest) (csg.Node, error) {
	switch req.Kind {
	case track.Track:
		if req.Standard != track.Wood {
			return nil, fmt.Errorf("%w: %s track segments", ErrUnsupportedPart, req.Standard)
		}
		length := req.Length
		if length == 0 {
			length = DefaultTrackLength
		}
		return b.WoodTrack(length)
	case track.Plug:
		if req.Standard == track.Trackmaster {
			return b.TrackmasterPlug(req.Solid)
		}
		return b.WoodPlug(req.Solid)
	case track.Cutout:
		if req.Standard == track.Trackmaster {
			return b.TrackmasterCutout()
		}
		return b.WoodCutout()
	}
	return nil, fmt.Errorf("%w: kind %v", ErrUnsupportedPart, req.Kind)
}

// WoodTrack builds a straight wooden track segment with the stock catalog.
func WoodTrack(length float64) (csg.Node, error) {
	return NewBuilder().WoodTrack(length)
}

// WoodPlug builds a wooden male connector with the stock catalog.
func WoodPlug(solid bool) (csg.Node, error) {
	return NewBuilder().WoodPlug(solid)
}

// WoodCutout builds a wooden female socket cutter with the stock catalog.
func WoodCutout() (csg.Node, error) {
	return NewBuilder().WoodCutout()
}

// TrackmasterPlug builds a trackmaster male connector with the stock
// catalog.
func TrackmasterPlug(solid bool) (csg.Node, error) {
	return NewBuilder().TrackmasterPlug(solid)
}

// TrackmasterCutout builds a trackmaster female socket cutter with the
// stock catalog.
func TrackmasterCutout() (csg.Node, error) {
	return NewBuilder().TrackmasterCutout()
}
