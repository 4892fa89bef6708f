package track

import "math"

// ManifoldConfig tunes the two constants that keep generated booleans
// manifold: Overlap is the epsilon by which cutting solids are extended
// past the faces they open onto, BevelWidth is the visible width of the
// 45-degree edge bevels.
type ManifoldConfig struct {
	Overlap    float64 `yaml:"overlap"`
	BevelWidth float64 `yaml:"bevel_width"`
}

// DefaultManifold returns the stock manifold-safety configuration.
func DefaultManifold() ManifoldConfig {
	return ManifoldConfig{Overlap: 0.1, BevelWidth: 1.0}
}

// BevelSize is the total bevel allowance: the visible bevel width plus the
// overlap epsilon, so a beveled cutter still pierces the surface it bevels.
func (c ManifoldConfig) BevelSize() float64 {
	return c.Overlap + c.BevelWidth
}

// Bevel is the derived 45-degree bevel geometry. Pad nudges a chamfer
// cutter off the exact edge so it overlaps both faces; Height is the
// cutter's extent measured perpendicular to the edge; Radius is the radial
// reduction a beveled cylinder tapers through.
type Bevel struct {
	Pad    float64
	Height float64
	Radius float64
}

// Bevel derives the 45-degree bevel geometry from the configuration.
// Radius stays positive for any positive BevelWidth.
func (c ManifoldConfig) Bevel() Bevel {
	sin45 := math.Sqrt2 / 2
	pad := sin45 * c.Overlap / 2
	height := sin45 * c.BevelSize()
	return Bevel{
		Pad:    pad,
		Height: height,
		Radius: height - pad,
	}
}
