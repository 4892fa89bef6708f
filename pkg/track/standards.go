// Package track holds the dimensional catalog for the supported toy-track
// standards and the small amount of math shared by every generated part:
// connector dimensions, mating clearances, and the bevel geometry derived
// from the manifold-safety configuration.
package track

import "fmt"

// Standard identifies a toy-track system.
type Standard int

const (
	Wood        Standard = iota // wooden-railway style track
	Trackmaster                 // motorized plastic track
)

func (s Standard) String() string {
	switch s {
	case Wood:
		return "wood"
	case Trackmaster:
		return "trackmaster"
	default:
		return fmt.Sprintf("Standard(%d)", int(s))
	}
}

// ParseStandard maps a catalog name to a Standard.
func ParseStandard(name string) (Standard, error) {
	switch name {
	case "wood":
		return Wood, nil
	case "trackmaster":
		return Trackmaster, nil
	}
	return 0, fmt.Errorf("unknown standard %q", name)
}

// Mating clearances between a female bore and the male head it accepts.
// Wood connectors are loose by convention; trackmaster plugs need extra
// room to snap past the socket lip.
const (
	WoodPlugClearance        = 0.3
	TrackmasterPlugClearance = 0.7
)

// NeckWidth is the width of the connector neck slot, shared by both
// standards. All dimensions are millimeters.
const NeckWidth = 7.5

// StandardParams is the dimensional record for one track standard.
type StandardParams struct {
	Width            float64 `yaml:"width"`              // track width (transverse)
	Height           float64 `yaml:"height"`             // deck height
	WellHeight       float64 `yaml:"well_height"`        // floor height under a wheel well
	WellWidth        float64 `yaml:"well_width"`         // wheel well groove width
	WellSpacing      float64 `yaml:"well_spacing"`       // gap between the two wells
	PlugRadius       float64 `yaml:"plug_radius"`        // male head radius
	PlugNeckLength   float64 `yaml:"plug_neck_length"`   // face to head center, male side
	CutoutNeckLength float64 `yaml:"cutout_neck_length"` // face to bore center, female side
}

// WoodParams returns the wooden-railway catalog values.
func WoodParams() StandardParams {
	return StandardParams{
		Width:            40,
		Height:           12,
		WellHeight:       9,
		WellWidth:        5.7,
		WellSpacing:      19.25,
		PlugRadius:       6,
		PlugNeckLength:   10.45,
		CutoutNeckLength: 10.75,
	}
}

// TrackmasterParams returns the trackmaster catalog values. The plastic
// system has no wheel wells; WellHeight doubles as the connector height.
func TrackmasterParams() StandardParams {
	return StandardParams{
		WellHeight:       8.4,
		PlugRadius:       3.8,
		PlugNeckLength:   4.75,
		CutoutNeckLength: 5,
	}
}

// WellPadding is the distance from either track edge to the nearer wall of
// its wheel well. Derived so the two wells sit symmetrically about the
// track centerline.
func (p StandardParams) WellPadding() float64 {
	return (p.Width - p.WellSpacing - 2*p.WellWidth) / 2
}

// CutoutRadius is the female bore radius for the given standard's plug,
// head radius plus the mating clearance.
func (p StandardParams) CutoutRadius(s Standard) float64 {
	if s == Trackmaster {
		return p.PlugRadius + TrackmasterPlugClearance
	}
	return p.PlugRadius + WoodPlugClearance
}
