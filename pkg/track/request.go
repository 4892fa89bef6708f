package track

import "fmt"

// PartKind names the part families the generator can produce.
type PartKind int

const (
	Track  PartKind = iota // straight track segment body
	Plug                   // male connector
	Cutout                 // female connector socket (as a cutting solid)
)

func (k PartKind) String() string {
	switch k {
	case Track:
		return "track"
	case Plug:
		return "plug"
	case Cutout:
		return "cutout"
	default:
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
}

// ParsePartKind maps a catalog name to a PartKind.
func ParsePartKind(name string) (PartKind, error) {
	switch name {
	case "track":
		return Track, nil
	case "plug":
		return Plug, nil
	case "cutout":
		return Cutout, nil
	}
	return 0, fmt.Errorf("unknown part kind %q", name)
}

// PartRequest selects one part from the catalog. Length applies to track
// segments only; Solid applies to plugs only (a solid plug skips the
// compliance keyway).
type PartRequest struct {
	Standard Standard
	Kind     PartKind
	Length   float64
	Solid    bool
}

func (r PartRequest) String() string {
	switch {
	case r.Kind == Track:
		return fmt.Sprintf("%s-%s-%g", r.Standard, r.Kind, r.Length)
	case r.Kind == Plug && r.Solid:
		return fmt.Sprintf("%s-%s-solid", r.Standard, r.Kind)
	default:
		return fmt.Sprintf("%s-%s", r.Standard, r.Kind)
	}
}
