package tessellate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/kernel"
	"github.com/chazu/trackgen/pkg/parts"
	"gonum.org/v1/gonum/spatial/r3"
)

// recordSolid carries no geometry; the recording kernel only logs calls.
type recordSolid struct{}

func (recordSolid) BoundingBox() (min, max [3]float64) { return }

// recordKernel logs every kernel call so tests can assert on the lowered
// primitive sequence.
type recordKernel struct {
	log []string
}

var _ kernel.Kernel = (*recordKernel)(nil)

func (k *recordKernel) logf(format string, args ...any) kernel.Solid {
	k.log = append(k.log, fmt.Sprintf(format, args...))
	return recordSolid{}
}

func (k *recordKernel) Box(x, y, z float64) kernel.Solid {
	return k.logf("box %g %g %g", x, y, z)
}

func (k *recordKernel) Cylinder(height, radius float64) kernel.Solid {
	return k.logf("cylinder h=%g r=%g", height, radius)
}

func (k *recordKernel) Cone(height, bottomRadius, topRadius float64) kernel.Solid {
	return k.logf("cone h=%g r0=%g r1=%g", height, bottomRadius, topRadius)
}

func (k *recordKernel) Prism(profile [][2]float64, height float64) kernel.Solid {
	return k.logf("prism n=%d h=%g", len(profile), height)
}

func (k *recordKernel) Union(a, b kernel.Solid) kernel.Solid        { return k.logf("union") }
func (k *recordKernel) Difference(a, b kernel.Solid) kernel.Solid   { return k.logf("difference") }
func (k *recordKernel) Intersection(a, b kernel.Solid) kernel.Solid { return k.logf("intersection") }

func (k *recordKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return k.logf("translate %g %g %g", x, y, z)
}

func (k *recordKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return k.logf("rotate %g %g %g", x, y, z)
}

func (k *recordKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	k.log = append(k.log, "tomesh")
	return &kernel.Mesh{Vertices: []float32{0, 0, 0}, Indices: []uint32{0, 0, 0}}, nil
}

func evalLog(t *testing.T, n csg.Node) []string {
	t.Helper()
	k := &recordKernel{}
	if _, err := Evaluate(n, k); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return k.log
}

func TestEvaluatePrimitives(t *testing.T) {
	tests := []struct {
		name string
		node csg.Node
		want []string
	}{
		{
			name: "box min corner",
			node: csg.Box{Size: r3.Vec{X: 1, Y: 2, Z: 3}},
			want: []string{"box 1 2 3"},
		},
		{
			name: "box centered",
			node: csg.Box{Size: r3.Vec{X: 2, Y: 4, Z: 6}, Center: true},
			want: []string{"box 2 4 6", "translate -1 -2 -3"},
		},
		{
			name: "cylinder",
			node: csg.Cyl(10, 3),
			want: []string{"cylinder h=10 r=3"},
		},
		{
			name: "cone",
			node: csg.Cylinder{Height: 5, BottomRadius: 3, TopRadius: 1},
			want: []string{"cone h=5 r0=3 r1=1"},
		},
		{
			name: "centered cylinder",
			node: csg.Cylinder{Height: 10, BottomRadius: 3, TopRadius: 3, Center: true},
			want: []string{"cylinder h=10 r=3", "translate 0 0 -5"},
		},
		{
			name: "rotate then translate",
			node: csg.Translate(csg.Rotate(csg.Box{Size: r3.Vec{X: 1, Y: 1, Z: 1}}, 0, 0, 45), 5, 0, 0),
			want: []string{"box 1 1 1", "rotate 0 0 45", "translate 5 0 0"},
		},
		{
			name: "difference",
			node: csg.DifferenceOf(csg.Box{Size: r3.Vec{X: 5, Y: 5, Z: 5}}, csg.Cyl(7, 1)),
			want: []string{"box 5 5 5", "cylinder h=7 r=1", "difference"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalLog(t, tt.node)
			if strings.Join(got, "; ") != strings.Join(tt.want, "; ") {
				t.Errorf("log = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHullCylinders(t *testing.T) {
	// Socket mouth: a wide disc below z=0 hulled with a narrow disc at
	// mid-height. Lowers to the wide collar plus one cone frustum.
	n := csg.HullOf(
		csg.Translate(csg.Cyl(0.1, 2), 0, 0, -0.1),
		csg.Translate(csg.Cyl(0.1, 1), 0, 0, 5),
	)
	got := evalLog(t, n)
	want := []string{
		"cylinder h=0.1 r=2", "translate 0 0 -0.1",
		"cone h=5.1 r0=2 r1=1", "translate 0 0 0",
		"union",
	}
	if strings.Join(got, "; ") != strings.Join(want, "; ") {
		t.Errorf("log = %v, want %v", got, want)
	}
}

func TestHullPlugHead(t *testing.T) {
	// Chamfered head: full radius to the taper start, reduced radius to
	// the top. Lowers to a cylinder and a closing frustum.
	n := csg.HullOf(csg.Cyl(10, 5), csg.Cyl(12, 4))
	got := evalLog(t, n)
	want := []string{
		"cylinder h=10 r=5", "translate 0 0 0",
		"cone h=2 r0=5 r1=4", "translate 0 0 10",
		"union",
	}
	if strings.Join(got, "; ") != strings.Join(want, "; ") {
		t.Errorf("log = %v, want %v", got, want)
	}
}

func TestHullBoxes(t *testing.T) {
	// Wedge shank: two offset boxes with the same height. The footprint
	// hull is a six-sided polygon extruded through the shared extent.
	n := csg.HullOf(
		csg.Translate(csg.Box{Size: r3.Vec{X: 2, Y: 6, Z: 12}}, 0, -3, 0),
		csg.Translate(csg.Box{Size: r3.Vec{X: 2, Y: 7, Z: 12}}, 8, -3.5, 0),
	)
	got := evalLog(t, n)
	want := []string{"prism n=6 h=12", "translate 0 0 0"}
	if strings.Join(got, "; ") != strings.Join(want, "; ") {
		t.Errorf("log = %v, want %v", got, want)
	}
}

func TestHullUnsupported(t *testing.T) {
	tests := []struct {
		name string
		node csg.Node
	}{
		{
			name: "mixed primitives",
			node: csg.HullOf(csg.Cyl(5, 1), csg.Box{Size: r3.Vec{X: 1, Y: 1, Z: 1}}),
		},
		{
			name: "rotated child",
			node: csg.HullOf(csg.Cyl(5, 1), csg.Rotate(csg.Cyl(5, 1), 90, 0, 0)),
		},
		{
			name: "off-axis cylinders",
			node: csg.HullOf(csg.Cyl(5, 1), csg.Translate(csg.Cyl(5, 1), 3, 0, 0)),
		},
		{
			name: "boxes with different z extents",
			node: csg.HullOf(
				csg.Box{Size: r3.Vec{X: 1, Y: 1, Z: 5}},
				csg.Translate(csg.Box{Size: r3.Vec{X: 1, Y: 1, Z: 5}}, 3, 0, 1),
			),
		},
		{
			name: "nested operator",
			node: csg.HullOf(csg.Cyl(5, 1), csg.UnionOf(csg.Cyl(5, 1), csg.Cyl(6, 1))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &recordKernel{}
			_, err := Evaluate(tt.node, k)
			if !errors.Is(err, ErrUnsupportedHull) {
				t.Errorf("Evaluate err = %v, want ErrUnsupportedHull", err)
			}
		})
	}
}

func TestConvexHull2D(t *testing.T) {
	// A square with an interior point; the hull keeps the four corners.
	pts := [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}, {0, 0}}
	hull := convexHull2D(pts)
	if len(hull) != 4 {
		t.Fatalf("hull has %d vertices, want 4: %v", len(hull), hull)
	}
	// Counter-clockwise orientation: positive signed area.
	var area float64
	for i := range hull {
		j := (i + 1) % len(hull)
		area += hull[i][0]*hull[j][1] - hull[j][0]*hull[i][1]
	}
	if area <= 0 {
		t.Errorf("hull is not counter-clockwise (signed area %g)", area)
	}
}

func TestTessellateParts(t *testing.T) {
	// Every catalog part must lower without hitting an unsupported shape.
	builders := map[string]func() (csg.Node, error){
		"wood-track":         func() (csg.Node, error) { return parts.WoodTrack(53.5) },
		"wood-plug":          func() (csg.Node, error) { return parts.WoodPlug(false) },
		"wood-plug-solid":    func() (csg.Node, error) { return parts.WoodPlug(true) },
		"wood-cutout":        func() (csg.Node, error) { return parts.WoodCutout() },
		"trackmaster-plug":   func() (csg.Node, error) { return parts.TrackmasterPlug(false) },
		"trackmaster-cutout": func() (csg.Node, error) { return parts.TrackmasterCutout() },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			n, err := build()
			if err != nil {
				t.Fatalf("building: %v", err)
			}
			mesh, err := Tessellate(n, &recordKernel{}, name)
			if err != nil {
				t.Fatalf("Tessellate: %v", err)
			}
			if mesh.Name != name {
				t.Errorf("mesh name = %q, want %q", mesh.Name, name)
			}
		})
	}
}
