package sdfx

import (
	"bytes"
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

func TestBoxMinCorner(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{100, 50, 25}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestCylinderBase(t *testing.T) {
	k := New()
	cyl := k.Cylinder(50, 10)
	min, max := cyl.BoundingBox()

	const tol = 0.01
	if math.Abs(min[2]) > tol {
		t.Errorf("cylinder base z = %f, expected 0", min[2])
	}
	if math.Abs(max[2]-50) > tol {
		t.Errorf("cylinder top z = %f, expected 50", max[2])
	}
	if math.Abs(min[0]+10) > tol || math.Abs(max[0]-10) > tol {
		t.Errorf("cylinder x extent = [%f, %f], expected [-10, 10]", min[0], max[0])
	}

	mesh, err := k.ToMesh(cyl)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
}

func TestCone(t *testing.T) {
	k := New()
	cone := k.Cone(20, 10, 4)
	min, max := cone.BoundingBox()

	const tol = 0.01
	if math.Abs(min[2]) > tol || math.Abs(max[2]-20) > tol {
		t.Errorf("cone z extent = [%f, %f], expected [0, 20]", min[2], max[2])
	}
	// Bounding radius follows the wider end.
	if math.Abs(min[0]+10) > tol || math.Abs(max[0]-10) > tol {
		t.Errorf("cone x extent = [%f, %f], expected [-10, 10]", min[0], max[0])
	}
}

func TestPrism(t *testing.T) {
	k := New()
	// Right triangle in the XY plane.
	prism := k.Prism([][2]float64{{0, 0}, {40, 0}, {0, 30}}, 10)
	min, max := prism.BoundingBox()

	const tol = 0.5
	if math.Abs(min[2]) > tol || math.Abs(max[2]-10) > tol {
		t.Errorf("prism z extent = [%f, %f], expected [0, 10]", min[2], max[2])
	}
	if max[0] < 39 || max[1] < 29 {
		t.Errorf("prism xy extent = (%f, %f), expected to reach (40, 30)", max[0], max[1])
	}

	mesh, err := k.ToMesh(prism)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("prism mesh is empty")
	}
}

func TestDifference(t *testing.T) {
	k := New()

	box := k.Box(100, 100, 100)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}

	cyl := k.Translate(k.Cylinder(120, 20), 50, 50, -10)
	diff := k.Difference(box, cyl)
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A box with a hole should have more triangles than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestUnion(t *testing.T) {
	k := New()
	box1 := k.Box(50, 50, 50)
	box2 := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(box1, box2)
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Box(10, 10, 10)
	translated := k.Translate(box, 100, 200, 300)

	min, max := translated.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestRotate(t *testing.T) {
	k := New()
	box := k.Translate(k.Box(100, 10, 10), -50, -5, -5)

	// A long box along X rotated 90 degrees around Z should extend along Y.
	rotated := k.Rotate(box, 0, 0, 90)
	min, max := rotated.BoundingBox()

	xExtent := max[0] - min[0]
	yExtent := max[1] - min[1]

	const tol = 1.0
	if math.Abs(xExtent-10) > tol {
		t.Errorf("rotated X extent = %f, expected ~10", xExtent)
	}
	if math.Abs(yExtent-100) > tol {
		t.Errorf("rotated Y extent = %f, expected ~100", yExtent)
	}
}

func TestIntersection(t *testing.T) {
	k := New()
	box1 := k.Box(100, 100, 100)
	box2 := k.Translate(k.Box(100, 100, 100), 50, 0, 0)
	inter := k.Intersection(box1, box2)
	mesh, err := k.ToMesh(inter)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
}

func TestWriteSTL(t *testing.T) {
	k := New()
	mesh, err := k.ToMesh(k.Box(10, 10, 10))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	mesh.Name = "box"

	var buf bytes.Buffer
	if err := mesh.WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	want := 84 + 50*mesh.TriangleCount()
	if buf.Len() != want {
		t.Errorf("STL size = %d bytes, want %d", buf.Len(), want)
	}
}
