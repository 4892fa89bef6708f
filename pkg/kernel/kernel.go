// Package kernel defines the abstract geometry kernel interface. A kernel
// evaluates solids and boolean operations; backends (sdfx today) live in
// subpackages behind this interface so the tessellator never depends on a
// particular geometry library.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// Placement conventions: Box has its minimum corner at the origin;
// Cylinder, Cone, and Prism sit with their base on the z=0 plane, cylinders
// and cones centered on the Z axis.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid
	Cone(height, bottomRadius, topRadius float64) Solid
	// Prism extrudes a counter-clockwise 2D polygon in the XY plane up to
	// the given height.
	Prism(profile [][2]float64, height float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
