// Package tessellate lowers a CSG tree onto a geometry kernel and produces
// triangle meshes. The lowering is exact: hulls are rewritten into the
// kernel's primitive vocabulary (cone stacks, extruded convex polygons)
// rather than approximated, and unsupported shapes are an error.
package tessellate

import (
	"fmt"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/kernel"
)

// Evaluate lowers a CSG tree to a kernel solid.
func Evaluate(n csg.Node, k kernel.Kernel) (kernel.Solid, error) {
	switch n := n.(type) {
	case csg.Box:
		s := k.Box(n.Size.X, n.Size.Y, n.Size.Z)
		if n.Center {
			s = k.Translate(s, -n.Size.X/2, -n.Size.Y/2, -n.Size.Z/2)
		}
		return s, nil

	case csg.Cylinder:
		var s kernel.Solid
		if n.BottomRadius == n.TopRadius {
			s = k.Cylinder(n.Height, n.BottomRadius)
		} else {
			s = k.Cone(n.Height, n.BottomRadius, n.TopRadius)
		}
		if n.Center {
			s = k.Translate(s, 0, 0, -n.Height/2)
		}
		return s, nil

	case csg.Union:
		if len(n.Kids) == 0 {
			return nil, fmt.Errorf("tessellate: union with no children")
		}
		acc, err := Evaluate(n.Kids[0], k)
		if err != nil {
			return nil, err
		}
		for _, kid := range n.Kids[1:] {
			s, err := Evaluate(kid, k)
			if err != nil {
				return nil, err
			}
			acc = k.Union(acc, s)
		}
		return acc, nil

	case csg.Difference:
		acc, err := Evaluate(n.Base, k)
		if err != nil {
			return nil, err
		}
		for _, cut := range n.Cuts {
			s, err := Evaluate(cut, k)
			if err != nil {
				return nil, err
			}
			acc = k.Difference(acc, s)
		}
		return acc, nil

	case csg.Hull:
		return lowerHull(n, k)

	case csg.Transform:
		s, err := Evaluate(n.Child, k)
		if err != nil {
			return nil, err
		}
		if n.Rotation != (r3Zero) {
			s = k.Rotate(s, n.Rotation.X, n.Rotation.Y, n.Rotation.Z)
		}
		if n.Translation != (r3Zero) {
			s = k.Translate(s, n.Translation.X, n.Translation.Y, n.Translation.Z)
		}
		return s, nil
	}
	return nil, fmt.Errorf("tessellate: unknown node type %T", n)
}

// Tessellate lowers a CSG tree and meshes the result.
func Tessellate(n csg.Node, k kernel.Kernel, name string) (*kernel.Mesh, error) {
	s, err := Evaluate(n, k)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(s)
	if err != nil {
		return nil, fmt.Errorf("tessellate: meshing %q: %w", name, err)
	}
	mesh.Name = name
	return mesh, nil
}
