package kernel

import (
	"encoding/binary"
	"fmt"
	"io"
)

// stlTriangle is the 50-byte binary STL record: normal, three vertices,
// attribute byte count.
type stlTriangle struct {
	Normal   [3]float32
	Vertices [3][3]float32
	Attr     uint16
}

// WriteSTL writes the mesh as binary STL. Triangles are emitted in index
// order with their stored per-face normals.
func (m *Mesh) WriteSTL(w io.Writer) error {
	triCount := m.TriangleCount()
	if triCount == 0 {
		return fmt.Errorf("stl: empty mesh")
	}

	var header [80]byte
	copy(header[:], m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(triCount)); err != nil {
		return fmt.Errorf("stl: writing triangle count: %w", err)
	}

	for t := 0; t < triCount; t++ {
		var rec stlTriangle
		for j := 0; j < 3; j++ {
			vi := int(m.Indices[t*3+j])
			rec.Vertices[j] = [3]float32{
				m.Vertices[vi*3],
				m.Vertices[vi*3+1],
				m.Vertices[vi*3+2],
			}
		}
		// Vertices share the face normal; any corner's stored normal works.
		ni := int(m.Indices[t*3])
		rec.Normal = [3]float32{m.Normals[ni*3], m.Normals[ni*3+1], m.Normals[ni*3+2]}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("stl: writing triangle %d: %w", t, err)
		}
	}
	return nil
}
