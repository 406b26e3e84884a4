package isosurface

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glgl/math/ms3"
)

// Mesh is an indexed triangle mesh. Faces holds three vertex indices per
// triangle. Normals holds one normal per vertex, the sum of the field
// gradient contributions of every triangle corner referencing the vertex.
// Normals point towards decreasing field values and are not unit length,
// see [Mesh.UnitNormals].
type Mesh struct {
	Vertices []ms3.Vec
	Normals  []ms3.Vec
	Faces    []int
}

// Len returns the number of triangles in the mesh.
func (m *Mesh) Len() int { return len(m.Faces) / 3 }

// Triangle returns the i'th triangle of the mesh.
func (m *Mesh) Triangle(i int) ms3.Triangle {
	f := m.Faces[3*i : 3*i+3]
	return ms3.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Triangles appends the mesh's triangles to dst and returns the result.
func (m *Mesh) Triangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i < m.Len(); i++ {
		dst = append(dst, m.Triangle(i))
	}
	return dst
}

// Bounds returns the smallest box containing all vertices. An empty mesh
// has a zero box.
func (m *Mesh) Bounds() ms3.Box {
	if len(m.Vertices) == 0 {
		return ms3.Box{}
	}
	bb := ms3.Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bb.Min = minElem(bb.Min, v)
		bb.Max = ms3.MaxElem(bb.Max, v)
	}
	return bb
}

// Center returns the center of the mesh's bounding box.
func (m *Mesh) Center() ms3.Vec {
	bb := m.Bounds()
	return ms3.Scale(0.5, ms3.Add(bb.Min, bb.Max))
}

// Size returns the extents of the mesh's bounding box.
func (m *Mesh) Size() ms3.Vec {
	return m.Bounds().Size()
}

// Radius returns half the diagonal of the mesh's bounding box.
func (m *Mesh) Radius() float32 {
	return ms3.Norm(m.Size()) / 2
}

// Transform applies the affine transform t to all vertices in place. Normals
// are transformed by the inverse transpose of the linear part of t, which
// keeps them perpendicular to the surface.
func (m *Mesh) Transform(t mgl32.Mat4) {
	for i, v := range m.Vertices {
		p := t.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
		m.Vertices[i] = ms3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	nt := t.Mat3().Inv().Transpose()
	if nt == (mgl32.Mat3{}) {
		// Singular transform, normals have no meaningful image.
		return
	}
	for i, n := range m.Normals {
		r := nt.Mul3x1(mgl32.Vec3{n.X, n.Y, n.Z})
		m.Normals[i] = ms3.Vec{X: r[0], Y: r[1], Z: r[2]}
	}
}

// UnitNormals returns the normals of the mesh scaled to unit length. Zero
// normals stay zero.
func (m *Mesh) UnitNormals() []ms3.Vec {
	unit := make([]ms3.Vec, len(m.Normals))
	for i, n := range m.Normals {
		l := ms3.Norm(n)
		if l == 0 || math32.IsNaN(l) {
			continue
		}
		unit[i] = ms3.Scale(1/l, n)
	}
	return unit
}

// Checksum returns a 64 bit digest of the mesh's vertices, normals and faces.
// Meshes extracted from identical input have identical checksums.
func (m *Mesh) Checksum() uint64 {
	d := xxhash.New()
	var buf [12]byte
	putVecs := func(vecs []ms3.Vec) {
		for _, v := range vecs {
			binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(v.X))
			binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(v.Y))
			binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(v.Z))
			d.Write(buf[:])
		}
	}
	putVecs(m.Vertices)
	putVecs(m.Normals)
	for _, f := range m.Faces {
		binary.LittleEndian.PutUint32(buf[:4], uint32(f))
		d.Write(buf[:4])
	}
	return d.Sum64()
}

func minElem(a, b ms3.Vec) ms3.Vec {
	return ms3.Vec{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)}
}
