// Package render exports isosurface meshes to common 3D file formats.
package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
)

// Renderer streams triangles. ReadTriangles fills t and returns the number of
// triangles written. It returns io.EOF once all triangles have been read.
type Renderer interface {
	ReadTriangles(t []ms3.Triangle) (int, error)
}

// MeshRenderer streams the triangles of an indexed mesh.
type MeshRenderer struct {
	mesh *isosurface.Mesh
	next int
}

var _ Renderer = (*MeshRenderer)(nil)

// NewMeshRenderer returns a Renderer over the triangles of mesh.
func NewMeshRenderer(mesh *isosurface.Mesh) *MeshRenderer {
	return &MeshRenderer{mesh: mesh}
}

func (mr *MeshRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	ntri := mr.mesh.Len()
	for n < len(dst) && mr.next < ntri {
		dst[n] = mr.mesh.Triangle(mr.next)
		mr.next++
		n++
	}
	if mr.next >= ntri {
		err = io.EOF
	}
	return n, err
}

// Reset rewinds the renderer to the first triangle.
func (mr *MeshRenderer) Reset() { mr.next = 0 }
