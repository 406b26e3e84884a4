package isosurface

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glgl/math/ms3"
)

// Grid is a read-only scalar field sampled on a regular 3D grid.
type Grid interface {
	// Dims returns the number of samples along each axis.
	Dims() (nx, ny, nz int)
	// At returns the sample at integer grid coordinates. Coordinates are
	// always within [0, n) on each axis.
	At(x, y, z int) float32
}

var _ Grid = (*Volume)(nil)

// Volume is a dense scalar grid placed in world space. Samples are stored
// x-fastest, the sample at (x,y,z) is Data[(z*NY+y)*NX+x]. The first sample
// lies on Box.Min and the last on Box.Max.
type Volume struct {
	Data       []float32
	NX, NY, NZ int
	Box        ms3.Box
}

// NewVolume allocates a zeroed volume spanning box. Axes with fewer than two
// samples are collapsed onto the middle of box along that axis.
func NewVolume(box ms3.Box, nx, ny, nz int) *Volume {
	if nx <= 1 {
		nx = 1
		box.Min.X = (box.Min.X + box.Max.X) / 2
		box.Max.X = box.Min.X
	}
	if ny <= 1 {
		ny = 1
		box.Min.Y = (box.Min.Y + box.Max.Y) / 2
		box.Max.Y = box.Min.Y
	}
	if nz <= 1 {
		nz = 1
		box.Min.Z = (box.Min.Z + box.Max.Z) / 2
		box.Max.Z = box.Min.Z
	}
	return &Volume{
		Data: make([]float32, nx*ny*nz),
		NX:   nx,
		NY:   ny,
		NZ:   nz,
		Box:  box,
	}
}

// Dims returns the number of samples along each axis. A nil volume is empty.
func (v *Volume) Dims() (nx, ny, nz int) {
	if v == nil {
		return 0, 0, 0
	}
	return v.NX, v.NY, v.NZ
}

// At returns the sample at (x,y,z).
func (v *Volume) At(x, y, z int) float32 { return v.Data[v.index(x, y, z)] }

// Set sets the sample at (x,y,z).
func (v *Volume) Set(x, y, z int, value float32) { v.Data[v.index(x, y, z)] = value }

func (v *Volume) index(x, y, z int) int { return (z*v.NY+y)*v.NX + x }

// ClipToBounds overwrites the six boundary faces of the volume with a small
// positive value, one x cell width, so surfaces cut by the box are capped
// and the extracted mesh is closed.
func (v *Volume) ClipToBounds() {
	nx, ny, nz := v.NX, v.NY, v.NZ
	if nx*ny*nz == 0 {
		return
	}
	outside := v.Box.Size().X / float32(nx)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			v.Set(0, y, z, outside)
			v.Set(nx-1, y, z, outside)
		}
	}
	for z := 0; z < nz; z++ {
		for x := 0; x < nx; x++ {
			v.Set(x, 0, z, outside)
			v.Set(x, ny-1, z, outside)
		}
	}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			v.Set(x, y, 0, outside)
			v.Set(x, y, nz-1, outside)
		}
	}
}

// Spacing returns the world distance between neighboring samples along each
// axis. Collapsed axes have zero spacing.
func (v *Volume) Spacing() ms3.Vec {
	sz := v.Box.Size()
	return ms3.Vec{X: spacing(sz.X, v.NX), Y: spacing(sz.Y, v.NY), Z: spacing(sz.Z, v.NZ)}
}

func spacing(length float32, n int) float32 {
	if n <= 1 {
		return 0
	}
	return length / float32(n-1)
}

// Position returns the world position of the sample at (x,y,z).
func (v *Volume) Position(x, y, z int) ms3.Vec {
	d := v.Spacing()
	return ms3.Vec{
		X: v.Box.Min.X + float32(float32(x)*d.X),
		Y: v.Box.Min.Y + float32(float32(y)*d.Y),
		Z: v.Box.Min.Z + float32(float32(z)*d.Z),
	}
}

// WorldMatrix returns the affine transform taking grid index space to world
// space, suitable for [Mesh.Transform].
func (v *Volume) WorldMatrix() mgl32.Mat4 {
	d := v.Spacing()
	// Collapsed axes keep unit scale so the matrix stays invertible.
	if d.X == 0 {
		d.X = 1
	}
	if d.Y == 0 {
		d.Y = 1
	}
	if d.Z == 0 {
		d.Z = 1
	}
	origin := v.Box.Min
	return mgl32.Translate3D(origin.X, origin.Y, origin.Z).Mul4(mgl32.Scale3D(d.X, d.Y, d.Z))
}

// Mesh extracts the isosurface of the volume and places it in world space.
func (v *Volume) Mesh(cfg Config) (*Mesh, error) {
	if v == nil {
		return nil, ErrNilGrid
	}
	mesh, err := Extract(v, cfg)
	if err != nil {
		return nil, err
	}
	mesh.Transform(v.WorldMatrix())
	return mesh, nil
}
