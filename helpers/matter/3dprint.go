// Package matter compensates extracted meshes for the dimensional change of
// materials during fabrication.
package matter

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/isosurface"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks slightly more than PLA when cooling.
	PETG = ViscousMaterial{shrink: 0.4e-2, pullShrink: .3}
)

var errNonPositiveDim = errors.New("InternalDimScale only works for non-zero dimensions")

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float32
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float32
}

// Scale enlarges mesh in place about its bounding box center so that it
// reaches its modeled size after the material shrinks.
func (m ViscousMaterial) Scale(mesh *isosurface.Mesh) {
	scale := 1 / (1 - m.shrink)
	c := mesh.Center()
	t := mgl32.Translate3D(c.X, c.Y, c.Z).Mul4(mgl32.Scale3D(scale, scale, scale)).Mul4(mgl32.Translate3D(-c.X, -c.Y, -c.Z))
	mesh.Transform(t)
}

// InternalDimScale returns the modeled size of a hole or slot so that it
// measures real once printed.
func (m ViscousMaterial) InternalDimScale(real float32) (float32, error) {
	if real <= 0 {
		return 0, errNonPositiveDim
	}
	return real*(m.shrink+1) + m.pullShrink, nil
}
