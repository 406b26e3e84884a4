package matter

import (
	"context"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/gleval"
)

func TestScaleKeepsCenter(t *testing.T) {
	box, err := gleval.NewBox(2, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	sdf := gleval.Translate(box, 5, 0, 0)
	bb := ms3.NewCenteredBox(ms3.Vec{X: 5}, ms3.Vec{X: 3, Y: 2, Z: 2})
	vol, err := isosurface.SampleSDF(context.Background(), sdf, bb, 25, 17, 17, isosurface.SampleConfig{})
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	c0, s0 := mesh.Center(), mesh.Size()
	PLA.Scale(mesh)
	c1, s1 := mesh.Center(), mesh.Size()
	if ms3.Norm(ms3.Sub(c0, c1)) > 1e-4 {
		t.Errorf("center moved from %v to %v", c0, c1)
	}
	want := 1 / (1 - PLA.shrink)
	if ratio := s1.X / s0.X; math32.Abs(ratio-want) > 1e-4 {
		t.Errorf("size ratio %g, want %g", ratio, want)
	}
}

func TestInternalDimScale(t *testing.T) {
	got, err := PLA.InternalDimScale(10)
	if err != nil {
		t.Fatal(err)
	}
	if math32.Abs(got-(10*1.002+0.45)) > 1e-5 {
		t.Errorf("got %g", got)
	}
	if _, err := PETG.InternalDimScale(0); err == nil {
		t.Error("zero dimension accepted")
	}
}
