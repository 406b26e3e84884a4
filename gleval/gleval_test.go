package gleval

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func TestPrimitives(t *testing.T) {
	sphere, _ := NewSphere(1)
	box, _ := NewBox(2, 4, 6, 0)
	cyl, _ := NewCylinder(1, 2, 0)
	torus, _ := NewTorus(2, 0.5)
	for _, test := range []struct {
		name string
		sdf  SDF3
		pos  []ms3.Vec
		want []float32
	}{
		{
			name: "sphere", sdf: sphere,
			pos:  []ms3.Vec{{}, {X: 2}, {Y: -0.5}},
			want: []float32{-1, 1, -0.5},
		},
		{
			name: "box", sdf: box,
			pos:  []ms3.Vec{{}, {X: 2}, {Y: 3}, {Z: 4}},
			want: []float32{-1, 1, 1, 1},
		},
		{
			name: "cylinder", sdf: cyl,
			pos:  []ms3.Vec{{}, {X: 3}, {Z: 3}, {X: 0.5, Z: 0.5}},
			want: []float32{-1, 2, 2, -0.5},
		},
		{
			name: "torus", sdf: torus,
			pos:  []ms3.Vec{{X: 2}, {}, {Y: 2, Z: 1}},
			want: []float32{-0.5, 1.5, 0.5},
		},
		{
			name: "translate", sdf: Translate(sphere, 1, 2, 3),
			pos:  []ms3.Vec{{X: 1, Y: 2, Z: 3}, {X: 1, Y: 2, Z: 5}},
			want: []float32{-1, 1},
		},
		{
			name: "union", sdf: Union(sphere, Translate(sphere, 3, 0, 0)),
			pos:  []ms3.Vec{{}, {X: 3}, {X: 1.5}},
			want: []float32{-1, -1, 0.5},
		},
	} {
		sdf := SDF3CPU{SDF: test.sdf}
		dist := make([]float32, len(test.pos))
		err := sdf.Evaluate(test.pos, dist, nil)
		if err != nil {
			t.Fatalf("%s: %s", test.name, err)
		}
		for i, d := range dist {
			if math32.Abs(d-test.want[i]) > 1e-5 {
				t.Errorf("%s: distance at %v got %g, want %g", test.name, test.pos[i], d, test.want[i])
			}
		}
		bb := sdf.Bounds()
		for i, p := range test.pos {
			if test.want[i] < 0 && !inBox(bb, p) {
				t.Errorf("%s: interior point %v outside bounds %+v", test.name, p, bb)
			}
		}
	}
}

func inBox(bb ms3.Box, p ms3.Vec) bool {
	return p.X >= bb.Min.X && p.Y >= bb.Min.Y && p.Z >= bb.Min.Z &&
		p.X <= bb.Max.X && p.Y <= bb.Max.Y && p.Z <= bb.Max.Z
}

func TestInvalidPrimitives(t *testing.T) {
	for name, fn := range map[string]func() (SDF3, error){
		"sphere radius":     func() (SDF3, error) { return NewSphere(0) },
		"box dimension":     func() (SDF3, error) { return NewBox(1, 0, 1, 0) },
		"box rounding":      func() (SDF3, error) { return NewBox(1, 1, 1, 0.6) },
		"cylinder radius":   func() (SDF3, error) { return NewCylinder(0, 1, 0) },
		"cylinder rounding": func() (SDF3, error) { return NewCylinder(1, 1, 1) },
		"torus ring":        func() (SDF3, error) { return NewTorus(1, 0.6) },
	} {
		if _, err := fn(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestVecPool(t *testing.T) {
	var vp VecPool
	a := vp.Float.Acquire(16)
	b := vp.Float.Acquire(8)
	if len(a) != 16 || len(b) != 8 || &a[0] == &b[0] {
		t.Fatal("acquired buffers must be distinct and of requested length")
	}
	if vp.AssertAllReleased() == nil {
		t.Error("expected leak with acquired buffers")
	}
	if err := vp.Float.Release(a); err != nil {
		t.Fatal(err)
	}
	if err := vp.Float.Release(a); err == nil {
		t.Error("double release should fail")
	}
	// Released buffer is reused for smaller requests.
	c := vp.Float.Acquire(4)
	if &c[0] != &a[0] {
		t.Error("released buffer not reused")
	}
	vp.Float.Release(b)
	vp.Float.Release(c)
	if err := vp.AssertAllReleased(); err != nil {
		t.Error(err)
	}
	if err := vp.V3.Release(make([]ms3.Vec, 3)); err == nil {
		t.Error("release of foreign buffer should fail")
	}
}

type leaky struct{ SDF3 }

func (l leaky) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	vp, err := GetVecPool(userData)
	if err != nil {
		return err
	}
	vp.Float.Acquire(len(dist))
	return l.SDF3.Evaluate(pos, dist, userData)
}

func TestSDF3CPULeak(t *testing.T) {
	sphere, _ := NewSphere(1)
	sdf := SDF3CPU{SDF: leaky{sphere}}
	err := sdf.Evaluate([]ms3.Vec{{}}, make([]float32, 1), nil)
	if err == nil {
		t.Fatal("expected leak to be reported")
	}
	err = sdf.Evaluate([]ms3.Vec{{}}, make([]float32, 2), nil)
	if !errors.Is(err, errLengthMismatch) {
		t.Errorf("got %v, want length mismatch", err)
	}
}

func TestGetVecPool(t *testing.T) {
	var cpu SDF3CPU
	var vp VecPool
	for _, ud := range []any{&vp, &cpu} {
		if _, err := GetVecPool(ud); err != nil {
			t.Errorf("%T: %s", ud, err)
		}
	}
	if _, err := GetVecPool(nil); err == nil {
		t.Error("nil userData should fail")
	}
	if _, err := GetVecPool(vp); err == nil {
		t.Error("VecPool by value should fail")
	}
}
