package isosurface_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/gleval"
	"gonum.org/v1/gonum/spatial/r3"
)

func linearField(p ms3.Vec) float32 { return p.X + 2*p.Y + 3*p.Z }

var testBox = ms3.Box{Min: ms3.Vec{X: -1, Y: -2, Z: 0.5}, Max: ms3.Vec{X: 3, Y: 1, Z: 2}}

func TestSampleFuncPositions(t *testing.T) {
	vol, err := isosurface.SampleFunc(context.Background(), linearField, testBox, 7, 5, 4, isosurface.SampleConfig{BatchSize: 9, Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if p := vol.Position(0, 0, 0); p != testBox.Min {
		t.Errorf("first sample at %v, want %v", p, testBox.Min)
	}
	if p := vol.Position(6, 4, 3); ms3.Norm(ms3.Sub(p, testBox.Max)) > 1e-5 {
		t.Errorf("last sample at %v, want %v", p, testBox.Max)
	}
	for z := 0; z < 4; z++ {
		for y := 0; y < 5; y++ {
			for x := 0; x < 7; x++ {
				want := linearField(vol.Position(x, y, z))
				if got := vol.At(x, y, z); got != want {
					t.Fatalf("sample (%d,%d,%d) = %g, want %g", x, y, z, got, want)
				}
			}
		}
	}
}

func TestSampleConfigsAgree(t *testing.T) {
	torus, err := gleval.NewTorus(1, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	sdf := gleval.Union(torus, gleval.Translate(torus, 0.5, 0, 0))
	box := ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: 4, Y: 3, Z: 1})
	var ref *isosurface.Volume
	for _, cfg := range []isosurface.SampleConfig{
		{Workers: 1, BatchSize: 1},
		{Workers: 1},
		{Workers: 8, BatchSize: 100},
		{BatchSize: 7},
	} {
		vol, err := isosurface.SampleSDF(context.Background(), sdf, box, 23, 17, 9, cfg)
		if err != nil {
			t.Fatalf("%+v: %s", cfg, err)
		}
		if ref == nil {
			ref = vol
			continue
		}
		for i := range vol.Data {
			if vol.Data[i] != ref.Data[i] {
				t.Fatalf("%+v: sample %d differs: %g != %g", cfg, i, vol.Data[i], ref.Data[i])
			}
		}
	}
}

type failingSDF struct{ err error }

func (f failingSDF) Evaluate(pos []ms3.Vec, dist []float32, userData any) error { return f.err }
func (f failingSDF) Bounds() ms3.Box                                           { return testBox }

type leakingSDF struct{}

func (leakingSDF) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	vp, err := gleval.GetVecPool(userData)
	if err != nil {
		return err
	}
	vp.Float.Acquire(len(dist))
	return nil
}

func (leakingSDF) Bounds() ms3.Box { return testBox }

func TestSampleErrors(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("boom")
	_, err := isosurface.SampleSDF(ctx, failingSDF{err: errBoom}, testBox, 4, 4, 4, isosurface.SampleConfig{})
	if !errors.Is(err, errBoom) {
		t.Errorf("got %v, want SDF error", err)
	}
	_, err = isosurface.SampleSDF(ctx, leakingSDF{}, testBox, 4, 4, 4, isosurface.SampleConfig{})
	if err == nil {
		t.Error("leaked pool buffer not reported")
	}
	_, err = isosurface.SampleSDF(ctx, nil, testBox, 4, 4, 4, isosurface.SampleConfig{})
	if err == nil {
		t.Error("nil SDF accepted")
	}
	for _, dims := range [][3]int{{0, 4, 4}, {4, -1, 4}, {4, 4, 0}} {
		_, err = isosurface.SampleFunc(ctx, linearField, testBox, dims[0], dims[1], dims[2], isosurface.SampleConfig{})
		if err == nil {
			t.Errorf("dimensions %v accepted", dims)
		}
	}
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = isosurface.SampleFunc(canceled, linearField, testBox, 64, 64, 64, isosurface.SampleConfig{BatchSize: 16, Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

type sphere64 struct{ r float64 }

func (s sphere64) Evaluate(p r3.Vec) float64 { return r3.Norm(p) - s.r }
func (s sphere64) Bounds() r3.Box {
	return r3.Box{Min: r3.Vec{X: -2 * s.r, Y: -2 * s.r, Z: -2 * s.r}, Max: r3.Vec{X: 2 * s.r, Y: 2 * s.r, Z: 2 * s.r}}
}

func TestSampleSDF64(t *testing.T) {
	vol, err := isosurface.SampleSDF64(context.Background(), sphere64{r: 1}, 11, 11, 11, isosurface.SampleConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if vol.Box.Min.X != -2 || vol.Box.Max.Z != 2 {
		t.Fatalf("volume box %+v does not match SDF bounds", vol.Box)
	}
	for _, idx := range [][3]int{{5, 5, 5}, {0, 0, 0}, {10, 5, 5}, {7, 3, 9}} {
		p := vol.Position(idx[0], idx[1], idx[2])
		want := ms3.Norm(p) - 1
		if got := vol.At(idx[0], idx[1], idx[2]); math32.Abs(got-want) > 1e-6 {
			t.Errorf("sample %v = %g, want %g", idx, got, want)
		}
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	vol, err := isosurface.SampleFunc(context.Background(), linearField, testBox, 13, 11, 7, isosurface.SampleConfig{})
	if err != nil {
		t.Fatal(err)
	}
	vol.Data[17] = float32(math.Inf(-1))
	var buf bytes.Buffer
	n, err := vol.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	got, err := isosurface.ReadVolume(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.NX != vol.NX || got.NY != vol.NY || got.NZ != vol.NZ || got.Box != vol.Box {
		t.Fatalf("header mismatch: got %dx%dx%d %+v", got.NX, got.NY, got.NZ, got.Box)
	}
	for i := range vol.Data {
		if got.Data[i] != vol.Data[i] {
			t.Fatalf("sample %d: got %g, want %g", i, got.Data[i], vol.Data[i])
		}
	}
}

func TestReadVolumeErrors(t *testing.T) {
	vol := sphereVolume(t, 1, -1.5, 1.5, 9)
	var buf bytes.Buffer
	_, err := vol.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	good := buf.Bytes()
	corrupt := func(fn func(b []byte) []byte) []byte {
		return fn(append([]byte(nil), good...))
	}
	for _, test := range []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short header", data: good[:30]},
		{name: "bad magic", data: corrupt(func(b []byte) []byte { b[0] = 'X'; return b })},
		{name: "bad version", data: corrupt(func(b []byte) []byte { b[4] = 9; return b })},
		{name: "zero dimension", data: corrupt(func(b []byte) []byte { copy(b[8:12], []byte{0, 0, 0, 0}); return b })},
		{name: "huge dimensions", data: corrupt(func(b []byte) []byte {
			for i := 8; i < 20; i++ {
				b[i] = 0xff
			}
			return b
		})},
		{name: "digest", data: corrupt(func(b []byte) []byte { b[44] ^= 1; return b })},
		{name: "truncated body", data: good[:len(good)-8]},
		{name: "missing body", data: good[:52]},
	} {
		_, err := isosurface.ReadVolume(bytes.NewReader(test.data))
		if !errors.Is(err, isosurface.ErrBadVolume) {
			t.Errorf("%s: got %v, want ErrBadVolume", test.name, err)
		}
	}
	vol.Data = vol.Data[:10]
	if _, err := vol.WriteTo(&buf); err == nil {
		t.Error("inconsistent volume encoded")
	}
}

func TestNewVolumeCollapsedAxes(t *testing.T) {
	vol := isosurface.NewVolume(testBox, 4, 1, 0)
	nx, ny, nz := vol.Dims()
	if nx != 4 || ny != 1 || nz != 1 || len(vol.Data) != 4 {
		t.Fatalf("got dims %d,%d,%d with %d samples", nx, ny, nz, len(vol.Data))
	}
	if sp := vol.Spacing(); sp.Y != 0 || sp.Z != 0 || sp.X != 4.0/3 {
		t.Errorf("spacing %v", sp)
	}
	if p := vol.Position(0, 0, 0); p.Y != -0.5 || p.Z != 1.25 {
		t.Errorf("collapsed axes should sit at the box center, got %v", p)
	}
	if det := vol.WorldMatrix().Det(); det == 0 {
		t.Error("world matrix of collapsed volume is singular")
	}
}

func TestMeshAccessors(t *testing.T) {
	mesh := &isosurface.Mesh{
		Vertices: []ms3.Vec{{X: -1}, {X: 3, Y: 1}, {Z: 2}, {Y: -1, Z: 4}},
		Normals:  []ms3.Vec{{X: 2}, {}, {Y: -3, Z: 4}, {Z: 0.5}},
		Faces:    []int{0, 1, 2, 0, 2, 3},
	}
	if mesh.Len() != 2 {
		t.Fatalf("got %d triangles", mesh.Len())
	}
	tris := mesh.Triangles(nil)
	if len(tris) != 2 || tris[1][2] != mesh.Vertices[3] {
		t.Errorf("unexpected triangles %v", tris)
	}
	bb := mesh.Bounds()
	if bb.Min != (ms3.Vec{X: -1, Y: -1}) || bb.Max != (ms3.Vec{X: 3, Y: 1, Z: 4}) {
		t.Errorf("bounds %+v", bb)
	}
	if c := mesh.Center(); c != (ms3.Vec{X: 1, Z: 2}) {
		t.Errorf("center %v", c)
	}
	if r := mesh.Radius(); math32.Abs(r-math32.Sqrt(16+4+16)/2) > 1e-6 {
		t.Errorf("radius %g", r)
	}
	unit := mesh.UnitNormals()
	want := []ms3.Vec{{X: 1}, {}, {Y: -0.6, Z: 0.8}, {Z: 1}}
	for i := range want {
		if ms3.Norm(ms3.Sub(unit[i], want[i])) > 1e-6 {
			t.Errorf("unit normal %d = %v, want %v", i, unit[i], want[i])
		}
	}
	if mesh.Normals[0].X != 2 {
		t.Error("UnitNormals modified the mesh")
	}
	sum := mesh.Checksum()
	mesh.Vertices[2].Z += 1e-3
	if mesh.Checksum() == sum {
		t.Error("checksum did not change with vertex")
	}
	mesh.Vertices[2].Z -= 1e-3
	mesh.Faces[4], mesh.Faces[5] = mesh.Faces[5], mesh.Faces[4]
	if mesh.Checksum() == sum {
		t.Error("checksum did not change with winding")
	}
	if (&isosurface.Mesh{}).Bounds() != (ms3.Box{}) {
		t.Error("empty mesh should have zero bounds")
	}
}

func TestMeshTransformNormals(t *testing.T) {
	vol := sphereVolume(t, 1, -1.5, 1.5, 13)
	mesh, err := isosurface.Extract(vol, isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	orig := &isosurface.Mesh{
		Vertices: append([]ms3.Vec(nil), mesh.Vertices...),
		Normals:  append([]ms3.Vec(nil), mesh.Normals...),
	}
	mesh.Transform(mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 1, 0.5)))
	for i, v := range orig.Vertices {
		want := ms3.Vec{X: 2*v.X + 1, Y: v.Y + 2, Z: 0.5*v.Z + 3}
		if ms3.Norm(ms3.Sub(mesh.Vertices[i], want)) > 1e-4 {
			t.Fatalf("vertex %d moved to %v, want %v", i, mesh.Vertices[i], want)
		}
		n := orig.Normals[i]
		wantN := ms3.Vec{X: n.X / 2, Y: n.Y, Z: 2 * n.Z}
		if ms3.Norm(ms3.Sub(mesh.Normals[i], wantN)) > 1e-4*(1+ms3.Norm(n)) {
			t.Fatalf("normal %d transformed to %v, want %v", i, mesh.Normals[i], wantN)
		}
	}
}

// boundaryEdges counts directed edges whose reverse no triangle traverses.
func boundaryEdges(mesh *isosurface.Mesh) int {
	edges := make(map[[2]int]bool, len(mesh.Faces))
	for i := 0; i < len(mesh.Faces); i += 3 {
		f := mesh.Faces[i : i+3]
		for j := 0; j < 3; j++ {
			edges[[2]int{f[j], f[(j+1)%3]}] = true
		}
	}
	n := 0
	for e := range edges {
		if !edges[[2]int{e[1], e[0]}] {
			n++
		}
	}
	return n
}

func TestClipToBounds(t *testing.T) {
	// The sphere pokes out of every face of the box.
	vol := sphereVolume(t, 1.3, -1, 1, 12)
	open, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if boundaryEdges(open) == 0 {
		t.Fatal("sphere cut by the box produced a closed mesh")
	}

	vol.ClipToBounds()
	outside := vol.Box.Size().X / float32(vol.NX)
	for _, p := range [][3]int{{0, 5, 5}, {11, 5, 5}, {5, 0, 5}, {5, 11, 5}, {5, 5, 0}, {5, 5, 11}, {0, 0, 0}, {11, 11, 11}} {
		if got := vol.At(p[0], p[1], p[2]); got != outside {
			t.Errorf("boundary sample %v = %g, want %g", p, got, outside)
		}
	}
	if got := vol.At(5, 5, 5); got >= 0 {
		t.Errorf("interior sample overwritten with %g", got)
	}
	closed, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if closed.Len() == 0 {
		t.Fatal("clipped volume produced no triangles")
	}
	checkClosed(t, "clipped sphere", closed)
	bb := closed.Bounds()
	if !vol.Box.Contains(bb.Min) || !vol.Box.Contains(bb.Max) {
		t.Errorf("clipped mesh bounds %v exceed volume box %v", bb, vol.Box)
	}
}
