package isosurface_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/gleval"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func sphereVolume(t testing.TB, r, lo, hi float32, n int) *isosurface.Volume {
	t.Helper()
	sphere, err := gleval.NewSphere(r)
	if err != nil {
		t.Fatal(err)
	}
	box := ms3.Box{Min: ms3.Vec{X: lo, Y: lo, Z: lo}, Max: ms3.Vec{X: hi, Y: hi, Z: hi}}
	vol, err := isosurface.SampleSDF(context.Background(), sphere, box, n, n, n, isosurface.SampleConfig{})
	if err != nil {
		t.Fatal(err)
	}
	return vol
}

func TestSphereGolden(t *testing.T) {
	for _, test := range []struct {
		name      string
		r, lo, hi float32
		n, step   int
		wantVerts int
		wantTris  int
		wantHalf  float32 // Zero skips the extent check.
	}{
		{name: "five samples", r: 1, lo: -1.5, hi: 1.5, n: 5, step: 1, wantVerts: 30, wantTris: 56, wantHalf: 1},
		{name: "coarse", r: 1, lo: -2.5, hi: 2.5, n: 10, step: 1, wantVerts: 72, wantTris: 140, wantHalf: 0.917},
		{name: "coarse step 2", r: 1, lo: -2.5, hi: 2.5, n: 11, step: 2, wantVerts: 24, wantTris: 44, wantHalf: 0.669},
		{name: "radius 2", r: 2, lo: -2.5, hi: 2.5, n: 10, step: 1, wantVerts: 264, wantTris: 524, wantHalf: 1.961},
		{name: "fine", r: 1, lo: -1.5, hi: 1.5, n: 20, step: 1, wantVerts: 720, wantTris: 1436, wantHalf: 0.994},
		{name: "dense", r: 3, lo: -3.1, hi: 3.1, n: 128, step: 1, wantVerts: 71016, wantTris: 142028},
	} {
		if test.n > 64 && testing.Short() {
			continue
		}
		vol := sphereVolume(t, test.r, test.lo, test.hi, test.n)
		mesh, err := vol.Mesh(isosurface.Config{Step: test.step})
		if err != nil {
			t.Fatal(err)
		}
		if len(mesh.Vertices) != test.wantVerts || mesh.Len() != test.wantTris {
			t.Errorf("%s: got %d vertices %d triangles, want %d and %d",
				test.name, len(mesh.Vertices), mesh.Len(), test.wantVerts, test.wantTris)
		}
		half := ms3.Scale(0.5, mesh.Size())
		for _, h := range []float32{half.X, half.Y, half.Z} {
			if test.wantHalf != 0 && math32.Abs(h-test.wantHalf) > 1e-3 {
				t.Errorf("%s: half extent %v, want %v", test.name, half, test.wantHalf)
				break
			}
			if test.step == 1 && math32.Abs(h-test.r) > 0.11 {
				t.Errorf("%s: half extent %v too far from radius", test.name, h)
			}
		}
		if c := mesh.Center(); ms3.Norm(c) > 1e-4 {
			t.Errorf("%s: sphere mesh off center %v", test.name, c)
		}
		checkClosed(t, test.name, mesh)
	}
}

func TestSphereFidelity(t *testing.T) {
	const r = 1.0
	vol := sphereVolume(t, r, -1.4, 1.4, 48)
	mesh, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	radii := make([]float64, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		radii[i] = float64(ms3.Norm(v))
	}
	mean, std := stat.MeanStdDev(radii, nil)
	spacing := float64(vol.Spacing().X)
	if d := mean - r; d > spacing/4 || d < -spacing/4 {
		t.Errorf("mean vertex radius %g, want %g within %g", mean, r, spacing/4)
	}
	if std > spacing/4 {
		t.Errorf("vertex radius standard deviation %g exceeds %g", std, spacing/4)
	}
	if lo, hi := floats.Min(radii), floats.Max(radii); hi-r > spacing || r-lo > spacing {
		t.Errorf("vertex radii span [%g, %g], want within one sample spacing %g of %g", lo, hi, spacing, r)
	}
	if math32.Abs(mesh.Radius()-math32.Sqrt(3)) > float32(2*spacing) {
		t.Errorf("bounding radius %g, want about %g", mesh.Radius(), math32.Sqrt(3))
	}
}

func TestBoxFidelity(t *testing.T) {
	box, err := gleval.NewBox(1, 0.6, 0.8, 0)
	if err != nil {
		t.Fatal(err)
	}
	bb := ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: 1.5, Y: 1.5, Z: 1.5})
	vol, err := isosurface.SampleSDF(context.Background(), box, bb, 31, 31, 31, isosurface.SampleConfig{})
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	got := mesh.Size()
	want := ms3.Vec{X: 1, Y: 0.6, Z: 0.8}
	if !ms3.EqualElem(got, want, vol.Spacing().X) {
		t.Errorf("box mesh size %v, want %v", got, want)
	}
	checkClosed(t, "box", mesh)
}

func TestSubCellFeatureVanishes(t *testing.T) {
	// A box smaller than a grid cell placed between samples leaves no
	// sample inside the surface.
	box, err := gleval.NewBox(0.05, 0.05, 0.05, 0)
	if err != nil {
		t.Fatal(err)
	}
	bb := ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: 2, Y: 2, Z: 2})
	vol, err := isosurface.SampleSDF(context.Background(), box, bb, 10, 10, 10, isosurface.SampleConfig{})
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.Len() != 0 || len(mesh.Vertices) != 0 {
		t.Fatalf("want empty mesh, got %d triangles", mesh.Len())
	}
}

func TestIsovalueOffset(t *testing.T) {
	vol := sphereVolume(t, 1, -2.2, 2.2, 30)
	mesh, err := vol.Mesh(isosurface.Config{Isovalue: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	spacing := vol.Spacing().X
	for _, v := range mesh.Vertices {
		if r := ms3.Norm(v); math32.Abs(r-1.5) > spacing {
			t.Fatalf("vertex %v at radius %g, want 1.5", v, r)
		}
	}
	checkClosed(t, "iso 0.5", mesh)
}

func TestOrientation(t *testing.T) {
	vol := sphereVolume(t, 1, -1.5, 1.5, 24)
	mesh, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	var outward, inward int
	for i := 0; i < mesh.Len(); i++ {
		tri := mesh.Triangle(i)
		n := tri.Normal()
		if ms3.Norm(n) < 1e-9 {
			continue
		}
		centroid := ms3.Scale(1.0/3, ms3.Add(tri[0], ms3.Add(tri[1], tri[2])))
		// Windings face the side of larger field values.
		if ms3.Dot(n, centroid) > 0 {
			outward++
		} else {
			inward++
		}
	}
	if inward != 0 {
		t.Errorf("%d of %d triangles wound inward", inward, outward+inward)
	}
	for i, n := range mesh.Normals {
		// Accumulated normals point towards decreasing field values.
		if ms3.Dot(n, mesh.Vertices[i]) >= 0 {
			t.Fatalf("normal %d %v does not point into the sphere", i, n)
		}
	}
}

func TestEmptyAndFullFields(t *testing.T) {
	for _, value := range []float32{-1, 1} {
		vol := isosurface.NewVolume(ms3.Box{Max: ms3.Vec{X: 1, Y: 1, Z: 1}}, 6, 5, 4)
		for i := range vol.Data {
			vol.Data[i] = value
		}
		mesh, err := isosurface.Extract(vol, isosurface.Config{})
		if err != nil {
			t.Fatal(err)
		}
		if mesh.Len() != 0 || len(mesh.Vertices) != 0 || len(mesh.Normals) != 0 {
			t.Errorf("uniform field %g produced %d triangles", value, mesh.Len())
		}
	}
}

func TestSmallGrids(t *testing.T) {
	for _, test := range []struct {
		nx, ny, nz int
		step       int
		wantEmpty  bool
	}{
		{nx: 1, ny: 1, nz: 1, step: 1, wantEmpty: true},
		{nx: 1, ny: 5, nz: 5, step: 1, wantEmpty: true},
		{nx: 5, ny: 5, nz: 1, step: 1, wantEmpty: true},
		{nx: 2, ny: 2, nz: 2, step: 1},
		{nx: 2, ny: 2, nz: 2, step: 2, wantEmpty: true},
		{nx: 3, ny: 3, nz: 3, step: 2},
		{nx: 3, ny: 3, nz: 3, step: 3, wantEmpty: true},
		{nx: 0, ny: 0, nz: 0, step: 1, wantEmpty: true},
	} {
		vol := &isosurface.Volume{NX: test.nx, NY: test.ny, NZ: test.nz, Data: make([]float32, test.nx*test.ny*test.nz)}
		for i := range vol.Data {
			vol.Data[i] = 1
		}
		if len(vol.Data) > 0 {
			vol.Data[0] = -1
		}
		mesh, err := isosurface.Extract(vol, isosurface.Config{Step: test.step})
		if err != nil {
			t.Fatalf("%dx%dx%d step %d: %s", test.nx, test.ny, test.nz, test.step, err)
		}
		if empty := mesh.Len() == 0; empty != test.wantEmpty {
			t.Errorf("%dx%dx%d step %d: got %d triangles, want empty=%v", test.nx, test.ny, test.nz, test.step, mesh.Len(), test.wantEmpty)
		}
	}
}

// dimsGrid reports arbitrary dimensions and is never sampled.
type dimsGrid struct{ nx, ny, nz int }

func (g dimsGrid) Dims() (int, int, int)   { return g.nx, g.ny, g.nz }
func (g dimsGrid) At(x, y, z int) float32 { panic("sampled a grid with no cubes") }

func TestDegenerateDims(t *testing.T) {
	for _, test := range []dimsGrid{
		{nx: -10, ny: 5, nz: 1},
		{nx: 5, ny: -1, nz: 5},
		{nx: 4, ny: 4, nz: -4},
		{nx: -1, ny: -1, nz: -1},
		{nx: 0, ny: 0, nz: 0},
		{nx: 0, ny: 8, nz: 8},
	} {
		mesh, err := isosurface.Extract(test, isosurface.Config{})
		if err != nil {
			t.Fatalf("%+v: %s", test, err)
		}
		if mesh.Len() != 0 || len(mesh.Vertices) != 0 {
			t.Errorf("%+v: got %d triangles, want none", test, mesh.Len())
		}
	}
}

func TestNilVolume(t *testing.T) {
	var vol *isosurface.Volume
	mesh, err := isosurface.Extract(vol, isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.Len() != 0 {
		t.Errorf("nil volume produced %d triangles", mesh.Len())
	}
	_, err = vol.Mesh(isosurface.Config{})
	if !errors.Is(err, isosurface.ErrNilGrid) {
		t.Errorf("got error %v, want %v", err, isosurface.ErrNilGrid)
	}
}

func TestInvalidConfig(t *testing.T) {
	vol := sphereVolume(t, 1, -2, 2, 8)
	for _, test := range []struct {
		g    isosurface.Grid
		cfg  isosurface.Config
		want error
	}{
		{g: nil, want: isosurface.ErrNilGrid},
		{g: vol, cfg: isosurface.Config{Step: -1}, want: isosurface.ErrInvalidStep},
		{g: vol, cfg: isosurface.Config{Isovalue: math32.NaN()}, want: isosurface.ErrInvalidIsovalue},
		{g: vol, cfg: isosurface.Config{Isovalue: math32.Inf(1)}, want: isosurface.ErrInvalidIsovalue},
	} {
		_, err := isosurface.Extract(test.g, test.cfg)
		if !errors.Is(err, test.want) {
			t.Errorf("got error %v, want %v", err, test.want)
		}
	}
}

func TestProgress(t *testing.T) {
	for _, step := range []int{1, 2, 3} {
		vol := sphereVolume(t, 1, -2, 2, 13)
		var got []float32
		_, err := isosurface.Extract(vol, isosurface.Config{
			Step:     step,
			Progress: func(f float32) { got = append(got, f) },
		})
		if err != nil {
			t.Fatal(err)
		}
		wantCalls := (13-1)/step
		if len(got) != wantCalls {
			t.Errorf("step %d: got %d progress calls, want %d", step, len(got), wantCalls)
		}
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				t.Fatalf("step %d: progress decreased %v", step, got)
			}
		}
		if len(got) > 0 && got[len(got)-1] != 1 {
			t.Errorf("step %d: final progress %g, want 1", step, got[len(got)-1])
		}
		for _, f := range got {
			if f < 0 || f > 1 {
				t.Fatalf("step %d: progress %g out of range", step, f)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	sdf, err := gleval.NewTorus(1, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	bb := ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: 3, Y: 3, Z: 1.2})
	var sums []uint64
	for _, cfg := range []isosurface.SampleConfig{{Workers: 1}, {Workers: 3, BatchSize: 100}, {}} {
		vol, err := isosurface.SampleSDF(context.Background(), sdf, bb, 33, 31, 15, cfg)
		if err != nil {
			t.Fatal(err)
		}
		mesh, err := isosurface.Extract(vol, isosurface.Config{})
		if err != nil {
			t.Fatal(err)
		}
		checkClosed(t, "torus", mesh)
		sums = append(sums, mesh.Checksum())
	}
	for _, sum := range sums[1:] {
		if sum != sums[0] {
			t.Fatalf("extraction not deterministic: checksums %x", sums)
		}
	}
}

func TestNoDuplicateVertices(t *testing.T) {
	vol := sphereVolume(t, 1, -1.3, 1.3, 25)
	mesh, err := isosurface.Extract(vol, isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[ms3.Vec]int, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		if j, ok := seen[v]; ok {
			t.Fatalf("vertices %d and %d share position %v", j, i, v)
		}
		seen[v] = i
	}
	// Every vertex lies on a grid edge crossed by the surface.
	crossings := 0
	nx, ny, nz := vol.Dims()
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				in := vol.At(x, y, z) > 0
				if x+1 < nx && (vol.At(x+1, y, z) > 0) != in {
					crossings++
				}
				if y+1 < ny && (vol.At(x, y+1, z) > 0) != in {
					crossings++
				}
				if z+1 < nz && (vol.At(x, y, z+1) > 0) != in {
					crossings++
				}
			}
		}
	}
	if crossings != len(mesh.Vertices) {
		t.Errorf("got %d vertices for %d edge crossings", len(mesh.Vertices), crossings)
	}
}

// TestRandomFieldsClosed exercises ambiguous configurations of every class.
// Boundary samples are kept outside the surface so every surface is closed.
func TestRandomFieldsClosed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 9
	for trial := 0; trial < 40; trial++ {
		vol := isosurface.NewVolume(ms3.Box{Max: ms3.Vec{X: 1, Y: 1, Z: 1}}, n, n, n)
		for z := 0; z < n; z++ {
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					v := float32(rng.Float64()*2 - 1)
					if x == 0 || y == 0 || z == 0 || x == n-1 || y == n-1 || z == n-1 {
						v = 1
					}
					vol.Set(x, y, z, v)
				}
			}
		}
		mesh, err := isosurface.Extract(vol, isosurface.Config{})
		if err != nil {
			t.Fatal(err)
		}
		if mesh.Len() == 0 {
			t.Fatalf("trial %d: empty mesh", trial)
		}
		checkClosed(t, "random", mesh)
		if t.Failed() {
			t.Fatalf("trial %d failed", trial)
		}
	}
}

func TestExtractGridSpace(t *testing.T) {
	vol := sphereVolume(t, 1, -2, 2, 9)
	mesh, err := isosurface.Extract(vol, isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	bb := mesh.Bounds()
	if bb.Min.X < 0 || bb.Min.Y < 0 || bb.Min.Z < 0 || bb.Max.X > 8 || bb.Max.Y > 8 || bb.Max.Z > 8 {
		t.Fatalf("grid space bounds %v outside grid", bb)
	}
	world, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	mesh.Transform(vol.WorldMatrix())
	if mesh.Checksum() != world.Checksum() {
		t.Fatal("Volume.Mesh differs from Extract followed by Transform")
	}
}

// checkClosed verifies every directed edge is traversed once and its
// reverse is traversed by a neighboring triangle.
func checkClosed(t *testing.T, name string, mesh *isosurface.Mesh) {
	t.Helper()
	if len(mesh.Faces)%3 != 0 {
		t.Fatalf("%s: face index count %d not a multiple of 3", name, len(mesh.Faces))
	}
	if len(mesh.Normals) != len(mesh.Vertices) {
		t.Fatalf("%s: %d normals for %d vertices", name, len(mesh.Normals), len(mesh.Vertices))
	}
	edges := make(map[[2]int]int, len(mesh.Faces))
	used := make([]bool, len(mesh.Vertices))
	for i := 0; i < len(mesh.Faces); i += 3 {
		f := mesh.Faces[i : i+3]
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			t.Fatalf("%s: triangle %d repeats a vertex %v", name, i/3, f)
		}
		for j := 0; j < 3; j++ {
			if f[j] < 0 || f[j] >= len(mesh.Vertices) {
				t.Fatalf("%s: face index %d out of range", name, f[j])
			}
			used[f[j]] = true
			edges[[2]int{f[j], f[(j+1)%3]}]++
		}
	}
	for e, count := range edges {
		if count != 1 {
			t.Errorf("%s: directed edge %v used %d times", name, e, count)
			return
		}
		if edges[[2]int{e[1], e[0]}] != 1 {
			t.Errorf("%s: edge %v has no opposite", name, e)
			return
		}
	}
	for i, u := range used {
		if !u {
			t.Errorf("%s: vertex %d unreferenced", name, i)
			return
		}
	}
}
