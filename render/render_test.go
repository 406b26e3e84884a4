package render_test

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/obj"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/gleval"
	"github.com/soypat/isosurface/render"
	"gonum.org/v1/plot/cmpimg"
)

const (
	// imgDelta a normalized delta parameter to describe how close the matching
	// should be performed (imgDelta=0: perfect match, imgDelta=1, loose match)
	imgDelta     = 0
	benchQuality = 200
)

var background = fauxgl.HexColor("#FFF8E3")

type viewConfig struct {
	// what position (point) to look at
	lookat ms3.Vec
	// which way is up (direction)
	up ms3.Vec
	// where the camera/eye located at (point)
	eyepos ms3.Vec
	far    float64
	near   float64
}

var isoView = viewConfig{
	up:     ms3.Vec{Z: 1},
	eyepos: ms3.Vec{X: 3, Y: 3, Z: 3},
	near:   1,
	far:    10,
}

func TestRenderedSphereDeterministic(t *testing.T) {
	dir := t.TempDir()
	var pngs [2]string
	for i, workers := range []int{1, 4} {
		mesh := sampledMesh(t, "sphere", isosurface.SampleConfig{Workers: workers, BatchSize: 777})
		stlName := filepath.Join(dir, "sphere.stl")
		err := render.CreateSTL(stlName, render.NewMeshRenderer(mesh))
		if err != nil {
			t.Fatal(err)
		}
		pngs[i] = filepath.Join(dir, "sphere"+string(rune('a'+i))+".png")
		img := stlToPNG(t, stlName, pngs[i], isoView)
		r, g, b, _ := img.At(img.Bounds().Dx()/2, img.Bounds().Dy()/2).RGBA()
		br, bg, bb, _ := background.NRGBA().RGBA()
		if r == br && g == bg && b == bb {
			t.Fatal("sphere not visible at image center")
		}
	}
	if !equalImages(t, pngs[0], pngs[1]) {
		t.Fatal("renders of identical extractions differ")
	}
}

func TestRenderedShapesDiffer(t *testing.T) {
	dir := t.TempDir()
	var pngs []string
	for _, shape := range []string{"sphere", "torus"} {
		mesh := sampledMesh(t, shape, isosurface.SampleConfig{})
		stlName := filepath.Join(dir, shape+".stl")
		err := render.CreateSTL(stlName, render.NewMeshRenderer(mesh))
		if err != nil {
			t.Fatal(err)
		}
		png := filepath.Join(dir, shape+".png")
		stlToPNG(t, stlName, png, isoView)
		pngs = append(pngs, png)
	}
	if equalImages(t, pngs[0], pngs[1]) {
		t.Fatal("sphere and torus renders should differ")
	}
}

func sampledMesh(t testing.TB, shape string, cfg isosurface.SampleConfig) *isosurface.Mesh {
	t.Helper()
	var (
		sdf gleval.SDF3
		err error
	)
	switch shape {
	case "sphere":
		sdf, err = gleval.NewSphere(1)
	case "torus":
		sdf, err = gleval.NewTorus(1, 0.3)
	default:
		t.Fatalf("unknown shape %q", shape)
	}
	if err != nil {
		t.Fatal(err)
	}
	bb := sdf.Bounds()
	box := ms3.NewCenteredBox(bb.Center(), ms3.AddScalar(0.5, bb.Size()))
	vol, err := isosurface.SampleSDF(context.Background(), sdf, box, 40, 40, 40, cfg)
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := vol.Mesh(isosurface.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func stlToPNG(t testing.TB, stlName, outputname string, view viewConfig) image.Image {
	t.Helper()
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	const (
		width, height = 320, 240 // output width and height in pixels
		scale         = 2        // supersampling
		fovy          = 30       // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(float64(view.eyepos.X), float64(view.eyepos.Y), float64(view.eyepos.Z))
		center = fauxgl.V(float64(view.lookat.X), float64(view.lookat.Y), float64(view.lookat.Z))
		up     = fauxgl.V(float64(view.up.X), float64(view.up.Y), float64(view.up.Z))
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	rc := fauxgl.NewContext(width*scale, height*scale)
	rc.ClearColorBufferWith(background)
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.near, view.far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	rc.Shader = shader
	rc.DrawMesh(mesh)
	// downsample image for antialiasing
	img := resize.Resize(width, height, rc.Image(), resize.Bilinear)
	err = fauxgl.SavePNG(outputname, img)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func equalImages(t *testing.T, png1, png2 string) bool {
	b1, err := os.ReadFile(png1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(png2)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}

func BenchmarkSDFXBolt(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	output := filepath.Join(b.TempDir(), "sdfx_bolt.stl")
	object, _ := obj.Bolt(&obj.BoltParms{
		Thread:      "npt_1/2",
		Style:       "hex",
		Tolerance:   0.1,
		TotalLength: 20,
		ShankLength: 10,
	})
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkTorusSTL(b *testing.B) {
	output := filepath.Join(b.TempDir(), "torus.stl")
	torus, err := gleval.NewTorus(10, 3)
	if err != nil {
		b.Fatal(err)
	}
	bb := torus.Bounds()
	box := ms3.NewCenteredBox(bb.Center(), ms3.AddScalar(1, bb.Size()))
	for i := 0; i < b.N; i++ {
		vol, err := isosurface.SampleSDF(context.Background(), torus, box, benchQuality, benchQuality, benchQuality/3, isosurface.SampleConfig{})
		if err != nil {
			b.Fatal(err)
		}
		mesh, err := vol.Mesh(isosurface.Config{})
		if err != nil {
			b.Fatal(err)
		}
		err = render.CreateSTL(output, render.NewMeshRenderer(mesh))
		if err != nil {
			b.Fatal(err)
		}
	}
}
