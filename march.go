package isosurface

import (
	"errors"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/soypat/isosurface/internal/lut"
)

var (
	ErrNilGrid         = errors.New("nil grid")
	ErrInvalidStep     = errors.New("step must be a positive integer")
	ErrInvalidIsovalue = errors.New("isovalue must be finite")
)

// Config parametrizes an extraction. The zero value extracts the surface at
// isovalue 0 with a step of one grid sample.
type Config struct {
	// Isovalue is the field value of the extracted surface.
	Isovalue float32
	// Step is the stride in samples between visited cube corners. Larger
	// steps produce coarser meshes. Zero is interpreted as 1.
	Step int
	// Progress, if not nil, is called after each z-slice with the fraction
	// of slices processed, a value in [0, 1].
	Progress func(fraction float32)
	// Logger receives reports of table invariant violations. If nil
	// slog.Default is used.
	Logger *slog.Logger
}

func (cfg Config) validate() error {
	if cfg.Step < 0 {
		return ErrInvalidStep
	}
	if math32.IsNaN(cfg.Isovalue) || math32.IsInf(cfg.Isovalue, 0) {
		return ErrInvalidIsovalue
	}
	return nil
}

// Extract runs Lewiner's marching cubes over g and returns the resulting
// mesh in grid index space, that is, a vertex at (i,j,k) lies on grid sample
// (i,j,k). Use [Mesh.Transform] to place the mesh in world space.
//
// Cubes are only visited when all their corners lie inside the grid. A grid
// too small to hold a single cube at the given step yields an empty mesh.
// Returned normals are accumulated field gradients and are not normalized.
func Extract(g Grid, cfg Config) (*Mesh, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	err := cfg.validate()
	if err != nil {
		return nil, err
	}
	m := newMarcher(g, cfg)
	m.march()
	return m.mesh(), nil
}

// marcher walks a grid cube by cube. It is single use.
type marcher struct {
	g    Grid
	iso  float32
	step int
	nx   int
	ny   int
	nz   int

	progress func(float32)
	log      *slog.Logger
	warnings int

	cube cube
	b    *meshBuilder
}

func newMarcher(g Grid, cfg Config) *marcher {
	nx, ny, nz := g.Dims()
	// Negative dimensions describe an empty grid.
	nx, ny, nz = max(nx, 0), max(ny, 0), max(nz, 0)
	step := cfg.Step
	if step == 0 {
		step = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	// Surfaces of smooth fields cross a number of cubes that scales with
	// the grid's area.
	capHint := 4 * (nx*ny + ny*nz + nx*nz) / (step * step)
	return &marcher{
		g:        g,
		iso:      cfg.Isovalue,
		step:     step,
		nx:       nx,
		ny:       ny,
		nz:       nz,
		progress: cfg.Progress,
		log:      log,
		b:        newMeshBuilder(nx, ny, capHint),
	}
}

func (m *marcher) march() {
	st := m.step
	nxBound := m.nx - 2*st
	nyBound := m.ny - 2*st
	nzBound := m.nz - 2*st
	at := m.g.At
	var samples [8]float32
	for z := -st; z < nzBound; {
		z += st
		zs := z + st
		m.b.layers.advance()
		for y := -st; y < nyBound; {
			y += st
			ys := y + st
			for x := -st; x < nxBound; {
				x += st
				xs := x + st
				samples = [8]float32{
					at(x, y, z), at(xs, y, z), at(xs, ys, z), at(x, ys, z),
					at(x, y, zs), at(xs, y, zs), at(xs, ys, zs), at(x, ys, zs),
				}
				m.cube = newCube(m.iso, x, y, z, st, &samples)
				cl, config := lut.Case(m.cube.index)
				if cl > 0 {
					m.dispatch(class(cl), config)
				}
			}
		}
		m.reportProgress(z, nzBound)
	}
}

func (m *marcher) reportProgress(z, nzBound int) {
	if m.progress == nil {
		return
	}
	frac := float32(1)
	if nzBound > 0 {
		frac = math32.Min(float32(z)/float32(nzBound), 1)
	}
	m.progress(frac)
}

func (m *marcher) mesh() *Mesh {
	return &Mesh{
		Vertices: m.b.vertices,
		Normals:  m.b.normals,
		Faces:    m.b.faces,
	}
}

func (m *marcher) warn(msg string, err error, cl class, config, subconfig int) {
	m.warnings++
	m.log.Warn("isosurface: "+msg,
		slog.String("err", err.Error()),
		slog.Int("class", int(cl)),
		slog.Int("config", config),
		slog.Int("subconfig", subconfig),
		slog.Int("x", m.cube.x), slog.Int("y", m.cube.y), slog.Int("z", m.cube.z),
	)
}
