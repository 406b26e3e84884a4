package isosurface

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface/gleval"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultBatchSize is the number of positions evaluated per SDF call when
// sampling a volume.
const DefaultBatchSize = 2 * 1024

// SampleConfig controls volume sampling. The zero value is ready to use.
type SampleConfig struct {
	// BatchSize is the number of positions per SDF evaluation.
	// Zero means DefaultBatchSize.
	BatchSize int
	// Workers is the number of goroutines evaluating batches concurrently.
	// Zero means runtime.GOMAXPROCS(0). Each worker evaluates with its own
	// gleval.VecPool.
	Workers int
}

// SampleSDF samples sdf on a nx×ny×nz grid spanning box. Sample (i,j,k) is
// taken at box.Min + (i,j,k)·box.Size()/(n-1).
//
// The SDF is evaluated from several goroutines at once, each passing its own
// *gleval.VecPool as userData. Implementations must not hold state between
// calls.
func SampleSDF(ctx context.Context, sdf gleval.SDF3, box ms3.Box, nx, ny, nz int, cfg SampleConfig) (*Volume, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("invalid volume dimensions %dx%dx%d", nx, ny, nz)
	}
	vol := NewVolume(box, nx, ny, nz)
	err := vol.Sample(ctx, sdf, cfg)
	if err != nil {
		return nil, err
	}
	return vol, nil
}

// SampleFunc samples a point-wise field. See [SampleSDF].
func SampleFunc(ctx context.Context, fn func(p ms3.Vec) float32, box ms3.Box, nx, ny, nz int, cfg SampleConfig) (*Volume, error) {
	return SampleSDF(ctx, gleval.Func(box, fn), box, nx, ny, nz, cfg)
}

// SDF3 is a double precision distance field evaluated one point at a time.
type SDF3 interface {
	Evaluate(p r3.Vec) float64
	Bounds() r3.Box
}

// SampleSDF64 samples a double precision field over its own bounds.
// Samples are rounded to single precision.
func SampleSDF64(ctx context.Context, sdf SDF3, nx, ny, nz int, cfg SampleConfig) (*Volume, error) {
	bb := sdf.Bounds()
	box := ms3.Box{
		Min: ms3.Vec{X: float32(bb.Min.X), Y: float32(bb.Min.Y), Z: float32(bb.Min.Z)},
		Max: ms3.Vec{X: float32(bb.Max.X), Y: float32(bb.Max.Y), Z: float32(bb.Max.Z)},
	}
	fn := func(p ms3.Vec) float32 {
		return float32(sdf.Evaluate(r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}))
	}
	return SampleFunc(ctx, fn, box, nx, ny, nz, cfg)
}

// Sample overwrites the volume's samples with the values of sdf at each
// sample position. See [SampleSDF].
func (v *Volume) Sample(ctx context.Context, sdf gleval.SDF3, cfg SampleConfig) error {
	if sdf == nil {
		return errors.New("nil SDF")
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	total := len(v.Data)
	numBatches := (total + batch - 1) / batch
	workers = min(workers, numBatches)

	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan int)
	g.Go(func() error {
		defer close(batches)
		for ib := 0; ib < numBatches; ib++ {
			select {
			case batches <- ib:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			pos := make([]ms3.Vec, batch)
			dist := make([]float32, batch)
			var vp gleval.VecPool
			for ib := range batches {
				start := ib * batch
				end := min(total, start+batch)
				n := end - start
				v.positions(pos[:n], start)
				err := sdf.Evaluate(pos[:n], dist[:n], &vp)
				if err != nil {
					return fmt.Errorf("evaluating batch %d: %w", ib, err)
				}
				err = vp.AssertAllReleased()
				if err != nil {
					return err
				}
				copy(v.Data[start:end], dist[:n])
			}
			return nil
		})
	}
	return g.Wait()
}

// positions fills dst with the world positions of consecutive samples
// starting at linear sample index start. The explicit float32 conversions
// forbid fused multiply-add so results match [Volume.Position] bit for bit.
func (v *Volume) positions(dst []ms3.Vec, start int) {
	d := v.Spacing()
	origin := v.Box.Min
	nx, ny := v.NX, v.NY
	for i := range dst {
		idx := start + i
		ix := idx % nx
		iy := (idx / nx) % ny
		iz := idx / (nx * ny)
		dst[i] = ms3.Vec{
			X: origin.X + float32(float32(ix)*d.X),
			Y: origin.Y + float32(float32(iy)*d.Y),
			Z: origin.Z + float32(float32(iz)*d.Z),
		}
	}
}
