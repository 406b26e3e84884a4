package isosurface

import (
	"math"
	"testing"
)

// edgeKey identifies a grid edge by its lower end point and axis.
type edgeKey struct {
	x, y, z int
	axis    int
}

func globalEdge(x, y, z, step, edge int) edgeKey {
	a, b := edgeEnds[edge][0], edgeEnds[edge][1]
	lo := [3]int{int(min(a[0], b[0])), int(min(a[1], b[1])), int(min(a[2], b[2]))}
	axis := 0
	switch {
	case a[1] != b[1]:
		axis = 1
	case a[2] != b[2]:
		axis = 2
	}
	return edgeKey{x: x + step*lo[0], y: y + step*lo[1], z: z + step*lo[2], axis: axis}
}

// TestFaceLayersShareEdges walks the layer ring the way the marcher does and
// checks that every physical edge maps to exactly one cache slot while the
// slot is live.
func TestFaceLayersShareEdges(t *testing.T) {
	for _, test := range []struct {
		nx, ny, nz int
		step       int
	}{
		{nx: 5, ny: 4, nz: 4, step: 1},
		{nx: 7, ny: 9, nz: 7, step: 2},
		{nx: 10, ny: 7, nz: 8, step: 3},
	} {
		fl := makeFaceLayers(test.nx, test.ny)
		st := test.step
		owner := make(map[*int]edgeKey)
		slots := make(map[edgeKey]*int)
		for z := 0; z+st < test.nz; z += st {
			fl.advance()
			// Only edges of the previous upper face survive an advance.
			for k, p := range slots {
				if k.z != z || k.axis == 2 {
					delete(slots, k)
					delete(owner, p)
				}
			}
			for y := 0; y+st < test.ny; y += st {
				for x := 0; x+st < test.nx; x += st {
					c := cube{x: x, y: y, z: z, step: st}
					for edge := 0; edge < 12; edge++ {
						k := globalEdge(x, y, z, st, edge)
						p := fl.slot(&c, edge)
						if prev, ok := slots[k]; ok && prev != p {
							t.Fatalf("step %d: edge %+v maps to two slots", st, k)
						}
						if o, ok := owner[p]; ok && o != k {
							t.Fatalf("step %d: edges %+v and %+v share a slot", st, o, k)
						}
						slots[k] = p
						owner[p] = k
					}
					center := fl.slot(&c, centerEdge)
					if _, ok := owner[center]; ok {
						t.Fatalf("step %d: center of cube (%d,%d,%d) collides with an edge slot", st, x, y, z)
					}
				}
			}
		}
	}
}

func TestFaceLayersAdvanceClears(t *testing.T) {
	fl := makeFaceLayers(3, 3)
	fl.advance()
	c := cube{step: 1}
	*fl.slot(&c, 0) = 7 // lower face
	*fl.slot(&c, 4) = 8 // upper face
	fl.advance()
	if got := *fl.slot(&c, 0); got != 8 {
		t.Errorf("upper face entry should become the lower face entry, got %d", got)
	}
	if got := *fl.slot(&c, 4); got != unset {
		t.Errorf("new upper face should be cleared, got %d", got)
	}
}

func TestFaceLayersHoldLargeIndices(t *testing.T) {
	fl := makeFaceLayers(2, 2)
	fl.advance()
	c := cube{x: 1, y: 1, step: 1}
	const big = math.MaxInt - 1
	*fl.slot(&c, 4) = big
	*fl.slot(&c, centerEdge) = big - 1
	if got := *fl.slot(&c, 4); got != big {
		t.Errorf("upper face entry %d, want %d", got, big)
	}
	fl.advance()
	if got := *fl.slot(&c, 0); got != big {
		t.Errorf("entry after advance %d, want %d", got, big)
	}
}

func TestWeightedInterpolation(t *testing.T) {
	// Inverse distance weights reduce to linear interpolation of the zero
	// crossing along an edge.
	samples := [8]float32{-1, 3, 3, 3, 3, 3, 3, 3}
	c := newCube(0, 2, 3, 4, 2, &samples)
	mb := newMeshBuilder(8, 8, 0)
	mb.layers.advance()
	mb.prepare(&c)
	mb.addEdgeVertex(0)
	want := [3]float32{2 + 2*0.25, 3, 4}
	got := mb.vertices[0]
	if d := got.X - want[0]; d > 1e-5 || d < -1e-5 || got.Y != want[1] || got.Z != want[2] {
		t.Fatalf("edge 0 vertex at %v, want %v", got, want)
	}
	n := mb.normals[0]
	if n.X >= 0 {
		t.Errorf("normal %v should point towards decreasing values along x", n)
	}
	// A second reference reuses the vertex and accumulates the gradient.
	mb.addEdgeVertex(0)
	if len(mb.vertices) != 1 || len(mb.faces) != 2 || mb.faces[1] != 0 {
		t.Fatalf("repeated edge created a new vertex: %d vertices", len(mb.vertices))
	}
	if d := mb.normals[0].X - 2*n.X; d > 1e-5 || d < -1e-5 {
		t.Errorf("normal not accumulated: %v then %v", n, mb.normals[0])
	}
}
