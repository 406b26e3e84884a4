package isosurface

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface/internal/lut"
)

const (
	slotsPerColumn = 4
	// centerEdge identifies the cube's interior vertex in tilings.
	centerEdge = 12
	unset      = -1
)

// faceLayers is a ring buffer of vertex indices two z-slices deep, keyed by
// (x,y) grid column and edge slot. The walker advances one slice at a time;
// a slice's entries are evicted once the walker has moved two slices past
// it because no later cube can share an edge with it.
//
// Slots 0 and 1 hold the x and y directed edges lying on a z plane, slot 2
// the z directed edge rising from the column and slot 3 a cube's center vertex.
type faceLayers struct {
	nx     int
	layers [2][]int
	// cur indexes the layer containing the cube's lower z face.
	cur int
}

func makeFaceLayers(nx, ny int) faceLayers {
	n := nx * ny * slotsPerColumn
	fl := faceLayers{nx: nx}
	for i := range fl.layers {
		fl.layers[i] = make([]int, n)
	}
	// The upper layer becomes the lower one on the first advance.
	fl.clear(1)
	return fl
}

// advance moves the ring one z-slice up. The previous upper layer becomes the
// lower layer and the evicted layer is cleared for reuse as the upper one.
func (fl *faceLayers) advance() {
	fl.cur ^= 1
	fl.clear(fl.cur ^ 1)
}

func (fl *faceLayers) clear(layer int) {
	l := fl.layers[layer]
	for i := range l {
		l[i] = unset
	}
}

// slot returns the cache entry for the vertex lying on edge of cube c.
// Edges 0-3 live on the lower z face, 4-7 on the upper one and 8-11 on the
// vertical edges. Edges belonging to neighboring columns are offset by step.
func (fl *faceLayers) slot(c *cube, edge int) *int {
	nx, st := fl.nx, c.step
	i := nx*c.y + c.x
	layer := fl.cur
	j := 0
	switch {
	case edge < 8:
		if edge >= 4 {
			edge -= 4
			layer ^= 1
		}
		switch edge {
		case 1:
			i += st
			j = 1
		case 2:
			i += nx * st
		case 3:
			j = 1
		}
	case edge < centerEdge:
		j = 2
		switch edge {
		case 9:
			i += st
		case 10:
			i += nx*st + st
		case 11:
			i += nx * st
		}
	default:
		j = 3
	}
	return &fl.layers[layer][slotsPerColumn*i+j]
}

// meshBuilder owns the growing output buffers and emits triangles for one
// cube at a time, sharing vertices between neighboring cubes via faceLayers.
type meshBuilder struct {
	layers   faceLayers
	vertices []ms3.Vec
	normals  []ms3.Vec
	faces    []int

	// Per cube working state, valid after prepare.
	c         *cube
	bitValues [8]float32
	grads     [8]ms3.Vec

	// center vertex, computed lazily at most once per cube.
	hasCenter  bool
	center     ms3.Vec
	centerGrad ms3.Vec
}

func newMeshBuilder(nx, ny, capHint int) *meshBuilder {
	return &meshBuilder{
		layers:   makeFaceLayers(nx, ny),
		vertices: make([]ms3.Vec, 0, capHint),
		normals:  make([]ms3.Vec, 0, capHint),
		faces:    make([]int, 0, 2*capHint),
	}
}

// prepare readies the builder to emit triangles for c.
func (mb *meshBuilder) prepare(c *cube) {
	mb.c = c
	mb.bitValues = c.bitOrder()
	mb.grads = c.gradients()
	mb.hasCenter = false
}

// addTriangles resolves every edge of the first n triangles of tiling to a
// vertex index and appends the triangles.
func (mb *meshBuilder) addTriangles(tiling []lut.Triangle, n int) {
	for _, tri := range tiling[:n] {
		for _, edge := range tri {
			mb.addEdgeVertex(int(edge))
		}
	}
}

func (mb *meshBuilder) addEdgeVertex(edge int) {
	slot := mb.layers.slot(mb.c, edge)
	if edge == centerEdge {
		if !mb.hasCenter {
			mb.computeCenter()
		}
		idx := *slot
		if idx == unset {
			idx = mb.addVertex(mb.center)
			*slot = idx
		}
		mb.faces = append(mb.faces, idx)
		mb.normals[idx] = ms3.Add(mb.normals[idx], mb.centerGrad)
		return
	}

	ends := &edgeEnds[edge]
	i1 := bitIndex(ends[0])
	i2 := bitIndex(ends[1])
	w1 := weight(mb.bitValues[i1])
	w2 := weight(mb.bitValues[i2])
	idx := *slot
	if idx == unset {
		ff := w1 + w2
		off := ms3.Add(ms3.Scale(w1, offsetVec(ends[0])), ms3.Scale(w2, offsetVec(ends[1])))
		pos := ms3.Add(mb.c.origin(), ms3.Scale(float32(mb.c.step)/ff, off))
		idx = mb.addVertex(pos)
		*slot = idx
	}
	mb.faces = append(mb.faces, idx)
	// Gradients are looked up by bit index, not by Lewiner corner.
	n := mb.normals[idx]
	n = ms3.Add(n, ms3.Scale(w1, mb.grads[i1]))
	n = ms3.Add(n, ms3.Scale(w2, mb.grads[i2]))
	mb.normals[idx] = n
}

func (mb *meshBuilder) addVertex(pos ms3.Vec) int {
	mb.vertices = append(mb.vertices, pos)
	mb.normals = append(mb.normals, ms3.Vec{})
	return len(mb.vertices) - 1
}

// computeCenter places the interior vertex at the weighted mean of all eight
// corners and accumulates the matching weighted gradient.
func (mb *meshBuilder) computeCenter() {
	c := mb.c
	var ff float32
	var f, g ms3.Vec
	for i, v := range c.v {
		w := weight(v)
		ff += w
		f = ms3.Add(f, ms3.Scale(w, lewinerOffsets[i]))
		g = ms3.Add(g, ms3.Scale(w, mb.grads[i]))
	}
	mb.center = ms3.Add(c.origin(), ms3.Scale(float32(c.step)/ff, f))
	mb.centerGrad = g
	mb.hasCenter = true
}

func bitIndex(off [3]uint8) int {
	return int(off[2])*4 + int(off[1])*2 + int(off[0])
}

func offsetVec(off [3]uint8) ms3.Vec {
	return ms3.Vec{X: float32(off[0]), Y: float32(off[1]), Z: float32(off[2])}
}
