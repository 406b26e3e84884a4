package isosurface

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// epsilon guards divisions against exact zero crossings and flat saddles.
const epsilon = 1e-7

// cube is an immutable snapshot of a single grid cell with the isovalue
// already subtracted from its samples. Corners are numbered the Lewiner way:
//
//	c0=(0,0,0) c1=(1,0,0) c2=(1,1,0) c3=(0,1,0)
//	c4=(0,0,1) c5=(1,0,1) c6=(1,1,1) c7=(0,1,1)
//
// which swaps corners 2,3 and 6,7 with respect to the bit order used by
// [cube.bitOrder].
type cube struct {
	v     [8]float32
	x     int
	y     int
	z     int
	step  int
	index uint8
}

// newCube subtracts iso from the corner samples and computes the
// classification index. Bit i of the index is set when corner i lies
// strictly above the isovalue.
func newCube(iso float32, x, y, z, step int, samples *[8]float32) cube {
	c := cube{x: x, y: y, z: z, step: step}
	for i, s := range samples {
		c.v[i] = s - iso
		if c.v[i] > 0 {
			c.index |= 1 << i
		}
	}
	return c
}

// bitOrder returns corner values ordered by their (dx,dy,dz) offset bits,
// so the value at offset (dx,dy,dz) is found at index dz*4+dy*2+dx.
func (c *cube) bitOrder() [8]float32 {
	v := &c.v
	return [8]float32{v[0], v[1], v[3], v[2], v[4], v[5], v[7], v[6]}
}

// gradients returns the eight central difference gradients of the cube.
// The i'th gradient is indexed as the i'th element of bitOrder
// when looked up from cube edges, and as the i'th Lewiner corner when
// weighting the center vertex. Both usages are load bearing.
func (c *cube) gradients() [8]ms3.Vec {
	v := &c.v
	return [8]ms3.Vec{
		{X: v[0] - v[1], Y: v[0] - v[3], Z: v[0] - v[4]},
		{X: v[0] - v[1], Y: v[1] - v[2], Z: v[1] - v[5]},
		{X: v[3] - v[2], Y: v[1] - v[2], Z: v[2] - v[6]},
		{X: v[3] - v[2], Y: v[0] - v[3], Z: v[3] - v[7]},
		{X: v[4] - v[5], Y: v[4] - v[7], Z: v[0] - v[4]},
		{X: v[4] - v[5], Y: v[5] - v[6], Z: v[1] - v[5]},
		{X: v[7] - v[6], Y: v[5] - v[6], Z: v[2] - v[6]},
		{X: v[7] - v[6], Y: v[4] - v[7], Z: v[3] - v[7]},
	}
}

// spread is the range of corner values including the isovalue itself.
func (c *cube) spread() float32 {
	vmax, vmin := float32(0), float32(0)
	for _, v := range c.v {
		vmax = math32.Max(vmax, v)
		vmin = math32.Min(vmin, v)
	}
	return vmax - vmin
}

// origin returns the cube's lowest corner in grid index space.
func (c *cube) origin() ms3.Vec {
	return ms3.Vec{X: float32(c.x), Y: float32(c.y), Z: float32(c.z)}
}

func weight(v float32) float32 {
	return 1 / (epsilon + math32.Abs(v))
}

// lewinerOffsets are the cube-local offsets of each Lewiner corner.
var lewinerOffsets = [8]ms3.Vec{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 0, Y: 1, Z: 1},
}

// edgeEnds lists per cube edge the (dx,dy,dz) offsets of its two end corners.
// Edge vertices are interpolated between these.
var edgeEnds = [12][2][3]uint8{
	0:  {{0, 0, 0}, {1, 0, 0}},
	1:  {{1, 0, 0}, {1, 1, 0}},
	2:  {{1, 1, 0}, {0, 1, 0}},
	3:  {{0, 1, 0}, {0, 0, 0}},
	4:  {{0, 0, 1}, {1, 0, 1}},
	5:  {{1, 0, 1}, {1, 1, 1}},
	6:  {{1, 1, 1}, {0, 1, 1}},
	7:  {{0, 1, 1}, {0, 0, 1}},
	8:  {{0, 0, 0}, {0, 0, 1}},
	9:  {{1, 0, 0}, {1, 0, 1}},
	10: {{1, 1, 0}, {1, 1, 1}},
	11: {{0, 1, 0}, {0, 1, 1}},
}
