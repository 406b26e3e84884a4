package gleval

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// NewSphere returns a sphere of radius r centered at the origin.
func NewSphere(r float32) (SDF3, error) {
	if r <= 0 {
		return nil, errors.New("zero or negative sphere radius")
	}
	return &sphere{r: r}, nil
}

type sphere struct {
	r float32
}

func (s *sphere) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	r := s.r
	for i, p := range pos {
		dist[i] = ms3.Norm(p) - r
	}
	return nil
}

func (s *sphere) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: -s.r, Y: -s.r, Z: -s.r},
		Max: ms3.Vec{X: s.r, Y: s.r, Z: s.r},
	}
}

// NewBox returns an axis aligned box of dimensions x,y,z centered at the
// origin with edges rounded by round.
func NewBox(x, y, z, round float32) (SDF3, error) {
	if round < 0 || round > x/2 || round > y/2 || round > z/2 {
		return nil, errors.New("invalid box rounding value")
	} else if x <= 0 || y <= 0 || z <= 0 {
		return nil, errors.New("zero or negative box dimension")
	}
	return &box{dims: ms3.Vec{X: x, Y: y, Z: z}, round: round}, nil
}

type box struct {
	dims  ms3.Vec
	round float32
}

func (b *box) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	d := ms3.Scale(0.5, b.dims)
	r := b.round
	for i, p := range pos {
		q := ms3.AddScalar(r, ms3.Sub(ms3.AbsElem(p), d))
		dist[i] = ms3.Norm(ms3.MaxElem(q, ms3.Vec{})) + math32.Min(math32.Max(q.X, math32.Max(q.Y, q.Z)), 0) - r
	}
	return nil
}

func (b *box) Bounds() ms3.Box {
	return ms3.NewCenteredBox(ms3.Vec{}, b.dims)
}

// NewCylinder returns a cylinder of radius r and height h with its axis along
// z, centered at the origin. rounding rounds the cap edges.
func NewCylinder(r, h, rounding float32) (SDF3, error) {
	if rounding < 0 || rounding >= r || rounding > h/2 {
		return nil, errors.New("invalid cylinder rounding")
	}
	if r <= 0 || h <= 0 {
		return nil, errors.New("zero or negative cylinder dimension")
	}
	return &cylinder{r: r, h: h, round: rounding}, nil
}

type cylinder struct {
	r     float32
	h     float32
	round float32
}

func (c *cylinder) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	h := c.h/2 - c.round
	ra := c.r
	rb := c.round
	for i, p := range pos {
		d1 := math32.Hypot(p.X, p.Y) - ra + rb
		d2 := math32.Abs(p.Z) - h
		dist[i] = math32.Min(math32.Max(d1, d2), 0) + math32.Hypot(math32.Max(d1, 0), math32.Max(d2, 0)) - rb
	}
	return nil
}

func (c *cylinder) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: -c.r, Y: -c.r, Z: -c.h / 2},
		Max: ms3.Vec{X: c.r, Y: c.r, Z: c.h / 2},
	}
}

// NewTorus returns a torus lying on the xy plane. greaterRadius is the
// distance from the origin to the center of the ring.
func NewTorus(greaterRadius, ringRadius float32) (SDF3, error) {
	if greaterRadius < 2*ringRadius {
		return nil, errors.New("too large torus ring radius")
	} else if greaterRadius <= 0 || ringRadius <= 0 {
		return nil, errors.New("invalid torus parameter")
	}
	return &torus{rRing: ringRadius, rGreater: greaterRadius}, nil
}

type torus struct {
	rRing    float32
	rGreater float32
}

func (t *torus) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	for i, p := range pos {
		q := math32.Hypot(p.X, p.Y) - t.rGreater
		dist[i] = math32.Hypot(q, p.Z) - t.rRing
	}
	return nil
}

func (t *torus) Bounds() ms3.Box {
	R := t.rRing + t.rGreater
	return ms3.Box{
		Min: ms3.Vec{X: -R, Y: -R, Z: -t.rRing},
		Max: ms3.Vec{X: R, Y: R, Z: t.rRing},
	}
}

// Union joins two fields. The result is not an exact distance inside the
// overlap.
func Union(a, b SDF3) SDF3 {
	return &union{s1: a, s2: b}
}

type union struct {
	s1, s2 SDF3
}

func (u *union) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	vp, err := GetVecPool(userData)
	if err != nil {
		return err
	}
	d2 := vp.Float.Acquire(len(dist))
	defer vp.Float.Release(d2)
	err = u.s1.Evaluate(pos, dist, userData)
	if err != nil {
		return err
	}
	err = u.s2.Evaluate(pos, d2, userData)
	if err != nil {
		return err
	}
	for i := range dist {
		dist[i] = math32.Min(dist[i], d2[i])
	}
	return nil
}

func (u *union) Bounds() ms3.Box {
	b1, b2 := u.s1.Bounds(), u.s2.Bounds()
	return ms3.Box{
		Min: ms3.Vec{X: math32.Min(b1.Min.X, b2.Min.X), Y: math32.Min(b1.Min.Y, b2.Min.Y), Z: math32.Min(b1.Min.Z, b2.Min.Z)},
		Max: ms3.MaxElem(b1.Max, b2.Max),
	}
}

// Translate moves s by (x,y,z).
func Translate(s SDF3, x, y, z float32) SDF3 {
	return &translate{s: s, p: ms3.Vec{X: x, Y: y, Z: z}}
}

type translate struct {
	s SDF3
	p ms3.Vec
}

func (t *translate) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	vp, err := GetVecPool(userData)
	if err != nil {
		return err
	}
	transformed := vp.V3.Acquire(len(pos))
	defer vp.V3.Release(transformed)
	T := t.p
	for i, p := range pos {
		transformed[i] = ms3.Sub(p, T)
	}
	return t.s.Evaluate(transformed, dist, userData)
}

func (t *translate) Bounds() ms3.Box {
	bb := t.s.Bounds()
	return ms3.Box{Min: ms3.Add(bb.Min, t.p), Max: ms3.Add(bb.Max, t.p)}
}

// Func adapts a point-wise distance function bounded by bb to an SDF3.
func Func(bb ms3.Box, fn func(p ms3.Vec) float32) SDF3 {
	return &pointFunc{bb: bb, fn: fn}
}

type pointFunc struct {
	bb ms3.Box
	fn func(ms3.Vec) float32
}

func (f *pointFunc) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	for i, p := range pos {
		dist[i] = f.fn(p)
	}
	return nil
}

func (f *pointFunc) Bounds() ms3.Box { return f.bb }
