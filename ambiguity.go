package isosurface

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	errUnknownEdge  = errors.New("unknown interior test reference edge")
	errUnknownClass = errors.New("class has no interior test")
)

// faceCorners lists the corners A,B,C,D of each cube face as used by the
// saddle test. Index 0 is unused since face ids are signed and one based.
//
//	1: y=0  2: x=1  3: y=1  4: x=0  5: z=0  6: z=1
var faceCorners = [7][4]uint8{
	1: {0, 4, 5, 1},
	2: {1, 5, 6, 2},
	3: {2, 6, 7, 3},
	4: {3, 7, 4, 0},
	5: {0, 3, 2, 1},
	6: {4, 7, 6, 5},
}

// testFace evaluates the bilinear saddle of a face. A positive face id reports
// whether the positive corners are joined across the face, a negative face id
// reports the opposite. Flat saddles resolve to the sign of face.
func testFace(c *cube, face int8) bool {
	f := face
	if f < 0 {
		f = -f
	}
	if f == 0 || f > 6 {
		return face >= 0
	}
	fc := &faceCorners[f]
	A, B, C, D := c.v[fc[0]], c.v[fc[1]], c.v[fc[2]], c.v[fc[3]]
	acbd := A*C - B*D
	if acbd > -epsilon && acbd < epsilon {
		return face >= 0
	}
	return float32(face)*A*acbd >= 0
}

// interiorEdges holds, per reference edge, the edge's own end corners
// followed by the corner pairs of the three parallel edges that together
// with it bound the cube. Values of the parallel edges are interpolated at
// the reference edge's zero crossing.
var interiorEdges = [12][4][2]uint8{
	0:  {{0, 1}, {3, 2}, {7, 6}, {4, 5}},
	1:  {{1, 2}, {0, 3}, {4, 7}, {5, 6}},
	2:  {{2, 3}, {1, 0}, {5, 4}, {6, 7}},
	3:  {{3, 0}, {2, 1}, {6, 5}, {7, 4}},
	4:  {{4, 5}, {7, 6}, {3, 2}, {0, 1}},
	5:  {{5, 6}, {4, 7}, {0, 3}, {1, 2}},
	6:  {{6, 7}, {5, 4}, {1, 0}, {2, 3}},
	7:  {{7, 4}, {6, 5}, {2, 1}, {3, 0}},
	8:  {{0, 4}, {3, 7}, {2, 6}, {1, 5}},
	9:  {{1, 5}, {0, 4}, {3, 7}, {2, 6}},
	10: {{2, 6}, {1, 5}, {0, 4}, {3, 7}},
	11: {{3, 7}, {2, 6}, {1, 5}, {0, 4}},
}

// testInterior decides whether the cube interior joins the components
// separated on its faces. s carries the sign convention of the tested
// configuration. edge is the reference edge for classes 6, 7, 12 and 13 and
// is ignored for classes 4 and 10, which slice the cube along its vertical
// diagonal plane instead.
//
// A non-nil error signals an invariant violation; the returned result is then
// the fallback s < 0.
func testInterior(c *cube, class int, edge int, s int8) (bool, error) {
	v := &c.v
	var t, At, Bt, Ct, Dt float32
	switch class {
	case 4, 10:
		a := (v[4]-v[0])*(v[6]-v[2]) - (v[7]-v[3])*(v[5]-v[1])
		b := v[2]*(v[4]-v[0]) + v[0]*(v[6]-v[2]) - v[1]*(v[7]-v[3]) - v[3]*(v[5]-v[1])
		t = -b / (2*a + epsilon)
		if t < 0 || t > 1 {
			return s > 0, nil
		}
		At = v[0] + (v[4]-v[0])*t
		Bt = v[3] + (v[7]-v[3])*t
		Ct = v[2] + (v[6]-v[2])*t
		Dt = v[1] + (v[5]-v[1])*t

	case 6, 7, 12, 13:
		if edge < 0 || edge >= len(interiorEdges) {
			return s < 0, fmt.Errorf("%w %d", errUnknownEdge, edge)
		}
		ie := &interiorEdges[edge]
		p, q := v[ie[0][0]], v[ie[0][1]]
		t = p / (p - q + epsilon)
		At = 0
		Bt = lerp(v[ie[1][0]], v[ie[1][1]], t)
		Ct = lerp(v[ie[2][0]], v[ie[2][1]], t)
		Dt = lerp(v[ie[3][0]], v[ie[3][1]], t)

	default:
		return s < 0, fmt.Errorf("%w %d", errUnknownClass, class)
	}

	var test uint8
	if At >= 0 {
		test |= 1
	}
	if Bt >= 0 {
		test |= 2
	}
	if Ct >= 0 {
		test |= 4
	}
	if Dt >= 0 {
		test |= 8
	}
	switch test {
	case 0, 1, 2, 3, 4, 6, 8, 9, 12:
		return s > 0, nil
	case 5:
		if At*Ct-Bt*Dt < epsilon {
			return s > 0, nil
		}
	case 10:
		if At*Ct-Bt*Dt >= epsilon {
			return s > 0, nil
		}
	}
	return s < 0, nil
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// saddleValue returns the value of the bilinear interpolant at the saddle
// point of face f. Used for diagnostics.
func saddleValue(c *cube, f int) float32 {
	fc := &faceCorners[f]
	A, B, C, D := c.v[fc[0]], c.v[fc[1]], c.v[fc[2]], c.v[fc[3]]
	den := A + C - B - D
	if math32.Abs(den) < epsilon {
		return (A + B + C + D) / 4
	}
	return (A*C - B*D) / den
}
