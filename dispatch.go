package isosurface

import (
	"log/slog"

	"github.com/soypat/isosurface/internal/lut"
)

// class is the topological class of a cube as given by [lut.Case].
type class uint8

const (
	classEmpty       class = iota // No surface.
	classCorner                   // 1: one corner.
	classEdge                     // 2: two corners on an edge.
	classFaceDiag                 // 3: two corners on a face diagonal.
	classBodyDiag                 // 4: two opposite corners.
	classFaceTriple               // 5: three corners on a face.
	classEdgeCorner               // 6: an edge and the opposite corner.
	classTriple                   // 7: three corners, pairwise on face diagonals.
	classHalf                     // 8: a full face.
	classZigzag                   // 9: four corners forming a hexagon.
	classEdgePair                 // 10: two opposite edges on parallel faces.
	classHelixA                   // 11: four corners, left handed chain.
	classFaceCorner               // 12: three face corners and a far corner.
	classTetra                    // 13: four corners, no two on an edge.
	classHelixB                   // 14: four corners, right handed chain.
	numClasses
)

// classHandlers resolves the ambiguities of a class and emits its triangles.
// Indexed by class; classEmpty is never dispatched.
var classHandlers = [numClasses]func(m *marcher, config int){
	classCorner:     func(m *marcher, cf int) { m.emit(lut.Tiling1[cf][:], 1) },
	classEdge:       func(m *marcher, cf int) { m.emit(lut.Tiling2[cf][:], 2) },
	classFaceDiag:   (*marcher).dispatch3,
	classBodyDiag:   (*marcher).dispatch4,
	classFaceTriple: func(m *marcher, cf int) { m.emit(lut.Tiling5[cf][:], 3) },
	classEdgeCorner: (*marcher).dispatch6,
	classTriple:     (*marcher).dispatch7,
	classHalf:       func(m *marcher, cf int) { m.emit(lut.Tiling8[cf][:], 2) },
	classZigzag:     func(m *marcher, cf int) { m.emit(lut.Tiling9[cf][:], 4) },
	classEdgePair:   (*marcher).dispatch10,
	classHelixA:     func(m *marcher, cf int) { m.emit(lut.Tiling11[cf][:], 4) },
	classFaceCorner: (*marcher).dispatch12,
	classTetra:      (*marcher).dispatch13,
	classHelixB:     func(m *marcher, cf int) { m.emit(lut.Tiling14[cf][:], 4) },
}

// dispatch emits the triangulation of the current cube.
func (m *marcher) dispatch(cl class, config int) {
	if cl == classEmpty || cl >= numClasses {
		return
	}
	m.b.prepare(&m.cube)
	classHandlers[cl](m, config)
}

func (m *marcher) emit(tiling []lut.Triangle, n int) {
	m.b.addTriangles(tiling, n)
}

func (m *marcher) face(f int8) bool {
	return testFace(&m.cube, f)
}

// interior runs the interior test of the current cube. Invariant violations
// are logged and resolved to the fallback outcome.
func (m *marcher) interior(cl class, config, subconfig int, s int8) bool {
	edge := -1
	if cl != classBodyDiag && cl != classEdgePair {
		var ok bool
		edge, ok = lut.ReferenceEdge(int(cl), config, subconfig)
		if !ok {
			edge = -1
		}
	}
	result, err := testInterior(&m.cube, int(cl), edge, s)
	if err != nil {
		m.warn("interior test", err, cl, config, subconfig)
	}
	return result
}

func (m *marcher) dispatch3(cf int) {
	if m.face(lut.Test3[cf]) {
		m.emit(lut.Tiling3_2[cf][:], 4)
	} else {
		m.emit(lut.Tiling3_1[cf][:], 2)
	}
}

func (m *marcher) dispatch4(cf int) {
	if m.interior(classBodyDiag, cf, 0, lut.Test4[cf]) {
		m.emit(lut.Tiling4_1[cf][:], 2)
	} else {
		m.emit(lut.Tiling4_2[cf][:], 6)
	}
}

func (m *marcher) dispatch6(cf int) {
	test := &lut.Test6[cf]
	switch {
	case m.face(test[0]):
		m.emit(lut.Tiling6_2[cf][:], 5)
	case m.interior(classEdgeCorner, cf, 0, test[1]):
		m.emit(lut.Tiling6_1_1[cf][:], 3)
	default:
		m.emit(lut.Tiling6_1_2[cf][:], 9)
	}
}

// variant7 maps the face test bits of class 7 to the variant index of the
// 7.2 tilings (one face joined) and the 7.3 tilings (two faces joined).
var variant7 = [8]int{1: 0, 2: 1, 4: 2, 3: 0, 5: 1, 6: 2}

func (m *marcher) dispatch7(cf int) {
	test := &lut.Test7[cf]
	sub := 0
	for i := 0; i < 3; i++ {
		if m.face(test[i]) {
			sub |= 1 << i
		}
	}
	switch sub {
	case 0:
		m.emit(lut.Tiling7_1[cf][:], 3)
	case 1, 2, 4:
		m.emit(lut.Tiling7_2[cf][variant7[sub]][:], 5)
	case 3, 5, 6:
		m.emit(lut.Tiling7_3[cf][variant7[sub]][:], 9)
	default:
		if m.interior(classTriple, cf, 0, test[3]) {
			m.emit(lut.Tiling7_4_2[cf][:], 9)
		} else {
			m.emit(lut.Tiling7_4_1[cf][:], 5)
		}
	}
}

// twoFaceTilings groups the tilings of classes 10 and 12 which resolve
// identically: two face tests and an interior test.
type twoFaceTilings struct {
	joinedBoth  []lut.Triangle // 1.1 primed, both faces join.
	joinedFirst []lut.Triangle // 2
	joinedLast  []lut.Triangle // 2 primed
	split       []lut.Triangle // 1.1, interior separates.
	tube        []lut.Triangle // 1.2, interior joins.
}

func (m *marcher) dispatch10(cf int) {
	test := &lut.Test10[cf]
	m.dispatchTwoFace(classEdgePair, cf, test[0], test[1], test[2], twoFaceTilings{
		joinedBoth:  lut.Tiling10_1_1_[cf][:],
		joinedFirst: lut.Tiling10_2[cf][:],
		joinedLast:  lut.Tiling10_2_[cf][:],
		split:       lut.Tiling10_1_1[cf][:],
		tube:        lut.Tiling10_1_2[cf][:],
	})
}

func (m *marcher) dispatch12(cf int) {
	test := &lut.Test12[cf]
	m.dispatchTwoFace(classFaceCorner, cf, test[0], test[1], test[2], twoFaceTilings{
		joinedBoth:  lut.Tiling12_1_1_[cf][:],
		joinedFirst: lut.Tiling12_2[cf][:],
		joinedLast:  lut.Tiling12_2_[cf][:],
		split:       lut.Tiling12_1_1[cf][:],
		tube:        lut.Tiling12_1_2[cf][:],
	})
}

func (m *marcher) dispatchTwoFace(cl class, cf int, f0, f1, s int8, t twoFaceTilings) {
	first, last := m.face(f0), m.face(f1)
	switch {
	case first && last:
		m.emit(t.joinedBoth, 4)
	case first:
		m.emit(t.joinedFirst, 8)
	case last:
		m.emit(t.joinedLast, 8)
	case m.interior(cl, cf, 0, s):
		m.emit(t.split, 4)
	default:
		m.emit(t.tube, 8)
	}
}

// Class 13 sub-configuration families as returned by lut.Subconfig13.
const (
	sub13First1  = 0
	sub13First2  = 1
	sub13First3  = 7
	sub13First4  = 19
	sub13First5  = 23
	sub13First3_ = 27
	sub13First2_ = 39
	sub13Last1_  = 45
)

func (m *marcher) dispatch13(cf int) {
	test := &lut.Test13[cf]
	mask := 0
	for i := 0; i < 6; i++ {
		if m.face(test[i]) {
			mask |= 1 << i
		}
	}
	sub := int(lut.Subconfig13[mask])
	switch {
	case sub == sub13First1:
		m.emit(lut.Tiling13_1[cf][:], 4)
	case sub >= sub13First2 && sub < sub13First3:
		m.emit(lut.Tiling13_2[cf][sub-sub13First2][:], 6)
	case sub >= sub13First3 && sub < sub13First4:
		m.emit(lut.Tiling13_3[cf][sub-sub13First3][:], 10)
	case sub >= sub13First4 && sub < sub13First5:
		m.emit(lut.Tiling13_4[cf][sub-sub13First4][:], 12)
	case sub >= sub13First5 && sub < sub13First3_:
		sub -= sub13First5
		if m.interior(classTetra, cf, sub, test[6]) {
			m.emit(lut.Tiling13_5_1[cf][sub][:], 6)
		} else {
			m.emit(lut.Tiling13_5_2[cf][sub][:], 10)
		}
	case sub >= sub13First3_ && sub < sub13First2_:
		m.emit(lut.Tiling13_3_[cf][sub-sub13First3_][:], 10)
	case sub >= sub13First2_ && sub < sub13Last1_:
		m.emit(lut.Tiling13_2_[cf][sub-sub13First2_][:], 6)
	case sub == sub13Last1_:
		m.emit(lut.Tiling13_1_[cf][:], 4)
	default:
		m.log.Warn("isosurface: impossible class 13 sub-configuration",
			slog.Int("config", cf),
			slog.Int("mask", mask),
			slog.Int("subconfig", sub),
			slog.Int("x", m.cube.x), slog.Int("y", m.cube.y), slog.Int("z", m.cube.z),
		)
		m.warnings++
	}
}
