// Package lut contains the topology reference tables of the Lewiner marching
// cubes algorithm.
//
// A cube's eight corner signs form a classification index 0-255 which [Case]
// maps to one of 15 topological classes and a configuration within that class.
// Tiling tables list, per configuration, the triangles of the surface patch as
// triples of edge identifiers: 0-11 for the cube edges and 12 for a vertex
// inside the cube. Test tables list the signed face identifiers used to
// resolve ambiguous faces and the sign and reference edge of interior tests.
//
// Corners and edges are numbered as follows:
//
//	corners: 0=(0,0,0) 1=(1,0,0) 2=(1,1,0) 3=(0,1,0)
//	         4=(0,0,1) 5=(1,0,1) 6=(1,1,1) 7=(0,1,1)
//	edges:   0=0-1 1=1-2  2=2-3  3=3-0
//	         4=4-5 5=5-6  6=6-7  7=7-4
//	         8=0-4 9=1-5 10=2-6 11=3-7
//	faces:   1=y0 2=x1 3=y1 4=x0 5=z0 6=z1
//
// Triangles are wound counter-clockwise when seen from the side of the
// surface with values above the isovalue.
package lut

// Triangle is a triangle of a tiling given by the edges its vertices lie on.
type Triangle [3]int8

// Number of configurations of each class.
var Configurations = [15]int{0, 16, 24, 24, 8, 48, 48, 16, 6, 8, 6, 12, 24, 2, 12}

// Case returns the topological class and configuration of a classification
// index. Class 0 has no surface.
func Case(index uint8) (class, config int) {
	c := cases[index]
	return int(c[0]), int(c[1])
}

// ReferenceEdge returns the cube edge an interior test interpolates along for
// the given class, configuration and, for class 13, sub-configuration offset
// within the 13.5 family (0-3). Classes 4 and 10 test along the cube diagonal
// and have no reference edge. ok is false when the class has no reference edge
// or the arguments are out of range.
func ReferenceEdge(class, config, subconfig int) (edge int, ok bool) {
	if config < 0 || config >= Configurations[clampClass(class)] {
		return -1, false
	}
	switch class {
	case 6:
		return int(Test6[config][2]), true
	case 7:
		return int(Test7[config][4]), true
	case 12:
		return int(Test12[config][3]), true
	case 13:
		if subconfig < 0 || subconfig >= len(Tiling13_5_1[config]) {
			return -1, false
		}
		return int(Tiling13_5_1[config][subconfig][0][0]), true
	}
	return -1, false
}

func clampClass(class int) int {
	if class < 0 || class >= len(Configurations) {
		return 0
	}
	return class
}
