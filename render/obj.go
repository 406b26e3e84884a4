package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
)

// WriteOBJ writes mesh in Wavefront OBJ format. Vertex normals are written
// as unit vectors facing the same side as the triangle winding.
func WriteOBJ(w io.Writer, mesh *isosurface.Mesh) error {
	if mesh.Len() == 0 {
		return ErrEmptyMesh
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	writeVec := func(prefix string, v ms3.Vec) {
		buf = append(buf[:0], prefix...)
		buf = strconv.AppendFloat(buf, float64(v.X), 'g', -1, 32)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, float64(v.Y), 'g', -1, 32)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, float64(v.Z), 'g', -1, 32)
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	for _, v := range mesh.Vertices {
		writeVec("v ", v)
	}
	hasNormals := len(mesh.Normals) == len(mesh.Vertices)
	if hasNormals {
		for _, n := range mesh.UnitNormals() {
			writeVec("vn ", ms3.Scale(-1, n))
		}
	}
	for i := 0; i < len(mesh.Faces); i += 3 {
		buf = append(buf[:0], 'f')
		for _, idx := range mesh.Faces[i : i+3] {
			// OBJ indices are one based.
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
			if hasNormals {
				buf = append(buf, "//"...)
				buf = strconv.AppendInt(buf, int64(idx+1), 10)
			}
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return bw.Flush()
}
