package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
	// maxSTLTriangles bounds preallocation when reading untrusted headers.
	maxSTLTriangles = 1 << 26
)

// ErrEmptyMesh is returned when exporting a mesh with no triangles.
var ErrEmptyMesh = errors.New("empty triangle slice")

// CreateSTL streams the triangles of r into a binary STL file at path.
func CreateSTL(path string, r Renderer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	// Triangle count is unknown until the renderer is drained.
	_, err = file.Seek(stlHeaderSize, io.SeekStart)
	if err != nil {
		return err
	}
	rd := &stlReader{r: r}
	n, err := io.CopyBuffer(file, rd, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return err
	}
	nt := n / stlTriangleSize
	if nt > math.MaxUint32 {
		return errors.New("amount of triangles in model exceeds STL design limits")
	}
	var hdr [stlHeaderSize]byte
	stlHeader{Count: uint32(nt)}.put(hdr[:])
	_, err = file.WriteAt(hdr[:], 0)
	if err != nil {
		return err
	}
	return file.Close()
}

// WriteSTL writes model triangles to a writer in binary STL format and
// returns the number of bytes written.
func WriteSTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, ErrEmptyMesh
	}
	nt := int64(len(model)) // int64 so the comparison holds on 32 bit platforms.
	if nt > math.MaxUint32 {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	bw := bufio.NewWriter(w)
	var buf [stlHeaderSize]byte
	stlHeader{Count: uint32(nt)}.put(buf[:])
	n, err := bw.Write(buf[:])
	if err != nil {
		return n, err
	}
	for _, triangle := range model {
		putTriangle(buf[:stlTriangleSize], triangle)
		ngot, err := bw.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ReadSTL decodes the triangles of a binary STL file. Facet normals are
// ignored since the winding order carries the orientation.
func ReadSTL(r io.Reader) ([]ms3.Triangle, error) {
	var buf [stlHeaderSize]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(buf[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	output := make([]ms3.Triangle, 0, min(count, maxSTLTriangles))
	for i := 0; i < int(count); i++ {
		_, err = io.ReadFull(r, buf[:stlTriangleSize])
		if err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		var d stlTriangle
		d.get(buf[:stlTriangleSize])
		if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
			return nil, fmt.Errorf("inf/NaN vertex in STL triangle %d", i)
		}
		output = append(output, d.Triangle())
	}
	return output, nil
}

const trianglesInBuffer = 1 << 10

// stlReader encodes the triangles of a Renderer as STL facets.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]ms3.Triangle
}

func (sr *stlReader) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(sr.buf))
	if ntMax == 0 {
		return 0, errors.New("stlReader requires at least 50 bytes to write a single triangle")
	}
	var (
		err error
		it  int // triangles written to b.
	)
	for it < ntMax && err == nil {
		var nt int
		nt, err = sr.r.ReadTriangles(sr.buf[:ntMax-it])
		for _, triangle := range sr.buf[:nt] {
			putTriangle(b[it*stlTriangleSize:], triangle)
			it++
		}
	}
	return it * stlTriangleSize, err
}

type stlHeader struct {
	_     [80]uint8
	Count uint32
}

func (h stlHeader) put(b []byte) {
	_ = b[83] // early bounds check
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count.
}

func putTriangle(b []byte, t ms3.Triangle) {
	stlTriangle{
		Normal:  vecToArray(facetNormal(t)),
		Vertex1: vecToArray(t[0]),
		Vertex2: vecToArray(t[1]),
		Vertex3: vecToArray(t[2]),
	}.put(b)
}

// facetNormal returns the unit normal of t by the right hand rule, or the
// zero vector for degenerate triangles.
func facetNormal(t ms3.Triangle) ms3.Vec {
	n := t.Normal()
	l := ms3.Norm(n)
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return ms3.Vec{}
	}
	return ms3.Scale(1/l, n)
}

func (t stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
}

func (t stlTriangle) Triangle() ms3.Triangle {
	return ms3.Triangle{vecFromArray(t.Vertex1), vecFromArray(t.Vertex2), vecFromArray(t.Vertex3)}
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func vecFromArray(f [3]float32) ms3.Vec {
	return ms3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

func vecToArray(v ms3.Vec) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
