package isosurface

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/soypat/glgl/math/ms3"
)

// ErrBadVolume is returned when decoding malformed or corrupted volume data.
var ErrBadVolume = errors.New("bad volume data")

const (
	volumeMagic   = "ISOV"
	volumeVersion = 1
	// magic, version, 3 dims, 6 box floats and checksum.
	volumeHeaderSize = 4 + 4 + 3*4 + 6*4 + 8
	// maxVolumeSamples bounds allocations when decoding untrusted headers.
	maxVolumeSamples = 1 << 31
)

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}

// WriteTo encodes the volume to w. The header holds the dimensions, the world
// box and an xxhash64 digest of the samples, which follow as a zstd
// compressed stream of little endian float32.
func (v *Volume) WriteTo(w io.Writer) (int64, error) {
	if len(v.Data) != v.NX*v.NY*v.NZ {
		return 0, fmt.Errorf("volume data length %d does not match dimensions %dx%dx%d", len(v.Data), v.NX, v.NY, v.NZ)
	}
	cw := &countWriter{w: w}
	var hdr [volumeHeaderSize]byte
	copy(hdr[:4], volumeMagic)
	binary.LittleEndian.PutUint32(hdr[4:], volumeVersion)
	binary.LittleEndian.PutUint32(hdr[8:], uint32(v.NX))
	binary.LittleEndian.PutUint32(hdr[12:], uint32(v.NY))
	binary.LittleEndian.PutUint32(hdr[16:], uint32(v.NZ))
	putVec(hdr[20:], v.Box.Min)
	putVec(hdr[32:], v.Box.Max)
	binary.LittleEndian.PutUint64(hdr[44:], samplesDigest(v.Data))
	_, err := cw.Write(hdr[:])
	if err != nil {
		return cw.n, err
	}

	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return cw.n, err
	}
	bw := bufio.NewWriter(enc)
	var buf [4]byte
	for _, f := range v.Data {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		bw.Write(buf[:])
	}
	err = bw.Flush()
	if err != nil {
		enc.Close()
		return cw.n, err
	}
	err = enc.Close()
	return cw.n, err
}

// ReadVolume decodes a volume written by [Volume.WriteTo]. It returns an
// error wrapping ErrBadVolume if the data is malformed or its checksum does
// not match.
func ReadVolume(r io.Reader) (*Volume, error) {
	var hdr [volumeHeaderSize]byte
	_, err := io.ReadFull(r, hdr[:])
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrBadVolume, err)
	}
	if string(hdr[:4]) != volumeMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadVolume, hdr[:4])
	}
	if version := binary.LittleEndian.Uint32(hdr[4:]); version != volumeVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadVolume, version)
	}
	nx := int(binary.LittleEndian.Uint32(hdr[8:]))
	ny := int(binary.LittleEndian.Uint32(hdr[12:]))
	nz := int(binary.LittleEndian.Uint32(hdr[16:]))
	// Each partial product fits in 64 bits when checked in this order.
	nxy := uint64(nx) * uint64(ny)
	if nx <= 0 || ny <= 0 || nz <= 0 || uint64(nx) > maxVolumeSamples || nxy > maxVolumeSamples || nxy*uint64(nz) > maxVolumeSamples {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%dx%d", ErrBadVolume, nx, ny, nz)
	}
	v := &Volume{
		Data: make([]float32, nx*ny*nz),
		NX:   nx,
		NY:   ny,
		NZ:   nz,
		Box:  ms3.Box{Min: getVec(hdr[20:]), Max: getVec(hdr[32:])},
	}
	want := binary.LittleEndian.Uint64(hdr[44:])

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadVolume, err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)
	var buf [4]byte
	for i := range v.Data {
		_, err = io.ReadFull(br, buf[:])
		if err != nil {
			return nil, fmt.Errorf("%w: reading sample %d: %w", ErrBadVolume, i, err)
		}
		v.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))
	}
	if got := samplesDigest(v.Data); got != want {
		return nil, fmt.Errorf("%w: checksum mismatch got %#x, want %#x", ErrBadVolume, got, want)
	}
	return v, nil
}

func samplesDigest(data []float32) uint64 {
	d := xxhash.New()
	var buf [4]byte
	for _, f := range data {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		d.Write(buf[:])
	}
	return d.Sum64()
}

func putVec(b []byte, v ms3.Vec) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	_ = b[11] // early bounds check
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}
