package isosurface

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface/internal/lut"
)

func singleCubeVolume(samples *[8]float32) *Volume {
	vol := NewVolume(ms3.Box{Max: ms3.Vec{X: 1, Y: 1, Z: 1}}, 2, 2, 2)
	for i, off := range lewinerOffsets {
		vol.Set(int(off.X), int(off.Y), int(off.Z), samples[i])
	}
	return vol
}

// TestDispatchEveryIndex extracts single cubes of every classification index
// with random magnitudes so that ambiguous classes visit their sub-cases.
func TestDispatchEveryIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var logbuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logbuf, nil))
	triCounts := make(map[[2]int]map[int]bool)
	for index := 1; index < 255; index++ {
		cl, cf := lut.Case(uint8(index))
		for trial := 0; trial < 200; trial++ {
			var samples [8]float32
			for i := range samples {
				mag := float32(rng.Float64()) + 1e-3
				if index&(1<<i) == 0 {
					mag = -mag
				}
				samples[i] = mag
			}
			vol := singleCubeVolume(&samples)
			m := newMarcher(vol, Config{Logger: logger})
			m.march()
			if m.warnings != 0 {
				t.Fatalf("index %d: %d warnings: %s", index, m.warnings, logbuf.String())
			}
			mesh := m.mesh()
			if mesh.Len() == 0 {
				t.Fatalf("index %d: no triangles", index)
			}
			var crossings int
			for _, e := range edgeEnds {
				a, b := bitIndex(e[0]), bitIndex(e[1])
				if (m.b.bitValues[a] > 0) != (m.b.bitValues[b] > 0) {
					crossings++
				}
			}
			if nv := len(mesh.Vertices); nv != crossings && nv != crossings+1 {
				t.Fatalf("index %d: %d vertices for %d crossed edges", index, nv, crossings)
			}
			key := [2]int{cl, cf}
			if triCounts[key] == nil {
				triCounts[key] = make(map[int]bool)
			}
			triCounts[key][mesh.Len()] = true
		}
	}
	// Ambiguous classes must resolve to more than one tiling.
	for key, counts := range triCounts {
		switch key[0] {
		case 3, 6, 7, 10, 12, 13:
			if len(counts) < 2 {
				t.Errorf("class %d config %d always produced %v triangles", key[0], key[1], counts)
			}
		}
	}
}

func TestInteriorWarningLogged(t *testing.T) {
	var logbuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logbuf, nil))
	samples := [8]float32{1, -1, -1, -1, -1, -1, -1, -1}
	m := newMarcher(singleCubeVolume(&samples), Config{Logger: logger})
	m.cube = newCube(0, 0, 0, 0, 1, &samples)
	got := m.interior(classEdgeCorner, lut.Configurations[classEdgeCorner], 0, 1)
	if got {
		t.Error("invalid configuration should resolve to the fallback outcome")
	}
	if m.warnings != 1 {
		t.Fatalf("got %d warnings, want 1", m.warnings)
	}
	out := logbuf.String()
	if !strings.Contains(out, "interior test") || !strings.Contains(out, "class=6") {
		t.Errorf("unexpected log output %q", out)
	}
}
