package render_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/render"
)

func TestWriteOBJ(t *testing.T) {
	mesh := sphereMesh(t, 12)
	var b bytes.Buffer
	err := render.WriteOBJ(&b, mesh)
	if err != nil {
		t.Fatal(err)
	}
	var nv, nn, nf int
	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			nv++
		case strings.HasPrefix(line, "vn "):
			nn++
		case strings.HasPrefix(line, "f "):
			nf++
			if got := len(strings.Fields(line)); got != 4 {
				t.Fatalf("face line %q has %d fields", line, got)
			}
			if !strings.Contains(line, "//") {
				t.Fatalf("face line %q missing normal reference", line)
			}
		}
	}
	if nv != len(mesh.Vertices) || nn != len(mesh.Normals) || nf != mesh.Len() {
		t.Fatalf("got %d vertices, %d normals, %d faces; want %d, %d, %d",
			nv, nn, nf, len(mesh.Vertices), len(mesh.Normals), mesh.Len())
	}
	err = render.WriteOBJ(&b, &isosurface.Mesh{})
	if err == nil {
		t.Fatal("expected error writing empty mesh")
	}
}

func TestWriteGLB(t *testing.T) {
	mesh := sphereMesh(t, 12)
	var b bytes.Buffer
	err := render.WriteGLB(&b, mesh, render.GLBConfig{Name: "sphere"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("glTF")) {
		t.Fatalf("missing binary glTF magic in %d byte output", b.Len())
	}
	var doc gltf.Document
	err = gltf.NewDecoder(&b).Decode(&doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("want one mesh with one primitive, got %d meshes", len(doc.Meshes))
	}
	if doc.Meshes[0].Name != "sphere" {
		t.Errorf("mesh name %q, want %q", doc.Meshes[0].Name, "sphere")
	}
	prim := doc.Meshes[0].Primitives[0]
	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	if int(pos.Count) != len(mesh.Vertices) {
		t.Errorf("position count %d, want %d", pos.Count, len(mesh.Vertices))
	}
	norm, ok := prim.Attributes[gltf.NORMAL]
	if !ok {
		t.Fatal("missing NORMAL attribute")
	}
	if int(doc.Accessors[norm].Count) != len(mesh.Normals) {
		t.Errorf("normal count %d, want %d", doc.Accessors[norm].Count, len(mesh.Normals))
	}
	if prim.Indices == nil {
		t.Fatal("missing indices")
	}
	if int(doc.Accessors[*prim.Indices].Count) != len(mesh.Faces) {
		t.Errorf("index count %d, want %d", doc.Accessors[*prim.Indices].Count, len(mesh.Faces))
	}
}
