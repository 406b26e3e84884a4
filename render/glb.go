package render

import (
	"errors"
	"io"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/soypat/isosurface"
)

// GLBConfig controls binary glTF export. The zero value is ready to use.
type GLBConfig struct {
	// Name of the glTF mesh and node.
	Name string
	// Color is the RGBA base color of the material. The zero value is
	// opaque white.
	Color [4]float32
	// Generator is recorded in the asset metadata.
	Generator string
}

// WriteGLB writes mesh as a single primitive binary glTF document with
// positions, unit normals and 32 bit indices.
func WriteGLB(w io.Writer, mesh *isosurface.Mesh, cfg GLBConfig) error {
	doc, err := glbDocument(mesh, cfg)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

func glbDocument(mesh *isosurface.Mesh, cfg GLBConfig) (*gltf.Document, error) {
	if mesh.Len() == 0 {
		return nil, ErrEmptyMesh
	} else if int64(len(mesh.Vertices)) > math.MaxUint32 {
		return nil, errors.New("too many vertices for 32 bit indices")
	}
	positions := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = vecToArray(v)
	}
	indices := make([]uint32, len(mesh.Faces))
	for i, f := range mesh.Faces {
		indices[i] = uint32(f)
	}
	name := cfg.Name
	if name == "" {
		name = "isosurface"
	}
	color := cfg.Color
	if color == ([4]float32{}) {
		color = [4]float32{1, 1, 1, 1}
	}

	doc := gltf.NewDocument()
	if cfg.Generator != "" {
		doc.Asset.Generator = cfg.Generator
	}
	attrs := map[string]uint32{
		gltf.POSITION: uint32(modeler.WritePosition(doc, positions)),
	}
	if len(mesh.Normals) == len(mesh.Vertices) {
		normals := make([][3]float32, len(mesh.Normals))
		for i, n := range mesh.UnitNormals() {
			// glTF normals face the front side of the winding.
			normals[i] = [3]float32{-n.X, -n.Y, -n.Z}
		}
		attrs[gltf.NORMAL] = uint32(modeler.WriteNormal(doc, normals))
	}
	prim := &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(uint32(modeler.WriteIndices(doc, indices))),
		Material:   gltf.Index(0),
	}
	material := &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &color,
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		AlphaMode:   gltf.AlphaOpaque,
		DoubleSided: true,
	}
	if color[3] < 1 {
		material.AlphaMode = gltf.AlphaBlend
	}
	doc.Materials = []*gltf.Material{material}
	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}
