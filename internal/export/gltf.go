// Package export writes generated trees to glTF 2.0 files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/fernseed/treegen/internal/geometry"
	"github.com/fernseed/treegen/internal/tree"
	"github.com/fernseed/treegen/pkg/math"
)

// Builder accumulates meshes and nodes into a glTF document. It
// implements tree.Sink; Save writes the finished document, picking the
// binary container for .glb paths.
type Builder struct {
	doc       *gltf.Document
	materials map[string]int
	hasParent []bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		doc:       gltf.NewDocument(),
		materials: make(map[string]int),
	}
}

func (b *Builder) materialIndex(m tree.Material) int {
	if idx, ok := b.materials[m.Name]; ok {
		return idx
	}
	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name: m.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{
				float64(m.BaseColor[0]),
				float64(m.BaseColor[1]),
				float64(m.BaseColor[2]),
				float64(m.BaseColor[3]),
			},
			MetallicFactor:  gltf.Float(float64(m.Metallic)),
			RoughnessFactor: gltf.Float(float64(m.Roughness)),
		},
	})
	idx := len(b.doc.Materials) - 1
	b.materials[m.Name] = idx
	return idx
}

// CreateMesh writes the mesh's vertex streams into the document's
// buffer and returns a handle usable with CreateNode.
func (b *Builder) CreateMesh(name string, mesh *geometry.Mesh, material tree.Material) (tree.MeshHandle, error) {
	if mesh == nil || mesh.IsEmpty() {
		return tree.NoMesh, fmt.Errorf("mesh %q is empty", name)
	}

	positions := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{v.X, v.Y, v.Z}
	}
	normals := make([][3]float32, len(mesh.Normals))
	for i, n := range mesh.Normals {
		normals[i] = [3]float32{n.X, n.Y, n.Z}
	}
	uvs := make([][2]float32, len(mesh.UVs))
	for i, uv := range mesh.UVs {
		uvs[i] = [2]float32{uv.X, uv.Y}
	}
	indices := make([]uint32, 0, len(mesh.Triangles)*3)
	for _, t := range mesh.Triangles {
		indices = append(indices, t[0], t[1], t[2])
	}

	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(b.doc, positions),
	}
	if len(normals) == len(positions) {
		attrs[gltf.NORMAL] = modeler.WriteNormal(b.doc, normals)
	}
	if len(uvs) == len(positions) {
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(b.doc, uvs)
	}

	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: attrs,
			Indices:    gltf.Index(modeler.WriteIndices(b.doc, indices)),
			Material:   gltf.Index(b.materialIndex(material)),
		}},
	})
	return tree.MeshHandle(len(b.doc.Meshes) - 1), nil
}

// CreateNode adds a node referencing a previously created mesh. Pass
// tree.NoMesh for an empty grouping node.
func (b *Builder) CreateNode(name string, mesh tree.MeshHandle, position math.Vec3, rotation math.Quat, scale math.Vec3) (tree.NodeHandle, error) {
	node := &gltf.Node{
		Name:        name,
		Translation: [3]float64{float64(position.X), float64(position.Y), float64(position.Z)},
		Rotation:    [4]float64{float64(rotation.X), float64(rotation.Y), float64(rotation.Z), float64(rotation.W)},
		Scale:       [3]float64{float64(scale.X), float64(scale.Y), float64(scale.Z)},
	}
	if mesh != tree.NoMesh {
		if int(mesh) < 0 || int(mesh) >= len(b.doc.Meshes) {
			return tree.NoNode, fmt.Errorf("node %q references unknown mesh %d", name, mesh)
		}
		node.Mesh = gltf.Index(int(mesh))
	}
	b.doc.Nodes = append(b.doc.Nodes, node)
	b.hasParent = append(b.hasParent, false)
	return tree.NodeHandle(len(b.doc.Nodes) - 1), nil
}

// AttachChild records a parent-child edge. A node may only have one
// parent.
func (b *Builder) AttachChild(parent, child tree.NodeHandle) error {
	if !b.validNode(parent) || !b.validNode(child) {
		return fmt.Errorf("attach %d -> %d: unknown node", parent, child)
	}
	if parent == child {
		return fmt.Errorf("node %d cannot be its own parent", parent)
	}
	if b.hasParent[child] {
		return fmt.Errorf("node %d already has a parent", child)
	}
	p := b.doc.Nodes[parent]
	p.Children = append(p.Children, int(child))
	b.hasParent[child] = true
	return nil
}

func (b *Builder) validNode(n tree.NodeHandle) bool {
	return n >= 0 && int(n) < len(b.doc.Nodes)
}

// NodeCount returns the number of nodes created so far.
func (b *Builder) NodeCount() int { return len(b.doc.Nodes) }

// MeshCount returns the number of meshes created so far.
func (b *Builder) MeshCount() int { return len(b.doc.Meshes) }

// Save writes the document to path. Nodes without a parent become
// scene roots. A .glb extension selects the binary container, anything
// else the JSON form.
func (b *Builder) Save(path string) error {
	scene := b.doc.Scenes[*b.doc.Scene]
	scene.Nodes = scene.Nodes[:0]
	for i, parented := range b.hasParent {
		if !parented {
			scene.Nodes = append(scene.Nodes, i)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(b.doc, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	}
	if err := gltf.Save(b.doc, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
