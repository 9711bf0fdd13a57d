// Package tree assembles branching tree geometry into a scene graph.
//
// The assembler walks a recursive branch configuration, generating a
// growth path and tube mesh per branch and registering the results
// with a Sink. The sink owns serialization; this package never touches
// the output format.
package tree

import (
	"github.com/fernseed/treegen/internal/geometry"
	"github.com/fernseed/treegen/pkg/math"
)

// MeshHandle identifies a mesh registered with a sink.
type MeshHandle int

// NodeHandle identifies a scene node created by a sink.
type NodeHandle int

// NoMesh and NoNode mark absent references.
const (
	NoMesh MeshHandle = -1
	NoNode NodeHandle = -1
)

// Material describes a basic colored surface.
type Material struct {
	Name      string
	BaseColor [4]float32
	Metallic  float32
	Roughness float32
}

// Sink receives generated meshes and scene nodes. Implementations must
// tolerate being called once per branch in depth-first order; the
// assembler never mutates a node after attaching its children.
type Sink interface {
	// CreateMesh registers a mesh and the material it is rendered with.
	CreateMesh(name string, mesh *geometry.Mesh, material Material) (MeshHandle, error)
	// CreateNode creates a scene node. mesh may be NoMesh for grouping
	// nodes.
	CreateNode(name string, mesh MeshHandle, position math.Vec3, rotation math.Quat, scale math.Vec3) (NodeHandle, error)
	// AttachChild links child under parent. A node is attached at most
	// once.
	AttachChild(parent, child NodeHandle) error
}
