package tree

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/fernseed/treegen/internal/config"
	"github.com/fernseed/treegen/internal/geometry"
	"github.com/fernseed/treegen/internal/growth"
	"github.com/fernseed/treegen/internal/rng"
	"github.com/fernseed/treegen/pkg/math"
)

// GenerateArchetype builds a stylized whole tree (trunk plus foliage)
// for the configured tree type instead of the raw branch hierarchy.
// It returns the handle of the tree's root node.
func (g *Generator) GenerateArchetype(cfg *config.Config) (NodeHandle, error) {
	kind, err := config.ParseTreeType(cfg.Type)
	if err != nil {
		return NoNode, err
	}

	src := g.source()
	switch kind {
	case config.Oak:
		return g.oak(cfg, src)
	case config.Pine:
		return g.pine(cfg, src)
	case config.Willow:
		return g.willow(cfg, src)
	case config.Palm:
		return g.palm(cfg, src)
	}
	return NoNode, fmt.Errorf("unknown tree type: %q", cfg.Type)
}

// trunkNode builds the trunk tube and registers it as the scene root.
func (g *Generator) trunkNode(b config.BranchConfig, src *rng.Source) (NodeHandle, []growth.Frame, error) {
	segments := int(b.LengthSegments)
	if segments < 1 {
		segments = 1
	}
	frames := growth.Path(growth.Params{
		SegmentCount:       segments + 1,
		SegmentLength:      b.Length / float32(segments),
		CurvatureStrength:  clamp01(b.Gnarliness),
		CurvatureVariation: b.Twist,
	}, rng.New(src.Uint64()))

	mesh := geometry.Tube(frames, geometry.TubeParams{
		StartRadius:    b.StartRadius,
		EndRadius:      b.EndRadius,
		RadialSegments: int(b.RadialSegments),
		NoiseLevel:     b.Gnarliness,
	}, src)

	mh, err := g.sink.CreateMesh("Trunk", mesh, g.trunk)
	if err != nil {
		return NoNode, nil, err
	}
	node, err := g.sink.CreateNode("Trunk", mh, math.Vec3{}, math.QuatIdentity(), math.Vec3{X: 1, Y: 1, Z: 1})
	if err != nil {
		return NoNode, nil, err
	}
	return node, frames, nil
}

func (g *Generator) foliageNode(name string, mesh *geometry.Mesh, parent NodeHandle, pos math.Vec3, rot math.Quat, scale math.Vec3) error {
	mh, err := g.sink.CreateMesh(name, mesh, g.leaves)
	if err != nil {
		return err
	}
	node, err := g.sink.CreateNode(name, mh, pos, rot, scale)
	if err != nil {
		return err
	}
	return g.sink.AttachChild(parent, node)
}

// oak: a trunk with a single spherical canopy sitting at the tip.
func (g *Generator) oak(cfg *config.Config, src *rng.Source) (NodeHandle, error) {
	trunk, frames, err := g.trunkNode(cfg.Branch, src)
	if err != nil {
		return NoNode, err
	}
	detail := cfg.DetailLevel()
	radius := cfg.Branch.Length * 0.45
	canopy := geometry.Sphere(radius, 4+2*detail, 3+detail)
	tip := frames[len(frames)-1].Position
	center := tip.Add(math.Vec3{Y: radius * 0.5})
	if err := g.foliageNode("Canopy", canopy, trunk, center, math.QuatIdentity(), math.Vec3{X: 1, Y: 0.85, Z: 1}); err != nil {
		return NoNode, err
	}
	return trunk, nil
}

// pine: a trunk with a stack of narrowing cones.
func (g *Generator) pine(cfg *config.Config, src *rng.Source) (NodeHandle, error) {
	trunk, frames, err := g.trunkNode(cfg.Branch, src)
	if err != nil {
		return NoNode, err
	}
	const tiers = 3
	detail := cfg.DetailLevel()
	height := cfg.Branch.Length
	for i := 0; i < tiers; i++ {
		base := height * (0.35 + 0.2*float32(i))
		coneHeight := height * 0.35
		coneRadius := height * (0.3 - 0.07*float32(i))
		cone := geometry.Tube(growth.Straight(5, coneHeight/4), geometry.TubeParams{
			StartRadius:    coneRadius,
			EndRadius:      0,
			RadialSegments: 4 + 2*detail,
		}, src)
		name := fmt.Sprintf("Tier_%d", i)
		if err := g.foliageNode(name, cone, trunk, framePositionAt(frames, base), math.QuatIdentity(), math.Vec3{X: 1, Y: 1, Z: 1}); err != nil {
			return NoNode, err
		}
	}
	return trunk, nil
}

// willow: a trunk with drooping, squashed spheres hanging around the tip.
func (g *Generator) willow(cfg *config.Config, src *rng.Source) (NodeHandle, error) {
	trunk, frames, err := g.trunkNode(cfg.Branch, src)
	if err != nil {
		return NoNode, err
	}
	tip := frames[len(frames)-1].Position
	const clusters = 5
	detail := cfg.DetailLevel()
	radius := cfg.Branch.Length * 0.3
	drape := geometry.Sphere(radius, 4+2*detail, 3+detail)
	for i := 0; i < clusters; i++ {
		angle := 2 * math32.Pi * float32(i) / clusters
		offset := math.Vec3{
			X: math32.Cos(angle) * radius * 1.2,
			Y: -radius * 0.6,
			Z: math32.Sin(angle) * radius * 1.2,
		}
		name := fmt.Sprintf("Drape_%d", i)
		if err := g.foliageNode(name, drape, trunk, tip.Add(offset), math.QuatIdentity(), math.Vec3{X: 0.6, Y: 1.4, Z: 0.6}); err != nil {
			return NoNode, err
		}
	}
	return trunk, nil
}

// palm: a curved trunk with cone fronds fanned around the tip.
func (g *Generator) palm(cfg *config.Config, src *rng.Source) (NodeHandle, error) {
	b := cfg.Branch
	if b.Gnarliness == 0 {
		b.Gnarliness = 0.08
	}
	trunk, frames, err := g.trunkNode(b, src)
	if err != nil {
		return NoNode, err
	}
	tip := frames[len(frames)-1].Position
	const fronds = 6
	droop := b.Angle
	if droop == 0 {
		droop = 50
	}
	frond := geometry.Tube(growth.Straight(5, b.Length*0.12), geometry.TubeParams{
		StartRadius:    b.StartRadius * 0.4,
		EndRadius:      0,
		RadialSegments: 4,
	}, src)
	for i := 0; i < fronds; i++ {
		yaw := math.QuatFromAxisAngle(math.Vec3{Y: 1}, 2*math32.Pi*float32(i)/fronds)
		tilt := math.QuatFromAxisAngle(math.Vec3{X: 1}, droop*degToRad)
		name := fmt.Sprintf("Frond_%d", i)
		if err := g.foliageNode(name, frond, trunk, tip, yaw.Mul(tilt).Normalize(), math.Vec3{X: 1, Y: 1, Z: 1}); err != nil {
			return NoNode, err
		}
	}
	return trunk, nil
}

// framePositionAt returns the frame position closest to the given
// height along the path.
func framePositionAt(frames []growth.Frame, height float32) math.Vec3 {
	best := frames[0].Position
	bestDiff := math32.Abs(best.Y - height)
	for _, f := range frames[1:] {
		if d := math32.Abs(f.Position.Y - height); d < bestDiff {
			best, bestDiff = f.Position, d
		}
	}
	return best
}
