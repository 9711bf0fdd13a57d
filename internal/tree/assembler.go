package tree

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/fernseed/treegen/internal/config"
	"github.com/fernseed/treegen/internal/geometry"
	"github.com/fernseed/treegen/internal/growth"
	"github.com/fernseed/treegen/internal/rng"
	"github.com/fernseed/treegen/pkg/math"
)

const degToRad = math32.Pi / 180

// Options configure a Generator.
type Options struct {
	// Seed fixes the random stream. Nil seeds from OS entropy.
	Seed *uint64
	// Trunk and Leaves are the materials used for branch tubes and
	// archetype canopies. Zero values fall back to the defaults.
	Trunk  Material
	Leaves Material
	// Log receives per-branch progress at debug level. Nil disables.
	Log *zap.Logger
}

// Generator builds trees into a scene sink.
type Generator struct {
	sink   Sink
	trunk  Material
	leaves Material
	seed   *uint64
	log    *zap.Logger
}

// New returns a Generator writing to sink.
func New(sink Sink, opts Options) *Generator {
	g := &Generator{
		sink:   sink,
		trunk:  opts.Trunk,
		leaves: opts.Leaves,
		seed:   opts.Seed,
		log:    opts.Log,
	}
	if g.trunk == (Material{}) {
		g.trunk = BarkMaterial(config.BarkConfig{})
	}
	if g.leaves == (Material{}) {
		g.leaves = LeafMaterial(config.LeavesConfig{})
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g
}

func (g *Generator) source() *rng.Source {
	if g.seed != nil {
		return rng.New(*g.seed)
	}
	return rng.NewFromEntropy()
}

// Generate builds the full branching tree described by cfg and returns
// the handle of the root (trunk) node.
//
// Per branch, draws are consumed from the branch's source in a fixed
// order: one raw draw for the path seed, the tube's radial noise (only
// when gnarliness is non-zero), the node rotation (three magnitude and
// sign pairs), then per child one attachment index followed by one raw
// draw seeding the child's own source. Identical seeds therefore yield
// identical trees regardless of how sibling generation is scheduled.
func (g *Generator) Generate(cfg *config.BranchConfig) (NodeHandle, error) {
	return g.branch(cfg, g.source(), NoNode, math.Vec3{}, 0, 0)
}

func (g *Generator) branch(cfg *config.BranchConfig, src *rng.Source, parent NodeHandle, attach math.Vec3, level, index int) (NodeHandle, error) {
	segments := int(cfg.LengthSegments)
	if segments < 1 {
		segments = 1
	}

	frames := growth.Path(growth.Params{
		SegmentCount:       segments + 1,
		SegmentLength:      cfg.Length / float32(segments),
		CurvatureStrength:  clamp01(cfg.Gnarliness),
		CurvatureVariation: cfg.Twist,
	}, rng.New(src.Uint64()))

	mesh := geometry.Tube(frames, geometry.TubeParams{
		StartRadius:    cfg.StartRadius,
		EndRadius:      cfg.EndRadius,
		RadialSegments: int(cfg.RadialSegments),
		NoiseLevel:     cfg.Gnarliness,
	}, src)

	name := nodeName(level, index)
	g.log.Debug("building branch",
		zap.String("node", name),
		zap.Int("level", level),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Uint32("children", cfg.Children))

	mh, err := g.sink.CreateMesh(name, mesh, g.trunk)
	if err != nil {
		return NoNode, fmt.Errorf("creating mesh %s: %w", name, err)
	}

	rot := sampleRotation(cfg, src)
	node, err := g.sink.CreateNode(name, mh, attach, rot, math.Vec3{X: 1, Y: 1, Z: 1})
	if err != nil {
		return NoNode, fmt.Errorf("creating node %s: %w", name, err)
	}
	if parent != NoNode {
		if err := g.sink.AttachChild(parent, node); err != nil {
			return NoNode, fmt.Errorf("attaching %s: %w", name, err)
		}
	}

	if cfg.Children > 0 {
		if cfg.ChildrenConfig == nil {
			g.log.Warn("branch requests children without a children_config; skipping descendants",
				zap.String("node", name), zap.Uint32("children", cfg.Children))
			return node, nil
		}
		for i := 0; i < int(cfg.Children); i++ {
			at := frames[attachmentIndex(len(frames), src)].Position
			childSrc := src.Child()
			if _, err := g.branch(cfg.ChildrenConfig, childSrc, node, at, level+1, i); err != nil {
				return NoNode, err
			}
		}
	}
	return node, nil
}

// attachmentIndex picks the growth frame a child branch sprouts from.
// Base and tip frames are excluded whenever an interior frame exists.
func attachmentIndex(frameCount int, src *rng.Source) int {
	if frameCount >= 3 {
		return 1 + src.IntN(frameCount-2)
	}
	return src.IntN(frameCount)
}

// sampleRotation draws a random orientation with a per-axis magnitude
// in [MinRotation, MaxRotation] degrees and an independent random sign
// per axis. A span under 0.1 degrees is widened to keep the sampling
// range valid.
func sampleRotation(cfg *config.BranchConfig, src *rng.Source) math.Quat {
	lo, hi := cfg.MinRotation, cfg.MaxRotation
	if hi-lo < 0.1 {
		hi = lo + 0.1
	}

	var angles [3]float32
	for a := range angles {
		angles[a] = src.Float32(lo, hi) * degToRad
		if src.Bool() {
			angles[a] = -angles[a]
		}
	}
	return math.QuatFromEuler(angles[0], angles[1], angles[2])
}

func nodeName(level, index int) string {
	if level == 0 {
		return "Trunk"
	}
	return fmt.Sprintf("Branch_L%d_%d", level, index)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
