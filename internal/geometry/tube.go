package geometry

import (
	"github.com/chewxy/math32"

	"github.com/fernseed/treegen/internal/growth"
	"github.com/fernseed/treegen/internal/rng"
	"github.com/fernseed/treegen/pkg/math"
)

// tipEpsilon is the end radius below which the tube closes into a
// pointed tip instead of a flat cap.
const tipEpsilon = 1e-4

// TubeParams control tube skinning along a growth path.
type TubeParams struct {
	// StartRadius and EndRadius are interpolated linearly along the path.
	StartRadius float32
	EndRadius   float32
	// RadialSegments is the ring resolution, floored to 3.
	RadialSegments int
	// NoiseLevel perturbs ring vertices radially, clamped to [0,1].
	NoiseLevel float32
}

// Tube sweeps a radial ring along the given frames and closes both
// ends, producing a watertight branch surface. One ring of vertices is
// emitted per frame, plus one cap vertex at each end. Paths with fewer
// than two frames yield an empty mesh.
func Tube(frames []growth.Frame, p TubeParams, src *rng.Source) *Mesh {
	if len(frames) < 2 {
		return &Mesh{}
	}

	radial := p.RadialSegments
	if radial < 3 {
		radial = 3
	}
	noise := clamp01(p.NoiseLevel)
	rings := len(frames)
	pointed := p.EndRadius < tipEpsilon

	m := &Mesh{
		Vertices:  make([]math.Vec3, 0, rings*radial+2),
		Normals:   make([]math.Vec3, 0, rings*radial+2),
		UVs:       make([]math.Vec2, 0, rings*radial+2),
		Triangles: make([][3]uint32, 0, 2*radial*(rings-1)+2*radial),
	}

	// Rings, one per frame.
	for i, f := range frames {
		t := float32(i) / float32(rings-1)
		radius := p.StartRadius*(1-t) + p.EndRadius*t
		if pointed && i == rings-1 {
			radius = 0
		}
		for j := 0; j < radial; j++ {
			angle := 2 * math32.Pi * float32(j) / float32(radial)
			out := f.Rotation.Rotate(math.Vec3{X: math32.Cos(angle), Z: math32.Sin(angle)})

			r := radius
			if noise > 0 && radius > 0 {
				r *= 1 + src.Float32(-1, 1)*noise*0.3
			}

			m.addVertex(
				f.Position.Add(out.Scale(r)),
				out.Normalize(),
				math.Vec2{X: float32(j) / float32(radial), Y: t},
			)
		}
	}

	// Quad strip between consecutive rings, wound outward.
	for i := 0; i < rings-1; i++ {
		ring := uint32(i * radial)
		next := uint32((i + 1) * radial)
		for j := 0; j < radial; j++ {
			cur := ring + uint32(j)
			nxt := ring + uint32((j+1)%radial)
			curUp := next + uint32(j)
			nxtUp := next + uint32((j+1)%radial)
			m.Triangles = append(m.Triangles,
				[3]uint32{cur, curUp, nxt},
				[3]uint32{nxt, curUp, nxtUp},
			)
		}
	}

	// Base cap: one center vertex fanned against the first ring,
	// facing opposite the initial growth direction.
	baseDir := frames[1].Position.Sub(frames[0].Position).Normalize()
	base := m.addVertex(frames[0].Position, baseDir.Scale(-1), math.Vec2{X: 0.5, Y: 0})
	for j := 0; j < radial; j++ {
		m.Triangles = append(m.Triangles,
			[3]uint32{base, uint32(j), uint32((j + 1) % radial)},
		)
	}

	// Tip cap: with a near-zero end radius the last ring already sits
	// at the tip position, so the fan closes to a point; otherwise it
	// closes a flat disk. Either way the cap faces along the path.
	last := frames[rings-1]
	tipDir := last.Position.Sub(frames[rings-2].Position).Normalize()
	tip := m.addVertex(last.Position, tipDir, math.Vec2{X: 0.5, Y: 1})
	lastRing := uint32((rings - 1) * radial)
	for j := 0; j < radial; j++ {
		m.Triangles = append(m.Triangles,
			[3]uint32{tip, lastRing + uint32((j+1)%radial), lastRing + uint32(j)},
		)
	}

	return m
}
