// Package growth generates branch centerline paths.
//
// A path is an ordered sequence of frames from the branch base to its
// tip. Each frame carries a position and the cumulative orientation of
// the branch at that point; the tube builder sweeps a ring of vertices
// along these frames.
package growth

import (
	"github.com/fernseed/treegen/internal/rng"
	"github.com/fernseed/treegen/pkg/math"
)

// Frame is one sample along a branch centerline.
type Frame struct {
	Position math.Vec3
	Rotation math.Quat
}

// Params control path generation.
type Params struct {
	// SegmentCount is the number of frames to produce, at least 1.
	SegmentCount int
	// SegmentLength is the distance advanced between frames.
	SegmentLength float32
	// CurvatureStrength is the bend amplitude in radians per segment.
	CurvatureStrength float32
	// CurvatureVariation is the twist amplitude around the growth axis.
	CurvatureVariation float32
}

// minCurvature floors the sampling amplitudes so a zero-curvature
// request still yields a valid, slightly varied path instead of a
// degenerate sampling range.
const minCurvature = 1e-3

// forward is the local growth axis; an unrotated branch grows up.
var forward = math.Vec3{Y: 1}

// Path returns SegmentCount frames along a randomly curving centerline.
// Frame 0 sits at the local origin with identity orientation. Every
// subsequent frame advances SegmentLength along the current growth
// direction after a small random reorientation, so path length grows
// strictly monotonically. Deterministic for a given source.
func Path(p Params, src *rng.Source) []Frame {
	if p.SegmentCount < 1 {
		return nil
	}

	bend := p.CurvatureStrength
	if bend < minCurvature {
		bend = minCurvature
	}
	twist := p.CurvatureVariation
	if twist < minCurvature {
		twist = minCurvature
	}

	frames := make([]Frame, 1, p.SegmentCount)
	frames[0] = Frame{Rotation: math.QuatIdentity()}

	pos := math.Vec3{}
	rot := math.QuatIdentity()
	for i := 1; i < p.SegmentCount; i++ {
		bendX := src.Float32(-bend, bend)
		bendZ := src.Float32(-bend, bend)
		// Twist stays subtler than bend.
		twistY := src.Float32(-twist, twist) * 0.5

		step := math.QuatFromEuler(bendX, twistY, bendZ)
		rot = step.Mul(rot).Normalize()
		pos = pos.Add(rot.Rotate(forward).Scale(p.SegmentLength))
		frames = append(frames, Frame{Position: pos, Rotation: rot})
	}
	return frames
}

// Straight returns count frames along the +Y axis with identity
// orientation, spaced segmentLength apart. Used by the primitive-based
// archetype trees, which want untwisted trunks and cones.
func Straight(count int, segmentLength float32) []Frame {
	if count < 1 {
		return nil
	}
	frames := make([]Frame, count)
	for i := range frames {
		frames[i] = Frame{
			Position: math.Vec3{Y: segmentLength * float32(i)},
			Rotation: math.QuatIdentity(),
		}
	}
	return frames
}
