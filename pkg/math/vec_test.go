package math

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.0001
}

func vec3AlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3Add(t *testing.T) {
	v := Vec3{1, 2, 3}.Add(Vec3{4, 5, 6})
	if !vec3AlmostEqual(v, Vec3{5, 7, 9}) {
		t.Errorf("Add: got %+v, want {5 7 9}", v)
	}
}

func TestVec3Sub(t *testing.T) {
	v := Vec3{4, 5, 6}.Sub(Vec3{1, 2, 3})
	if !vec3AlmostEqual(v, Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %+v, want {3 3 3}", v)
	}
}

func TestVec3Cross(t *testing.T) {
	// X cross Y = Z
	v := Vec3{X: 1}.Cross(Vec3{Y: 1})
	if !vec3AlmostEqual(v, Vec3{Z: 1}) {
		t.Errorf("Cross: got %+v, want {0 0 1}", v)
	}
}

func TestVec3Dot(t *testing.T) {
	d := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if !almostEqual(d, 12) {
		t.Errorf("Dot: got %v, want 12", d)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Normalize: length should be 1, got %v", n.Length())
	}
	if !vec3AlmostEqual(n, Vec3{0.6, 0.8, 0}) {
		t.Errorf("Normalize: got %+v, want {0.6 0.8 0}", n)
	}

	// Zero vector stays zero rather than producing NaN.
	z := Vec3{}.Normalize()
	if !vec3AlmostEqual(z, Vec3{}) {
		t.Errorf("Normalize of zero vector: got %+v, want zero", z)
	}
}

func TestVec3Distance(t *testing.T) {
	d := Vec3{1, 0, 0}.Distance(Vec3{4, 4, 0})
	if !almostEqual(d, 5) {
		t.Errorf("Distance: got %v, want 5", d)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 6}
	mid := a.Lerp(b, 0.5)
	if !vec3AlmostEqual(mid, Vec3{1, 2, 3}) {
		t.Errorf("Lerp at 0.5: got %+v, want {1 2 3}", mid)
	}
	if !vec3AlmostEqual(a.Lerp(b, 0), a) {
		t.Error("Lerp at 0 should equal start")
	}
	if !vec3AlmostEqual(a.Lerp(b, 1), b) {
		t.Error("Lerp at 1 should equal end")
	}
}

func TestVec2Length(t *testing.T) {
	l := Vec2{3, 4}.Length()
	if !almostEqual(l, 5) {
		t.Errorf("Length: got %v, want 5", l)
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{1, -2}.Scale(3)
	if !almostEqual(v.X, 3) || !almostEqual(v.Y, -6) {
		t.Errorf("Scale: got %+v, want {3 -6}", v)
	}
}
