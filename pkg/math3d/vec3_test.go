package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestCrossRightHanded(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"parallel", V3(2, 0, 0), V3(4, 0, 0), V3(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); !vecNear(got, tc.expected) {
				t.Errorf("%v × %v = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	n := V3(0, 3, 4).Normalize()
	if !vecNear(n, V3(0, 0.6, 0.8)) {
		t.Errorf("Normalize = %v, want (0, 0.6, 0.8)", n)
	}
	if l := n.Len(); math.Abs(l-1) > epsilon {
		t.Errorf("normalized length = %v, want 1", l)
	}

	if z := Zero3().Normalize(); z != Zero3() {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}

	nan := V3(math.NaN(), 1, 1).Normalize()
	if nan != Zero3() {
		t.Errorf("NaN vector should normalize to zero, got %v", nan)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(V3(0, 0, 0), V3(3, 0, 0), V3(0, 3, 3))
	if !vecNear(c, V3(1, 1, 1)) {
		t.Errorf("Centroid = %v, want (1, 1, 1)", c)
	}
}

func TestMinMax(t *testing.T) {
	a, b := V3(1, 5, -2), V3(3, -1, 0)
	if got := a.Min(b); got != V3(1, -1, -2) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V3(3, 5, 0) {
		t.Errorf("Max = %v", got)
	}
	if got := V3(1, 7, 3).MaxComponent(); got != 7 {
		t.Errorf("MaxComponent = %v, want 7", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Error("(1,2,3) should be finite")
	}
	if V3(1, math.NaN(), 3).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if V3(math.Inf(-1), 0, 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}
