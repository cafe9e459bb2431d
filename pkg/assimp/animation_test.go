package assimp

import (
	"testing"

	"github.com/Faultbox/goassimp/pkg/math"
)

func TestSampleVec(t *testing.T) {
	keys := []VectorKey{
		{Time: 0, Value: math.Vec3{X: 0}},
		{Time: 10, Value: math.Vec3{X: 10}},
		{Time: 20, Value: math.Vec3{X: 30}},
	}
	tests := []struct {
		t    float64
		want float32
	}{
		{-5, 0},
		{0, 0},
		{5, 5},
		{10, 10},
		{15, 20},
		{20, 30},
		{99, 30},
	}
	for _, tt := range tests {
		got := sampleVec(keys, tt.t, math.Vec3{})
		if got.X != tt.want {
			t.Errorf("sampleVec(%v).X = %v, want %v", tt.t, got.X, tt.want)
		}
	}

	def := math.Vec3{X: 1, Y: 1, Z: 1}
	if got := sampleVec(nil, 3, def); got != def {
		t.Errorf("no keys should yield the default, got %v", got)
	}
}

func TestSampleQuat(t *testing.T) {
	if got := sampleQuat(nil, 1); got != math.QuatIdentity() {
		t.Errorf("no keys should yield identity, got %v", got)
	}
	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, 1)
	keys := []QuatKey{{Time: 0, Value: q}}
	got := sampleQuat(keys, 5)
	if d := got.Dot(q); d < 0.9999 {
		t.Errorf("single key should be held, got %v", got)
	}
}

func TestKeySpanDuplicateTimes(t *testing.T) {
	times := []float64{0, 5, 5, 10}
	i, j, f := keySpan(len(times), func(k int) float64 { return times[k] }, 5)
	if i > j || f < 0 || f > 1 {
		t.Errorf("keySpan = %d, %d, %v", i, j, f)
	}
}
