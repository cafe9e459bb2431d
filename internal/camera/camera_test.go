package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/goassimp/pkg/math"
)

func TestPositionDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}
	c.Distance = 10

	d := c.Position().Sub(c.Center).Length()
	if gomath.Abs(float64(d-10)) > 1e-4 {
		t.Errorf("expected distance 10, got %f", d)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("expected pitch clamped to %f, got %f", c.MaxPitch, c.Pitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("expected pitch clamped to %f, got %f", c.MinPitch, c.Pitch)
	}
}

func TestHandleZoom(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		want  float32
	}{
		{"zoom in", 1, 4.5},
		{"zoom out", -1, 5.5},
		{"clamp", 100, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.HandleZoom(tt.delta)
			if gomath.Abs(float64(c.Distance-tt.want)) > 1e-5 {
				t.Errorf("expected distance %f, got %f", tt.want, c.Distance)
			}
		})
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	b := math.EmptyAABB().
		Extend(math.Vec3{X: 9, Y: -1, Z: -1}).
		Extend(math.Vec3{X: 11, Y: 1, Z: 1})
	c.FitToBounds(b)

	if c.Center != (math.Vec3{X: 10}) {
		t.Errorf("expected center (10,0,0), got %+v", c.Center)
	}
	if c.Distance <= b.Radius() {
		t.Errorf("expected camera outside the bounds, distance %f radius %f", c.Distance, b.Radius())
	}
	if c.Near >= c.Distance-b.Radius() || c.Far <= c.Distance+b.Radius() {
		t.Errorf("clip planes %f..%f do not enclose the bounds", c.Near, c.Far)
	}

	// Empty bounds leave the camera unchanged
	before := *c
	c.FitToBounds(math.EmptyAABB())
	if *c != before {
		t.Error("expected empty bounds to be ignored")
	}
}

func TestHandlePanKeepsDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.HandlePan(100, -50)

	if c.Center == (math.Vec3{}) {
		t.Error("expected center to move")
	}
	d := c.Position().Sub(c.Center).Length()
	if gomath.Abs(float64(d-c.Distance)) > 1e-4 {
		t.Errorf("expected distance %f, got %f", c.Distance, d)
	}
}
