package abi

import (
	"testing"

	"github.com/Faultbox/goassimp/pkg/math"
)

func TestMatrix4x4FromMat4(t *testing.T) {
	var m math.Mat4
	for i := range m {
		m[i] = float32(i + 1)
	}

	got := Matrix4x4FromMat4(m)

	// Column-major input: element (row r, col c) lives at c*4+r.
	want := Matrix4x4{
		A1: 1, A2: 5, A3: 9, A4: 13,
		B1: 2, B2: 6, B3: 10, B4: 14,
		C1: 3, C2: 7, C3: 11, C4: 15,
		D1: 4, D2: 8, D3: 12, D4: 16,
	}
	if got != want {
		t.Errorf("Matrix4x4FromMat4 = %+v, want %+v", got, want)
	}

	if back := got.Mat4(); back != m {
		t.Errorf("round trip = %v, want %v", back, m)
	}
}

func TestMatrix4x4Translation(t *testing.T) {
	m := Matrix4x4FromMat4(math.Translate(5, 10, 15))
	if m.A4 != 5 || m.B4 != 10 || m.C4 != 15 {
		t.Errorf("translation = (%v, %v, %v), want (5, 10, 15)", m.A4, m.B4, m.C4)
	}
	if m.At(0, 3) != 5 {
		t.Errorf("At(0, 3) = %v, want 5", m.At(0, 3))
	}
}

func TestIdentity4x4(t *testing.T) {
	if Identity4x4().Mat4() != math.Identity() {
		t.Error("Identity4x4 does not match math.Identity")
	}
}

func TestMatrix3x3RoundTrip(t *testing.T) {
	m3 := [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Matrix3x3FromMat3(m3)
	if got.A2 != 4 || got.B1 != 2 || got.C3 != 9 {
		t.Errorf("Matrix3x3FromMat3 = %+v", got)
	}
	if got.Mat3() != m3 {
		t.Errorf("round trip = %v, want %v", got.Mat3(), m3)
	}
	if Identity3x3().Mat3() != math.Identity().Mat3x3() {
		t.Error("Identity3x3 does not match math.Identity().Mat3x3()")
	}
}

func TestQuaternionOrder(t *testing.T) {
	q := Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	mq := q.Quat()
	if mq.W != 1 || mq.X != 2 || mq.Y != 3 || mq.Z != 4 {
		t.Errorf("Quat() = %+v", mq)
	}
	if QuaternionFromQuat(mq) != q {
		t.Error("quaternion round trip failed")
	}
}
