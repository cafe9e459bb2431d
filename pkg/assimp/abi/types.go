package abi

import "github.com/Faultbox/goassimp/pkg/math"

// Vector2D mirrors aiVector2D.
type Vector2D struct {
	X, Y float32
}

// Vector3D mirrors aiVector3D.
type Vector3D struct {
	X, Y, Z float32
}

// Color3D mirrors aiColor3D.
type Color3D struct {
	R, G, B float32
}

// Color4D mirrors aiColor4D.
type Color4D struct {
	R, G, B, A float32
}

// Quaternion mirrors aiQuaternion. W is stored first.
type Quaternion struct {
	W, X, Y, Z float32
}

// Matrix3x3 mirrors aiMatrix3x3, stored row by row.
type Matrix3x3 struct {
	A1, A2, A3 float32
	B1, B2, B3 float32
	C1, C2, C3 float32
}

// Matrix4x4 mirrors aiMatrix4x4, stored row by row: A1..A4 is the first
// row and the translation lives in A4, B4, C4.
type Matrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// Plane mirrors aiPlane (ax + by + cz = d).
type Plane struct {
	A, B, C, D float32
}

// Ray mirrors aiRay.
type Ray struct {
	Pos Vector3D
	Dir Vector3D
}

// Texel mirrors aiTexel, BGRA byte order.
type Texel struct {
	B, G, R, A uint8
}

// UVTransform mirrors aiUVTransform.
type UVTransform struct {
	Translation Vector2D
	Scaling     Vector2D
	Rotation    float32
}

// Identity4x4 returns the 4x4 identity matrix.
func Identity4x4() Matrix4x4 {
	return Matrix4x4{A1: 1, B2: 1, C3: 1, D4: 1}
}

// Identity3x3 returns the 3x3 identity matrix.
func Identity3x3() Matrix3x3 {
	return Matrix3x3{A1: 1, B2: 1, C3: 1}
}

// Vec2 converts v.
func (v Vector2D) Vec2() math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}

// Vec3 converts v.
func (v Vector3D) Vec3() math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector3DFromVec3 converts v.
func Vector3DFromVec3(v math.Vec3) Vector3D {
	return Vector3D{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec3 converts c with R, G, B mapped to X, Y, Z.
func (c Color3D) Vec3() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Vec4 converts c.
func (c Color4D) Vec4() math.Vec4 {
	return math.Vec4{c.R, c.G, c.B, c.A}
}

// Color4DFromVec4 converts v.
func Color4DFromVec4(v math.Vec4) Color4D {
	return Color4D{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Quat converts q to the X, Y, Z, W ordering of math.Quat.
func (q Quaternion) Quat() math.Quat {
	return math.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// QuaternionFromQuat converts q.
func QuaternionFromQuat(q math.Quat) Quaternion {
	return Quaternion{W: q.W, X: q.X, Y: q.Y, Z: q.Z}
}

// Mat4 converts the row-major m to the column-major math.Mat4.
func (m Matrix4x4) Mat4() math.Mat4 {
	return math.Mat4{
		m.A1, m.B1, m.C1, m.D1,
		m.A2, m.B2, m.C2, m.D2,
		m.A3, m.B3, m.C3, m.D3,
		m.A4, m.B4, m.C4, m.D4,
	}
}

// Matrix4x4FromMat4 converts the column-major m.
func Matrix4x4FromMat4(m math.Mat4) Matrix4x4 {
	return Matrix4x4{
		A1: m[0], A2: m[4], A3: m[8], A4: m[12],
		B1: m[1], B2: m[5], B3: m[9], B4: m[13],
		C1: m[2], C2: m[6], C3: m[10], C4: m[14],
		D1: m[3], D2: m[7], D3: m[11], D4: m[15],
	}
}

// At returns the element at row, col (both zero based).
func (m Matrix4x4) At(row, col int) float32 {
	return m.Mat4()[col*4+row]
}

// Mat3 converts the row-major m to a column-major 3x3 array.
func (m Matrix3x3) Mat3() [9]float32 {
	return [9]float32{
		m.A1, m.B1, m.C1,
		m.A2, m.B2, m.C2,
		m.A3, m.B3, m.C3,
	}
}

// Matrix3x3FromMat3 converts a column-major 3x3 array.
func Matrix3x3FromMat3(m [9]float32) Matrix3x3 {
	return Matrix3x3{
		A1: m[0], A2: m[3], A3: m[6],
		B1: m[1], B2: m[4], B3: m[7],
		C1: m[2], C2: m[5], C3: m[8],
	}
}
