package core

import "math"

// Vec4 represents a homogeneous 4-component vector
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Point lifts a Vec3 to a homogeneous point (w=1)
func (v Vec3) Point() Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// Vec3 drops the homogeneous coordinate
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Mat4 is a 4x4 affine transform stored as 4 column vectors.
// Column j holds the image of basis vector j, so Mat4·Vec4 contracts
// column index against vector component (column-major convention).
type Mat4 struct {
	Cols [4]Vec4
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{Cols: [4]Vec4{
		{X: 1}, {Y: 1}, {Z: 1}, {W: 1},
	}}
}

// Translate returns a translation transform
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m.Cols[3] = Vec4{X: x, Y: y, Z: z, W: 1}
	return m
}

// RotateX returns a rotation around the X axis
func RotateX(angle float64) Mat4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	m := Identity()
	m.Cols[1] = Vec4{Y: cos, Z: sin}
	m.Cols[2] = Vec4{Y: -sin, Z: cos}
	return m
}

// RotateY returns a rotation around the Y axis
func RotateY(angle float64) Mat4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	m := Identity()
	m.Cols[0] = Vec4{X: cos, Z: -sin}
	m.Cols[2] = Vec4{X: sin, Z: cos}
	return m
}

// RotateZ returns a rotation around the Z axis
func RotateZ(angle float64) Mat4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	m := Identity()
	m.Cols[0] = Vec4{X: cos, Y: sin}
	m.Cols[1] = Vec4{X: -sin, Y: cos}
	return m
}

// MulVec returns the matrix-vector product
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m.Cols[0].X*v.X + m.Cols[1].X*v.Y + m.Cols[2].X*v.Z + m.Cols[3].X*v.W,
		Y: m.Cols[0].Y*v.X + m.Cols[1].Y*v.Y + m.Cols[2].Y*v.Z + m.Cols[3].Y*v.W,
		Z: m.Cols[0].Z*v.X + m.Cols[1].Z*v.Y + m.Cols[2].Z*v.Z + m.Cols[3].Z*v.W,
		W: m.Cols[0].W*v.X + m.Cols[1].W*v.Y + m.Cols[2].W*v.Z + m.Cols[3].W*v.W,
	}
}

// Mul returns the matrix product m·other. Each output column is m applied
// to the corresponding column of other, so composition associates
// right-to-left: the rightmost transform is applied to geometry first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for j := 0; j < 4; j++ {
		result.Cols[j] = m.MulVec(other.Cols[j])
	}
	return result
}

// TransformPoint applies the affine transform to a 3D point (w=1)
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return m.MulVec(v.Point()).Vec3()
}
