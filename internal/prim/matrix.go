package prim

import "math"

// Matrix is an affine transform: a 3x3 linear part (Row0/Row1/Row2, each
// a row of the matrix) plus a translation. The implicit last row of the
// corresponding 4x4 homogeneous matrix is always [0, 0, 0, 1].
type Matrix struct {
	Row0, Row1, Row2 Vector3
	Translation      Vector3
}

// Identity is the identity transform.
var Identity = Matrix{
	Row0: Vector3{X: 1},
	Row1: Vector3{Y: 1},
	Row2: Vector3{Z: 1},
}

// FromTranslation builds a pure-translation matrix with an identity
// linear part.
func FromTranslation(t Vector3) Matrix {
	m := Identity
	m.Translation = t
	return m
}

// FromForward builds an orthonormal right/up/forward frame from a single
// forward vector, using the world up axis to resolve the remaining two
// basis vectors. Falls back to world Right when forward is parallel to
// Up, to avoid a degenerate cross product.
func FromForward(forward Vector3) Matrix {
	forward = forward.Normalize()

	worldUp := Up
	right := worldUp.Cross(forward)
	if right.LengthSquared() < 1e-12 {
		worldUp = Right
		right = worldUp.Cross(forward)
	}
	right = right.Normalize()
	up := forward.Cross(right).Normalize()

	return Matrix{
		Row0: Vector3{X: right.X, Y: up.X, Z: forward.X},
		Row1: Vector3{X: right.Y, Y: up.Y, Z: forward.Y},
		Row2: Vector3{X: right.Z, Y: up.Z, Z: forward.Z},
	}
}

// EulerXYZ builds a rotation matrix from Euler angles (radians) applied
// to a vector in the order X, then Y, then Z: v' = Rz * (Ry * (Rx * v)).
func EulerXYZ(x, y, z float64) Matrix {
	return rotZ(z).MulMatrix(rotY(y)).MulMatrix(rotX(x))
}

// EulerZYX builds a rotation matrix applied in the order Z, then Y, then X.
func EulerZYX(x, y, z float64) Matrix {
	return rotX(x).MulMatrix(rotY(y)).MulMatrix(rotZ(z))
}

func rotX(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{
		Row0: Vector3{X: 1, Y: 0, Z: 0},
		Row1: Vector3{X: 0, Y: c, Z: -s},
		Row2: Vector3{X: 0, Y: s, Z: c},
	}
}

func rotY(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{
		Row0: Vector3{X: c, Y: 0, Z: s},
		Row1: Vector3{X: 0, Y: 1, Z: 0},
		Row2: Vector3{X: -s, Y: 0, Z: c},
	}
}

func rotZ(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{
		Row0: Vector3{X: c, Y: -s, Z: 0},
		Row1: Vector3{X: s, Y: c, Z: 0},
		Row2: Vector3{X: 0, Y: 0, Z: 1},
	}
}

// column returns the i-th column of the 3x3 linear part.
func (m Matrix) column(i int) Vector3 {
	return Vector3{X: m.Row0.Axis(i), Y: m.Row1.Axis(i), Z: m.Row2.Axis(i)}
}

// TransformVector applies only the linear part (no translation) — used
// for direction vectors.
func (m Matrix) TransformVector(v Vector3) Vector3 {
	return Vector3{X: m.Row0.Dot(v), Y: m.Row1.Dot(v), Z: m.Row2.Dot(v)}
}

// TransformPoint applies the full affine transform — used for points.
func (m Matrix) TransformPoint(v Vector3) Vector3 {
	return m.TransformVector(v).Add(m.Translation)
}

// MulMatrix composes two affine transforms so that
// (m.MulMatrix(other)).TransformPoint(v) == m.TransformPoint(other.TransformPoint(v)).
func (m Matrix) MulMatrix(other Matrix) Matrix {
	c0 := m.TransformVector(other.column(0))
	c1 := m.TransformVector(other.column(1))
	c2 := m.TransformVector(other.column(2))
	return Matrix{
		Row0:        Vector3{X: c0.X, Y: c1.X, Z: c2.X},
		Row1:        Vector3{X: c0.Y, Y: c1.Y, Z: c2.Y},
		Row2:        Vector3{X: c0.Z, Y: c1.Z, Z: c2.Z},
		Translation: m.TransformPoint(other.Translation),
	}
}

// Right, UpVector and ForwardVector read the three basis rows as columns
// of the linear part (i.e. where the frame's +X/+Y/+Z axes map to).
func (m Matrix) Right() Vector3   { return m.column(0) }
func (m Matrix) UpVector() Vector3 { return m.column(1) }
func (m Matrix) ForwardVector() Vector3 { return m.column(2) }

// VectorFromMatrix extracts the translation component of the matrix.
func VectorFromMatrix(m Matrix) Vector3 {
	return m.Translation
}
