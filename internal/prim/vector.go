// Package prim implements the L0/L1 primitives for 3D graphics: vectors,
// affine matrices, rays, and color.
package prim

import (
	"fmt"
	"math"
)

// Vector3 is a 3-component vector used for points, directions, and colors
// in linear space. The zero value is the zero vector.
type Vector3 struct {
	X, Y, Z float64
}

var (
	Up      = Vector3{X: 0, Y: 1, Z: 0}
	Forward = Vector3{X: 0, Y: 0, Z: -1}
	Right   = Vector3{X: 1, Y: 0, Z: 0}

	VectorMin = Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	VectorMax = Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
)

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul multiplies two vectors componentwise.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Div divides two vectors componentwise.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) ScaleDiv(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector3) Normalize() Vector3 {
	return v.ScaleDiv(v.Length())
}

// Inverse returns the componentwise reciprocal, used to precompute a ray's
// inverse direction for the AABB slab test.
func (v Vector3) Inverse() Vector3 {
	return Vector3{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z}
}

func (v Vector3) Abs() Vector3 {
	return Vector3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Axis returns the i-th component (0=X, 1=Y, 2=Z).
func (v Vector3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("prim: invalid axis %d", i))
	}
}

// MaxAxis returns the index of the component with the largest magnitude.
func (v Vector3) MaxAxis() int {
	a := v.Abs()
	axis := 0
	best := a.X
	if a.Y > best {
		axis, best = 1, a.Y
	}
	if a.Z > best {
		axis = 2
	}
	return axis
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Lerp linearly interpolates from v to other by t in [0, 1].
func (v Vector3) Lerp(other Vector3, t float64) Vector3 {
	return Vector3{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vector3) Vector3 {
	return Vector3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Vector3) Vector3 {
	return Vector3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Blerp performs bilinear interpolation of four corner values arranged as
//
//	c00 --- c10
//	 |       |
//	c01 --- c11
//
// at fractional position (tx, ty) in [0, 1]^2.
func Blerp(c00, c10, c01, c11 Vector3, tx, ty float64) Vector3 {
	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// Fract returns the fractional part of x, wrapped into [0, 1) the way
// Rust's rem_euclid(1.0) does (always non-negative, unlike math.Mod).
func Fract(x float64) float64 {
	f := math.Mod(x, 1.0)
	if f < 0 {
		f += 1.0
	}
	return f
}

// Clamp limits x to [min, max].
func Clamp(x, min, max float64) float64 {
	return math.Min(math.Max(x, min), max)
}
