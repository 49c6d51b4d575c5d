package vector

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3 is a 3-component float32 vector.
type Vector3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// ZeroVector3 returns (0, 0, 0).
func ZeroVector3() Vector3 {
	return Vector3{}
}

// Vector3FromArray converts a [x, y, z] array positionally.
func Vector3FromArray(a [3]float32) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// Vector3FromSlice converts a [x, y, z] slice positionally.
// Returns ErrArityMismatch unless len(s) == 3.
func Vector3FromSlice(s []float32) (Vector3, error) {
	if err := checkArity(3, len(s)); err != nil {
		return Vector3{}, err
	}
	return Vector3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Vector3FromPolar converts spherical coordinates to Cartesian ones using the
// physics convention:
//
//	x = r * sin(theta) * cos(phi)
//	y = r * sin(theta) * sin(phi)
//	z = r * cos(theta)
//
// theta is the polar angle from the +z axis and phi is the azimuth in the
// xy-plane from the +x axis. Both are radians; see DegToRad.
//
// Example:
//
//	v := Vector3FromPolar(2, DegToRad(90), 0) // ≈ (2, 0, 0)
func Vector3FromPolar(r, theta, phi float32) Vector3 {
	sinTheta := math32.Sin(theta)
	return Vector3{
		X: r * sinTheta * math32.Cos(phi),
		Y: r * sinTheta * math32.Sin(phi),
		Z: r * math32.Cos(theta),
	}
}

// Add returns the component-wise sum v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// AddScalar adds s to every component.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// Sub returns the component-wise difference v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SubScalar subtracts s from every component.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Mul returns the component-wise (Hadamard) product. Use Cross for the
// vector product.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Scale multiplies every component by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns (-x, -y, -z).
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Magnitude returns the Euclidean length sqrt(x² + y² + z²).
//
// Example:
//
//	NewVector3(3, 4, 0).Magnitude() // 5
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length.
//
// The zero vector is not special-cased: 1/0 is +Inf and 0 * Inf is NaN, so
// every component of the result is NaN. Check Magnitude first if a finite
// result is required.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1 / v.Magnitude())
}

// Theta returns the polar angle from the +z axis, in [0, π].
// It is NaN for the zero vector.
func (v Vector3) Theta() float32 {
	return math32.Acos(v.Z / v.Magnitude())
}

// Phi returns the azimuthal angle in the xy-plane from the +x axis, in
// (-π, π]. It is well defined on the axes, including x == 0.
func (v Vector3) Phi() float32 {
	return math32.Atan2(v.Y, v.X)
}

// XY drops the z component.
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Cross returns the cross product v × o. It is anticommutative:
// a.Cross(b) == b.Cross(a).Neg().
//
// Example:
//
//	NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)) // (0, 0, 1)
func (v Vector3) Cross(o Vector3) Vector3 {
	// Explicit conversions round each product and stop FMA fusion, which
	// keeps v.Cross(v) exactly zero on every architecture.
	return Vector3{
		X: float32(v.Y*o.Z) - float32(v.Z*o.Y),
		Y: float32(v.Z*o.X) - float32(v.X*o.Z),
		Z: float32(v.X*o.Y) - float32(v.Y*o.X),
	}
}

// ToArray returns [x, y, z].
func (v Vector3) ToArray() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// String formats v for debugging.
func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.X, v.Y, v.Z)
}
