package vector

import "fmt"

// Vector4 is a 4-component float32 vector.
//
// Only component-wise arithmetic is defined. Homogeneous-coordinate
// operations such as the perspective divide are left to the caller.
type Vector4 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
	W float32 `json:"w" yaml:"w"`
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// ZeroVector4 returns (0, 0, 0, 0).
func ZeroVector4() Vector4 {
	return Vector4{}
}

// Vector4FromArray converts a [x, y, z, w] array positionally.
func Vector4FromArray(a [4]float32) Vector4 {
	return Vector4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Vector4FromSlice converts a [x, y, z, w] slice positionally.
// Returns ErrArityMismatch unless len(s) == 4.
func Vector4FromSlice(s []float32) (Vector4, error) {
	if err := checkArity(4, len(s)); err != nil {
		return Vector4{}, err
	}
	return Vector4{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Add returns the component-wise sum v + o.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// AddScalar adds s to every component.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// Sub returns the component-wise difference v - o.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// SubScalar subtracts s from every component.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// Mul returns the component-wise (Hadamard) product.
func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W * o.W}
}

// Scale multiplies every component by s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns (-x, -y, -z, -w).
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// ToArray returns [x, y, z, w].
func (v Vector4) ToArray() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// String formats v for debugging.
func (v Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
