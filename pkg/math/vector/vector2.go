package vector

import "fmt"

// Vector2 is a 2-component float32 vector.
type Vector2 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// ZeroVector2 returns (0, 0).
func ZeroVector2() Vector2 {
	return Vector2{}
}

// Vector2FromArray converts a [x, y] array positionally.
func Vector2FromArray(a [2]float32) Vector2 {
	return Vector2{X: a[0], Y: a[1]}
}

// Vector2FromSlice converts a [x, y] slice positionally.
// Returns ErrArityMismatch unless len(s) == 2.
func Vector2FromSlice(s []float32) (Vector2, error) {
	if err := checkArity(2, len(s)); err != nil {
		return Vector2{}, err
	}
	return Vector2{X: s[0], Y: s[1]}, nil
}

// Add returns the component-wise sum v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddScalar adds s to both components.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

// Sub returns the component-wise difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SubScalar subtracts s from both components.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{X: v.X - s, Y: v.Y - s}
}

// Mul returns the component-wise (Hadamard) product. It is not a dot product.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Neg returns (-x, -y).
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// ToArray returns [x, y].
func (v Vector2) ToArray() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// String formats v for debugging.
func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y)
}
