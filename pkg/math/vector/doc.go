// Package vector provides fixed-size float32 vector types for graphics,
// physics and simulation code.
//
// Three value types are provided:
//
//   - Vector2: (x, y)
//   - Vector3: (x, y, z), with magnitude, normalization, spherical
//     coordinates and the cross product
//   - Vector4: (x, y, z, w)
//
// All three are plain structs passed and returned by value. Every method
// returns a new vector; nothing is modified in place, so values may be shared
// between goroutines freely.
//
// # Arithmetic
//
// Go has no operator overloading, so operators are named methods:
//
//	a := vector.NewVector2(1, 2)
//	b := vector.NewVector2(3, 4)
//
//	a.Add(b)        // (4, 6)
//	a.Sub(b)        // (-2, -2)
//	a.Mul(b)        // (3, 8), component-wise, not a dot product
//	a.Scale(2)      // (2, 4)
//	a.AddScalar(1)  // (2, 3)
//
// # Floating Point
//
// Arithmetic never returns errors. NaN and Infinity propagate according to
// IEEE-754, so normalizing a zero vector yields NaN components and Theta of a
// zero vector is NaN. Callers that need finite results must check magnitude
// first.
//
// # Spherical Coordinates
//
// Vector3FromPolar, Theta and Phi use the physics convention: theta is the
// polar angle measured from +z and phi is the azimuth in the xy-plane measured
// from +x. Angles are radians; DegToRad and RadToDeg convert.
//
// # Encoding
//
// Each type encodes as an ordered record of its named fields (x, y, z, w):
//
//   - JSON: {"x":1,"y":2,"z":3}; decoding also accepts [1,2,3]
//   - YAML: {x: 1, y: 2, z: 3}; decoding also accepts [1, 2, 3]; .nan and
//     .inf are preserved
//   - Binary: little-endian IEEE-754 bits, 4 bytes per component, exact for
//     every value including NaN payloads
//
// Sequences and slices of the wrong length fail with ErrArityMismatch.
package vector
