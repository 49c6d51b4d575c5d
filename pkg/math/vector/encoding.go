package vector

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// componentSize is the encoded width of one float32 component.
const componentSize = 4

// componentNames are the field names in encoding order.
var componentNames = [4]string{"x", "y", "z", "w"}

// Field-only views of the vector types. They carry the struct tags but none
// of the methods, so decoders fall back to plain struct handling.
type (
	vector2Fields Vector2
	vector3Fields Vector3
	vector4Fields Vector4
)

// MarshalBinary encodes v as 8 bytes: x then y, little-endian IEEE-754.
func (v Vector2) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 2*componentSize))
}

// AppendBinary appends the MarshalBinary encoding of v to b.
func (v Vector2) AppendBinary(b []byte) ([]byte, error) {
	return appendComponents(b, v.X, v.Y), nil
}

// UnmarshalBinary decodes the MarshalBinary encoding.
// Returns ErrArityMismatch unless len(data) == 8.
func (v *Vector2) UnmarshalBinary(data []byte) error {
	c, err := readComponents(data, 2)
	if err != nil {
		return err
	}
	*v = Vector2{X: c[0], Y: c[1]}
	return nil
}

// MarshalBinary encodes v as 12 bytes: x, y then z, little-endian IEEE-754.
func (v Vector3) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 3*componentSize))
}

// AppendBinary appends the MarshalBinary encoding of v to b.
func (v Vector3) AppendBinary(b []byte) ([]byte, error) {
	return appendComponents(b, v.X, v.Y, v.Z), nil
}

// UnmarshalBinary decodes the MarshalBinary encoding.
// Returns ErrArityMismatch unless len(data) == 12.
func (v *Vector3) UnmarshalBinary(data []byte) error {
	c, err := readComponents(data, 3)
	if err != nil {
		return err
	}
	*v = Vector3{X: c[0], Y: c[1], Z: c[2]}
	return nil
}

// MarshalBinary encodes v as 16 bytes: x, y, z then w, little-endian IEEE-754.
func (v Vector4) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, 4*componentSize))
}

// AppendBinary appends the MarshalBinary encoding of v to b.
func (v Vector4) AppendBinary(b []byte) ([]byte, error) {
	return appendComponents(b, v.X, v.Y, v.Z, v.W), nil
}

// UnmarshalBinary decodes the MarshalBinary encoding.
// Returns ErrArityMismatch unless len(data) == 16.
func (v *Vector4) UnmarshalBinary(data []byte) error {
	c, err := readComponents(data, 4)
	if err != nil {
		return err
	}
	*v = Vector4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
	return nil
}

// UnmarshalJSON accepts {"x":1,"y":2} or [1,2].
func (v *Vector2) UnmarshalJSON(data []byte) error {
	if s, ok, err := jsonSequence(data); ok {
		if err != nil {
			return err
		}
		out, err := Vector2FromSlice(s)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}
	fields := vector2Fields(*v)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*v = Vector2(fields)
	return nil
}

// UnmarshalJSON accepts {"x":1,"y":2,"z":3} or [1,2,3].
func (v *Vector3) UnmarshalJSON(data []byte) error {
	if s, ok, err := jsonSequence(data); ok {
		if err != nil {
			return err
		}
		out, err := Vector3FromSlice(s)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}
	fields := vector3Fields(*v)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*v = Vector3(fields)
	return nil
}

// UnmarshalJSON accepts {"x":1,"y":2,"z":3,"w":4} or [1,2,3,4].
func (v *Vector4) UnmarshalJSON(data []byte) error {
	if s, ok, err := jsonSequence(data); ok {
		if err != nil {
			return err
		}
		out, err := Vector4FromSlice(s)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}
	fields := vector4Fields(*v)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*v = Vector4(fields)
	return nil
}

// MarshalYAML emits v as a flow mapping: {x: 1, y: 2}.
func (v Vector2) MarshalYAML() (interface{}, error) {
	return flowMapping(v.X, v.Y), nil
}

// UnmarshalYAML accepts a mapping with x and y keys or a 2-element sequence.
func (v *Vector2) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		s, err := yamlSequence(n)
		if err != nil {
			return err
		}
		out, err := Vector2FromSlice(s)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}
	fields := vector2Fields(*v)
	if err := n.Decode(&fields); err != nil {
		return err
	}
	*v = Vector2(fields)
	return nil
}

// MarshalYAML emits v as a flow mapping: {x: 1, y: 2, z: 3}.
func (v Vector3) MarshalYAML() (interface{}, error) {
	return flowMapping(v.X, v.Y, v.Z), nil
}

// UnmarshalYAML accepts a mapping with x, y and z keys or a 3-element
// sequence.
func (v *Vector3) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		s, err := yamlSequence(n)
		if err != nil {
			return err
		}
		out, err := Vector3FromSlice(s)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}
	fields := vector3Fields(*v)
	if err := n.Decode(&fields); err != nil {
		return err
	}
	*v = Vector3(fields)
	return nil
}

// MarshalYAML emits v as a flow mapping: {x: 1, y: 2, z: 3, w: 4}.
func (v Vector4) MarshalYAML() (interface{}, error) {
	return flowMapping(v.X, v.Y, v.Z, v.W), nil
}

// UnmarshalYAML accepts a mapping with x, y, z and w keys or a 4-element
// sequence.
func (v *Vector4) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		s, err := yamlSequence(n)
		if err != nil {
			return err
		}
		out, err := Vector4FromSlice(s)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}
	fields := vector4Fields(*v)
	if err := n.Decode(&fields); err != nil {
		return err
	}
	*v = Vector4(fields)
	return nil
}

func appendComponents(b []byte, components ...float32) []byte {
	for _, c := range components {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(c))
	}
	return b
}

func readComponents(data []byte, n int) ([]float32, error) {
	if len(data)%componentSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of float32 components",
			ErrArityMismatch, len(data))
	}
	if err := checkArity(n, len(data)/componentSize); err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*componentSize:]))
	}
	return out, nil
}

// jsonSequence decodes data as a JSON array of numbers. ok is false when data
// is not an array, in which case the caller decodes it as an object.
func jsonSequence(data []byte) (s []float32, ok bool, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, nil
	}
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, true, err
	}
	return s, true, nil
}

func yamlSequence(n *yaml.Node) ([]float32, error) {
	var s []float32
	if err := n.Decode(&s); err != nil {
		return nil, err
	}
	return s, nil
}

// flowMapping builds the mapping node by hand because the yaml encoder quotes
// the key "y" as a YAML 1.1 boolean.
func flowMapping(components ...float32) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for i, c := range components {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: componentNames[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Value: formatYAMLFloat(c)},
		)
	}
	return n
}

// formatYAMLFloat uses the shortest representation that round-trips at
// float32 precision, and the YAML spellings of NaN and the infinities.
// Negative zero is spelled -0.0 because a plain -0 resolves as the int 0.
func formatYAMLFloat(f float32) string {
	switch {
	case math32.IsNaN(f):
		return ".nan"
	case math32.IsInf(f, 1):
		return ".inf"
	case math32.IsInf(f, -1):
		return "-.inf"
	case f == 0 && math.Signbit(float64(f)):
		return "-0.0"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
