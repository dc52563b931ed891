// Package reflection rebuilds nested shader reflection data from the flat
// variable lists a GL program introspection query returns.
//
// The central piece is TreeBuilder, which parses dotted and indexed
// variable names ("lights[2].colour") back into structure and array nodes.
// Reflect assembles a full ShaderReflection around it: resources, uniform
// blocks, storage buffer layouts and input/output signatures.
package reflection

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VarType is the base numeric type of a variable.
type VarType uint8

const (
	VarFloat VarType = iota
	VarDouble
	VarInt
	VarUInt
)

var varTypeNames = [...]string{"float", "double", "int", "uint"}

func (v VarType) String() string {
	if int(v) < len(varTypeNames) {
		return varTypeNames[v]
	}
	return fmt.Sprintf("VarType(%d)", uint8(v))
}

func (v VarType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *VarType) UnmarshalText(b []byte) error {
	for i, n := range varTypeNames {
		if n == string(b) {
			*v = VarType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown variable type %q", b)
}

// GLType is a GL type enumerant such as GL_FLOAT_VEC4.
type GLType uint32

func (t GLType) String() string {
	if n, ok := glTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", uint32(t))
}

// MarshalJSON writes the symbolic name when one is known.
func (t GLType) MarshalJSON() ([]byte, error) {
	if n, ok := glTypeNames[t]; ok {
		return json.Marshal(n)
	}
	return json.Marshal(uint32(t))
}

// UnmarshalJSON accepts a number, a "GL_*" name or a "0x" hex string.
func (t *GLType) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err == nil {
		*t = GLType(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("gl type: %w", err)
	}
	parsed, err := ParseGLType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseGLType resolves a symbolic or numeric enumerant.
func ParseGLType(s string) (GLType, error) {
	for t, n := range glTypeNames {
		if n == s {
			return t, nil
		}
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err == nil {
			return GLType(v), nil
		}
	}
	return 0, fmt.Errorf("unknown gl type %q", s)
}

// TypeDesc describes a numeric variable type.
type TypeDesc struct {
	Type VarType `json:"type"`
	Rows uint32  `json:"rows"`
	Cols uint32  `json:"cols"`
	Name string  `json:"name"`
}

// Describe maps a GL type to its numeric description. Samplers, images and
// other opaque handles report false.
func Describe(t GLType) (TypeDesc, bool) {
	d, ok := numericTypes[t]
	return d, ok
}

// StorageOrder is the (register, component) pair used to order sibling
// variables the way the driver laid them out.
type StorageOrder struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}

// Unbound sorts after every real storage order.
var Unbound = StorageOrder{Major: ^uint32(0), Minor: ^uint32(0)}

// Less orders by major index, then minor.
func (o StorageOrder) Less(other StorageOrder) bool {
	if o.Major == other.Major {
		return o.Minor < other.Minor
	}
	return o.Major < other.Major
}

func minOrder(a, b StorageOrder) StorageOrder {
	if b.Less(a) {
		return b
	}
	return a
}

// OrderFrom derives a storage order from a uniform location and a buffer
// offset in bytes. Loose uniforms have no offset (-1) and order by
// location; block members order by 16-byte register and 4-byte component.
func OrderFrom(location, offset int32) StorageOrder {
	switch {
	case offset == -1 && location >= 0:
		return StorageOrder{Major: uint32(location)}
	case offset >= 0:
		return StorageOrder{Major: uint32(offset) / 16, Minor: (uint32(offset) / 4) % 4}
	default:
		return Unbound
	}
}
