package reflection

import (
	"fmt"
	"strings"
)

// ResourceType is the shape of a bound resource.
type ResourceType uint8

const (
	ResBuffer ResourceType = iota
	ResTexture1D
	ResTexture1DArray
	ResTexture2D
	ResTextureRect
	ResTexture2DArray
	ResTexture2DMS
	ResTexture2DMSArray
	ResTexture3D
	ResTextureCube
	ResTextureCubeArray
)

var resourceTypeNames = [...]string{
	"Buffer", "Texture1D", "Texture1DArray", "Texture2D", "TextureRect",
	"Texture2DArray", "Texture2DMS", "Texture2DMSArray", "Texture3D",
	"TextureCube", "TextureCubeArray",
}

func (r ResourceType) String() string {
	if int(r) < len(resourceTypeNames) {
		return resourceTypeNames[r]
	}
	return fmt.Sprintf("ResourceType(%d)", uint8(r))
}

func (r ResourceType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *ResourceType) UnmarshalText(b []byte) error {
	for i, n := range resourceTypeNames {
		if n == string(b) {
			*r = ResourceType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown resource type %q", b)
}

// ShaderResource is a texture, image, atomic counter or storage buffer the
// shader binds.
type ShaderResource struct {
	Name        string          `json:"name"`
	ResType     ResourceType    `json:"resType"`
	IsSampler   bool            `json:"isSampler"`
	IsTexture   bool            `json:"isTexture"`
	IsSRV       bool            `json:"isSRV"`
	IsReadWrite bool            `json:"isReadWrite"`
	BindPoint   int32           `json:"bindPoint"`
	Variable    TypeDesc        `json:"variable"`
	Elements    uint32          `json:"elements,omitempty"`
	Members     []*ConstantNode `json:"members,omitempty"`
}

// SamplerResource classifies an opaque uniform type. Samplers are
// read-only textures, images are read-write, atomic counters are
// read-write single-uint buffers. Anything else reports false.
func SamplerResource(t GLType) (ShaderResource, bool) {
	if t == GLUnsignedIntAtomicCounter {
		return ShaderResource{
			ResType:     ResBuffer,
			IsReadWrite: true,
			Variable:    TypeDesc{Type: VarUInt, Rows: 1, Cols: 1, Name: "atomic_uint"},
		}, true
	}
	kind, ok := resourceTypes[t]
	if !ok {
		return ShaderResource{}, false
	}
	return ShaderResource{
		ResType:     kind.resType,
		IsTexture:   true,
		IsSRV:       !kind.image,
		IsReadWrite: kind.image,
		Variable:    TypeDesc{Type: kind.varType, Rows: 1, Cols: 4, Name: kind.name},
	}, true
}

// isAtomicCounter matches the shape SamplerResource gives atomic counters.
func (r ShaderResource) isAtomicCounter() bool {
	return r.IsReadWrite && !r.IsTexture && r.Variable.Rows == 1 && r.Variable.Cols == 1 && r.Variable.Type == VarUInt
}

// appendSamplers adds the resource for one opaque uniform to list, one
// entry per array element. Bind points are list positions.
func appendSamplers(list []ShaderResource, v FlatVariable) []ShaderResource {
	res, ok := SamplerResource(v.Type)
	if !ok {
		return list
	}
	res.Name = v.Name
	res.BindPoint = int32(len(list))
	list = append(list, res)

	if v.ArraySize > 1 {
		base, _ := strings.CutSuffix(v.Name, "[0]")
		for i := int32(1); i < v.ArraySize; i++ {
			res.Name = fmt.Sprintf("%s[%d]", base, i)
			res.BindPoint = int32(len(list))
			list = append(list, res)
		}
	}
	return list
}

// baseName strips one trailing array subscript: "tex[3]" -> "tex".
func baseName(name string) string {
	if !strings.HasSuffix(name, "]") {
		return name
	}
	if i := strings.LastIndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}
