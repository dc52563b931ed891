package reflection

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Stage is a programmable pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageTessControl
	StageTessEval
	StageGeometry
	StageFragment
	StageCompute
)

var stageNames = [...]string{"vertex", "tess_control", "tess_eval", "geometry", "fragment", "compute"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stage) UnmarshalText(b []byte) error {
	st, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// StageNames lists the accepted stage names in pipeline order.
func StageNames() []string { return slices.Clone(stageNames[:]) }

// ParseStage accepts the lower-case stage names used in dumps and flags.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q (want one of %s)", name, strings.Join(stageNames[:], ", "))
}

// CompType is the component type of a signature element.
type CompType uint8

const (
	CompFloat CompType = iota
	CompSInt
	CompUInt
)

var compTypeNames = [...]string{"float", "sint", "uint"}

func (c CompType) String() string {
	if int(c) < len(compTypeNames) {
		return compTypeNames[c]
	}
	return fmt.Sprintf("CompType(%d)", uint8(c))
}

func (c CompType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// SystemValue identifies a builtin input or output. Signatures sort by
// this value first, so the order of the constants is significant.
type SystemValue uint8

const (
	SysNone SystemValue = iota
	SysPosition
	SysPointSize
	SysClipDistance
	SysCullDistance
	SysRTIndex
	SysViewportIndex
	SysVertexIndex
	SysPrimitiveIndex
	SysInstanceIndex
	SysInvocationIndex
	SysDispatchSize
	SysDispatchThreadIndex
	SysGroupIndex
	SysGroupFlatIndex
	SysGroupThreadIndex
	SysGSInstanceIndex
	SysOutputControlPointIndex
	SysDomainLocation
	SysIsFrontFace
	SysMSAACoverage
	SysMSAASamplePosition
	SysMSAASampleIndex
	SysPatchNumVertices
	SysOuterTessFactor
	SysInsideTessFactor
	SysColourOutput
	SysDepthOutput
)

var systemValueNames = [...]string{
	"None", "Position", "PointSize", "ClipDistance", "CullDistance", "RTIndex",
	"ViewportIndex", "VertexIndex", "PrimitiveIndex", "InstanceIndex",
	"InvocationIndex", "DispatchSize", "DispatchThreadIndex", "GroupIndex",
	"GroupFlatIndex", "GroupThreadIndex", "GSInstanceIndex",
	"OutputControlPointIndex", "DomainLocation", "IsFrontFace", "MSAACoverage",
	"MSAASamplePosition", "MSAASampleIndex", "PatchNumVertices",
	"OuterTessFactor", "InsideTessFactor", "ColourOutput", "DepthOutput",
}

func (s SystemValue) String() string {
	if int(s) < len(systemValueNames) {
		return systemValueNames[s]
	}
	return fmt.Sprintf("SystemValue(%d)", uint8(s))
}

func (s SystemValue) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// builtins maps GLSL builtin name prefixes to system values. Every entry is
// tested and the last match wins, so gl_PrimitiveIDIn and gl_SampleMaskIn
// resolve through their longer entries.
var builtins = []struct {
	prefix string
	value  SystemValue
}{
	{"gl_VertexID", SysVertexIndex},
	{"gl_InstanceID", SysInstanceIndex},
	{"gl_Position", SysPosition},
	{"gl_PointSize", SysPointSize},
	{"gl_ClipDistance", SysClipDistance},
	{"gl_CullDistance", SysCullDistance},
	{"gl_PatchVerticesIn", SysPatchNumVertices},
	{"gl_PrimitiveID", SysPrimitiveIndex},
	{"gl_InvocationID", SysInvocationIndex},
	{"gl_TessLevelOuter", SysOuterTessFactor},
	{"gl_TessLevelInner", SysInsideTessFactor},
	{"gl_TessCoord", SysDomainLocation},
	{"gl_PrimitiveIDIn", SysPrimitiveIndex},
	{"gl_Layer", SysRTIndex},
	{"gl_ViewportIndex", SysViewportIndex},
	{"gl_FragCoord", SysPosition},
	{"gl_FrontFacing", SysIsFrontFace},
	{"gl_SampleID", SysMSAASampleIndex},
	{"gl_SamplePosition", SysMSAASamplePosition},
	{"gl_SampleMask", SysMSAACoverage},
	{"gl_FragDepth", SysDepthOutput},
	{"gl_NumWorkGroups", SysDispatchSize},
	{"gl_WorkGroupID", SysGroupIndex},
	{"gl_LocalInvocationID", SysGroupThreadIndex},
	{"gl_GlobalInvocationID", SysDispatchThreadIndex},
	{"gl_LocalInvocationIndex", SysGroupFlatIndex},
}

func systemValueOf(name string) SystemValue {
	sv := SysNone
	for _, b := range builtins {
		if strings.HasPrefix(name, b.prefix) {
			sv = b.value
		}
	}
	return sv
}

// SignatureRecord is one program input or output as introspected.
type SignatureRecord struct {
	Name      string `json:"name"`
	Type      GLType `json:"type"`
	Location  int32  `json:"location"`
	Component int32  `json:"component,omitempty"`
}

// SigParameter is one row of an input or output signature.
type SigParameter struct {
	VarName         string      `json:"varName"`
	CompType        CompType    `json:"compType"`
	CompCount       uint32      `json:"compCount"`
	RegIndex        uint32      `json:"regIndex"`
	RegChannelMask  uint8       `json:"regChannelMask"`
	ChannelUsedMask uint8       `json:"channelUsedMask"`
	SystemValue     SystemValue `json:"systemValue"`
}

// BuildSignature converts introspected inputs or outputs into signature
// rows. Matrices become one row per matrix row named "name:rowN". Unwritten
// gl_PointSize and gl_ClipDistance are dropped as they only exist to make
// the program separable. Fragment outputs without a builtin are colour
// outputs. The result is sorted by system value, then register index, with
// ties kept in input order.
func BuildSignature(records []SignatureRecord, stage Stage, output bool, uses VertexOutputUses) []SigParameter {
	sigs := make([]SigParameter, 0, len(records))
	for i, rec := range records {
		if strings.HasPrefix(rec.Name, "gl_PointSize") && !uses.PointSize {
			continue
		}
		if strings.HasPrefix(rec.Name, "gl_ClipDistance") && !uses.ClipDistance {
			continue
		}

		sig := SigParameter{VarName: rec.Name, CompType: CompFloat, CompCount: 4}
		rows := uint32(1)
		if desc, ok := Describe(rec.Type); ok {
			sig.CompCount = desc.Cols
			rows = desc.Rows
			switch {
			case desc.Type == VarInt:
				sig.CompType = CompSInt
			case desc.Type == VarUInt:
				sig.CompType = CompUInt
			}
		}
		sig.RegChannelMask = uint8((1<<sig.CompCount)-1) << uint(max(rec.Component, 0))
		sig.ChannelUsedMask = sig.RegChannelMask

		sig.SystemValue = systemValueOf(rec.Name)
		if stage == StageFragment && output && sig.SystemValue == SysNone {
			sig.SystemValue = SysColourOutput
		}

		switch {
		case rec.Location >= 0:
			sig.RegIndex = uint32(rec.Location)
		case sig.SystemValue == SysNone:
			sig.RegIndex = uint32(i)
		}

		if rows == 1 {
			sigs = append(sigs, sig)
			continue
		}
		for r := uint32(0); r < rows; r++ {
			row := sig
			row.VarName = fmt.Sprintf("%s:row%d", rec.Name, r)
			row.RegIndex += r
			sigs = append(sigs, row)
		}
	}

	slices.SortStableFunc(sigs, func(a, b SigParameter) int {
		if c := cmp.Compare(a.SystemValue, b.SystemValue); c != 0 {
			return c
		}
		return cmp.Compare(a.RegIndex, b.RegIndex)
	})
	return sigs
}
