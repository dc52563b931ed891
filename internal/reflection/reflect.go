package reflection

import (
	"errors"

	"github.com/charmbracelet/log"

	"shaderrefl/internal/logging"
)

// GlobalsBlock names the synthetic block holding loose uniforms.
const GlobalsBlock = "$Globals"

// StorageBlock is one shader storage block as introspected.
type StorageBlock struct {
	Name         string `json:"name"`
	NumVariables uint32 `json:"numVariables"`
}

// Introspector is the source of flat program interface data. Block indices
// in Uniforms refer to UniformBlocks positions; block indices in
// BufferVariables refer to StorageBlocks positions.
type Introspector interface {
	Uniforms() []FlatVariable
	UniformBlocks() []string
	StorageBlocks() []StorageBlock
	BufferVariables() []FlatVariable
	Inputs() []SignatureRecord
	Outputs() []SignatureRecord
}

// ConstantBlock is a uniform block, or the synthetic $Globals block.
type ConstantBlock struct {
	Name         string          `json:"name"`
	BufferBacked bool            `json:"bufferBacked"`
	BindPoint    int32           `json:"bindPoint"`
	Variables    []*ConstantNode `json:"variables"`
}

// ShaderReflection is the assembled description of one shader stage.
type ShaderReflection struct {
	Stage          Stage            `json:"stage"`
	EntryFunc      string           `json:"entryFunc"`
	Disassembly    string           `json:"disassembly,omitempty"`
	Resources      []ShaderResource `json:"resources"`
	ConstantBlocks []ConstantBlock  `json:"constantBlocks"`
	InputSig       []SigParameter   `json:"inputSig"`
	OutputSig      []SigParameter   `json:"outputSig"`
	Diagnostics    []string         `json:"diagnostics,omitempty"`
}

// ReflectOptions configures Reflect.
type ReflectOptions struct {
	Stage  Stage
	Uses   VertexOutputUses
	Logger *log.Logger
}

// Reflect assembles a ShaderReflection. Resources come first in uniform
// order (sampler arrays expanded), then storage blocks; each bind point is
// the resource's position. Uniform blocks with no surviving variables are
// left out and the rest are numbered in order, followed by $Globals when
// loose uniforms exist. Records that cannot be placed are logged and
// reported in Diagnostics.
func Reflect(src Introspector, opts ReflectOptions) (*ShaderReflection, error) {
	if src == nil {
		return nil, errors.New("reflection: nil introspector")
	}
	logger := logging.Or(opts.Logger)
	tb := NewTreeBuilder(logger)

	refl := &ShaderReflection{Stage: opts.Stage, EntryFunc: "main"}

	uniforms := src.Uniforms()
	for _, u := range uniforms {
		refl.Resources = appendSamplers(refl.Resources, u)
	}

	storage := src.StorageBlocks()
	ssbos := make([]int, 0, len(storage))
	for _, b := range storage {
		ssbos = append(ssbos, len(refl.Resources))
		refl.Resources = append(refl.Resources, ShaderResource{
			Name:        b.Name,
			ResType:     ResBuffer,
			IsReadWrite: true,
			BindPoint:   int32(len(refl.Resources)),
			Variable:    TypeDesc{Type: VarUInt, Name: "buffer"},
			Elements:    b.NumVariables,
		})
	}

	members := tb.Build(src.BufferVariables(), len(storage), false)
	for i, pos := range ssbos {
		refl.Resources[pos].Members = members.Groups[i]
	}
	refl.addDiagnostics(members.Dropped)

	blocks := src.UniformBlocks()
	consts := tb.Build(uniforms, len(blocks), true)
	refl.addDiagnostics(consts.Dropped)
	for i, vars := range consts.Groups {
		if len(vars) == 0 {
			continue
		}
		refl.ConstantBlocks = append(refl.ConstantBlocks, ConstantBlock{
			Name:         blocks[i],
			BufferBacked: true,
			BindPoint:    int32(len(refl.ConstantBlocks)),
			Variables:    vars,
		})
	}
	if len(consts.Ungrouped) > 0 {
		refl.ConstantBlocks = append(refl.ConstantBlocks, ConstantBlock{
			Name:      GlobalsBlock,
			BindPoint: int32(len(refl.ConstantBlocks)),
			Variables: consts.Ungrouped,
		})
	}

	inputs, outputs := src.Inputs(), src.Outputs()
	for _, rec := range append(append([]SignatureRecord(nil), inputs...), outputs...) {
		if _, ok := Describe(rec.Type); !ok {
			logger.Warn("unhandled signature element type", "name", rec.Name, "type", rec.Type)
		}
	}
	refl.InputSig = BuildSignature(inputs, opts.Stage, false, opts.Uses)
	refl.OutputSig = BuildSignature(outputs, opts.Stage, true, opts.Uses)

	logger.Debug("reflected shader",
		"stage", opts.Stage,
		"resources", len(refl.Resources),
		"blocks", len(refl.ConstantBlocks),
		"inputs", len(refl.InputSig),
		"outputs", len(refl.OutputSig))
	return refl, nil
}

func (r *ShaderReflection) addDiagnostics(errs []error) {
	for _, err := range errs {
		r.Diagnostics = append(r.Diagnostics, err.Error())
	}
}
