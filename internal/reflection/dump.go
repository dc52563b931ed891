package reflection

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// ProgramDump is a recorded program introspection: everything Reflect and
// MapBindpoints would otherwise query from a live driver.
type ProgramDump struct {
	Stage           Stage             `json:"stage"`
	Sources         []string          `json:"sources,omitempty" jsonschema:"description=Shader source strings, scanned for gl_PointSize and gl_ClipDistance writes"`
	UniformList     []FlatVariable    `json:"uniforms,omitempty"`
	UniformBlockSet []string          `json:"uniformBlocks,omitempty" jsonschema:"description=Uniform block names in block index order"`
	StorageBlockSet []StorageBlock    `json:"storageBlocks,omitempty"`
	BufferVarList   []FlatVariable    `json:"bufferVariables,omitempty"`
	InputList       []SignatureRecord `json:"inputs,omitempty"`
	OutputList      []SignatureRecord `json:"outputs,omitempty"`
	Bindings        *DumpBindings     `json:"bindings,omitempty"`
}

func (d *ProgramDump) Uniforms() []FlatVariable        { return d.UniformList }
func (d *ProgramDump) UniformBlocks() []string         { return d.UniformBlockSet }
func (d *ProgramDump) StorageBlocks() []StorageBlock   { return d.StorageBlockSet }
func (d *ProgramDump) BufferVariables() []FlatVariable { return d.BufferVarList }
func (d *ProgramDump) Inputs() []SignatureRecord       { return d.InputList }
func (d *ProgramDump) Outputs() []SignatureRecord      { return d.OutputList }

// Uses scans the recorded sources.
func (d *ProgramDump) Uses() VertexOutputUses { return CheckVertexOutputUses(d.Sources) }

// ReadDump decodes a JSON program dump.
func ReadDump(r io.Reader) (*ProgramDump, error) {
	var d ProgramDump
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode program dump: %w", err)
	}
	return &d, nil
}

// ReadDumpFile decodes the JSON program dump at path.
func ReadDumpFile(path string) (*ProgramDump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open program dump: %w", err)
	}
	defer f.Close()
	d, err := ReadDump(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// UniformBinding is the recorded state of a sampler or image uniform.
type UniformBinding struct {
	Value  *int32  `json:"value,omitempty" jsonschema:"description=Texture unit the uniform holds; absent when it has no location"`
	Stages []Stage `json:"stages,omitempty"`
}

// BufferBinding is the recorded state of a buffer-backed block.
type BufferBinding struct {
	Binding int32   `json:"binding"`
	Stages  []Stage `json:"stages,omitempty"`
}

// DumpBindings is the recorded binding state of a linked program. It
// implements BindingQuery.
type DumpBindings struct {
	Uniforms       map[string]UniformBinding `json:"uniforms,omitempty"`
	AtomicCounters map[string]BufferBinding  `json:"atomicCounters,omitempty"`
	StorageBlocks  map[string]BufferBinding  `json:"storageBlocks,omitempty"`
	UniformBlocks  map[string]BufferBinding  `json:"uniformBlocks,omitempty"`
	Attributes     map[string]int32          `json:"attributes,omitempty"`
	MaxAttribs     int                       `json:"maxVertexAttribs,omitempty"`
}

// uniform finds name as recorded or as element zero of an array.
func (b *DumpBindings) uniform(name string) (UniformBinding, bool) {
	if u, ok := b.Uniforms[name]; ok {
		return u, true
	}
	u, ok := b.Uniforms[name+"[0]"]
	return u, ok
}

func (b *DumpBindings) UniformValue(name string) (int32, bool) {
	u, ok := b.Uniforms[name]
	if !ok || u.Value == nil {
		return 0, false
	}
	return *u.Value, true
}

func (b *DumpBindings) UniformReferenced(name string, stage Stage) (used, ok bool) {
	u, ok := b.uniform(name)
	if !ok {
		return false, false
	}
	return slices.Contains(u.Stages, stage), true
}

func bufferLookup(m map[string]BufferBinding, name string, stage Stage) (int32, bool, bool) {
	e, ok := m[name]
	if !ok {
		return -1, false, false
	}
	return e.Binding, slices.Contains(e.Stages, stage), true
}

func (b *DumpBindings) AtomicCounterBuffer(name string, stage Stage) (int32, bool, bool) {
	return bufferLookup(b.AtomicCounters, name, stage)
}

func (b *DumpBindings) StorageBlock(name string, stage Stage) (int32, bool, bool) {
	return bufferLookup(b.StorageBlocks, name, stage)
}

func (b *DumpBindings) UniformBlock(name string, stage Stage) (int32, bool, bool) {
	return bufferLookup(b.UniformBlocks, name, stage)
}

func (b *DumpBindings) AttribLocation(name string) (int32, bool) {
	loc, ok := b.Attributes[name]
	return loc, ok
}

func (b *DumpBindings) MaxVertexAttribs() int { return b.MaxAttribs }
