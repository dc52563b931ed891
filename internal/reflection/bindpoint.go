package reflection

// defaultVertexAttribs is used when the query reports no attribute limit.
const defaultVertexAttribs = 16

// BindingQuery answers binding questions about a linked program. The ok
// results are false for names the program does not know.
type BindingQuery interface {
	// UniformValue returns the unit a sampler or image uniform holds.
	UniformValue(name string) (int32, bool)
	// UniformReferenced reports whether stage references the uniform.
	UniformReferenced(name string, stage Stage) (used, ok bool)
	AtomicCounterBuffer(name string, stage Stage) (bind int32, used, ok bool)
	StorageBlock(name string, stage Stage) (bind int32, used, ok bool)
	UniformBlock(name string, stage Stage) (bind int32, used, ok bool)
	AttribLocation(name string) (int32, bool)
	MaxVertexAttribs() int
}

// Binding is where one reflected resource or block is bound, and whether
// the stage uses it.
type Binding struct {
	Bind int32 `json:"bind"`
	Used bool  `json:"used"`
}

// BindpointMapping maps reflection entries to API binding slots. Resources
// and ConstantBlocks parallel the reflection lists; InputAttributes maps a
// vertex attribute location to an input signature index, -1 when unused.
type BindpointMapping struct {
	Resources       []Binding `json:"resources"`
	ConstantBlocks  []Binding `json:"constantBlocks"`
	InputAttributes []int32   `json:"inputAttributes"`
}

// MapBindpoints resolves the bindings of refl in a linked program.
func MapBindpoints(refl *ShaderReflection, q BindingQuery, stage Stage) BindpointMapping {
	var m BindpointMapping

	m.Resources = make([]Binding, len(refl.Resources))
	for i, res := range refl.Resources {
		b := Binding{Bind: -1}
		switch {
		case res.IsTexture:
			b.Bind = 0
			if v, ok := q.UniformValue(res.Name); ok {
				b.Bind = v
			}
			// arrays are referenced through their base name
			if used, ok := q.UniformReferenced(baseName(res.Name), stage); ok {
				b.Used = used
			}
		case res.isAtomicCounter():
			if bind, used, ok := q.AtomicCounterBuffer(res.Name, stage); ok {
				b = Binding{Bind: bind, Used: used}
			}
		case res.IsReadWrite:
			if bind, used, ok := q.StorageBlock(res.Name, stage); ok {
				b = Binding{Bind: bind, Used: used}
			}
		}
		m.Resources[i] = b
	}

	m.ConstantBlocks = make([]Binding, len(refl.ConstantBlocks))
	for i, cb := range refl.ConstantBlocks {
		b := Binding{Bind: -1, Used: true}
		if cb.BufferBacked {
			b.Used = false
			if bind, used, ok := q.UniformBlock(cb.Name, stage); ok {
				b = Binding{Bind: bind, Used: used}
			}
		}
		m.ConstantBlocks[i] = b
	}

	n := q.MaxVertexAttribs()
	if n <= 0 {
		n = defaultVertexAttribs
	}
	m.InputAttributes = make([]int32, n)
	for i := range m.InputAttributes {
		m.InputAttributes[i] = -1
	}
	if stage == StageVertex {
		for i, sig := range refl.InputSig {
			if loc, ok := q.AttribLocation(sig.VarName); ok && loc >= 0 && int(loc) < n {
				m.InputAttributes[loc] = int32(i)
			}
		}
	}
	return m
}
