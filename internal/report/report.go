// Package report renders a shader reflection as markdown, for glamour or
// for files.
package report

import (
	"fmt"
	"strings"

	"shaderrefl/internal/reflection"
	"shaderrefl/internal/shaderrefl/styles"
)

// Options selects report sections.
type Options struct {
	// Bindings adds API slots to the resource and block tables.
	Bindings *reflection.BindpointMapping
	// Disassembly appends the listing, when the reflection carries one.
	Disassembly bool
}

// Markdown formats refl as a markdown document.
func Markdown(refl *reflection.ShaderReflection, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s shader `%s`\n\n", title(refl.Stage.String()), refl.EntryFunc)

	writeResources(&sb, refl, opts.Bindings)
	writeConstantBlocks(&sb, refl, opts.Bindings)
	writeSignature(&sb, "Input signature", refl.InputSig)
	writeSignature(&sb, "Output signature", refl.OutputSig)

	if len(refl.Diagnostics) > 0 {
		sb.WriteString("## Diagnostics\n\n")
		for _, d := range refl.Diagnostics {
			fmt.Fprintf(&sb, "- %s\n", escape(d))
		}
		sb.WriteByte('\n')
	}

	if opts.Disassembly && refl.Disassembly != "" {
		sb.WriteString("## Disassembly\n\n```\n")
		sb.WriteString(refl.Disassembly)
		if !strings.HasSuffix(refl.Disassembly, "\n") {
			sb.WriteByte('\n')
		}
		sb.WriteString("```\n")
	}
	return sb.String()
}

// Render formats refl through the report glamour style.
func Render(refl *reflection.ShaderReflection, opts Options, width int) (string, error) {
	r, err := styles.MarkdownRenderer(width)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(refl, opts))
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}

func writeResources(sb *strings.Builder, refl *reflection.ShaderReflection, b *reflection.BindpointMapping) {
	if len(refl.Resources) == 0 {
		return
	}
	sb.WriteString("## Resources\n\n")
	if b != nil {
		sb.WriteString("| # | name | kind | access | type | slot | used |\n|---|---|---|---|---|---|---|\n")
	} else {
		sb.WriteString("| # | name | kind | access | type |\n|---|---|---|---|---|\n")
	}
	for i, r := range refl.Resources {
		fmt.Fprintf(sb, "| %d | %s | %s | %s | %s |", r.BindPoint, escape(r.Name), r.ResType, access(r), r.Variable.Name)
		if b != nil && i < len(b.Resources) {
			fmt.Fprintf(sb, " %d | %s |", b.Resources[i].Bind, yesNo(b.Resources[i].Used))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	for _, r := range refl.Resources {
		if len(r.Members) > 0 {
			fmt.Fprintf(sb, "```\n%s\n```\n\n", ConstantTree(r.Name, r.Members))
		}
	}
}

func writeConstantBlocks(sb *strings.Builder, refl *reflection.ShaderReflection, b *reflection.BindpointMapping) {
	if len(refl.ConstantBlocks) == 0 {
		return
	}
	sb.WriteString("## Constant blocks\n\n")
	for i, cb := range refl.ConstantBlocks {
		kind := "loose uniforms"
		if cb.BufferBacked {
			kind = "buffer"
		}
		fmt.Fprintf(sb, "### %s\n\n%s, bind point %d", escape(cb.Name), kind, cb.BindPoint)
		if b != nil && i < len(b.ConstantBlocks) {
			fmt.Fprintf(sb, ", slot %d", b.ConstantBlocks[i].Bind)
		}
		fmt.Fprintf(sb, "\n\n```\n%s\n```\n\n", ConstantTree(cb.Name, cb.Variables))
	}
}

func writeSignature(sb *strings.Builder, heading string, sig []reflection.SigParameter) {
	if len(sig) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n| reg | name | system value | type | mask |\n|---|---|---|---|---|\n", heading)
	for _, p := range sig {
		fmt.Fprintf(sb, "| %d | %s | %s | %s%d | %s |\n",
			p.RegIndex, escape(p.VarName), p.SystemValue, p.CompType, p.CompCount, Mask(p.RegChannelMask))
	}
	sb.WriteByte('\n')
}

// Mask spells a channel mask as swizzle letters, "-" for unused channels:
// 0b1100 is "--zw".
func Mask(m uint8) string {
	var b [4]byte
	for i := range b {
		if m&(1<<i) != 0 {
			b[i] = swizzle[i]
		} else {
			b[i] = '-'
		}
	}
	return string(b[:])
}

func access(r reflection.ShaderResource) string {
	switch {
	case r.IsReadWrite:
		return "RW"
	case r.IsSRV:
		return "SRV"
	}
	return "-"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func title(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

var escaper = strings.NewReplacer("|", `\|`, "`", "\\`")

func escape(s string) string { return escaper.Replace(s) }
