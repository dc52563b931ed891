package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shaderrefl/internal/reflection"
	"shaderrefl/internal/report"
	"shaderrefl/internal/shaderrefl/log"
	"shaderrefl/internal/spirv"
)

// reflectOutput is the --json document.
type reflectOutput struct {
	Reflection *reflection.ShaderReflection `json:"reflection"`
	Bindings   *reflection.BindpointMapping `json:"bindings,omitempty"`
}

var reflectCmd = &cobra.Command{
	Use:   "reflect <dump.json>",
	Short: "Reconstruct shader reflection from a program dump",
	Long: `Reconstruct resources, constant block trees and signatures from a
recorded program introspection dump (see "shaderrefl schema --input").
Bind points are resolved when the dump carries a bindings section.`,
	Example: `
# Styled report
shaderrefl reflect forward.json

# Raw markdown with the SPIR-V listing appended
shaderrefl reflect forward.json --markdown --spirv forward.frag.spv > forward.md
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		markdown, _ := cmd.Flags().GetBool("markdown")
		spvPath, _ := cmd.Flags().GetString("spirv")

		refl, bindings, err := loadReflection(args[0], spvPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts := report.Options{Bindings: bindings, Disassembly: spvPath != ""}
		switch {
		case jsonOut:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(reflectOutput{Reflection: refl, Bindings: bindings}); err != nil {
				return fmt.Errorf("failed to encode reflection: %w", err)
			}
		case markdown:
			fmt.Fprint(out, report.Markdown(refl, opts))
		default:
			rendered, err := report.Render(refl, opts, renderWidth(cmd))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		}
		return nil
	},
}

func init() {
	reflectCmd.Flags().BoolP("json", "j", false, "Output reflection and bindings as JSON")
	reflectCmd.Flags().BoolP("markdown", "m", false, "Output the report as raw markdown")
	reflectCmd.Flags().String("spirv", "", "SPIR-V module to disassemble into the report")
	reflectCmd.MarkFlagsMutuallyExclusive("json", "markdown")
}

// loadReflection reads a dump, reflects it and, when the dump records
// bindings, maps bind points. A SPIR-V path attaches its disassembly.
func loadReflection(dumpPath, spvPath string) (*reflection.ShaderReflection, *reflection.BindpointMapping, error) {
	logger := log.Logger().With("dump", dumpPath)

	dump, err := reflection.ReadDumpFile(dumpPath)
	if err != nil {
		return nil, nil, err
	}
	refl, err := reflection.Reflect(dump, reflection.ReflectOptions{
		Stage:  dump.Stage,
		Uses:   dump.Uses(),
		Logger: logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reflect %s: %w", dumpPath, err)
	}
	if len(refl.Diagnostics) > 0 {
		logger.Warn("records dropped", "count", len(refl.Diagnostics))
	}

	if spvPath != "" {
		mod, err := spirv.Open(spvPath)
		if err != nil {
			return nil, nil, err
		}
		text, err := spirv.New(spirv.Options{
			Magic:       spirv.MagicNumber,
			HeaderWords: spirv.HeaderWords,
			Title:       title(dump.Stage),
		}, logger).Disassemble(mod.Words)
		if err != nil && !errors.Is(err, spirv.ErrMagicMismatch) {
			return nil, nil, fmt.Errorf("disassemble %s: %w", spvPath, err)
		}
		refl.Disassembly = text
	}

	if dump.Bindings == nil {
		return refl, nil, nil
	}
	m := reflection.MapBindpoints(refl, dump.Bindings, dump.Stage)
	return refl, &m, nil
}

// title is the disassembly title for a stage: "Fragment".
func title(s reflection.Stage) string {
	name := s.String()
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ReplaceAll(name[1:], "_", " ")
}
