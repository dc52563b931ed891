package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"shaderrefl/internal/reflection"
)

var usesCmd = &cobra.Command{
	Use:   "uses [source...]",
	Short: "Report whether vertex sources write gl_PointSize and gl_ClipDistance",
	Long: `Scan GLSL sources for writes to gl_PointSize and gl_ClipDistance.
With no arguments the source is read from a pipe on stdin.`,
	Example: `
shaderrefl uses shader.vert common.glsl
cat shader.vert | shaderrefl uses
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := readSources(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return fmt.Errorf("no sources: pass files or pipe a source on stdin")
		}

		uses := reflection.CheckVertexOutputUses(sources)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gl_PointSize     %s\n", written(uses.PointSize))
		fmt.Fprintf(out, "gl_ClipDistance  %s\n", written(uses.ClipDistance))
		return nil
	},
}

// readSources reads each named file, or stdin when no names are given and
// stdin is not a terminal.
func readSources(stdin io.Reader, paths []string) ([]string, error) {
	if len(paths) == 0 {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(f.Fd()) {
			return nil, nil
		}
		bts, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(bts) == 0 {
			return nil, nil
		}
		return []string{string(bts)}, nil
	}

	sources := make([]string, 0, len(paths))
	for _, p := range paths {
		bts, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		sources = append(sources, string(bts))
	}
	return sources, nil
}

func written(b bool) string {
	if b {
		return "written"
	}
	return "not written"
}
