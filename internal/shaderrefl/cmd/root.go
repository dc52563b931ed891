package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"shaderrefl/internal/shaderrefl/log"
)

// defaultWidth is the report wrap width when stdout is not a terminal.
const defaultWidth = 100

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable highlighting (also SHADERREFL_NO_COLOR)")
	rootCmd.PersistentFlags().IntP("width", "w", 0, "Wrap width for rendered reports (default: terminal width)")

	rootCmd.AddCommand(disasmCmd, reflectCmd, usesCmd, viewCmd, schemaCmd)
}

var rootCmd = &cobra.Command{
	Use:   "shaderrefl",
	Short: "Shader reflection and SPIR-V disassembly",
	Long: `shaderrefl reconstructs shader reflection data from recorded program
introspection and disassembles SPIR-V modules into readable listings.`,
	Example: `
# Disassemble a SPIR-V module
shaderrefl disasm shader.vert.spv

# Reflect a recorded program introspection dump
shaderrefl reflect forward.json --spirv forward.frag.spv

# Browse a dump interactively
shaderrefl view forward.json
  `,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := ResolveCwd(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		log.Setup(debug, cwd)

		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || !isTerminal(cmd.OutOrStdout()) {
			os.Setenv("SHADERREFL_NO_COLOR", "1")
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return log.Close()
	},
}

func Execute() {
	// fang renders help and errors as styled markdown; bypass it when
	// output is piped so scripts get plain text.
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %v", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// renderWidth is the --width flag, else the terminal width, else
// defaultWidth.
func renderWidth(cmd *cobra.Command) int {
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		return w
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(f.Fd()) {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
