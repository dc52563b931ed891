package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"

	"shaderrefl/internal/disasm"
	"shaderrefl/internal/shaderrefl/log"
	"shaderrefl/internal/spirv"
	"shaderrefl/internal/ui/colorize"
)

// disasmOutput is the --json document.
type disasmOutput struct {
	Path          string         `json:"path"`
	Version       string         `json:"version"`
	Generator     uint32         `json:"generator"`
	GeneratorName string         `json:"generatorName"`
	Bound         uint32         `json:"bound"`
	Listing       disasm.Listing `json:"listing"`
}

var disasmCmd = &cobra.Command{
	Use:   "disasm <file.spv>",
	Short: "Disassemble a SPIR-V module",
	Long: `Disassemble a binary SPIR-V module into a numbered listing.
Names from OpName replace <N> ids wherever they are known.`,
	Example: `
# Plain listing
shaderrefl disasm shader.spv

# Listing plus call graph and per-function control flow as DOT
shaderrefl disasm shader.spv --graph calls.dot --cfg cfg.dot
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		graphPath, _ := cmd.Flags().GetString("graph")
		cfgPath, _ := cmd.Flags().GetString("cfg")
		title, _ := cmd.Flags().GetString("title")
		magicFlag, _ := cmd.Flags().GetString("magic")
		headerWords, _ := cmd.Flags().GetInt("header-words")

		magic, err := strconv.ParseUint(magicFlag, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid --magic %q: %w", magicFlag, err)
		}
		opts := spirv.Options{Magic: uint32(magic), HeaderWords: headerWords, Title: title}

		mod, err := spirv.Open(args[0])
		if err != nil {
			return err
		}
		logger := log.Logger().With("file", mod.Path)
		logger.Debug("loaded module", "words", len(mod.Words), "byteOrder", mod.ByteOrder)

		listing, err := spirv.New(opts, logger).Listing(mod.Words)
		if err != nil && !errors.Is(err, spirv.ErrMagicMismatch) {
			return fmt.Errorf("disassemble %s: %w", args[0], err)
		}
		// a magic mismatch still prints its diagnostic line
		magicErr := err

		out := cmd.OutOrStdout()
		if jsonOut {
			doc := disasmOutput{
				Path:          mod.Path,
				Version:       mod.Header.VersionString(),
				Generator:     mod.Header.Generator,
				GeneratorName: spirv.GeneratorName(mod.Header.Generator),
				Bound:         mod.Header.Bound,
				Listing:       listing,
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode listing: %w", err)
			}
		} else {
			fmt.Fprint(out, colorize.Listing(listing.String()))
		}
		if magicErr != nil {
			return magicErr
		}

		if graphPath != "" {
			g, err := spirv.CallGraph(mod.Words, opts.Magic, opts.HeaderWords)
			if err != nil {
				return fmt.Errorf("call graph: %w", err)
			}
			if err := writeDOT(graphPath, render.DOT(g, graphTitle(title, "call graph"))); err != nil {
				return err
			}
			logger.Info("wrote call graph", "path", graphPath, "nodes", len(g.Nodes), "edges", len(g.Edges))
		}
		if cfgPath != "" {
			cfg, err := spirv.ControlFlow(mod.Words, opts.Magic, opts.HeaderWords)
			if err != nil {
				return fmt.Errorf("control flow: %w", err)
			}
			if err := writeDOT(cfgPath, render.DOTCFG(cfg, graphTitle(title, "control flow"))); err != nil {
				return err
			}
			logger.Info("wrote control flow", "path", cfgPath, "functions", len(cfg.Funcs), "blocks", countBlocks(cfg))
		}
		return nil
	},
}

func init() {
	disasmCmd.Flags().BoolP("json", "j", false, "Output the listing as JSON")
	disasmCmd.Flags().String("graph", "", "Write the function call graph as DOT to this file")
	disasmCmd.Flags().String("cfg", "", "Write per-function control flow graphs as DOT to this file")
	disasmCmd.Flags().StringP("title", "t", "", "Title line printed before the header")
	disasmCmd.Flags().String("magic", fmt.Sprintf("0x%08x", spirv.MagicNumber), "Expected magic number")
	disasmCmd.Flags().Int("header-words", spirv.HeaderWords, "Header size in words")
}

func graphTitle(title, kind string) string {
	if title == "" {
		return kind
	}
	return title + " " + kind
}

func countBlocks(cfg *lattice.CFGGraph) int {
	n := 0
	for _, f := range cfg.Funcs {
		n += len(f.Blocks)
	}
	return n
}

func writeDOT(path, dot string) error {
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
