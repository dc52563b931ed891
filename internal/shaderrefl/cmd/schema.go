package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"shaderrefl/internal/reflection"
)

// Config documents the settings shaderrefl reads from flags and the
// environment.
type Config struct {
	Debug      bool   `json:"debug" jsonschema:"title=Debug,description=Enable debug logging (--debug)"`
	Cwd        string `json:"cwd,omitempty" jsonschema:"title=Working Directory,description=Directory to change into before running (--cwd)"`
	NoColor    bool   `json:"noColor" jsonschema:"title=No Color,description=Disable highlighting (--no-color or SHADERREFL_NO_COLOR)"`
	Width      int    `json:"width,omitempty" jsonschema:"title=Width,description=Report wrap width,minimum=0"`
	LogLevel   string `json:"logLevel,omitempty" jsonschema:"title=Log Level,description=SHADERREFL_LOG_LEVEL,enum=debug,enum=info,enum=warn,enum=error"`
	LogPrefix  string `json:"logPrefix,omitempty" jsonschema:"title=Log Prefix,description=SHADERREFL_LOG_PREFIX"`
	LogToFile  bool   `json:"logToFile,omitempty" jsonschema:"title=Log To File,description=SHADERREFL_LOG_TO_FILE=1 writes a timestamped log in the working directory"`
	SPIRVMagic uint32 `json:"spirvMagic,omitempty" jsonschema:"title=SPIR-V Magic,description=Expected magic word for disasm (--magic)"`
}

var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Generate JSON schema for configuration",
	Long:   "Generate JSON schema for the shaderrefl configuration, or with --input for the program dump format",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetBool("input")

		var v any = &Config{}
		if input {
			v = &reflection.ProgramDump{}
		}
		bts, err := json.MarshalIndent(newReflector().Reflect(v), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bts))
		return nil
	},
}

func init() {
	schemaCmd.Flags().Bool("input", false, "Emit the program dump schema instead")
}

// newReflector maps the reflection enums to the text forms their JSON
// codecs accept.
func newReflector() *jsonschema.Reflector {
	stageType := reflect.TypeFor[reflection.Stage]()
	glType := reflect.TypeFor[reflection.GLType]()
	return &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch t {
			case stageType:
				s := &jsonschema.Schema{Type: "string", Description: "Shader stage"}
				for _, n := range reflection.StageNames() {
					s.Enum = append(s.Enum, n)
				}
				return s
			case glType:
				return &jsonschema.Schema{
					Description: "GL type enumerant: a number, a GL_* name or a 0x hex string",
					OneOf: []*jsonschema.Schema{
						{Type: "integer", Minimum: json.Number("0")},
						{Type: "string", Pattern: `^(GL_[A-Z0-9_x]+|0[xX][0-9a-fA-F]+)$`},
					},
				}
			}
			return nil
		},
	}
}
