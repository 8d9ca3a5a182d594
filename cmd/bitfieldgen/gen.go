package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGenCmd())
}

type genOptions struct {
	input  string
	output string
	pkg    string
}

func newGenCmd() *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate accessors for a field table",
		Long: `The gen command validates a field table and writes the generated
accessors next to it.

Example:
  bitfieldgen gen -i regs.yaml
  bitfieldgen gen -i regs.yaml -o internal/regs/regs_gen.go -p regs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to the field table YAML")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (default: <input>_gen.go)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Override the package name in the table")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runGen(opts genOptions) error {
	table, err := LoadTable(opts.input)
	if err != nil {
		return Error.New("loading %s: %v", opts.input, err)
	}
	if opts.pkg != "" {
		table.Package = opts.pkg
		if err := table.Validate(); err != nil {
			return err
		}
	}

	code, err := Generate(table, opts.input)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = outputPath(opts.input)
	}
	if err := writeFormatted(out, code); err != nil {
		return err
	}

	printInfo("  generated %s\n", out)
	return nil
}

// outputPath converts "dir/regs.yaml" to "dir/regs_gen.go".
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_gen.go"
}
