package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "bitfieldgen",
	Short: "Generate bit field accessors from a field table",
	Long: `bitfieldgen reads a YAML table describing host structs, their storage
words and the bit fields packed inside them, and writes Go source with a tag
type and accessor methods for every field.

It is meant to be run from a go:generate directive next to the table.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
