package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fabbit",
	Short: "FPGA fabric bitstream compiler",
	Long: `A compiler that reorders a fabric-independent configuration bit database
into the exact bit sequence a manufactured FPGA fabric loads, following the
fabric's configuration protocol.

Examples:
  fabbit build fabric.fab --protocol standalone      # Flat chain bitstream
  fabbit build fabric.fab -p frame-based -o out.bits # Addressed frame bitstream
  fabbit info fabric.fab                             # Show fabric statistics`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
