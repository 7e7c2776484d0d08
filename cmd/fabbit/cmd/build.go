package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fabriclab/fabbit/pkg/arch"
	"github.com/fabriclab/fabbit/pkg/bitdb"
	"github.com/fabriclab/fabbit/pkg/bitstream"
	"github.com/spf13/cobra"
)

var (
	protocolName string
	outputPath   string
)

var buildCmd = &cobra.Command{
	Use:   "build <fabric-file>",
	Short: "Compile a fabric description into a loadable bitstream",
	Long: `Parse a fabric description, rebuild its configuration bit database in the
order the configuration protocol loads it, and write the result.

Chain protocols (standalone, scan-chain) emit one line of bit values in load
order. The frame-based protocol emits one "address value" pair per line.

Examples:
  fabbit build fabric.fab
  fabbit build fabric.fab --protocol scan-chain
  fabbit build fabric.fab -p frame-based -o design.bits`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&protocolName, "protocol", "p", "standalone",
		"configuration protocol (standalone, scan-chain, memory-bank, frame-based)")
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output file (default stdout)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	proto, err := bitstream.ParseProtocol(protocolName)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Parsing fabric description: %s\n", args[0])
	}

	parser, err := arch.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	file, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	db, mods, top, err := arch.Load(file)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Loaded %d modules, %d blocks, %d configuration bits\n",
			mods.NumModules(), db.NumBlocks(), db.NumBits())
	}

	bits, err := bitstream.Build(db, mods, proto, top)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeBitstream(out, db, bits, proto); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Built %d configuration bits for fabric (%s)\n", bits.NumBits(), proto)
	}
	return nil
}

// writeBitstream renders a built bitstream: frame protocols get one
// "address value" pair per line, chain protocols a single line of bit values
// in load order.
func writeBitstream(out io.Writer, db *bitdb.Database, bits *bitstream.FabricBitstream, proto bitstream.Protocol) error {
	w := bufio.NewWriter(out)

	if proto == bitstream.ProtocolFrameBased {
		for id := bitstream.FabricBitId(0); int(id) < bits.NumBits(); id++ {
			if _, err := fmt.Fprintf(w, "%s %s\n",
				formatBits(bits.Address(id)), formatBit(bits.DataIn(id))); err != nil {
				return err
			}
		}
		return w.Flush()
	}

	var line strings.Builder
	for id := bitstream.FabricBitId(0); int(id) < bits.NumBits(); id++ {
		line.WriteString(formatBit(db.BitValue(bits.ConfigBit(id))))
	}
	if _, err := fmt.Fprintln(w, line.String()); err != nil {
		return err
	}
	return w.Flush()
}

func formatBits(bits []bool) string {
	var b strings.Builder
	for _, bit := range bits {
		b.WriteString(formatBit(bit))
	}
	return b.String()
}

func formatBit(bit bool) string {
	if bit {
		return "1"
	}
	return "0"
}
