package cmd

import (
	"fmt"

	"github.com/fabriclab/fabbit/pkg/arch"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <fabric-file>",
	Short: "Show statistics about a fabric description",
	Long: `Parse a fabric description and report its module hierarchy, configurable
children, and configuration bit counts.

Examples:
  fabbit info fabric.fab
  fabbit info -v fabric.fab`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("Fabric: %s\n", args[0])
	fmt.Printf("  Top module:         %s\n", mods.ModuleName(top))
	fmt.Printf("  Modules:            %d\n", mods.NumModules())
	fmt.Printf("  Configuration bits: %d\n", db.NumBits())
	fmt.Printf("  Blocks:             %d\n", db.NumBlocks())

	if verbose {
		fmt.Println()
		for _, decl := range file.Decls {
			if decl.Module == nil {
				continue
			}
			name := decl.Module.Name
			mod, _ := mods.FindModule(name)
			children := mods.ConfigurableChildren(mod)
			fmt.Printf("  module %s: %d configurable children\n", name, len(children))
			for _, child := range children {
				fmt.Printf("    %s (%s)\n",
					mods.InstanceName(mod, child.Module, child.Instance),
					mods.ModuleName(child.Module))
			}
		}
	}
	return nil
}
