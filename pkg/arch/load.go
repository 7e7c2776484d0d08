package arch

import (
	"fmt"
	"strings"

	"github.com/fabriclab/fabbit/pkg/bitdb"
	"github.com/fabriclab/fabbit/pkg/fabric"
)

// Load turns a parsed fabric description into the two hierarchies the
// bitstream compiler consumes: the module manager mirroring the physical
// hierarchy and the bit database mirroring it block-for-block. Block names
// are the instance names of the corresponding configurable children, so the
// two trees join cleanly during the build.
func Load(file *File) (*bitdb.Database, *fabric.ModuleManager, fabric.ModuleId, error) {
	mods := fabric.NewModuleManager()

	var topName string
	decls := make(map[string]*ModuleDecl)
	for _, decl := range file.Decls {
		switch {
		case decl.Module != nil:
			if _, err := mods.AddModule(decl.Module.Name); err != nil {
				return nil, nil, fabric.InvalidModule, err
			}
			decls[decl.Module.Name] = decl.Module
		case decl.Top != nil:
			if topName != "" {
				return nil, nil, fabric.InvalidModule, fmt.Errorf("arch: multiple top declarations (%q and %q)", topName, decl.Top.Name)
			}
			topName = decl.Top.Name
		}
	}
	if topName == "" {
		return nil, nil, fabric.InvalidModule, fmt.Errorf("arch: missing top declaration")
	}
	top, ok := mods.FindModule(topName)
	if !ok {
		return nil, nil, fabric.InvalidModule, fmt.Errorf("arch: top module %q is not declared", topName)
	}

	bitValues := make(map[fabric.ModuleId][]bool)
	for name, decl := range decls {
		mod, _ := mods.FindModule(name)

		var hasChildren, hasBits bool
		instances := make(map[string]int)
		for _, item := range decl.Items {
			switch {
			case item.Port != nil:
				mods.AddPort(mod, item.Port.Name, item.Port.Width)
			case item.Child != nil:
				hasChildren = true
				child, ok := mods.FindModule(item.Child.Module)
				if !ok {
					return nil, nil, fabric.InvalidModule, fmt.Errorf("arch: module %q instantiates undeclared module %q", name, item.Child.Module)
				}
				instance := instances[item.Child.Module]
				instances[item.Child.Module]++
				if item.Child.As != "" {
					mods.AddNamedConfigurableChild(mod, child, instance, item.Child.As)
				} else {
					mods.AddConfigurableChild(mod, child, instance)
				}
			case item.Bits != nil:
				if hasBits {
					return nil, nil, fabric.InvalidModule, fmt.Errorf("arch: module %q declares bits twice", name)
				}
				hasBits = true
				bitValues[mod] = item.Bits.bitValues()
			}
		}
		if hasChildren && hasBits {
			return nil, nil, fabric.InvalidModule, fmt.Errorf("arch: module %q declares both children and bits", name)
		}
	}

	db := bitdb.NewDatabase()
	root := db.AddBlock(mods.ModuleName(top))
	onPath := make(map[fabric.ModuleId]bool)
	if err := buildBlocks(db, mods, bitValues, root, top, onPath); err != nil {
		return nil, nil, fabric.InvalidModule, err
	}
	return db, mods, top, nil
}

// buildBlocks mirrors the module hierarchy into the bit database: one block
// per configurable child instance, bits on the leaves.
func buildBlocks(db *bitdb.Database, mods *fabric.ModuleManager, bitValues map[fabric.ModuleId][]bool, blk bitdb.ConfigBlockId, mod fabric.ModuleId, onPath map[fabric.ModuleId]bool) error {
	if onPath[mod] {
		return fmt.Errorf("arch: module %q instantiates itself", mods.ModuleName(mod))
	}
	onPath[mod] = true
	defer delete(onPath, mod)

	children := mods.ConfigurableChildren(mod)
	if len(children) == 0 {
		for _, value := range bitValues[mod] {
			db.AddBit(blk, value)
		}
		return nil
	}
	for _, child := range children {
		name := mods.InstanceName(mod, child.Module, child.Instance)
		childBlk := db.AddChild(blk, name)
		if err := buildBlocks(db, mods, bitValues, childBlk, child.Module, onPath); err != nil {
			return err
		}
	}
	return nil
}

func (b *BitsDecl) bitValues() []bool {
	if b.Values != nil {
		raw := strings.Trim(*b.Values, `"`)
		out := make([]bool, len(raw))
		for i, c := range raw {
			out[i] = c == '1'
		}
		return out
	}
	if b.Count != nil {
		return make([]bool, *b.Count)
	}
	return nil
}
