package bitstream

import (
	"fmt"

	"github.com/fabriclab/fabbit/pkg/bitdb"
	"github.com/fabriclab/fabbit/pkg/fabric"
)

// buildFrameBitstream walks the hierarchy like the chain builder but
// additionally accumulates, level by level, the frame address of every bit.
//
// blocks and modules are the paths from the root to the current node; addr is
// the address accumulated over those levels, most significant level first.
// A level with a single configurable child contributes no address bits. A
// level with several treats the last child as its frame decoder: the decoder
// is neither visited nor emitted, its address port width W decides how many
// bits the level contributes, and the i-th remaining child contributes the
// W-bit encoding of i.
//
// At a leaf every owned bit is emitted with the accumulated address and the
// bit's stored value as data-in.
func buildFrameBitstream(db *bitdb.Database, mods *fabric.ModuleManager, blocks []bitdb.ConfigBlockId, modules []fabric.ModuleId, addr []bool, out *FabricBitstream) error {
	blk := blocks[len(blocks)-1]
	mod := modules[len(modules)-1]

	if len(db.Children(blk)) > 0 {
		children := mods.ConfigurableChildren(mod)
		// A block with child blocks but no configurable children has no path
		// to its bits; the dispatcher's size check reports anything dropped
		// here.
		if len(children) == 0 {
			return nil
		}

		addrWidth := 0
		if len(children) > 1 {
			decoder := children[len(children)-1].Module
			port, ok := mods.FindPort(decoder, fabric.DecoderAddressPort)
			if !ok {
				return fmt.Errorf("%w: decoder %q has no %q port", ErrInconsistentFabric, mods.ModuleName(decoder), fabric.DecoderAddressPort)
			}
			addrWidth = mods.PortWidth(port)
			children = children[:len(children)-1]
		}

		for idx, child := range children {
			name := mods.InstanceName(mod, child.Module, child.Instance)
			childBlk, ok := db.FindChild(blk, name)
			if !ok {
				return fmt.Errorf("%w: block %q has no child block %q", ErrInconsistentFabric, db.BlockName(blk), name)
			}

			childAddr := addr
			if addrWidth > 0 {
				code, err := EncodeAddress(idx, addrWidth)
				if err != nil {
					return fmt.Errorf("block %q child %q: %w", db.BlockName(blk), name, err)
				}
				childAddr = append(append([]bool(nil), addr...), code...)
			}

			childBlocks := append(append([]bitdb.ConfigBlockId(nil), blocks...), childBlk)
			childModules := append(append([]fabric.ModuleId(nil), modules...), child.Module)

			if err := buildFrameBitstream(db, mods, childBlocks, childModules, childAddr, out); err != nil {
				return err
			}
		}
		// Bits live on leaves only.
		if n := len(db.Bits(blk)); n != 0 {
			return fmt.Errorf("%w: non-leaf block %q owns %d bits", ErrInconsistentFabric, db.BlockName(blk), n)
		}
		return nil
	}

	for _, bit := range db.Bits(blk) {
		id := out.AddBit(bit)
		out.SetAddress(id, addr)
		out.SetDataIn(id, db.BitValue(bit))
	}
	return nil
}
