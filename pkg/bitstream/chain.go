package bitstream

import (
	"fmt"

	"github.com/fabriclab/fabbit/pkg/bitdb"
	"github.com/fabriclab/fabbit/pkg/fabric"
)

// buildChainBitstream walks the block/module pair depth-first and appends, in
// traversal order, every bit owned by the leaf blocks it reaches. The
// configurable-children order of each module dictates the visit order, which
// is exactly the order a chain-style configuration network shifts memories.
//
// The two hierarchies are joined at every step by instance name: the child
// block matching a configurable child is the one named like that child's
// instance. A failed join means the trees were built inconsistently upstream.
func buildChainBitstream(db *bitdb.Database, mods *fabric.ModuleManager, blk bitdb.ConfigBlockId, mod fabric.ModuleId, out *FabricBitstream) error {
	children := mods.ConfigurableChildren(mod)
	if len(children) > 0 {
		for _, child := range children {
			name := mods.InstanceName(mod, child.Module, child.Instance)
			childBlk, ok := db.FindChild(blk, name)
			if !ok {
				return fmt.Errorf("%w: block %q has no child block %q", ErrInconsistentFabric, db.BlockName(blk), name)
			}
			if err := buildChainBitstream(db, mods, childBlk, child.Module, out); err != nil {
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
		out.AddBit(bit)
	}
	return nil
}
