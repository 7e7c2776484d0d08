package bitstream

import (
	"fmt"

	"github.com/fabriclab/fabbit/pkg/bitdb"
	"github.com/fabriclab/fabbit/pkg/fabric"
)

// Build compiles the configuration bit database into a fabric-dependent
// bitstream for the given protocol, starting at the top module.
//
// Preconditions checked here: the database has exactly one root block and its
// name matches the top module's name. Both hierarchies must have been built
// consistently; any disagreement discovered during traversal surfaces as
// ErrInconsistentFabric.
//
// After dispatch the emitted bit count must equal the database's total bit
// count. The memory-bank protocol intentionally emits nothing here (its bit
// placement is produced elsewhere), so on a non-empty database it always
// fails this check; the caller decides what to do with that.
func Build(db *bitdb.Database, mods *fabric.ModuleManager, proto Protocol, top fabric.ModuleId) (*FabricBitstream, error) {
	roots := db.RootBlocks()
	if len(roots) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one root block, found %d", ErrInconsistentFabric, len(roots))
	}
	root := roots[0]
	if name := mods.ModuleName(top); db.BlockName(root) != name {
		return nil, fmt.Errorf("%w: root block %q does not match top module %q", ErrInconsistentFabric, db.BlockName(root), name)
	}

	out := NewFabricBitstream()
	switch proto {
	case ProtocolStandalone:
		if err := buildChainBitstream(db, mods, root, top, out); err != nil {
			return nil, err
		}
	case ProtocolScanChain:
		if err := buildChainBitstream(db, mods, root, top, out); err != nil {
			return nil, err
		}
		out.Reverse()
	case ProtocolMemoryBank:
		// Nothing emitted; see the function comment.
	case ProtocolFrameBased:
		blocks := []bitdb.ConfigBlockId{root}
		modules := []fabric.ModuleId{top}
		if err := buildFrameBitstream(db, mods, blocks, modules, nil, out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProtocol, proto)
	}

	if out.NumBits() != db.NumBits() {
		return nil, fmt.Errorf("%w: emitted %d bits, database owns %d", ErrSizeMismatch, out.NumBits(), db.NumBits())
	}
	return out, nil
}
