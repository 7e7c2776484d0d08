// Package bitstream compiles the fabric-independent configuration bit
// database into the fabric-dependent bit sequence that can be loaded into a
// manufactured FPGA. The compiler walks the module hierarchy in lock-step
// with the configuration block hierarchy and emits bits in the order (and,
// for frame-based fabrics, with the addresses) the configuration network
// expects.
package bitstream

import (
	"errors"

	"github.com/fabriclab/fabbit/pkg/bitdb"
)

// Sentinel errors for the failure classes of a fabric build. All of them
// indicate defects in the input data, not transient conditions; callers are
// expected to abort rather than retry.
var (
	// ErrInconsistentFabric signals that the module hierarchy and the block
	// hierarchy are not isomorphic where they must be.
	ErrInconsistentFabric = errors.New("bitstream: fabric and bit database disagree")

	// ErrUnsupportedProtocol signals a configuration protocol outside the
	// closed set this compiler knows.
	ErrUnsupportedProtocol = errors.New("bitstream: unsupported configuration protocol")

	// ErrSizeMismatch signals that the number of emitted bits differs from
	// the number of bits the database owns.
	ErrSizeMismatch = errors.New("bitstream: fabric bitstream size mismatch")

	// ErrAddressOverflow signals a frame address value that does not fit the
	// decoder's address port width.
	ErrAddressOverflow = errors.New("bitstream: address overflow")
)

// FabricBitId identifies one emitted bit within a FabricBitstream.
type FabricBitId int

type fabricBit struct {
	source  bitdb.ConfigBitId
	address []bool
	dataIn  bool
}

// FabricBitstream is the ordered sequence of configuration bits produced by
// one build. Chain protocols only use the emission order; frame protocols
// additionally carry a per-bit address and data-in value. The container is
// append-only apart from a single optional in-place Reverse.
type FabricBitstream struct {
	bits []fabricBit
}

// NewFabricBitstream creates an empty bitstream.
func NewFabricBitstream() *FabricBitstream {
	return &FabricBitstream{}
}

// AddBit appends a bit referencing the given source configuration bit and
// returns its id.
func (f *FabricBitstream) AddBit(source bitdb.ConfigBitId) FabricBitId {
	id := FabricBitId(len(f.bits))
	f.bits = append(f.bits, fabricBit{source: source})
	return id
}

// SetAddress stores a copy of the address vector for the given bit. The
// vector is most-significant-bit first, outermost hierarchy level first.
func (f *FabricBitstream) SetAddress(id FabricBitId, address []bool) {
	f.bits[id].address = append([]bool(nil), address...)
}

// SetDataIn stores the data-in value for the given bit.
func (f *FabricBitstream) SetDataIn(id FabricBitId, value bool) {
	f.bits[id].dataIn = value
}

// ConfigBit returns the source configuration bit the emitted bit refers to.
func (f *FabricBitstream) ConfigBit(id FabricBitId) bitdb.ConfigBitId {
	return f.bits[id].source
}

// Address returns the stored address vector of the given bit. The returned
// slice is owned by the container and must not be modified.
func (f *FabricBitstream) Address(id FabricBitId) []bool {
	return f.bits[id].address
}

// DataIn returns the stored data-in value of the given bit.
func (f *FabricBitstream) DataIn(id FabricBitId) bool {
	return f.bits[id].dataIn
}

// NumBits returns the number of emitted bits.
func (f *FabricBitstream) NumBits() int {
	return len(f.bits)
}

// Reverse flips the emission order in place. Scan-chain fabrics shift the
// last visited memory first, so the traversal order must be inverted before
// loading.
func (f *FabricBitstream) Reverse() {
	for i, j := 0, len(f.bits)-1; i < j; i, j = i+1, j-1 {
		f.bits[i], f.bits[j] = f.bits[j], f.bits[i]
	}
}
