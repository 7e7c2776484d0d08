// Package bitdb holds the fabric-independent configuration bit database:
// a hierarchy of named configuration blocks where leaf blocks own the
// individual configuration bits produced by the upstream bitstream builder.
package bitdb

// ConfigBlockId identifies a configuration block within a Database.
type ConfigBlockId int

// ConfigBitId identifies a single configuration bit within a Database.
type ConfigBitId int

// InvalidBlock marks the absence of a block, e.g. the parent of a root.
const InvalidBlock ConfigBlockId = -1

type block struct {
	name     string
	parent   ConfigBlockId
	children []ConfigBlockId
	bits     []ConfigBitId
}

type bit struct {
	owner ConfigBlockId
	value bool
}

// Database is an arena-backed store of configuration blocks and bits.
// It is built once by a producer (e.g. the fabric description loader) and
// then read concurrently-safe by virtue of never being mutated again.
type Database struct {
	blocks []block
	bits   []bit
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// AddBlock appends a new root-level block with the given name.
func (d *Database) AddBlock(name string) ConfigBlockId {
	id := ConfigBlockId(len(d.blocks))
	d.blocks = append(d.blocks, block{name: name, parent: InvalidBlock})
	return id
}

// AddChild appends a new block as the last child of parent.
func (d *Database) AddChild(parent ConfigBlockId, name string) ConfigBlockId {
	id := ConfigBlockId(len(d.blocks))
	d.blocks = append(d.blocks, block{name: name, parent: parent})
	d.blocks[parent].children = append(d.blocks[parent].children, id)
	return id
}

// AddBit appends a configuration bit owned by the given block. Only leaf
// blocks should own bits; the builder checks that invariant, not the store.
func (d *Database) AddBit(owner ConfigBlockId, value bool) ConfigBitId {
	id := ConfigBitId(len(d.bits))
	d.bits = append(d.bits, bit{owner: owner, value: value})
	d.blocks[owner].bits = append(d.blocks[owner].bits, id)
	return id
}

// RootBlocks returns every block without a parent, in creation order.
func (d *Database) RootBlocks() []ConfigBlockId {
	var roots []ConfigBlockId
	for i := range d.blocks {
		if d.blocks[i].parent == InvalidBlock {
			roots = append(roots, ConfigBlockId(i))
		}
	}
	return roots
}

// Children returns the child blocks of b in insertion order.
func (d *Database) Children(b ConfigBlockId) []ConfigBlockId {
	return d.blocks[b].children
}

// FindChild looks up the child of parent with the given name.
func (d *Database) FindChild(parent ConfigBlockId, name string) (ConfigBlockId, bool) {
	for _, child := range d.blocks[parent].children {
		if d.blocks[child].name == name {
			return child, true
		}
	}
	return InvalidBlock, false
}

// Bits returns the configuration bits owned by b in insertion order.
func (d *Database) Bits(b ConfigBlockId) []ConfigBitId {
	return d.blocks[b].bits
}

// BitValue returns the stored value of a configuration bit.
func (d *Database) BitValue(id ConfigBitId) bool {
	return d.bits[id].value
}

// BitOwner returns the leaf block owning the bit.
func (d *Database) BitOwner(id ConfigBitId) ConfigBlockId {
	return d.bits[id].owner
}

// BlockName returns the name of b.
func (d *Database) BlockName(b ConfigBlockId) string {
	return d.blocks[b].name
}

// ValidBlock reports whether b refers to a block in this database.
func (d *Database) ValidBlock(b ConfigBlockId) bool {
	return b >= 0 && int(b) < len(d.blocks)
}

// NumBlocks returns the total number of blocks.
func (d *Database) NumBlocks() int {
	return len(d.blocks)
}

// NumBits returns the total number of configuration bits in the database.
func (d *Database) NumBits() int {
	return len(d.bits)
}
