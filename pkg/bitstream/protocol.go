package bitstream

import "fmt"

// Protocol selects the configuration network encoding of a fabric.
type Protocol uint8

const (
	// ProtocolStandalone loads all configuration memories as one flat shift
	// sequence in traversal order.
	ProtocolStandalone Protocol = iota
	// ProtocolScanChain is a daisy-chained shift sequence; traversal order is
	// reversed to match the physical shift direction.
	ProtocolScanChain
	// ProtocolMemoryBank addresses memories through bank decoders; its bit
	// placement is produced outside this compiler.
	ProtocolMemoryBank
	// ProtocolFrameBased addresses every bit individually through a tree of
	// frame decoders.
	ProtocolFrameBased
)

// String returns the canonical protocol name.
func (p Protocol) String() string {
	switch p {
	case ProtocolStandalone:
		return "standalone"
	case ProtocolScanChain:
		return "scan-chain"
	case ProtocolMemoryBank:
		return "memory-bank"
	case ProtocolFrameBased:
		return "frame-based"
	default:
		return fmt.Sprintf("protocol(%d)", uint8(p))
	}
}

// ParseProtocol maps a protocol name to its value.
func ParseProtocol(name string) (Protocol, error) {
	switch name {
	case "standalone":
		return ProtocolStandalone, nil
	case "scan-chain":
		return ProtocolScanChain, nil
	case "memory-bank":
		return ProtocolMemoryBank, nil
	case "frame-based":
		return ProtocolFrameBased, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, name)
	}
}
