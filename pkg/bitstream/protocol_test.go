package bitstream

import (
	"errors"
	"testing"
)

func TestParseProtocol(t *testing.T) {
	cases := []struct {
		name string
		want Protocol
	}{
		{"standalone", ProtocolStandalone},
		{"scan-chain", ProtocolScanChain},
		{"memory-bank", ProtocolMemoryBank},
		{"frame-based", ProtocolFrameBased},
	}

	for _, tc := range cases {
		got, err := ParseProtocol(tc.name)
		if err != nil {
			t.Fatalf("ParseProtocol(%q) returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseProtocol(%q) = %v, want %v", tc.name, got, tc.want)
		}
		if got.String() != tc.name {
			t.Fatalf("%v.String() = %q, want %q", got, got.String(), tc.name)
		}
	}
}

func TestParseProtocolUnknown(t *testing.T) {
	if _, err := ParseProtocol("jtag"); !errors.Is(err, ErrUnsupportedProtocol) {
		t.Fatalf("ParseProtocol error = %v, want ErrUnsupportedProtocol", err)
	}
}
