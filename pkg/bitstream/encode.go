package bitstream

import "fmt"

// EncodeAddress returns the fixed-width binary encoding of value, most
// significant bit first. Values that do not fit the width are rejected; a
// frame decoder narrower than its sibling count is a construction defect and
// must never be truncated away.
func EncodeAddress(value, width int) ([]bool, error) {
	if value < 0 || width < 0 {
		return nil, fmt.Errorf("%w: value %d, width %d", ErrAddressOverflow, value, width)
	}
	if width < 63 && value >= 1<<uint(width) {
		return nil, fmt.Errorf("%w: value %d does not fit %d bits", ErrAddressOverflow, value, width)
	}
	out := make([]bool, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = value&1 == 1
		value >>= 1
	}
	return out, nil
}
