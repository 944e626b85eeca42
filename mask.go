package layers

import (
	"math/bits"
	"strconv"
)

// MaskWidth is the number of layer indices a Mask can track.
const MaskWidth = 64

// Mask records per-layer enabled state, one bit per layer index. Bit 0
// (least significant) is layer index 0. A Mask knows nothing about names;
// the package-level operations resolve names to the indices used here.
//
// Masks are plain values: every operation returns a new Mask and never
// mutates the receiver. Indices outside [0, MaskWidth) cannot be represented
// by the fixed-width backing; the bit operations ignore them and the queries
// report them as disabled.
type Mask uint64

// NewMask returns the empty mask, with every layer disabled.
func NewMask() Mask { return 0 }

// EnableAll returns a mask with the low n bits set, treating the sequence as
// n layers and turning them all on. The receiver's value does not contribute
// to the result; this is a full overwrite, not an accumulation. n <= 0
// yields the empty mask, n >= MaskWidth the full mask.
func (Mask) EnableAll(n int) Mask {
	if n <= 0 {
		return 0
	}
	if n >= MaskWidth {
		return ^Mask(0)
	}
	return Mask(1)<<n - 1
}

// DisableAll returns the empty mask regardless of the receiver's value.
func (Mask) DisableAll() Mask { return 0 }

// Enable returns a copy of the mask with the bits at the given indices set.
// Order does not matter; repeated indices are harmless.
func (m Mask) Enable(indices ...int) Mask {
	for _, i := range indices {
		if i < 0 || i >= MaskWidth {
			continue
		}
		m |= 1 << i
	}
	return m
}

// Disable returns a copy of the mask with the bits at the given indices
// cleared. Clearing a bit that is not set leaves the mask unchanged.
func (m Mask) Disable(indices ...int) Mask {
	for _, i := range indices {
		if i < 0 || i >= MaskWidth {
			continue
		}
		m &^= 1 << i
	}
	return m
}

// Toggle returns a copy of the mask with the bits at the given indices
// flipped, applied in argument order. A repeated index flips its bit again.
func (m Mask) Toggle(indices ...int) Mask {
	for _, i := range indices {
		if i < 0 || i >= MaskWidth {
			continue
		}
		m ^= 1 << i
	}
	return m
}

// Enabled reports whether the bit at index is set.
func (m Mask) Enabled(index int) bool {
	if index < 0 || index >= MaskWidth {
		return false
	}
	return m&(1<<index) != 0
}

// Disabled reports whether the bit at index is clear.
func (m Mask) Disabled(index int) bool {
	return !m.Enabled(index)
}

// Count returns the number of enabled layers.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Format renders the mask as its binary digits, most significant set bit
// first. The empty mask renders as "0". Presentation only; nothing in this
// package consumes the rendered form.
func (m Mask) Format() string {
	return strconv.FormatUint(uint64(m), 2)
}
