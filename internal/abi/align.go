package abi

import "math"

// AlignTo rounds offset up to the next multiple of align.
// align of 0 returns offset unchanged.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// IsAligned reports whether addr sits on an align-byte boundary.
// An alignment of 0 never matches.
func IsAligned(addr uint64, align uint32) bool {
	if align == 0 {
		return false
	}
	return addr%uint64(align) == 0
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}
