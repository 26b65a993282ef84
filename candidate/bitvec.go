package candidate

import "math/bits"

// bitvec is a fixed-size bit vector over word ordinals, one bit per word in
// the indexed list. Backed by []uint64 with popcount-based counting.
type bitvec struct {
	bits []uint64
	size int
}

func newBitvec(size int) *bitvec {
	return &bitvec{bits: make([]uint64, (size+63)/64), size: size}
}

func (v *bitvec) set(i int) { v.bits[i/64] |= 1 << (i % 64) }

func (v *bitvec) get(i int) bool { return v.bits[i/64]&(1<<(i%64)) != 0 }

// fill sets every bit in [0, size).
func (v *bitvec) fill() {
	for i := range v.bits {
		v.bits[i] = ^uint64(0)
	}
	if tail := v.size % 64; tail != 0 {
		v.bits[len(v.bits)-1] = (1 << tail) - 1
	}
}

// and intersects other into v in place.
func (v *bitvec) and(other *bitvec) {
	for i := range v.bits {
		v.bits[i] &= other.bits[i]
	}
}

// andNot removes other's bits from v in place.
func (v *bitvec) andNot(other *bitvec) {
	for i := range v.bits {
		v.bits[i] &^= other.bits[i]
	}
}

func (v *bitvec) clear(i int) { v.bits[i/64] &^= 1 << (i % 64) }

func (v *bitvec) count() int {
	n := 0
	for _, b := range v.bits {
		n += bits.OnesCount64(b)
	}

	return n
}

func (v *bitvec) clone() *bitvec {
	out := &bitvec{bits: make([]uint64, len(v.bits)), size: v.size}
	copy(out.bits, v.bits)

	return out
}

// forEach calls fn with every set ordinal in ascending order.
func (v *bitvec) forEach(fn func(i int)) {
	for wi, b := range v.bits {
		for b != 0 {
			fn(wi*64 + bits.TrailingZeros64(b))
			b &= b - 1
		}
	}
}
