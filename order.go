package checkedfloat

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/tsatke/checkedfloat/internal/ieee"
)

// Ordering and equality are computed with the native relational operators
// on the raw values. Because no valid Value holds NaN, the result is a
// total order. For values built by NewUnchecked that hold NaN the result is
// unspecified.

// Equal reports whether v and o are numerically equal. +0 equals -0.
func (v Value[F, C]) Equal(o Value[F, C]) bool {
	return v.raw == o.raw
}

// EqualRaw reports whether v is numerically equal to x.
func (v Value[F, C]) EqualRaw(x F) bool {
	return v.raw == x
}

// Compare returns -1 if v < o, 0 if v == o and +1 if v > o. This is a
// total order as long as neither value was built from NaN with
// NewUnchecked.
func (v Value[F, C]) Compare(o Value[F, C]) int {
	return compareRaw(v.raw, o.raw)
}

// CompareRaw compares v with a raw float. It is only a total order if x
// is not NaN.
func (v Value[F, C]) CompareRaw(x F) int {
	return compareRaw(v.raw, x)
}

func compareRaw[F ~float32 | ~float64](a, b F) int {
	if a < b {
		return -1
	}
	if a == b {
		return 0
	}
	return 1
}

// Compare is Value.Compare as a function, for slices.SortFunc and friends.
func Compare[V interface{ Compare(V) int }](a, b V) int {
	return a.Compare(b)
}

func (v Value[F, C]) Less(o Value[F, C]) bool         { return v.raw < o.raw }
func (v Value[F, C]) LessEqual(o Value[F, C]) bool    { return v.raw <= o.raw }
func (v Value[F, C]) Greater(o Value[F, C]) bool      { return v.raw > o.raw }
func (v Value[F, C]) GreaterEqual(o Value[F, C]) bool { return v.raw >= o.raw }

func (v Value[F, C]) LessRaw(x F) bool         { return v.raw < x }
func (v Value[F, C]) LessEqualRaw(x F) bool    { return v.raw <= x }
func (v Value[F, C]) GreaterRaw(x F) bool      { return v.raw > x }
func (v Value[F, C]) GreaterEqualRaw(x F) bool { return v.raw >= x }

// Min returns the smaller of v and o, preferring v when they are equal.
func (v Value[F, C]) Min(o Value[F, C]) Value[F, C] {
	if o.raw < v.raw {
		return o
	}
	return v
}

// Max returns the larger of v and o, preferring v when they are equal.
func (v Value[F, C]) Max(o Value[F, C]) Value[F, C] {
	if o.raw > v.raw {
		return o
	}
	return v
}

// Clamp restricts v to [lo, hi]. It panics if lo > hi.
func (v Value[F, C]) Clamp(lo, hi Value[F, C]) Value[F, C] {
	if lo.raw > hi.raw {
		panic("checkedfloat: Clamp called with lo > hi")
	}
	return v.Max(lo).Min(hi)
}

// HashBits returns the bit pattern of v with both zeros mapped to 0. Equal
// values have equal HashBits.
func (v Value[F, C]) HashBits() uint64 {
	return ieee.CanonicalBits(v.raw)
}

// WriteHash writes the canonical bit pattern of v to h.
func (v Value[F, C]) WriteHash(h *maphash.Hash) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.HashBits())
	_, _ = h.Write(buf[:])
}

// Hash returns a seeded hash of v that is consistent with Equal.
func (v Value[F, C]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	v.WriteHash(&h)
	return h.Sum64()
}
