// Package ieee implements the IEEE-754 bit-layout operations that differ
// between float32 and float64 once, generically over the float width.
package ieee

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Layout describes the binary format of one float width.
type Layout struct {
	// Bits is the total width, 32 or 64.
	Bits int
	// MantissaBits is the number of explicitly stored fraction bits.
	MantissaBits int
	// ExponentBias is the bias of the stored exponent.
	ExponentBias int

	MaxValue    float64
	MinPositive float64
	Epsilon     float64
}

var (
	layout32 = Layout{
		Bits:         32,
		MantissaBits: 23,
		ExponentBias: 127,
		MaxValue:     math.MaxFloat32,
		MinPositive:  0x1p-126,
		Epsilon:      0x1p-23,
	}
	layout64 = Layout{
		Bits:         64,
		MantissaBits: 52,
		ExponentBias: 1023,
		MaxValue:     math.MaxFloat64,
		MinPositive:  0x1p-1022,
		Epsilon:      0x1p-52,
	}
)

// Of returns the layout of F.
func Of[F constraints.Float]() Layout {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return layout32
	}
	return layout64
}

// Bits returns the raw bit pattern of f, zero-extended to 64 bits for
// 32-bit floats.
func Bits[F constraints.Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// FromBits is the inverse of Bits.
func FromBits[F constraints.Float](b uint64) F {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// CanonicalBits is Bits with both zeros mapped to the all-zero pattern, so
// that values comparing equal produce equal bits.
func CanonicalBits[F constraints.Float](f F) uint64 {
	if f == 0 {
		return 0
	}
	return Bits(f)
}

// Decode splits f into mantissa, exponent and sign such that
// f == sign * mantissa * 2^exponent. NaN and infinities decode their raw
// fields without interpretation.
func Decode[F constraints.Float](f F) (mantissa uint64, exponent int16, sign int8) {
	l := Of[F]()
	b := Bits(f)

	sign = 1
	if b>>(l.Bits-1) != 0 {
		sign = -1
	}

	fracMask := uint64(1)<<l.MantissaBits - 1
	expMask := uint64(1)<<(l.Bits-1-l.MantissaBits) - 1
	storedExp := int((b >> l.MantissaBits) & expMask)

	if storedExp == 0 {
		mantissa = (b & fracMask) << 1
	} else {
		mantissa = (b & fracMask) | uint64(1)<<l.MantissaBits
	}
	exponent = int16(storedExp - l.ExponentBias - l.MantissaBits)
	return mantissa, exponent, sign
}

// IsSubnormal reports whether f is a nonzero value smaller in magnitude than
// the smallest normal value of its width.
func IsSubnormal[F constraints.Float](f F) bool {
	a := math.Abs(float64(f))
	return a != 0 && a < Of[F]().MinPositive
}
