package ieee

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type meters float64

func TestOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(32, Of[float32]().Bits)
	assert.Equal(64, Of[float64]().Bits)
	assert.Equal(64, Of[meters]().Bits)
	assert.Equal(float64(math.SmallestNonzeroFloat32)*(1<<23), Of[float32]().MinPositive)
}

func TestCanonicalBits(t *testing.T) {
	assert := assert.New(t)

	negZero64 := math.Copysign(0, -1)
	assert.NotEqual(Bits(0.0), Bits(negZero64))
	assert.Equal(CanonicalBits(0.0), CanonicalBits(negZero64))
	assert.Equal(uint64(0), CanonicalBits(float32(math.Copysign(0, -1))))

	assert.Equal(math.Float64bits(1.5), CanonicalBits(1.5))
	assert.Equal(uint64(math.Float32bits(1.5)), CanonicalBits(float32(1.5)))
}

func TestFromBits(t *testing.T) {
	for _, f := range []float64{0, 1, -2.5, math.MaxFloat64, math.Inf(-1)} {
		assert.Equal(t, f, FromBits[float64](Bits(f)))
		assert.Equal(t, float32(f), FromBits[float32](Bits(float32(f))))
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		input        float64
		wantMantissa uint64
		wantExponent int16
		wantSign     int8
	}{
		{"one", 1, 1 << 52, -52, 1},
		{"negative two", -2, 1 << 52, -51, -1},
		{"zero", 0, 0, -1075, 1},
		{"smallest subnormal", math.SmallestNonzeroFloat64, 2, -1075, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, e, s := Decode(tt.input)
			assert.Equal(t, tt.wantMantissa, m)
			assert.Equal(t, tt.wantExponent, e)
			assert.Equal(t, tt.wantSign, s)
			assert.Equal(t, tt.input, float64(s)*math.Ldexp(float64(m), int(e)))
		})
	}
}

func TestDecode32(t *testing.T) {
	m, e, s := Decode(float32(-0.75))
	assert.Equal(t, uint64(3)<<22, m)
	assert.Equal(t, int16(-24), e)
	assert.Equal(t, int8(-1), s)
}

func TestIsSubnormal(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsSubnormal(math.SmallestNonzeroFloat64))
	assert.True(IsSubnormal(float32(math.SmallestNonzeroFloat32)))
	assert.False(IsSubnormal(float32(math.SmallestNonzeroFloat64)))
	assert.False(IsSubnormal(0.0))
	assert.False(IsSubnormal(1.0))
	assert.False(IsSubnormal(0x1p-1022))
}
