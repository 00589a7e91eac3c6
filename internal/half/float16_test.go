package half

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactRoundTrips(t *testing.T) {
	// Values exactly representable in binary16
	for _, v := range []float64{0, 1, -1, 0.5, 2, 1024, -2048, 65504, -65504, 0.25, 1.5} {
		got := FromFloat64(v).Float64()
		require.Equal(t, v, got, "value %v", v)
	}
}

func TestSignedZero(t *testing.T) {
	pos := FromFloat64(0.0)
	require.EqualValues(t, 0, pos.Bits())
	require.False(t, pos.Signbit())

	neg := FromFloat64(math.Copysign(0, -1))
	require.Equal(t, NegativeZero, neg)
	require.True(t, neg.Signbit())
	require.True(t, math.Signbit(neg.Float64()))
	require.Equal(t, 0.0, neg.Float64())
}

func TestOverflowSaturatesToInfinity(t *testing.T) {
	// 65520 is the midpoint above the max finite value; nearest-even
	// rounding carries it out of range
	require.Equal(t, PositiveInfinity, FromFloat64(65520))
	require.Equal(t, NegativeInfinity, FromFloat64(-65520))
	require.Equal(t, PositiveInfinity, FromFloat64(1e6))

	require.True(t, math.IsInf(PositiveInfinity.Float64(), 1))
	require.True(t, math.IsInf(NegativeInfinity.Float64(), -1))
}

func TestMaxFiniteValue(t *testing.T) {
	f := FromFloat64(MaxValue)
	require.EqualValues(t, 0x7bff, f.Bits())
	require.Equal(t, float64(MaxValue), f.Float64())
	require.False(t, f.IsInf(0))
}

func TestInfinityHandling(t *testing.T) {
	require.Equal(t, PositiveInfinity, FromFloat64(math.Inf(1)))
	require.Equal(t, NegativeInfinity, FromFloat64(math.Inf(-1)))

	require.True(t, PositiveInfinity.IsInf(1))
	require.False(t, PositiveInfinity.IsInf(-1))
	require.True(t, NegativeInfinity.IsInf(-1))
	require.True(t, NegativeInfinity.IsInf(0))
	require.False(t, PositiveInfinity.IsNaN())
}

func TestNaN(t *testing.T) {
	f := FromFloat64(math.NaN())
	require.True(t, f.IsNaN())
	require.False(t, f.IsInf(0))
	require.True(t, math.IsNaN(f.Float64()))
}

func TestRoundTripPrecision(t *testing.T) {
	// Normal-range values recover to within the 10+1 bit mantissa,
	// i.e. 2^-11 relative error
	const maxRel = 1.0 / 2048
	for _, v := range []float64{
		0.1, 0.3, math.Pi, math.E, 123.456, -987.6, 1e-3, 4.2e4, 1.2e-4,
	} {
		got := FromFloat64(v).Float64()
		rel := math.Abs(got-v) / math.Abs(v)
		require.LessOrEqual(t, rel, maxRel, "value %v decoded to %v", v, got)
	}
}

func TestSubnormalRange(t *testing.T) {
	// Smallest positive binary16 subnormal is 2^-24
	tiny := math.Pow(2, -24)
	f := FromFloat64(tiny)
	require.EqualValues(t, 1, f.Bits())
	require.Equal(t, tiny, f.Float64())

	// Below half the smallest subnormal the value flushes to zero
	require.EqualValues(t, 0, FromFloat64(math.Pow(2, -26)).Bits())
}

func TestRoundToNearestEven(t *testing.T) {
	// 2049 sits halfway between 2048 and 2050 (spacing 2 at this
	// magnitude); ties go to the even mantissa
	require.Equal(t, 2048.0, FromFloat64(2049).Float64())
	require.Equal(t, 2052.0, FromFloat64(2051).Float64())

	// Above the midpoint the sticky bits force a round up
	require.Equal(t, 2050.0, FromFloat64(2049.5).Float64())
}

func TestRoundToNearestEvenSubnormal(t *testing.T) {
	// 2^-25 is the tie between zero and the smallest subnormal 2^-24;
	// the even side is zero
	require.EqualValues(t, 0, FromFloat64(math.Pow(2, -25)).Bits())

	// 3*2^-25 ties between 2^-24 (odd cell) and 2^-23 (even cell)
	require.EqualValues(t, 2, FromFloat64(3*math.Pow(2, -25)).Bits())
}

func TestBitsRoundTrip(t *testing.T) {
	f := FromFloat64(1.5)
	require.Equal(t, f, FromBits(f.Bits()))
}

func TestString(t *testing.T) {
	require.Equal(t, "1.5", FromFloat64(1.5).String())
}
