// Package half implements the IEEE 754 binary16 half-precision format:
// 1 sign bit, 5 exponent bits (bias 15) and 10 mantissa bits. Values are
// converted to and from the binary32 format at the bit level; float64
// helpers wrap the float32 path.
package half

import (
	"math"
	"strconv"
)

// Float16 is the raw 16-bit pattern of a half-precision value.
type Float16 uint16

// Bit patterns of notable binary16 values.
const (
	PositiveInfinity Float16 = 0x7c00
	NegativeInfinity Float16 = 0xfc00
	NegativeZero     Float16 = 0x8000
)

// MaxValue is the largest finite binary16 value (0x7bff).
const MaxValue = 65504.0

// FromFloat32 encodes f as binary16, rounding to nearest-even.
// Values whose magnitude exceeds MaxValue after rounding become
// signed infinity; values too small for the subnormal range become
// signed zero.
func FromFloat32(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits >> 23) & 0xff)
	mant := bits & 0x7fffff

	switch exp {
	case 0xff:
		if mant == 0 {
			return Float16(sign | 0x7c00) // Inf
		}
		// NaN: keep the top mantissa bits, force at least one set
		return Float16(sign | 0x7c00 | uint16(mant>>13) | 1)
	case 0:
		// float32 zero or subnormal, far below binary16 range
		return Float16(sign)
	}

	exp = exp - 127 + 15
	if exp >= 0x1f {
		return Float16(sign | 0x7c00)
	}
	if exp <= 0 {
		// Subnormal in binary16
		if exp < -10 {
			return Float16(sign)
		}
		mant |= 0x800000
		shift := uint32(1 - exp)
		mant16 := mant >> (shift + 13)
		guard := (mant >> (shift + 12)) & 1
		sticky := mant & ((1 << (shift + 12)) - 1)
		if guard == 1 && (sticky != 0 || mant16&1 == 1) {
			// A carry out of the subnormal mantissa lands exactly on
			// the smallest normal pattern, so no exponent fixup needed
			mant16++
		}
		return Float16(sign | uint16(mant16))
	}

	mant16 := mant >> 13
	if mant&0x1000 != 0 && (mant&0xfff != 0 || mant16&1 == 1) {
		// Round up; a carry out of the mantissa bumps the exponent
		mant16++
		if mant16 == 0x400 {
			mant16 = 0
			exp++
			if exp >= 0x1f {
				return Float16(sign | 0x7c00)
			}
		}
	}

	return Float16(sign | uint16(exp<<10) | uint16(mant16))
}

// FromFloat64 encodes f as binary16 via the float32 path.
func FromFloat64(f float64) Float16 {
	return FromFloat32(float32(f))
}

// FromBits reinterprets a raw 16-bit pattern as a Float16.
func FromBits(b uint16) Float16 {
	return Float16(b)
}

// Float32 decodes the binary16 pattern to float32.
func (f Float16) Float32() float32 {
	sign := uint32(f>>15) & 1
	exp := int32(f>>10) & 0x1f
	mant := uint32(f) & 0x3ff

	var bits uint32
	switch exp {
	case 0:
		if mant == 0 {
			bits = sign << 31
		} else {
			// Normalize the binary16 subnormal into a binary32 normal
			for mant&0x400 == 0 {
				mant <<= 1
				exp--
			}
			exp++
			mant &= 0x3ff
			bits = (sign << 31) | (uint32(exp+127-15) << 23) | (mant << 13)
		}
	case 0x1f:
		bits = (sign << 31) | 0x7f800000 | (mant << 13)
	default:
		bits = (sign << 31) | (uint32(exp+127-15) << 23) | (mant << 13)
	}

	return math.Float32frombits(bits)
}

// Float64 decodes the binary16 pattern to float64.
func (f Float16) Float64() float64 {
	return float64(f.Float32())
}

// Bits returns the raw 16-bit pattern.
func (f Float16) Bits() uint16 {
	return uint16(f)
}

// Signbit reports whether the sign bit is set.
func (f Float16) Signbit() bool {
	return f&0x8000 != 0
}

// IsInf reports whether f is an infinity, following the convention of
// math.IsInf: sign > 0 matches +Inf, sign < 0 matches -Inf, sign == 0
// matches either.
func (f Float16) IsInf(sign int) bool {
	if f&0x7fff != 0x7c00 {
		return false
	}
	if sign == 0 {
		return true
	}
	return (sign > 0) == !f.Signbit()
}

// IsNaN reports whether f is a NaN pattern.
func (f Float16) IsNaN() bool {
	return f&0x7c00 == 0x7c00 && f&0x3ff != 0
}

func (f Float16) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}
