// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits a normalized sample to [-1, 1].
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}

// SignedMax returns the largest value of a signed integer with the given bit depth.
func SignedMax(bits int) int64 {
	return int64(uint64(1)<<(bits-1) - 1)
}

// SignedMin returns the smallest value of a signed integer with the given bit depth.
func SignedMin(bits int) int64 {
	return -int64(uint64(1) << (bits - 1))
}

// UnsignedMax returns the largest value of an unsigned integer with the given bit depth.
func UnsignedMax(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}

	return uint64(1)<<bits - 1
}

// FloatToSigned scales a normalized sample into a signed integer of the
// given bit depth. Positive values scale by the maximum and negative values
// by the magnitude of the minimum, so both -1 and 1 land exactly on the
// integer limits. NaN converts to 0.
func FloatToSigned(x float64, bits int) int64 {
	if math.IsNaN(x) {
		return 0
	}

	x = Clamp(x)
	if x >= 0 {
		v := x * float64(SignedMax(bits))
		// float64(MaxInt64) rounds up to 2^63.
		if v >= float64(SignedMax(bits)) {
			return SignedMax(bits)
		}

		return int64(v)
	}

	return int64(-x * float64(SignedMin(bits)))
}

// SignedToFloat is the inverse of FloatToSigned.
func SignedToFloat(v int64, bits int) float64 {
	if v < 0 {
		return float64(v) / -float64(SignedMin(bits))
	}

	return float64(v) / float64(SignedMax(bits))
}

// FloatToUnsigned scales a normalized sample into an offset-binary unsigned
// integer of the given bit depth, rounding to the nearest step. Silence maps
// to the midpoint. NaN converts to 0.
func FloatToUnsigned(x float64, bits int) uint64 {
	if math.IsNaN(x) {
		return 0
	}

	x = Clamp(x)
	max := float64(UnsignedMax(bits))
	v := math.Round((x + 1) * 0.5 * max)

	// float64 cannot hold MaxUint64 exactly, the rounded value may overshoot.
	if v >= max {
		return UnsignedMax(bits)
	}

	return uint64(v)
}

// UnsignedToFloat converts an offset-binary sample by flipping it into its
// signed counterpart first, which keeps silence at exactly zero.
func UnsignedToFloat(v uint64, bits int) float64 {
	return SignedToFloat(UnsignedToSigned(v, bits), bits)
}

// UnsignedToSigned flips the sign bit of an offset-binary value.
func UnsignedToSigned(v uint64, bits int) int64 {
	return AlignedToSigned(AlignUnsigned(v, bits), bits)
}

// AlignSigned left-aligns a signed value of the given bit depth into 64 bits.
func AlignSigned(v int64, bits int) int64 {
	return v << (64 - bits)
}

// AlignUnsigned left-aligns an offset-binary value of the given bit depth
// into a signed 64-bit value.
func AlignUnsigned(v uint64, bits int) int64 {
	return int64(v<<(64-bits) ^ 1<<63)
}

// AlignedToSigned narrows a left-aligned value to a signed integer of the
// given bit depth, dropping the low bits.
func AlignedToSigned(v int64, bits int) int64 {
	return v >> (64 - bits)
}

// AlignedToUnsigned narrows a left-aligned value to an offset-binary integer
// of the given bit depth.
func AlignedToUnsigned(v int64, bits int) uint64 {
	return (uint64(v) ^ 1<<63) >> (64 - bits)
}
