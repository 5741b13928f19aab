// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audbuf/utils"

// Translator returns the conversion from samples of type U into samples of
// type T. The conversion is chosen once, so the returned function is cheap to
// call per sample.
//
// Floating point samples are normalized to [-1, 1]. Signed integers scale
// asymmetrically: positive values by the type's maximum and negative values
// by the magnitude of its minimum. Unsigned integers are offset binary, so
// silence is the midpoint and the conversion flips the sign bit. Integer to
// integer conversions shift the value to the new bit depth, which keeps
// i16::MIN mapped to i32::MIN and u16(0) mapped to i16::MIN.
func Translator[U, T Sample]() func(U) T {
	from, to := formatOf[U](), formatOf[T]()

	if from == to {
		return func(v U) T { return T(v) }
	}

	switch {
	case from.kind == kindFloat && to.kind == kindFloat:
		return func(v U) T { return T(v) }

	case from.kind == kindFloat && to.kind == kindSigned:
		return func(v U) T { return T(utils.FloatToSigned(float64(v), to.bits)) }

	case from.kind == kindFloat && to.kind == kindUnsigned:
		return func(v U) T { return T(utils.FloatToUnsigned(float64(v), to.bits)) }

	case from.kind == kindSigned && to.kind == kindFloat:
		return func(v U) T { return T(utils.SignedToFloat(int64(v), from.bits)) }

	case from.kind == kindUnsigned && to.kind == kindFloat:
		return func(v U) T { return T(utils.UnsignedToFloat(uint64(v), from.bits)) }

	case from.kind == kindSigned && to.kind == kindSigned:
		return func(v U) T {
			return T(utils.AlignedToSigned(utils.AlignSigned(int64(v), from.bits), to.bits))
		}

	case from.kind == kindSigned && to.kind == kindUnsigned:
		return func(v U) T {
			return T(utils.AlignedToUnsigned(utils.AlignSigned(int64(v), from.bits), to.bits))
		}

	case from.kind == kindUnsigned && to.kind == kindSigned:
		return func(v U) T {
			return T(utils.AlignedToSigned(utils.AlignUnsigned(uint64(v), from.bits), to.bits))
		}

	default:
		return func(v U) T {
			return T(utils.AlignedToUnsigned(utils.AlignUnsigned(uint64(v), from.bits), to.bits))
		}
	}
}

// Translate converts a single sample. Prefer Translator in loops.
func Translate[U, T Sample](v U) T {
	return Translator[U, T]()(v)
}

// TranslateSlice converts src into dst and returns the number of samples
// written, which is the length of the shorter slice.
func TranslateSlice[U, T Sample](dst []T, src []U) int {
	n := min(len(dst), len(src))
	conv := Translator[U, T]()

	for i := range n {
		dst[i] = conv(src[i])
	}

	return n
}
