// SPDX-License-Identifier: EPL-2.0

package audio

import "reflect"

// Sample is the set of element types a buffer can hold. Every member is a
// plain number whose zero value is silence for signed and float formats, so
// buffers can be zero-filled with a single clear.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

type sampleKind uint8

const (
	kindSigned sampleKind = iota
	kindUnsigned
	kindFloat
)

type format struct {
	kind sampleKind
	bits int
}

func formatOf[T Sample]() format {
	t := reflect.TypeFor[T]()

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return format{kind: kindFloat, bits: t.Bits()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return format{kind: kindUnsigned, bits: t.Bits()}
	default:
		return format{kind: kindSigned, bits: t.Bits()}
	}
}

// sampleSize returns the size of T in bytes.
func sampleSize[T Sample]() uintptr {
	return reflect.TypeFor[T]().Size()
}
