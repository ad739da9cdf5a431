// Package safemath implements overflow-checked integer arithmetic.
//
// Every checked operation is generic over the operand type and over a
// Policy, which decides how an unrepresentable result is surfaced. The
// algorithms never rely on a wrapped value to detect overflow: they
// either compute in a 64-bit type when T is at most 32 bits wide, or
// compare the operands against the bounds of T before computing.
//
// Two's complement representation is assumed for signed types.
package safemath

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of operand types accepted by the checked operations.
type Integer = constraints.Integer

type Signed = constraints.Signed

type Unsigned = constraints.Unsigned

// BitWidth returns the width of T in bits.
func BitWidth[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

func MaxOf[T Integer]() T {
	if IsSigned[T]() {
		return T(^uint64(0) >> (65 - BitWidth[T]()))
	}
	return ^T(0)
}

func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return ^MaxOf[T]()
	}
	return 0
}

// HasWiderType reports whether a native integer at least twice as wide as
// T exists, so that sums and products of two T values can be computed
// exactly in 64 bits.
func HasWiderType[T Integer]() bool {
	return BitWidth[T]() <= 32
}

func SameSignedness[A, B Integer]() bool {
	return IsSigned[A]() == IsSigned[B]()
}

// maxUnsigned returns the largest value of an unsigned integer of the given width.
func maxUnsigned(width int) uint64 {
	return ^uint64(0) >> (64 - width)
}

// minusOne is -1 for signed T and the maximum value for unsigned T.
func minusOne[T Integer]() T {
	return ^T(0)
}
