package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// ShiftLeft returns x · 2ˢ for x >= 0, s >= 0. It fails if s is not
// smaller than the bit width of T or a set bit would be shifted out of
// the value range.
func ShiftLeft[T, S Integer](x T, s S) (T, error) {
	return safemath.Raise("shift_left", safemath.Shl(safemath.Checked{}, x, s))
}

func TryShiftLeft[T, S Integer](x T, s S) Result[T] {
	return safemath.Shl(safemath.Try{}, x, s)
}

func MustShiftLeft[T, S Integer](x T, s S) T {
	return safemath.Shl(safemath.FailFast{}, x, s).Value
}

// ShiftRight returns ⌊x ÷ 2ˢ⌋ for x >= 0, s >= 0. It fails if s is not
// smaller than the bit width of T.
func ShiftRight[T, S Integer](x T, s S) (T, error) {
	return safemath.Raise("shift_right", safemath.Shr(safemath.Checked{}, x, s))
}

func TryShiftRight[T, S Integer](x T, s S) Result[T] {
	return safemath.Shr(safemath.Try{}, x, s)
}

func MustShiftRight[T, S Integer](x T, s S) T {
	return safemath.Shr(safemath.FailFast{}, x, s).Value
}
