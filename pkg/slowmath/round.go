package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// Floori rounds x >= 0 down to a multiple of d > 0.
func Floori[T Integer](x, d T) T {
	return safemath.Floor(x, d)
}

// Ceili rounds x >= 0 up to a multiple of d > 0.
func Ceili[T Integer](x, d T) (T, error) {
	return safemath.Raise("ceili", safemath.Ceil(safemath.Checked{}, x, d))
}

func TryCeili[T Integer](x, d T) Result[T] {
	return safemath.Ceil(safemath.Try{}, x, d)
}

func MustCeili[T Integer](x, d T) T {
	return safemath.Ceil(safemath.FailFast{}, x, d).Value
}

// RatioFloori returns ⌊n ÷ d⌋ for n >= 0, d > 0.
func RatioFloori[T Integer](n, d T) T {
	return safemath.RatioFloor(n, d)
}

// RatioCeili returns ⌈n ÷ d⌉ for n >= 0, d > 0.
func RatioCeili[T Integer](n, d T) T {
	return safemath.RatioCeil(n, d)
}
