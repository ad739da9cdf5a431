package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// Powi returns bᵉ for e >= 0. 0⁰ is 1.
func Powi[T, E Integer](b T, e E) (T, error) {
	return safemath.Raise("powi", safemath.Pow(safemath.Checked{}, b, e))
}

func TryPowi[T, E Integer](b T, e E) Result[T] {
	return safemath.Pow(safemath.Try{}, b, e)
}

func MustPowi[T, E Integer](b T, e E) T {
	return safemath.Pow(safemath.FailFast{}, b, e).Value
}

// Sqrti returns ⌊√v⌋ for v >= 0.
func Sqrti[T Integer](v T) T {
	return safemath.Sqrt(v)
}

// LogFloori returns ⌊log_b x⌋ for x > 0, b > 1.
func LogFloori[T Integer](x, b T) int {
	return safemath.LogFloor(x, b)
}

// LogCeili returns ⌈log_b x⌉ for x > 0, b > 1.
func LogCeili[T Integer](x, b T) int {
	return safemath.LogCeil(x, b)
}
