package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// Gcd returns the greatest common divisor of |a| and |b|; Gcd(0, 0) is 0.
// It fails if either operand is the minimum of a signed type.
func Gcd[T Integer](a, b T) (T, error) {
	return safemath.Raise("gcd", safemath.Gcd(safemath.Checked{}, a, b))
}

func TryGcd[T Integer](a, b T) Result[T] {
	return safemath.Gcd(safemath.Try{}, a, b)
}

func MustGcd[T Integer](a, b T) T {
	return safemath.Gcd(safemath.FailFast{}, a, b).Value
}

// Lcm returns the least common multiple of a and b with the sign of a·b.
// It is 0 if either operand is 0.
func Lcm[T Integer](a, b T) (T, error) {
	return safemath.Raise("lcm", safemath.Lcm(safemath.Checked{}, a, b))
}

func TryLcm[T Integer](a, b T) Result[T] {
	return safemath.Lcm(safemath.Try{}, a, b)
}

func MustLcm[T Integer](a, b T) T {
	return safemath.Lcm(safemath.FailFast{}, a, b).Value
}
