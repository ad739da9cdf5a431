package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// Absi returns |v|. It fails for the minimum of a signed type.
func Absi[T Integer](v T) (T, error) {
	return safemath.Raise("absi", safemath.Abs(safemath.Checked{}, v))
}

func TryAbsi[T Integer](v T) Result[T] {
	return safemath.Abs(safemath.Try{}, v)
}

func MustAbsi[T Integer](v T) T {
	return safemath.Abs(safemath.FailFast{}, v).Value
}

// Negate returns -v. It fails for any non-zero unsigned value and for the
// minimum of a signed type.
func Negate[T Integer](v T) (T, error) {
	return safemath.Raise("negate", safemath.Negate(safemath.Checked{}, v))
}

func TryNegate[T Integer](v T) Result[T] {
	return safemath.Negate(safemath.Try{}, v)
}

func MustNegate[T Integer](v T) T {
	return safemath.Negate(safemath.FailFast{}, v).Value
}

// Add returns a + b.
func Add[T Integer](a, b T) (T, error) {
	return safemath.Raise("add", safemath.Add(safemath.Checked{}, a, b))
}

func TryAdd[T Integer](a, b T) Result[T] {
	return safemath.Add(safemath.Try{}, a, b)
}

func MustAdd[T Integer](a, b T) T {
	return safemath.Add(safemath.FailFast{}, a, b).Value
}

// Subtract returns a - b.
func Subtract[T Integer](a, b T) (T, error) {
	return safemath.Raise("subtract", safemath.Sub(safemath.Checked{}, a, b))
}

func TrySubtract[T Integer](a, b T) Result[T] {
	return safemath.Sub(safemath.Try{}, a, b)
}

func MustSubtract[T Integer](a, b T) T {
	return safemath.Sub(safemath.FailFast{}, a, b).Value
}

// Multiply returns a · b.
func Multiply[T Integer](a, b T) (T, error) {
	return safemath.Raise("multiply", safemath.Mul(safemath.Checked{}, a, b))
}

func TryMultiply[T Integer](a, b T) Result[T] {
	return safemath.Mul(safemath.Try{}, a, b)
}

func MustMultiply[T Integer](a, b T) T {
	return safemath.Mul(safemath.FailFast{}, a, b).Value
}

// Divide returns n / d truncated toward zero. d must not be zero.
func Divide[T Integer](n, d T) (T, error) {
	return safemath.Raise("divide", safemath.Div(safemath.Checked{}, n, d))
}

func TryDivide[T Integer](n, d T) Result[T] {
	return safemath.Div(safemath.Try{}, n, d)
}

func MustDivide[T Integer](n, d T) T {
	return safemath.Div(safemath.FailFast{}, n, d).Value
}

// Modulo returns n % d, which has the sign of n. d must not be zero.
// Like the matching quotient, MinOf % -1 fails.
func Modulo[T Integer](n, d T) (T, error) {
	return safemath.Raise("modulo", safemath.Mod(safemath.Checked{}, n, d))
}

func TryModulo[T Integer](n, d T) Result[T] {
	return safemath.Mod(safemath.Try{}, n, d)
}

func MustModulo[T Integer](n, d T) T {
	return safemath.Mod(safemath.FailFast{}, n, d).Value
}

// Square returns v².
func Square[T Integer](v T) (T, error) {
	return safemath.Raise("square", safemath.Square(safemath.Checked{}, v))
}

func TrySquare[T Integer](v T) Result[T] {
	return safemath.Square(safemath.Try{}, v)
}

func MustSquare[T Integer](v T) T {
	return safemath.Square(safemath.FailFast{}, v).Value
}
