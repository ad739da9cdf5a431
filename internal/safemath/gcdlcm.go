package safemath

// gcd computes the greatest common divisor of |a| and |b| by Euclid's
// algorithm. Neither argument may be MinOf[T] when T is signed.
func gcd[T Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Gcd fails if either operand is the minimum of a signed type, whose
// magnitude is not representable.
func Gcd[T Integer, P Policy](p P, a, b T) Result[T] {
	if IsSigned[T]() && !p.Check(a != MinOf[T]() && b != MinOf[T]()) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(gcd(a, b))
}

// Lcm computes (a / gcd(a, b)) · b with a checked multiplication. The
// result carries the sign of a·b; it is zero if either operand is zero.
func Lcm[T Integer, P Policy](p P, a, b T) Result[T] {
	if a == 0 || b == 0 {
		return makeResult(T(0))
	}
	if IsSigned[T]() && !p.Check(a != MinOf[T]() && b != MinOf[T]()) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return Mul(p, a/gcd(a, b), b)
}
