package safemath

// The overflow checks in Sub, mulWide, Div and Mod follow the SEI CERT C
// rules INT30-C and INT32-C: operands are compared against the bounds of
// T before the operation, so a wrapped value is never inspected. addWide
// instead inspects the sum, whose wraparound is defined in Go.

func Abs[T Integer, P Policy](p P, v T) Result[T] {
	if !IsSigned[T]() {
		return makeResult(v)
	}
	if !p.Check(v != MinOf[T]()) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	if v < 0 {
		return makeResult(-v)
	}
	return makeResult(v)
}

// Negate fails for every non-zero unsigned value and for the minimum of a
// signed type.
func Negate[T Integer, P Policy](p P, v T) Result[T] {
	ok := v == 0
	if IsSigned[T]() {
		ok = v != MinOf[T]()
	}
	if !p.Check(ok) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(-v)
}

func Add[T Integer, P Policy](p P, a, b T) Result[T] {
	if HasWiderType[T]() {
		return addNarrow(p, a, b)
	}
	return addWide(p, a, b)
}

func addNarrow[T Integer, P Policy](p P, a, b T) Result[T] {
	if IsSigned[T]() {
		w := int64(a) + int64(b)
		if !p.Check(w >= int64(MinOf[T]()) && w <= int64(MaxOf[T]())) {
			return makeError[T](p, ErrcValueTooLarge)
		}
		return makeResult(T(w))
	}
	w := uint64(a) + uint64(b)
	if !p.Check(w <= uint64(MaxOf[T]())) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(T(w))
}

// addWide detects overflow from the wrapped sum: it has the wrong sign,
// or is below an unsigned operand.
func addWide[T Integer, P Policy](p P, a, b T) Result[T] {
	r := a + b
	var ok bool
	if IsSigned[T]() {
		ok = !(a < 0 && b < 0 && r >= 0) && !(a > 0 && b > 0 && r < 0)
	} else {
		ok = r >= a && r >= b
	}
	if !p.Check(ok) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(r)
}

// Sub checks the bounds before subtracting, so a-b is only evaluated when
// it is representable.
func Sub[T Integer, P Policy](p P, a, b T) Result[T] {
	var ok bool
	if IsSigned[T]() {
		ok = !(b > 0 && a < MinOf[T]()+b) && !(b < 0 && a > MaxOf[T]()+b)
	} else {
		ok = a >= b
	}
	if !p.Check(ok) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(a - b)
}

func Mul[T Integer, P Policy](p P, a, b T) Result[T] {
	if HasWiderType[T]() {
		return mulNarrow(p, a, b)
	}
	return mulWide(p, a, b)
}

func mulNarrow[T Integer, P Policy](p P, a, b T) Result[T] {
	if IsSigned[T]() {
		w := int64(a) * int64(b)
		if !p.Check(w >= int64(MinOf[T]()) && w <= int64(MaxOf[T]())) {
			return makeError[T](p, ErrcValueTooLarge)
		}
		return makeResult(T(w))
	}
	w := uint64(a) * uint64(b)
	if !p.Check(w <= uint64(MaxOf[T]())) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(T(w))
}

// mulWide divides a bound by one operand and compares the quotient with
// the other operand, so the product is never computed when it overflows.
func mulWide[T Integer, P Policy](p P, a, b T) Result[T] {
	lo, hi := MinOf[T](), MaxOf[T]()
	var ok bool
	if IsSigned[T]() {
		ok = !(a > 0 && ((b > 0 && a > hi/b) || (b <= 0 && b < lo/a))) &&
			!(a < 0 && ((b > 0 && a < lo/b) || (b <= 0 && b < hi/a)))
	} else {
		ok = !(b > 0 && a > hi/b)
	}
	if !p.Check(ok) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(a * b)
}

// canMul reports whether a*b is representable in T.
func canMul[T Integer](a, b T) bool {
	return Mul(Try{}, a, b).Ok()
}

// Div requires d != 0. The only unrepresentable quotient is MinOf/-1.
func Div[T Integer, P Policy](p P, n, d T) Result[T] {
	Expects(d != 0, "divide", "d != 0")
	if !p.Check(!(IsSigned[T]() && n == MinOf[T]() && d == minusOne[T]())) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(n / d)
}

// Mod requires d != 0. MinOf % -1 is reported like the matching quotient.
func Mod[T Integer, P Policy](p P, n, d T) Result[T] {
	Expects(d != 0, "modulo", "d != 0")
	if !p.Check(!(IsSigned[T]() && n == MinOf[T]() && d == minusOne[T]())) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(n % d)
}
