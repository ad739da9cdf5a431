package safemath

import "math/bits"

// Sqrt computes ⌊√v⌋ for v >= 0 without floating point, using
// ⌊√v⌋ ∈ {2⌊√(v/4)⌋, 2⌊√(v/4)⌋+1}.
func Sqrt[T Integer](v T) T {
	Expects(v >= 0, "sqrti", "v >= 0")
	if v < 2 {
		return v
	}
	a := Sqrt(v/4) * 2 // a² ≤ v
	// (a+1)² > v, rearranged so that nothing overflows
	if v-a*a < 2*a+1 {
		return a
	}
	return a + 1
}

// Square fails iff |v| > ⌊√MaxOf[T]⌋.
func Square[T Integer, P Policy](p P, v T) Result[T] {
	m := Sqrt(MaxOf[T]())
	if !p.Check(v <= m && !(IsSigned[T]() && v < -m)) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(v * v)
}

// Pow computes bᵉ for e >= 0. Negative bases are raised in the unsigned
// domain of the same width and the sign is restored from the parity of e.
func Pow[T, E Integer, P Policy](p P, b T, e E) Result[T] {
	Expects(e >= 0, "powi", "e >= 0")
	ue := uint64(e)
	if b == 0 {
		if ue == 0 {
			return makeResult(T(1))
		}
		return makeResult(T(0))
	}
	if b > 0 {
		r := powMagnitude(p, uint64(b), ue, uint64(MaxOf[T]()))
		if r.IsError() {
			return passthrough[T](r)
		}
		return makeResult(T(r.Value))
	}

	// -int64(MinInt64) wraps to MinInt64, whose uint64 image is the
	// magnitude 1<<63, so every negative base has an exact magnitude.
	mag := uint64(-int64(b))
	r := powMagnitude(p, mag, ue, maxUnsigned(BitWidth[T]()))
	if r.IsError() {
		return passthrough[T](r)
	}
	negative := ue%2 != 0
	limit := uint64(MaxOf[T]()) + 1 // |MinOf[T]|
	if !p.Check(r.Value < limit || (r.Value == limit && negative)) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	if negative {
		return makeResult(T(-int64(r.Value)))
	}
	return makeResult(T(r.Value))
}

// powMagnitude raises b > 0 to e by square-and-multiply, scanning e from
// its highest set bit. Both steps are bounded before they are taken:
// squaring by ⌊√limit⌋ and multiplying by ⌊limit/b⌋.
func powMagnitude[P Policy](p P, b, e, limit uint64) Result[uint64] {
	sq := Sqrt(limit)
	mb := limit / b
	cb := uint64(1)
	for bit := uint64(1) << max(bits.Len64(e)-1, 0); bit > 0; bit >>= 1 {
		if !p.Check(cb <= sq) {
			return makeError[uint64](p, ErrcValueTooLarge)
		}
		cb *= cb
		if e&bit != 0 {
			if !p.Check(cb <= mb) {
				return makeError[uint64](p, ErrcValueTooLarge)
			}
			cb *= b
		}
	}
	return makeResult(cb)
}

// LogFloor computes ⌊log x ÷ log b⌋ for x > 0, b > 1.
func LogFloor[T Integer](x, b T) int {
	Expects(x > 0 && b > 1, "log_floori", "x > 0 && b > 1")
	return FactorizeFloor(x, b).Exponent
}

// LogCeil computes ⌈log x ÷ log b⌉ for x > 0, b > 1.
func LogCeil[T Integer](x, b T) int {
	Expects(x > 0 && b > 1, "log_ceili", "x > 0 && b > 1")
	e := 0
	x0 := T(1)
	m := MaxOf[T]() / b
	for x0 < x {
		if x0 > m {
			// bᵉ < x and bᵉ⁺¹ > MaxOf[T] ≥ x
			return e + 1
		}
		x0 *= b
		e++
	}
	return e
}
