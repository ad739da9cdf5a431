package safemath

// Shl computes x << s for x >= 0, s >= 0. Shifting by the bit width or
// more, or shifting set bits out of the value range, is a failure.
func Shl[T, S Integer, P Policy](p P, x T, s S) Result[T] {
	Expects(x >= 0 && s >= 0, "shift_left", "x >= 0 && s >= 0")
	if !p.Check(uint64(s) < uint64(BitWidth[T]()) && x <= MaxOf[T]()>>s) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(x << s)
}

// Shr computes x >> s for x >= 0, s >= 0. A shift by the bit width or
// more is reported as a failure rather than yielding zero.
func Shr[T, S Integer, P Policy](p P, x T, s S) Result[T] {
	Expects(x >= 0 && s >= 0, "shift_right", "x >= 0 && s >= 0")
	if !p.Check(uint64(s) < uint64(BitWidth[T]())) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(x >> s)
}
