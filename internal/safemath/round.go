package safemath

// Floor computes ⌊x ÷ d⌋·d for x >= 0, d > 0.
func Floor[T Integer](x, d T) T {
	Expects(x >= 0 && d > 0, "floori", "x >= 0 && d > 0")
	return x - x%d
}

// Ceil computes ⌈x ÷ d⌉·d for x >= 0, d > 0.
//
// From x = ⌊x ÷ d⌋·d + x mod d and ⌈x ÷ d⌉ = ⌊(x-1) ÷ d⌋ + 1 it follows
// for x ≠ 0 that ⌈x ÷ d⌉·d = x + d - (x-1) mod d - 1, which only
// overflows if the final addition does.
func Ceil[T Integer, P Policy](p P, x, d T) Result[T] {
	Expects(x >= 0 && d > 0, "ceili", "x >= 0 && d > 0")
	if x == 0 {
		return makeResult(T(0))
	}
	dx := d - (x-1)%d - 1
	if !p.Check(x <= MaxOf[T]()-dx) {
		return makeError[T](p, ErrcValueTooLarge)
	}
	return makeResult(x + dx)
}

// RatioFloor computes ⌊n ÷ d⌋ for n >= 0, d > 0.
func RatioFloor[T Integer](n, d T) T {
	Expects(n >= 0 && d > 0, "ratio_floori", "n >= 0 && d > 0")
	return n / d
}

// RatioCeil computes ⌈n ÷ d⌉ for n >= 0, d > 0 without forming n+d-1.
func RatioCeil[T Integer](n, d T) T {
	Expects(n >= 0 && d > 0, "ratio_ceili", "n >= 0 && d > 0")
	if n == 0 {
		return 0
	}
	return (n-1)/d + 1
}
