package safemath

// Cast converts src to Dst. It succeeds iff converting the result back
// reproduces src and, for types of different signedness, the sign is
// unchanged; int8(-1) → uint8 round-trips numerically but changes sign.
func Cast[Dst, Src Integer, P Policy](p P, src Src) Result[Dst] {
	dst := Dst(src)
	ok := Src(dst) == src &&
		(SameSignedness[Dst, Src]() || (dst < 0) == (src < 0))
	if !p.Check(ok) {
		return makeError[Dst](p, ErrcValueTooLarge)
	}
	return makeResult(dst)
}
