package safemath

import "fmt"

// Factorization describes x = bᵉ ± Remainder for a single base b.
type Factorization[T Integer] struct {
	Remainder T
	Exponent  int
}

func (f Factorization[T]) String() string {
	return fmt.Sprintf("{r=%d e=%d}", f.Remainder, f.Exponent)
}

// Factorization2 describes x = aⁱ·bʲ ± Remainder with i = Exponent1 and
// j = Exponent2.
type Factorization2[T Integer] struct {
	Remainder T
	Exponent1 int
	Exponent2 int
}

func (f Factorization2[T]) String() string {
	return fmt.Sprintf("{r=%d i=%d j=%d}", f.Remainder, f.Exponent1, f.Exponent2)
}

// FactorizeFloor returns (r, e) with x = bᵉ + r and r >= 0 minimal, for
// x > 0, b > 1.
func FactorizeFloor[T Integer](x, b T) Factorization[T] {
	Expects(x > 0 && b > 1, "factorize_floori", "x > 0 && b > 1")

	// Loop invariant: x0 = bᵉ ≤ x. Then bᵉ⁺¹ > x implies e = ⌊log x ÷ log b⌋,
	// and so does bᵉ > m = ⌊M ÷ b⌋, since it implies bᵉ⁺¹ > M ≥ x.
	e := 0
	x0 := T(1)
	m := MaxOf[T]() / b
	for {
		// compare with m before computing bᵉ⁺¹
		if x0 > m {
			return Factorization[T]{Remainder: x - x0, Exponent: e}
		}
		x1 := x0 * b
		if x1 > x {
			return Factorization[T]{Remainder: x - x0, Exponent: e}
		}
		x0 = x1
		e++
	}
}

// FactorizeCeil returns (r, e) with x = bᵉ - r and r >= 0 minimal, for
// x > 0, b > 1. It fails if bᵉ⁻¹·(b-1) is not representable; bᵉ itself
// may exceed MaxOf[T], as for x = 200, b = 2 in uint8, which yields
// r = 56, e = 8.
func FactorizeCeil[T Integer, P Policy](p P, x, b T) Result[Factorization[T]] {
	Expects(x > 0 && b > 1, "factorize_ceili", "x > 0 && b > 1")

	floor := FactorizeFloor(x, b)
	if floor.Remainder == 0 {
		return makeResult(floor)
	}
	// x = bᵉ + r = bᵉ⁺¹ - r'  ⇒  r' = bᵉ·(b-1) - r
	prod := Mul(p, x-floor.Remainder, b-1)
	if prod.IsError() {
		return passthrough[Factorization[T]](prod)
	}
	return makeResult(Factorization[T]{
		Remainder: prod.Value - floor.Remainder,
		Exponent:  floor.Exponent + 1,
	})
}

// FactorizeFloor2 returns (r, i, j) with x = aⁱ·bʲ + r, for x > 0,
// a, b > 1, a ≠ b, by greedy descent: starting from the largest i with
// aⁱ ≤ x, each step trades one factor a for as many factors b as keep
// the product ≤ x, and the best product seen is kept. The search is exact
// when a < b; for a > b products with j > 0 at the largest i are not
// visited.
func FactorizeFloor2[T Integer](x, a, b T) Factorization2[T] {
	Expects(x > 0 && a > 1 && b > 1 && a != b, "factorize_floori", "x > 0 && a > 1 && b > 1 && a != b")

	facA := FactorizeFloor(x, a)
	i, j := facA.Exponent, 0
	ci, cj := i, j
	y := x - facA.Remainder // = aⁱ
	cy := y                 // cy ≤ x at all times
	for i != 0 {
		y /= a
		i--
		// an overflowing y·b is certainly greater than x
		for canMul(y, b) && y*b <= x {
			y *= b
			j++
		}
		if y > cy {
			cy, ci, cj = y, i, j
		}
	}
	return Factorization2[T]{Remainder: x - cy, Exponent1: ci, Exponent2: cj}
}

// FactorizeCeil2 returns (r, i, j) with x = aⁱ·bʲ - r and r >= 0 minimal,
// for x > 0, a, b > 1, a ≠ b. It descends from the smallest power of a
// that is ≥ x, trading one factor a for the fewest factors b that keep
// the product ≥ x. A product that does not fit in T fails the whole
// operation.
func FactorizeCeil2[T Integer, P Policy](p P, x, a, b T) Result[Factorization2[T]] {
	Expects(x > 0 && a > 1 && b > 1 && a != b, "factorize_ceili", "x > 0 && a > 1 && b > 1 && a != b")

	facAResult := FactorizeCeil(p, x, a)
	if facAResult.IsError() {
		return passthrough[Factorization2[T]](facAResult)
	}
	facA := facAResult.Value
	if !p.Check(x <= MaxOf[T]()-facA.Remainder) {
		return makeError[Factorization2[T]](p, ErrcValueTooLarge)
	}
	i, j := facA.Exponent, 0
	ci, cj := i, j
	y := x + facA.Remainder // = aⁱ
	cy := y                 // cy ≥ x at all times
	for i != 0 {
		y /= a
		i--
		for y < x {
			yr := Mul(p, y, b)
			if yr.IsError() {
				return passthrough[Factorization2[T]](yr)
			}
			y = yr.Value
			j++
		}
		if y < cy {
			cy, ci, cj = y, i, j
		}
	}
	return makeResult(Factorization2[T]{Remainder: cy - x, Exponent1: ci, Exponent2: cj})
}
