package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// FactorizeFloori returns (r, e) with x = bᵉ + r and r >= 0 minimal, for
// x > 0, b > 1.
func FactorizeFloori[T Integer](x, b T) Factorization[T] {
	return safemath.FactorizeFloor(x, b)
}

// FactorizeCeili returns (r, e) with x = bᵉ - r and r >= 0 minimal, for
// x > 0, b > 1. It fails only if bᵉ⁻¹·(b-1) or r is not representable.
func FactorizeCeili[T Integer](x, b T) (Factorization[T], error) {
	return safemath.Raise("factorize_ceili", safemath.FactorizeCeil(safemath.Checked{}, x, b))
}

func TryFactorizeCeili[T Integer](x, b T) Result[Factorization[T]] {
	return safemath.FactorizeCeil(safemath.Try{}, x, b)
}

func MustFactorizeCeili[T Integer](x, b T) Factorization[T] {
	return safemath.FactorizeCeil(safemath.FailFast{}, x, b).Value
}

// FactorizeFloori2 returns (r, i, j) with x = aⁱ·bʲ + r, for x > 0,
// a, b > 1, a ≠ b. The search is greedy; r is minimal when a < b.
func FactorizeFloori2[T Integer](x, a, b T) Factorization2[T] {
	return safemath.FactorizeFloor2(x, a, b)
}

// FactorizeCeili2 returns (r, i, j) with x = aⁱ·bʲ - r and r >= 0
// minimal, for x > 0, a, b > 1, a ≠ b. It fails if a product visited by
// the search is not representable.
func FactorizeCeili2[T Integer](x, a, b T) (Factorization2[T], error) {
	return safemath.Raise("factorize_ceili", safemath.FactorizeCeil2(safemath.Checked{}, x, a, b))
}

func TryFactorizeCeili2[T Integer](x, a, b T) Result[Factorization2[T]] {
	return safemath.FactorizeCeil2(safemath.Try{}, x, a, b)
}

func MustFactorizeCeili2[T Integer](x, a, b T) Factorization2[T] {
	return safemath.FactorizeCeil2(safemath.FailFast{}, x, a, b).Value
}
