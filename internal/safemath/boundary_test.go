package safemath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func toBig[T Integer](v T) *big.Int {
	if IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func representable[T Integer](v *big.Int) bool {
	return v.Cmp(toBig(MinOf[T]())) >= 0 && v.Cmp(toBig(MaxOf[T]())) <= 0
}

// boundaryValues returns values of T around its bounds, around zero and
// around the square root of its maximum.
func boundaryValues[T Integer]() []T {
	lo, hi := MinOf[T](), MaxOf[T]()
	sq := Sqrt(hi)
	vs := []T{lo, lo + 1, lo + 2, lo / 2, lo/2 - 1, lo/2 + 1, 0, 1, 2, 3, sq - 1, sq, sq + 1, hi / 2, hi/2 + 1, hi - 1, hi}
	if IsSigned[T]() {
		m1 := minusOne[T]()
		vs = append(vs, m1, 2*m1, 3*m1, -sq, -sq-1, lo/3)
	}
	return vs
}

// testBoundaries compares every checked binary operation against big.Int
// arithmetic for all pairs of boundary values.
func testBoundaries[T Integer](t *testing.T) {
	vs := boundaryValues[T]()
	for _, a := range vs {
		for _, b := range vs {
			ba, bb := toBig(a), toBig(b)

			check := func(op string, exact *big.Int, r Result[T]) {
				if representable[T](exact) {
					if assert.True(t, r.Ok(), "%s(%d, %d) should succeed", op, a, b) {
						assert.Equal(t, 0, toBig(r.Value).Cmp(exact), "%s(%d, %d) = %d, want %s", op, a, b, r.Value, exact)
					}
				} else {
					assert.True(t, r.IsError(), "%s(%d, %d) = %d should overflow", op, a, b, r.Value)
				}
			}

			check("add", new(big.Int).Add(ba, bb), Add(Try{}, a, b))
			check("sub", new(big.Int).Sub(ba, bb), Sub(Try{}, a, b))
			check("mul", new(big.Int).Mul(ba, bb), Mul(Try{}, a, b))
			if b != 0 {
				check("div", new(big.Int).Quo(ba, bb), Div(Try{}, a, b))
				if !(IsSigned[T]() && a == MinOf[T]() && b == minusOne[T]()) {
					check("mod", new(big.Int).Rem(ba, bb), Mod(Try{}, a, b))
				} else {
					assert.True(t, Mod(Try{}, a, b).IsError())
				}
			}
		}
		check := func(op string, exact *big.Int, r Result[T]) {
			if representable[T](exact) {
				assert.True(t, r.Ok() && toBig(r.Value).Cmp(exact) == 0, "%s(%d) = %v, want %s", op, a, r, exact)
			} else {
				assert.True(t, r.IsError(), "%s(%d) should overflow", op, a)
			}
		}
		ba := toBig(a)
		check("abs", new(big.Int).Abs(ba), Abs(Try{}, a))
		check("negate", new(big.Int).Neg(ba), Negate(Try{}, a))
		check("square", new(big.Int).Mul(ba, ba), Square(Try{}, a))
	}
}

func TestBoundaries(t *testing.T) {
	t.Run("int8", testBoundaries[int8])
	t.Run("int16", testBoundaries[int16])
	t.Run("int32", testBoundaries[int32])
	t.Run("int64", testBoundaries[int64])
	t.Run("int", testBoundaries[int])
	t.Run("uint8", testBoundaries[uint8])
	t.Run("uint16", testBoundaries[uint16])
	t.Run("uint32", testBoundaries[uint32])
	t.Run("uint64", testBoundaries[uint64])
	t.Run("uint", testBoundaries[uint])
	t.Run("uintptr", testBoundaries[uintptr])
}

// The wide path must agree with the narrow one wherever both apply.
func TestBoundaries_pathsAgree(t *testing.T) {
	vs := boundaryValues[int32]()
	for _, a := range vs {
		for _, b := range vs {
			assert.Equal(t, addNarrow(Try{}, a, b), addWide(Try{}, a, b), "add(%d, %d)", a, b)
			assert.Equal(t, mulNarrow(Try{}, a, b), mulWide(Try{}, a, b), "mul(%d, %d)", a, b)
		}
	}
	us := boundaryValues[uint32]()
	for _, a := range us {
		for _, b := range us {
			assert.Equal(t, addNarrow(Try{}, a, b), addWide(Try{}, a, b), "add(%d, %d)", a, b)
			assert.Equal(t, mulNarrow(Try{}, a, b), mulWide(Try{}, a, b), "mul(%d, %d)", a, b)
		}
	}
}
