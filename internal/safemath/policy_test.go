package safemath

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverError runs f and returns the error it panicked with.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()
	f()
	return nil
}

func TestFailFast(t *testing.T) {
	assert.Equal(t, Result[int8]{Value: 100}, Add(FailFast{}, int8(50), int8(50)))

	err := recoverError(t, func() { Add(FailFast{}, int8(100), int8(100)) })
	assert.True(t, errors.Is(err, ErrValueTooLarge))
	assert.True(t, errors.HasAssertionFailure(err))

	err = recoverError(t, func() { Pow(FailFast{}, uint64(2), 64) })
	assert.True(t, errors.Is(err, ErrValueTooLarge))

	// nested failures abort at the innermost operation
	err = recoverError(t, func() { FactorizeCeil2(FailFast{}, uint8(100), 2, 3) })
	assert.True(t, errors.Is(err, ErrValueTooLarge))
}

func TestTry(t *testing.T) {
	r := Mul(Try{}, int64(math.MaxInt64), 2)
	assert.True(t, r.IsError())
	assert.False(t, r.Ok())
	assert.Equal(t, ErrcValueTooLarge, r.Errc)
	assert.True(t, errors.Is(r.Err(), ErrValueTooLarge))

	v, ok := r.Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	r = Mul(Try{}, int64(3), 2)
	assert.NoError(t, r.Err())
	assert.Equal(t, int64(6), r.Value)
}

func TestRaise(t *testing.T) {
	v, err := Raise("add", Add(Checked{}, uint8(200), uint8(100)))
	require.Error(t, err)
	assert.Zero(t, v)
	assert.True(t, errors.Is(err, ErrValueTooLarge))
	assert.Equal(t, "add: value too large to be stored in data type", err.Error())

	var mathErr *Error
	require.True(t, errors.As(err, &mathErr))
	assert.Equal(t, "add", mathErr.Op)
	assert.Equal(t, ErrcValueTooLarge, mathErr.Errc)

	v, err = Raise("add", Add(Checked{}, uint8(200), uint8(55)))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)
}

func TestPassthrough(t *testing.T) {
	r := passthrough[Factorization[int]](Result[int]{Errc: ErrcValueTooLarge})
	assert.Equal(t, Result[Factorization[int]]{Errc: ErrcValueTooLarge}, r)
}

func TestErrc(t *testing.T) {
	assert.Equal(t, "success", ErrcNone.Error())
	assert.Equal(t, "value too large to be stored in data type", ErrcValueTooLarge.Error())
	assert.Equal(t, "errc(7)", Errc(7).Error())
}

func TestExpects(t *testing.T) {
	for name, f := range map[string]func(){
		"divide by zero":       func() { Div(Try{}, 1, 0) },
		"modulo by zero":       func() { Mod(Checked{}, uint8(1), 0) },
		"negative shift":       func() { Shl(Try{}, int8(1), -1) },
		"shift of negative":    func() { Shr(Try{}, int8(-1), 1) },
		"negative exponent":    func() { Pow(Try{}, 2, -1) },
		"sqrt of negative":     func() { Sqrt(-1) },
		"floor of negative":    func() { Floor(-1, 2) },
		"ceil by zero":         func() { Ceil(Try{}, 1, 0) },
		"ratio by negative":    func() { RatioCeil(1, -2) },
		"log base one":         func() { LogFloor(8, 1) },
		"log of zero":          func() { LogCeil(0, 2) },
		"factorize of zero":    func() { FactorizeFloor(0, 2) },
		"factorize equal base": func() { FactorizeFloor2(10, 2, 2) },
		"factorize base one":   func() { FactorizeCeil2(Try{}, 10, 1, 2) },
	} {
		t.Run(name, func(t *testing.T) {
			err := recoverError(t, f)
			assert.True(t, errors.Is(err, ErrDomainViolation), "%v", err)
			assert.True(t, errors.HasAssertionFailure(err))
			assert.False(t, errors.Is(err, ErrValueTooLarge))
		})
	}
}
