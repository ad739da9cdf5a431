package cli

import (
	"fmt"

	"github.com/eigerco/slowmath/pkg/slowmath"
)

// evaluator runs an operation on parsed operands under a policy and
// formats its value.
type evaluator[T slowmath.Integer] func(policy string, args []T) (string, error)

// apply runs the form of an operation that matches policy.
func apply[R any](policy string, checked func() (R, error), try func() slowmath.Result[R], must func() R) (string, error) {
	switch policy {
	case PolicyTry:
		r := try()
		if err := r.Err(); err != nil {
			return "", err
		}
		return fmt.Sprint(r.Value), nil
	case PolicyMust:
		return fmt.Sprint(must()), nil
	default:
		v, err := checked()
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}

func unary[T slowmath.Integer, R any](checked func(T) (R, error), try func(T) slowmath.Result[R], must func(T) R) evaluator[T] {
	return func(policy string, args []T) (string, error) {
		return apply(policy,
			func() (R, error) { return checked(args[0]) },
			func() slowmath.Result[R] { return try(args[0]) },
			func() R { return must(args[0]) })
	}
}

func binary[T slowmath.Integer, R any](checked func(T, T) (R, error), try func(T, T) slowmath.Result[R], must func(T, T) R) evaluator[T] {
	return func(policy string, args []T) (string, error) {
		return apply(policy,
			func() (R, error) { return checked(args[0], args[1]) },
			func() slowmath.Result[R] { return try(args[0], args[1]) },
			func() R { return must(args[0], args[1]) })
	}
}

func ternary[T slowmath.Integer, R any](checked func(T, T, T) (R, error), try func(T, T, T) slowmath.Result[R], must func(T, T, T) R) evaluator[T] {
	return func(policy string, args []T) (string, error) {
		return apply(policy,
			func() (R, error) { return checked(args[0], args[1], args[2]) },
			func() slowmath.Result[R] { return try(args[0], args[1], args[2]) },
			func() R { return must(args[0], args[1], args[2]) })
	}
}

func exact1[T slowmath.Integer, R any](f func(T) R) evaluator[T] {
	return func(_ string, args []T) (string, error) {
		return fmt.Sprint(f(args[0])), nil
	}
}

func exact2[T slowmath.Integer, R any](f func(T, T) R) evaluator[T] {
	return func(_ string, args []T) (string, error) {
		return fmt.Sprint(f(args[0], args[1])), nil
	}
}

func exact3[T slowmath.Integer, R any](f func(T, T, T) R) evaluator[T] {
	return func(_ string, args []T) (string, error) {
		return fmt.Sprint(f(args[0], args[1], args[2])), nil
	}
}

// evaluators maps every operation but integral_cast to its evaluator.
func evaluators[T slowmath.Integer]() map[string]evaluator[T] {
	return map[string]evaluator[T]{
		"absi":              unary(slowmath.Absi[T], slowmath.TryAbsi[T], slowmath.MustAbsi[T]),
		"negate":            unary(slowmath.Negate[T], slowmath.TryNegate[T], slowmath.MustNegate[T]),
		"add":               binary(slowmath.Add[T], slowmath.TryAdd[T], slowmath.MustAdd[T]),
		"subtract":          binary(slowmath.Subtract[T], slowmath.TrySubtract[T], slowmath.MustSubtract[T]),
		"multiply":          binary(slowmath.Multiply[T], slowmath.TryMultiply[T], slowmath.MustMultiply[T]),
		"divide":            binary(slowmath.Divide[T], slowmath.TryDivide[T], slowmath.MustDivide[T]),
		"modulo":            binary(slowmath.Modulo[T], slowmath.TryModulo[T], slowmath.MustModulo[T]),
		"square":            unary(slowmath.Square[T], slowmath.TrySquare[T], slowmath.MustSquare[T]),
		"shift_left":        binary(slowmath.ShiftLeft[T, T], slowmath.TryShiftLeft[T, T], slowmath.MustShiftLeft[T, T]),
		"shift_right":       binary(slowmath.ShiftRight[T, T], slowmath.TryShiftRight[T, T], slowmath.MustShiftRight[T, T]),
		"powi":              binary(slowmath.Powi[T, T], slowmath.TryPowi[T, T], slowmath.MustPowi[T, T]),
		"sqrti":             exact1(slowmath.Sqrti[T]),
		"floori":            exact2(slowmath.Floori[T]),
		"ceili":             binary(slowmath.Ceili[T], slowmath.TryCeili[T], slowmath.MustCeili[T]),
		"ratio_floori":      exact2(slowmath.RatioFloori[T]),
		"ratio_ceili":       exact2(slowmath.RatioCeili[T]),
		"log_floori":        exact2(slowmath.LogFloori[T]),
		"log_ceili":         exact2(slowmath.LogCeili[T]),
		"gcd":               binary(slowmath.Gcd[T], slowmath.TryGcd[T], slowmath.MustGcd[T]),
		"lcm":               binary(slowmath.Lcm[T], slowmath.TryLcm[T], slowmath.MustLcm[T]),
		"factorize_floori":  exact2(slowmath.FactorizeFloori[T]),
		"factorize_ceili":   binary(slowmath.FactorizeCeili[T], slowmath.TryFactorizeCeili[T], slowmath.MustFactorizeCeili[T]),
		"factorize_floori2": exact3(slowmath.FactorizeFloori2[T]),
		"factorize_ceili2":  ternary(slowmath.FactorizeCeili2[T], slowmath.TryFactorizeCeili2[T], slowmath.MustFactorizeCeili2[T]),
	}
}
