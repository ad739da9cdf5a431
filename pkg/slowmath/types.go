package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// Integer is satisfied by every built-in integer type.
type Integer = safemath.Integer

// Result holds either a value or the reason it could not be computed.
type Result[T any] = safemath.Result[T]

// Errc identifies why an operation failed.
type Errc = safemath.Errc

const (
	ErrcNone          = safemath.ErrcNone
	ErrcValueTooLarge = safemath.ErrcValueTooLarge
)

// Error is returned by the error-returning form of an operation.
type Error = safemath.Error

// Factorization is the result of FactorizeFloori and FactorizeCeili.
type Factorization[T Integer] = safemath.Factorization[T]

// Factorization2 is the result of FactorizeFloori2 and FactorizeCeili2.
type Factorization2[T Integer] = safemath.Factorization2[T]

var (
	// ErrValueTooLarge matches every failure caused by an
	// unrepresentable result.
	ErrValueTooLarge = safemath.ErrValueTooLarge
	// ErrDomainViolation matches the panics raised for arguments outside
	// an operation's domain.
	ErrDomainViolation = safemath.ErrDomainViolation
)

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool { return safemath.IsSigned[T]() }

// BitWidth returns the width of T in bits.
func BitWidth[T Integer]() int { return safemath.BitWidth[T]() }

func MinOf[T Integer]() T { return safemath.MinOf[T]() }

func MaxOf[T Integer]() T { return safemath.MaxOf[T]() }
