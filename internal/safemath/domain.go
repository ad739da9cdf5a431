package safemath

import "github.com/cockroachdb/errors"

// ErrDomainViolation marks a caller-supplied argument that breaks an
// operation's precondition, such as a zero divisor. It is never reported
// through a Policy.
var ErrDomainViolation = errors.New("precondition violated")

// Expects panics with an assertion failure marked ErrDomainViolation
// unless ok holds.
func Expects(ok bool, op, precondition string) {
	if ok {
		return
	}
	panic(errors.WithAssertionFailure(errors.Wrapf(ErrDomainViolation, "%s: expects %s", op, precondition)))
}
