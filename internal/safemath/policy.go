package safemath

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/eigerco/slowmath/pkg/log"
)

// Errc is the status carried by a failed Result.
type Errc uint8

const (
	ErrcNone Errc = iota
	// ErrcValueTooLarge is reported uniformly for overflow, underflow,
	// out-of-range shifts and out-of-range casts.
	ErrcValueTooLarge
)

func (e Errc) Error() string {
	switch e {
	case ErrcNone:
		return "success"
	case ErrcValueTooLarge:
		return "value too large to be stored in data type"
	default:
		return fmt.Sprintf("errc(%d)", uint8(e))
	}
}

// ErrValueTooLarge matches every representability failure with errors.Is.
var ErrValueTooLarge error = ErrcValueTooLarge

// Result is either a value or a failure kind, never both.
type Result[T any] struct {
	Value T
	Errc  Errc
}

func (r Result[T]) Ok() bool {
	return r.Errc == ErrcNone
}

func (r Result[T]) IsError() bool {
	return r.Errc != ErrcNone
}

// Get returns the value and whether the operation succeeded.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.Ok()
}

// Err returns nil on success and the failure kind otherwise.
func (r Result[T]) Err() error {
	if r.Ok() {
		return nil
	}
	return r.Errc
}

// Policy decides what happens when a checked operation detects an
// unrepresentable result.
//
// Check is called with the condition under which the result is
// representable. Fail is called with the failure kind before a failed
// Result is built. A policy may abort inside either call; if it returns,
// the operation returns a failed Result.
type Policy interface {
	Check(ok bool) bool
	Fail(kind Errc)
}

// FailFast treats any unrepresentable result as a broken program
// invariant: the violation is logged and the goroutine panics in place.
type FailFast struct{}

func (p FailFast) Check(ok bool) bool {
	if !ok {
		p.Fail(ErrcValueTooLarge)
	}
	return true
}

func (FailFast) Fail(kind Errc) {
	err := errors.WithAssertionFailure(errors.Wrap(kind, "fail-fast arithmetic"))
	log.Math.Error().Err(err).Msg("unrepresentable arithmetic result")
	panic(err)
}

// Try never aborts; failures are returned as a Result the caller must inspect.
type Try struct{}

func (Try) Check(ok bool) bool { return ok }

func (Try) Fail(Errc) {}

// Checked behaves like Try inside the algorithms; the public facade turns
// its failed results into *Error values.
type Checked struct{}

func (Checked) Check(ok bool) bool { return ok }

func (Checked) Fail(Errc) {}

func makeResult[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func makeError[T any, P Policy](p P, kind Errc) Result[T] {
	p.Fail(kind)
	return Result[T]{Errc: kind}
}

// passthrough re-wraps the failure of a nested operation as a failure of
// the enclosing operation's result type.
func passthrough[U, T any](r Result[T]) Result[U] {
	return Result[U]{Errc: r.Errc}
}

// Error is the error returned by the error-returning facade variants.
type Error struct {
	Op   string
	Errc Errc
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Errc.Error()
}

func (e *Error) Unwrap() error {
	return e.Errc
}

// Raise converts a Result into the (value, error) form. Failures become an
// *Error carrying the operation name and a stack trace.
func Raise[T any](op string, r Result[T]) (T, error) {
	if r.Ok() {
		return r.Value, nil
	}
	var zero T
	return zero, errors.WithStack(&Error{Op: op, Errc: r.Errc})
}
