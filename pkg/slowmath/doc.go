// Package slowmath provides overflow-checked integer arithmetic.
//
// Every operation is exact: it either returns the mathematically correct
// result or reports that the result cannot be stored in the operand
// type. Operations that can fail come in three forms:
//
//	v, err := slowmath.Add(a, b)    // err wraps ErrValueTooLarge
//	r := slowmath.TryAdd(a, b)      // r.IsError() on failure
//	v := slowmath.MustAdd(a, b)     // panics on failure
//
// Operations whose result is always representable, such as Floori or
// LogFloori, have a single form.
//
// Arguments outside an operation's domain, such as a zero divisor or a
// negative shift count, are programming errors. They panic with an error
// matching ErrDomainViolation regardless of the form used.
package slowmath
