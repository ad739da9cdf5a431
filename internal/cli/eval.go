package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/eigerco/slowmath/pkg/log"
	"github.com/eigerco/slowmath/pkg/slowmath"
)

// Outcome statuses.
const (
	StatusOK              = "ok"
	StatusError           = "error"
	StatusAborted         = "aborted"
	StatusDomainViolation = "domain_violation"
)

// Outcome is the result of evaluating one operation.
type Outcome struct {
	Op     string   `json:"op" yaml:"op"`
	Type   string   `json:"type" yaml:"type"`
	Policy string   `json:"policy,omitempty" yaml:"policy,omitempty"`
	Args   []string `json:"args" yaml:"args"`
	Status string   `json:"status" yaml:"status"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] <op> <operand>...",
		Short: "Evaluate one operation",
		Long: `Evaluate one operation on operands of the selected type.

Operands are integer literals (0x, 0o and 0b prefixes are accepted).
A literal that does not fit the selected type is reported like any
other unrepresentable value. Run "slowmath ops" for the list of
operations.

Flags go before <op>. Everything after it is an operand, so negative
literals need no "--" separator.`,
		Example: `  slowmath eval --type int8 add 100 28
  slowmath eval --type uint32 --policy try powi 5 14
  slowmath eval --type uint8 --format json integral_cast -1
  slowmath eval lcm -4 6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd.OutOrStdout(), args[0], args[1:])
		},
	}
	// "-4" is an operand, not a shorthand flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runEval(opts *RootOptions, w io.Writer, name string, operands []string) error {
	op, ok := lookupOperation(name)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown operation %q", name))
	}
	if len(operands) != op.Arity {
		return NewExitError(ExitCommandError, fmt.Sprintf("%s takes %d operand(s), got %d", op.Name, op.Arity, len(operands)))
	}

	log.CLI.Debug().
		Str("op", op.Name).
		Str("type", opts.Type).
		Str("policy", opts.Policy).
		Strs("args", operands).
		Msg("evaluating")

	outcome, err := evaluate(opts.Type, opts.Policy, op, operands)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid operand", err)
	}

	if opts.Format == "text" {
		err = writeOutcome(w, outcome)
	} else {
		err = encode(w, opts.Format, outcome)
	}
	if err != nil {
		return err
	}

	if outcome.Status != StatusOK {
		log.CLI.Debug().Str("status", outcome.Status).Msg(outcome.Error)
		return NewExitError(ExitFailure, outcome.Error)
	}
	return nil
}

func writeOutcome(w io.Writer, o Outcome) error {
	call := fmt.Sprintf("%s(%s)", o.Op, strings.Join(o.Args, ", "))
	if o.Status == StatusOK {
		_, err := fmt.Fprintf(w, "%s = %s\n", call, o.Value)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s: %s\n", call, o.Status, o.Error)
	return err
}

func evaluate(typeName, policy string, op Operation, operands []string) (Outcome, error) {
	switch typeName {
	case "int":
		return evaluateAs[int](typeName, policy, op, operands)
	case "int8":
		return evaluateAs[int8](typeName, policy, op, operands)
	case "int16":
		return evaluateAs[int16](typeName, policy, op, operands)
	case "int32":
		return evaluateAs[int32](typeName, policy, op, operands)
	case "int64":
		return evaluateAs[int64](typeName, policy, op, operands)
	case "uint":
		return evaluateAs[uint](typeName, policy, op, operands)
	case "uint8":
		return evaluateAs[uint8](typeName, policy, op, operands)
	case "uint16":
		return evaluateAs[uint16](typeName, policy, op, operands)
	case "uint32":
		return evaluateAs[uint32](typeName, policy, op, operands)
	case "uint64":
		return evaluateAs[uint64](typeName, policy, op, operands)
	case "uintptr":
		return evaluateAs[uintptr](typeName, policy, op, operands)
	default:
		return Outcome{}, errors.Newf("unsupported type %q", typeName)
	}
}

func evaluateAs[T slowmath.Integer](typeName, policy string, op Operation, operands []string) (out Outcome, err error) {
	out = Outcome{Op: op.Name, Type: typeName, Policy: policy, Args: operands}
	if op.Exact {
		out.Policy = ""
	}

	// Domain violations always panic, and so do failures under the must
	// policy. Both are reported as outcomes.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, ok := r.(error)
		if !ok {
			panic(r)
		}
		switch {
		case errors.Is(perr, slowmath.ErrDomainViolation):
			out.Status = StatusDomainViolation
		case errors.Is(perr, slowmath.ErrValueTooLarge):
			out.Status = StatusAborted
		default:
			panic(r)
		}
		out.Value = ""
		out.Error = perr.Error()
	}()

	var value string
	if op.Name == "integral_cast" {
		value, err = castLiteral[T](policy, operands[0])
	} else {
		args := make([]T, len(operands))
		for i, s := range operands {
			if args[i], err = parseOperand[T](s); err != nil {
				break
			}
		}
		if err == nil {
			value, err = evaluators[T]()[op.Name](policy, args)
		}
	}

	switch {
	case err == nil:
		out.Status = StatusOK
		out.Value = value
		return out, nil
	case errors.Is(err, slowmath.ErrValueTooLarge):
		out.Status = StatusError
		out.Error = err.Error()
		return out, nil
	default:
		return out, err
	}
}

// parseLiteral parses s as an int64 if it has a minus sign and as a
// uint64 otherwise. Literals beyond 64 bits are too large for every type.
func parseLiteral(s string) (neg int64, pos uint64, negative bool, err error) {
	if strings.HasPrefix(s, "-") {
		neg, err = strconv.ParseInt(s, 0, 64)
		negative = true
	} else {
		pos, err = strconv.ParseUint(s, 0, 64)
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, 0, false, errors.Wrapf(slowmath.ErrValueTooLarge, "operand %q", s)
	}
	if err != nil {
		return 0, 0, false, errors.Wrapf(err, "operand %q", s)
	}
	return neg, pos, negative, nil
}

// parseOperand converts a literal to T. It never aborts: operands are
// validated before the policy under test is applied.
func parseOperand[T slowmath.Integer](s string) (T, error) {
	neg, pos, negative, err := parseLiteral(s)
	if err != nil {
		return 0, err
	}
	r := slowmath.TryIntegralCast[T](pos)
	if negative {
		r = slowmath.TryIntegralCast[T](neg)
	}
	if err := r.Err(); err != nil {
		return 0, errors.Wrapf(err, "operand %q", s)
	}
	return r.Value, nil
}

// castLiteral evaluates integral_cast from the widest type of the
// literal's sign to T under the selected policy.
func castLiteral[T slowmath.Integer](policy, s string) (string, error) {
	neg, pos, negative, err := parseLiteral(s)
	if err != nil {
		return "", err
	}
	if negative {
		return apply(policy,
			func() (T, error) { return slowmath.IntegralCast[T](neg) },
			func() slowmath.Result[T] { return slowmath.TryIntegralCast[T](neg) },
			func() T { return slowmath.MustIntegralCast[T](neg) })
	}
	return apply(policy,
		func() (T, error) { return slowmath.IntegralCast[T](pos) },
		func() slowmath.Result[T] { return slowmath.TryIntegralCast[T](pos) },
		func() T { return slowmath.MustIntegralCast[T](pos) })
}
