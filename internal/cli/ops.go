package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Operation describes one operation the evaluator understands.
type Operation struct {
	Name  string `json:"name" yaml:"name"`
	Arity int    `json:"arity" yaml:"arity"`
	// Exact operations cannot fail and ignore the policy.
	Exact        bool   `json:"exact" yaml:"exact"`
	Precondition string `json:"precondition,omitempty" yaml:"precondition,omitempty"`
}

var Operations = []Operation{
	{Name: "absi", Arity: 1},
	{Name: "negate", Arity: 1},
	{Name: "add", Arity: 2},
	{Name: "subtract", Arity: 2},
	{Name: "multiply", Arity: 2},
	{Name: "divide", Arity: 2, Precondition: "d != 0"},
	{Name: "modulo", Arity: 2, Precondition: "d != 0"},
	{Name: "square", Arity: 1},
	{Name: "shift_left", Arity: 2, Precondition: "x >= 0 && s >= 0"},
	{Name: "shift_right", Arity: 2, Precondition: "x >= 0 && s >= 0"},
	{Name: "powi", Arity: 2, Precondition: "e >= 0"},
	{Name: "sqrti", Arity: 1, Exact: true, Precondition: "v >= 0"},
	{Name: "floori", Arity: 2, Exact: true, Precondition: "x >= 0 && d > 0"},
	{Name: "ceili", Arity: 2, Precondition: "x >= 0 && d > 0"},
	{Name: "ratio_floori", Arity: 2, Exact: true, Precondition: "n >= 0 && d > 0"},
	{Name: "ratio_ceili", Arity: 2, Exact: true, Precondition: "n >= 0 && d > 0"},
	{Name: "log_floori", Arity: 2, Exact: true, Precondition: "x > 0 && b > 1"},
	{Name: "log_ceili", Arity: 2, Exact: true, Precondition: "x > 0 && b > 1"},
	{Name: "gcd", Arity: 2},
	{Name: "lcm", Arity: 2},
	{Name: "factorize_floori", Arity: 2, Exact: true, Precondition: "x > 0 && b > 1"},
	{Name: "factorize_ceili", Arity: 2, Precondition: "x > 0 && b > 1"},
	{Name: "factorize_floori2", Arity: 3, Exact: true, Precondition: "x > 0 && a > 1 && b > 1 && a != b"},
	{Name: "factorize_ceili2", Arity: 3, Precondition: "x > 0 && a > 1 && b > 1 && a != b"},
	{Name: "integral_cast", Arity: 1},
}

func lookupOperation(name string) (Operation, bool) {
	for _, op := range Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Format == "text" {
				return writeOperations(cmd.OutOrStdout())
			}
			return encode(cmd.OutOrStdout(), rootOpts.Format, Operations)
		},
	}
}

func writeOperations(w io.Writer) error {
	for _, op := range Operations {
		kind := "check"
		if op.Exact {
			kind = "exact"
		}
		line := fmt.Sprintf("%-17s %d  %-5s  %s", op.Name, op.Arity, kind, op.Precondition)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
