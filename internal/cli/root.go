package cli

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/eigerco/slowmath/pkg/log"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Type      string
	Policy    string
	Format    string // "text" | "json" | "yaml"
	LogLevel  string
	LogFormat string // "console" | "json"
}

const (
	PolicyChecked = "checked"
	PolicyTry     = "try"
	PolicyMust    = "must"
)

var (
	ValidFormats  = []string{"text", "json", "yaml"}
	ValidPolicies = []string{PolicyChecked, PolicyTry, PolicyMust}
	ValidTypes    = []string{"int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr"}
)

// NewRootCommand creates the root command of the slowmath CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "slowmath",
		Short: "Overflow-checked integer arithmetic",
		Long: `Evaluate integer operations exactly.

Every operation either yields the mathematically exact result in the
selected integer type or reports that the result cannot be stored in it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			level, err := log.ParseLogLevel(opts.LogLevel)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			logType, err := log.ParseLoggerType(opts.LogFormat)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			log.Init(log.Options{LogLevel: level, Type: logType, Out: cmd.ErrOrStderr()})
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Type, "type", "t", "int64", "operand type")
	cmd.PersistentFlags().StringVarP(&opts.Policy, "policy", "p", PolicyChecked, "error policy (checked|try|must)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "log format (console|json)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))

	return cmd
}

func (o *RootOptions) validate() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return errors.Newf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}
	if !slices.Contains(ValidPolicies, o.Policy) {
		return errors.Newf("invalid policy %q: must be one of %v", o.Policy, ValidPolicies)
	}
	if !slices.Contains(ValidTypes, o.Type) {
		return errors.Newf("invalid type %q: must be one of %v", o.Type, ValidTypes)
	}
	return nil
}
