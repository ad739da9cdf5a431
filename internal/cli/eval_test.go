package cli

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEval_golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"eval_add_int8_ok", []string{"eval", "--type", "int8", "add", "100", "27"}, ExitSuccess},
		{"eval_add_int8_checked", []string{"eval", "--type", "int8", "add", "100", "28"}, ExitFailure},
		{"eval_add_int8_try", []string{"eval", "--type", "int8", "--policy", "try", "add", "100", "28"}, ExitFailure},
		{"eval_add_int8_must", []string{"eval", "-t", "int8", "-p", "must", "add", "100", "28"}, ExitFailure},
		{"eval_divide_by_zero", []string{"eval", "--policy", "try", "divide", "1", "0"}, ExitFailure},
		{"eval_operand_too_large", []string{"eval", "--type", "uint8", "add", "300", "1"}, ExitFailure},
		{"eval_factorize_ceili2", []string{"eval", "factorize_ceili2", "7", "2", "3"}, ExitSuccess},
		{"eval_shift_left_hex", []string{"eval", "--type", "uint8", "shift_left", "0x0a", "2"}, ExitSuccess},
		{"eval_powi_uint32_json", []string{"eval", "--type", "uint32", "--format", "json", "powi", "5", "13"}, ExitSuccess},
		{"eval_integral_cast_json", []string{"eval", "--type", "uint8", "--format", "json", "integral_cast", "-1"}, ExitFailure},
		{"eval_log_floori_json", []string{"eval", "--type", "int32", "--format", "json", "log_floori", "2147483647", "2"}, ExitSuccess},
		{"eval_add_negative", []string{"eval", "add", "-4", "6"}, ExitSuccess},
		{"eval_absi_negative_int8", []string{"eval", "--type", "int8", "absi", "-5"}, ExitSuccess},
		{"eval_root_flags_negative", []string{"--type", "int16", "eval", "multiply", "-3", "-7"}, ExitSuccess},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			assert.Equal(t, tt.code, GetExitCode(err), "err = %v", err)
			g.Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestEval_yaml(t *testing.T) {
	stdout, _, err := execute(t, "eval", "--format", "yaml", "lcm", "-4", "6")
	require.NoError(t, err)

	var got Outcome
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, Outcome{
		Op:     "lcm",
		Type:   "int64",
		Policy: PolicyChecked,
		Args:   []string{"-4", "6"},
		Status: StatusOK,
		Value:  "-12",
	}, got)
}

func TestEval_policies(t *testing.T) {
	tests := []struct {
		policy string
		status string
		errMsg string
	}{
		{PolicyChecked, StatusError, "multiply: value too large to be stored in data type"},
		{PolicyTry, StatusError, "value too large to be stored in data type"},
		{PolicyMust, StatusAborted, "fail-fast arithmetic: value too large to be stored in data type"},
	}
	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			out, err := evaluate("uint16", tt.policy, Operation{Name: "multiply", Arity: 2}, []string{"256", "256"})
			require.NoError(t, err)
			assert.Equal(t, tt.status, out.Status)
			assert.Equal(t, tt.errMsg, out.Error)
			assert.Empty(t, out.Value)
		})
	}
}

func TestEval_mustLogsAbort(t *testing.T) {
	_, stderr, err := execute(t, "eval", "--type", "uint", "--policy", "must", "--log-format", "json", "negate", "1")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stderr, `"component":"math"`)
	assert.Contains(t, stderr, `"level":"error"`)
}

func TestEval_debugLog(t *testing.T) {
	_, stderr, err := execute(t, "eval", "--log-level", "debug", "--log-format", "json", "add", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"cli"`)
	assert.Contains(t, stderr, `"op":"add"`)
	assert.Contains(t, stderr, `"args":["1","2"]`)
}

func TestEval_commandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown op", []string{"eval", "exp", "1"}, `unknown operation "exp"`},
		{"arity", []string{"eval", "add", "1"}, "add takes 2 operand(s), got 1"},
		{"no op", []string{"eval"}, "requires at least 1 arg(s)"},
		{"malformed", []string{"eval", "add", "1", "two"}, `operand "two"`},
		{"flag after op", []string{"eval", "add", "1", "2", "--type", "int8"}, "add takes 2 operand(s), got 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestEval_literals(t *testing.T) {
	tests := []struct {
		typ     string
		literal string
		value   string
		status  string
	}{
		{"int8", "-127", "127", StatusOK},
		{"int8", "-128", "", StatusError},
		{"int8", "-129", "", StatusError},
		{"uint8", "0xff", "255", StatusOK},
		{"uint8", "-1", "", StatusError},
		{"uint64", "18446744073709551615", "18446744073709551615", StatusOK},
		{"uint64", "18446744073709551616", "", StatusError},
		{"int64", "-9223372036854775809", "", StatusError},
		{"int", "0b101", "5", StatusOK},
		{"uintptr", "1_000", "1000", StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.literal, func(t *testing.T) {
			out, err := evaluate(tt.typ, PolicyChecked, Operation{Name: "absi", Arity: 1}, []string{tt.literal})
			require.NoError(t, err)
			assert.Equal(t, tt.status, out.Status, out.Error)
			assert.Equal(t, tt.value, out.Value)
		})
	}
}

// Every listed operation evaluates for every type without a command
// error, and no evaluator is unlisted.
func TestEval_allOperations(t *testing.T) {
	sample := map[int][]string{1: {"11"}, 2: {"10", "2"}, 3: {"10", "2", "3"}}
	for _, typ := range ValidTypes {
		for _, op := range Operations {
			out, err := evaluate(typ, PolicyTry, op, sample[op.Arity])
			require.NoError(t, err, "%s %s", typ, op.Name)
			if op.Name == "negate" && strings.HasPrefix(typ, "u") {
				assert.Equal(t, StatusError, out.Status)
				continue
			}
			assert.Equal(t, StatusOK, out.Status, "%s %s: %s", typ, op.Name, out.Error)
		}
	}

	evs := evaluators[int8]()
	for name := range evs {
		_, ok := lookupOperation(name)
		assert.True(t, ok, name)
	}
	assert.Len(t, evs, len(Operations)-1)
}
