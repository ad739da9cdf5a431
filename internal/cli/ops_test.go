package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOps_golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			stdout, _, err := execute(t, "ops", "--format", format)
			require.NoError(t, err)
			g.Assert(t, "ops_"+format, []byte(stdout))
		})
	}
}

func TestOps_yaml(t *testing.T) {
	stdout, _, err := execute(t, "ops", "--format", "yaml")
	require.NoError(t, err)

	var got []Operation
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, Operations, got)
}

func TestOps_args(t *testing.T) {
	_, _, err := execute(t, "ops", "extra")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
