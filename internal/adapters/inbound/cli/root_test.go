package cli_test

import (
	"bytes"
	"testing"

	"github.com/riskgate/riskgate/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "riskgate")
}

func TestMCPCommandExists(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"mcp", "--help"})
	assert.NoError(t, cmd.Execute())
}

func TestMCPServeCommandExists(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"mcp", "serve", "--help"})
	assert.NoError(t, cmd.Execute())
}

func TestServeCommandExists(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"serve", "--help"})
	assert.NoError(t, cmd.Execute())
}
