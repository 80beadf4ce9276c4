package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/interpretive-systems/pagewizard/internal/tui"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const deployDef = "../config/testdata/deploy.yaml"

func TestValidateCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"validate", "--config", filepath.Join(t.TempDir(), "none.yaml"), "-f", deployDef})

	require.NoError(t, root.Execute())
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "Create deployment"))
	for _, key := range []string{"name", "target", "namespace", "host", "review"} {
		assert.Contains(t, s, key)
	}
}

func TestValidateCmd_InvalidDefinition(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"validate", "-f", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, root.Execute())
}

func TestWriteResult(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, writeResult(cmd, tui.Result{Submitted: true, Values: map[string]string{"name": "app"}}))

	var got tui.Result
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.True(t, got.Submitted)
	assert.Equal(t, "app", got.Values["name"])
}
