// SPDX-License-Identifier: Apache-2.0

package list

import (
	"bytes"
	"testing"

	"github.com/hashgraph/solo-purge/internal/packages"
	"github.com/hashgraph/solo-purge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_YAML(t *testing.T) {
	root := testutil.PrepareSubCmdForTest(NewCmd(packages.Of(" alpha", "beta ", "alpha")))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "count: 3\npackages:\n    - alpha\n    - beta\n    - alpha\n", out.String())
}

func TestListCmd_DefaultList(t *testing.T) {
	root := testutil.PrepareSubCmdForTest(NewCmd(packages.Default()))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list", "--output", "yaml"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "count: 83\n")
	assert.Contains(t, out.String(), "- notebook-shim\n")
}

func TestListCmd_UnsupportedFormat(t *testing.T) {
	root := testutil.PrepareSubCmdForTest(NewCmd(packages.Of("alpha")))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"list", "-o", "xml"})

	require.Error(t, root.Execute())
}

func TestListCmd_Shell(t *testing.T) {
	root := testutil.PrepareSubCmdForTest(NewCmd(packages.Parse("webencodings, wcwidth , Send2Trash")))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list", "-o", "shell"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "\"webencodings\" \"wcwidth\" \"Send2Trash\"\n", out.String())
}
