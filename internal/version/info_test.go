// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, "0.1.0", info.Number)
	assert.Equal(t, "dev", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "dev", info.BuildMode)
	assert.False(t, IsReleaseBuild())
}

func TestInfo_Format(t *testing.T) {
	info := Info{Number: "1.2.3", Commit: "abc", GoVersion: "go1.25", BuildMode: "dev"}

	out, err := info.Format("json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc","go":"go1.25","buildMode":"dev"}`, out)

	out, err = info.Format("YAML")
	require.NoError(t, err)
	assert.YAMLEq(t, "version: 1.2.3\ncommit: abc\ngo: go1.25\nbuildMode: dev\n", out)

	_, err = info.Format("xml")
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalFormat))
}
