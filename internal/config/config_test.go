// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestInitialize_Defaults(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Initialize(""))

	cfg := Get()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.ConsoleLogging)
	assert.Equal(t, "command", cfg.Remover.Backend)
	assert.Equal(t, "pip", cfg.Remover.Manager)
	assert.Equal(t, "uninstall", cfg.Remover.Subcommand)
	assert.Equal(t, "-y", cfg.Remover.AssumeYesFlag)
}

func TestInitialize_FromFile(t *testing.T) {
	t.Cleanup(Reset)

	path := writeConfig(t, "purge.yaml", `
log:
  level: debug
remover:
  manager: pip3
`)

	require.NoError(t, Initialize(path))

	cfg := Get()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pip3", cfg.Remover.Manager)
	// keys missing from the file keep their defaults
	assert.Equal(t, "command", cfg.Remover.Backend)
	assert.Equal(t, "uninstall", cfg.Remover.Subcommand)
	assert.Equal(t, "-y", cfg.Remover.AssumeYesFlag)
}

func TestInitialize_EnvOverride(t *testing.T) {
	t.Cleanup(Reset)

	path := writeConfig(t, "purge.yaml", `
remover:
  manager: pip3
`)
	t.Setenv("SOLO_PURGE_REMOVER_MANAGER", "/opt/venv/bin/pip")

	require.NoError(t, Initialize(path))
	assert.Equal(t, "/opt/venv/bin/pip", Get().Remover.Manager)
}

func TestInitialize_MissingFile(t *testing.T) {
	t.Cleanup(Reset)

	err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, NotFoundError))
	assert.True(t, errorx.HasTrait(err, errorx.NotFound()))
}

func TestInitialize_InvalidBackend(t *testing.T) {
	t.Cleanup(Reset)

	path := writeConfig(t, "purge.yaml", `
remover:
  backend: ftp
`)

	err := Initialize(path)
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
	assert.Equal(t, "pip", Get().Remover.Manager, "failed load must not replace the active config")
}

func TestSet(t *testing.T) {
	t.Cleanup(Reset)

	require.Error(t, Set(nil))

	cfg := Get()
	cfg.Remover.Manager = "pipx"
	require.NoError(t, Set(&cfg))
	assert.Equal(t, "pipx", Get().Remover.Manager)

	cfg.Remover.Backend = "ftp"
	require.Error(t, Set(&cfg))
	assert.Equal(t, "pipx", Get().Remover.Manager)
}
