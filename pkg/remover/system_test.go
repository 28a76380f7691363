// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"context"
	"errors"
	"testing"

	"github.com/bluet/syspkg"
	"github.com/bluet/syspkg/manager"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePackageManager overrides Delete only; any other call panics.
type fakePackageManager struct {
	syspkg.PackageManager
	deleted [][]string
	opts    []manager.Options
	failOn  string
}

func (f *fakePackageManager) Delete(pkgs []string, opts *manager.Options) ([]manager.PackageInfo, error) {
	f.deleted = append(f.deleted, pkgs)
	f.opts = append(f.opts, *opts)
	for _, p := range pkgs {
		if p == f.failOn {
			return nil, errors.New("package not installed")
		}
	}
	return nil, nil
}

func TestSystemRemover_Remove(t *testing.T) {
	pm := &fakePackageManager{failOn: "missing"}
	r, err := NewSystemRemover("apt", WithPackageManager(pm))
	require.NoError(t, err)

	ok := r.Remove(context.Background(), "alpha")
	bad := r.Remove(context.Background(), "missing")

	assert.True(t, ok.Ok())
	assert.False(t, bad.Ok())
	assert.Equal(t, ExitCodeNotRun, bad.ExitCode)
	assert.True(t, errorx.IsOfType(bad.Err, UninstallationError))

	require.Len(t, pm.deleted, 2)
	assert.Equal(t, []string{"alpha"}, pm.deleted[0])
	assert.Equal(t, []string{"missing"}, pm.deleted[1])
	for _, o := range pm.opts {
		assert.True(t, o.AssumeYes)
		assert.False(t, o.Interactive)
		assert.False(t, o.DryRun)
	}
}

func TestNewSystemRemover_DefaultLogger(t *testing.T) {
	r, err := NewSystemRemover("", WithLogger(nil), WithPackageManager(&fakePackageManager{}))
	require.NoError(t, err)
	require.NotNil(t, r.logger)

	assert.True(t, r.Remove(context.Background(), "alpha").Ok())
}
