// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireUnix skips the test on hosts without a POSIX shell.
func RequireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

// FakeManager is a shell script standing in for a package manager.
// Each invocation appends its arguments, space separated, to LogFile.
type FakeManager struct {
	Path    string
	LogFile string
}

// Calls returns the recorded invocations in order.
func (f FakeManager) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// WriteFakeManager creates a FakeManager that exits with the given code when its
// second argument (the package name) matches a key of exitCodes, and 0 otherwise.
func WriteFakeManager(t *testing.T, exitCodes map[string]int) FakeManager {
	t.Helper()
	RequireUnix(t)

	dir := t.TempDir()
	f := FakeManager{
		Path:    filepath.Join(dir, "fake-manager"),
		LogFile: filepath.Join(dir, "calls.log"),
	}

	names := make([]string, 0, len(exitCodes))
	for name := range exitCodes {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&sb, "echo \"$*\" >> '%s'\n", f.LogFile)
	sb.WriteString("case \"$2\" in\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  '%s') exit %d ;;\n", name, exitCodes[name])
	}
	sb.WriteString("esac\nexit 0\n")

	require.NoError(t, os.WriteFile(f.Path, []byte(sb.String()), 0o755))
	return f
}
