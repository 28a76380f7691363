// SPDX-License-Identifier: Apache-2.0

// Package packages holds the build-time list of packages removed by purge.
package packages

import (
	_ "embed"
	"strings"
)

//go:embed jupyter.txt
var jupyter string

const separator = ","

// PackageName identifies a package to remove. Entries may carry incidental
// whitespace; callers trim before use.
type PackageName = string

// PackageList is an ordered, read-only sequence of package names.
type PackageList struct {
	names []PackageName
}

// Default returns the list of packages embedded at build time.
func Default() PackageList {
	return Parse(jupyter)
}

// Parse splits a comma-separated string into a PackageList. Entries are kept
// as written, including surrounding whitespace and duplicates.
//
// Empty entries from "a,,b" or a trailing comma are kept too: each one still
// gets its own removal call, the same as the list it was derived from.
func Parse(raw string) PackageList {
	if strings.TrimSpace(raw) == "" {
		return PackageList{}
	}

	return PackageList{names: strings.Split(raw, separator)}
}

// Of builds a PackageList from the given names, in order.
func Of(names ...PackageName) PackageList {
	cp := make([]PackageName, len(names))
	copy(cp, names)
	return PackageList{names: cp}
}

// Names returns a copy of the entries in listed order.
func (l PackageList) Names() []PackageName {
	cp := make([]PackageName, len(l.names))
	copy(cp, l.names)
	return cp
}

// Len returns the number of entries.
func (l PackageList) Len() int {
	return len(l.names)
}

// Trimmed returns the entries with leading and trailing whitespace removed.
func (l PackageList) Trimmed() []PackageName {
	out := make([]PackageName, len(l.names))
	for i, n := range l.names {
		out[i] = strings.TrimSpace(n)
	}
	return out
}
