// SPDX-License-Identifier: Apache-2.0

package version

import (
	_ "embed"
	"strings"

	"github.com/Masterminds/semver/v3"
)

//go:embed COMMIT
var commit string

//go:embed VERSION
var number string

// buildMode is set at build time via ldflags for release builds
// -ldflags="-X 'github.com/hashgraph/solo-purge/internal/version.buildMode=release'"
var buildMode string

func Commit() string {
	return strings.TrimSpace(commit)
}

// Number returns the embedded version normalized to semver, or the raw value if it does not parse.
func Number() string {
	raw := strings.TrimSpace(number)
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return v.String()
}

// IsReleaseBuild returns true if this is a production release build.
func IsReleaseBuild() bool {
	return strings.TrimSpace(buildMode) == "release"
}

// BuildMode returns the current build mode ("release" or "dev")
func BuildMode() string {
	if IsReleaseBuild() {
		return "release"
	}
	return "dev"
}
