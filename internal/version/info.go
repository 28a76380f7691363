// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"

	"github.com/hashgraph/solo-purge/internal/format"
)

type Info struct {
	Number    string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	GoVersion string `json:"go" yaml:"go"`
	BuildMode string `json:"buildMode" yaml:"buildMode"`
}

func (v Info) Format(f string) (string, error) {
	return format.Marshal(v, f)
}

func Get() Info {
	return Info{
		Number:    Number(),
		Commit:    Commit(),
		GoVersion: runtime.Version(),
		BuildMode: BuildMode(),
	}
}
