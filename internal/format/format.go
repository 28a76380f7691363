// SPDX-License-Identifier: Apache-2.0

// Package format renders command output as YAML or JSON.
package format

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

const (
	YAML  = "yaml"
	JSON  = "json"
	Shell = "shell"
)

// ShellWords renders names as double-quoted words separated by spaces, ready to
// paste into a shell array or command line.
func ShellWords(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, " ") + "\n"
}

// Marshal renders v in the given format.
func Marshal(v any, format string) (string, error) {
	var output []byte
	var err error
	switch strings.ToLower(format) {
	case JSON:
		output, err = json.Marshal(v)
		if err != nil {
			return "", errorx.IllegalFormat.Wrap(err, "Error marshaling to JSON")
		}
		output = append(output, '\n')
	case YAML:
		output, err = yaml.Marshal(v)
		if err != nil {
			return "", errorx.IllegalFormat.Wrap(err, "Error marshaling to YAML")
		}
	default:
		return "", errorx.IllegalFormat.New("unsupported format: %s", format)
	}

	return string(output), nil
}
