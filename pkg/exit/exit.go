// SPDX-License-Identifier: Apache-2.0

package exit

import (
	"fmt"
	"os"
)

type Code int

func (ec Code) String() string {
	return fmt.Sprintf("%d", ec)
}

func (ec Code) Int() int {
	return int(ec)
}

func (ec Code) TerminateProcess() {
	os.Exit(int(ec))
}

func (ec Code) Is(other int) bool {
	return int(ec) == other
}

// FromInt converts a raw process status into a Code, mapping out-of-range values to GeneralError.
func FromInt(code int) Code {
	c := Code(code)
	if c < MinValidExitCode || c > MaxValidExitCode {
		return GeneralError
	}
	return c
}

const MinValidExitCode Code = 0
const MaxValidExitCode Code = 255

// POSIX standard exit code definitions.

const NormalTermination Code = 0
const GeneralError Code = 1
const UsageError Code = 64
const DataFormatError Code = 65
const MissingInputError Code = 66
const InternalError Code = 70
const PermissionDenied Code = 77
const ConfigurationError Code = 78
