// SPDX-License-Identifier: Apache-2.0

package exit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_Int(t *testing.T) {
	req := require.New(t)

	req.Equal(0, NormalTermination.Int())
	req.Equal(65, DataFormatError.Int())
	req.NotEqual(9999, NormalTermination.Int())
}

func TestCode_String(t *testing.T) {
	req := require.New(t)
	req.Equal("0", NormalTermination.String())
	req.Equal("77", PermissionDenied.String())
	req.NotEqual("65", ConfigurationError.String())
}

func TestCode_Is(t *testing.T) {
	req := require.New(t)

	req.True(NormalTermination.Is(0))
	req.False(NormalTermination.Is(9999))
	req.True(UsageError.Is(64))
	req.False(InternalError.Is(77))
}

func TestFromInt(t *testing.T) {
	req := require.New(t)

	req.Equal(NormalTermination, FromInt(0))
	req.Equal(Code(2), FromInt(2))
	req.Equal(MaxValidExitCode, FromInt(255))
	req.Equal(GeneralError, FromInt(-1))
	req.Equal(GeneralError, FromInt(256))
}
