// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/hashgraph/solo-purge/cmd/purge/commands"
	"github.com/hashgraph/solo-purge/internal/doctor"
	"github.com/hashgraph/solo-purge/internal/packages"
)

func main() {
	traceId := uuid.NewString()
	ctx := context.WithValue(context.Background(), doctor.TraceIdKey, traceId)
	code, err := commands.Execute(ctx, packages.Default())
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	code.TerminateProcess()
}
