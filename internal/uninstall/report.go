// SPDX-License-Identifier: Apache-2.0

package uninstall

import (
	"github.com/hashgraph/solo-purge/pkg/exit"
	"github.com/hashgraph/solo-purge/pkg/remover"
)

// Report holds the status of every removal call, in call order.
type Report struct {
	statuses []remover.Status
}

func newReport(capacity int) *Report {
	return &Report{statuses: make([]remover.Status, 0, capacity)}
}

func (r *Report) add(s remover.Status) {
	r.statuses = append(r.statuses, s)
}

// Statuses returns a copy of the recorded statuses.
func (r *Report) Statuses() []remover.Status {
	cp := make([]remover.Status, len(r.statuses))
	copy(cp, r.statuses)
	return cp
}

// Attempted returns the number of removal calls made.
func (r *Report) Attempted() int {
	return len(r.statuses)
}

// Failed returns the statuses of the calls that did not succeed.
func (r *Report) Failed() []remover.Status {
	var out []remover.Status
	for _, s := range r.statuses {
		if !s.Ok() {
			out = append(out, s)
		}
	}
	return out
}

// Last returns the status of the final removal call, if any.
func (r *Report) Last() (remover.Status, bool) {
	if len(r.statuses) == 0 {
		return remover.Status{}, false
	}
	return r.statuses[len(r.statuses)-1], true
}

// ExitCode is the exit code of the last removal call, or 0 when nothing ran.
// Earlier failures do not contribute.
func (r *Report) ExitCode() exit.Code {
	last, ok := r.Last()
	if !ok {
		return exit.NormalTermination
	}

	if last.ExitCode == remover.ExitCodeNotRun || (last.ExitCode == 0 && last.Err != nil) {
		return exit.GeneralError
	}

	return exit.FromInt(last.ExitCode)
}
