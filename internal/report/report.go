// Package report prints suite results in the fixed comparison format.
package report

import (
	"fmt"
	"io"

	"github.com/23skdu/branchfree/internal/harness"
)

// Write prints one line per operation, in report order:
//
//	sign: 1.23 vs 0.45
//
// The left value is the branching variant and the right the branch-free one,
// both in seconds net of the baseline.
func Write(w io.Writer, r *harness.Results) error {
	for _, op := range harness.Operations() {
		branching := r.Net(op, harness.Branching).Seconds()
		branchFree := r.Net(op, harness.BranchFree).Seconds()
		if _, err := fmt.Fprintf(w, "%s: %.2f vs %.2f\n", op.Label(), branching, branchFree); err != nil {
			return err
		}
	}
	return nil
}

// WriteAccumulator prints the accumulator as a single decimal line.
func WriteAccumulator(w io.Writer, acc uint32) error {
	_, err := fmt.Fprintln(w, acc)
	return err
}
