package harness

import (
	"fmt"
	"time"

	"github.com/23skdu/branchfree/internal/bitops"
	"github.com/23skdu/branchfree/internal/lcg"
)

// Candidate is one timed implementation of an operation.
type Candidate struct {
	Op      Operation
	Variant Variant
	run     func(lcg.Generator, *uint32) time.Duration
}

// Name is the operation followed by 0 for branching or 1 for branch-free.
func (c Candidate) Name() string {
	return fmt.Sprintf("%s%d", c.Op, c.Variant)
}

// Run times the candidate over one generator cycle.
func (c Candidate) Run(g lcg.Generator, acc *uint32) time.Duration {
	return c.run(g, acc)
}

func candidate[T Result](op Operation, v Variant, fn func(uint32) T) Candidate {
	return Candidate{
		Op:      op,
		Variant: v,
		run: func(g lcg.Generator, acc *uint32) time.Duration {
			return Time(g, fn, acc)
		},
	}
}

// Pairwise candidates compare a with its complement, which keeps the two
// operands on opposite sides of zero and exercises the overflow paths.

func sign0(a uint32) int8 { return bitops.SignBranching(int32(a)) }
func sign1(a uint32) int8 { return bitops.SignBranchFree(int32(a)) }
func abs0(a uint32) uint32 { return bitops.AbsBranching(int32(a)) }
func abs1(a uint32) uint32 { return bitops.AbsBranchFree(int32(a)) }
func mini0(a uint32) int32 { return bitops.MinBranching(int32(a), int32(^a)) }
func maxi0(a uint32) int32 { return bitops.MaxBranching(int32(a), int32(^a)) }
func mini1(a uint32) int32 { return bitops.MinBranchFree(int32(a), int32(^a)) }
func maxi1(a uint32) int32 { return bitops.MaxBranchFree(int32(a), int32(^a)) }
func minu0(a uint32) uint32 { return bitops.MinUnsignedBranching(a, ^a) }
func maxu0(a uint32) uint32 { return bitops.MaxUnsignedBranching(a, ^a) }
func minu1(a uint32) uint32 { return bitops.MinUnsignedBranchFree(a, ^a) }
func maxu1(a uint32) uint32 { return bitops.MaxUnsignedBranchFree(a, ^a) }

// Candidates returns the twelve candidates in measurement order. The
// min/max groups time both branching forms before either branch-free form.
func Candidates() []Candidate {
	return []Candidate{
		candidate(OpSign, Branching, sign0),
		candidate(OpSign, BranchFree, sign1),

		candidate(OpAbs, Branching, abs0),
		candidate(OpAbs, BranchFree, abs1),

		candidate(OpMinSigned, Branching, mini0),
		candidate(OpMaxSigned, Branching, maxi0),
		candidate(OpMinSigned, BranchFree, mini1),
		candidate(OpMaxSigned, BranchFree, maxi1),

		candidate(OpMinUnsigned, Branching, minu0),
		candidate(OpMaxUnsigned, Branching, maxu0),
		candidate(OpMinUnsigned, BranchFree, minu1),
		candidate(OpMaxUnsigned, BranchFree, maxu1),
	}
}
