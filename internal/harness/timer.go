// Package harness times candidate functions over one full cycle of the input
// generator and subtracts the cost of the loop itself.
package harness

import (
	"time"

	"github.com/23skdu/branchfree/internal/lcg"
)

// Result is any value a candidate may return. It is folded into the
// accumulator as its 32-bit two's-complement pattern.
type Result interface {
	~int8 | ~int32 | ~uint32
}

// Time runs fn once per generator step, starting from a = 0 and stopping
// after the step that brings a back to 0, adding every result into *acc.
// The sum exists only so the compiler cannot drop the calls.
//
// Only the loop is timed; reading and writing *acc happens outside it.
func Time[T Result](g lcg.Generator, fn func(uint32) T, acc *uint32) time.Duration {
	m, c, mask := g.Multiplier, g.Increment, g.Mask()
	s := *acc

	start := time.Now()
	a := uint32(0)
	for {
		a = (m*a + c) & mask
		s += uint32(fn(a))
		if a == 0 {
			break
		}
	}
	elapsed := time.Since(start)

	*acc = s
	return elapsed
}

func identity(a uint32) uint32 { return a }

// Baseline times the loop with no work beyond passing a through.
func Baseline(g lcg.Generator, acc *uint32) time.Duration {
	return Time(g, identity, acc)
}
