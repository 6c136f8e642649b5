// Package lcg provides the linear congruential recurrence that drives every
// timed loop.
package lcg

import (
	"github.com/23skdu/branchfree/internal/errors"
)

const (
	DefaultMultiplier uint32 = 19993
	DefaultIncrement  uint32 = 1
	DefaultBits       uint   = 32
)

// Generator is a = (Multiplier*a + Increment) mod 2^Bits, with Bits in [1, 32].
// Out-of-range Bits behave as 32; Validate reports them.
type Generator struct {
	Multiplier uint32
	Increment  uint32
	Bits       uint
}

// Default returns a = 19993*a + 1 mod 2^32.
func Default() Generator {
	return Generator{
		Multiplier: DefaultMultiplier,
		Increment:  DefaultIncrement,
		Bits:       DefaultBits,
	}
}

// Mask returns 2^Bits - 1.
func (g Generator) Mask() uint32 {
	b := g.bits()
	if b == 32 {
		return ^uint32(0)
	}
	return uint32(1)<<b - 1
}

// Next returns the successor of a. Arithmetic wraps at 32 bits before the
// mask is applied, which is exact for any power-of-two modulus.
func (g Generator) Next(a uint32) uint32 {
	return (g.Multiplier*a + g.Increment) & g.Mask()
}

// Length is the number of values in one full period, 2^Bits.
func (g Generator) Length() uint64 {
	return uint64(1) << g.bits()
}

func (g Generator) bits() uint {
	if g.Bits == 0 || g.Bits > 32 {
		return 32
	}
	return g.Bits
}

// FullPeriod checks the Hull-Dobell conditions for a power-of-two modulus:
// the increment is odd and, once the modulus is at least 4, the multiplier is
// congruent to 1 mod 4.
func (g Generator) FullPeriod() bool {
	if g.Increment&1 == 0 {
		return false
	}
	if g.bits() == 1 {
		return g.Multiplier&1 == 1
	}
	return (g.Multiplier-1)&3 == 0
}

// Validate rejects generators whose walk from zero would not cover every
// value of the modulus.
func (g Generator) Validate() error {
	if g.Bits == 0 || g.Bits > 32 {
		return errors.NewConfigurationError("lcg.validate", "bits must be in [1, 32]").
			WithContext("bits", g.Bits)
	}
	if !g.FullPeriod() {
		return errors.NewConfigurationError("lcg.validate", "generator does not have a full period").
			WithContext("multiplier", g.Multiplier).
			WithContext("increment", g.Increment)
	}
	return nil
}

// Period walks the recurrence from zero and returns the number of steps
// taken to reach zero again. The walk gives up after Length steps.
func (g Generator) Period() (uint64, error) {
	limit := g.Length()
	a := uint32(0)
	for steps := uint64(1); steps <= limit; steps++ {
		a = g.Next(a)
		if a == 0 {
			return steps, nil
		}
	}
	return 0, errors.NewComputationError("lcg.period", "recurrence did not return to zero").
		WithContext("limit", limit)
}
