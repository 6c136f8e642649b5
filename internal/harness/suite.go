package harness

import (
	"context"
	"time"

	"github.com/23skdu/branchfree/internal/errors"
	"github.com/23skdu/branchfree/internal/lcg"
)

// Record is the outcome of one timed loop.
type Record struct {
	Name     string
	Op       Operation
	Variant  Variant
	Baseline bool
	Elapsed  time.Duration
}

// Results holds every loop of one suite run.
type Results struct {
	Generator lcg.Generator
	// Baseline is the empty loop's duration.
	Baseline time.Duration
	// Runs lists candidate records in measurement order.
	Runs []Record
	// Accumulator is the sum of every value produced by every loop,
	// baseline included. It has no meaning beyond keeping the work alive.
	Accumulator uint32
}

// Elapsed returns the raw duration of op/v, or false if it was not run.
func (r *Results) Elapsed(op Operation, v Variant) (time.Duration, bool) {
	for _, rec := range r.Runs {
		if rec.Op == op && rec.Variant == v {
			return rec.Elapsed, true
		}
	}
	return 0, false
}

// Net returns the duration of op/v minus the baseline. A candidate faster
// than the empty loop is timer noise and reports as zero.
func (r *Results) Net(op Operation, v Variant) time.Duration {
	d, ok := r.Elapsed(op, v)
	if !ok {
		return 0
	}
	return max(d-r.Baseline, 0)
}

// Suite runs the baseline followed by each candidate, one after another on
// the calling goroutine.
type Suite struct {
	Generator  lcg.Generator
	Candidates []Candidate
	// OnRecord, if set, is called after each loop finishes and before the
	// next one starts.
	OnRecord func(Record)
}

// NewSuite returns a suite over all twelve candidates.
func NewSuite(g lcg.Generator) *Suite {
	return &Suite{
		Generator:  g,
		Candidates: Candidates(),
	}
}

// Run validates the generator and times every loop. ctx is checked between
// loops only; a loop in progress always runs to completion.
func (s *Suite) Run(ctx context.Context) (*Results, error) {
	if err := s.Generator.Validate(); err != nil {
		return nil, err
	}

	var acc uint32
	res := &Results{
		Generator: s.Generator,
		Runs:      make([]Record, 0, len(s.Candidates)),
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapComputationError(err, "harness.run", "canceled before baseline")
	}
	res.Baseline = Baseline(s.Generator, &acc)
	s.emit(Record{Name: "empty", Baseline: true, Elapsed: res.Baseline})

	for _, c := range s.Candidates {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapComputationError(err, "harness.run", "canceled between runs").
				WithContext("next", c.Name()).
				WithContext("completed", len(res.Runs))
		}
		rec := Record{
			Name:    c.Name(),
			Op:      c.Op,
			Variant: c.Variant,
			Elapsed: c.Run(s.Generator, &acc),
		}
		res.Runs = append(res.Runs, rec)
		s.emit(rec)
	}

	res.Accumulator = acc
	return res, nil
}

func (s *Suite) emit(rec Record) {
	if s.OnRecord != nil {
		s.OnRecord(rec)
	}
}
