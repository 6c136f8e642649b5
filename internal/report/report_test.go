package report

import (
	stderrors "errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/branchfree/internal/harness"
)

func fixedResults() *harness.Results {
	ms := time.Millisecond
	return &harness.Results{
		Baseline: 1000 * ms,
		Runs: []harness.Record{
			{Op: harness.OpSign, Variant: harness.Branching, Elapsed: 3456 * ms},
			{Op: harness.OpSign, Variant: harness.BranchFree, Elapsed: 2004 * ms},
			{Op: harness.OpAbs, Variant: harness.Branching, Elapsed: 1500 * ms},
			{Op: harness.OpAbs, Variant: harness.BranchFree, Elapsed: 1499 * ms},
			{Op: harness.OpMinSigned, Variant: harness.Branching, Elapsed: 900 * ms},
			{Op: harness.OpMaxSigned, Variant: harness.Branching, Elapsed: 1010 * ms},
			{Op: harness.OpMinSigned, Variant: harness.BranchFree, Elapsed: 1250 * ms},
			{Op: harness.OpMaxSigned, Variant: harness.BranchFree, Elapsed: 1250 * ms},
			{Op: harness.OpMinUnsigned, Variant: harness.Branching, Elapsed: 4000 * ms},
			{Op: harness.OpMaxUnsigned, Variant: harness.Branching, Elapsed: 4000 * ms},
			{Op: harness.OpMinUnsigned, Variant: harness.BranchFree, Elapsed: 1000 * ms},
			{Op: harness.OpMaxUnsigned, Variant: harness.BranchFree, Elapsed: 11000 * ms},
		},
	}
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, fixedResults()))

	assert.Equal(t, ""+
		"sign: 2.46 vs 1.00\n"+
		" abs: 0.50 vs 0.50\n"+
		"mini: 0.00 vs 0.25\n"+
		"maxi: 0.01 vs 0.25\n"+
		"minu: 3.00 vs 0.00\n"+
		"maxu: 3.00 vs 10.00\n", sb.String())
}

var lineFormat = regexp.MustCompile(`^(sign| abs|mini|maxi|minu|maxu): \d+\.\d{2} vs \d+\.\d{2}$`)

func TestWrite_LineFormat(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, fixedResults()))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Regexp(t, lineFormat, line)
	}
}

// Missing runs report as zero rather than failing.
func TestWrite_EmptyResults(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, &harness.Results{}))
	assert.Equal(t, 6, strings.Count(sb.String(), "0.00 vs 0.00\n"))
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, stderrors.New("closed")
	}
	w.after--
	return len(p), nil
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(&failingWriter{after: 2}, fixedResults())
	assert.EqualError(t, err, "closed")
	assert.Error(t, WriteAccumulator(&failingWriter{}, 1))
}

func TestWriteAccumulator(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteAccumulator(&sb, 4294967295))
	assert.Equal(t, "4294967295\n", sb.String())
}
