package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInitialization(t *testing.T) {
	r := NewRegistry()
	assert.NotNil(t, r.RunDurationSeconds)
	assert.NotNil(t, r.NetDurationSeconds)
	assert.NotNil(t, r.Iterations)
	assert.NotNil(t, r.CPUInfo)
	assert.NotNil(t, r.LogEntriesTotal)
	assert.NotNil(t, r.Gatherer())
}

// Each registry is independent, so two runs never collide on registration.
func TestNewRegistry_Independent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	a.Iterations.Set(10)
	b.Iterations.Set(20)
	assert.Equal(t, 10.0, testutil.ToFloat64(a.Iterations))
	assert.Equal(t, 20.0, testutil.ToFloat64(b.Iterations))
}

func TestObserveRun(t *testing.T) {
	r := NewRegistry()
	r.ObserveBaseline(2 * time.Second)
	r.ObserveRun("sign", "branching", 3500*time.Millisecond, 1500*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.RunDurationSeconds.WithLabelValues("baseline", "identity")))
	assert.Equal(t, 3.5, testutil.ToFloat64(r.RunDurationSeconds.WithLabelValues("sign", "branching")))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.NetDurationSeconds.WithLabelValues("sign", "branching")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.RunDurationSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(r.NetDurationSeconds))
}

func TestSetCPU(t *testing.T) {
	r := NewRegistry()
	r.SetCPU("GenuineIntel", "Test CPU @ 3.00GHz")

	expected := `
# HELP branchfree_cpu_info CPU the benchmark ran on
# TYPE branchfree_cpu_info gauge
branchfree_cpu_info{brand="Test CPU @ 3.00GHz",vendor="GenuineIntel"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(r.CPUInfo, strings.NewReader(expected)))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.Iterations.Set(256)
	r.ObserveRun("abs", "branch-free", time.Second, 0)

	path := filepath.Join(t.TempDir(), "branchfree.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "branchfree_iterations 256")
	assert.Contains(t, out, `branchfree_run_duration_seconds{operation="abs",variant="branch-free"} 1`)
	assert.Contains(t, out, `branchfree_net_duration_seconds{operation="abs",variant="branch-free"} 0`)
}

func TestWriteTextfile_BadPath(t *testing.T) {
	r := NewRegistry()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
