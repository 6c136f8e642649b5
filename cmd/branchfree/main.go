// Command branchfree times branching and branch-free sign, abs and min/max
// over every 32-bit input and prints the difference per operation.
//
// stdout carries six "<op>: <branching> vs <branch-free>" lines in seconds.
// stderr carries the accumulator, printed only so the compiler cannot drop
// the benchmarked work.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/23skdu/branchfree/internal/export"
	"github.com/23skdu/branchfree/internal/harness"
	"github.com/23skdu/branchfree/internal/lcg"
	"github.com/23skdu/branchfree/internal/logging"
	"github.com/23skdu/branchfree/internal/metrics"
	"github.com/23skdu/branchfree/internal/report"
	"github.com/23skdu/branchfree/internal/sysinfo"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, lcg.Default()))
}

func run(stdout, stderr io.Writer, gen lcg.Generator) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "branchfree: %v\n", err)
		return 1
	}

	reg := metrics.NewRegistry()
	logger, err := logging.NewLogger(logging.Config{
		Format:  cfg.LogFormat,
		Level:   cfg.LogLevel,
		Output:  stderr,
		Entries: reg.LogEntriesTotal,
	})
	if err != nil {
		fmt.Fprintf(stderr, "branchfree: %v\n", err)
		return 1
	}

	runID := uuid.NewString()
	cpu := sysinfo.Detect()
	reg.SetCPU(cpu.Vendor, cpu.Brand)
	reg.Iterations.Set(float64(gen.Length()))

	logger.Info().
		Str("run_id", runID).
		Str("cpu_vendor", cpu.Vendor).
		Str("cpu_brand", cpu.Brand).
		Str("arch", cpu.Arch).
		Int("physical_cores", cpu.PhysicalCores).
		Bool("bmi1", cpu.HasBMI1).
		Bool("cmov", cpu.HasCMOV).
		Uint64("iterations", gen.Length()).
		Msg("Starting benchmark")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	suite := harness.NewSuite(gen)
	// Gauges only; nothing is written out until every loop is done.
	var baseline time.Duration
	suite.OnRecord = func(rec harness.Record) {
		if rec.Baseline {
			baseline = rec.Elapsed
			reg.ObserveBaseline(rec.Elapsed)
			return
		}
		reg.ObserveRun(rec.Op.String(), rec.Variant.String(), rec.Elapsed, max(rec.Elapsed-baseline, 0))
	}

	start := time.Now()
	res, err := suite.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Str("run_id", runID).Msg("Benchmark aborted")
		return 1
	}
	logRuns(logger, res, time.Since(start))

	if err := report.Write(stdout, res); err != nil {
		logger.Error().Err(err).Msg("Failed to write report")
		return 1
	}

	if cfg.ResultsFile != "" {
		if err := export.WriteFile(cfg.ResultsFile, export.Records(runID, res, cpu)); err != nil {
			logger.Warn().Err(err).Str("path", cfg.ResultsFile).Msg("Failed to export results")
		} else {
			logger.Info().Str("path", cfg.ResultsFile).Msg("Results exported")
		}
	}
	if cfg.MetricsFile != "" {
		if err := reg.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("Failed to write metrics")
		} else {
			logger.Info().Str("path", cfg.MetricsFile).Msg("Metrics written")
		}
	}

	if err := report.WriteAccumulator(stderr, res.Accumulator); err != nil {
		return 1
	}
	return 0
}

func logRuns(logger zerolog.Logger, res *harness.Results, total time.Duration) {
	logger.Debug().Str("name", "empty").Dur("elapsed", res.Baseline).Msg("Baseline")
	for _, rec := range res.Runs {
		logger.Debug().
			Str("name", rec.Name).
			Str("operation", rec.Op.String()).
			Str("variant", rec.Variant.String()).
			Dur("elapsed", rec.Elapsed).
			Dur("net", res.Net(rec.Op, rec.Variant)).
			Msg("Run finished")
	}
	logger.Info().Dur("total", total).Int("runs", len(res.Runs)+1).Msg("Benchmark finished")
}
