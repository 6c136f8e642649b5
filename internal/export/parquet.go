// Package export persists timing records for offline comparison across
// machines and builds.
package export

import (
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/23skdu/branchfree/internal/errors"
	"github.com/23skdu/branchfree/internal/harness"
	"github.com/23skdu/branchfree/internal/sysinfo"
)

// TimingRecord is one row per timed loop, baseline included.
type TimingRecord struct {
	RunID      string  `parquet:"run_id"`
	Name       string  `parquet:"name"`
	Operation  string  `parquet:"operation"`
	Variant    string  `parquet:"variant"`
	Iterations uint64  `parquet:"iterations"`
	ElapsedNs  int64   `parquet:"elapsed_ns"`
	NetNs      int64   `parquet:"net_ns"`
	NsPerIter  float64 `parquet:"ns_per_iter"`
	CPUVendor  string  `parquet:"cpu_vendor"`
	CPUBrand   string  `parquet:"cpu_brand"`
	Arch       string  `parquet:"arch"`
}

// Records flattens suite results into rows, baseline first.
func Records(runID string, res *harness.Results, cpu sysinfo.CPU) []TimingRecord {
	iters := res.Generator.Length()
	row := func(name, op, variant string, elapsed, net time.Duration) TimingRecord {
		return TimingRecord{
			RunID:      runID,
			Name:       name,
			Operation:  op,
			Variant:    variant,
			Iterations: iters,
			ElapsedNs:  elapsed.Nanoseconds(),
			NetNs:      net.Nanoseconds(),
			NsPerIter:  float64(net.Nanoseconds()) / float64(iters),
			CPUVendor:  cpu.Vendor,
			CPUBrand:   cpu.Brand,
			Arch:       cpu.Arch,
		}
	}

	rows := make([]TimingRecord, 0, len(res.Runs)+1)
	rows = append(rows, row("empty", "baseline", "identity", res.Baseline, 0))
	for _, rec := range res.Runs {
		rows = append(rows, row(rec.Name, rec.Op.String(), rec.Variant.String(),
			rec.Elapsed, res.Net(rec.Op, rec.Variant)))
	}
	return rows
}

// WriteRecords encodes rows as a zstd-compressed parquet stream.
func WriteRecords(w io.Writer, rows []TimingRecord) error {
	pw := parquet.NewGenericWriter[TimingRecord](w, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return errors.WrapStorageError(err, "export.write", "write rows").
			WithContext("rows", len(rows))
	}
	if err := pw.Close(); err != nil {
		return errors.WrapStorageError(err, "export.write", "close writer")
	}
	return nil
}

// WriteFile writes rows to path, replacing any existing file.
func WriteFile(path string, rows []TimingRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapStorageError(err, "export.write_file", "create file").
			WithContext("path", path)
	}
	if err := WriteRecords(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapStorageError(err, "export.write_file", "close file").
			WithContext("path", path)
	}
	return nil
}

// ReadFile loads every row from a file written by WriteFile.
func ReadFile(path string) ([]TimingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapStorageError(err, "export.read_file", "open file").
			WithContext("path", path)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.WrapStorageError(err, "export.read_file", "stat file")
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, errors.WrapStorageError(err, "export.read_file", "open parquet").
			WithContext("path", path)
	}

	pr := parquet.NewGenericReader[TimingRecord](pf)
	defer pr.Close()

	rows := make([]TimingRecord, pr.NumRows())
	n, err := pr.Read(rows)
	if err != nil && err != io.EOF {
		return nil, errors.WrapStorageError(err, "export.read_file", "read rows")
	}
	return rows[:n], nil
}
