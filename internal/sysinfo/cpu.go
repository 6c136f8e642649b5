package sysinfo

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// CPU describes the machine a benchmark ran on. Timings are only comparable
// between runs on the same CPU.
type CPU struct {
	Vendor        string
	Brand         string
	Arch          string
	PhysicalCores int
	LogicalCores  int
	Hz            int64
	// BMI1 and CMOV tell whether the branch-free forms can lower to
	// andn/sar and whether branching forms may become cmov anyway.
	HasBMI1 bool
	HasCMOV bool
}

// Detect reads CPUID once through klauspost/cpuid.
func Detect() CPU {
	info := cpuid.CPU
	return CPU{
		Vendor:        vendorOrUnknown(info.VendorString),
		Brand:         brandOrUnknown(info.BrandName),
		Arch:          runtime.GOARCH,
		PhysicalCores: info.PhysicalCores,
		LogicalCores:  info.LogicalCores,
		Hz:            info.Hz,
		HasBMI1:       info.Supports(cpuid.BMI1),
		HasCMOV:       info.Supports(cpuid.CMOV),
	}
}

func vendorOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func brandOrUnknown(b string) string {
	if b == "" {
		return "unknown"
	}
	return b
}
