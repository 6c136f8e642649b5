// Package bitops holds branching and branch-free versions of sign, abs and
// min/max for 32-bit integers.
//
// Signed arithmetic wraps in two's complement (the Go language guarantees
// it), so the overflow-prone forms below are well defined and every
// branch-free function returns exactly what its branching twin returns, for
// every input.
package bitops

// shift moves the sign bit of a 32-bit word into bit 0.
const shift = 31

// SignBranching returns +1, -1 or 0.
func SignBranching(a int32) int8 {
	if a > 0 {
		return 1
	}
	if a < 0 {
		return -1
	}
	return 0
}

// SignBranchFree ORs the arithmetic sign of a (0 or -1) with the logical sign
// of -a (0 or 1). For MinInt32, -a == a and both terms fire: -1 | 1 == -1.
func SignBranchFree(a int32) int8 {
	return int8(a>>shift | int32(uint32(-a)>>shift))
}

// AbsBranching returns |a| as unsigned. AbsBranching(math.MinInt32) is
// 0x80000000 because -MinInt32 wraps to itself.
func AbsBranching(a int32) uint32 {
	if a < 0 {
		return uint32(-a)
	}
	return uint32(a)
}

// AbsBranchFree uses the sign mask m: (a + m) ^ m is a for m == 0 and
// ^(a-1) == -a for m == -1.
func AbsBranchFree(a int32) uint32 {
	m := a >> shift
	return uint32((a + m) ^ m)
}
