package bitops

func MinBranching(a, b int32) int32 {
	if a > b {
		return b
	}
	return a
}

func MaxBranching(a, b int32) int32 {
	if a < b {
		return b
	}
	return a
}

// geMask is all ones when a >= b and zero otherwise. The sign of d = a-b
// alone is wrong when the subtraction overflows, which can only happen when
// a and b have different signs; (a^b)&(d^a) flips the sign bit exactly then.
func geMask(a, b, d int32) int32 {
	lt := d ^ ((a ^ b) & (d ^ a))
	return ^lt >> shift
}

// MinBranchFree subtracts a-b from a when a >= b.
func MinBranchFree(a, b int32) int32 {
	d := a - b
	return a - (d & geMask(a, b, d))
}

// MaxBranchFree adds a-b to b when a >= b.
func MaxBranchFree(a, b int32) int32 {
	d := a - b
	return b + (d & geMask(a, b, d))
}

func MinUnsignedBranching(a, b uint32) uint32 {
	if a > b {
		return b
	}
	return a
}

func MaxUnsignedBranching(a, b uint32) uint32 {
	if a < b {
		return b
	}
	return a
}

// borrowMask is all ones when a < b, i.e. when a-b borrows out of bit 31.
// The borrow is the top bit of (^a & b) | (^(a ^ b) & d), the full-subtractor
// borrow expression evaluated at the sign position.
func borrowMask(a, b, d uint32) uint32 {
	return uint32(int32((^a&b)|(^(a^b)&d)) >> shift)
}

// MinUnsignedBranchFree subtracts a-b from a unless the subtraction borrowed.
func MinUnsignedBranchFree(a, b uint32) uint32 {
	d := a - b
	return a - (d &^ borrowMask(a, b, d))
}

// MaxUnsignedBranchFree adds a-b to b unless the subtraction borrowed.
func MaxUnsignedBranchFree(a, b uint32) uint32 {
	d := a - b
	return b + (d &^ borrowMask(a, b, d))
}
