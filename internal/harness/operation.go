package harness

// Operation is one of the six compared primitives.
type Operation int

const (
	OpSign Operation = iota
	OpAbs
	OpMinSigned
	OpMaxSigned
	OpMinUnsigned
	OpMaxUnsigned
)

var operationNames = [...]string{"sign", "abs", "mini", "maxi", "minu", "maxu"}

// Operations returns every operation in report order.
func Operations() []Operation {
	return []Operation{OpSign, OpAbs, OpMinSigned, OpMaxSigned, OpMinUnsigned, OpMaxUnsigned}
}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[o]
}

// Label is the report prefix. Every label is four columns wide, so "abs" is
// padded on the left.
func (o Operation) Label() string {
	if o == OpAbs {
		return " abs"
	}
	return o.String()
}

// Variant selects the implementation style of an operation.
type Variant int

const (
	Branching Variant = iota
	BranchFree
)

func (v Variant) String() string {
	switch v {
	case Branching:
		return "branching"
	case BranchFree:
		return "branch-free"
	default:
		return "unknown"
	}
}
