package model

// SequenceComparison names a relation an ActionDependency asserts between
// one action and a set of other actions within a generated permutation.
type SequenceComparison int

const (
	StartsWith SequenceComparison = iota
	DoesntStartWith
	EndsWith
	DoesntEndWith
	Contains
	DoesntContain
	Blocks
	After
	DirectlyAfter
	Before
	DirectlyBefore
)

// String renders the relation name as used in textual constraint input.
func (c SequenceComparison) String() string {
	switch c {
	case StartsWith:
		return "STARTS_WITH"
	case DoesntStartWith:
		return "DOESNT_START_WITH"
	case EndsWith:
		return "ENDS_WITH"
	case DoesntEndWith:
		return "DOESNT_END_WITH"
	case Contains:
		return "CONTAINS"
	case DoesntContain:
		return "DOESNT_CONTAIN"
	case Blocks:
		return "BLOCKS"
	case After:
		return "AFTER"
	case DirectlyAfter:
		return "DIRECTLY_AFTER"
	case Before:
		return "BEFORE"
	case DirectlyBefore:
		return "DIRECTLY_BEFORE"
	default:
		return "UNKNOWN"
	}
}

// NumberComparison names one of the six standard arithmetic relations used
// by a MetricFilter to test an aggregated sequence performance value
// against a threshold.
type NumberComparison int

const (
	GreaterThan NumberComparison = iota
	LessThan
	GreaterOrEqual
	LessOrEqual
	Equal
	NotEqual
)

// String renders the relation as its conventional symbol.
func (c NumberComparison) String() string {
	switch c {
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return "?"
	}
}

// Compare applies the relation to (value, threshold), e.g. GreaterThan
// means value > threshold.
func (c NumberComparison) Compare(value, threshold float64) bool {
	switch c {
	case GreaterThan:
		return value > threshold
	case LessThan:
		return value < threshold
	case GreaterOrEqual:
		return value >= threshold
	case LessOrEqual:
		return value <= threshold
	case Equal:
		return value == threshold
	case NotEqual:
		return value != threshold
	default:
		return false
	}
}
