package sem

import (
	"strconv"
)

// ConstKind tags the payload of a ConstantValue.
type ConstKind uint8

const (
	ConstInvalid ConstKind = iota
	ConstInt
	ConstReal
	ConstString
)

// ConstantValue is an elaboration-time constant. Integers carry an optional
// bit width (0 = unsized) and an unknown flag for the X state.
type ConstantValue struct {
	Kind    ConstKind
	Int     int64
	Width   uint32
	Unknown bool
	Real    float64
	Str     string
}

func IntConst(v int64) ConstantValue {
	return ConstantValue{Kind: ConstInt, Int: v}
}

func UnknownBitConst() ConstantValue {
	return ConstantValue{Kind: ConstInt, Width: 1, Unknown: true}
}

func RealConst(v float64) ConstantValue {
	return ConstantValue{Kind: ConstReal, Real: v}
}

func StringConst(s string) ConstantValue {
	return ConstantValue{Kind: ConstString, Str: s}
}

// Valid reports whether the value holds anything at all.
func (v ConstantValue) Valid() bool { return v.Kind != ConstInvalid }

// IsTrue reports whether the value is definitely true; unknown bits are not.
func (v ConstantValue) IsTrue() bool {
	switch v.Kind {
	case ConstInt:
		return !v.Unknown && v.Int != 0
	case ConstReal:
		return v.Real != 0
	case ConstString:
		return v.Str != ""
	}
	return false
}

// IsSingleBitAllowed reports whether the value reduces to a single-bit 0, 1,
// or X — the only constants a sequential primitive may initialize with.
func (v ConstantValue) IsSingleBitAllowed() bool {
	if v.Kind != ConstInt {
		return false
	}
	if v.Unknown {
		return v.Width == 1
	}
	return v.Int == 0 || v.Int == 1
}

func (v ConstantValue) String() string {
	switch v.Kind {
	case ConstInt:
		if v.Unknown {
			return "1'bx"
		}
		return strconv.FormatInt(v.Int, 10)
	case ConstReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	case ConstString:
		return v.Str
	}
	return "<invalid>"
}
