package binder

import (
	"silica/internal/sem"
	"silica/internal/syntax"
)

// foldBinary evaluates op over two constants. Comparisons against an
// unknown bit yield the unknown bit; arithmetic with an unknown operand
// does not fold.
func foldBinary(op syntax.BinaryOp, left, right sem.ConstantValue) (sem.ConstantValue, bool) {
	if left.Kind == sem.ConstInt && right.Kind == sem.ConstInt {
		if left.Unknown || right.Unknown {
			if op.IsComparison() {
				// Case equality sees X as an ordinary ninth value; the
				// plain operators produce X.
				switch op {
				case syntax.OpCaseEquality:
					return boolConst(left.Unknown == right.Unknown &&
						(left.Unknown || left.Int == right.Int)), true
				case syntax.OpCaseInequality:
					return boolConst(left.Unknown != right.Unknown ||
						(!left.Unknown && left.Int != right.Int)), true
				}
				return sem.UnknownBitConst(), true
			}
			return sem.ConstantValue{}, false
		}
		return foldIntBinary(op, left.Int, right.Int)
	}

	if left.Kind == sem.ConstString && right.Kind == sem.ConstString {
		switch op {
		case syntax.OpEquality, syntax.OpCaseEquality:
			return boolConst(left.Str == right.Str), true
		case syntax.OpInequality, syntax.OpCaseInequality:
			return boolConst(left.Str != right.Str), true
		}
		return sem.ConstantValue{}, false
	}

	lf, lok := asReal(left)
	rf, rok := asReal(right)
	if !lok || !rok {
		return sem.ConstantValue{}, false
	}
	return foldRealBinary(op, lf, rf)
}

func foldIntBinary(op syntax.BinaryOp, l, r int64) (sem.ConstantValue, bool) {
	switch op {
	case syntax.OpAdd:
		return sem.IntConst(l + r), true
	case syntax.OpSub:
		return sem.IntConst(l - r), true
	case syntax.OpMul:
		return sem.IntConst(l * r), true
	case syntax.OpDiv:
		if r == 0 {
			return sem.UnknownBitConst(), true
		}
		return sem.IntConst(l / r), true
	case syntax.OpEquality, syntax.OpCaseEquality:
		return boolConst(l == r), true
	case syntax.OpInequality, syntax.OpCaseInequality:
		return boolConst(l != r), true
	case syntax.OpLessThan:
		return boolConst(l < r), true
	case syntax.OpLessThanEqual:
		return boolConst(l <= r), true
	case syntax.OpGreaterThan:
		return boolConst(l > r), true
	case syntax.OpGreaterThanEqual:
		return boolConst(l >= r), true
	case syntax.OpLogicalAnd:
		return boolConst(l != 0 && r != 0), true
	case syntax.OpLogicalOr:
		return boolConst(l != 0 || r != 0), true
	}
	return sem.ConstantValue{}, false
}

func foldRealBinary(op syntax.BinaryOp, l, r float64) (sem.ConstantValue, bool) {
	switch op {
	case syntax.OpAdd:
		return sem.RealConst(l + r), true
	case syntax.OpSub:
		return sem.RealConst(l - r), true
	case syntax.OpMul:
		return sem.RealConst(l * r), true
	case syntax.OpDiv:
		if r == 0 {
			return sem.ConstantValue{}, false
		}
		return sem.RealConst(l / r), true
	case syntax.OpEquality:
		return boolConst(l == r), true
	case syntax.OpInequality:
		return boolConst(l != r), true
	case syntax.OpLessThan:
		return boolConst(l < r), true
	case syntax.OpLessThanEqual:
		return boolConst(l <= r), true
	case syntax.OpGreaterThan:
		return boolConst(l > r), true
	case syntax.OpGreaterThanEqual:
		return boolConst(l >= r), true
	case syntax.OpLogicalAnd:
		return boolConst(l != 0 && r != 0), true
	case syntax.OpLogicalOr:
		return boolConst(l != 0 || r != 0), true
	}
	return sem.ConstantValue{}, false
}

func foldUnary(op syntax.UnaryOp, v sem.ConstantValue) (sem.ConstantValue, bool) {
	switch v.Kind {
	case sem.ConstInt:
		if v.Unknown {
			if op == syntax.OpLogicalNot {
				return sem.UnknownBitConst(), true
			}
			return sem.ConstantValue{}, false
		}
		if op == syntax.OpLogicalNot {
			return boolConst(v.Int == 0), true
		}
		return sem.IntConst(-v.Int), true
	case sem.ConstReal:
		if op == syntax.OpLogicalNot {
			return boolConst(v.Real == 0), true
		}
		return sem.RealConst(-v.Real), true
	}
	return sem.ConstantValue{}, false
}

// boolConst builds the single-bit result of a comparison.
func boolConst(b bool) sem.ConstantValue {
	c := sem.IntConst(0)
	if b {
		c = sem.IntConst(1)
	}
	c.Width = 1
	return c
}

func asReal(v sem.ConstantValue) (float64, bool) {
	switch v.Kind {
	case sem.ConstInt:
		if v.Unknown {
			return 0, false
		}
		return float64(v.Int), true
	case sem.ConstReal:
		return v.Real, true
	}
	return 0, false
}
