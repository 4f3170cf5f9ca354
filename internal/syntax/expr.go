package syntax

import (
	"silica/internal/source"
)

// Expr is the common interface of expression nodes.
type Expr interface {
	Node
	exprNode()
}

// BinaryOp enumerates binary operators relevant to elaboration-time binding.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEquality
	OpInequality
	OpCaseEquality
	OpCaseInequality
	OpLessThan
	OpLessThanEqual
	OpGreaterThan
	OpGreaterThanEqual
	OpLogicalAnd
	OpLogicalOr
)

var binaryOpText = [...]string{
	OpAdd:              "+",
	OpSub:              "-",
	OpMul:              "*",
	OpDiv:              "/",
	OpEquality:         "==",
	OpInequality:       "!=",
	OpCaseEquality:     "===",
	OpCaseInequality:   "!==",
	OpLessThan:         "<",
	OpLessThanEqual:    "<=",
	OpGreaterThan:      ">",
	OpGreaterThanEqual: ">=",
	OpLogicalAnd:       "&&",
	OpLogicalOr:        "||",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// IsComparison reports whether the operator is a relational or (case)
// equality comparison.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEquality, OpInequality, OpCaseEquality, OpCaseInequality,
		OpLessThan, OpLessThanEqual, OpGreaterThan, OpGreaterThanEqual:
		return true
	}
	return false
}

// IntLiteral is an integer literal. Width 0 means unsized; Unknown marks the
// single-bit X value ('x).
type IntLiteral struct {
	Value   int64
	Width   uint32
	Unknown bool
	Sp      source.Span
}

func (e *IntLiteral) Span() source.Span { return e.Sp }
func (e *IntLiteral) exprNode()         {}

// StringLiteral is a quoted string.
type StringLiteral struct {
	Value string
	Sp    source.Span
}

func (e *StringLiteral) Span() source.Span { return e.Sp }
func (e *StringLiteral) exprNode()         {}

// RealLiteral is a floating literal.
type RealLiteral struct {
	Value float64
	Sp    source.Span
}

func (e *RealLiteral) Span() source.Span { return e.Sp }
func (e *RealLiteral) exprNode()         {}

// NameExpr references a declared symbol by name.
type NameExpr struct {
	Name string
	Sp   source.Span
}

func (e *NameExpr) Span() source.Span { return e.Sp }
func (e *NameExpr) exprNode()         {}

// BinaryExpr applies Op to Left and Right. OpSpan points at the operator
// token; diagnostics about reduced comparisons anchor there.
type BinaryExpr struct {
	Op     BinaryOp
	Left   Expr
	Right  Expr
	OpSpan source.Span
}

func (e *BinaryExpr) Span() source.Span { return e.Left.Span().Cover(e.Right.Span()) }
func (e *BinaryExpr) exprNode()         {}

// UnaryExpr applies a prefix operator.
type UnaryOp uint8

const (
	OpNegate UnaryOp = iota
	OpLogicalNot
)

type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Sp      source.Span
}

func (e *UnaryExpr) Span() source.Span { return e.Sp }
func (e *UnaryExpr) exprNode()         {}
