package sem

import (
	"silica/internal/syntax"
	"silica/internal/types"
)

// ExprKind classifies bound expressions.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprLiteral
	ExprNamed
	ExprUnary
	ExprBinary
	ExprEmpty
)

// Expression is a bound, typed semantic value. Binding never fails with an
// error return; a failed binding yields Kind ExprInvalid with the error type
// attached, and every consumer checks Bad before trusting derived type
// information.
type Expression struct {
	Kind     ExprKind
	Type     *types.Type
	Syntax   syntax.Expr
	Constant *ConstantValue // set once folded, nil otherwise

	// Operator forms.
	Op    syntax.BinaryOp
	Left  *Expression
	Right *Expression

	// Named value form.
	Symbol Symbol
}

// Bad reports whether the expression failed to bind. One root-cause
// diagnostic is produced at the point of failure; downstream consumers stay
// silent.
func (e *Expression) Bad() bool {
	return e == nil || e.Kind == ExprInvalid || e.Type.IsError()
}

// IsComparison reports whether this is a binary relational or equality
// operator application.
func (e *Expression) IsComparison() bool {
	return e != nil && e.Kind == ExprBinary && e.Op.IsComparison()
}

// IsAssignable reports whether the expression can stand as an assignment
// target: a named net or a non-const variable.
func (e *Expression) IsAssignable() bool {
	if e == nil || e.Kind != ExprNamed || e.Symbol == nil {
		return false
	}
	switch sym := e.Symbol.(type) {
	case *Net:
		return true
	case *Variable:
		return sym.Flags&VarFlagConst == 0
	case *FormalArgument:
		return sym.Flags&VarFlagConst == 0
	}
	return false
}

// CanConnectToRef reports whether the expression can connect to a ref port:
// a named variable or formal argument, never a net.
func (e *Expression) CanConnectToRef() bool {
	if e == nil || e.Kind != ExprNamed || e.Symbol == nil {
		return false
	}
	switch e.Symbol.(type) {
	case *Variable, *FormalArgument:
		return true
	}
	return false
}

// BadExpression builds the placeholder returned for failed bindings.
func BadExpression(stx syntax.Expr) *Expression {
	return &Expression{Kind: ExprInvalid, Type: types.Error(), Syntax: stx}
}

// EmptyExpression represents a skipped argument position.
func EmptyExpression(stx syntax.Expr) *Expression {
	return &Expression{Kind: ExprEmpty, Type: types.Void(), Syntax: stx}
}

// TimingControlKind classifies bound timing controls.
type TimingControlKind uint8

const (
	TimingInvalid TimingControlKind = iota
	TimingDelay
	TimingEvent
)

// TimingControl is a bound delay or event control.
type TimingControl struct {
	Kind  TimingControlKind
	Delay *Expression
	Edge  syntax.EdgeKind
	Event *Expression
}

// Bad reports whether the control failed to bind.
func (t *TimingControl) Bad() bool { return t == nil || t.Kind == TimingInvalid }
