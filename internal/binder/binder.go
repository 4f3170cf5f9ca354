// Package binder provides the reference expression binder for the
// elaboration core. It handles the expression forms that declaration
// elaboration needs to bind and fold: literals, name references, and the
// binary and unary operators of constant conditions. Hosts with a richer
// expression language supply their own sem.Binder.
package binder

import (
	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/syntax"
	"silica/internal/types"
)

// Binder is a stateless sem.Binder. Constants fold eagerly at bind time, so
// EvaluateConstant is a cache read.
type Binder struct{}

// New returns the reference binder.
func New() *Binder { return &Binder{} }

// BindExpression binds node at the context's scope and location. Failures
// produce one diagnostic at the root cause and a bad expression; callers
// stay silent on bad inputs.
func (b *Binder) BindExpression(node syntax.Expr, ctx *sem.Context, flags sem.BindFlags) *sem.Expression {
	if node == nil {
		return sem.BadExpression(nil)
	}
	switch e := node.(type) {
	case *syntax.IntLiteral:
		return bindIntLiteral(e)
	case *syntax.RealLiteral:
		c := sem.RealConst(e.Value)
		return &sem.Expression{Kind: sem.ExprLiteral, Type: types.Real(), Syntax: e, Constant: &c}
	case *syntax.StringLiteral:
		c := sem.StringConst(e.Value)
		return &sem.Expression{Kind: sem.ExprLiteral, Type: types.String(), Syntax: e, Constant: &c}
	case *syntax.NameExpr:
		return bindName(e, ctx)
	case *syntax.BinaryExpr:
		return b.bindBinary(e, ctx, flags)
	case *syntax.UnaryExpr:
		return b.bindUnary(e, ctx, flags)
	}
	return sem.BadExpression(node)
}

func bindIntLiteral(e *syntax.IntLiteral) *sem.Expression {
	if e.Unknown {
		c := sem.UnknownBitConst()
		return &sem.Expression{Kind: sem.ExprLiteral, Type: types.Logic(), Syntax: e, Constant: &c}
	}
	c := sem.IntConst(e.Value)
	t := types.Int()
	if e.Width > 0 {
		c.Width = e.Width
		t = types.Logic()
		if e.Width > 1 {
			t = types.LogicVector(e.Width)
		}
	}
	return &sem.Expression{Kind: sem.ExprLiteral, Type: t, Syntax: e, Constant: &c}
}

func bindName(e *syntax.NameExpr, ctx *sem.Context) *sem.Expression {
	res := sem.LookupUnqualified(ctx.Scope, e.Name, ctx.Location, sem.LookupDefault)
	if res.Found == nil {
		sem.ReportUndeclared(ctx.Scope, e.Name, e.Sp, res)
		return sem.BadExpression(e)
	}
	var t *types.Type
	switch sym := res.Found.(type) {
	case *sem.Net:
		t = sym.Type()
	case *sem.Variable:
		t = sym.Type()
	case *sem.FormalArgument:
		t = sym.Type()
	case *sem.Genvar:
		t = types.Int()
	default:
		ctx.AddDiag(diag.LookupNotAllowedHere, e.Sp).AddArg(e.Name)
		return sem.BadExpression(e)
	}
	return &sem.Expression{Kind: sem.ExprNamed, Type: t, Syntax: e, Symbol: res.Found}
}

func (b *Binder) bindBinary(e *syntax.BinaryExpr, ctx *sem.Context, flags sem.BindFlags) *sem.Expression {
	left := b.BindExpression(e.Left, ctx, flags)
	right := b.BindExpression(e.Right, ctx, flags)
	if left.Bad() || right.Bad() {
		return sem.BadExpression(e)
	}
	result := &sem.Expression{
		Kind:   sem.ExprBinary,
		Syntax: e,
		Op:     e.Op,
		Left:   left,
		Right:  right,
	}
	switch {
	case e.Op.IsComparison(), e.Op == syntax.OpLogicalAnd, e.Op == syntax.OpLogicalOr:
		result.Type = types.Logic()
	default:
		result.Type = mergeArithmetic(left.Type, right.Type)
	}
	if left.Constant != nil && right.Constant != nil {
		if c, ok := foldBinary(e.Op, *left.Constant, *right.Constant); ok {
			result.Constant = &c
		}
	}
	return result
}

func (b *Binder) bindUnary(e *syntax.UnaryExpr, ctx *sem.Context, flags sem.BindFlags) *sem.Expression {
	operand := b.BindExpression(e.Operand, ctx, flags)
	if operand.Bad() {
		return sem.BadExpression(e)
	}
	result := &sem.Expression{Kind: sem.ExprUnary, Syntax: e, Left: operand}
	switch e.Op {
	case syntax.OpLogicalNot:
		result.Type = types.Logic()
	default:
		result.Type = operand.Type
	}
	if operand.Constant != nil {
		if c, ok := foldUnary(e.Op, *operand.Constant); ok {
			result.Constant = &c
		}
	}
	return result
}

// mergeArithmetic picks the result type of an arithmetic operator: real wins
// over integral, otherwise the wider operand.
func mergeArithmetic(left, right *types.Type) *types.Type {
	if left.Kind == types.KindReal || right.Kind == types.KindReal {
		return types.Real()
	}
	if !left.IsIntegral() || !right.IsIntegral() {
		return types.Error()
	}
	if left.BitWidth() >= right.BitWidth() {
		return left
	}
	return right
}

// BindTimingControl binds a delay or event control node.
func (b *Binder) BindTimingControl(node syntax.Node, ctx *sem.Context) *sem.TimingControl {
	switch t := node.(type) {
	case *syntax.DelayControl:
		return &sem.TimingControl{
			Kind:  sem.TimingDelay,
			Delay: b.BindExpression(t.Expr, ctx, ctx.Flags),
		}
	case *syntax.EventControl:
		tc := &sem.TimingControl{Kind: sem.TimingEvent, Edge: t.Edge}
		if t.Expr != nil {
			tc.Event = b.BindExpression(t.Expr, ctx, ctx.Flags)
		}
		return tc
	}
	return &sem.TimingControl{}
}

// EvaluateConstant reads the constant folded at bind time. An unfolded
// expression is not a constant.
func (b *Binder) EvaluateConstant(e *sem.Expression) (sem.ConstantValue, bool) {
	if e == nil || e.Bad() || e.Constant == nil {
		return sem.ConstantValue{}, false
	}
	return *e.Constant, true
}
