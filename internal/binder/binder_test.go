package binder

import (
	"testing"

	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/source"
	"silica/internal/syntax"
	"silica/internal/types"
)

func sp(start uint32) source.Span {
	return source.Span{File: 1, Start: start, End: start + 1}
}

func newCtx(t *testing.T) (*sem.Compilation, sem.Context) {
	t.Helper()
	comp := sem.NewCompilation(sem.Options{Binder: New()})
	return comp, sem.NewContext(comp.Root(), sem.LocationMax, sem.BindNone)
}

func TestIntLiteralTyping(t *testing.T) {
	_, ctx := newCtx(t)
	b := New()

	unsized := b.BindExpression(&syntax.IntLiteral{Value: 7, Sp: sp(1)}, &ctx, sem.BindNone)
	if unsized.Type.Kind != types.KindInt || unsized.Constant.Int != 7 {
		t.Fatalf("unsized literal: got %s / %+v", unsized.Type, unsized.Constant)
	}

	sized := b.BindExpression(&syntax.IntLiteral{Value: 3, Width: 4, Sp: sp(2)}, &ctx, sem.BindNone)
	if sized.Type.Kind != types.KindLogic || sized.Type.Width != 4 {
		t.Fatalf("sized literal: got %s", sized.Type)
	}

	unknown := b.BindExpression(&syntax.IntLiteral{Unknown: true, Width: 1, Sp: sp(3)}, &ctx, sem.BindNone)
	if !unknown.Constant.Unknown || unknown.Type.Kind != types.KindLogic {
		t.Fatalf("unknown literal: got %s / %+v", unknown.Type, unknown.Constant)
	}
}

func TestComparisonFoldsToSingleBit(t *testing.T) {
	_, ctx := newCtx(t)
	b := New()

	e := b.BindExpression(&syntax.BinaryExpr{
		Op:     syntax.OpLessThan,
		Left:   &syntax.IntLiteral{Value: 2, Sp: sp(1)},
		Right:  &syntax.IntLiteral{Value: 5, Sp: sp(2)},
		OpSpan: sp(3),
	}, &ctx, sem.BindNone)

	if e.Type.Kind != types.KindLogic || e.Type.Width != 1 {
		t.Fatalf("comparison type must be single-bit logic, got %s", e.Type)
	}
	if e.Constant == nil || e.Constant.Int != 1 || e.Constant.Width != 1 {
		t.Fatalf("expected folded true, got %+v", e.Constant)
	}
}

func TestComparisonWithUnknownYieldsUnknown(t *testing.T) {
	_, ctx := newCtx(t)
	b := New()

	e := b.BindExpression(&syntax.BinaryExpr{
		Op:     syntax.OpEquality,
		Left:   &syntax.IntLiteral{Unknown: true, Width: 1, Sp: sp(1)},
		Right:  &syntax.IntLiteral{Value: 0, Sp: sp(2)},
		OpSpan: sp(3),
	}, &ctx, sem.BindNone)
	if e.Constant == nil || !e.Constant.Unknown {
		t.Fatalf("== with X must fold to X, got %+v", e.Constant)
	}
	if e.Constant.IsTrue() {
		t.Fatalf("X is not definitely true")
	}

	caseEq := b.BindExpression(&syntax.BinaryExpr{
		Op:     syntax.OpCaseEquality,
		Left:   &syntax.IntLiteral{Unknown: true, Width: 1, Sp: sp(4)},
		Right:  &syntax.IntLiteral{Unknown: true, Width: 1, Sp: sp(5)},
		OpSpan: sp(6),
	}, &ctx, sem.BindNone)
	if caseEq.Constant == nil || caseEq.Constant.Int != 1 {
		t.Fatalf("=== must treat X as an ordinary value, got %+v", caseEq.Constant)
	}
}

func TestNameResolution(t *testing.T) {
	comp, ctx := newCtx(t)
	b := New()

	v := sem.VariablesFromSyntax(comp.Root(), &syntax.DataDeclaration{
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(1)},
		Declarators: []*syntax.Declarator{{Name: "count", NameSpan: sp(2)}},
		Sp:          sp(1),
	})[0]

	e := b.BindExpression(&syntax.NameExpr{Name: "count", Sp: sp(10)}, &ctx, sem.BindNone)
	if e.Bad() || e.Symbol != sem.Symbol(v) || e.Type.Kind != types.KindInt {
		t.Fatalf("expected resolved variable reference, got %+v", e)
	}

	bad := b.BindExpression(&syntax.NameExpr{Name: "nope", Sp: sp(11)}, &ctx, sem.BindNone)
	if !bad.Bad() {
		t.Fatalf("unresolved name must bind bad")
	}
	if len(comp.Diagnostics().ByCode(diag.LookupUndeclared)) != 1 {
		t.Fatalf("expected one undeclared diagnostic:\n%s", comp.Diagnostics().Dump())
	}
}

func TestNonValueSymbolRejected(t *testing.T) {
	comp, ctx := newCtx(t)
	b := New()
	sem.NewDefinition(comp.Root(), sem.DefModule, "m", sp(1))

	e := b.BindExpression(&syntax.NameExpr{Name: "m", Sp: sp(10)}, &ctx, sem.BindNone)
	if !e.Bad() {
		t.Fatalf("module reference must not bind as a value")
	}
	if len(comp.Diagnostics().ByCode(diag.LookupNotAllowedHere)) != 1 {
		t.Fatalf("expected not-allowed-here diagnostic:\n%s", comp.Diagnostics().Dump())
	}
}

func TestUnaryAndArithmeticFolding(t *testing.T) {
	_, ctx := newCtx(t)
	b := New()

	neg := b.BindExpression(&syntax.UnaryExpr{
		Op:      syntax.OpNegate,
		Operand: &syntax.IntLiteral{Value: 3, Sp: sp(1)},
		Sp:      sp(1),
	}, &ctx, sem.BindNone)
	if neg.Constant == nil || neg.Constant.Int != -3 {
		t.Fatalf("negate fold failed: %+v", neg.Constant)
	}

	sum := b.BindExpression(&syntax.BinaryExpr{
		Op:     syntax.OpAdd,
		Left:   &syntax.IntLiteral{Value: 2, Sp: sp(2)},
		Right:  &syntax.RealLiteral{Value: 0.5, Sp: sp(3)},
		OpSpan: sp(4),
	}, &ctx, sem.BindNone)
	if sum.Type.Kind != types.KindReal || sum.Constant == nil || sum.Constant.Real != 2.5 {
		t.Fatalf("mixed arithmetic: got %s / %+v", sum.Type, sum.Constant)
	}

	div := b.BindExpression(&syntax.BinaryExpr{
		Op:     syntax.OpDiv,
		Left:   &syntax.IntLiteral{Value: 1, Sp: sp(5)},
		Right:  &syntax.IntLiteral{Value: 0, Sp: sp(6)},
		OpSpan: sp(7),
	}, &ctx, sem.BindNone)
	if div.Constant == nil || !div.Constant.Unknown {
		t.Fatalf("integer division by zero must fold to X, got %+v", div.Constant)
	}
}

func TestTimingControlDispatch(t *testing.T) {
	_, ctx := newCtx(t)
	b := New()

	delay := b.BindTimingControl(&syntax.DelayControl{
		Expr: &syntax.IntLiteral{Value: 10, Sp: sp(1)},
		Sp:   sp(1),
	}, &ctx)
	if delay.Kind != sem.TimingDelay || delay.Delay.Constant.Int != 10 {
		t.Fatalf("delay control: %+v", delay)
	}

	event := b.BindTimingControl(&syntax.EventControl{Edge: syntax.EdgeNeg, Sp: sp(2)}, &ctx)
	if event.Kind != sem.TimingEvent || event.Edge != syntax.EdgeNeg || event.Event != nil {
		t.Fatalf("event control: %+v", event)
	}

	if bad := b.BindTimingControl(nil, &ctx); !bad.Bad() {
		t.Fatalf("unrecognized node must yield an invalid control")
	}
}
