package sem_test

import (
	"testing"

	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/syntax"
)

func clockingDecl(name string, kw syntax.ClockingKeyword, items ...syntax.ClockingItem) *syntax.ClockingDeclaration {
	return &syntax.ClockingDeclaration{
		BlockName:   name,
		NameSpan:    sp(1),
		Keyword:     kw,
		KeywordSpan: sp(2),
		Event: &syntax.EventControl{
			Edge: syntax.EdgePos,
			Expr: &syntax.NameExpr{Name: "clk", Sp: sp(3)},
			Sp:   sp(3),
		},
		Items: items,
		Sp:    sp(1),
	}
}

func TestDuplicateDefaultInputSkewKeepsFirst(t *testing.T) {
	comp := newComp(t)
	sem.NetsFromSyntax(comp.Root(), wireDecl("clk", 5))

	firstSkew := &syntax.ClockingSkew{Delay: &syntax.IntLiteral{Value: 1, Sp: sp(20)}, Sp: sp(20)}
	secondSkew := &syntax.ClockingSkew{Delay: &syntax.IntLiteral{Value: 2, Sp: sp(30)}, Sp: sp(30)}
	cb := sem.NewClockingBlock(comp.Root(), clockingDecl("cb", syntax.ClockingPlain,
		&syntax.DefaultSkewItem{Input: firstSkew, Sp: sp(20)},
		&syntax.DefaultSkewItem{Input: secondSkew, Sp: sp(30)},
	))

	dups := comp.Diagnostics().ByCode(diag.ClockingMultipleDefaultInSkew)
	if len(dups) != 1 {
		t.Fatalf("expected one duplicate-skew diagnostic:\n%s", comp.Diagnostics().Dump())
	}
	if len(dups[0].Notes) != 1 || dups[0].Notes[0].Span != firstSkew.Sp {
		t.Fatalf("note must point at the first skew, got %+v", dups[0].Notes)
	}

	skew := cb.DefaultInputSkew()
	if skew.Delay == nil || skew.Delay.Constant == nil || skew.Delay.Constant.Int != 1 {
		t.Fatalf("first skew must win, got %+v", skew.Delay)
	}
}

func TestClockingSignalsBecomeScopeMembers(t *testing.T) {
	comp := newComp(t)
	sem.NetsFromSyntax(comp.Root(), wireDecl("clk", 5))

	cb := sem.NewClockingBlock(comp.Root(), clockingDecl("cb", syntax.ClockingPlain,
		&syntax.ClockingSignal{Direction: syntax.DirIn, Name: "req", Sp: sp(20)},
		&syntax.ClockingSignal{Direction: syntax.DirOut, Name: "ack", Sp: sp(21)},
	))

	if cb.Body().Find("req") == nil || cb.Body().Find("ack") == nil {
		t.Fatalf("sampled signals must be members of the clocking scope")
	}
	ev := cb.Event()
	if ev == nil || ev.Kind != sem.TimingEvent || ev.Edge != syntax.EdgePos {
		t.Fatalf("expected posedge event, got %+v", ev)
	}
}

func TestMultipleDefaultClockingDiagnosed(t *testing.T) {
	comp := newComp(t)
	sem.NetsFromSyntax(comp.Root(), wireDecl("clk", 5))

	first := sem.NewClockingBlock(comp.Root(), clockingDecl("cb1", syntax.ClockingDefault))
	sem.NewClockingBlock(comp.Root(), clockingDecl("cb2", syntax.ClockingDefault))

	if len(comp.Diagnostics().ByCode(diag.ClockingMultipleDefault)) != 1 {
		t.Fatalf("expected one multiple-default diagnostic:\n%s", comp.Diagnostics().Dump())
	}
	if comp.DefaultClocking(comp.Root()) != first {
		t.Fatalf("first default clocking registration must win")
	}
}

func TestGlobalClockingRejectedInGenerateBlock(t *testing.T) {
	comp := newComp(t)
	gen := sem.NewDefinition(comp.Root(), sem.DefGenerateBlock, "gen", sp(1))
	sem.NetsFromSyntax(gen.Body(), wireDecl("clk", 5))

	sem.NewClockingBlock(gen.Body(), clockingDecl("gcb", syntax.ClockingGlobal))

	if len(comp.Diagnostics().ByCode(diag.ClockingGlobalGenerate)) != 1 {
		t.Fatalf("expected global-in-generate diagnostic:\n%s", comp.Diagnostics().Dump())
	}
	if comp.GlobalClocking(gen.Body()) != nil {
		t.Fatalf("rejected global clocking must not be registered")
	}
}
