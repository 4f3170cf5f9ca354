package sem_test

import (
	"testing"

	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/syntax"
	"silica/internal/types"
)

func TestSequencePortsBecomeFormalArguments(t *testing.T) {
	comp := newComp(t)

	seq := sem.NewSequence(comp.Root(), &syntax.SequenceDeclaration{
		Name:     "s_req",
		NameSpan: sp(1),
		Ports: []*syntax.AssertionPort{
			{Name: "count", NameSpan: sp(2), Type: &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(3)}, Sp: sp(2)},
			{Name: "en", NameSpan: sp(4), Sp: sp(4)},
		},
		Sp: sp(1),
	})

	if comp.Diagnostics().Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", comp.Diagnostics().Dump())
	}
	if comp.Root().Find("s_req") != sem.Symbol(seq) {
		t.Fatalf("sequence must register into its parent scope")
	}
	if len(seq.Ports) != 2 {
		t.Fatalf("expected two ports, got %d", len(seq.Ports))
	}
	count, ok := seq.Body().Find("count").(*sem.FormalArgument)
	if !ok || count.Type().Kind != types.KindInt {
		t.Fatalf("typed port must carry its declared type, got %v", seq.Body().Find("count"))
	}
	// An untyped assertion port defaults to logic.
	en, ok := seq.Body().Find("en").(*sem.FormalArgument)
	if !ok || en.Type().Kind != types.KindLogic {
		t.Fatalf("untyped port must default to logic, got %v", seq.Body().Find("en"))
	}
	if en.Direction != syntax.DirIn {
		t.Fatalf("assertion ports are inputs, got %s", en.Direction)
	}
}

func TestPropertyDuplicatePortDiagnosed(t *testing.T) {
	comp := newComp(t)

	prop := sem.NewProperty(comp.Root(), &syntax.PropertyDeclaration{
		Name:     "p_ack",
		NameSpan: sp(1),
		Ports: []*syntax.AssertionPort{
			{Name: "a", NameSpan: sp(2), Sp: sp(2)},
			{Name: "a", NameSpan: sp(3), Sp: sp(3)},
		},
		Sp: sp(1),
	})

	dups := comp.Diagnostics().ByCode(diag.LookupDuplicateSymbol)
	if len(dups) != 1 {
		t.Fatalf("expected one duplicate diagnostic:\n%s", comp.Diagnostics().Dump())
	}
	if len(dups[0].Notes) != 1 || dups[0].Notes[0].Span != sp(2) {
		t.Fatalf("note must point at the first port, got %+v", dups[0].Notes)
	}
	// Both entries stay in the port list and the body scope.
	if len(prop.Ports) != 2 || len(prop.Body().Members()) != 2 {
		t.Fatalf("duplicate port must remain queryable, got %d ports", len(prop.Ports))
	}
}

func TestEmptyMemberKeepsAttributes(t *testing.T) {
	comp := newComp(t)
	def := sem.NewDefinition(comp.Root(), sem.DefModule, "m", sp(1))

	e := sem.NewEmptyMember(def.Body(), &syntax.EmptyMember{
		Attributes: []*syntax.Attribute{{Name: "keep", Sp: sp(2)}},
		Sp:         sp(3),
	})

	members := def.Body().Members()
	if len(members) != 1 || members[0] != sem.Symbol(e) {
		t.Fatalf("empty member must join the scope in order, got %+v", members)
	}
	if len(e.Attributes()) != 1 || e.Attributes()[0].Name != "keep" {
		t.Fatalf("attributes must survive, got %+v", e.Attributes())
	}
	if comp.Diagnostics().Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", comp.Diagnostics().Dump())
	}
}
