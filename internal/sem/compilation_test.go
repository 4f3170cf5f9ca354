package sem_test

import (
	"testing"

	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/syntax"
)

func TestForceElaborateIsIdempotent(t *testing.T) {
	comp := newComp(t)
	sem.NewContinuousAssign(comp.Root(), &syntax.ContinuousAssign{
		Assignment: &syntax.NameExpr{Name: "missing", Sp: sp(10)},
		Sp:         sp(10),
	})

	comp.ForceElaborate()
	count := comp.Diagnostics().Len()
	if count == 0 {
		t.Fatalf("expected the forced binding to diagnose")
	}
	comp.ForceElaborate()
	if comp.Diagnostics().Len() != count {
		t.Fatalf("second forcing emitted new diagnostics:\n%s", comp.Diagnostics().Dump())
	}
}

func TestIssueIsSeparateFromForcing(t *testing.T) {
	comp := newComp(t)
	sem.NewElabSystemTask(comp.Root(), &syntax.ElabSystemTask{
		TaskKind: syntax.TaskInfo,
		Args: []syntax.Argument{
			&syntax.OrderedArgument{Expr: &syntax.StringLiteral{Value: "hello", Sp: sp(10)}, Sp: sp(10)},
		},
		Sp: sp(1),
	})

	// Forcing computes the message but must not issue the task itself.
	comp.ForceElaborate()
	if got := len(comp.Diagnostics().ByCode(diag.ElabInfoTask)); got != 0 {
		t.Fatalf("forcing must not issue tasks, got %d", got)
	}
	comp.IssueElabTasks()
	if got := len(comp.Diagnostics().ByCode(diag.ElabInfoTask)); got != 1 {
		t.Fatalf("expected one issued info task, got %d:\n%s", got, comp.Diagnostics().Dump())
	}
}

func TestForcingOrderFollowsCreationOrder(t *testing.T) {
	build := func() *sem.Compilation {
		comp := newComp(t)
		// Two assigns with undeclared names; forcing order decides which
		// diagnostic comes first.
		sem.NewContinuousAssign(comp.Root(), &syntax.ContinuousAssign{
			Assignment: &syntax.NameExpr{Name: "alpha", Sp: sp(10)},
			Sp:         sp(10),
		})
		sem.NewContinuousAssign(comp.Root(), &syntax.ContinuousAssign{
			Assignment: &syntax.NameExpr{Name: "beta", Sp: sp(20)},
			Sp:         sp(20),
		})
		comp.ForceElaborate()
		return comp
	}

	first := build().Diagnostics().Dump()
	second := build().Diagnostics().Dump()
	if first != second {
		t.Fatalf("diagnostic order not reproducible:\n%s\nvs\n%s", first, second)
	}
	items := build().Diagnostics().Items()
	if len(items) != 2 || items[0].Args[0] != "alpha" || items[1].Args[0] != "beta" {
		t.Fatalf("expected creation-order diagnostics, got %+v", items)
	}
}

func TestDiagnosticLimitYieldsInertHandles(t *testing.T) {
	comp := sem.NewCompilation(sem.Options{MaxDiagnostics: 1, Binder: nil})
	scope := comp.Root()

	h1 := scope.AddDiag(diag.LookupUndeclared, sp(1))
	h2 := scope.AddDiag(diag.LookupUndeclared, sp(2))
	h2.AddArg("dropped").AddNote(diag.NoteDeclarationHere, sp(3))

	if comp.Diagnostics().Len() != 1 {
		t.Fatalf("limit must cap the bag, got %d", comp.Diagnostics().Len())
	}
	h1.AddArg("kept")
	if comp.Diagnostics().Items()[0].Args[0] != "kept" {
		t.Fatalf("live handle must mutate the stored diagnostic")
	}
}
