package sem_test

import (
	"testing"

	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/syntax"
	"silica/internal/types"
)

func TestAutomaticRejectedOutsideProceduralContext(t *testing.T) {
	comp := newComp(t)
	pkg := sem.NewPackage(comp.Root(), "p", sp(1))

	vars := sem.VariablesFromSyntax(pkg.Body(), &syntax.DataDeclaration{
		Modifiers:   []syntax.DataModifier{{Kind: syntax.ModAutomatic, Sp: sp(10)}},
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(11)},
		Declarators: []*syntax.Declarator{{Name: "x", NameSpan: sp(12)}},
		Sp:          sp(10),
	})

	if len(comp.Diagnostics().ByCode(diag.DeclAutomaticNotAllowed)) != 1 {
		t.Fatalf("expected automatic-not-allowed diagnostic:\n%s", comp.Diagnostics().Dump())
	}
	// The declaration is downgraded, not dropped.
	if vars[0].Lifetime != sem.LifetimeStatic {
		t.Fatalf("expected downgrade to static, got %v", vars[0].Lifetime)
	}
}

func TestVariablesInheritSubroutineDefaultLifetime(t *testing.T) {
	comp := newComp(t)
	task := sem.NewSubroutine(comp.Root(), "t", sp(1), sem.LifetimeAutomatic)

	vars := sem.VariablesFromSyntax(task.Body(), &syntax.DataDeclaration{
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(10)},
		Declarators: []*syntax.Declarator{{Name: "x", NameSpan: sp(11)}},
		Sp:          sp(10),
	})
	if vars[0].Lifetime != sem.LifetimeAutomatic {
		t.Fatalf("expected inherited automatic lifetime, got %v", vars[0].Lifetime)
	}

	// An explicit static overrides the default anywhere.
	vars = sem.VariablesFromSyntax(task.Body(), &syntax.DataDeclaration{
		Modifiers:   []syntax.DataModifier{{Kind: syntax.ModStatic, Sp: sp(20)}},
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(21)},
		Declarators: []*syntax.Declarator{{Name: "y", NameSpan: sp(22)}},
		Sp:          sp(20),
	})
	if vars[0].Lifetime != sem.LifetimeStatic {
		t.Fatalf("expected explicit static, got %v", vars[0].Lifetime)
	}
	if comp.Diagnostics().HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", comp.Diagnostics().Dump())
	}
}

func TestImplicitStaticInitializerWarned(t *testing.T) {
	comp := newComp(t)
	task := sem.NewSubroutine(comp.Root(), "t", sp(1), sem.LifetimeStatic)

	sem.VariablesFromSyntax(task.Body(), &syntax.DataDeclaration{
		Type: &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(10)},
		Declarators: []*syntax.Declarator{
			{Name: "x", NameSpan: sp(11), Init: &syntax.IntLiteral{Value: 1, Sp: sp(12)}},
		},
		Sp: sp(10),
	})

	warns := comp.Diagnostics().ByCode(diag.DeclStaticInitializerImplicit)
	if len(warns) != 1 || warns[0].Severity != diag.SevWarning {
		t.Fatalf("expected one implicit-static warning:\n%s", comp.Diagnostics().Dump())
	}
}

func TestConstRequiresInitializer(t *testing.T) {
	comp := newComp(t)

	sem.VariablesFromSyntax(comp.Root(), &syntax.DataDeclaration{
		Modifiers:   []syntax.DataModifier{{Kind: syntax.ModConst, Sp: sp(10)}},
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(11)},
		Declarators: []*syntax.Declarator{{Name: "k", NameSpan: sp(12)}},
		Sp:          sp(10),
	})

	if len(comp.Diagnostics().ByCode(diag.DeclConstVarNoInitializer)) != 1 {
		t.Fatalf("expected const-without-initializer diagnostic:\n%s", comp.Diagnostics().Dump())
	}
}

func TestNetInitializerRejectedInPackage(t *testing.T) {
	comp := newComp(t)
	pkg := sem.NewPackage(comp.Root(), "p", sp(1))

	decl := wireDecl("n", 10)
	decl.Declarators[0].Init = &syntax.IntLiteral{Value: 1, Sp: sp(13)}
	nets := sem.NetsFromSyntax(pkg.Body(), decl)
	nets[0].CheckInitializer()

	if len(comp.Diagnostics().ByCode(diag.DeclPackageNetInit)) != 1 {
		t.Fatalf("expected package-net-initializer diagnostic:\n%s", comp.Diagnostics().Dump())
	}
}

func TestVariableDeclarationRejectsDelay(t *testing.T) {
	comp := newComp(t)

	vars := sem.VariablesFromSyntax(comp.Root(), &syntax.DataDeclaration{
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(10)},
		Delay:       &syntax.DelayControl{Expr: &syntax.IntLiteral{Value: 3, Sp: sp(11)}, Sp: sp(11)},
		Declarators: []*syntax.Declarator{{Name: "x", NameSpan: sp(12)}},
		Sp:          sp(10),
	})

	diags := comp.Diagnostics().ByCode(diag.DeclVarDeclWithDelay)
	if len(diags) != 1 || diags[0].Primary != sp(11) {
		t.Fatalf("expected one delay diagnostic at the delay control:\n%s", comp.Diagnostics().Dump())
	}
	// The variable itself survives.
	if len(vars) != 1 || comp.Root().Find("x") != sem.Symbol(vars[0]) {
		t.Fatalf("declaration must not be dropped, got %+v", vars)
	}
}

func TestImplicitNetIsScalarWire(t *testing.T) {
	comp := newComp(t)
	def := sem.NewDefinition(comp.Root(), sem.DefModule, "m", sp(1))

	n := sem.NewImplicitNet(def.Body(), &syntax.IdentifierName{Name: "w", Sp: sp(10)})
	if !n.IsImplicit || n.NetKind != syntax.NetWire {
		t.Fatalf("implicit net must be a wire, got %+v", n)
	}
	if n.Type().Kind != types.KindLogic || n.Type().Width != 1 {
		t.Fatalf("implicit net must be scalar logic, got %s", n.Type())
	}

	// References resolve to it like any declared net.
	ca := sem.NewContinuousAssign(def.Body(), &syntax.ContinuousAssign{
		Assignment: &syntax.NameExpr{Name: "w", Sp: sp(11)},
		Sp:         sp(11),
	})
	if ca.Assignment().Bad() || ca.Assignment().Symbol != sem.Symbol(n) {
		t.Fatalf("reference must bind to the implicit net, got %+v", ca.Assignment())
	}
	if comp.Diagnostics().Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", comp.Diagnostics().Dump())
	}
}

func TestFormalArgumentMergesBodyVariable(t *testing.T) {
	comp := newComp(t)
	task := sem.NewSubroutine(comp.Root(), "t", sp(1), sem.LifetimeAutomatic)
	arg := sem.NewFormalArgument(task.Body(), "x", sp(2), syntax.DirIn, nil)
	if !arg.Type().IsError() {
		t.Fatalf("untyped port must start with the error placeholder, got %s", arg.Type())
	}

	block := sem.NewStatementBlock(task.Body(), "", sp(3), sem.LifetimeAutomatic)
	v := sem.VariablesFromSyntax(block.Body(), &syntax.DataDeclaration{
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(4)},
		Declarators: []*syntax.Declarator{{Name: "x", NameSpan: sp(5)}},
		Sp:          sp(4),
	})[0]

	if !arg.MergeVariable(v) {
		t.Fatalf("first merge must succeed")
	}
	if arg.MergedVariable() != v || arg.Type().Kind != types.KindInt {
		t.Fatalf("merge must link the variable and adopt its type, got %s", arg.Type())
	}
	if arg.MergeVariable(v) {
		t.Fatalf("second merge must be rejected")
	}
}

func TestNetDelayBindsLazily(t *testing.T) {
	comp := newComp(t)
	scope := comp.Root()
	sem.NetsFromSyntax(scope, wireDecl("clk", 5))

	decl := wireDecl("d", 10)
	decl.Delay = &syntax.DelayControl{Expr: &syntax.IntLiteral{Value: 2, Sp: sp(14)}, Sp: sp(14)}
	n := sem.NetsFromSyntax(scope, decl)[0]

	tc := n.Delay()
	if tc == nil || tc.Kind != sem.TimingDelay {
		t.Fatalf("expected a bound delay control, got %+v", tc)
	}
	if tc.Delay.Constant == nil || tc.Delay.Constant.Int != 2 {
		t.Fatalf("expected folded delay constant 2, got %+v", tc.Delay.Constant)
	}
	if again := n.Delay(); again != tc {
		t.Fatalf("delay must be computed once")
	}
}
