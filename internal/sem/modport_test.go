package sem_test

import (
	"testing"

	"silica/internal/diag"
	"silica/internal/sem"
	"silica/internal/syntax"
	"silica/internal/types"
)

func elaborateModport(comp *sem.Compilation, iface *sem.Definition, item *syntax.ModportItem) *sem.Modport {
	ctx := sem.NewContext(iface.Body(), sem.LocationMax, sem.BindNone)
	return sem.ModportsFromSyntax(&ctx, &syntax.ModportDeclaration{
		Items: []*syntax.ModportItem{item},
		Sp:    sp(90),
	})[0]
}

func TestModportResolvesAgainstInterfaceBodyOnly(t *testing.T) {
	comp := newComp(t)
	// The net exists, but outside the interface: the port must not see it.
	sem.NetsFromSyntax(comp.Root(), wireDecl("valid", 5))
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))

	elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirIn,
				Ports:     []syntax.ModportSimplePort{&syntax.ModportNamedPort{Name: "valid", Sp: sp(11)}},
				Sp:        sp(11),
			},
		},
	})

	if len(comp.Diagnostics().ByCode(diag.LookupUndeclared)) != 1 {
		t.Fatalf("expected undeclared diagnostic for out-of-interface signal:\n%s", comp.Diagnostics().Dump())
	}
}

func TestModportSubroutineReferenceRejected(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))
	sub := sem.NewSubroutine(iface.Body(), "push", sp(2), sem.LifetimeAutomatic)

	elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirIn,
				Ports:     []syntax.ModportSimplePort{&syntax.ModportNamedPort{Name: "push", Sp: sp(11)}},
				Sp:        sp(11),
			},
		},
	})

	diags := comp.Diagnostics().ByCode(diag.ModportExpectedImportExport)
	if len(diags) != 1 {
		t.Fatalf("expected import/export diagnostic:\n%s", comp.Diagnostics().Dump())
	}
	if len(diags[0].Notes) != 1 || diags[0].Notes[0].Span != sub.Location() {
		t.Fatalf("note must point at the subroutine, got %+v", diags[0].Notes)
	}
}

func TestModportOutputMustBeDrivable(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))
	sem.VariablesFromSyntax(iface.Body(), &syntax.DataDeclaration{
		Modifiers: []syntax.DataModifier{{Kind: syntax.ModConst, Sp: sp(2)}},
		Type:      &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(3)},
		Declarators: []*syntax.Declarator{
			{Name: "limit", NameSpan: sp(4), Init: &syntax.IntLiteral{Value: 7, Sp: sp(5)}},
		},
		Sp: sp(2),
	})

	elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirOut,
				Ports:     []syntax.ModportSimplePort{&syntax.ModportNamedPort{Name: "limit", Sp: sp(11)}},
				Sp:        sp(11),
			},
		},
	})

	if len(comp.Diagnostics().ByCode(diag.ModportCannotDrive)) != 1 {
		t.Fatalf("expected cannot-drive diagnostic for const output:\n%s", comp.Diagnostics().Dump())
	}
}

func TestModportRefPortRejectsNets(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))
	sem.NetsFromSyntax(iface.Body(), wireDecl("sig", 2))

	elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirRef,
				Ports:     []syntax.ModportSimplePort{&syntax.ModportNamedPort{Name: "sig", Sp: sp(11)}},
				Sp:        sp(11),
			},
		},
	})

	if len(comp.Diagnostics().ByCode(diag.ModportInvalidRefArg)) != 1 {
		t.Fatalf("expected invalid-ref diagnostic for a net:\n%s", comp.Diagnostics().Dump())
	}
}

func TestModportExplicitPortBindsConnection(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))
	sem.VariablesFromSyntax(iface.Body(), &syntax.DataDeclaration{
		Type:        &syntax.TypeRef{Kind: syntax.TypeInt, Sp: sp(2)},
		Declarators: []*syntax.Declarator{{Name: "count", NameSpan: sp(3)}},
		Sp:          sp(2),
	})

	mp := elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirOut,
				Ports: []syntax.ModportSimplePort{
					&syntax.ModportExplicitPort{
						Name: "cnt",
						Expr: &syntax.NameExpr{Name: "count", Sp: sp(11)},
						Sp:   sp(11),
					},
				},
				Sp: sp(11),
			},
		},
	})

	if comp.Diagnostics().Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", comp.Diagnostics().Dump())
	}
	port, ok := mp.Body().Find("cnt").(*sem.ModportPort)
	if !ok || port.Explicit == nil || port.Explicit.Bad() {
		t.Fatalf("explicit port must carry its bound connection, got %+v", port)
	}
	if port.Internal != nil {
		t.Fatalf("explicit port must not link an internal signal")
	}
	if port.Type().Kind != types.KindInt {
		t.Fatalf("port type must come from the connection, got %s", port.Type())
	}
}

func TestModportExplicitOutputMustBeDrivable(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))

	mp := elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirOut,
				Ports: []syntax.ModportSimplePort{
					&syntax.ModportExplicitPort{
						Name: "one",
						Expr: &syntax.IntLiteral{Value: 1, Sp: sp(11)},
						Sp:   sp(11),
					},
					// Unconnected: legal, void-typed, no direction check.
					&syntax.ModportExplicitPort{Name: "nc", Sp: sp(12)},
				},
				Sp: sp(11),
			},
		},
	})

	if len(comp.Diagnostics().ByCode(diag.ModportCannotDrive)) != 1 {
		t.Fatalf("expected cannot-drive diagnostic for a literal connection:\n%s", comp.Diagnostics().Dump())
	}
	nc, ok := mp.Body().Find("nc").(*sem.ModportPort)
	if !ok || !nc.Type().IsVoid() || nc.Explicit != nil {
		t.Fatalf("unconnected explicit port must be void-typed, got %+v", nc)
	}
}

func TestModportClockingPortMustNameClockingBlock(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))
	sem.NetsFromSyntax(iface.Body(), wireDecl("clk", 2))

	elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportClockingPort{Name: "clk", Sp: sp(11)},
		},
	})

	if len(comp.Diagnostics().ByCode(diag.ModportNotAClockingBlock)) != 1 {
		t.Fatalf("expected not-a-clocking-block diagnostic:\n%s", comp.Diagnostics().Dump())
	}
}

func TestModportExportsAndPrototypes(t *testing.T) {
	comp := newComp(t)
	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "bus_if", sp(1))
	sem.NetsFromSyntax(iface.Body(), wireDecl("valid", 2))

	mp := elaborateModport(comp, iface, &syntax.ModportItem{
		Name:     "mp",
		NameSpan: sp(10),
		Ports: []syntax.ModportPorts{
			&syntax.ModportSimplePortList{
				Direction: syntax.DirIn,
				Ports:     []syntax.ModportSimplePort{&syntax.ModportNamedPort{Name: "valid", Sp: sp(11)}},
				Sp:        sp(11),
			},
			&syntax.ModportSubroutinePortList{
				IsExport: true,
				Names:    []*syntax.ModportNamedPort{{Name: "flush", Sp: sp(12)}},
				Sp:       sp(12),
			},
		},
	})

	if !mp.HasExports {
		t.Fatalf("export list must set HasExports")
	}
	proto, ok := mp.Body().Find("flush").(*sem.MethodPrototype)
	if !ok || !proto.IsExport {
		t.Fatalf("expected an exported method prototype, got %v", mp.Body().Find("flush"))
	}
	port, ok := mp.Body().Find("valid").(*sem.ModportPort)
	if !ok || port.Internal == nil || port.Internal.Name() != "valid" {
		t.Fatalf("named port must link its interface signal, got %+v", port)
	}
	if comp.Diagnostics().HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", comp.Diagnostics().Dump())
	}
}
