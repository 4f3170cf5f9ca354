package main

import (
	"silica/internal/driver"
	"silica/internal/sem"
	"silica/internal/source"
	"silica/internal/syntax"
)

// showcaseJobs returns the built-in designs the elaborate command runs. Each
// design is a hand-built syntax fragment exercising a different slice of the
// engine; a real front end would produce equivalent trees from source text.
func showcaseJobs() []driver.Job {
	return []driver.Job{
		{Name: "handshake", Build: buildHandshake},
		{Name: "grammar", Build: buildGrammar},
	}
}

// spanGen hands out disjoint spans in a synthetic file so diagnostics stay
// distinguishable.
type spanGen struct {
	file source.FileID
	pos  uint32
}

func (g *spanGen) next(n uint32) source.Span {
	s := source.Span{File: g.file, Start: g.pos, End: g.pos + n}
	g.pos += n + 1
	return s
}

// buildHandshake elaborates an interface with nets, a clocking block, and a
// consumer modport, plus a passing static assertion.
func buildHandshake(comp *sem.Compilation) {
	g := &spanGen{file: 1}

	iface := sem.NewDefinition(comp.Root(), sem.DefInterface, "handshake_if", g.next(12))
	body := iface.Body()

	sem.NetsFromSyntax(body, &syntax.NetDeclaration{
		NetKind: syntax.NetWire,
		Type:    &syntax.TypeRef{Kind: syntax.TypeLogic, Sp: g.next(5)},
		Declarators: []*syntax.Declarator{
			{Name: "clk", NameSpan: g.next(3)},
			{Name: "valid", NameSpan: g.next(5)},
			{Name: "ready", NameSpan: g.next(5)},
		},
		Sp: g.next(4),
	})
	sem.VariablesFromSyntax(body, &syntax.DataDeclaration{
		Type: &syntax.TypeRef{Kind: syntax.TypeLogic, Width: 8, Sp: g.next(8)},
		Declarators: []*syntax.Declarator{
			{Name: "data", NameSpan: g.next(4)},
		},
		Sp: g.next(4),
	})

	sem.NewClockingBlock(body, &syntax.ClockingDeclaration{
		BlockName:   "cb",
		NameSpan:    g.next(2),
		Keyword:     syntax.ClockingDefault,
		KeywordSpan: g.next(7),
		Event: &syntax.EventControl{
			Edge: syntax.EdgePos,
			Expr: &syntax.NameExpr{Name: "clk", Sp: g.next(3)},
			Sp:   g.next(12),
		},
		Items: []syntax.ClockingItem{
			&syntax.DefaultSkewItem{
				Input: &syntax.ClockingSkew{
					Edge:  syntax.EdgeNone,
					Delay: &syntax.IntLiteral{Value: 1, Sp: g.next(2)},
					Sp:    g.next(8),
				},
				Sp: g.next(8),
			},
			&syntax.ClockingSignal{Direction: syntax.DirIn, Name: "sampled", Sp: g.next(7)},
		},
		Sp: g.next(20),
	})

	ctx := sem.NewContext(body, sem.LocationMax, sem.BindNone)
	sem.ModportsFromSyntax(&ctx, &syntax.ModportDeclaration{
		Items: []*syntax.ModportItem{
			{
				Name:     "consumer",
				NameSpan: g.next(8),
				Ports: []syntax.ModportPorts{
					&syntax.ModportSimplePortList{
						Direction: syntax.DirIn,
						Ports: []syntax.ModportSimplePort{
							&syntax.ModportNamedPort{Name: "valid", Sp: g.next(5)},
							&syntax.ModportNamedPort{Name: "data", Sp: g.next(4)},
						},
						Sp: g.next(10),
					},
					&syntax.ModportSimplePortList{
						Direction: syntax.DirOut,
						Ports: []syntax.ModportSimplePort{
							&syntax.ModportNamedPort{Name: "ready", Sp: g.next(5)},
						},
						Sp: g.next(10),
					},
					&syntax.ModportClockingPort{Name: "cb", Sp: g.next(2)},
				},
			},
		},
		Sp: g.next(20),
	})

	sem.NewElabSystemTask(body, &syntax.ElabSystemTask{
		TaskKind: syntax.TaskStaticAssert,
		Args: []syntax.Argument{
			&syntax.OrderedArgument{
				Expr: &syntax.BinaryExpr{
					Op:     syntax.OpEquality,
					Left:   &syntax.IntLiteral{Value: 8, Sp: g.next(1)},
					Right:  &syntax.IntLiteral{Value: 8, Sp: g.next(1)},
					OpSpan: g.next(2),
				},
				Sp: g.next(6),
			},
		},
		Sp: g.next(14),
	})
}

// buildGrammar elaborates a module with a randseq grammar, a sequential
// primitive, and an informational elaboration task.
func buildGrammar(comp *sem.Compilation) {
	g := &spanGen{file: 2}

	mod := sem.NewDefinition(comp.Root(), sem.DefModule, "stim_gen", g.next(8))
	body := mod.Body()

	sem.GenvarsFromSyntax(body, &syntax.GenvarDeclaration{
		Names: []*syntax.IdentifierName{{Name: "gi", Sp: g.next(2)}},
		Sp:    g.next(9),
	})
	sem.VariablesFromSyntax(body, &syntax.DataDeclaration{
		Type: &syntax.TypeRef{Kind: syntax.TypeInt, Sp: g.next(3)},
		Declarators: []*syntax.Declarator{
			{Name: "seed", NameSpan: g.next(4), Init: &syntax.IntLiteral{Value: 42, Sp: g.next(2)}},
		},
		Sp: g.next(12),
	})
	sem.NewContinuousAssign(body, &syntax.ContinuousAssign{
		Assignment: &syntax.NameExpr{Name: "seed", Sp: g.next(4)},
		Sp:         g.next(12),
	})

	// value : two alternatives; top references it twice so elaboration
	// synthesizes a two-element result array per rule.
	sem.NewProduction(body, &syntax.Production{
		Name:       "value",
		NameSpan:   g.next(5),
		ReturnType: &syntax.TypeRef{Kind: syntax.TypeInt, Sp: g.next(3)},
		Rules: []*syntax.ProductionRule{
			{Sp: g.next(6)},
			{Weight: &syntax.IntLiteral{Value: 3, Sp: g.next(1)}, Sp: g.next(6)},
		},
		Sp: g.next(24),
	})
	sem.NewProduction(body, &syntax.Production{
		Name:     "top",
		NameSpan: g.next(3),
		Rules: []*syntax.ProductionRule{
			{
				Prods: []syntax.Prod{
					&syntax.ProdItem{Name: "value", Sp: g.next(5)},
					&syntax.ProdRepeat{
						Count: &syntax.IntLiteral{Value: 4, Sp: g.next(1)},
						Item:  &syntax.ProdItem{Name: "value", Sp: g.next(5)},
						Sp:    g.next(14),
					},
				},
				Sp: g.next(28),
			},
		},
		Sp: g.next(34),
	})

	sem.NewPrimitive(comp.Root(), &syntax.UdpDeclaration{
		Name:     "latch_cell",
		NameSpan: g.next(10),
		PortList: &syntax.NonAnsiUdpPortList{
			Names: []*syntax.IdentifierName{
				{Name: "q", Sp: g.next(1)},
				{Name: "clk", Sp: g.next(3)},
				{Name: "d", Sp: g.next(1)},
			},
			Sp: g.next(12),
		},
		Body: &syntax.UdpBody{
			PortDecls: []syntax.UdpPortDecl{
				&syntax.UdpOutputPortDecl{Name: "q", NameSpan: g.next(1), HasKeyword: true, Reg: true, RegSpan: g.next(3), Sp: g.next(14)},
				&syntax.UdpInputPortDecl{
					Names: []*syntax.IdentifierName{
						{Name: "clk", Sp: g.next(3)},
						{Name: "d", Sp: g.next(1)},
					},
					Sp: g.next(14),
				},
			},
			Initial: &syntax.UdpInitialStmt{
				Name:     "q",
				NameSpan: g.next(1),
				Value:    &syntax.IntLiteral{Value: 0, Sp: g.next(1)},
				Sp:       g.next(14),
			},
			Sp: g.next(30),
		},
		Sp: g.next(40),
	})

	sem.NewElabSystemTask(body, &syntax.ElabSystemTask{
		TaskKind: syntax.TaskInfo,
		Args: []syntax.Argument{
			&syntax.OrderedArgument{
				Expr: &syntax.StringLiteral{Value: "stimulus grammar elaborated", Sp: g.next(28)},
				Sp:   g.next(28),
			},
		},
		Sp: g.next(32),
	})
}
