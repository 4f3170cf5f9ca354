package sem

import (
	"silica/internal/diag"
	"silica/internal/source"
	"silica/internal/syntax"
	"silica/internal/types"
)

// Modport is an interface view restricting the direction of its member
// signals. One modport declaration introduces one Modport per item, each
// owning a scope of ModportPort / MethodPrototype / ModportClocking members.
type Modport struct {
	symbolBase
	HasExports bool
	body       *Scope
}

// Body returns the modport's member scope.
func (m *Modport) Body() *Scope { return m.body }

func (m *Modport) serializeTo(w Writer) {
	if m.HasExports {
		w.Write("hasExports", true)
	}
}

// ModportPort is one signal port of a modport.
type ModportPort struct {
	symbolBase
	Direction syntax.Direction

	// Internal is the interface signal a named port resolved to; nil when
	// resolution failed or for explicit ports.
	Internal Symbol
	// Explicit is the bound connection expression of an explicit port.
	Explicit *Expression

	typ *types.Type
}

// Type returns the port's type; the error type when resolution failed.
func (p *ModportPort) Type() *types.Type { return p.typ }

func (p *ModportPort) serializeTo(w Writer) {
	w.Write("direction", p.Direction.String())
	w.Write("type", p.typ.String())
	if p.Internal != nil {
		w.WriteLink("internalSymbol", p.Internal)
	}
	if p.Explicit != nil && !p.Explicit.Bad() {
		w.Write("explicitConnection", describeExpr(p.Explicit))
	}
}

// ModportClocking is a clocking reference inside a modport.
type ModportClocking struct {
	symbolBase

	// Target is the resolved clocking block, nil on failure.
	Target Symbol
}

func (mc *ModportClocking) serializeTo(w Writer) {
	if mc.Target != nil {
		w.WriteLink("target", mc.Target)
	}
}

// allowedInModport reports whether a symbol kind may back a modport port.
func allowedInModport(kind SymbolKind) bool {
	switch kind {
	case KindNet, KindVariable, KindFormalArgument:
		return true
	}
	return false
}

// ModportsFromSyntax elaborates a modport declaration. The context's scope
// is the enclosing interface body; every named port resolves against it
// with the parent-scope walk suppressed.
func ModportsFromSyntax(ctx *Context, d *syntax.ModportDeclaration) []*Modport {
	comp := ctx.Compilation()
	results := make([]*Modport, 0, len(d.Items))
	for _, item := range d.Items {
		modport := &Modport{symbolBase: makeBase(KindModport, item.Name, item.NameSpan)}
		modport.setSyntax(item)
		modport.setAttributes(d.Attributes)
		modport.body = newScope(comp, modport)
		comp.register(modport)
		ctx.Scope.AddMember(modport)
		results = append(results, modport)

		for _, ports := range item.Ports {
			switch pl := ports.(type) {
			case *syntax.ModportSimplePortList:
				for _, simple := range pl.Ports {
					var mpp *ModportPort
					switch port := simple.(type) {
					case *syntax.ModportNamedPort:
						mpp = modportPortFromNamed(ctx, pl.Direction, port)
					case *syntax.ModportExplicitPort:
						mpp = modportPortFromExplicit(ctx, pl.Direction, port)
					}
					mpp.setAttributes(pl.Attributes)
					modport.body.AddMember(mpp)
				}
			case *syntax.ModportSubroutinePortList:
				if pl.IsExport {
					modport.HasExports = true
				}
				for _, sub := range pl.Names {
					proto := NewMethodPrototype(modport.body, sub.Name, sub.Sp, pl.IsExport)
					proto.setSyntax(sub)
					proto.setAttributes(pl.Attributes)
				}
			case *syntax.ModportClockingPort:
				mcs := modportClockingFromSyntax(ctx, pl)
				mcs.setAttributes(pl.Attributes)
				modport.body.AddMember(mcs)
			}
		}
	}
	return results
}

// modportPortFromNamed resolves a named modport port against the interface
// body. Resolution failures and wrong kinds leave the port with the error
// type; direction checks run on the resolved signal.
func modportPortFromNamed(ctx *Context, dir syntax.Direction, port *syntax.ModportNamedPort) *ModportPort {
	comp := ctx.Compilation()
	result := &ModportPort{
		symbolBase: makeBase(KindModportPort, port.Name, port.Sp),
		Direction:  dir,
	}
	result.setSyntax(port)
	comp.register(result)

	res := LookupUnqualified(ctx.Scope, port.Name, ctx.Location, NoParentScope)
	internal := res.Found
	if internal != nil {
		if internal.Kind() == KindSubroutine || internal.Kind() == KindMethodPrototype {
			ctx.AddDiag(diag.ModportExpectedImportExport, port.Sp).
				AddArg(port.Name).
				AddNote(diag.NoteDeclarationHere, internal.Location())
			internal = nil
		} else if !allowedInModport(internal.Kind()) {
			ctx.AddDiag(diag.ModportNotAllowedInModport, port.Sp).
				AddArg(port.Name).
				AddNote(diag.NoteDeclarationHere, internal.Location())
			internal = nil
		}
	} else {
		ReportUndeclared(ctx.Scope, port.Name, port.Sp, res)
	}

	result.Internal = internal
	if internal == nil {
		result.typ = types.Error()
		return result
	}
	result.typ = valueType(internal)

	// Check the connected symbol against the modport's direction.
	expr := &Expression{Kind: ExprNamed, Type: result.typ, Symbol: internal}
	checkModportDirection(ctx, dir, expr, port.Sp)
	return result
}

// modportPortFromExplicit binds an explicit-connection port and applies the
// same direction checks to the bound expression.
func modportPortFromExplicit(ctx *Context, dir syntax.Direction, port *syntax.ModportExplicitPort) *ModportPort {
	comp := ctx.Compilation()
	result := &ModportPort{
		symbolBase: makeBase(KindModportPort, port.Name, port.Sp),
		Direction:  dir,
	}
	result.setSyntax(port)
	comp.register(result)

	if port.Expr == nil {
		result.typ = types.Void()
		return result
	}

	extra := BindNonProcedural
	if dir == syntax.DirOut || dir == syntax.DirInOut {
		extra |= BindLValue
	}
	expr := ctx.Bind(port.Expr, extra)
	result.Explicit = expr
	if expr.Bad() {
		result.typ = types.Error()
		return result
	}
	result.typ = expr.Type

	checkModportDirection(ctx, dir, expr, port.Sp)
	return result
}

// checkModportDirection enforces direction capability: out/inout require an
// assignment target, ref requires ref-connectability.
func checkModportDirection(ctx *Context, dir syntax.Direction, expr *Expression, sp source.Span) {
	switch dir {
	case syntax.DirOut, syntax.DirInOut:
		if !expr.IsAssignable() {
			ctx.AddDiag(diag.ModportCannotDrive, sp).AddArg(dir.String())
		}
	case syntax.DirRef:
		if !expr.CanConnectToRef() {
			ctx.AddDiag(diag.ModportInvalidRefArg, sp)
		}
	}
}

// modportClockingFromSyntax resolves a clocking port. Anything other than a
// clocking block is rejected.
func modportClockingFromSyntax(ctx *Context, port *syntax.ModportClockingPort) *ModportClocking {
	mc := &ModportClocking{symbolBase: makeBase(KindModportClocking, port.Name, port.Sp)}
	mc.setSyntax(port)
	ctx.Compilation().register(mc)

	res := LookupUnqualified(ctx.Scope, port.Name, ctx.Location, NoParentScope)
	if res.Found == nil {
		ReportUndeclared(ctx.Scope, port.Name, port.Sp, res)
		return mc
	}
	if res.Found.Kind() != KindClockingBlock {
		ctx.AddDiag(diag.ModportNotAClockingBlock, port.Sp).
			AddArg(port.Name).
			AddNote(diag.NoteDeclarationHere, res.Found.Location())
		return mc
	}
	mc.Target = res.Found
	return mc
}

// valueType returns the data type carried by a value symbol, the error type
// for anything else.
func valueType(sym Symbol) *types.Type {
	switch s := sym.(type) {
	case *Net:
		return s.Type()
	case *Variable:
		return s.Type()
	case *FormalArgument:
		return s.Type()
	}
	return types.Error()
}
