package sem

import (
	"silica/internal/diag"
	"silica/internal/source"
	"silica/internal/syntax"
	"silica/internal/types"
)

// VariableFlags encode misc attributes for quick checks.
type VariableFlags uint8

const (
	VarFlagConst VariableFlags = 1 << iota
	VarFlagCompilerGenerated
)

// Variable is a data object with a resolved lifetime.
type Variable struct {
	symbolBase
	Lifetime VariableLifetime
	Flags    VariableFlags

	typ        *types.Type
	initSyntax syntax.Expr
	init       Lazy[*Expression]
}

// Type returns the variable's declared type. Failed declarations carry the
// error type, never nil.
func (v *Variable) Type() *types.Type { return v.typ }

// SetType fixes the declared type; used by factories and for synthesized
// variables.
func (v *Variable) SetType(t *types.Type) { v.typ = t }

// Initializer lazily binds the declared initializer, nil when none was
// written. The binding context sits just after the symbol so the
// initializer may reference it.
func (v *Variable) Initializer() *Expression {
	return v.init.Get(v, func() *Expression {
		if v.initSyntax == nil {
			return nil
		}
		ctx := ContextAfter(v, BindNone)
		return ctx.Bind(v.initSyntax, BindNone)
	})
}

func (v *Variable) serializeTo(w Writer) {
	w.Write("type", v.typ.String())
	w.Write("lifetime", v.Lifetime.String())
	var flags string
	if v.Flags&VarFlagConst != 0 {
		flags = "const"
	}
	if v.Flags&VarFlagCompilerGenerated != 0 {
		if flags != "" {
			flags += ","
		}
		flags += "compiler_generated"
	}
	if flags != "" {
		w.Write("flags", flags)
	}
	if init := v.Initializer(); init != nil && !init.Bad() {
		w.Write("initializer", describeExpr(init))
	}
}

// newVariable allocates an unregistered variable.
func newVariable(comp *Compilation, name string, loc source.Span, lifetime VariableLifetime) *Variable {
	v := &Variable{symbolBase: makeBase(KindVariable, name, loc), Lifetime: lifetime}
	v.typ = types.Error()
	comp.register(v)
	return v
}

// VariablesFromSyntax elaborates one data declaration into its variables,
// registering each into scope in declarator order.
//
// Lifetime rules: an explicit static is legal anywhere; an explicit
// automatic outside a procedural context is diagnosed and downgraded to
// static. Without an explicit qualifier the enclosing scope's default
// applies. A const declarator without an initializer and a defaulted-static
// initializer inside a procedural scope are diagnosed per declarator.
func VariablesFromSyntax(scope *Scope, d *syntax.DataDeclaration) []*Variable {
	comp := scope.comp
	isConst := false
	inProcedural := scope.IsProceduralContext()
	explicit := false
	lifetime := LifetimeStatic

	for _, mod := range d.Modifiers {
		switch mod.Kind {
		case syntax.ModVar:
		case syntax.ModConst:
			isConst = true
		case syntax.ModStatic:
			// Static lifetimes are allowed in all contexts.
			lifetime = LifetimeStatic
			explicit = true
		case syntax.ModAutomatic:
			lifetime = LifetimeAutomatic
			explicit = true
			if !inProcedural {
				scope.AddDiag(diag.DeclAutomaticNotAllowed, mod.Sp)
				lifetime = LifetimeStatic
			}
		}
	}
	if !explicit {
		lifetime = defaultLifetime(scope)
	}

	// Delay controls belong on nets; a variable declaration keeps its
	// declarators but loses the delay.
	if d.Delay != nil {
		scope.AddDiag(diag.DeclVarDeclWithDelay, d.Delay.Sp)
	}

	declType := resolveTypeRef(d.Type, types.Logic())

	vars := make([]*Variable, 0, len(d.Declarators))
	for _, decl := range d.Declarators {
		v := newVariable(comp, decl.Name, decl.NameSpan, lifetime)
		v.typ = declType
		v.setSyntax(d)
		v.setAttributes(d.Attributes)
		v.initSyntax = decl.Init
		if isConst {
			v.Flags |= VarFlagConst
		}
		scope.AddMember(v)
		vars = append(vars, v)

		// A static variable with an initializer in a procedural scope
		// requires the static keyword to be written out.
		if lifetime == LifetimeStatic && !explicit && decl.Init != nil && inProcedural {
			if comp.opts.LintImplicitStatic {
				scope.AddWarning(diag.DeclStaticInitializerImplicit, decl.NameSpan)
			}
		}

		if isConst && decl.Init == nil {
			scope.AddDiag(diag.DeclConstVarNoInitializer, decl.NameSpan).AddArg(decl.Name)
		}
	}
	return vars
}

// Net is a net declaration entry.
type Net struct {
	symbolBase
	NetKind       syntax.NetKind
	ExpansionHint syntax.ExpansionHint
	IsImplicit    bool

	typ        *types.Type
	initSyntax syntax.Expr
	init       Lazy[*Expression]
	delay      Lazy[*TimingControl]
}

// Type returns the net's data type.
func (n *Net) Type() *types.Type { return n.typ }

// Delay lazily binds the declaration's delay control, nil when none was
// written. Bound before this symbol in a non-procedural context.
func (n *Net) Delay() *TimingControl {
	return n.delay.Get(n, func() *TimingControl {
		decl, ok := n.stx.(*syntax.NetDeclaration)
		if !ok || decl.Delay == nil {
			return nil
		}
		ctx := ContextBefore(n, BindNonProcedural)
		return ctx.BindTimingControl(decl.Delay)
	})
}

// Initializer lazily binds the net's initializer, nil when none.
func (n *Net) Initializer() *Expression {
	return n.init.Get(n, func() *Expression {
		if n.initSyntax == nil {
			return nil
		}
		ctx := ContextAfter(n, BindNonProcedural)
		return ctx.Bind(n.initSyntax, BindNone)
	})
}

// CheckInitializer rejects net initializers inside packages.
func (n *Net) CheckInitializer() {
	init := n.Initializer()
	if init == nil || init.Bad() {
		return
	}
	parent := n.Parent()
	if parent != nil && parent.owner != nil && parent.owner.Kind() == KindPackage {
		parent.AddDiag(diag.DeclPackageNetInit, init.Syntax.Span())
	}
}

func (n *Net) serializeTo(w Writer) {
	w.Write("netKind", n.NetKind.String())
	w.Write("type", n.typ.String())
	if n.IsImplicit {
		w.Write("isImplicit", true)
	}
	switch n.ExpansionHint {
	case syntax.ExpansionVectored:
		w.Write("expansionHint", "vectored")
	case syntax.ExpansionScalared:
		w.Write("expansionHint", "scalared")
	}
	if delay := n.Delay(); delay != nil && !delay.Bad() {
		w.Write("delay", describeExpr(delay.Delay))
	}
}

// NetsFromSyntax elaborates one net declaration into its nets, registering
// each into scope in declarator order.
func NetsFromSyntax(scope *Scope, d *syntax.NetDeclaration) []*Net {
	comp := scope.comp
	declType := resolveTypeRef(d.Type, types.Logic())

	nets := make([]*Net, 0, len(d.Declarators))
	for _, decl := range d.Declarators {
		n := &Net{
			symbolBase:    makeBase(KindNet, decl.Name, decl.NameSpan),
			NetKind:       d.NetKind,
			ExpansionHint: d.ExpansionHint,
		}
		n.typ = declType
		n.setSyntax(d)
		n.setAttributes(d.Attributes)
		n.initSyntax = decl.Init
		comp.register(n)
		scope.AddMember(n)
		nets = append(nets, n)
	}
	return nets
}

// NewImplicitNet creates an implicit net for a bare identifier reference.
func NewImplicitNet(scope *Scope, name *syntax.IdentifierName) *Net {
	n := &Net{
		symbolBase: makeBase(KindNet, name.Name, name.Sp),
		NetKind:    syntax.NetWire,
		IsImplicit: true,
	}
	n.typ = types.Logic()
	n.setSyntax(name)
	scope.comp.register(n)
	scope.AddMember(n)
	return n
}

// FormalArgument is a subroutine or assertion port.
type FormalArgument struct {
	symbolBase
	Direction syntax.Direction
	Lifetime  VariableLifetime
	Flags     VariableFlags

	typ *types.Type

	// mergedVar links a non-ANSI port to the variable declaration that
	// completes it; non-owning.
	mergedVar *Variable
}

// NewFormalArgument creates a formal argument, registered into scope.
func NewFormalArgument(scope *Scope, name string, loc source.Span, dir syntax.Direction, t *types.Type) *FormalArgument {
	a := &FormalArgument{
		symbolBase: makeBase(KindFormalArgument, name, loc),
		Direction:  dir,
		Lifetime:   defaultLifetime(scope),
	}
	if t == nil {
		t = types.Error()
	}
	a.typ = t
	scope.comp.register(a)
	scope.AddMember(a)
	return a
}

// Type returns the argument's type.
func (a *FormalArgument) Type() *types.Type { return a.typ }

// MergedVariable returns the merged variable link, nil when unmerged.
func (a *FormalArgument) MergedVariable() *Variable { return a.mergedVar }

// MergeVariable links a body variable declaration into this port. Only one
// merge is allowed; a second returns false.
func (a *FormalArgument) MergeVariable(v *Variable) bool {
	if a.mergedVar != nil {
		return false
	}
	a.mergedVar = v
	a.typ = v.Type()
	return true
}

func (a *FormalArgument) serializeTo(w Writer) {
	w.Write("direction", a.Direction.String())
	w.Write("type", a.typ.String())
	w.Write("lifetime", a.Lifetime.String())
	if a.mergedVar != nil {
		w.WriteLink("mergedVariable", a.mergedVar)
	}
}
