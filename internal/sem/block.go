package sem

import (
	"silica/internal/source"
)

// VariableLifetime is the resolved storage lifetime of a data object.
type VariableLifetime uint8

const (
	LifetimeStatic VariableLifetime = iota
	LifetimeAutomatic
)

func (l VariableLifetime) String() string {
	if l == LifetimeAutomatic {
		return "automatic"
	}
	return "static"
}

// Root is the invisible top-level symbol owning the compilation's root
// scope.
type Root struct {
	symbolBase
	body *Scope
}

// Body returns the root scope.
func (r *Root) Body() *Scope { return r.body }

func (r *Root) serializeTo(w Writer) {}

// Package is a package declaration; its members never see enclosing scopes.
type Package struct {
	symbolBase
	body *Scope
}

// NewPackage creates a package symbol, registered into parent.
func NewPackage(parent *Scope, name string, loc source.Span) *Package {
	p := &Package{symbolBase: makeBase(KindPackage, name, loc)}
	p.body = newScope(parent.comp, p)
	parent.comp.register(p)
	parent.AddMember(p)
	return p
}

// Body returns the package scope.
func (p *Package) Body() *Scope { return p.body }

func (p *Package) serializeTo(w Writer) {}

// DefinitionKind distinguishes module-like definitions.
type DefinitionKind uint8

const (
	DefModule DefinitionKind = iota
	DefInterface
	DefProgram
	DefGenerateBlock
)

func (k DefinitionKind) String() string {
	switch k {
	case DefInterface:
		return "interface"
	case DefProgram:
		return "program"
	case DefGenerateBlock:
		return "generate block"
	default:
		return "module"
	}
}

// Definition is an elaborated module, interface, program, or generate block
// body.
type Definition struct {
	symbolBase
	DefKind DefinitionKind
	body    *Scope
}

// NewDefinition creates a definition symbol, registered into parent.
func NewDefinition(parent *Scope, kind DefinitionKind, name string, loc source.Span) *Definition {
	d := &Definition{symbolBase: makeBase(KindDefinition, name, loc), DefKind: kind}
	d.body = newScope(parent.comp, d)
	parent.comp.register(d)
	parent.AddMember(d)
	return d
}

// Body returns the definition's member scope.
func (d *Definition) Body() *Scope { return d.body }

func (d *Definition) serializeTo(w Writer) {
	w.Write("definitionKind", d.DefKind.String())
}

// StatementBlock is a begin/end block scope with a declared default
// lifetime for its data declarations.
type StatementBlock struct {
	symbolBase
	DefaultLifetime VariableLifetime
	body            *Scope
}

// NewStatementBlock creates a block symbol, registered into parent.
func NewStatementBlock(parent *Scope, name string, loc source.Span, lifetime VariableLifetime) *StatementBlock {
	b := &StatementBlock{
		symbolBase:      makeBase(KindStatementBlock, name, loc),
		DefaultLifetime: lifetime,
	}
	b.body = newScope(parent.comp, b)
	parent.comp.register(b)
	parent.AddMember(b)
	return b
}

// Body returns the block scope.
func (b *StatementBlock) Body() *Scope { return b.body }

func (b *StatementBlock) serializeTo(w Writer) {
	w.Write("defaultLifetime", b.DefaultLifetime.String())
}

// Subroutine is a task or function body.
type Subroutine struct {
	symbolBase
	DefaultLifetime VariableLifetime
	body            *Scope
}

// NewSubroutine creates a subroutine symbol, registered into parent.
func NewSubroutine(parent *Scope, name string, loc source.Span, lifetime VariableLifetime) *Subroutine {
	s := &Subroutine{
		symbolBase:      makeBase(KindSubroutine, name, loc),
		DefaultLifetime: lifetime,
	}
	s.body = newScope(parent.comp, s)
	parent.comp.register(s)
	parent.AddMember(s)
	return s
}

// Body returns the subroutine scope.
func (s *Subroutine) Body() *Scope { return s.body }

func (s *Subroutine) serializeTo(w Writer) {
	w.Write("defaultLifetime", s.DefaultLifetime.String())
}

// MethodPrototype is a prototype declaration; its formals are always
// automatic.
type MethodPrototype struct {
	symbolBase
	IsExport bool
	body     *Scope
}

// NewMethodPrototype creates a prototype symbol, registered into parent.
func NewMethodPrototype(parent *Scope, name string, loc source.Span, isExport bool) *MethodPrototype {
	m := &MethodPrototype{symbolBase: makeBase(KindMethodPrototype, name, loc), IsExport: isExport}
	m.body = newScope(parent.comp, m)
	parent.comp.register(m)
	parent.AddMember(m)
	return m
}

// Body returns the prototype scope.
func (m *MethodPrototype) Body() *Scope { return m.body }

func (m *MethodPrototype) serializeTo(w Writer) {
	w.Write("isExport", m.IsExport)
}

// defaultLifetime resolves the default lifetime for declarations in scope:
// blocks and subroutines contribute their declared default, method
// prototypes are always automatic, anything else is static.
func defaultLifetime(scope *Scope) VariableLifetime {
	if scope.owner == nil {
		return LifetimeStatic
	}
	switch owner := scope.owner.(type) {
	case *StatementBlock:
		return owner.DefaultLifetime
	case *Subroutine:
		return owner.DefaultLifetime
	case *MethodPrototype:
		return LifetimeAutomatic
	default:
		return LifetimeStatic
	}
}
