package sem

import (
	"silica/internal/source"
	"silica/internal/syntax"
)

// SymbolKind classifies the semantic meaning of a symbol. The set is closed;
// dispatch happens by type switch over the concrete symbol types, with the
// kind tag kept for cheap checks and serialization.
type SymbolKind uint8

const (
	KindInvalid SymbolKind = iota
	KindRoot
	KindPackage
	KindDefinition
	KindStatementBlock
	KindSubroutine
	KindMethodPrototype
	KindNet
	KindVariable
	KindFormalArgument
	KindEmptyMember
	KindGenvar
	KindContinuousAssign
	KindModport
	KindModportPort
	KindModportClocking
	KindClockingBlock
	KindSequence
	KindProperty
	KindRandSeqProduction
	KindElabSystemTask
	KindPrimitive
	KindPrimitivePort
)

func (k SymbolKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindPackage:
		return "package"
	case KindDefinition:
		return "definition"
	case KindStatementBlock:
		return "statement block"
	case KindSubroutine:
		return "subroutine"
	case KindMethodPrototype:
		return "method prototype"
	case KindNet:
		return "net"
	case KindVariable:
		return "variable"
	case KindFormalArgument:
		return "formal argument"
	case KindEmptyMember:
		return "empty member"
	case KindGenvar:
		return "genvar"
	case KindContinuousAssign:
		return "continuous assign"
	case KindModport:
		return "modport"
	case KindModportPort:
		return "modport port"
	case KindModportClocking:
		return "modport clocking"
	case KindClockingBlock:
		return "clocking block"
	case KindSequence:
		return "sequence"
	case KindProperty:
		return "property"
	case KindRandSeqProduction:
		return "randseq production"
	case KindElabSystemTask:
		return "elab system task"
	case KindPrimitive:
		return "primitive"
	case KindPrimitivePort:
		return "primitive port"
	default:
		return "invalid"
	}
}

// Symbol is a named semantic entity produced from one declaration. All
// symbols live for the lifetime of their Compilation; cross-references are
// plain non-owning pointers.
type Symbol interface {
	Kind() SymbolKind
	Name() string
	Location() source.Span
	// Syntax returns the originating syntax node, nil for synthesized
	// symbols.
	Syntax() syntax.Node
	// Parent returns the scope the symbol was registered into, nil until
	// AddMember runs.
	Parent() *Scope
	Attributes() []*syntax.Attribute

	base() *symbolBase
	serializeTo(w Writer)
}

// symbolBase carries the state shared by every symbol variant. Concrete
// symbols embed it and gain the Symbol interface for free except for
// serializeTo.
type symbolBase struct {
	kind  SymbolKind
	name  string
	loc   source.Span
	stx   syntax.Node
	scope *Scope // parent scope, set by AddMember
	index uint32 // insertion index within parent, the LookupLocation token
	attrs []*syntax.Attribute
}

func makeBase(kind SymbolKind, name string, loc source.Span) symbolBase {
	return symbolBase{kind: kind, name: name, loc: loc}
}

func (b *symbolBase) Kind() SymbolKind                { return b.kind }
func (b *symbolBase) Name() string                    { return b.name }
func (b *symbolBase) Location() source.Span           { return b.loc }
func (b *symbolBase) Syntax() syntax.Node             { return b.stx }
func (b *symbolBase) Parent() *Scope                  { return b.scope }
func (b *symbolBase) Attributes() []*syntax.Attribute { return b.attrs }
func (b *symbolBase) base() *symbolBase               { return b }

func (b *symbolBase) setSyntax(n syntax.Node)             { b.stx = n }
func (b *symbolBase) setAttributes(a []*syntax.Attribute) { b.attrs = a }

// requireParent returns the parent scope, panicking if the symbol was never
// registered. A missing parent on a lazily-bound symbol is a design bug, not
// user input.
func (b *symbolBase) requireParent() *Scope {
	if b.scope == nil {
		panic("sem: symbol " + b.name + " forced before being added to a scope")
	}
	return b.scope
}
