package sem

import (
	"fmt"

	"fortio.org/safecast"

	"silica/internal/diag"
	"silica/internal/source"
)

// Scope is an ordered, name-indexed container of member symbols. Member
// order is exactly syntactic declaration order; that order is load-bearing
// for forward-reference rules.
type Scope struct {
	comp    *Compilation
	owner   Symbol // the scope-owning symbol, nil only for the root scope
	members []Symbol
	nameMap map[string]Symbol
	next    uint32 // monotonically increasing insertion counter
}

func newScope(comp *Compilation, owner Symbol) *Scope {
	return &Scope{
		comp:    comp,
		owner:   owner,
		nameMap: make(map[string]Symbol),
	}
}

// Compilation returns the owning compilation.
func (s *Scope) Compilation() *Compilation { return s.comp }

// Owner returns the symbol this scope belongs to, nil for the root.
func (s *Scope) Owner() Symbol { return s.owner }

// Members returns the member list in declaration order. Callers must not
// modify the returned slice.
func (s *Scope) Members() []Symbol { return s.members }

// Find returns the member with the given name, or nil. Duplicate names keep
// the first declaration in the map; later duplicates stay reachable through
// Members.
func (s *Scope) Find(name string) Symbol {
	return s.nameMap[name]
}

// AddMember appends sym, assigns the next LookupLocation and indexes it by
// name. A name collision never silently overwrites: it is diagnosed with a
// note at the first definition and both symbols remain in the member list.
func (s *Scope) AddMember(sym Symbol) {
	b := sym.base()
	if b.scope != nil {
		panic(fmt.Sprintf("sem: symbol %q already belongs to a scope", b.name))
	}
	b.scope = s
	b.index = s.next
	if _, err := safecast.Conv[uint32](uint64(s.next) + 1); err != nil {
		panic(fmt.Errorf("sem: scope location counter overflow: %w", err))
	}
	s.next++
	s.members = append(s.members, sym)

	if b.name == "" {
		return
	}
	if prev, ok := s.nameMap[b.name]; ok {
		s.AddDiag(diag.LookupDuplicateSymbol, b.loc).
			AddArg(b.name).
			AddNote(diag.NotePreviousDefinition, prev.Location())
		return
	}
	s.nameMap[b.name] = sym
}

// IsProceduralContext reports whether declarations here live in procedural
// code, which is where automatic lifetimes are legal.
func (s *Scope) IsProceduralContext() bool {
	if s.owner == nil {
		return false
	}
	switch s.owner.Kind() {
	case KindStatementBlock, KindSubroutine, KindMethodPrototype:
		return true
	}
	return false
}

// AddDiag records an error-severity diagnostic anchored at span and returns
// a handle for arguments and notes.
func (s *Scope) AddDiag(code diag.Code, span source.Span) *diag.Handle {
	return s.comp.AddDiag(diag.SevError, code, span)
}

// AddWarning records a warning-severity diagnostic.
func (s *Scope) AddWarning(code diag.Code, span source.Span) *diag.Handle {
	return s.comp.AddDiag(diag.SevWarning, code, span)
}

// LookupLocation is a totally ordered token within a scope, monotonic with
// declaration order. It decides whether a name is visible at a given point.
type LookupLocation struct {
	scope *Scope
	index uint32
}

// LocationBefore anchors a location just before the symbol's own
// declaration; the symbol itself is not yet visible there.
func LocationBefore(sym Symbol) LookupLocation {
	b := sym.base()
	return LookupLocation{scope: b.requireParent(), index: b.index}
}

// LocationAfter anchors a location just after the symbol's declaration.
func LocationAfter(sym Symbol) LookupLocation {
	b := sym.base()
	return LookupLocation{scope: b.requireParent(), index: b.index + 1}
}

// LocationMax sees every member of every scope.
var LocationMax = LookupLocation{scope: nil, index: ^uint32(0)}

// sees reports whether a symbol declared at the given index of the given
// scope is visible from this location. Ordering only constrains members of
// the anchored scope itself; symbols of enclosing scopes are visible
// unconditionally.
func (l LookupLocation) sees(sym Symbol) bool {
	b := sym.base()
	if l.scope == nil || b.scope != l.scope {
		return true
	}
	return b.index < l.index
}
