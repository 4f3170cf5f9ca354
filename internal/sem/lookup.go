package sem

import (
	"silica/internal/diag"
	"silica/internal/source"
)

// LookupFlags adjust name resolution for construct-specific rules.
type LookupFlags uint8

const (
	LookupDefault LookupFlags = 0
	// AllowDeclaredAfter lifts the declared-before-use requirement; randseq
	// productions resolve mutually recursive callees with it.
	AllowDeclaredAfter LookupFlags = 1 << iota
	// NoParentScope suppresses walking to the enclosing scope on a miss;
	// modports resolve their signals against the interface body only.
	NoParentScope
)

// LookupResult carries the outcome of an unqualified lookup. Found is nil on
// failure; Hidden names a same-named symbol that exists in the scope but is
// not yet visible at the requested location, so callers can point at it.
type LookupResult struct {
	Found  Symbol
	Hidden Symbol
}

// LookupUnqualified resolves name starting at scope, honoring declaration
// order relative to at. On a miss the walk continues into enclosing scopes
// unless NoParentScope is set. No diagnostics are issued here; callers know
// the expected kind and diagnose with that context.
func LookupUnqualified(scope *Scope, name string, at LookupLocation, flags LookupFlags) LookupResult {
	var res LookupResult
	for s := scope; s != nil; {
		if sym := s.nameMap[name]; sym != nil {
			if flags&AllowDeclaredAfter != 0 || at.sees(sym) {
				res.Found = sym
				return res
			}
			// Remember the not-yet-visible candidate for the caller's note.
			if res.Hidden == nil {
				res.Hidden = sym
			}
		}
		if flags&NoParentScope != 0 {
			break
		}
		if s.owner == nil {
			break
		}
		s = s.owner.Parent()
	}
	return res
}

// ReportUndeclared emits the point-of-use diagnostic for a failed lookup,
// attaching a note at the hidden declaration when one was found.
func ReportUndeclared(scope *Scope, name string, span source.Span, res LookupResult) {
	if res.Hidden != nil {
		scope.AddDiag(diag.LookupNotVisible, span).
			AddArg(name).
			AddNote(diag.NoteDeclaredAfterUse, res.Hidden.Location())
		return
	}
	scope.AddDiag(diag.LookupUndeclared, span).AddArg(name)
}
