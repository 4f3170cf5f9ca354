package syntax

import (
	"silica/internal/source"
)

// AssertionPort is one port of a sequence or property declaration.
type AssertionPort struct {
	Name     string
	NameSpan source.Span
	Type     *TypeRef // nil or implicit means untyped
	Default  Expr     // optional default actual
	Sp       source.Span
}

func (d *AssertionPort) Span() source.Span { return d.Sp }

// SequenceDeclaration declares a named sequence.
type SequenceDeclaration struct {
	Name     string
	NameSpan source.Span
	Ports    []*AssertionPort
	Sp       source.Span
}

func (d *SequenceDeclaration) Span() source.Span { return d.Sp }

// PropertyDeclaration declares a named property.
type PropertyDeclaration struct {
	Name     string
	NameSpan source.Span
	Ports    []*AssertionPort
	Sp       source.Span
}

func (d *PropertyDeclaration) Span() source.Span { return d.Sp }
