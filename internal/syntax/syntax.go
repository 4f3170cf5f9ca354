// Package syntax models the immutable parsed syntax tree that the elaboration
// core consumes. The tree is already grammar-validated by the host front end;
// nothing here is ever mutated after construction, and the semantic layer
// references nodes non-owningly.
package syntax

import (
	"silica/internal/source"
)

// Node is the common interface of every syntax node.
type Node interface {
	Span() source.Span
}

// Attribute is a (* name = value *) annotation attached to a declaration.
type Attribute struct {
	Name  string
	Value Expr // may be nil
	Sp    source.Span
}

func (a *Attribute) Span() source.Span { return a.Sp }

// IdentifierName is a bare name occurrence.
type IdentifierName struct {
	Name string
	Sp   source.Span
}

func (n *IdentifierName) Span() source.Span { return n.Sp }

// Direction of a port or modport entry.
type Direction uint8

const (
	DirIn Direction = iota
	DirOut
	DirInOut
	DirRef
)

func (d Direction) String() string {
	switch d {
	case DirIn:
		return "in"
	case DirOut:
		return "out"
	case DirInOut:
		return "inout"
	case DirRef:
		return "ref"
	}
	return "?"
}

// Lifetime qualifier as written in source.
type Lifetime uint8

const (
	LifetimeUnspecified Lifetime = iota
	LifetimeStatic
	LifetimeAutomatic
)

func (l Lifetime) String() string {
	switch l {
	case LifetimeStatic:
		return "static"
	case LifetimeAutomatic:
		return "automatic"
	}
	return "unspecified"
}
