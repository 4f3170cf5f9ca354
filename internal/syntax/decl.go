package syntax

import (
	"silica/internal/source"
)

// TypeRefKind distinguishes the small set of data types the elaboration core
// needs to understand directly.
type TypeRefKind uint8

const (
	TypeImplicit TypeRefKind = iota
	TypeLogic
	TypeInt
	TypeReal
	TypeString
	TypeVoid
)

// TypeRef is a (possibly implicit) data type written in a declaration.
type TypeRef struct {
	Kind  TypeRefKind
	Width uint32 // vector width for logic, 0 = scalar
	Sp    source.Span
}

func (t *TypeRef) Span() source.Span { return t.Sp }

// Implicit reports whether no type was written at all.
func (t *TypeRef) Implicit() bool { return t == nil || t.Kind == TypeImplicit }

// Declarator introduces one name within a declaration.
type Declarator struct {
	Name     string
	NameSpan source.Span
	Init     Expr // optional initializer
}

func (d *Declarator) Span() source.Span { return d.NameSpan }

// DataModifierKind is a declaration modifier keyword.
type DataModifierKind uint8

const (
	ModVar DataModifierKind = iota
	ModConst
	ModStatic
	ModAutomatic
)

// DataModifier is one modifier occurrence with its position.
type DataModifier struct {
	Kind DataModifierKind
	Sp   source.Span
}

// DataDeclaration declares one or more variables sharing a base type and
// lifetime.
type DataDeclaration struct {
	Modifiers   []DataModifier
	Type        *TypeRef
	Delay       *DelayControl // optional; only nets may carry one
	Declarators []*Declarator
	Attributes  []*Attribute
	Sp          source.Span
}

func (d *DataDeclaration) Span() source.Span { return d.Sp }

// NetKind is the net type keyword of a net declaration.
type NetKind uint8

const (
	NetWire NetKind = iota
	NetTri
	NetWAnd
	NetWOr
	NetSupply0
	NetSupply1
)

func (k NetKind) String() string {
	switch k {
	case NetWire:
		return "wire"
	case NetTri:
		return "tri"
	case NetWAnd:
		return "wand"
	case NetWOr:
		return "wor"
	case NetSupply0:
		return "supply0"
	case NetSupply1:
		return "supply1"
	}
	return "?"
}

// ExpansionHint is the optional vectored/scalared keyword on a net.
type ExpansionHint uint8

const (
	ExpansionNone ExpansionHint = iota
	ExpansionVectored
	ExpansionScalared
)

// NetDeclaration declares one or more nets.
type NetDeclaration struct {
	NetKind       NetKind
	ExpansionHint ExpansionHint
	Delay         *DelayControl // optional
	Type          *TypeRef
	Declarators   []*Declarator
	Attributes    []*Attribute
	Sp            source.Span
}

func (d *NetDeclaration) Span() source.Span { return d.Sp }

// GenvarDeclaration declares loop genvars.
type GenvarDeclaration struct {
	Names []*IdentifierName
	Sp    source.Span
}

func (d *GenvarDeclaration) Span() source.Span { return d.Sp }

// ContinuousAssign is one assignment inside an assign statement.
type ContinuousAssign struct {
	Assignment Expr
	Sp         source.Span
}

func (d *ContinuousAssign) Span() source.Span { return d.Sp }

// EmptyMember is a stray semicolon, possibly carrying attributes.
type EmptyMember struct {
	Attributes []*Attribute
	Sp         source.Span
}

func (d *EmptyMember) Span() source.Span { return d.Sp }
