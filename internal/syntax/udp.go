package syntax

import (
	"silica/internal/source"
)

// UdpDeclaration is a user-defined primitive.
type UdpDeclaration struct {
	Name       string
	NameSpan   source.Span
	PortList   UdpPortList
	Body       *UdpBody
	Attributes []*Attribute
	Sp         source.Span
}

func (d *UdpDeclaration) Span() source.Span { return d.Sp }

// UdpPortList is either an ANSI declaration list or a non-ANSI name list.
type UdpPortList interface {
	Node
	udpPortList()
}

// AnsiUdpPortList declares ports fully in the header.
type AnsiUdpPortList struct {
	Ports []UdpPortDecl
	Sp    source.Span
}

func (d *AnsiUdpPortList) Span() source.Span { return d.Sp }
func (d *AnsiUdpPortList) udpPortList()      {}

// NonAnsiUdpPortList gives only the port ordering; directions come from body
// declarations.
type NonAnsiUdpPortList struct {
	Names []*IdentifierName
	Sp    source.Span
}

func (d *NonAnsiUdpPortList) Span() source.Span { return d.Sp }
func (d *NonAnsiUdpPortList) udpPortList()      {}

// UdpPortDecl is a port declaration in the header or body.
type UdpPortDecl interface {
	Node
	udpPortDecl()
}

// UdpOutputPortDecl declares the output port. A standalone "reg name;"
// specifier has Reg set and HasKeyword false.
type UdpOutputPortDecl struct {
	Name       string
	NameSpan   source.Span
	HasKeyword bool // the "output" keyword itself
	Reg        bool
	RegSpan    source.Span
	Init       Expr // optional inline initializer
	Attributes []*Attribute
	Sp         source.Span
}

func (d *UdpOutputPortDecl) Span() source.Span { return d.Sp }
func (d *UdpOutputPortDecl) udpPortDecl()      {}

// UdpInputPortDecl declares input ports.
type UdpInputPortDecl struct {
	Names      []*IdentifierName
	Attributes []*Attribute
	Sp         source.Span
}

func (d *UdpInputPortDecl) Span() source.Span { return d.Sp }
func (d *UdpInputPortDecl) udpPortDecl()      {}

// UdpBody holds the body port declarations and the optional initial
// statement. The table itself is irrelevant to symbol elaboration.
type UdpBody struct {
	PortDecls []UdpPortDecl
	Initial   *UdpInitialStmt
	Sp        source.Span
}

func (d *UdpBody) Span() source.Span { return d.Sp }

// UdpInitialStmt is "initial name = value;".
type UdpInitialStmt struct {
	Name     string
	NameSpan source.Span
	Value    Expr
	Sp       source.Span
}

func (d *UdpInitialStmt) Span() source.Span { return d.Sp }
