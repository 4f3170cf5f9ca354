package syntax

import (
	"silica/internal/source"
)

// ModportDeclaration declares one or more modports in an interface.
type ModportDeclaration struct {
	Items      []*ModportItem
	Attributes []*Attribute
	Sp         source.Span
}

func (d *ModportDeclaration) Span() source.Span { return d.Sp }

// ModportItem is one named modport with its port lists.
type ModportItem struct {
	Name     string
	NameSpan source.Span
	Ports    []ModportPorts
}

func (d *ModportItem) Span() source.Span { return d.NameSpan }

// ModportPorts is one entry of a modport item's port list.
type ModportPorts interface {
	Node
	modportPorts()
}

// ModportSimplePortList carries a direction and a list of signal ports.
type ModportSimplePortList struct {
	Direction  Direction
	Ports      []ModportSimplePort
	Attributes []*Attribute
	Sp         source.Span
}

func (d *ModportSimplePortList) Span() source.Span { return d.Sp }
func (d *ModportSimplePortList) modportPorts()     {}

// ModportSimplePort is either a named or an explicit-connection port.
type ModportSimplePort interface {
	Node
	modportSimplePort()
}

// ModportNamedPort references a signal of the enclosing interface by name.
type ModportNamedPort struct {
	Name string
	Sp   source.Span
}

func (d *ModportNamedPort) Span() source.Span  { return d.Sp }
func (d *ModportNamedPort) modportSimplePort() {}

// ModportExplicitPort binds a connection expression: .name(expr). A nil Expr
// leaves the port unconnected.
type ModportExplicitPort struct {
	Name string
	Expr Expr
	Sp   source.Span
}

func (d *ModportExplicitPort) Span() source.Span  { return d.Sp }
func (d *ModportExplicitPort) modportSimplePort() {}

// ModportSubroutinePortList imports or exports task/function prototypes.
type ModportSubroutinePortList struct {
	IsExport   bool
	Names      []*ModportNamedPort
	Attributes []*Attribute
	Sp         source.Span
}

func (d *ModportSubroutinePortList) Span() source.Span { return d.Sp }
func (d *ModportSubroutinePortList) modportPorts()     {}

// ModportClockingPort references a clocking block of the interface.
type ModportClockingPort struct {
	Name       string
	Attributes []*Attribute
	Sp         source.Span
}

func (d *ModportClockingPort) Span() source.Span { return d.Sp }
func (d *ModportClockingPort) modportPorts()     {}
