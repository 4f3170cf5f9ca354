package syntax

import (
	"silica/internal/source"
)

// DelayControl is a #delay specification on a net declaration.
type DelayControl struct {
	Expr Expr
	Sp   source.Span
}

func (d *DelayControl) Span() source.Span { return d.Sp }

// EventControl is an @(edge expr) clocking event.
type EventControl struct {
	Edge EdgeKind
	Expr Expr
	Sp   source.Span
}

func (d *EventControl) Span() source.Span { return d.Sp }
