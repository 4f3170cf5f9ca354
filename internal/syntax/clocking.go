package syntax

import (
	"silica/internal/source"
)

// ClockingKeyword marks a clocking block as default, global, or plain.
type ClockingKeyword uint8

const (
	ClockingPlain ClockingKeyword = iota
	ClockingDefault
	ClockingGlobal
)

// ClockingDeclaration is a clocking block declaration.
type ClockingDeclaration struct {
	BlockName   string
	NameSpan    source.Span
	Keyword     ClockingKeyword
	KeywordSpan source.Span
	Event       *EventControl // clocking event
	Items       []ClockingItem
	Sp          source.Span
}

func (d *ClockingDeclaration) Span() source.Span { return d.Sp }

// ClockingItem is one entry of a clocking block body.
type ClockingItem interface {
	Node
	clockingItem()
}

// EdgeKind qualifies a clocking skew.
type EdgeKind uint8

const (
	EdgeNone EdgeKind = iota
	EdgePos
	EdgeNeg
)

// ClockingSkew is an edge and/or delay specification.
type ClockingSkew struct {
	Edge  EdgeKind
	Delay Expr // optional
	Sp    source.Span
}

func (d *ClockingSkew) Span() source.Span { return d.Sp }

// DefaultSkewItem sets default input and/or output skew for the block.
type DefaultSkewItem struct {
	Input  *ClockingSkew // nil if not specified
	Output *ClockingSkew // nil if not specified
	Sp     source.Span
}

func (d *DefaultSkewItem) Span() source.Span { return d.Sp }
func (d *DefaultSkewItem) clockingItem()     {}

// ClockingSignal declares a sampled signal inside the block.
type ClockingSignal struct {
	Direction Direction
	Name      string
	Sp        source.Span
}

func (d *ClockingSignal) Span() source.Span { return d.Sp }
func (d *ClockingSignal) clockingItem()     {}
