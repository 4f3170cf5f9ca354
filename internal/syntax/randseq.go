package syntax

import (
	"silica/internal/source"
)

// Production declares one randseq production with its rules.
type Production struct {
	Name       string
	NameSpan   source.Span
	ReturnType *TypeRef // nil means void
	Rules      []*ProductionRule
	Sp         source.Span
}

func (d *Production) Span() source.Span { return d.Sp }

// ProductionRule is one alternative of a production.
type ProductionRule struct {
	Prods    []Prod
	Weight   Expr      // optional integral weight
	RandJoin *RandJoin // optional
	Sp       source.Span
}

func (d *ProductionRule) Span() source.Span { return d.Sp }

// RandJoin is the rand join modifier with an optional control expression.
type RandJoin struct {
	Expr Expr // optional join control, must be numeric
	Sp   source.Span
}

func (d *RandJoin) Span() source.Span { return d.Sp }

// Prod is a production item inside a rule. The set is closed.
type Prod interface {
	Node
	prodNode()
}

// ProdItem invokes another production by name.
type ProdItem struct {
	Name string
	Args []Expr
	Sp   source.Span
}

func (d *ProdItem) Span() source.Span { return d.Sp }
func (d *ProdItem) prodNode()         {}

// ProdCodeBlock is an inline { ... } code block.
type ProdCodeBlock struct {
	Sp source.Span
}

func (d *ProdCodeBlock) Span() source.Span { return d.Sp }
func (d *ProdCodeBlock) prodNode()         {}

// ProdIfElse chooses between two items.
type ProdIfElse struct {
	Cond Expr
	If   *ProdItem
	Else *ProdItem // optional
	Sp   source.Span
}

func (d *ProdIfElse) Span() source.Span { return d.Sp }
func (d *ProdIfElse) prodNode()         {}

// ProdRepeat repeats an item a computed number of times.
type ProdRepeat struct {
	Count Expr
	Item  *ProdItem
	Sp    source.Span
}

func (d *ProdRepeat) Span() source.Span { return d.Sp }
func (d *ProdRepeat) prodNode()         {}

// ProdCase dispatches an expression against alternatives.
type ProdCase struct {
	Expr  Expr
	Items []*ProdCaseItem
	Sp    source.Span
}

func (d *ProdCase) Span() source.Span { return d.Sp }
func (d *ProdCase) prodNode()         {}

// ProdCaseItem is one alternative; a nil Exprs slice marks the default.
type ProdCaseItem struct {
	Exprs []Expr
	Item  *ProdItem
	Sp    source.Span
}

func (d *ProdCaseItem) Span() source.Span { return d.Sp }

// IsDefault reports whether this is the default alternative.
func (d *ProdCaseItem) IsDefault() bool { return len(d.Exprs) == 0 }
