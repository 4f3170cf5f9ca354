package sem

import (
	"silica/internal/diag"
	"silica/internal/syntax"
	"silica/internal/types"
)

// Skew is a bound clocking skew: an optional edge plus an optional bound
// delay expression.
type Skew struct {
	Edge  syntax.EdgeKind
	Delay *Expression
}

// ClockingBlock is a clocking block declaration. The clocking event and the
// default skews bind lazily; the sampled signals become variables in the
// block's scope at creation time.
type ClockingBlock struct {
	symbolBase
	Keyword syntax.ClockingKeyword

	body *Scope

	event      Lazy[*TimingControl]
	inSkewStx  *syntax.ClockingSkew
	outSkewStx *syntax.ClockingSkew
	defaultIn  Lazy[Skew]
	defaultOut Lazy[Skew]
}

// Body returns the block's signal scope.
func (cb *ClockingBlock) Body() *Scope { return cb.body }

// NewClockingBlock elaborates a clocking declaration, registered into
// parent. Default and global blocks are recorded on the compilation; a
// global clocking inside a generate block is rejected.
func NewClockingBlock(parent *Scope, d *syntax.ClockingDeclaration) *ClockingBlock {
	comp := parent.comp
	cb := &ClockingBlock{
		symbolBase: makeBase(KindClockingBlock, d.BlockName, d.NameSpan),
		Keyword:    d.Keyword,
	}
	cb.setSyntax(d)
	cb.body = newScope(comp, cb)
	comp.register(cb)
	parent.AddMember(cb)

	switch d.Keyword {
	case syntax.ClockingDefault:
		comp.NoteDefaultClocking(parent, cb, d.KeywordSpan)
	case syntax.ClockingGlobal:
		if def, ok := parent.owner.(*Definition); ok && def.DefKind == DefGenerateBlock {
			parent.AddDiag(diag.ClockingGlobalGenerate, d.KeywordSpan)
		} else {
			comp.NoteGlobalClocking(parent, cb, d.KeywordSpan)
		}
	}

	for _, item := range d.Items {
		switch it := item.(type) {
		case *syntax.DefaultSkewItem:
			if it.Input != nil {
				if cb.inSkewStx != nil {
					parent.AddDiag(diag.ClockingMultipleDefaultInSkew, it.Input.Sp).
						AddNote(diag.NotePreviousDefinition, cb.inSkewStx.Sp)
				} else {
					cb.inSkewStx = it.Input
				}
			}
			if it.Output != nil {
				if cb.outSkewStx != nil {
					parent.AddDiag(diag.ClockingMultipleDefaultOutSkew, it.Output.Sp).
						AddNote(diag.NotePreviousDefinition, cb.outSkewStx.Sp)
				} else {
					cb.outSkewStx = it.Output
				}
			}
		case *syntax.ClockingSignal:
			v := newVariable(comp, it.Name, it.Sp, LifetimeStatic)
			v.SetType(types.Logic())
			v.setSyntax(it)
			cb.body.AddMember(v)
		}
	}
	return cb
}

// Event lazily binds the clocking event, nil when the declaration carries
// none.
func (cb *ClockingBlock) Event() *TimingControl {
	return cb.event.Get(cb, func() *TimingControl {
		d, ok := cb.stx.(*syntax.ClockingDeclaration)
		if !ok || d.Event == nil {
			return nil
		}
		ctx := ContextBefore(cb, BindNonProcedural)
		return ctx.BindTimingControl(d.Event)
	})
}

// DefaultInputSkew lazily binds the default input skew; the zero Skew when
// none was declared.
func (cb *ClockingBlock) DefaultInputSkew() Skew {
	return cb.defaultIn.Get(cb, func() Skew { return cb.bindSkew(cb.inSkewStx) })
}

// DefaultOutputSkew lazily binds the default output skew.
func (cb *ClockingBlock) DefaultOutputSkew() Skew {
	return cb.defaultOut.Get(cb, func() Skew { return cb.bindSkew(cb.outSkewStx) })
}

func (cb *ClockingBlock) bindSkew(stx *syntax.ClockingSkew) Skew {
	if stx == nil {
		return Skew{}
	}
	skew := Skew{Edge: stx.Edge}
	if stx.Delay != nil {
		ctx := ContextBefore(cb, BindNonProcedural)
		skew.Delay = ctx.Bind(stx.Delay, BindNone)
	}
	return skew
}

func (cb *ClockingBlock) serializeTo(w Writer) {
	switch cb.Keyword {
	case syntax.ClockingDefault:
		w.Write("keyword", "default")
	case syntax.ClockingGlobal:
		w.Write("keyword", "global")
	}
	if ev := cb.Event(); ev != nil && !ev.Bad() && ev.Event != nil && !ev.Event.Bad() {
		w.Write("event", describeExpr(ev.Event))
	}
	if in := cb.DefaultInputSkew(); in.Delay != nil && !in.Delay.Bad() {
		w.Write("defaultInputSkew", describeExpr(in.Delay))
	}
	if out := cb.DefaultOutputSkew(); out.Delay != nil && !out.Delay.Bad() {
		w.Write("defaultOutputSkew", describeExpr(out.Delay))
	}
}
