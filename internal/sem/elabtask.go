package sem

import (
	"strings"

	"silica/internal/diag"
	"silica/internal/syntax"
)

// ElabSystemTask is an elaboration-time severity task or static assertion.
// Computing its message and issuing its diagnostic are separate actions:
// Message binds and formats the arguments once, Issue emits the diagnostic
// and may run any number of times.
type ElabSystemTask struct {
	symbolBase
	TaskKind syntax.ElabTaskKind

	message    Lazy[string]
	assertCond *Expression
}

// NewElabSystemTask creates the symbol, registered into scope.
func NewElabSystemTask(scope *Scope, d *syntax.ElabSystemTask) *ElabSystemTask {
	t := &ElabSystemTask{
		symbolBase: makeBase(KindElabSystemTask, "", d.Sp),
		TaskKind:   d.TaskKind,
	}
	t.setSyntax(d)
	scope.comp.register(t)
	scope.AddMember(t)
	return t
}

// Message lazily binds the task's arguments and formats the display message.
// The result carries a ": " prefix when non-empty so Issue can append it
// directly. Malformed argument lists yield an empty message after the
// appropriate diagnostic.
func (t *ElabSystemTask) Message() string {
	return t.message.Get(t, func() string {
		d, ok := t.stx.(*syntax.ElabSystemTask)
		if !ok {
			panic("sem: elab system task forced without syntax backing")
		}
		t.base().requireParent()
		ctx := ContextBefore(t, BindNonProcedural)

		var bound []*Expression
		for _, arg := range d.Args {
			switch a := arg.(type) {
			case *syntax.OrderedArgument:
				bound = append(bound, ctx.Bind(a.Expr, BindNone))
			case *syntax.EmptyArgument:
				bound = append(bound, EmptyExpression(nil))
			case *syntax.NamedArgument:
				ctx.AddDiag(diag.ElabNamedArgNotAllowed, a.Sp).AddArg(t.TaskKind.String())
				return ""
			}
		}

		switch t.TaskKind {
		case syntax.TaskFatal:
			// The optional first argument is the finish number, 0 through 2.
			if len(bound) > 0 && bound[0].Kind != ExprEmpty {
				first := bound[0]
				if first.Bad() {
					return ""
				}
				if !ctx.Eval(first) || first.Constant.Kind != ConstInt ||
					first.Constant.Int < 0 || first.Constant.Int > 2 {
					ctx.AddDiag(diag.ElabBadFinishNum, first.Syntax.Span())
				}
			}
			if len(bound) > 0 {
				bound = bound[1:]
			}
		case syntax.TaskStaticAssert:
			if len(bound) > 0 {
				cond := bound[0]
				bound = bound[1:]
				if cond.Bad() {
					return ""
				}
				if !ctx.RequireBooleanConvertible(cond, diag.ElabAssertNotBoolean) {
					return ""
				}
				if !ctx.Eval(cond) {
					ctx.AddDiag(diag.ElabAssertNotConstant, cond.Syntax.Span())
					return ""
				}
				t.assertCond = cond
			}
		}

		var parts []string
		for _, e := range bound {
			if e.Kind == ExprEmpty {
				continue
			}
			if e.Bad() {
				return ""
			}
			if ctx.Eval(e) {
				parts = append(parts, e.Constant.String())
			} else {
				parts = append(parts, describeExpr(e))
			}
		}
		if len(parts) == 0 {
			return ""
		}
		return ": " + strings.Join(parts, " ")
	})
}

// AssertCondition returns the bound constant condition of a $static_assert,
// nil when none was written or it failed to bind. Forces Message.
func (t *ElabSystemTask) AssertCondition() *Expression {
	t.Message()
	return t.assertCond
}

// Issue emits the task's diagnostic.
func (t *ElabSystemTask) Issue() {
	msg := t.Message()
	comp := t.base().requireParent().comp
	switch t.TaskKind {
	case syntax.TaskFatal:
		comp.AddDiag(diag.SevFatal, diag.ElabFatalTask, t.loc).AddArg(msg)
	case syntax.TaskError:
		comp.AddDiag(diag.SevError, diag.ElabErrorTask, t.loc).AddArg(msg)
	case syntax.TaskWarning:
		comp.AddDiag(diag.SevWarning, diag.ElabWarningTask, t.loc).AddArg(msg)
	case syntax.TaskInfo:
		comp.AddDiag(diag.SevInfo, diag.ElabInfoTask, t.loc).AddArg(msg)
	case syntax.TaskStaticAssert:
		t.reportStaticAssert(msg)
	}
}

// reportStaticAssert emits nothing for a true condition. A failed assertion
// over a comparison of two constants gets a note spelling out what the
// comparison reduced to.
func (t *ElabSystemTask) reportStaticAssert(msg string) {
	cond := t.assertCond
	if cond != nil && cond.Constant != nil && cond.Constant.IsTrue() {
		return
	}
	if cond == nil {
		d, ok := t.stx.(*syntax.ElabSystemTask)
		if ok && len(d.Args) > 0 {
			// Condition failed to bind or evaluate; already diagnosed.
			return
		}
	}

	scope := t.base().requireParent()
	h := scope.AddDiag(diag.ElabStaticAssert, t.loc).AddArg(msg)
	if cond == nil || !cond.IsComparison() {
		return
	}
	left, right := cond.Left, cond.Right
	if left == nil || right == nil || left.Constant == nil || right.Constant == nil {
		return
	}
	opSpan := cond.Syntax.Span()
	if bin, ok := cond.Syntax.(*syntax.BinaryExpr); ok {
		opSpan = bin.OpSpan
	}
	h.AddNote(diag.NoteComparisonReduces, opSpan,
		left.Constant.String(), cond.Op.String(), right.Constant.String())
}

func (t *ElabSystemTask) serializeTo(w Writer) {
	w.Write("taskKind", t.TaskKind.String())
	if msg := t.Message(); msg != "" {
		w.Write("message", strings.TrimPrefix(msg, ": "))
	}
}
