package sem

import (
	"silica/internal/diag"
	"silica/internal/source"
	"silica/internal/syntax"
)

// BindFlags adjust expression binding for the construct being elaborated.
type BindFlags uint16

const (
	BindNone BindFlags = 0
	// BindLValue requires assignment-target capability.
	BindLValue BindFlags = 1 << iota
	// BindNonProcedural marks bindings outside procedural code.
	BindNonProcedural
)

// Binder is the external service that turns a syntax node into a bound,
// possibly-erroneous semantic value. Implementations never return nil and
// never raise for semantic errors: failures come back as expressions marked
// bad with the error type attached.
type Binder interface {
	BindExpression(node syntax.Expr, ctx *Context, flags BindFlags) *Expression
	BindTimingControl(node syntax.Node, ctx *Context) *TimingControl
	EvaluateConstant(expr *Expression) (ConstantValue, bool)
}

// Context anchors a binding operation at a scope and lookup location.
type Context struct {
	Scope    *Scope
	Location LookupLocation
	Flags    BindFlags
}

// NewContext builds a context for the given anchor.
func NewContext(scope *Scope, at LookupLocation, flags BindFlags) Context {
	return Context{Scope: scope, Location: at, Flags: flags}
}

// ContextBefore anchors binding just before the symbol's own declaration,
// the usual rule for declaration-attached expressions.
func ContextBefore(sym Symbol, flags BindFlags) Context {
	scope := sym.base().requireParent()
	return Context{Scope: scope, Location: LocationBefore(sym), Flags: flags}
}

// ContextAfter anchors binding just after the symbol's declaration;
// initializers may reference the symbol itself.
func ContextAfter(sym Symbol, flags BindFlags) Context {
	scope := sym.base().requireParent()
	return Context{Scope: scope, Location: LocationAfter(sym), Flags: flags}
}

// Compilation returns the owning compilation.
func (c *Context) Compilation() *Compilation { return c.Scope.comp }

// AddDiag records an error diagnostic through the context's scope.
func (c *Context) AddDiag(code diag.Code, span source.Span) *diag.Handle {
	return c.Scope.AddDiag(code, span)
}

// Bind binds an expression through the compilation's binder with the
// context's flags merged with extra.
func (c *Context) Bind(node syntax.Expr, extra BindFlags) *Expression {
	merged := *c
	merged.Flags |= extra
	return c.Compilation().binder.BindExpression(node, &merged, merged.Flags)
}

// BindTimingControl binds a delay or event control.
func (c *Context) BindTimingControl(node syntax.Node) *TimingControl {
	return c.Compilation().binder.BindTimingControl(node, c)
}

// Eval folds the expression to a constant, caching the result on the
// expression. Returns false for bad or non-constant expressions.
func (c *Context) Eval(e *Expression) bool {
	if e.Bad() {
		return false
	}
	if e.Constant != nil {
		return true
	}
	v, ok := c.Compilation().binder.EvaluateConstant(e)
	if !ok {
		return false
	}
	e.Constant = &v
	return true
}

// RequireIntegral checks that a successfully bound expression has integral
// type, diagnosing with the given code otherwise. Bad expressions were
// already diagnosed at the root cause and pass silently.
func (c *Context) RequireIntegral(e *Expression, code diag.Code) bool {
	if e.Bad() {
		return false
	}
	if !e.Type.IsIntegral() {
		c.AddDiag(code, e.Syntax.Span()).AddArg(e.Type.String())
		return false
	}
	return true
}

// RequireNumeric checks for numeric type (integral or real).
func (c *Context) RequireNumeric(e *Expression, code diag.Code) bool {
	if e.Bad() {
		return false
	}
	if !e.Type.IsNumeric() {
		c.AddDiag(code, e.Syntax.Span()).AddArg(e.Type.String())
		return false
	}
	return true
}

// RequireBooleanConvertible checks that the expression can stand as a
// condition.
func (c *Context) RequireBooleanConvertible(e *Expression, code diag.Code) bool {
	if e.Bad() {
		return false
	}
	if !e.Type.IsBooleanConvertible() {
		c.AddDiag(code, e.Syntax.Span()).AddArg(e.Type.String())
		return false
	}
	return true
}
