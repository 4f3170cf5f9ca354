package sem

import (
	"silica/internal/syntax"
)

// Writer receives a symbol's serialized representation. The core stays
// format-agnostic; concrete encoders live outside this package.
type Writer interface {
	Write(key string, value any)
	// WriteLink records a reference to another symbol without recursing into
	// it.
	WriteLink(key string, sym Symbol)
	BeginObject(key string)
	EndObject()
	BeginArray(key string)
	EndArray()
}

// Scoped is implemented by every symbol that owns a member scope.
type Scoped interface {
	Symbol
	Body() *Scope
}

// Serialize writes one symbol: the common header followed by the
// kind-specific fields.
func Serialize(sym Symbol, w Writer) {
	w.Write("kind", sym.Kind().String())
	if name := sym.Name(); name != "" {
		w.Write("name", name)
	}
	if attrs := sym.Attributes(); len(attrs) > 0 {
		w.BeginArray("attributes")
		for _, a := range attrs {
			w.Write("", a.Name)
		}
		w.EndArray()
	}
	sym.serializeTo(w)
}

// SerializeTree writes a symbol and, when it owns a scope, all of its
// members recursively in declaration order.
func SerializeTree(sym Symbol, w Writer) {
	Serialize(sym, w)
	scoped, ok := sym.(Scoped)
	if !ok {
		return
	}
	members := scoped.Body().Members()
	if len(members) == 0 {
		return
	}
	w.BeginArray("members")
	for _, m := range members {
		w.BeginObject("")
		SerializeTree(m, w)
		w.EndObject()
	}
	w.EndArray()
}

// describeExpr renders a bound expression for serialization and messages.
// Folded expressions print their constant; the rest print a best-effort
// reconstruction from the bound form.
func describeExpr(e *Expression) string {
	if e == nil {
		return ""
	}
	if e.Constant != nil {
		return e.Constant.String()
	}
	switch e.Kind {
	case ExprNamed:
		if e.Symbol != nil {
			return e.Symbol.Name()
		}
	case ExprBinary:
		return describeExpr(e.Left) + " " + e.Op.String() + " " + describeExpr(e.Right)
	case ExprUnary:
		if u, ok := e.Syntax.(*syntax.UnaryExpr); ok {
			text := "-"
			if u.Op == syntax.OpLogicalNot {
				text = "!"
			}
			return text + describeExpr(e.Left)
		}
	case ExprLiteral:
		if lit, ok := e.Syntax.(*syntax.StringLiteral); ok {
			return lit.Value
		}
	}
	return "<expr>"
}
