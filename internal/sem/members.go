package sem

import (
	"silica/internal/syntax"
	"silica/internal/types"
)

// Genvar is a generate loop variable.
type Genvar struct {
	symbolBase
}

func (g *Genvar) serializeTo(w Writer) {}

// GenvarsFromSyntax elaborates a genvar declaration list.
func GenvarsFromSyntax(scope *Scope, d *syntax.GenvarDeclaration) []*Genvar {
	out := make([]*Genvar, 0, len(d.Names))
	for _, name := range d.Names {
		g := &Genvar{symbolBase: makeBase(KindGenvar, name.Name, name.Sp)}
		g.setSyntax(d)
		scope.comp.register(g)
		scope.AddMember(g)
		out = append(out, g)
	}
	return out
}

// ContinuousAssign is one continuous assignment; the expression binds
// lazily on first use.
type ContinuousAssign struct {
	symbolBase
	assign Lazy[*Expression]
}

// NewContinuousAssign creates the symbol, registered into scope.
func NewContinuousAssign(scope *Scope, d *syntax.ContinuousAssign) *ContinuousAssign {
	ca := &ContinuousAssign{symbolBase: makeBase(KindContinuousAssign, "", d.Sp)}
	ca.setSyntax(d)
	scope.comp.register(ca)
	scope.AddMember(ca)
	return ca
}

// Assignment lazily binds the assignment expression.
func (ca *ContinuousAssign) Assignment() *Expression {
	return ca.assign.Get(ca, func() *Expression {
		d, ok := ca.stx.(*syntax.ContinuousAssign)
		if !ok {
			panic("sem: continuous assign forced without syntax backing")
		}
		ctx := ContextBefore(ca, BindNonProcedural)
		return ctx.Bind(d.Assignment, BindNone)
	})
}

func (ca *ContinuousAssign) serializeTo(w Writer) {
	if a := ca.Assignment(); !a.Bad() {
		w.Write("assignment", describeExpr(a))
	}
}

// EmptyMember is a stray semicolon kept only for its attributes.
type EmptyMember struct {
	symbolBase
}

// NewEmptyMember creates the symbol, registered into scope.
func NewEmptyMember(scope *Scope, d *syntax.EmptyMember) *EmptyMember {
	e := &EmptyMember{symbolBase: makeBase(KindEmptyMember, "", d.Sp)}
	e.setSyntax(d)
	e.setAttributes(d.Attributes)
	scope.comp.register(e)
	scope.AddMember(e)
	return e
}

func (e *EmptyMember) serializeTo(w Writer) {}

// Sequence is a named assertion sequence owning a scope for its ports.
type Sequence struct {
	symbolBase
	body  *Scope
	Ports []*FormalArgument
}

// NewSequence elaborates a sequence declaration, registered into parent.
func NewSequence(parent *Scope, d *syntax.SequenceDeclaration) *Sequence {
	s := &Sequence{symbolBase: makeBase(KindSequence, d.Name, d.NameSpan)}
	s.setSyntax(d)
	s.body = newScope(parent.comp, s)
	parent.comp.register(s)
	parent.AddMember(s)
	s.Ports = buildAssertionPorts(s.body, d.Ports)
	return s
}

// Body returns the sequence's port scope.
func (s *Sequence) Body() *Scope { return s.body }

func (s *Sequence) serializeTo(w Writer) {
	w.BeginArray("ports")
	for _, p := range s.Ports {
		w.BeginObject("")
		Serialize(p, w)
		w.EndObject()
	}
	w.EndArray()
}

// Property is a named assertion property owning a scope for its ports.
type Property struct {
	symbolBase
	body  *Scope
	Ports []*FormalArgument
}

// NewProperty elaborates a property declaration, registered into parent.
func NewProperty(parent *Scope, d *syntax.PropertyDeclaration) *Property {
	p := &Property{symbolBase: makeBase(KindProperty, d.Name, d.NameSpan)}
	p.setSyntax(d)
	p.body = newScope(parent.comp, p)
	parent.comp.register(p)
	parent.AddMember(p)
	p.Ports = buildAssertionPorts(p.body, d.Ports)
	return p
}

// Body returns the property's port scope.
func (p *Property) Body() *Scope { return p.body }

func (p *Property) serializeTo(w Writer) {
	w.BeginArray("ports")
	for _, port := range p.Ports {
		w.BeginObject("")
		Serialize(port, w)
		w.EndObject()
	}
	w.EndArray()
}

// buildAssertionPorts elaborates sequence/property ports into formal
// arguments; untyped ports default to logic.
func buildAssertionPorts(body *Scope, ports []*syntax.AssertionPort) []*FormalArgument {
	out := make([]*FormalArgument, 0, len(ports))
	for _, port := range ports {
		t := resolveTypeRef(port.Type, types.Logic())
		arg := NewFormalArgument(body, port.Name, port.NameSpan, syntax.DirIn, t)
		arg.setSyntax(port)
		out = append(out, arg)
	}
	return out
}
