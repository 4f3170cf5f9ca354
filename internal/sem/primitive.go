package sem

import (
	"silica/internal/diag"
	"silica/internal/source"
	"silica/internal/syntax"
	"silica/internal/types"
)

// PrimitivePortDirection is the resolved direction of a primitive port.
type PrimitivePortDirection uint8

const (
	PrimPortIn PrimitivePortDirection = iota
	PrimPortOut
	PrimPortOutReg
)

func (d PrimitivePortDirection) String() string {
	switch d {
	case PrimPortOut:
		return "output"
	case PrimPortOutReg:
		return "output reg"
	default:
		return "input"
	}
}

// PrimitivePort is one port of a user-defined primitive. Primitive ports are
// always single-bit logic.
type PrimitivePort struct {
	symbolBase
	Direction PrimitivePortDirection
}

// Type returns the port's type.
func (p *PrimitivePort) Type() *types.Type { return types.Logic() }

func (p *PrimitivePort) serializeTo(w Writer) {
	w.Write("direction", p.Direction.String())
}

// Primitive is a user-defined primitive declaration. The state table itself
// does not elaborate to symbols; only the port list and the initial value
// do.
type Primitive struct {
	symbolBase
	Ports        []*PrimitivePort
	IsSequential bool
	// InitVal is the validated single-bit initial value of a sequential
	// primitive, nil when absent or rejected.
	InitVal *ConstantValue

	body *Scope
}

// Body returns the primitive's port scope.
func (p *Primitive) Body() *Scope { return p.body }

func (p *Primitive) serializeTo(w Writer) {
	if p.IsSequential {
		w.Write("isSequential", true)
	}
	if p.InitVal != nil {
		w.Write("initialValue", p.InitVal.String())
	}
	w.BeginArray("ports")
	for _, port := range p.Ports {
		w.BeginObject("")
		Serialize(port, w)
		w.EndObject()
	}
	w.EndArray()
}

// primPortBuild tracks a non-ANSI port between the name list pass and the
// body declaration pass.
type primPortBuild struct {
	port     *PrimitivePort
	declared bool // a body declaration assigned its direction
	declSpan source.Span
}

// NewPrimitive elaborates a primitive declaration, registered into parent.
func NewPrimitive(parent *Scope, d *syntax.UdpDeclaration) *Primitive {
	comp := parent.comp
	prim := &Primitive{symbolBase: makeBase(KindPrimitive, d.Name, d.NameSpan)}
	prim.setSyntax(d)
	prim.setAttributes(d.Attributes)
	prim.body = newScope(comp, prim)
	comp.register(prim)
	parent.AddMember(prim)

	var initSyntax syntax.Expr
	var initSpan source.Span

	newPort := func(name string, loc source.Span, dir PrimitivePortDirection) *PrimitivePort {
		port := &PrimitivePort{
			symbolBase: makeBase(KindPrimitivePort, name, loc),
			Direction:  dir,
		}
		comp.register(port)
		return port
	}

	switch pl := d.PortList.(type) {
	case *syntax.AnsiUdpPortList:
		for _, decl := range pl.Ports {
			switch pd := decl.(type) {
			case *syntax.UdpOutputPortDecl:
				dir := PrimPortOut
				if pd.Reg {
					dir = PrimPortOutReg
				}
				port := newPort(pd.Name, pd.NameSpan, dir)
				port.setSyntax(pd)
				port.setAttributes(pd.Attributes)
				prim.body.AddMember(port)
				prim.Ports = append(prim.Ports, port)
				if pd.Init != nil {
					initSyntax = pd.Init
					initSpan = pd.Init.Span()
				}
			case *syntax.UdpInputPortDecl:
				for _, name := range pd.Names {
					port := newPort(name.Name, name.Sp, PrimPortIn)
					port.setSyntax(pd)
					port.setAttributes(pd.Attributes)
					prim.body.AddMember(port)
					prim.Ports = append(prim.Ports, port)
				}
			}
		}
		// An ANSI header leaves nothing for body port declarations to add.
		if d.Body != nil && len(d.Body.PortDecls) > 0 {
			parent.AddDiag(diag.PrimitiveAnsiMix, d.Body.PortDecls[0].Span())
		}

	case *syntax.NonAnsiUdpPortList:
		builds := make(map[string]*primPortBuild)
		for _, name := range pl.Names {
			if prev, ok := builds[name.Name]; ok {
				parent.AddDiag(diag.PrimitivePortDup, name.Sp).
					AddArg(name.Name).
					AddNote(diag.NotePreviousDefinition, prev.port.Location())
				continue
			}
			port := newPort(name.Name, name.Sp, PrimPortIn)
			prim.body.AddMember(port)
			prim.Ports = append(prim.Ports, port)
			builds[name.Name] = &primPortBuild{port: port}
		}

		if d.Body != nil {
			for _, decl := range d.Body.PortDecls {
				switch pd := decl.(type) {
				case *syntax.UdpOutputPortDecl:
					if !pd.HasKeyword && pd.Reg {
						// Standalone "reg name;" specifier.
						applyRegSpecifier(parent, builds, pd)
						continue
					}
					b, ok := builds[pd.Name]
					if !ok {
						parent.AddDiag(diag.PrimitivePortUnknown, pd.NameSpan).AddArg(pd.Name)
						continue
					}
					if b.declared {
						parent.AddDiag(diag.PrimitivePortDup, pd.NameSpan).
							AddArg(pd.Name).
							AddNote(diag.NotePreviousDefinition, b.declSpan)
						continue
					}
					b.declared = true
					b.declSpan = pd.NameSpan
					if pd.Reg || b.port.Direction == PrimPortOutReg {
						b.port.Direction = PrimPortOutReg
					} else {
						b.port.Direction = PrimPortOut
					}
					b.port.setSyntax(pd)
					b.port.setAttributes(pd.Attributes)
					if pd.Init != nil {
						initSyntax = pd.Init
						initSpan = pd.Init.Span()
					}
				case *syntax.UdpInputPortDecl:
					for _, name := range pd.Names {
						b, ok := builds[name.Name]
						if !ok {
							parent.AddDiag(diag.PrimitivePortUnknown, name.Sp).AddArg(name.Name)
							continue
						}
						if b.declared {
							parent.AddDiag(diag.PrimitivePortDup, name.Sp).
								AddArg(name.Name).
								AddNote(diag.NotePreviousDefinition, b.declSpan)
							continue
						}
						b.declared = true
						b.declSpan = name.Sp
						if b.port.Direction == PrimPortOutReg {
							// A reg specifier already ran; reg on an input is
							// rejected there, so just keep the direction.
							parent.AddDiag(diag.PrimitiveRegInput, name.Sp).AddArg(name.Name)
						}
						b.port.Direction = PrimPortIn
						b.port.setSyntax(pd)
						b.port.setAttributes(pd.Attributes)
					}
				}
			}
		}

		for _, port := range prim.Ports {
			if b := builds[port.Name()]; b != nil && !b.declared {
				parent.AddDiag(diag.PrimitivePortMissing, port.Location()).AddArg(port.Name())
			}
		}
	}

	checkPrimitivePorts(parent, prim, d)

	if prim.IsSequential && len(prim.Ports) > 0 {
		initSyntax, initSpan = applyInitialStmt(parent, prim, d, initSyntax, initSpan)
	} else {
		// Only the sequential output may carry an initial value, whether it
		// was written inline on the declaration or as an initial statement.
		if initSyntax != nil {
			parent.AddDiag(diag.PrimitiveInitialInComb, initSpan)
			initSyntax = nil
		}
		if d.Body != nil && d.Body.Initial != nil {
			parent.AddDiag(diag.PrimitiveInitialInComb, d.Body.Initial.Sp)
		}
	}

	if initSyntax != nil {
		ctx := NewContext(prim.body, LocationMax, BindNonProcedural)
		e := ctx.Bind(initSyntax, BindNone)
		if !e.Bad() {
			if ctx.Eval(e) && e.Constant.IsSingleBitAllowed() {
				prim.InitVal = e.Constant
			} else {
				parent.AddDiag(diag.PrimitiveInitVal, initSpan)
			}
		}
	}
	return prim
}

// applyRegSpecifier handles a standalone "reg name;" body item.
func applyRegSpecifier(scope *Scope, builds map[string]*primPortBuild, pd *syntax.UdpOutputPortDecl) {
	b, ok := builds[pd.Name]
	if !ok {
		scope.AddDiag(diag.PrimitivePortUnknown, pd.NameSpan).AddArg(pd.Name)
		return
	}
	if b.port.Direction == PrimPortOutReg {
		scope.AddDiag(diag.PrimitiveRegDup, pd.RegSpan).
			AddArg(pd.Name).
			AddNote(diag.NotePreviousDefinition, b.port.Location())
		return
	}
	if b.declared && b.port.Direction == PrimPortIn {
		scope.AddDiag(diag.PrimitiveRegInput, pd.RegSpan).AddArg(pd.Name)
		return
	}
	b.port.Direction = PrimPortOutReg
}

// checkPrimitivePorts enforces the structural port rules: at least two
// ports, the first and only the first an output.
func checkPrimitivePorts(scope *Scope, prim *Primitive, d *syntax.UdpDeclaration) {
	if len(prim.Ports) < 2 {
		scope.AddDiag(diag.PrimitiveTwoPorts, d.NameSpan).AddArg(d.Name)
		return
	}
	first := prim.Ports[0]
	if first.Direction == PrimPortIn {
		scope.AddDiag(diag.PrimitiveOutputFirst, first.Location())
	} else if first.Direction == PrimPortOutReg {
		prim.IsSequential = true
	}
	for _, port := range prim.Ports[1:] {
		if port.Direction != PrimPortIn {
			scope.AddDiag(diag.PrimitiveDupOutput, port.Location()).AddArg(port.Name())
		}
	}
}

// applyInitialStmt merges the body's "initial name = value" statement with
// any inline initializer on the output declaration.
func applyInitialStmt(scope *Scope, prim *Primitive, d *syntax.UdpDeclaration, initSyntax syntax.Expr, initSpan source.Span) (syntax.Expr, source.Span) {
	if d.Body == nil || d.Body.Initial == nil {
		return initSyntax, initSpan
	}
	stmt := d.Body.Initial
	if initSyntax != nil {
		scope.AddDiag(diag.PrimitiveDupInitial, stmt.Sp).
			AddNote(diag.NotePreviousDefinition, initSpan)
		return initSyntax, initSpan
	}
	output := prim.Ports[0]
	if stmt.Name != output.Name() {
		scope.AddDiag(diag.PrimitiveWrongInitial, stmt.NameSpan).
			AddArg(stmt.Name).
			AddNote(diag.NoteDeclarationHere, output.Location())
		return initSyntax, initSpan
	}
	return stmt.Value, stmt.Value.Span()
}
