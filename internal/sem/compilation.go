package sem

import (
	"silica/internal/diag"
	"silica/internal/source"
)

// Options configure a compilation.
type Options struct {
	// MaxDiagnostics caps the diagnostic sink; zero means the default.
	MaxDiagnostics int
	// LintImplicitStatic enables the warning for static variables with
	// initializers declared in procedural scopes without an explicit
	// "static" keyword.
	LintImplicitStatic bool
	// Binder is the expression binding service. Required for any
	// compilation that forces lazily bound properties.
	Binder Binder
}

const defaultMaxDiagnostics = 512

// Compilation is the root of one elaboration. It owns every symbol and
// scope created through it, the diagnostic sink, and the global clocking
// registries. Independent compilations share no state.
type Compilation struct {
	opts   Options
	bag    *diag.Bag
	binder Binder

	rootSym *Root
	root    *Scope

	// Creation-order registry of every symbol; the arena. ForceElaborate
	// walks it so diagnostic emission order is reproducible rather than
	// dependent on incidental consumer-visit order.
	symbols []Symbol

	defaultClocking map[*Scope]*clockingReg
	globalClocking  map[*Scope]*clockingReg
}

type clockingReg struct {
	block *ClockingBlock
	span  source.Span
}

// NewCompilation builds an empty compilation with a root scope.
func NewCompilation(opts Options) *Compilation {
	max := opts.MaxDiagnostics
	if max <= 0 {
		max = defaultMaxDiagnostics
	}
	c := &Compilation{
		opts:            opts,
		bag:             diag.NewBag(max),
		binder:          opts.Binder,
		defaultClocking: make(map[*Scope]*clockingReg),
		globalClocking:  make(map[*Scope]*clockingReg),
	}
	c.rootSym = &Root{symbolBase: makeBase(KindRoot, "$root", source.Span{})}
	c.root = newScope(c, c.rootSym)
	c.rootSym.body = c.root
	c.register(c.rootSym)
	return c
}

// Root returns the root scope.
func (c *Compilation) Root() *Scope { return c.root }

// Diagnostics returns the diagnostic sink.
func (c *Compilation) Diagnostics() *diag.Bag { return c.bag }

// Options returns the configuration the compilation was built with.
func (c *Compilation) Options() Options { return c.opts }

// AddDiag records a diagnostic and returns its handle.
func (c *Compilation) AddDiag(sev diag.Severity, code diag.Code, span source.Span) *diag.Handle {
	return c.bag.AddNew(sev, code, span)
}

// register appends a symbol to the creation-order registry.
func (c *Compilation) register(sym Symbol) {
	c.symbols = append(c.symbols, sym)
}

// Symbols returns every symbol in creation order.
func (c *Compilation) Symbols() []Symbol { return c.symbols }

// NoteDefaultClocking registers block as the default clocking of scope. At
// most one registration per scope; duplicates are diagnosed with a note at
// the first.
func (c *Compilation) NoteDefaultClocking(scope *Scope, block *ClockingBlock, span source.Span) {
	if prev, ok := c.defaultClocking[scope]; ok {
		scope.AddDiag(diag.ClockingMultipleDefault, span).
			AddNote(diag.NotePreviousDefinition, prev.span)
		return
	}
	c.defaultClocking[scope] = &clockingReg{block: block, span: span}
}

// DefaultClocking returns the default clocking block registered for scope,
// or nil.
func (c *Compilation) DefaultClocking(scope *Scope) *ClockingBlock {
	if reg, ok := c.defaultClocking[scope]; ok {
		return reg.block
	}
	return nil
}

// NoteGlobalClocking registers block as the global clocking of scope.
func (c *Compilation) NoteGlobalClocking(scope *Scope, block *ClockingBlock, span source.Span) {
	if prev, ok := c.globalClocking[scope]; ok {
		scope.AddDiag(diag.ClockingMultipleGlobal, span).
			AddNote(diag.NotePreviousDefinition, prev.span)
		return
	}
	c.globalClocking[scope] = &clockingReg{block: block, span: span}
}

// GlobalClocking returns the global clocking block registered for scope, or
// nil.
func (c *Compilation) GlobalClocking(scope *Scope) *ClockingBlock {
	if reg, ok := c.globalClocking[scope]; ok {
		return reg.block
	}
	return nil
}

// ForceElaborate forces every deferred property in symbol creation order,
// fixing the diagnostic emission order. Forcing is idempotent; calling this
// twice emits nothing new.
func (c *Compilation) ForceElaborate() {
	for _, sym := range c.symbols {
		switch s := sym.(type) {
		case *Net:
			s.Delay()
			s.CheckInitializer()
		case *Variable:
			s.Initializer()
		case *ContinuousAssign:
			s.Assignment()
		case *ClockingBlock:
			s.Event()
			s.DefaultInputSkew()
			s.DefaultOutputSkew()
		case *RandSeqProduction:
			s.Rules()
		case *ElabSystemTask:
			s.Message()
		}
	}
}

// IssueElabTasks issues the diagnostic of every elaboration system task, in
// creation order. Distinct from ForceElaborate: computing a task's message
// and issuing its diagnostic are separate actions.
func (c *Compilation) IssueElabTasks() {
	for _, sym := range c.symbols {
		if task, ok := sym.(*ElabSystemTask); ok {
			task.Issue()
		}
	}
}
