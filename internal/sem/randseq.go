package sem

import (
	"silica/internal/diag"
	"silica/internal/syntax"
	"silica/internal/types"
)

// RandSeqProduction is one production of a randsequence grammar. Rules bind
// lazily so productions may reference each other in any order.
type RandSeqProduction struct {
	symbolBase
	body    *Scope
	retType *types.Type
	rules   Lazy[[]*Rule]
}

// Rule is one bound alternative of a production.
type Rule struct {
	// Block is the statement block scope the rule's items bind in.
	Block *StatementBlock
	Prods []RuleProd
	// Weight is the bound case weight, nil when unwritten.
	Weight *Expression
	// IsRandJoin marks a rand join rule; RandJoinExpr is its optional
	// control expression.
	IsRandJoin   bool
	RandJoinExpr *Expression
}

// RuleProd is a bound production item. The set is closed.
type RuleProd interface {
	ruleProd()
}

// ItemProd invokes another production. Target is nil when resolution
// failed.
type ItemProd struct {
	Target *RandSeqProduction
	Args   []*Expression
}

// CodeBlockProd is an inline code block.
type CodeBlockProd struct {
	Block *StatementBlock
}

// IfElseProd chooses between two items on a boolean condition.
type IfElseProd struct {
	Cond *Expression
	If   *ItemProd
	Else *ItemProd // nil when unwritten
}

// RepeatProd repeats an item an integral number of times.
type RepeatProd struct {
	Count *Expression
	Item  *ItemProd
}

// CaseItem is one non-default alternative of a case production.
type CaseItem struct {
	Exprs []*Expression
	Item  *ItemProd
}

// CaseProd dispatches on an expression.
type CaseProd struct {
	Expr    *Expression
	Items   []*CaseItem
	Default *ItemProd // nil when no default alternative
}

func (*ItemProd) ruleProd()      {}
func (*CodeBlockProd) ruleProd() {}
func (*IfElseProd) ruleProd()    {}
func (*RepeatProd) ruleProd()    {}
func (*CaseProd) ruleProd()      {}

// NewProduction creates a production symbol, registered into parent. A nil
// return type in the declaration means void.
func NewProduction(parent *Scope, d *syntax.Production) *RandSeqProduction {
	p := &RandSeqProduction{symbolBase: makeBase(KindRandSeqProduction, d.Name, d.NameSpan)}
	p.setSyntax(d)
	p.body = newScope(parent.comp, p)
	if d.ReturnType == nil {
		p.retType = types.Void()
	} else {
		p.retType = resolveTypeRef(d.ReturnType, types.Logic())
	}
	parent.comp.register(p)
	parent.AddMember(p)
	return p
}

// Body returns the production's scope.
func (p *RandSeqProduction) Body() *Scope { return p.body }

// ReturnType returns the production's return type, void when none was
// declared.
func (p *RandSeqProduction) ReturnType() *types.Type { return p.retType }

// Rules lazily elaborates the production's alternatives. Each rule gets a
// statement block holding one synthesized const variable per distinct
// referenced production with a non-void return type; a production referenced
// N times yields an N-element array of its return type.
func (p *RandSeqProduction) Rules() []*Rule {
	return p.rules.Get(p, func() []*Rule {
		d, ok := p.stx.(*syntax.Production)
		if !ok {
			return nil
		}
		out := make([]*Rule, 0, len(d.Rules))
		for _, rule := range d.Rules {
			out = append(out, p.bindRule(rule))
		}
		return out
	})
}

func (p *RandSeqProduction) bindRule(rule *syntax.ProductionRule) *Rule {
	block := NewStatementBlock(p.body, "", rule.Sp, LifetimeAutomatic)
	block.setSyntax(rule)
	p.createRuleVariables(block, rule)

	ctx := NewContext(block.Body(), LocationMax, BindNone)
	r := &Rule{Block: block}
	for _, prod := range rule.Prods {
		if bound := p.bindProd(&ctx, prod); bound != nil {
			r.Prods = append(r.Prods, bound)
		}
	}
	if rule.Weight != nil {
		r.Weight = ctx.Bind(rule.Weight, BindNone)
		ctx.RequireIntegral(r.Weight, diag.RandSeqWeightNotIntegral)
	}
	if rule.RandJoin != nil {
		r.IsRandJoin = true
		if rule.RandJoin.Expr != nil {
			r.RandJoinExpr = ctx.Bind(rule.RandJoin.Expr, BindNone)
			ctx.RequireNumeric(r.RandJoinExpr, diag.RandSeqJoinNotNumeric)
		}
	}
	return r
}

// createRuleVariables synthesizes the per-rule result variables. Only
// productions that resolve and return non-void contribute one.
func (p *RandSeqProduction) createRuleVariables(block *StatementBlock, rule *syntax.ProductionRule) {
	counts := make(map[string]uint32)
	var order []string
	var visit func(prod syntax.Prod)
	visitItem := func(item *syntax.ProdItem) {
		if item == nil {
			return
		}
		if counts[item.Name] == 0 {
			order = append(order, item.Name)
		}
		counts[item.Name]++
	}
	visit = func(prod syntax.Prod) {
		switch it := prod.(type) {
		case *syntax.ProdItem:
			visitItem(it)
		case *syntax.ProdIfElse:
			visitItem(it.If)
			visitItem(it.Else)
		case *syntax.ProdRepeat:
			visitItem(it.Item)
		case *syntax.ProdCase:
			for _, ci := range it.Items {
				visitItem(ci.Item)
			}
		}
	}
	for _, prod := range rule.Prods {
		visit(prod)
	}

	comp := p.body.comp
	for _, name := range order {
		res := LookupUnqualified(p.body, name, LocationMax, AllowDeclaredAfter)
		target, ok := res.Found.(*RandSeqProduction)
		if !ok || target.retType.IsVoid() {
			continue
		}
		t := target.retType
		if n := counts[name]; n > 1 {
			t = types.FixedArray(t, n)
		}
		v := newVariable(comp, name, rule.Sp, LifetimeAutomatic)
		v.SetType(t)
		v.Flags |= VarFlagConst | VarFlagCompilerGenerated
		block.Body().AddMember(v)
	}
}

func (p *RandSeqProduction) bindProd(ctx *Context, prod syntax.Prod) RuleProd {
	switch it := prod.(type) {
	case *syntax.ProdItem:
		return p.bindItem(ctx, it)
	case *syntax.ProdCodeBlock:
		block := NewStatementBlock(ctx.Scope, "", it.Sp, LifetimeAutomatic)
		block.setSyntax(it)
		return &CodeBlockProd{Block: block}
	case *syntax.ProdIfElse:
		cond := ctx.Bind(it.Cond, BindNone)
		ctx.RequireBooleanConvertible(cond, diag.RandSeqCondNotBoolean)
		bound := &IfElseProd{Cond: cond, If: p.bindItem(ctx, it.If)}
		if it.Else != nil {
			bound.Else = p.bindItem(ctx, it.Else)
		}
		return bound
	case *syntax.ProdRepeat:
		count := ctx.Bind(it.Count, BindNone)
		ctx.RequireIntegral(count, diag.RandSeqRepeatNotIntegral)
		return &RepeatProd{Count: count, Item: p.bindItem(ctx, it.Item)}
	case *syntax.ProdCase:
		bound := &CaseProd{Expr: ctx.Bind(it.Expr, BindNone)}
		for _, ci := range it.Items {
			if ci.IsDefault() {
				if bound.Default == nil {
					bound.Default = p.bindItem(ctx, ci.Item)
				}
				continue
			}
			item := &CaseItem{Item: p.bindItem(ctx, ci.Item)}
			for _, e := range ci.Exprs {
				item.Exprs = append(item.Exprs, ctx.Bind(e, BindNone))
			}
			bound.Items = append(bound.Items, item)
		}
		return bound
	}
	return nil
}

// bindItem resolves a production reference and binds its arguments.
func (p *RandSeqProduction) bindItem(ctx *Context, item *syntax.ProdItem) *ItemProd {
	if item == nil {
		return nil
	}
	bound := &ItemProd{}
	res := LookupUnqualified(p.body, item.Name, LocationMax, AllowDeclaredAfter)
	if res.Found == nil {
		ReportUndeclared(p.body, item.Name, item.Sp, res)
	} else if target, ok := res.Found.(*RandSeqProduction); ok {
		bound.Target = target
	} else {
		p.body.AddDiag(diag.RandSeqNotAProduction, item.Sp).
			AddArg(item.Name).
			AddNote(diag.NoteDeclarationHere, res.Found.Location())
	}
	for _, arg := range item.Args {
		bound.Args = append(bound.Args, ctx.Bind(arg, BindNone))
	}
	return bound
}

func (p *RandSeqProduction) serializeTo(w Writer) {
	w.Write("returnType", p.retType.String())
	w.Write("ruleCount", len(p.Rules()))
}
