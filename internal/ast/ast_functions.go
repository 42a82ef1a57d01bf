package ast

import "github.com/tova-lang/tova/internal/token"

// Param is one function/lambda parameter, shared by Lambda and
// FunctionDeclaration.
type Param struct {
	Token          token.Token
	Name           string
	TypeAnnotation TypeExpr   // nil when untyped (inferred or Unknown)
	Default        Expression // nil when required
	Variadic       bool
}

// Lambda is `(params) => body` or `(params): RetType => body`.
type Lambda struct {
	Token      token.Token
	Params     []Param
	ReturnType TypeExpr // nil when unannotated
	Body       Expression
	BlockBody  *BlockStatement // non-nil when the body is `{ ... }` rather than a single expression
	IsAsync    bool
}

func (e *Lambda) Accept(v Visitor)      { v.VisitLambda(e) }
func (e *Lambda) expressionNode()       {}
func (e *Lambda) GetToken() token.Token { return e.Token }

// MatchExpression is `match subject { arm... }` (spec.md §4.5
// exhaustiveness checking operates over this node's Arms).
type MatchExpression struct {
	Token   token.Token
	Subject Expression
	Arms    []MatchArm
}

func (e *MatchExpression) Accept(v Visitor)      { v.VisitMatchExpression(e) }
func (e *MatchExpression) expressionNode()       {}
func (e *MatchExpression) GetToken() token.Token { return e.Token }

// MatchArm is one `pattern if guard => body` arm.
type MatchArm struct {
	Token   token.Token
	Pattern Pattern
	Guard   Expression // optional `if cond`
	Body    Expression
}

// Pattern is the closed set of match patterns spec.md §4.5 enumerates.
type Pattern interface {
	Node
	patternNode()
}

// WildcardPattern is `_`: matches anything, binds nothing, always covers.
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *WildcardPattern) patternNode()          {}
func (p *WildcardPattern) GetToken() token.Token { return p.Token }

// BindingPattern is a bare identifier: matches anything, binds it to Name.
// Equivalent to WildcardPattern for exhaustiveness purposes, but it
// introduces a new symbol.
type BindingPattern struct {
	Token token.Token
	Name  string
}

func (p *BindingPattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *BindingPattern) patternNode()          {}
func (p *BindingPattern) GetToken() token.Token { return p.Token }

// LiteralPattern matches a specific literal value (int/float/string/bool/nil).
type LiteralPattern struct {
	Token token.Token
	Value Expression // one of the literal expression nodes
}

func (p *LiteralPattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *LiteralPattern) patternNode()          {}
func (p *LiteralPattern) GetToken() token.Token { return p.Token }

// RangePattern matches `lo..hi` or `lo..=hi`. It keeps only the two bound
// expressions: the node has no inclusivity flag, so both spellings produce
// the same node, and the bounds are not rewritten.
type RangePattern struct {
	Token token.Token
	Lo    Expression
	Hi    Expression
}

func (p *RangePattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *RangePattern) patternNode()          {}
func (p *RangePattern) GetToken() token.Token { return p.Token }

// VariantPattern matches an ADT variant: `Color.Red`, `Some(x)`,
// `Shape.Circle{radius: r}`.
type VariantPattern struct {
	Token       token.Token
	TypeName    string // "" when the variant is referenced unqualified (e.g. `Red` inside a `match color`)
	VariantName string
	Positional  []Pattern          // `Some(x)` style
	Fields      map[string]Pattern // `Circle{radius: r}` style
}

func (p *VariantPattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *VariantPattern) patternNode()          {}
func (p *VariantPattern) GetToken() token.Token { return p.Token }

// TuplePattern matches `(p1, p2, ...)`.
type TuplePattern struct {
	Token    token.Token
	Elements []Pattern
}

func (p *TuplePattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *TuplePattern) patternNode()          {}
func (p *TuplePattern) GetToken() token.Token { return p.Token }

// ArrayPattern matches `[p1, p2, ...rest]`.
type ArrayPattern struct {
	Token   token.Token
	Prefix  []Pattern
	Rest    string // "" when there is no `...rest` tail
	HasRest bool
}

func (p *ArrayPattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *ArrayPattern) patternNode()          {}
func (p *ArrayPattern) GetToken() token.Token { return p.Token }

// OrPattern matches `p1 | p2 | ...`: it covers the subject when at least
// one alternative covers it; the reachability of each alternative is not
// checked.
type OrPattern struct {
	Token        token.Token
	Alternatives []Pattern
}

func (p *OrPattern) Accept(v Visitor)      { v.VisitUnknown(p) }
func (p *OrPattern) patternNode()          {}
func (p *OrPattern) GetToken() token.Token { return p.Token }

// IfExpression is the expression-position `if cond then a else b` form,
// distinct from IfStatement (the statement-position `if { } else { }`
// form) because the analyzer requires both branches of the expression
// form to produce a type (spec.md §4.2).
type IfExpression struct {
	Token     token.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *IfExpression) Accept(v Visitor)      { v.VisitIfExpression(e) }
func (e *IfExpression) expressionNode()       {}
func (e *IfExpression) GetToken() token.Token { return e.Token }
