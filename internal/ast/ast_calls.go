package ast

import "github.com/tova-lang/tova/internal/token"

// NamedArgument is one `name: value` entry in a call's named-argument
// tail (spec.md §4.7: "named arguments, treat them collectively as one
// additional positional object argument").
type NamedArgument struct {
	Name  string
	Value Expression
}

// CallExpression is `f(a, b, name: c, ...spread)`.
type CallExpression struct {
	Token         token.Token
	Callee        Expression
	Arguments     []Expression
	NamedArgs     []NamedArgument
	SpreadArg     Expression // optional trailing `...xs`
	TypeArguments []TypeExpr // optional explicit `f<Int>(...)`
}

func (e *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(e) }
func (e *CallExpression) expressionNode()       {}
func (e *CallExpression) GetToken() token.Token { return e.Token }

// MemberExpression is `x.y` or the optional-chain form `x?.y`.
type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property string
	Optional bool
}

func (e *MemberExpression) Accept(v Visitor)      { v.VisitMemberExpression(e) }
func (e *MemberExpression) expressionNode()       {}
func (e *MemberExpression) GetToken() token.Token { return e.Token }

// IndexExpression is `x[i]`.
type IndexExpression struct {
	Token token.Token
	Object Expression
	Index  Expression
}

func (e *IndexExpression) Accept(v Visitor)      { v.VisitIndexExpression(e) }
func (e *IndexExpression) expressionNode()       {}
func (e *IndexExpression) GetToken() token.Token { return e.Token }

// PipeExpression is `left |> right`, where `right` is a call-shaped
// expression whose first argument is implicitly `left` (spec.md §4.2).
type PipeExpression struct {
	Token token.Token
	Left  Expression
	Right Expression
}

func (e *PipeExpression) Accept(v Visitor)      { v.VisitPipeExpression(e) }
func (e *PipeExpression) expressionNode()       {}
func (e *PipeExpression) GetToken() token.Token { return e.Token }
