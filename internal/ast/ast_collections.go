package ast

import "github.com/tova-lang/tova/internal/token"

// ListComprehension is `[expr for pattern in iterable if cond]`.
type ListComprehension struct {
	Token      token.Token
	Result     Expression
	Pattern    Pattern
	Iterable   Expression
	Conditions []Expression
}

func (e *ListComprehension) Accept(v Visitor)      { v.VisitListComprehension(e) }
func (e *ListComprehension) expressionNode()       {}
func (e *ListComprehension) GetToken() token.Token { return e.Token }

// DictComprehension is `{key: value for pattern in iterable if cond}`.
type DictComprehension struct {
	Token      token.Token
	Key        Expression
	Value      Expression
	Pattern    Pattern
	Iterable   Expression
	Conditions []Expression
}

func (e *DictComprehension) Accept(v Visitor)      { v.VisitDictComprehension(e) }
func (e *DictComprehension) expressionNode()       {}
func (e *DictComprehension) GetToken() token.Token { return e.Token }

// RangeExpression is `lo..hi` or `lo..=hi` used as a value (not a match
// pattern) — e.g. `for i in 0..10`.
type RangeExpression struct {
	Token     token.Token
	Lo        Expression
	Hi        Expression
	Inclusive bool
}

func (e *RangeExpression) Accept(v Visitor)      { v.VisitRangeExpression(e) }
func (e *RangeExpression) expressionNode()       {}
func (e *RangeExpression) GetToken() token.Token { return e.Token }

// SliceExpression is `x[lo:hi]`.
type SliceExpression struct {
	Token  token.Token
	Object Expression
	Lo     Expression // nil when omitted
	Hi     Expression // nil when omitted
}

func (e *SliceExpression) Accept(v Visitor)      { v.VisitSliceExpression(e) }
func (e *SliceExpression) expressionNode()       {}
func (e *SliceExpression) GetToken() token.Token { return e.Token }

// SpreadExpression is `...x` used as a value-position expression (inside
// an array/call argument list that isn't captured by the dedicated Spread
// fields on ArrayLiteral/CallExpression, e.g. nested spreads).
type SpreadExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *SpreadExpression) Accept(v Visitor)      { v.VisitSpreadExpression(e) }
func (e *SpreadExpression) expressionNode()       {}
func (e *SpreadExpression) GetToken() token.Token { return e.Token }

// PropagateExpression is `expr?`: short-circuits out of the enclosing
// function on `None`/`Err` (spec.md §4.2, §4.4 return-path analysis treats
// this as a conditional early return).
type PropagateExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *PropagateExpression) Accept(v Visitor)      { v.VisitPropagateExpression(e) }
func (e *PropagateExpression) expressionNode()       {}
func (e *PropagateExpression) GetToken() token.Token { return e.Token }

// AwaitExpression is `await expr`; only legal inside an async function
// (spec.md E300).
type AwaitExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *AwaitExpression) Accept(v Visitor)      { v.VisitAwaitExpression(e) }
func (e *AwaitExpression) expressionNode()       {}
func (e *AwaitExpression) GetToken() token.Token { return e.Token }

// YieldExpression is `yield expr` inside a generator function.
type YieldExpression struct {
	Token   token.Token
	Operand Expression // nil for a bare `yield`
}

func (e *YieldExpression) Accept(v Visitor)      { v.VisitYieldExpression(e) }
func (e *YieldExpression) expressionNode()       {}
func (e *YieldExpression) GetToken() token.Token { return e.Token }
