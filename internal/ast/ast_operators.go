package ast

import "github.com/tova-lang/tova/internal/token"

// BinaryExpression covers arithmetic, comparison, and concatenation
// operators (spec.md §4.2 inference rules list `++ + - * / % ** ==` etc.
// together).
type BinaryExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (e *BinaryExpression) Accept(v Visitor)      { v.VisitBinaryExpression(e) }
func (e *BinaryExpression) expressionNode()       {}
func (e *BinaryExpression) GetToken() token.Token { return e.Token }

// UnaryExpression covers prefix `not`/`!` and `-`.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (e *UnaryExpression) Accept(v Visitor)      { v.VisitUnaryExpression(e) }
func (e *UnaryExpression) expressionNode()       {}
func (e *UnaryExpression) GetToken() token.Token { return e.Token }

// LogicalExpression is `&&` / `||`, kept distinct from BinaryExpression
// because narrowing (spec.md §4.3) treats logical connectives specially.
// The constant-condition codes W202/W203 are not emitted by the analyzer.
type LogicalExpression struct {
	Token    token.Token
	Operator string // "&&" or "||"
	Left     Expression
	Right    Expression
}

func (e *LogicalExpression) Accept(v Visitor)      { v.VisitLogicalExpression(e) }
func (e *LogicalExpression) expressionNode()       {}
func (e *LogicalExpression) GetToken() token.Token { return e.Token }

// ChainedComparison is `a < b < c`: Operands has len(Operators)+1 entries.
type ChainedComparison struct {
	Token     token.Token
	Operands  []Expression
	Operators []string
}

func (e *ChainedComparison) Accept(v Visitor)      { v.VisitChainedComparison(e) }
func (e *ChainedComparison) expressionNode()       {}
func (e *ChainedComparison) GetToken() token.Token { return e.Token }

// MembershipExpression is `x in y` / `x not in y`.
type MembershipExpression struct {
	Token    token.Token
	Negated  bool
	Element  Expression
	Haystack Expression
}

func (e *MembershipExpression) Accept(v Visitor)      { v.VisitMembershipExpression(e) }
func (e *MembershipExpression) expressionNode()       {}
func (e *MembershipExpression) GetToken() token.Token { return e.Token }
