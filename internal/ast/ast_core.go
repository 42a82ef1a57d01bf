package ast

import "github.com/tova-lang/tova/internal/token"

// Node is the base interface for every AST node (spec.md §6).
type Node interface {
	Accept(v Visitor)
	GetToken() token.Token
}

// Statement is a Node that appears in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every AST the analyzer walks: "a single
// already-merged program" per spec.md §1 (no module-graph resolution).
type Program struct {
	File       string
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) GetToken() token.Token {
	if p == nil || len(p.Statements) == 0 {
		return token.Token{}
	}
	return p.Statements[0].GetToken()
}

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)          { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()           {}
func (i *Identifier) GetToken() token.Token     { return i.Token }

// IntegerLiteral is an integral numeric literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (l *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(l) }
func (l *IntegerLiteral) expressionNode()       {}
func (l *IntegerLiteral) GetToken() token.Token { return l.Token }

// FloatLiteral is a non-integral numeric literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (l *FloatLiteral) Accept(v Visitor)      { v.VisitFloatLiteral(l) }
func (l *FloatLiteral) expressionNode()       {}
func (l *FloatLiteral) GetToken() token.Token { return l.Token }

// StringLiteral is a plain string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (l *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(l) }
func (l *StringLiteral) expressionNode()       {}
func (l *StringLiteral) GetToken() token.Token { return l.Token }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (l *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(l) }
func (l *BooleanLiteral) expressionNode()       {}
func (l *BooleanLiteral) GetToken() token.Token { return l.Token }

// NilLiteral is the literal `nil`.
type NilLiteral struct {
	Token token.Token
}

func (l *NilLiteral) Accept(v Visitor)      { v.VisitNilLiteral(l) }
func (l *NilLiteral) expressionNode()       {}
func (l *NilLiteral) GetToken() token.Token { return l.Token }

// TemplateStringLiteral is a string with embedded `${expr}` interpolations.
// Parts alternate StringLiteral segments and arbitrary expressions.
type TemplateStringLiteral struct {
	Token token.Token
	Parts []Expression
}

func (l *TemplateStringLiteral) Accept(v Visitor)      { v.VisitTemplateStringLiteral(l) }
func (l *TemplateStringLiteral) expressionNode()       {}
func (l *TemplateStringLiteral) GetToken() token.Token { return l.Token }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (l *ArrayLiteral) Accept(v Visitor)      { v.VisitArrayLiteral(l) }
func (l *ArrayLiteral) expressionNode()       {}
func (l *ArrayLiteral) GetToken() token.Token { return l.Token }

// ObjectLiteral is `{ field: expr, ... }` (a record literal).
type ObjectLiteral struct {
	Token  token.Token
	Fields map[string]Expression
	Spread Expression // optional `{ ...base, field: expr }`
}

func (l *ObjectLiteral) Accept(v Visitor)      { v.VisitObjectLiteral(l) }
func (l *ObjectLiteral) expressionNode()       {}
func (l *ObjectLiteral) GetToken() token.Token { return l.Token }

// TupleExpression is `(e1, e2, ...)`.
type TupleExpression struct {
	Token    token.Token
	Elements []Expression
}

func (l *TupleExpression) Accept(v Visitor)      { v.VisitTupleExpression(l) }
func (l *TupleExpression) expressionNode()       {}
func (l *TupleExpression) GetToken() token.Token { return l.Token }
