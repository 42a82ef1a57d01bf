package ast

import "github.com/tova-lang/tova/internal/token"

// ColumnExpression is `table.column` read access inside a `data` block,
// distinct from MemberExpression because columns resolve against a data
// block's schema symbol rather than a record's field map (supplemented
// feature: data blocks model a typed tabular store, grounded on the
// declaration-form family already in spec.md's block list).
type ColumnExpression struct {
	Token  token.Token
	Table  Expression
	Column string
}

func (e *ColumnExpression) Accept(v Visitor)      { v.VisitColumnExpression(e) }
func (e *ColumnExpression) expressionNode()       {}
func (e *ColumnExpression) GetToken() token.Token { return e.Token }

// ColumnAssignExpression is `table.column := expr`, a bulk column
// assignment. Value must be compatible with the column's declared type.
type ColumnAssignExpression struct {
	Token  token.Token
	Table  Expression
	Column string
	Value  Expression
}

func (e *ColumnAssignExpression) Accept(v Visitor)      { v.VisitColumnAssignExpression(e) }
func (e *ColumnAssignExpression) expressionNode()       {}
func (e *ColumnAssignExpression) GetToken() token.Token { return e.Token }
