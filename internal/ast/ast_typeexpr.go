package ast

import "github.com/tova-lang/tova/internal/token"

// TypeExpr is the syntactic type-annotation tree — what a parser would
// produce for `: Int`, `: [String]`, `: Result<T, E>`, etc. It is distinct
// from typesystem.Type, which is the analyzer's *inferred/resolved*
// canonical type algebra (spec.md §3 Type vs. Symbol's "declared type
// annotation (AST node)").
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr is a bare name: `Int`, `String`, `Color`.
type NamedTypeExpr struct {
	Token token.Token
	Name  string
}

func (t *NamedTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *NamedTypeExpr) typeExprNode()         {}
func (t *NamedTypeExpr) GetToken() token.Token { return t.Token }

// ArrayTypeExpr is `[T]`.
type ArrayTypeExpr struct {
	Token token.Token
	Elem  TypeExpr
}

func (t *ArrayTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *ArrayTypeExpr) typeExprNode()         {}
func (t *ArrayTypeExpr) GetToken() token.Token { return t.Token }

// TupleTypeExpr is `(T1, T2, ...)`.
type TupleTypeExpr struct {
	Token token.Token
	Elems []TypeExpr
}

func (t *TupleTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *TupleTypeExpr) typeExprNode()         {}
func (t *TupleTypeExpr) GetToken() token.Token { return t.Token }

// FunctionTypeExpr is `(T1, T2) -> R`.
type FunctionTypeExpr struct {
	Token  token.Token
	Params []TypeExpr
	Return TypeExpr
}

func (t *FunctionTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *FunctionTypeExpr) typeExprNode()         {}
func (t *FunctionTypeExpr) GetToken() token.Token { return t.Token }

// GenericTypeExpr is `Name<T, U>`.
type GenericTypeExpr struct {
	Token token.Token
	Base  string
	Args  []TypeExpr
}

func (t *GenericTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *GenericTypeExpr) typeExprNode()         {}
func (t *GenericTypeExpr) GetToken() token.Token { return t.Token }

// UnionTypeExpr is `A | B`.
type UnionTypeExpr struct {
	Token   token.Token
	Members []TypeExpr
}

func (t *UnionTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *UnionTypeExpr) typeExprNode()         {}
func (t *UnionTypeExpr) GetToken() token.Token { return t.Token }

// OptionalTypeExpr is `T?`, sugar for `Option<T>`.
type OptionalTypeExpr struct {
	Token token.Token
	Inner TypeExpr
}

func (t *OptionalTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *OptionalTypeExpr) typeExprNode()         {}
func (t *OptionalTypeExpr) GetToken() token.Token { return t.Token }

// RefinementTypeExpr is a refinement type `T where pred`, e.g.
// `Int where x > 0`. The analyzer treats the refinement predicate as
// documentation for downstream tools; it narrows only the base type T for
// compatibility purposes (spec.md does not define runtime predicate
// checking, which would belong to code generation/evaluation).
type RefinementTypeExpr struct {
	Token     token.Token
	Base      TypeExpr
	Predicate Expression
}

func (t *RefinementTypeExpr) Accept(v Visitor)      { v.VisitUnknown(t) }
func (t *RefinementTypeExpr) typeExprNode()         {}
func (t *RefinementTypeExpr) GetToken() token.Token { return t.Token }
