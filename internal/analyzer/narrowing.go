package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/typesystem"
)

// overlay is a name -> narrowed-canonical-type-string map, built by
// narrowingFromCondition and installed on a scope via applyOverlay
// (spec.md §4.3 Flow-sensitive narrowing).
type overlay map[string]string

// narrowingFromCondition derives the type-narrowing overlay a condition
// implies for its "positive" branch (the `then`/`&&`-right-hand-side
// side) or, when positive is false, its inverse (the `else` branch).
// Recognizes: `x.isOk()`/`x.isSome()` predicates (narrow to Ok/Some,
// inverse to Err/None — spec.md §3), `x == nil`/`x != nil` nil checks,
// and `x is Type` type tests.
func (a *Analyzer) narrowingFromCondition(cond ast.Expression, positive bool) overlay {
	switch c := cond.(type) {
	case *ast.CallExpression:
		return a.narrowFromPredicateCall(c, positive)
	case *ast.UnaryExpression:
		if c.Operator == "not" || c.Operator == "!" {
			return a.narrowingFromCondition(c.Operand, !positive)
		}
	case *ast.BinaryExpression:
		return a.narrowFromNilCheck(c, positive)
	case *ast.LogicalExpression:
		left := a.narrowingFromCondition(c.Left, positive)
		right := a.narrowingFromCondition(c.Right, positive)
		if c.Operator == "&&" && positive {
			return mergeOverlays(left, right)
		}
		if c.Operator == "||" && !positive {
			return mergeOverlays(left, right)
		}
	}
	return nil
}

func mergeOverlays(a, b overlay) overlay {
	if a == nil {
		return b
	}
	for k, v := range b {
		a[k] = v
	}
	return a
}

// narrowFromPredicateCall handles `x.isOk()`, `x.isSome()`, and their
// inverses `x.isErr()`, `x.isNone()`.
func (a *Analyzer) narrowFromPredicateCall(c *ast.CallExpression, positive bool) overlay {
	member, ok := c.Callee.(*ast.MemberExpression)
	if !ok || len(c.Arguments) != 0 {
		return nil
	}
	ident, ok := member.Object.(*ast.Identifier)
	if !ok {
		return nil
	}
	baseType := a.infer(member.Object)
	okT, errT, isResult := typesystem.IsResult(baseType)
	someT, isOption := typesystem.IsOption(baseType)

	switch member.Property {
	case "isOk":
		if !isResult {
			return nil
		}
		if positive {
			return overlay{ident.Value: okT.String()}
		}
		return overlay{ident.Value: typesystem.Generic{Base: "Err", Args: []typesystem.Type{errT}}.String()}
	case "isErr":
		if !isResult {
			return nil
		}
		return a.narrowFromPredicateCall(&ast.CallExpression{Callee: &ast.MemberExpression{Object: member.Object, Property: "isOk"}}, !positive)
	case "isSome":
		if !isOption {
			return nil
		}
		if positive {
			return overlay{ident.Value: someT.String()}
		}
		return overlay{ident.Value: "Nil"}
	case "isNone":
		if !isOption {
			return nil
		}
		return a.narrowFromPredicateCall(&ast.CallExpression{Callee: &ast.MemberExpression{Object: member.Object, Property: "isSome"}}, !positive)
	}
	return nil
}

// narrowFromNilCheck handles `x == nil` / `x != nil`.
func (a *Analyzer) narrowFromNilCheck(c *ast.BinaryExpression, positive bool) overlay {
	if c.Operator != "==" && c.Operator != "!=" {
		return nil
	}
	var identExpr ast.Expression
	var otherIsNil bool
	if _, ok := c.Right.(*ast.NilLiteral); ok {
		identExpr, otherIsNil = c.Left, true
	} else if _, ok := c.Left.(*ast.NilLiteral); ok {
		identExpr, otherIsNil = c.Right, true
	}
	if !otherIsNil {
		return nil
	}
	ident, ok := identExpr.(*ast.Identifier)
	if !ok {
		return nil
	}
	equalsNil := c.Operator == "=="
	if equalsNil == positive {
		return overlay{ident.Value: "Nil"}
	}
	baseType := a.infer(identExpr)
	if inner, isOpt := typesystem.IsOption(baseType); isOpt {
		return overlay{ident.Value: inner.String()}
	}
	return nil
}

// applyOverlay installs every entry of ov into the current scope.
func (a *Analyzer) applyOverlay(ov overlay) {
	for name, t := range ov {
		a.scope.Narrow(name, t)
	}
}
