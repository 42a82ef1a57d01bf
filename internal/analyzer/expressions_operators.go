package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/typesystem"
)

var comparisonOps = map[string]bool{
	"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true,
}

func (a *Analyzer) VisitBinaryExpression(n *ast.BinaryExpression) {
	left := a.infer(n.Left)
	right := a.infer(n.Right)
	if comparisonOps[n.Operator] {
		a.setType(typesystem.Bool)
		return
	}
	if n.Operator == "++" {
		a.setType(typesystem.String_)
		return
	}
	// Arithmetic: Float "infects" Int (spec.md §3 compatibility — Float
	// is the wider of the two numeric primitives).
	if isFloatType(left) || isFloatType(right) {
		a.setType(typesystem.Float)
		return
	}
	if isStringType(left) || isStringType(right) {
		a.setType(typesystem.String_)
		return
	}
	if isIntType(left) && isIntType(right) {
		a.setType(typesystem.Int)
		return
	}
	a.setType(typesystem.Unknown)
}

func isIntType(t typesystem.Type) bool {
	p, ok := t.(typesystem.Primitive)
	return ok && p.Name == "Int"
}

func isFloatType(t typesystem.Type) bool {
	p, ok := t.(typesystem.Primitive)
	return ok && p.Name == "Float"
}

func isStringType(t typesystem.Type) bool {
	p, ok := t.(typesystem.Primitive)
	return ok && p.Name == "String"
}

func (a *Analyzer) VisitUnaryExpression(n *ast.UnaryExpression) {
	operand := a.infer(n.Operand)
	if n.Operator == "not" || n.Operator == "!" {
		a.setType(typesystem.Bool)
		return
	}
	a.setType(operand)
}

func (a *Analyzer) VisitLogicalExpression(n *ast.LogicalExpression) {
	// Narrowing: `a && b` analyzes b under a's positive narrowing overlay;
	// `a || b` analyzes b under a's negative overlay (spec.md §4.3).
	a.infer(n.Left)
	overlay := a.narrowingFromCondition(n.Left, n.Operator == "&&")
	a.pushScope(a.scope.Context)
	a.applyOverlay(overlay)
	a.infer(n.Right)
	a.popScope()
	a.setType(typesystem.Bool)
}

func (a *Analyzer) VisitChainedComparison(n *ast.ChainedComparison) {
	for _, operand := range n.Operands {
		a.infer(operand)
	}
	a.setType(typesystem.Bool)
}

func (a *Analyzer) VisitMembershipExpression(n *ast.MembershipExpression) {
	a.infer(n.Element)
	a.infer(n.Haystack)
	a.setType(typesystem.Bool)
}
