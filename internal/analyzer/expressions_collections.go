package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/typesystem"
)

func (a *Analyzer) VisitListComprehension(n *ast.ListComprehension) {
	iterType := a.infer(n.Iterable)
	a.pushScope(symbols.ContextBlock)
	a.bindPattern(n.Pattern, elementTypeOf(iterType))
	for _, cond := range n.Conditions {
		a.infer(cond)
	}
	resultType := a.infer(n.Result)
	a.popScope()
	a.setType(typesystem.Array{Elem: resultType})
}

func (a *Analyzer) VisitDictComprehension(n *ast.DictComprehension) {
	iterType := a.infer(n.Iterable)
	a.pushScope(symbols.ContextBlock)
	a.bindPattern(n.Pattern, elementTypeOf(iterType))
	for _, cond := range n.Conditions {
		a.infer(cond)
	}
	a.infer(n.Key)
	a.infer(n.Value)
	a.popScope()
	a.setType(typesystem.Generic{Base: "Dict", Args: []typesystem.Type{typesystem.String_, typesystem.Unknown}})
}

func elementTypeOf(t typesystem.Type) typesystem.Type {
	if arr, ok := t.(typesystem.Array); ok {
		return arr.Elem
	}
	return typesystem.Unknown
}

func (a *Analyzer) VisitRangeExpression(n *ast.RangeExpression) {
	a.infer(n.Lo)
	a.infer(n.Hi)
	a.setType(typesystem.Array{Elem: typesystem.Int})
}

func (a *Analyzer) VisitSliceExpression(n *ast.SliceExpression) {
	objType := a.infer(n.Object)
	if n.Lo != nil {
		a.infer(n.Lo)
	}
	if n.Hi != nil {
		a.infer(n.Hi)
	}
	a.setType(objType)
}

func (a *Analyzer) VisitSpreadExpression(n *ast.SpreadExpression) {
	t := a.infer(n.Operand)
	a.setType(t)
}

// VisitPropagateExpression implements `expr?`: on `Err(e)`/`None`, the
// enclosing function returns early with that failure value (spec.md §4.2,
// §4.4 treats this as a conditional early return, which is why a function
// whose only return-proof comes from `?` still relies on the implicit
// trailing-expression return rather than definitelyReturns proving it).
func (a *Analyzer) VisitPropagateExpression(n *ast.PropagateExpression) {
	t := a.infer(n.Operand)
	if inner, isOpt := typesystem.IsOption(t); isOpt {
		a.setType(inner)
		return
	}
	if ok, _, isResult := typesystem.IsResult(t); isResult {
		a.setType(ok)
		return
	}
	a.setType(typesystem.Unknown)
}

// VisitAwaitExpression requires async-depth > 0 (E300).
func (a *Analyzer) VisitAwaitExpression(n *ast.AwaitExpression) {
	if a.asyncDepth == 0 {
		a.addError(diagnostics.NewError(diagnostics.ErrAwaitOutsideAsync, n.Token))
	}
	t := a.infer(n.Operand)
	a.setType(t)
}

func (a *Analyzer) VisitYieldExpression(n *ast.YieldExpression) {
	if n.Operand != nil {
		a.infer(n.Operand)
	}
	a.setType(typesystem.Nil)
}
