package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/typesystem"
)

func (a *Analyzer) VisitLambda(n *ast.Lambda) {
	a.pushScope(symbols.ContextFunction)
	defer a.popScope()

	paramTypes := make([]typesystem.Type, len(n.Params))
	for i, p := range n.Params {
		pt := a.resolveTypeExpr(p.TypeAnnotation)
		paramTypes[i] = pt
		if p.Default != nil {
			a.infer(p.Default)
		}
		a.define(&symbols.Symbol{
			Name:         p.Name,
			Kind:         symbols.KindParameter,
			Mutable:      true,
			Declared:     p.Token,
			Annotation:   pt,
			InferredType: typeOrUnknown(pt).String(),
		})
	}

	declaredRet := a.resolveTypeExpr(n.ReturnType)
	if n.IsAsync {
		a.asyncDepth++
		defer func() { a.asyncDepth-- }()
	}
	a.returnTypeStack = append(a.returnTypeStack, declaredRet)
	a.returnAnnotated = append(a.returnAnnotated, n.ReturnType != nil)
	defer func() {
		a.returnTypeStack = a.returnTypeStack[:len(a.returnTypeStack)-1]
		a.returnAnnotated = a.returnAnnotated[:len(a.returnAnnotated)-1]
	}()

	var bodyType typesystem.Type = typesystem.Unknown
	if n.BlockBody != nil {
		n.BlockBody.Accept(a)
		if n.ReturnType != nil && !definitelyReturns(n.BlockBody) {
			a.warnNotAllPathsReturn(n.BlockBody.Token)
		}
		bodyType = declaredRet
	} else {
		bodyType = a.infer(n.Body)
	}

	ret := declaredRet
	if ret == nil {
		ret = bodyType
	} else if !typesystem.Compatible(declaredRet, bodyType, typesystem.Mode{Strict: a.opts.Strict}) {
		a.addReturnTypeMismatch(n.Token, "<lambda>", declaredRet, bodyType)
	}

	fnType := typesystem.Function{Params: paramTypes, Return: ret}
	a.setType(fnType)
}

// VisitMatchExpression implements the match-expression inference and
// exhaustiveness check (spec.md §4.2, §4.5).
func (a *Analyzer) VisitMatchExpression(n *ast.MatchExpression) {
	subjectType := a.infer(n.Subject)
	subjectIdent, subjectIsIdent := n.Subject.(*ast.Identifier)

	var resultType typesystem.Type
	for _, arm := range n.Arms {
		a.pushScope(symbols.ContextBlock)
		a.bindPattern(arm.Pattern, subjectType)
		if subjectIsIdent {
			if vp, ok := arm.Pattern.(*ast.VariantPattern); ok {
				a.scope.Narrow(subjectIdent.Value, variantNarrowedType(subjectType, vp.VariantName))
			}
		}
		if arm.Guard != nil {
			a.infer(arm.Guard)
		}
		bodyType := a.infer(arm.Body)
		if resultType == nil {
			resultType = bodyType
		} else if !typesystem.Compatible(resultType, bodyType, typesystem.Mode{Strict: a.opts.Strict}) {
			resultType = typesystem.Union{Members: []typesystem.Type{resultType, bodyType}}
		}
		a.popScope()
	}
	a.checkMatchExhaustiveness(n, subjectType)
	if resultType == nil {
		resultType = typesystem.Unknown
	}
	a.setType(resultType)
}

func variantNarrowedType(subjectType typesystem.Type, variant string) string {
	if g, ok := subjectType.(typesystem.Generic); ok {
		return typesystem.Generic{Base: variant, Args: g.Args}.String()
	}
	return variant
}

func (a *Analyzer) VisitIfExpression(n *ast.IfExpression) {
	a.infer(n.Condition)
	thenOverlay := a.narrowingFromCondition(n.Condition, true)
	elseOverlay := a.narrowingFromCondition(n.Condition, false)

	a.pushScope(a.scope.Context)
	a.applyOverlay(thenOverlay)
	thenType := a.infer(n.Then)
	a.popScope()

	a.pushScope(a.scope.Context)
	a.applyOverlay(elseOverlay)
	elseType := a.infer(n.Else)
	a.popScope()

	if typesystem.Compatible(thenType, elseType, typesystem.Mode{Strict: a.opts.Strict}) {
		a.setType(thenType)
		return
	}
	a.setType(typesystem.Union{Members: []typesystem.Type{thenType, elseType}})
}
