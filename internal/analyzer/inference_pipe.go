package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/config"
	"github.com/tova-lang/tova/internal/typesystem"
)

// pipeTransformerResult applies the shape rule for one of spec.md §4.2's
// built-in pipe transformers (config.PipeTransformers), given the piped
// value's type and the call's remaining arguments (its first argument is
// implicit — the piped value — so call.Arguments here are the explicit
// ones only, e.g. the predicate in `xs |> filter(pred)`).
func (a *Analyzer) pipeTransformerResult(name string, left typesystem.Type, call *ast.CallExpression) (typesystem.Type, bool) {
	if !config.PipeTransformers[name] {
		return nil, false
	}
	for _, arg := range call.Arguments {
		a.infer(arg)
	}
	leftArr, isArray := left.(typesystem.Array)

	switch name {
	case "filter", "sorted", "reversed", "unique", "take", "drop":
		if isArray {
			return leftArr, true
		}
		return left, true
	case "map":
		if len(call.Arguments) > 0 {
			if lam, ok := call.Arguments[0].(*ast.Lambda); ok && lam.ReturnType != nil {
				return typesystem.Array{Elem: a.resolveTypeExpr(lam.ReturnType)}, true
			}
		}
		return typesystem.Array{Elem: typesystem.Unknown}, true
	case "flatten":
		if isArray {
			if inner, ok := leftArr.Elem.(typesystem.Array); ok {
				return inner, true
			}
		}
		return left, true
	case "join":
		return typesystem.String_, true
	case "count", "len", "sum":
		if name == "sum" && isArray {
			return leftArr.Elem, true
		}
		return typesystem.Int, true
	case "any", "all", "every", "some":
		return typesystem.Bool, true
	case "first", "last", "find":
		if isArray {
			return typesystem.Option(leftArr.Elem), true
		}
		return typesystem.Option(typesystem.Unknown), true
	}
	return nil, false
}
