package analyzer

import (
	"strconv"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
)

// VisitCallExpression implements spec.md §4.2's Call inference rule: variant
// constructors wrap their argument, registered functions use (and, for
// generics, substitute into) their declared return type, and a small
// builtin table is hard-coded via the symbol seeded in builtins.go.
func (a *Analyzer) VisitCallExpression(n *ast.CallExpression) {
	if member, ok := n.Callee.(*ast.MemberExpression); ok {
		if handled, resultType := a.tryCrossBlockRPC(n, member); handled {
			a.setType(resultType)
			return
		}
	}

	argTypes := make([]typesystem.Type, len(n.Arguments))
	for i, arg := range n.Arguments {
		argTypes[i] = a.infer(arg)
	}
	for _, na := range n.NamedArgs {
		a.infer(na.Value)
	}
	if n.SpreadArg != nil {
		a.infer(n.SpreadArg)
	}

	ident, isIdent := n.Callee.(*ast.Identifier)
	if !isIdent {
		a.infer(n.Callee)
		a.setType(typesystem.Unknown)
		return
	}

	sym := a.scope.Lookup(ident.Value)
	if sym == nil {
		a.addError(diagnostics.NewError(diagnostics.ErrUndefinedIdentifier, n.Token, ident.Value))
		a.setType(typesystem.Unknown)
		return
	}
	sym.Used = true
	if sym.Function == nil {
		a.setType(typesystem.Unknown)
		return
	}

	if sym.Function.VariantOfType != "" {
		var arg typesystem.Type = typesystem.Unknown
		if len(argTypes) > 0 {
			arg = argTypes[0]
		}
		a.setType(typesystem.Generic{Base: sym.Function.VariantOfType, Args: []typesystem.Type{arg}})
		return
	}

	got := len(argTypes)
	if len(n.NamedArgs) > 0 {
		// spec.md §4.7: named arguments collectively count as one
		// additional positional object argument.
		got++
	}
	a.checkArity(n.Token, ident.Value, sym.Function, got)
	a.checkArgTypes(n.Token, ident.Value, sym.Function, argTypes)

	ret := sym.Function.DeclaredReturn
	if len(sym.Function.TypeParams) > 0 && ret != nil {
		subst := typesystem.Subst{}
		for i, pt := range sym.Function.ParamTypes {
			if i < len(argTypes) {
				typesystem.BindTypeParams(sym.Function.TypeParams, pt, argTypes[i], subst)
			}
		}
		ret = typesystem.Apply(ret, subst)
	}
	if ret == nil {
		ret = typesystem.FromString(sym.InferredType)
	}
	a.setType(ret)
}

// checkArity validates call arity against the declared required/total
// parameter counts, emitting E305 in strict mode or W209 otherwise.
func (a *Analyzer) checkArity(loc token.Token, name string, fn *symbols.FunctionData, got int) {
	if got >= fn.RequiredCount && got <= fn.TotalCount {
		return
	}
	expect := strconv.Itoa(fn.RequiredCount)
	if fn.RequiredCount != fn.TotalCount {
		expect = expect + "-" + strconv.Itoa(fn.TotalCount)
	}
	if a.opts.Strict {
		a.addError(diagnostics.NewError(diagnostics.ErrArgumentCount, loc, name, expect+" arguments", got))
	} else {
		a.addWarning(diagnostics.NewWarning(diagnostics.WarnArgumentCount, loc, name, expect+" arguments", got))
	}
}

func (a *Analyzer) checkArgTypes(loc token.Token, name string, fn *symbols.FunctionData, argTypes []typesystem.Type) {
	mode := typesystem.Mode{Strict: a.opts.Strict}
	for i, at := range argTypes {
		if i >= len(fn.ParamTypes) || fn.ParamTypes[i] == nil {
			continue
		}
		expected := fn.ParamTypes[i]
		if isParamVariable(fn.TypeParams, expected) {
			continue // ungrounded type parameter: skip per spec.md §4.2
		}
		if !typesystem.Compatible(expected, at, mode) {
			if a.opts.Strict {
				a.addError(diagnostics.NewError(diagnostics.ErrArgumentType, loc, i+1, name, expected.String(), at.String()))
			} else {
				a.addWarning(diagnostics.NewWarning(diagnostics.WarnArgumentType, loc, i+1, name, expected.String(), at.String()))
			}
		}
	}
}

func isParamVariable(params []string, t typesystem.Type) bool {
	v, ok := t.(typesystem.Variable)
	if !ok {
		return false
	}
	for _, p := range params {
		if p == v.Name {
			return true
		}
	}
	return false
}

// tryCrossBlockRPC implements spec.md §4.7's cross-block RPC validation:
// `other.fn()` where `other` names a peer named server block.
func (a *Analyzer) tryCrossBlockRPC(n *ast.CallExpression, member *ast.MemberExpression) (bool, typesystem.Type) {
	if a.currentServerBlock == "" {
		return false, nil
	}
	ident, ok := member.Object.(*ast.Identifier)
	if !ok {
		return false, nil
	}
	if a.scope.Lookup(ident.Value) != nil {
		return false, nil // shadowed by a real local/param — not RPC syntax
	}
	peerFns, isKnownBlock := a.blockFunctions[ident.Value]
	if !isKnownBlock {
		return false, nil
	}
	for _, arg := range n.Arguments {
		a.infer(arg)
	}
	if ident.Value == a.currentServerBlock {
		a.addWarning(diagnostics.NewWarning(diagnostics.WarnSelfCallViaRPC, n.Token, a.currentServerBlock, member.Property, member.Property))
		return true, typesystem.Unknown
	}
	if !peerFns[member.Property] {
		a.addError(diagnostics.NewError(diagnostics.ErrUndefinedBlockFunction, n.Token, member.Property, ident.Value))
		return true, typesystem.Unknown
	}
	return true, typesystem.Unknown
}

func (a *Analyzer) VisitMemberExpression(n *ast.MemberExpression) {
	objType := a.infer(n.Object)
	if rec, ok := objType.(typesystem.Record); ok {
		if ft, ok := rec.Fields[n.Property]; ok {
			a.setType(ft)
			return
		}
	}
	a.setType(typesystem.Unknown)
}

func (a *Analyzer) VisitIndexExpression(n *ast.IndexExpression) {
	objType := a.infer(n.Object)
	a.infer(n.Index)
	if arr, ok := objType.(typesystem.Array); ok {
		a.setType(arr.Elem)
		return
	}
	if tup, ok := objType.(typesystem.Tuple); ok {
		if lit, ok := n.Index.(*ast.IntegerLiteral); ok && int(lit.Value) >= 0 && int(lit.Value) < len(tup.Elems) {
			a.setType(tup.Elems[lit.Value])
			return
		}
	}
	a.setType(typesystem.Unknown)
}

// VisitPipeExpression implements `left |> right`: right is call-shaped
// with `left` as its implicit first argument (spec.md §4.2). Known pipe
// transformers (config.PipeTransformers) get a dedicated shape rule in
// inference_pipe.go. For anything else, `right`'s callee is looked up as
// an ordinary function symbol, its remaining arguments are inferred, and
// the result is the function's declared return type (Unknown when it has
// none); leftType is not checked against the function's first parameter
// and does not bind its type parameters.
func (a *Analyzer) VisitPipeExpression(n *ast.PipeExpression) {
	leftType := a.infer(n.Left)
	call, ok := n.Right.(*ast.CallExpression)
	if !ok {
		a.infer(n.Right)
		a.setType(typesystem.Unknown)
		return
	}
	if ident, ok := call.Callee.(*ast.Identifier); ok {
		if result, handled := a.pipeTransformerResult(ident.Value, leftType, call); handled {
			a.setType(result)
			return
		}
		// Non-transformer callee: validate the rest of the arguments and
		// use the function's declared return type, without re-inferring a
		// synthetic first argument node (leftType is already known).
		sym := a.scope.Lookup(ident.Value)
		for _, arg := range call.Arguments {
			a.infer(arg)
		}
		if sym != nil {
			sym.Used = true
			if sym.Function != nil && sym.Function.DeclaredReturn != nil {
				a.setType(sym.Function.DeclaredReturn)
				return
			}
		} else {
			a.addError(diagnostics.NewError(diagnostics.ErrUndefinedIdentifier, call.Token, ident.Value))
		}
		a.setType(typesystem.Unknown)
		return
	}
	a.infer(call.Callee)
	for _, arg := range call.Arguments {
		a.infer(arg)
	}
	a.setType(typesystem.Unknown)
}
