package analyzer

import (
	"strings"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/config"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
)

// seedBuiltins installs the module scope's builtin names (spec.md §2 step
// 1): the hard-coded-return-type functions of internal/config plus the
// variant constructors `Ok`, `Err`, `Some`, `None` every program gets for
// free regardless of whether it declares its own `Result`/`Option`-shaped
// ADTs.
func (a *Analyzer) seedBuiltins() {
	for name, ret := range config.BuiltinReturnTypes {
		a.defineBuiltinFunc(name, typesystem.FromString(ret))
	}
	a.defineBuiltinFunc(config.PrintFuncName, typesystem.Nil)
	a.defineBuiltinFunc(config.AssertFuncName, typesystem.Nil)

	a.defineVariantCtor("Ok", "Result")
	a.defineVariantCtor("Err", "Result")
	a.defineVariantCtor("Some", "Option")
	a.defineUnitVariantCtor("None", "Option")
}

// SeedBuiltin defines an extra builtin function in the module scope,
// exported so a host embedding pkg/tova can extend the builtin table
// (e.g. from config.LoadExtraBuiltins) before calling Run.
func (a *Analyzer) SeedBuiltin(name string, ret typesystem.Type) {
	a.defineBuiltinFunc(name, ret)
}

func (a *Analyzer) defineBuiltinFunc(name string, ret typesystem.Type) {
	a.root.Define(&symbols.Symbol{
		Name:         name,
		Kind:         symbols.KindBuiltin,
		Used:         true,
		InferredType: ret.String(),
		Function: &symbols.FunctionData{
			DeclaredReturn: ret,
		},
	})
}

func (a *Analyzer) defineVariantCtor(name, ofType string) {
	a.root.Define(&symbols.Symbol{
		Name: name,
		Kind: symbols.KindBuiltin,
		Used: true,
		Function: &symbols.FunctionData{
			VariantOfType: ofType,
			RequiredCount: 1,
			TotalCount:    1,
		},
	})
}

func (a *Analyzer) defineUnitVariantCtor(name, ofType string) {
	a.root.Define(&symbols.Symbol{
		Name:         name,
		Kind:         symbols.KindBuiltin,
		Used:         true,
		InferredType: typesystem.Generic{Base: ofType}.String(),
		Function:     &symbols.FunctionData{VariantOfType: ofType},
	})
}

// resolveTypeExpr converts a parsed type annotation into a typesystem.Type,
// resolving bare names against the current generic type-parameter scope
// (spec.md §4.2's "A_i is a bare type parameter") before falling back to a
// named Generic/Primitive.
func (a *Analyzer) resolveTypeExpr(te ast.TypeExpr) typesystem.Type {
	if te == nil {
		return nil
	}
	switch t := te.(type) {
	case *ast.NamedTypeExpr:
		return a.resolveNamedType(t.Name)
	case *ast.ArrayTypeExpr:
		return typesystem.Array{Elem: a.resolveTypeExprOrUnknown(t.Elem)}
	case *ast.TupleTypeExpr:
		elems := make([]typesystem.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = a.resolveTypeExprOrUnknown(e)
		}
		return typesystem.Tuple{Elems: elems}
	case *ast.FunctionTypeExpr:
		params := make([]typesystem.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = a.resolveTypeExprOrUnknown(p)
		}
		return typesystem.Function{Params: params, Return: a.resolveTypeExprOrUnknown(t.Return)}
	case *ast.GenericTypeExpr:
		args := make([]typesystem.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = a.resolveTypeExprOrUnknown(arg)
		}
		return typesystem.Generic{Base: t.Base, Args: args}
	case *ast.UnionTypeExpr:
		members := make([]typesystem.Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = a.resolveTypeExprOrUnknown(m)
		}
		return typesystem.Union{Members: members}
	case *ast.OptionalTypeExpr:
		return typesystem.Option(a.resolveTypeExprOrUnknown(t.Inner))
	case *ast.RefinementTypeExpr:
		return a.resolveTypeExprOrUnknown(t.Base)
	default:
		return typesystem.Unknown
	}
}

func (a *Analyzer) resolveTypeExprOrUnknown(te ast.TypeExpr) typesystem.Type {
	if te == nil {
		return typesystem.Unknown
	}
	return a.resolveTypeExpr(te)
}

func (a *Analyzer) resolveNamedType(name string) typesystem.Type {
	for _, p := range a.currentTypeParams() {
		if p == name {
			return typesystem.Variable{Name: name}
		}
	}
	switch name {
	case "Int", "Float", "String", "Bool":
		return typesystem.Primitive{Name: name}
	case "Any":
		return typesystem.Any
	case "Nil":
		return typesystem.Nil
	}
	resolved, order, err := typesystem.ResolveAlias(name, a.lookupAlias)
	if err != nil {
		a.addError(diagnostics.NewError(diagnostics.ErrAliasCycle, token.Token{Type: token.SYNTH}, strings.Join(order, " -> ")))
		return typesystem.Generic{Base: name}
	}
	if g, ok := resolved.(typesystem.Generic); ok && len(g.Args) == 0 {
		return g
	}
	return resolved
}

func (a *Analyzer) lookupAlias(name string) (typesystem.Type, bool) {
	t, ok := a.aliases[name]
	return t, ok
}
