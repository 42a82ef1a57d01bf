package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/registry"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/typesystem"
)

// VisitFunctionDeclaration implements spec.md §4.6's per-declaration
// responsibility list for the function form: define the symbol with its
// side data, check naming, recurse into the body under a fresh scope with
// the three state machines updated, and emit W205 if a declared return
// type is never proven to return on every path.
func (a *Analyzer) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	paramTypes := make([]typesystem.Type, len(n.Params))
	a.typeParamsStack = append(a.typeParamsStack, n.TypeParams)
	for i, p := range n.Params {
		paramTypes[i] = a.resolveTypeExpr(p.TypeAnnotation)
	}
	declaredRet := a.resolveTypeExpr(n.ReturnType)

	requiredCount, totalCount := 0, len(n.Params)
	seenDefault := false
	for _, p := range n.Params {
		if p.Default != nil {
			seenDefault = true
		} else if !seenDefault {
			requiredCount++
		}
	}

	a.checkNaming(n.Token, n.Name, false)
	a.define(&symbols.Symbol{
		Name:     n.Name,
		Kind:     symbols.KindFunction,
		Declared: n.Token,
		Function: &symbols.FunctionData{
			ParamNames:     paramNames(n.Params),
			RequiredCount:  requiredCount,
			TotalCount:     totalCount,
			ParamTypes:     paramTypes,
			TypeParams:     n.TypeParams,
			Public:         n.IsPublic,
			Async:          n.IsAsync,
			Extern:         n.IsExtern,
			DeclaredReturn: declaredRet,
			VariantOfType:  n.VariantOf,
		},
		Used:         n.Name == "main" || n.IsPublic || n.VariantOf != "",
		InferredType: typeOrUnknown(declaredRet).String(),
	})

	a.pushScope(symbols.ContextFunction)
	for i, p := range n.Params {
		if p.Default != nil {
			a.infer(p.Default)
		}
		a.define(&symbols.Symbol{
			Name:         p.Name,
			Kind:         symbols.KindParameter,
			Mutable:      true,
			Declared:     p.Token,
			Annotation:   paramTypes[i],
			InferredType: typeOrUnknown(paramTypes[i]).String(),
		})
	}
	if n.IsAsync {
		a.asyncDepth++
	}
	a.returnTypeStack = append(a.returnTypeStack, declaredRet)
	a.returnAnnotated = append(a.returnAnnotated, n.ReturnType != nil)

	if n.Body != nil {
		n.Body.Accept(a)
		if n.ReturnType != nil && !definitelyReturns(n.Body) {
			a.warnNotAllPathsReturn(n.Token)
		}
	}

	a.returnTypeStack = a.returnTypeStack[:len(a.returnTypeStack)-1]
	a.returnAnnotated = a.returnAnnotated[:len(a.returnAnnotated)-1]
	if n.IsAsync {
		a.asyncDepth--
	}
	a.popScope()
	a.typeParamsStack = a.typeParamsStack[:len(a.typeParamsStack)-1]
}

func paramNames(params []ast.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// VisitTypeDeclaration registers an ADT in the type registry (spec.md §3
// Type Registry `types` map) and defines a variant-constructor function
// symbol per non-unit variant plus a unit-value symbol per unit variant.
func (a *Analyzer) VisitTypeDeclaration(n *ast.TypeDeclaration) {
	a.checkNaming(n.Token, n.Name, true)
	a.typeParamsStack = append(a.typeParamsStack, n.TypeParams)

	variants := make(map[string]map[string]typesystem.Type, len(n.Variants))
	fieldOrder := make(map[string][]string, len(n.Variants))
	for _, v := range n.Variants {
		fields := make(map[string]typesystem.Type, len(v.Fields))
		for fname, fte := range v.Fields {
			fields[fname] = a.resolveTypeExpr(fte)
		}
		variants[v.Name] = fields
		fieldOrder[v.Name] = v.Order
	}
	adt := typesystem.ADT{Name: n.Name, TypeParams: n.TypeParams, Variants: variants, FieldOrder: fieldOrder}
	a.reg.DefineType(n.Name, adt)
	a.typeParamsStack = a.typeParamsStack[:len(a.typeParamsStack)-1]

	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindType,
		Declared:     n.Token,
		InferredType: adt.String(),
		Type_:        &symbols.TypeData{TypeParams: n.TypeParams, Structured: adt},
	})

	for _, v := range n.Variants {
		retArgs := make([]typesystem.Type, len(n.TypeParams))
		for i, p := range n.TypeParams {
			retArgs[i] = typesystem.Variable{Name: p}
		}
		ret := typesystem.Type(typesystem.Generic{Base: n.Name, Args: retArgs})
		if len(v.Fields) == 0 {
			a.define(&symbols.Symbol{
				Name:         v.Name,
				Kind:         symbols.KindFunction,
				Declared:     n.Token,
				Used:         true,
				InferredType: ret.String(),
				Function:     &symbols.FunctionData{VariantOfType: n.Name, DeclaredReturn: ret},
			})
			continue
		}
		fieldTypes := make([]typesystem.Type, 0, len(v.Fields))
		for _, fname := range v.Order {
			fieldTypes = append(fieldTypes, variants[v.Name][fname])
		}
		a.define(&symbols.Symbol{
			Name:     v.Name,
			Kind:     symbols.KindFunction,
			Declared: n.Token,
			Used:     true,
			Function: &symbols.FunctionData{
				VariantOfType:  n.Name,
				ParamTypes:     fieldTypes,
				RequiredCount:  len(fieldTypes),
				TotalCount:     len(fieldTypes),
				TypeParams:     n.TypeParams,
				DeclaredReturn: ret,
			},
		})
	}
}

// VisitTypeAliasDeclaration records the alias's right-hand-side name (for a
// bare `type A = B`) or its resolved structural shape into a.aliases, so
// resolveNamedType's ResolveAlias call can follow the chain later; a cycle
// among bare-name aliases surfaces there as E103.
func (a *Analyzer) VisitTypeAliasDeclaration(n *ast.TypeAliasDeclaration) {
	a.checkNaming(n.Token, n.Name, true)
	a.typeParamsStack = append(a.typeParamsStack, n.TypeParams)
	var rhs typesystem.Type
	if named, ok := n.Aliased.(*ast.NamedTypeExpr); ok && len(a.currentTypeParams()) == 0 {
		rhs = typesystem.Generic{Base: named.Name}
	} else {
		rhs = a.resolveTypeExpr(n.Aliased)
	}
	a.typeParamsStack = a.typeParamsStack[:len(a.typeParamsStack)-1]
	a.aliases[n.Name] = rhs

	resolved, order, err := typesystem.ResolveAlias(n.Name, a.lookupAlias)
	if err != nil {
		a.addError(diagnostics.NewError(diagnostics.ErrAliasCycle, n.Token, joinNames(order)))
		resolved = typesystem.Unknown
	}
	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindType,
		Declared:     n.Token,
		InferredType: resolved.String(),
		Type_:        &symbols.TypeData{TypeParams: n.TypeParams, AliasOf: resolved},
	})
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " -> "
		}
		out += n
	}
	return out
}

func toRegistrySig(m symbols.MethodSignature) registry.MethodSignature {
	return registry.MethodSignature{Name: m.Name, ParamCount: m.ParamCount, ParamTypes: m.ParamTypes, Return: m.Return}
}

func (a *Analyzer) resolveMethodSignatures(methods []ast.MethodSignature) []symbols.MethodSignature {
	out := make([]symbols.MethodSignature, len(methods))
	for i, m := range methods {
		paramTypes := make([]typesystem.Type, len(m.ParamTypes))
		for j, pt := range m.ParamTypes {
			paramTypes[j] = a.resolveTypeExpr(pt)
		}
		out[i] = symbols.MethodSignature{
			Name:       m.Name,
			ParamCount: len(m.ParamTypes),
			ParamTypes: paramTypes,
			Return:     a.resolveTypeExpr(m.ReturnType),
		}
	}
	return out
}

func (a *Analyzer) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	a.checkNaming(n.Token, n.Name, true)
	sigs := a.resolveMethodSignatures(n.Methods)
	a.define(&symbols.Symbol{
		Name:      n.Name,
		Kind:      symbols.KindType,
		Declared:  n.Token,
		Interface: &symbols.InterfaceData{Methods: sigs},
	})
}

func (a *Analyzer) VisitTraitDeclaration(n *ast.TraitDeclaration) {
	a.checkNaming(n.Token, n.Name, true)
	sigs := a.resolveMethodSignatures(n.Methods)
	regSigs := make([]registry.MethodSignature, len(sigs))
	for i, s := range sigs {
		regSigs[i] = toRegistrySig(s)
	}
	a.reg.DefineTrait(n.Name, regSigs)
	a.define(&symbols.Symbol{
		Name:      n.Name,
		Kind:      symbols.KindType,
		Declared:  n.Token,
		Interface: &symbols.InterfaceData{Methods: sigs},
	})
}

// VisitImplDeclaration checks trait conformance (W300-302 per spec.md §4)
// and registers the concrete method set in the type registry.
func (a *Analyzer) VisitImplDeclaration(n *ast.ImplDeclaration) {
	var traitSigs []registry.MethodSignature
	if n.TraitName != "" {
		traitSigs = a.reg.Traits[n.TraitName]
	}

	implemented := map[string]*ast.FunctionDeclaration{}
	for _, m := range n.Methods {
		implemented[m.Name] = m
		m.Accept(a)
		a.reg.AddImpl(n.TypeName, registry.MethodSignature{
			Name:       m.Name,
			ParamCount: len(m.Params),
			ParamTypes: methodParamTypes(a, m.Params),
			Return:     a.resolveTypeExpr(m.ReturnType),
		})
	}

	for _, want := range traitSigs {
		got, ok := implemented[want.Name]
		if !ok {
			a.addWarning(diagnostics.NewWarning(diagnostics.WarnTraitMethodMissing, n.Token, n.TypeName, n.TraitName, want.Name))
			continue
		}
		if len(got.Params) != want.ParamCount {
			a.addWarning(diagnostics.NewWarning(diagnostics.WarnTraitMethodArity, n.Token, n.TraitName, want.Name, want.ParamCount, len(got.Params)))
		}
		gotRet := a.resolveTypeExpr(got.ReturnType)
		if want.Return != nil && gotRet != nil && !typesystem.Compatible(want.Return, gotRet, typesystem.Mode{Strict: a.opts.Strict}) {
			a.addWarning(diagnostics.NewWarning(diagnostics.WarnTraitMethodReturn, n.Token, n.TraitName, want.Name, want.Return.String()))
		}
	}
}

func methodParamTypes(a *Analyzer, params []ast.Param) []typesystem.Type {
	out := make([]typesystem.Type, len(params))
	for i, p := range params {
		out[i] = a.resolveTypeExpr(p.TypeAnnotation)
	}
	return out
}

// VisitImportDeclaration binds every imported name as Unknown (module
// resolution is explicitly out of scope — spec.md §1 non-goals).
func (a *Analyzer) VisitImportDeclaration(n *ast.ImportDeclaration) {
	bind := func(name string) {
		if name == "" {
			return
		}
		a.define(&symbols.Symbol{
			Name:         name,
			Kind:         symbols.KindModule,
			Used:         true,
			InferredType: typesystem.Unknown.String(),
		})
	}
	bind(n.Default)
	for _, name := range n.Named {
		bind(name)
	}
	if n.Wildcard {
		bind(n.Alias)
	}
}

// VisitExternDeclaration is the one declaration allowed to shadow a
// builtin of the same name (spec.md §4.1 invariant).
func (a *Analyzer) VisitExternDeclaration(n *ast.ExternDeclaration) {
	annotation := a.resolveTypeExpr(n.TypeAnnotation)
	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindFunction,
		Declared:     n.Token,
		Used:         true,
		Annotation:   annotation,
		InferredType: typeOrUnknown(annotation).String(),
		Function:     &symbols.FunctionData{Extern: true, DeclaredReturn: annotation},
	})
}
