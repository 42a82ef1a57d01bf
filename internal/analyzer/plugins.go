package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/typesystem"
)

// VisitPluginDeclaration dispatches on PluginKind, implementing the block
// plugin registry spec.md §9 describes as "a typed trait ... registered in
// a static map at startup": each kind gets its own {context validation,
// symbol definition, recursion} triple below instead of its own AST node
// or dispatcher case.
func (a *Analyzer) VisitPluginDeclaration(n *ast.PluginDeclaration) {
	switch n.Kind {
	case ast.PluginRoute:
		a.analyzeRoutePlugin(n)
	case ast.PluginWS:
		a.analyzeWSPlugin(n)
	case ast.PluginRateLimit:
		a.analyzeRateLimitPlugin(n)
	case ast.PluginState:
		a.analyzeStatePlugin(n)
	case ast.PluginComponent:
		a.analyzeComponentPlugin(n)
	case ast.PluginDB:
		a.analyzeDBPlugin(n)
	}
}

func (a *Analyzer) requireServerContext(n *ast.PluginDeclaration) {
	if a.currentBlockKind == nil || *a.currentBlockKind != ast.BlockServer {
		a.addError(diagnostics.NewError(diagnostics.ErrServerOutsideServer, n.Token, string(n.Kind)+" "+n.Name))
	}
}

func (a *Analyzer) requireClientPluginContext(n *ast.PluginDeclaration) {
	if a.currentBlockKind == nil || *a.currentBlockKind != ast.BlockClient {
		a.addError(diagnostics.NewError(diagnostics.ErrClientOutsideClient, n.Token, string(n.Kind)+" "+n.Name))
	}
}

func (a *Analyzer) requireDataContext(n *ast.PluginDeclaration) {
	if a.currentBlockKind == nil || *a.currentBlockKind != ast.BlockData {
		a.addError(diagnostics.NewError(diagnostics.ErrDataOutsideData, n.Token, string(n.Kind)+" "+n.Name))
	}
}

// analyzeRoutePlugin implements `route GET "/users" (req) { ... }`: legal
// only inside server blocks, its name participates in the cross-block RPC
// function set built by prepass.go, and a GET handler with no declared
// return type gets the body-type-annotation warning spec.md §4.6 names.
func (a *Analyzer) analyzeRoutePlugin(n *ast.PluginDeclaration) {
	a.requireServerContext(n)
	declaredRet := a.resolveTypeExpr(n.ReturnType)
	paramTypes := make([]typesystem.Type, len(n.Params))

	a.pushScope(symbols.ContextFunction)
	for i, p := range n.Params {
		paramTypes[i] = a.resolveTypeExpr(p.TypeAnnotation)
		a.define(&symbols.Symbol{
			Name:         p.Name,
			Kind:         symbols.KindParameter,
			Mutable:      true,
			Declared:     p.Token,
			Annotation:   paramTypes[i],
			InferredType: typeOrUnknown(paramTypes[i]).String(),
		})
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
	a.popScope()

	if n.Method == "GET" && n.ReturnType == nil {
		a.addWarning(diagnostics.NewWarning(diagnostics.WarnRouteBodyUnannotated, n.Token, n.Method, n.Path))
	}

	a.define(&symbols.Symbol{
		Name:     n.Name,
		Kind:     symbols.KindFunction,
		Declared: n.Token,
		Used:     true,
		Function: &symbols.FunctionData{
			ParamNames:     paramNames(n.Params),
			RequiredCount:  len(n.Params),
			TotalCount:     len(n.Params),
			ParamTypes:     paramTypes,
			Public:         true,
			DeclaredReturn: declaredRet,
		},
	})
}

// analyzeWSPlugin implements `ws Chat(conn) { ... }`, shaped like a route
// but without an HTTP method/path.
func (a *Analyzer) analyzeWSPlugin(n *ast.PluginDeclaration) {
	a.requireServerContext(n)
	a.checkNaming(n.Token, n.Name, true)
	a.pushScope(symbols.ContextFunction)
	for _, p := range n.Params {
		t := a.resolveTypeExpr(p.TypeAnnotation)
		a.define(&symbols.Symbol{
			Name:         p.Name,
			Kind:         symbols.KindParameter,
			Mutable:      true,
			Declared:     p.Token,
			Annotation:   t,
			InferredType: typeOrUnknown(t).String(),
		})
	}
	a.returnTypeStack = append(a.returnTypeStack, nil)
	a.returnAnnotated = append(a.returnAnnotated, false)
	if n.Body != nil {
		n.Body.Accept(a)
	}
	a.returnTypeStack = a.returnTypeStack[:len(a.returnTypeStack)-1]
	a.returnAnnotated = a.returnAnnotated[:len(a.returnAnnotated)-1]
	a.popScope()
}

// analyzeRateLimitPlugin implements `rate_limit Api { rps: 10 }`: a
// key/value config table whose values are ordinary expressions.
func (a *Analyzer) analyzeRateLimitPlugin(n *ast.PluginDeclaration) {
	a.requireServerContext(n)
	for _, v := range n.Config {
		a.infer(v)
	}
}

// analyzeStatePlugin implements `state count = 0`: a mutable client-local
// binding, legal only inside client blocks.
func (a *Analyzer) analyzeStatePlugin(n *ast.PluginDeclaration) {
	a.requireClientPluginContext(n)
	a.checkNaming(n.Token, n.Name, false)
	initType := a.infer(n.Init)
	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindState,
		Mutable:      true,
		Declared:     n.Token,
		InferredType: typeOrUnknown(initType).String(),
	})
}

// analyzeComponentPlugin implements `component Card(props) { <div/> }`.
// Its body expression is typically JSX, which itself enforces client
// context (expressions_jsx.go); the component name and props follow the
// same naming/scope shape as a function.
func (a *Analyzer) analyzeComponentPlugin(n *ast.PluginDeclaration) {
	a.requireClientPluginContext(n)
	a.checkNaming(n.Token, n.Name, true)
	a.pushScope(symbols.ContextFunction)
	for _, p := range n.Props {
		t := a.resolveTypeExpr(p.TypeAnnotation)
		a.define(&symbols.Symbol{
			Name:         p.Name,
			Kind:         symbols.KindParameter,
			Mutable:      false,
			Declared:     p.Token,
			Annotation:   t,
			InferredType: typeOrUnknown(t).String(),
		})
	}
	var bodyType typesystem.Type = typesystem.Unknown
	if n.BodyExpr != nil {
		bodyType = a.infer(n.BodyExpr)
	}
	a.popScope()
	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindComponent,
		Declared:     n.Token,
		Used:         true,
		InferredType: bodyType.String(),
	})
}

// analyzeDBPlugin implements `db Users { id: Int, name: String }`: legal
// only inside a data block, registering both a Record type in the type
// registry and a table symbol annotated with that Record type (so
// VisitColumnExpression's field lookup resolves).
func (a *Analyzer) analyzeDBPlugin(n *ast.PluginDeclaration) {
	a.requireDataContext(n)
	a.checkNaming(n.Token, n.Name, true)
	fields := make(map[string]typesystem.Type, len(n.Columns))
	for _, col := range n.Columns {
		fields[col.Name] = a.resolveTypeExpr(col.Type)
	}
	rec := typesystem.Record{Fields: fields}
	a.reg.DefineType(n.Name, rec)
	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindVariable,
		Declared:     n.Token,
		Used:         true,
		Annotation:   rec,
		InferredType: rec.String(),
	})
}
