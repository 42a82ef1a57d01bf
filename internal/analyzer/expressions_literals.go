package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/typesystem"
)

func (a *Analyzer) VisitProgram(p *ast.Program) {
	for _, stmt := range p.Statements {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitIdentifier(n *ast.Identifier) {
	if narrowed := a.scope.NarrowedType(n.Value); narrowed != "" {
		sym := a.scope.Lookup(n.Value)
		if sym != nil {
			sym.Used = true
		}
		a.setType(typesystem.FromString(narrowed))
		return
	}
	sym := a.scope.Lookup(n.Value)
	if sym == nil {
		a.addError(diagnostics.NewError(diagnostics.ErrUndefinedIdentifier, n.Token, n.Value))
		a.setType(typesystem.Unknown)
		return
	}
	sym.Used = true
	if sym.Annotation != nil {
		a.setType(sym.Annotation)
		return
	}
	a.setType(typesystem.FromString(sym.InferredType))
}

func (a *Analyzer) VisitIntegerLiteral(n *ast.IntegerLiteral) { a.setType(typesystem.Int) }
func (a *Analyzer) VisitFloatLiteral(n *ast.FloatLiteral)     { a.setType(typesystem.Float) }
func (a *Analyzer) VisitStringLiteral(n *ast.StringLiteral)   { a.setType(typesystem.String_) }
func (a *Analyzer) VisitBooleanLiteral(n *ast.BooleanLiteral) { a.setType(typesystem.Bool) }
func (a *Analyzer) VisitNilLiteral(n *ast.NilLiteral)         { a.setType(typesystem.Nil) }

func (a *Analyzer) VisitTemplateStringLiteral(n *ast.TemplateStringLiteral) {
	for _, part := range n.Parts {
		a.infer(part)
	}
	a.setType(typesystem.String_)
}

// VisitArrayLiteral infers the array element type as the first element's
// type; an empty array is `[Any]` (spec.md §4.2).
func (a *Analyzer) VisitArrayLiteral(n *ast.ArrayLiteral) {
	elem := typesystem.Type(typesystem.Any)
	for i, e := range n.Elements {
		t := a.infer(e)
		if i == 0 {
			elem = t
		}
	}
	a.setType(typesystem.Array{Elem: elem})
}

func (a *Analyzer) VisitObjectLiteral(n *ast.ObjectLiteral) {
	fields := make(map[string]typesystem.Type, len(n.Fields))
	for name, e := range n.Fields {
		fields[name] = a.infer(e)
	}
	if n.Spread != nil {
		a.infer(n.Spread)
	}
	a.setType(typesystem.Record{Fields: fields})
}

func (a *Analyzer) VisitTupleExpression(n *ast.TupleExpression) {
	elems := make([]typesystem.Type, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = a.infer(e)
	}
	a.setType(typesystem.Tuple{Elems: elems})
}
