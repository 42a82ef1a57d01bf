package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/typesystem"
)

// bindPattern defines every name a pattern introduces in the current
// scope, typed against subjectType where that's known precisely enough
// (spec.md §4.5's pattern set doubles as the destructuring surface for
// `for`, `let`, and `match`).
func (a *Analyzer) bindPattern(p ast.Pattern, subjectType typesystem.Type) {
	if p == nil {
		return
	}
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		// binds nothing
	case *ast.BindingPattern:
		a.define(&symbols.Symbol{
			Name:         pat.Name,
			Kind:         symbols.KindVariable,
			Mutable:      false,
			Declared:     pat.Token,
			InferredType: typeOrUnknown(subjectType).String(),
			Annotation:   subjectType,
		})
	case *ast.LiteralPattern:
		a.infer(pat.Value)
	case *ast.RangePattern:
		a.infer(pat.Lo)
		a.infer(pat.Hi)
	case *ast.VariantPattern:
		a.bindVariantPattern(pat, subjectType)
	case *ast.TuplePattern:
		tup, isTuple := subjectType.(typesystem.Tuple)
		for i, elem := range pat.Elements {
			var et typesystem.Type = typesystem.Unknown
			if isTuple && i < len(tup.Elems) {
				et = tup.Elems[i]
			}
			a.bindPattern(elem, et)
		}
	case *ast.ArrayPattern:
		arr, isArray := subjectType.(typesystem.Array)
		elemT := typesystem.Type(typesystem.Unknown)
		if isArray {
			elemT = arr.Elem
		}
		for _, elem := range pat.Prefix {
			a.bindPattern(elem, elemT)
		}
		if pat.HasRest && pat.Rest != "" {
			a.define(&symbols.Symbol{
				Name:         pat.Rest,
				Kind:         symbols.KindVariable,
				Declared:     pat.Token,
				InferredType: typesystem.Array{Elem: elemT}.String(),
			})
		}
	case *ast.OrPattern:
		for _, alt := range pat.Alternatives {
			a.bindPattern(alt, subjectType)
		}
	}
}

func typeOrUnknown(t typesystem.Type) typesystem.Type {
	if t == nil {
		return typesystem.Unknown
	}
	return t
}

// bindVariantPattern binds a `Type.Variant(field...)` or
// `Type.Variant{field: p}` pattern's sub-bindings against the ADT's
// registered field map, when one is known.
func (a *Analyzer) bindVariantPattern(pat *ast.VariantPattern, subjectType typesystem.Type) {
	adt, ok := a.adtFor(subjectType)
	var fields map[string]typesystem.Type
	var order []string
	if ok {
		fields = adt.Variants[pat.VariantName]
		order = adt.FieldOrder[pat.VariantName]
	}
	for i, p := range pat.Positional {
		var ft typesystem.Type = typesystem.Unknown
		if fields != nil && i < len(order) {
			if f, ok := fields[order[i]]; ok {
				ft = f
			}
		}
		a.bindPattern(p, ft)
	}
	for name, p := range pat.Fields {
		var ft typesystem.Type = typesystem.Unknown
		if fields != nil {
			if f, ok := fields[name]; ok {
				ft = f
			}
		}
		a.bindPattern(p, ft)
	}
}

func (a *Analyzer) adtFor(t typesystem.Type) (typesystem.ADT, bool) {
	g, ok := t.(typesystem.Generic)
	var name string
	if ok {
		name = g.Base
	} else if adt, isADT := t.(typesystem.ADT); isADT {
		return adt, true
	} else {
		return typesystem.ADT{}, false
	}
	rt, ok := a.reg.Types[name]
	if !ok {
		return typesystem.ADT{}, false
	}
	adt, ok := rt.(typesystem.ADT)
	return adt, ok
}

// patternCoversSubject reports whether a pattern always matches, for
// exhaustiveness purposes (spec.md §4.5 decision procedure's first check:
// "any arm is a wildcard _ or an unguarded binding").
func patternCoversSubject(p ast.Pattern, hasGuard bool) bool {
	if hasGuard {
		return false
	}
	switch pat := p.(type) {
	case *ast.WildcardPattern, *ast.BindingPattern:
		return true
	case *ast.OrPattern:
		for _, alt := range pat.Alternatives {
			if patternCoversSubject(alt, false) {
				return true
			}
		}
	}
	return false
}

// variantNameOf extracts the covered variant name from a variant pattern,
// or "" if p isn't one.
func variantNameOf(p ast.Pattern) string {
	if vp, ok := p.(*ast.VariantPattern); ok {
		return vp.VariantName
	}
	return ""
}
