package analyzer

import (
	"strings"

	"github.com/tova-lang/tova/internal/config"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/symbols"
)

// unusedPass implements spec.md §4.8: walk the scope tree and report
// unused symbols, with different filtering rules depending on whether the
// scope lives inside a function or at module/server/client/shared level.
func (a *Analyzer) unusedPass() {
	a.root.Walk(func(s *symbols.Scope) {
		frame := frameContext(s)
		for _, sym := range s.Symbols {
			if sym.Used || strings.HasPrefix(sym.Name, config.NamingSuppressionPrefix) {
				continue
			}
			switch frame {
			case symbols.ContextFunction:
				a.reportIfUnusedLocal(sym)
			case symbols.ContextModule, symbols.ContextServer, symbols.ContextClient, symbols.ContextShared:
				a.reportIfUnusedTopLevelFunction(sym)
			}
		}
	})
}

// frameContext walks up from s (inclusive) to the nearest function/
// top-level boundary scope and returns its context kind, the same
// boundary predicate LookupForAssignment and ExistsInOuterScope use.
func frameContext(s *symbols.Scope) symbols.ContextKind {
	cur := s
	for {
		if cur.IsBoundary() || cur.Parent == nil {
			return cur.Context
		}
		cur = cur.Parent
	}
}

func (a *Analyzer) reportIfUnusedLocal(sym *symbols.Symbol) {
	if sym.Kind == symbols.KindBuiltin || sym.Kind == symbols.KindType || sym.Kind == symbols.KindParameter {
		return
	}
	code := diagnostics.WarnUnusedVariable
	if sym.Kind == symbols.KindFunction {
		code = diagnostics.WarnUnusedFunction
	}
	a.addWarning(diagnostics.NewWarning(code, sym.Declared, sym.Name).
		WithFix("rename to _"+sym.Name, "_"+sym.Name))
}

func (a *Analyzer) reportIfUnusedTopLevelFunction(sym *symbols.Symbol) {
	if sym.Kind != symbols.KindFunction || sym.Name == "main" {
		return
	}
	if sym.Function != nil && (sym.Function.Public || sym.Function.VariantOfType != "") {
		return
	}
	a.addWarning(diagnostics.NewWarning(diagnostics.WarnUnusedFunction, sym.Declared, sym.Name).
		WithFix("rename to _"+sym.Name, "_"+sym.Name))
}
