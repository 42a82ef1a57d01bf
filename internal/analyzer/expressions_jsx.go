package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
)

// VisitJSXElement validates that JSX only appears inside a client block
// (E302) and type-checks attribute/child expressions; the element's own
// type is always the opaque `Element` generic, since code generation (the
// only consumer that cares about concrete markup) is out of scope.
func (a *Analyzer) VisitJSXElement(n *ast.JSXElement) {
	a.requireClientContext(n.Token, n.Tag)
	for _, attr := range n.Attributes {
		if attr.Value != nil {
			a.infer(attr.Value)
		}
	}
	for _, child := range n.Children {
		a.infer(child)
	}
	a.setType(typesystem.Generic{Base: "Element"})
}

func (a *Analyzer) VisitJSXFragment(n *ast.JSXFragment) {
	a.requireClientContext(n.Token, "<>")
	for _, child := range n.Children {
		a.infer(child)
	}
	a.setType(typesystem.Generic{Base: "Element"})
}

func (a *Analyzer) requireClientContext(tok token.Token, name string) {
	if a.currentBlockKind == nil || *a.currentBlockKind != ast.BlockClient {
		a.addError(diagnostics.NewError(diagnostics.ErrClientOutsideClient, tok, name))
	}
}
