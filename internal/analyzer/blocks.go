package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/symbols"
)

// VisitBlockForm updates the three state machines spec.md §4.6 names for
// the duration of a server/client/shared/data/test/bench block, pushes the
// matching scope kind, and walks its nested declarations.
func (a *Analyzer) VisitBlockForm(n *ast.BlockForm) {
	prevKind := a.currentBlockKind
	prevServer := a.currentServerBlock
	kind := n.Kind
	a.currentBlockKind = &kind
	if n.Kind == ast.BlockServer && n.Name != "" {
		a.currentServerBlock = n.Name
	}

	a.pushScope(contextFor(n.Kind))
	if n.Name != "" {
		a.scope.Name = n.Name
	}
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
	a.popScope()

	a.currentBlockKind = prevKind
	a.currentServerBlock = prevServer
}

func contextFor(kind ast.BlockKind) symbols.ContextKind {
	switch kind {
	case ast.BlockServer:
		return symbols.ContextServer
	case ast.BlockClient:
		return symbols.ContextClient
	case ast.BlockShared:
		return symbols.ContextShared
	default:
		// data/test/bench have no dedicated ContextKind of their own;
		// they behave like a top-level boundary without RPC/client-only
		// declaration legality, so ContextModule's boundary semantics fit.
		return symbols.ContextModule
	}
}
