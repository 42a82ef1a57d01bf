package analyzer

import "github.com/tova-lang/tova/internal/ast"
import "github.com/tova-lang/tova/internal/typesystem"

// infer evaluates e's type by dispatching through its Accept method and
// reading back the shared lastType slot each VisitXxxExpression method
// fills in. ast.Visitor methods return nothing (Go interfaces can't carry
// a per-call return type through a single dispatch method), so the
// Analyzer — like the teacher's own walker — threads the "value" of the
// last-visited expression through one mutable field rather than a second
// parallel type-returning visitor.
func (a *Analyzer) infer(e ast.Expression) typesystem.Type {
	if e == nil {
		return typesystem.Unknown
	}
	e.Accept(a)
	t := a.lastType
	a.lastType = typesystem.Unknown
	return t
}

// setType is the single place every VisitXxxExpression method calls
// before returning, keeping the infer() contract in one spot.
func (a *Analyzer) setType(t typesystem.Type) {
	if t == nil {
		t = typesystem.Unknown
	}
	a.lastType = t
}

// VisitUnknown handles node tags the analyzer has no dedicated visitor
// for (spec.md §6: "For unknown tags the analyzer is a no-op"). In
// practice this is only ever reached by a TypeExpr node's own Accept
// method; TypeExpr trees are walked through resolveTypeExpr, not through
// the ordinary Accept dispatch, so this is always a genuine no-op.
func (a *Analyzer) VisitUnknown(n ast.Node) {
	a.setType(typesystem.Unknown)
}
