package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/typesystem"
)

// VisitColumnExpression resolves `table.column` against the `data` block
// schema registered for `table`'s declared record type (spec.md
// supplemented feature, grounded on the same Record field lookup
// VisitMemberExpression uses). Column access has no block-kind
// restriction of its own — `table` must simply resolve to a symbol with a
// record-shaped type, which only db-declared names carry.
func (a *Analyzer) VisitColumnExpression(n *ast.ColumnExpression) {
	tableType := a.infer(n.Table)
	if rec, ok := tableType.(typesystem.Record); ok {
		if ft, ok := rec.Fields[n.Column]; ok {
			a.setType(typesystem.Array{Elem: ft})
			return
		}
	}
	a.setType(typesystem.Unknown)
}

func (a *Analyzer) VisitColumnAssignExpression(n *ast.ColumnAssignExpression) {
	tableType := a.infer(n.Table)
	valueType := a.infer(n.Value)
	if rec, ok := tableType.(typesystem.Record); ok {
		if ft, ok := rec.Fields[n.Column]; ok {
			a.checkAssignmentCompatibility(n.Token, n.Column, ft, valueType)
		}
	}
	a.setType(typesystem.Nil)
}
