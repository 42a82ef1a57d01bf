package analyzer

import (
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
	"github.com/tova-lang/tova/internal/utils"
)

// VisitAssignment enforces spec.md §4.1's "same-function immutability"
// rule via LookupForAssignment, and spec.md §3's Int<-Float narrowing rule
// on the value being assigned.
func (a *Analyzer) VisitAssignment(n *ast.Assignment) {
	valueType := a.infer(n.Value)
	ident, isIdent := n.Target.(*ast.Identifier)
	if !isIdent {
		a.infer(n.Target)
		return
	}
	sym := a.scope.LookupForAssignment(ident.Value)
	if sym == nil {
		sym = a.scope.Lookup(ident.Value)
		if sym == nil {
			a.addError(diagnostics.NewError(diagnostics.ErrUndefinedIdentifier, n.Token, ident.Value))
			return
		}
	}
	if !sym.Mutable || !sym.IsAssignableByUser() {
		a.addError(diagnostics.NewError(diagnostics.ErrImmutableReassignment, n.Token, ident.Value))
		return
	}
	sym.Used = true
	if sym.Annotation != nil {
		a.checkAssignmentCompatibility(n.Token, ident.Value, sym.Annotation, valueType)
	} else {
		sym.InferredType = valueType.String()
	}
}

func (a *Analyzer) checkAssignmentCompatibility(tok token.Token, name string, expected, actual typesystem.Type) {
	mode := typesystem.Mode{Strict: a.opts.Strict}
	if typesystem.Compatible(expected, actual, mode) {
		if typesystem.IsNarrowingFloatToInt(expected, actual) {
			a.addWarning(diagnostics.NewWarning(diagnostics.WarnIntFromFloatNarrowing, tok, name, actual.String(), expected.String()))
		}
		return
	}
	a.addError(diagnostics.NewError(diagnostics.ErrAssignmentTypeMismatch, tok, actual.String(), name, expected.String()))
}

func (a *Analyzer) VisitCompoundAssignment(n *ast.CompoundAssignment) {
	ident, isIdent := n.Target.(*ast.Identifier)
	if !isIdent {
		a.infer(n.Target)
		a.infer(n.Value)
		return
	}
	sym := a.scope.LookupForAssignment(ident.Value)
	if sym == nil {
		a.addError(diagnostics.NewError(diagnostics.ErrUndefinedIdentifier, n.Token, ident.Value))
		a.infer(n.Value)
		return
	}
	if !sym.Mutable || !sym.IsAssignableByUser() {
		a.addError(diagnostics.NewError(diagnostics.ErrImmutableReassignment, n.Token, ident.Value))
	}
	sym.Used = true
	a.infer(n.Value)
}

// VisitVarDeclaration defines a new symbol, checking naming convention
// (snake_case/UPPER_SNAKE_CASE for variables — spec.md §4.6) and E203
// redefinition via Scope.Define.
func (a *Analyzer) VisitVarDeclaration(n *ast.VarDeclaration) {
	valueType := a.infer(n.Value)
	annotation := a.resolveTypeExpr(n.TypeAnnotation)
	declared := annotation
	if declared == nil {
		declared = valueType
	} else {
		a.checkAssignmentCompatibility(n.Token, n.Name, annotation, valueType)
	}
	a.checkNaming(n.Token, n.Name, false)
	a.checkShadow(n.Token, n.Name)
	a.define(&symbols.Symbol{
		Name:         n.Name,
		Kind:         symbols.KindVariable,
		Mutable:      n.Mutable,
		Declared:     n.Token,
		Annotation:   annotation,
		InferredType: declared.String(),
	})
}

func (a *Analyzer) VisitDestructureDeclaration(n *ast.DestructureDeclaration) {
	valueType := a.infer(n.Value)
	a.bindPattern(n.Pattern, valueType)
	if n.Mutable {
		a.markPatternMutable(n.Pattern)
	}
}

func (a *Analyzer) markPatternMutable(p ast.Pattern) {
	switch pat := p.(type) {
	case *ast.BindingPattern:
		if sym := a.scope.LookupLocal(pat.Name); sym != nil {
			sym.Mutable = true
		}
	case *ast.TuplePattern:
		for _, e := range pat.Elements {
			a.markPatternMutable(e)
		}
	case *ast.ArrayPattern:
		for _, e := range pat.Prefix {
			a.markPatternMutable(e)
		}
	}
}

func (a *Analyzer) checkNaming(tok token.Token, name string, wantPascal bool) {
	if hint := utils.NamingViolation(name, wantPascal); hint != "" {
		a.addWarning(diagnostics.NewWarning(diagnostics.WarnNamingConvention, tok, name, hint).
			WithFix("rename to _"+name, "_"+name))
	}
}

func (a *Analyzer) checkShadow(tok token.Token, name string) {
	if utils.IsSuppressedName(name) {
		return
	}
	if a.scope.ExistsInOuterScope(name) {
		a.addWarning(diagnostics.NewWarning(diagnostics.WarnShadow, tok, name))
	}
}

func (a *Analyzer) VisitIfStatement(n *ast.IfStatement) {
	a.infer(n.Condition)
	thenOverlay := a.narrowingFromCondition(n.Condition, true)
	elseOverlay := a.narrowingFromCondition(n.Condition, false)

	a.pushScope(symbols.ContextBlock)
	a.applyOverlay(thenOverlay)
	n.Consequent.Accept(a)
	a.popScope()

	for _, elif := range n.Elifs {
		a.infer(elif.Condition)
		a.pushScope(symbols.ContextBlock)
		elif.Body.Accept(a)
		a.popScope()
	}

	if n.Alternate != nil {
		a.pushScope(symbols.ContextBlock)
		a.applyOverlay(elseOverlay)
		n.Alternate.Accept(a)
		a.popScope()
	}
}

func (a *Analyzer) VisitForStatement(n *ast.ForStatement) {
	iterType := a.infer(n.Iterable)
	a.pushScope(symbols.ContextBlock)
	a.scope.IsLoop = true
	a.scope.LoopLabel = n.Label
	a.bindPattern(n.Pattern, elementTypeOf(iterType))
	n.Body.Accept(a)
	a.popScope()
}

func (a *Analyzer) VisitWhileStatement(n *ast.WhileStatement) {
	a.infer(n.Condition)
	overlay := a.narrowingFromCondition(n.Condition, true)
	a.pushScope(symbols.ContextBlock)
	a.scope.IsLoop = true
	a.scope.LoopLabel = n.Label
	a.applyOverlay(overlay)
	n.Body.Accept(a)
	a.popScope()
}

func (a *Analyzer) VisitLoopStatement(n *ast.LoopStatement) {
	a.pushScope(symbols.ContextBlock)
	a.scope.IsLoop = true
	a.scope.LoopLabel = n.Label
	n.Body.Accept(a)
	a.popScope()
}

func (a *Analyzer) VisitTryCatchStatement(n *ast.TryCatchStatement) {
	a.pushScope(symbols.ContextBlock)
	n.Try.Accept(a)
	a.popScope()
	if n.Catch != nil {
		a.pushScope(symbols.ContextBlock)
		if n.CatchName != "" {
			a.define(&symbols.Symbol{
				Name:         n.CatchName,
				Kind:         symbols.KindVariable,
				Declared:     n.Token,
				InferredType: typesystem.String_.String(),
			})
		}
		n.Catch.Accept(a)
		a.popScope()
	}
}

// VisitReturnStatement requires a non-empty return-type stack (E301) and
// checks the returned value against the declared return type (E101).
func (a *Analyzer) VisitReturnStatement(n *ast.ReturnStatement) {
	if len(a.returnTypeStack) == 0 {
		a.addError(diagnostics.NewError(diagnostics.ErrReturnOutsideFunction, n.Token))
		if n.Value != nil {
			a.infer(n.Value)
		}
		return
	}
	var valueType typesystem.Type = typesystem.Nil
	if n.Value != nil {
		valueType = a.infer(n.Value)
	}
	declared := a.returnTypeStack[len(a.returnTypeStack)-1]
	if declared != nil && !typesystem.Compatible(declared, valueType, typesystem.Mode{Strict: a.opts.Strict}) {
		a.addReturnTypeMismatch(n.Token, "<function>", declared, valueType)
	}
}

func (a *Analyzer) VisitExpressionStatement(n *ast.ExpressionStatement) {
	a.infer(n.Expression)
}

func (a *Analyzer) VisitBlockStatement(n *ast.BlockStatement) {
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitBreakStatement(n *ast.BreakStatement) {
	if !a.inLoop(n.Label) {
		a.addError(diagnostics.NewError(diagnostics.ErrBreakOutsideLoop, n.Token, "break"))
	}
}

func (a *Analyzer) VisitContinueStatement(n *ast.ContinueStatement) {
	if !a.inLoop(n.Label) {
		a.addError(diagnostics.NewError(diagnostics.ErrBreakOutsideLoop, n.Token, "continue"))
	}
}

func (a *Analyzer) inLoop(label string) bool {
	for cur := a.scope; cur != nil; cur = cur.Parent {
		if cur.IsLoop && (label == "" || cur.LoopLabel == label) {
			return true
		}
		if cur.IsBoundary() {
			return false
		}
	}
	return false
}

// VisitGuardStatement applies the narrowed overlay to the current scope
// from the statement onward (guards exit on failure, so success flows
// through — spec.md §4.3) and analyzes the else body under the inverse.
func (a *Analyzer) VisitGuardStatement(n *ast.GuardStatement) {
	a.infer(n.Condition)
	successOverlay := a.narrowingFromCondition(n.Condition, true)
	failureOverlay := a.narrowingFromCondition(n.Condition, false)

	a.pushScope(symbols.ContextBlock)
	a.applyOverlay(failureOverlay)
	n.Else.Accept(a)
	a.popScope()

	a.applyOverlay(successOverlay)
}

func (a *Analyzer) VisitDeferStatement(n *ast.DeferStatement) {
	if !a.inFunction() {
		a.addWarning(diagnostics.NewWarning(diagnostics.WarnDeferOutsideFunction, n.Token))
	}
	a.infer(n.Expression)
}

func (a *Analyzer) inFunction() bool {
	for cur := a.scope; cur != nil; cur = cur.Parent {
		if cur.Context == symbols.ContextFunction {
			return true
		}
	}
	return false
}

func (a *Analyzer) VisitThrowStatement(n *ast.ThrowStatement) {
	a.addWarning(diagnostics.NewWarning(diagnostics.WarnThrowKeyword, n.Token))
	a.infer(n.Expression)
}
