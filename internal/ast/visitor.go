// Package ast defines the closed set of node tags spec.md §6 names as the
// analyzer's input contract, plus the Visitor interface the analyzer
// dispatches through. Grounded on the teacher's internal/ast package
// (ast_core.go, ast_expressions.go, ast_types.go): every node implements
// Accept(v Visitor), so the analyzer is one Visitor implementation rather
// than a switch buried in a generic interface{} walk (spec.md §9
// re-architecture guidance: "Dynamic dispatch on node tags becomes a
// tagged variant with exhaustive pattern matching").
//
// The lexer and parser that produce this tree are out of this module's
// scope (spec.md §1); nodes here are built directly, by a parser this
// repo does not implement, or by hand in tests.
package ast

// Visitor is implemented once, by the analyzer, and dispatched to by every
// node's Accept method.
type Visitor interface {
	// Root
	VisitProgram(*Program)

	// Literals and identifiers
	VisitIdentifier(*Identifier)
	VisitIntegerLiteral(*IntegerLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitBooleanLiteral(*BooleanLiteral)
	VisitNilLiteral(*NilLiteral)
	VisitTemplateStringLiteral(*TemplateStringLiteral)
	VisitArrayLiteral(*ArrayLiteral)
	VisitObjectLiteral(*ObjectLiteral)
	VisitTupleExpression(*TupleExpression)

	// Operators
	VisitBinaryExpression(*BinaryExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitLogicalExpression(*LogicalExpression)
	VisitChainedComparison(*ChainedComparison)
	VisitMembershipExpression(*MembershipExpression)

	// Calls and access
	VisitCallExpression(*CallExpression)
	VisitMemberExpression(*MemberExpression)
	VisitIndexExpression(*IndexExpression)
	VisitPipeExpression(*PipeExpression)

	// Functions and control-flow expressions
	VisitLambda(*Lambda)
	VisitMatchExpression(*MatchExpression)
	VisitIfExpression(*IfExpression)

	// Collections and comprehensions
	VisitListComprehension(*ListComprehension)
	VisitDictComprehension(*DictComprehension)
	VisitRangeExpression(*RangeExpression)
	VisitSliceExpression(*SliceExpression)
	VisitSpreadExpression(*SpreadExpression)
	VisitPropagateExpression(*PropagateExpression)
	VisitAwaitExpression(*AwaitExpression)
	VisitYieldExpression(*YieldExpression)

	// JSX
	VisitJSXElement(*JSXElement)
	VisitJSXFragment(*JSXFragment)

	// Data-block column access
	VisitColumnExpression(*ColumnExpression)
	VisitColumnAssignExpression(*ColumnAssignExpression)

	// Statements and declarations
	VisitAssignment(*Assignment)
	VisitCompoundAssignment(*CompoundAssignment)
	VisitVarDeclaration(*VarDeclaration)
	VisitDestructureDeclaration(*DestructureDeclaration)
	VisitFunctionDeclaration(*FunctionDeclaration)
	VisitTypeDeclaration(*TypeDeclaration)
	VisitTypeAliasDeclaration(*TypeAliasDeclaration)
	VisitInterfaceDeclaration(*InterfaceDeclaration)
	VisitTraitDeclaration(*TraitDeclaration)
	VisitImplDeclaration(*ImplDeclaration)
	VisitImportDeclaration(*ImportDeclaration)
	VisitExternDeclaration(*ExternDeclaration)
	VisitIfStatement(*IfStatement)
	VisitForStatement(*ForStatement)
	VisitWhileStatement(*WhileStatement)
	VisitLoopStatement(*LoopStatement)
	VisitTryCatchStatement(*TryCatchStatement)
	VisitReturnStatement(*ReturnStatement)
	VisitExpressionStatement(*ExpressionStatement)
	VisitBlockStatement(*BlockStatement)
	VisitBreakStatement(*BreakStatement)
	VisitContinueStatement(*ContinueStatement)
	VisitGuardStatement(*GuardStatement)
	VisitDeferStatement(*DeferStatement)
	VisitThrowStatement(*ThrowStatement)

	// Block-form family
	VisitBlockForm(*BlockForm)
	VisitPluginDeclaration(*PluginDeclaration)

	// Unknown node tags are a no-op (spec.md §6): VisitUnknown is called
	// instead of panicking so a single malformed or not-yet-modeled
	// subtree never aborts the walk.
	VisitUnknown(Node)
}
