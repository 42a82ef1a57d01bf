package ast

import "github.com/tova-lang/tova/internal/token"

// Assignment is `target = value`, where target is an identifier, member,
// index, or destructure pattern already bound in an enclosing scope.
type Assignment struct {
	Token  token.Token
	Target Expression
	Value  Expression
}

func (s *Assignment) Accept(v Visitor)      { v.VisitAssignment(s) }
func (s *Assignment) statementNode()        {}
func (s *Assignment) GetToken() token.Token { return s.Token }

// CompoundAssignment is `target += value` and friends.
type CompoundAssignment struct {
	Token    token.Token
	Operator string // "+=", "-=", "*=", "/=", "%="
	Target   Expression
	Value    Expression
}

func (s *CompoundAssignment) Accept(v Visitor)      { v.VisitCompoundAssignment(s) }
func (s *CompoundAssignment) statementNode()        {}
func (s *CompoundAssignment) GetToken() token.Token { return s.Token }

// VarDeclaration is `let name: T = value` / `var name = value` (let bindings
// are immutable by default per spec.md §1; `var` opts into mutability).
type VarDeclaration struct {
	Token          token.Token
	Name           string
	TypeAnnotation TypeExpr // nil when not annotated
	Value          Expression
	Mutable        bool
}

func (s *VarDeclaration) Accept(v Visitor)      { v.VisitVarDeclaration(s) }
func (s *VarDeclaration) statementNode()        {}
func (s *VarDeclaration) GetToken() token.Token { return s.Token }

// DestructureDeclaration is `let (a, b) = pair` / `let {x, y} = point`.
type DestructureDeclaration struct {
	Token   token.Token
	Pattern Pattern
	Value   Expression
	Mutable bool
}

func (s *DestructureDeclaration) Accept(v Visitor)      { v.VisitDestructureDeclaration(s) }
func (s *DestructureDeclaration) statementNode()        {}
func (s *DestructureDeclaration) GetToken() token.Token { return s.Token }

// FunctionDeclaration covers top-level functions, methods inside `impl`
// blocks, and functions nested in the block-form family. Route handlers
// do not use this node: a route PluginDeclaration carries its own Params,
// ReturnType and Body (spec.md §4.8).
type FunctionDeclaration struct {
	Token        token.Token
	Name         string
	TypeParams   []string
	Params       []Param
	ReturnType   TypeExpr // nil when unannotated (inferred from body)
	Body         *BlockStatement
	IsAsync      bool
	IsGenerator  bool
	IsPublic     bool
	IsExtern     bool
	VariantOf    string // non-"" when this function is a variant constructor shortcut
}

func (s *FunctionDeclaration) Accept(v Visitor)      { v.VisitFunctionDeclaration(s) }
func (s *FunctionDeclaration) statementNode()        {}
func (s *FunctionDeclaration) GetToken() token.Token { return s.Token }

// VariantDef is one ADT variant: a name plus its field map (empty for a
// unit variant like `Color.Red`, populated for `Shape.Circle{radius: Float}`).
type VariantDef struct {
	Name   string
	Fields map[string]TypeExpr
	Order  []string // field declaration order, for stable canonical encoding
}

// TypeDeclaration is `type Name<T> = Variant1 | Variant2{field: T} | ...`,
// an ADT definition (spec.md §3 Type.ADT).
type TypeDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []string
	Variants   []VariantDef
}

func (s *TypeDeclaration) Accept(v Visitor)      { v.VisitTypeDeclaration(s) }
func (s *TypeDeclaration) statementNode()        {}
func (s *TypeDeclaration) GetToken() token.Token { return s.Token }

// TypeAliasDeclaration is `type Name = OtherType`, resolved through
// typesystem.ResolveAlias to detect cycles (spec.md §9 redesign flag, E103).
type TypeAliasDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []string
	Aliased    TypeExpr
}

func (s *TypeAliasDeclaration) Accept(v Visitor)      { v.VisitTypeAliasDeclaration(s) }
func (s *TypeAliasDeclaration) statementNode()        {}
func (s *TypeAliasDeclaration) GetToken() token.Token { return s.Token }

// MethodSignature is one required method inside an interface/trait body.
type MethodSignature struct {
	Name       string
	ParamTypes []TypeExpr
	ReturnType TypeExpr
}

// InterfaceDeclaration is `interface Name { method(params): Ret ... }`.
type InterfaceDeclaration struct {
	Token   token.Token
	Name    string
	Methods []MethodSignature
}

func (s *InterfaceDeclaration) Accept(v Visitor)      { v.VisitInterfaceDeclaration(s) }
func (s *InterfaceDeclaration) statementNode()        {}
func (s *InterfaceDeclaration) GetToken() token.Token { return s.Token }

// TraitDeclaration is `trait Name { method(params): Ret ... }`, structurally
// identical to an interface but checked against `impl` blocks via
// conformance (W300-302) rather than structural assignability.
type TraitDeclaration struct {
	Token   token.Token
	Name    string
	Methods []MethodSignature
}

func (s *TraitDeclaration) Accept(v Visitor)      { v.VisitTraitDeclaration(s) }
func (s *TraitDeclaration) statementNode()        {}
func (s *TraitDeclaration) GetToken() token.Token { return s.Token }

// ImplDeclaration is `impl Trait for Type { fn ... }` or the traitless
// `impl Type { fn ... }` (inherent methods).
type ImplDeclaration struct {
	Token     token.Token
	TraitName string // "" for an inherent impl block
	TypeName  string
	Methods   []*FunctionDeclaration
}

func (s *ImplDeclaration) Accept(v Visitor)      { v.VisitImplDeclaration(s) }
func (s *ImplDeclaration) statementNode()        {}
func (s *ImplDeclaration) GetToken() token.Token { return s.Token }

// ImportDeclaration covers named, default, and wildcard import forms; the
// analyzer treats every imported binding as type Unknown (module resolution
// is out of scope per spec.md §1).
type ImportDeclaration struct {
	Token     token.Token
	Path      string
	Default   string   // "" when not a default import
	Named     []string // "" entries ignored
	Wildcard  bool
	Alias     string // binding name for a wildcard import
}

func (s *ImportDeclaration) Accept(v Visitor)      { v.VisitImportDeclaration(s) }
func (s *ImportDeclaration) statementNode()        {}
func (s *ImportDeclaration) GetToken() token.Token { return s.Token }

// ExternDeclaration declares a foreign binding's name and type without a
// body; uniquely allowed to shadow a builtin of the same name (spec.md §2
// Scope invariant).
type ExternDeclaration struct {
	Token          token.Token
	Name           string
	TypeAnnotation TypeExpr
}

func (s *ExternDeclaration) Accept(v Visitor)      { v.VisitExternDeclaration(s) }
func (s *ExternDeclaration) statementNode()        {}
func (s *ExternDeclaration) GetToken() token.Token { return s.Token }

// IfStatement is the statement-position `if cond { } elif cond { } else { }`
// form (see IfExpression for the expression-position form).
type IfStatement struct {
	Token      token.Token
	Condition  Expression
	Consequent *BlockStatement
	Elifs      []ElifClause
	Alternate  *BlockStatement // nil when there is no `else`
}

// ElifClause is one `elif cond { }` clause.
type ElifClause struct {
	Condition Expression
	Body      *BlockStatement
}

func (s *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(s) }
func (s *IfStatement) statementNode()        {}
func (s *IfStatement) GetToken() token.Token { return s.Token }

// ForStatement is `for pattern in iterable { }`.
type ForStatement struct {
	Token    token.Token
	Pattern  Pattern
	Iterable Expression
	Body     *BlockStatement
	Label    string
}

func (s *ForStatement) Accept(v Visitor)      { v.VisitForStatement(s) }
func (s *ForStatement) statementNode()        {}
func (s *ForStatement) GetToken() token.Token { return s.Token }

// WhileStatement is `while cond { }`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
	Label     string
}

func (s *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(s) }
func (s *WhileStatement) statementNode()        {}
func (s *WhileStatement) GetToken() token.Token { return s.Token }

// LoopStatement is the unconditional `loop { }`, which only terminates via
// `break`.
type LoopStatement struct {
	Token token.Token
	Body  *BlockStatement
	Label string
}

func (s *LoopStatement) Accept(v Visitor)      { v.VisitLoopStatement(s) }
func (s *LoopStatement) statementNode()        {}
func (s *LoopStatement) GetToken() token.Token { return s.Token }

// TryCatchStatement is `try { } catch name { } `.
type TryCatchStatement struct {
	Token      token.Token
	Try        *BlockStatement
	CatchName  string // "" when the catch binds nothing
	Catch      *BlockStatement // nil when there is no catch clause
}

func (s *TryCatchStatement) Accept(v Visitor)      { v.VisitTryCatchStatement(s) }
func (s *TryCatchStatement) statementNode()        {}
func (s *TryCatchStatement) GetToken() token.Token { return s.Token }

// ReturnStatement is `return` / `return expr`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for a bare `return`
}

func (s *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(s) }
func (s *ReturnStatement) statementNode()        {}
func (s *ReturnStatement) GetToken() token.Token { return s.Token }

// ExpressionStatement wraps an expression used for its side effect; its
// value is the implicit return of the enclosing block when it is last.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) statementNode()        {}
func (s *ExpressionStatement) GetToken() token.Token { return s.Token }

// BlockStatement is `{ stmt... }`, a new lexical scope.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (s *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(s) }
func (s *BlockStatement) statementNode()        {}
func (s *BlockStatement) GetToken() token.Token { return s.Token }

// BreakStatement is `break` / `break label`.
type BreakStatement struct {
	Token token.Token
	Label string
}

func (s *BreakStatement) Accept(v Visitor)      { v.VisitBreakStatement(s) }
func (s *BreakStatement) statementNode()        {}
func (s *BreakStatement) GetToken() token.Token { return s.Token }

// ContinueStatement is `continue` / `continue label`.
type ContinueStatement struct {
	Token token.Token
	Label string
}

func (s *ContinueStatement) Accept(v Visitor)      { v.VisitContinueStatement(s) }
func (s *ContinueStatement) statementNode()        {}
func (s *ContinueStatement) GetToken() token.Token { return s.Token }

// GuardStatement is `guard cond else { }`; per spec.md §4.4 a guard alone
// never proves the enclosing block definitely returns, since the only
// analyzed path is the failure (else) branch.
type GuardStatement struct {
	Token     token.Token
	Condition Expression
	Else      *BlockStatement
}

func (s *GuardStatement) Accept(v Visitor)      { v.VisitGuardStatement(s) }
func (s *GuardStatement) statementNode()        {}
func (s *GuardStatement) GetToken() token.Token { return s.Token }

// DeferStatement is `defer expr`; only legal inside a function (W208).
type DeferStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *DeferStatement) Accept(v Visitor)      { v.VisitDeferStatement(s) }
func (s *DeferStatement) statementNode()        {}
func (s *DeferStatement) GetToken() token.Token { return s.Token }

// ThrowStatement is `throw expr` (W206 flags its use as a style warning;
// spec.md keeps `try/catch` as the preferred error-propagation idiom).
type ThrowStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ThrowStatement) Accept(v Visitor)      { v.VisitThrowStatement(s) }
func (s *ThrowStatement) statementNode()        {}
func (s *ThrowStatement) GetToken() token.Token { return s.Token }
