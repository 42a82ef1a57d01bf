// Package symbols implements the analyzer's scope tree: Scope nodes linked
// by parent pointers, each owning a name->Symbol table, plus the lookup
// primitives that encode Tova's "immutable by default, mutation stops at
// the function boundary" scoping rule (spec.md §3 Scope/Symbol, §4.1).
//
// Grounded on the shape of the teacher's internal/symbols package
// (Symbol/SymbolKind/ScopeType, parent-linked scopes, a define/lookup
// surface) but built around spec.md's four context kinds and its simpler,
// non-generalized Symbol rather than the teacher's Hindley-Milner
// TVar-carrying one.
package symbols

import (
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
)

// Kind discriminates what a Symbol denotes (spec.md §3 Symbol).
type Kind int

const (
	KindBuiltin Kind = iota
	KindVariable
	KindParameter
	KindFunction
	KindType
	KindState
	KindComputed
	KindComponent
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindVariable:
		return "variable"
	case KindParameter:
		return "parameter"
	case KindFunction:
		return "function"
	case KindType:
		return "type"
	case KindState:
		return "state"
	case KindComputed:
		return "computed"
	case KindComponent:
		return "component"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// FunctionData is the per-kind side data a KindFunction Symbol carries.
type FunctionData struct {
	ParamNames     []string
	RequiredCount  int
	TotalCount     int
	ParamTypes     []typesystem.Type // positional, parallel to ParamNames
	TypeParams     []string
	Public         bool
	VariantOfType  string // non-"" if this function is an ADT variant constructor
	Async          bool
	Extern         bool
	DeclaredReturn typesystem.Type // nil if unannotated
}

// TypeData is the per-kind side data a KindType Symbol carries.
type TypeData struct {
	TypeParams []string
	AliasOf    typesystem.Type // non-nil for `type Alias = ...`
	Structured typesystem.Type // the ADT or Record shape, when not an alias
}

// MethodSignature describes one interface/trait method (spec.md §3 Symbol,
// interfaces/traits side data).
type MethodSignature struct {
	Name       string
	ParamCount int // excluding `self`
	ParamTypes []typesystem.Type
	Return     typesystem.Type
}

// InterfaceData is the per-kind side data an interface/trait Symbol
// carries. Traits are represented as KindType symbols with InterfaceData
// set, since spec.md's Symbol table does not give interfaces their own
// Kind.
type InterfaceData struct {
	Methods []MethodSignature
}

// Symbol is one entry in a Scope's name table.
type Symbol struct {
	Name         string
	Kind         Kind
	Mutable      bool
	Declared     token.Token
	Used         bool
	InferredType string // canonical type string; "" means "unknown"
	Annotation   typesystem.Type // the declared type annotation, if any

	Function  *FunctionData
	Type_     *TypeData
	Interface *InterfaceData
}

// IsAssignableByUser reports whether ordinary user code may reassign this
// symbol — builtins and functions/types never are, regardless of the
// `var` flag.
func (s *Symbol) IsAssignableByUser() bool {
	return s.Kind == KindVariable || s.Kind == KindParameter || s.Kind == KindState
}
