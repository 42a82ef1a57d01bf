package symbols

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tova-lang/tova/internal/diagnostics"
)

// ContextKind is one of the four lexical-scope kinds spec.md §3 names.
type ContextKind int

const (
	ContextModule ContextKind = iota
	ContextServer
	ContextClient
	ContextShared
	ContextFunction
	ContextBlock
)

func (c ContextKind) String() string {
	switch c {
	case ContextModule:
		return "module"
	case ContextServer:
		return "server"
	case ContextClient:
		return "client"
	case ContextShared:
		return "shared"
	case ContextFunction:
		return "function"
	case ContextBlock:
		return "block"
	default:
		return "unknown"
	}
}

// isBoundary reports whether this context kind stops upward mutability
// lookups (spec.md §4.1: "module, server, client, shared" are the
// function/top-level boundary kinds alongside ContextFunction itself).
func (c ContextKind) isBoundary() bool {
	switch c {
	case ContextModule, ContextServer, ContextClient, ContextShared, ContextFunction:
		return true
	default:
		return false
	}
}

// Scope is one node of the scope tree (spec.md §3 Scope).
//
// ID is a random UUID assigned at construction (see SPEC_FULL.md's Domain
// Stack section): it lets a downstream consumer — e.g. a language server
// holding on to a returned scope tree — refer to a scope without relying
// on pointer identity. A new ID is generated every time a scope is built,
// so IDs are not carried over from one analyzer run to the next.
type Scope struct {
	ID       string
	Parent   *Scope
	Children []*Scope
	Symbols  map[string]*Symbol
	Context  ContextKind
	Name     string // block name, for named server/client/shared blocks; "" otherwise

	IsLoop    bool
	LoopLabel string

	// narrowed holds the flow-sensitive type overlay installed for the
	// duration of a branch (spec.md §4.3). It shadows Symbols without
	// mutating the underlying symbol.
	narrowed map[string]string
}

// New creates the root (module) scope.
func New() *Scope {
	return &Scope{
		ID:      uuid.NewString(),
		Symbols: make(map[string]*Symbol),
		Context: ContextModule,
	}
}

// NewChild creates and links a child scope of the given context kind.
func (s *Scope) NewChild(ctx ContextKind) *Scope {
	child := &Scope{
		ID:      uuid.NewString(),
		Parent:  s,
		Symbols: make(map[string]*Symbol),
		Context: ctx,
	}
	s.Children = append(s.Children, child)
	return child
}

// IsBoundary reports whether this scope stops an upward
// lookupForAssignment/existsInOuterScope walk.
func (s *Scope) IsBoundary() bool { return s.Context.isBoundary() }

// Define inserts a symbol into this scope. It fails with an E203
// redefinition diagnostic if the name already exists *locally*, unless the
// existing symbol is a builtin being shadowed by an `extern` declaration
// of the same name (spec.md §4.1 Invariants).
func (s *Scope) Define(sym *Symbol) *diagnostics.Diagnostic {
	if existing, ok := s.Symbols[sym.Name]; ok {
		builtinShadowedByExtern := existing.Kind == KindBuiltin &&
			sym.Function != nil && sym.Function.Extern
		if !builtinShadowedByExtern {
			return diagnostics.NewError(diagnostics.ErrRedefinition, sym.Declared, sym.Name)
		}
	}
	s.Symbols[sym.Name] = sym
	return nil
}

// LookupLocal returns a symbol defined directly in this scope, or nil.
func (s *Scope) LookupLocal(name string) *Symbol {
	return s.Symbols[name]
}

// Lookup walks parents until a match or the root (spec.md §4.1).
func (s *Scope) Lookup(name string) *Symbol {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.Symbols[name]; ok {
			return sym
		}
	}
	return nil
}

// LookupForAssignment walks parents like Lookup but stops at the first
// function/top-level boundary (module, server, client, shared, function).
// This is the primitive that catches "same-function immutability"
// violations even when the reassignment sits inside a nested if/for block
// (spec.md §4.1).
func (s *Scope) LookupForAssignment(name string) *Symbol {
	cur := s
	for {
		if sym, ok := cur.Symbols[name]; ok {
			return sym
		}
		if cur.IsBoundary() || cur.Parent == nil {
			return nil
		}
		cur = cur.Parent
	}
}

// ExistsInOuterScope reports whether `name` is defined in any scope beyond
// the nearest function/top-level boundary — used for shadow warnings
// (spec.md §4.1).
func (s *Scope) ExistsInOuterScope(name string) bool {
	cur := s
	crossedBoundary := false
	for cur != nil {
		if crossedBoundary {
			if _, ok := cur.Symbols[name]; ok {
				return true
			}
		}
		if cur.IsBoundary() {
			crossedBoundary = true
		}
		cur = cur.Parent
	}
	return false
}

// Narrow installs a flow-sensitive type overlay for `name` in this scope
// (spec.md §4.3). It does not touch the underlying Symbol.
func (s *Scope) Narrow(name, narrowedType string) {
	if s.narrowed == nil {
		s.narrowed = make(map[string]string)
	}
	s.narrowed[name] = narrowedType
}

// NarrowedType returns the narrowed type installed for `name` in this
// scope or any ancestor, walking up until a boundary-independent lookup
// finds one, or "" if none is installed.
func (s *Scope) NarrowedType(name string) string {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.narrowed != nil {
			if t, ok := cur.narrowed[name]; ok {
				return t
			}
		}
		if _, ok := cur.Symbols[name]; ok {
			// The symbol is redeclared at this scope; narrowing from an
			// outer scope does not apply past its own declaration.
			return ""
		}
	}
	return ""
}

// Root walks up to the module-level scope.
func (s *Scope) Root() *Scope {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// AncestorChainIsAcyclic verifies spec.md §4.1 invariant (a) — mostly
// useful in tests, since construction can only ever produce a tree.
func (s *Scope) AncestorChainIsAcyclic() bool {
	seen := map[*Scope]bool{}
	for cur := s; cur != nil; cur = cur.Parent {
		if seen[cur] {
			return false
		}
		seen[cur] = true
	}
	return true
}

// Describe is a small debug helper used in test failure messages.
func (s *Scope) Describe() string {
	name := s.Name
	if name == "" {
		name = "<anon>"
	}
	return fmt.Sprintf("scope(%s:%s)", s.Context, name)
}

// Walk calls fn for this scope and every descendant, depth-first.
func (s *Scope) Walk(fn func(*Scope)) {
	fn(s)
	for _, c := range s.Children {
		c.Walk(fn)
	}
}
