// Package typesystem implements the analyzer's small gradual-type algebra:
// a tagged union of type shapes, a canonical string encoding used for
// comparison and external registry emission, and an expected<-actual
// compatibility predicate (spec.md §3, §4.2).
//
// Grounded on the shape of the teacher's internal/typesystem/types.go, but
// deliberately NOT on its engine: the teacher builds a Hindley-Milner
// unifier with type-class witness dictionaries (TVar/TApp/Subst feeding
// Unify against an EvidenceTable). spec.md's type system is gradual and
// string-keyed, with no unification step — a function's return type is
// declared or inferred once, never solved for. Reusing the teacher's
// unifier would mean keeping none of its logic under a borrowed name, so
// this package is a fresh, smaller algebra in the teacher's file-split
// idiom (types.go / compat.go / subst.go) rather than an adaptation of
// in its HM engine.
package typesystem

import (
	"sort"
	"strings"
)

// Type is the closed set of shapes the analyzer reasons about.
type Type interface {
	// String returns the canonical textual encoding (spec.md §3).
	String() string
	typ()
}

// Primitive is a named scalar type: Int, Float, String, Bool.
type Primitive struct{ Name string }

func (Primitive) typ()            {}
func (p Primitive) String() string { return p.Name }

// NilType is the single type of the nil literal.
type NilType struct{}

func (NilType) typ()            {}
func (NilType) String() string { return "Nil" }

// AnyType is the top type: compatible with everything.
type AnyType struct{}

func (AnyType) typ()            {}
func (AnyType) String() string { return "Any" }

// UnknownType marks "could not infer"; rendered as the wildcard `_`.
type UnknownType struct{}

func (UnknownType) typ()            {}
func (UnknownType) String() string { return "_" }

// Array is `[T]`.
type Array struct{ Elem Type }

func (Array) typ() {}
func (a Array) String() string {
	elem := a.Elem
	if elem == nil {
		elem = Unknown
	}
	return "[" + elem.String() + "]"
}

// Tuple is `(T1, T2, ...)`.
type Tuple struct{ Elems []Type }

func (Tuple) typ() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Function is a first-class function shape: (P1, P2) -> R.
type Function struct {
	Params []Type
	Return Type
}

func (Function) typ() {}
func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "Any"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// Record is a structural `{field: T, ...}` shape.
type Record struct{ Fields map[string]Type }

func (Record) typ() {}
func (r Record) String() string {
	names := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + ": " + r.Fields[n].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ADT is a named algebraic data type: `type Name<P...> { Variant(field: T, ...), ... }`.
type ADT struct {
	Name       string
	TypeParams []string
	Variants   map[string]map[string]Type // variant name -> field name -> type
	// FieldOrder records each variant's declared field order, since
	// Variants' inner maps have no stable iteration order of their own;
	// positional patterns (`Circle(r)`) bind by this order, not by
	// iterating the map (spec.md §8: same AST, same diagnostics).
	FieldOrder map[string][]string
}

func (ADT) typ() {}
func (a ADT) String() string {
	if len(a.TypeParams) == 0 {
		return a.Name
	}
	return a.Name + "<" + strings.Join(a.TypeParams, ", ") + ">"
}

// VariantOrder returns the ADT's variant names in deterministic order.
func (a ADT) VariantOrder() []string {
	names := make([]string, 0, len(a.Variants))
	for v := range a.Variants {
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}

// Generic is an instantiation of a named type constructor with concrete
// (or still-unbound, for the "gradual" case) type arguments: `Name<T, U>`.
type Generic struct {
	Base string
	Args []Type // may be empty: "no instantiated parameters" (gradual)
}

func (Generic) typ() {}
func (g Generic) String() string {
	if len(g.Args) == 0 {
		return g.Base
	}
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return g.Base + "<" + strings.Join(parts, ", ") + ">"
}

// Variable is an unbound generic type parameter, e.g. the `T` in `fn id<T>(x: T) -> T`.
type Variable struct {
	Name  string
	Bound string // optional trait/constraint bound; "" if unconstrained
}

func (Variable) typ()            {}
func (v Variable) String() string { return v.Name }

// Union is `A | B | ...`.
type Union struct{ Members []Type }

func (Union) typ() {}
func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// Convenience singletons, mirroring how the teacher keeps pre-built
// TCon values for its primitive names.
var (
	Int     = Primitive{Name: "Int"}
	Float   = Primitive{Name: "Float"}
	String_ = Primitive{Name: "String"}
	Bool    = Primitive{Name: "Bool"}
	Nil     = NilType{}
	Any     = AnyType{}
	Unknown = UnknownType{}
)

// Option returns the canonical `Option<T>` generic shape.
func Option(inner Type) Generic { return Generic{Base: "Option", Args: []Type{inner}} }

// Result returns the canonical `Result<T, E>` generic shape.
func Result(ok, err Type) Generic { return Generic{Base: "Result", Args: []Type{ok, err}} }

// IsOption reports whether t is `Option<...>` and returns its argument.
func IsOption(t Type) (Type, bool) {
	if g, ok := t.(Generic); ok && g.Base == "Option" && len(g.Args) == 1 {
		return g.Args[0], true
	}
	return nil, false
}

// IsResult reports whether t is `Result<...>` and returns its arguments.
func IsResult(t Type) (ok, errT Type, is bool) {
	if g, matched := t.(Generic); matched && g.Base == "Result" && len(g.Args) == 2 {
		return g.Args[0], g.Args[1], true
	}
	return nil, nil, false
}

// FromString decodes a canonical type string back into a Type, the inverse
// of String(). It only needs to handle the shapes the analyzer itself ever
// prints, so it is intentionally forgiving: anything it can't parse becomes
// an opaque named Generic/Primitive with that text as its name.
func FromString(s string) Type {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return Unknown
	case "_":
		return Unknown
	case "Any":
		return Any
	case "Nil":
		return Nil
	case "Int", "Float", "String", "Bool":
		return Primitive{Name: s}
	}
	if strings.Contains(s, " | ") {
		parts := strings.Split(s, " | ")
		members := make([]Type, len(parts))
		for i, p := range parts {
			members[i] = FromString(p)
		}
		return Union{Members: members}
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return Array{Elem: FromString(s[1 : len(s)-1])}
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && !strings.Contains(s, "->") {
		inner := s[1 : len(s)-1]
		if inner == "" {
			return Tuple{}
		}
		return Tuple{Elems: splitTop(inner)}
	}
	if idx := strings.Index(s, "<"); idx > 0 && strings.HasSuffix(s, ">") {
		base := s[:idx]
		args := splitTop(s[idx+1 : len(s)-1])
		return Generic{Base: base, Args: args}
	}
	return Generic{Base: s}
}

// splitTop splits a comma-separated type-argument list at top level,
// respecting nested angle/paren/bracket depth.
func splitTop(s string) []Type {
	var parts []string
	depth := 0
	last := 0
	for i, r := range s {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	out := make([]Type, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, FromString(p))
	}
	return out
}
