// Package registry implements the project-level Type Registry spec.md §3
// names: three maps, all keyed by type name, exposed for downstream
// consumers (a language server, a documentation generator). It is kept
// separate from internal/symbols because its lifetime and audience differ
// from the scope tree — the registry survives and is handed to callers
// whole, where the scope tree is walked once for the unused-symbol report
// and then held only for inspection.
package registry

import "github.com/tova-lang/tova/internal/typesystem"

// MethodSignature mirrors symbols.MethodSignature; duplicated here (rather
// than imported) to keep registry free of a dependency on the scope tree,
// matching the teacher's habit of keeping its TypeRegistry a leaf package.
type MethodSignature struct {
	Name       string
	ParamCount int
	ParamTypes []typesystem.Type
	Return     typesystem.Type
}

// Registry is the {types, impls, traits} triple of spec.md §3.
type Registry struct {
	// Types maps a type name to its structural shape (ADT or Record).
	Types map[string]typesystem.Type
	// Impls maps a type name to the method signatures it implements.
	Impls map[string][]MethodSignature
	// Traits maps a trait name to its required method signatures.
	Traits map[string][]MethodSignature
}

// New returns an empty Registry with all three maps initialized.
func New() *Registry {
	return &Registry{
		Types:  make(map[string]typesystem.Type),
		Impls:  make(map[string][]MethodSignature),
		Traits: make(map[string][]MethodSignature),
	}
}

// DefineType registers a named type's structure.
func (r *Registry) DefineType(name string, t typesystem.Type) {
	r.Types[name] = t
}

// AddImpl registers a method signature as implemented by `typeName`.
func (r *Registry) AddImpl(typeName string, sig MethodSignature) {
	r.Impls[typeName] = append(r.Impls[typeName], sig)
}

// DefineTrait registers a trait's required method signatures.
func (r *Registry) DefineTrait(name string, sigs []MethodSignature) {
	r.Traits[name] = sigs
}

// HasMethod reports whether `typeName` implements a method named `method`,
// returning its signature.
func (r *Registry) HasMethod(typeName, method string) (MethodSignature, bool) {
	for _, sig := range r.Impls[typeName] {
		if sig.Name == method {
			return sig, true
		}
	}
	return MethodSignature{}, false
}

// ADTVariants returns the ordered variant names of a registered ADT, or
// nil if `name` is not an ADT (spec.md §4.5 exhaustiveness checking).
func ADTVariants(r *Registry, name string) []string {
	t, ok := r.Types[name]
	if !ok {
		return nil
	}
	adt, ok := t.(typesystem.ADT)
	if !ok {
		return nil
	}
	return adt.VariantOrder()
}

// CandidatesCoveringVariants implements spec.md §4.5's name-disambiguation
// fallback: scan all declared ADTs and keep those whose variant set is a
// superset of `covered`. Exactly-one-candidate is the caller's signal to
// use it; anything else is "stay silent (ambiguous)".
func (r *Registry) CandidatesCoveringVariants(covered map[string]bool) []string {
	var candidates []string
	for name, t := range r.Types {
		adt, ok := t.(typesystem.ADT)
		if !ok {
			continue
		}
		supersets := true
		for c := range covered {
			if _, has := adt.Variants[c]; !has {
				supersets = false
				break
			}
		}
		if supersets {
			candidates = append(candidates, name)
		}
	}
	return candidates
}
