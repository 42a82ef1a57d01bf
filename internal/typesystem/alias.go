package typesystem

import "fmt"

// AliasResolver looks up the right-hand side expression type of a type
// alias by name, returning (type, true) if `name` is a known alias.
type AliasResolver func(name string) (Type, bool)

// ResolveAlias follows a chain of type aliases to its underlying type,
// detecting the cycle spec.md's Open Questions flags ("type A = B; type
// B = A has no explicit termination guard"). On a cycle it returns a nil
// type together with the ordered list of names visited, each named once,
// so the caller can render an E103 diagnostic naming the whole cycle.
func ResolveAlias(start string, resolve AliasResolver) (Type, []string, error) {
	seen := map[string]bool{}
	order := []string{start}
	name := start
	for {
		if seen[name] {
			return nil, order, fmt.Errorf("%v", order)
		}
		seen[name] = true
		next, ok := resolve(name)
		if !ok {
			return Generic{Base: name}, order, nil
		}
		g, isGeneric := next.(Generic)
		if !isGeneric || len(g.Args) > 0 {
			return next, order, nil
		}
		if seen[g.Base] {
			return nil, order, fmt.Errorf("%v", order)
		}
		order = append(order, g.Base)
		name = g.Base
	}
}
