package typesystem

// Subst maps a generic type-parameter name to the concrete type it was
// bound to. It is built by BindTypeParams and consumed by Apply — the
// analyzer's structural counterpart to spec.md §4.2's "recursively walk
// A_i and T_i in lockstep; whenever A_i is a bare type parameter not yet
// bound, bind it to T_i".
type Subst map[string]Type

// BindTypeParams infers type-parameter bindings by walking a declared
// parameter-type annotation (`ann`) and the actual argument type (`actual`)
// in lockstep. Parameters already present in `into` are left untouched —
// a parameter only ever binds to the first argument that determines it.
func BindTypeParams(params []string, ann, actual Type, into Subst) {
	if ann == nil || actual == nil {
		return
	}
	isParam := func(name string) bool {
		for _, p := range params {
			if p == name {
				return true
			}
		}
		return false
	}

	switch a := ann.(type) {
	case Variable:
		if isParam(a.Name) {
			if _, bound := into[a.Name]; !bound {
				into[a.Name] = actual
			}
		}
	case Generic:
		// A bare type parameter can also show up as a zero-arg Generic
		// (FromString has no way to distinguish "T" the parameter from
		// "T" a concrete 0-arity name without the params list).
		if len(a.Args) == 0 && isParam(a.Base) {
			if _, bound := into[a.Base]; !bound {
				into[a.Base] = actual
			}
			return
		}
		if ac, ok := actual.(Generic); ok && a.Base == ac.Base {
			for i := range a.Args {
				if i < len(ac.Args) {
					BindTypeParams(params, a.Args[i], ac.Args[i], into)
				}
			}
		}
	case Array:
		if ac, ok := actual.(Array); ok {
			BindTypeParams(params, a.Elem, ac.Elem, into)
		}
	case Tuple:
		if ac, ok := actual.(Tuple); ok {
			for i := range a.Elems {
				if i < len(ac.Elems) {
					BindTypeParams(params, a.Elems[i], ac.Elems[i], into)
				}
			}
		}
	case Function:
		if ac, ok := actual.(Function); ok {
			for i := range a.Params {
				if i < len(ac.Params) {
					BindTypeParams(params, a.Params[i], ac.Params[i], into)
				}
			}
			BindTypeParams(params, a.Return, ac.Return, into)
		}
	}
}

// Apply substitutes every bound type parameter appearing in t, leaving
// unbound parameters (and anything else) untouched. Per spec.md §4.2,
// "if a parameter stays unbound, skip type checking for that argument
// slot" — Apply reflects that by returning Unknown for an unbound bare
// parameter, rather than leaving the literal parameter name in a type
// that is meant to be concrete.
func Apply(t Type, s Subst) Type {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case Variable:
		if bound, ok := s[v.Name]; ok {
			return bound
		}
		return Unknown
	case Generic:
		if len(v.Args) == 0 {
			if bound, ok := s[v.Base]; ok {
				return bound
			}
			return v
		}
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = Apply(a, s)
		}
		return Generic{Base: v.Base, Args: args}
	case Array:
		return Array{Elem: Apply(v.Elem, s)}
	case Tuple:
		elems := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = Apply(e, s)
		}
		return Tuple{Elems: elems}
	case Function:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = Apply(p, s)
		}
		return Function{Params: params, Return: Apply(v.Return, s)}
	case Union:
		members := make([]Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = Apply(m, s)
		}
		return Union{Members: members}
	default:
		return t
	}
}

// ApplyIdempotent applies s twice and reports whether the two applications
// produced the same canonical string — the idempotence property spec.md §8
// requires of return-type substitution.
func ApplyIdempotent(t Type, s Subst) bool {
	once := Apply(t, s)
	twice := Apply(once, s)
	return once.String() == twice.String()
}
