package typesystem

// Mode controls the few compatibility rules that tighten under strict
// analysis (spec.md §6 Configuration, §3 Compatibility).
type Mode struct {
	Strict bool
}

// Compatible reports whether a value of type `actual` may flow into a
// position that expects `expected`, per the rules enumerated in spec.md §3.
// It is a pure function of the two types plus the strictness mode — never
// global state (spec.md §9 re-architecture guidance).
func Compatible(expected, actual Type, mode Mode) bool {
	if expected == nil || actual == nil {
		return true
	}
	if isTop(expected) || isTop(actual) {
		return true
	}
	if expected.String() == actual.String() {
		return true
	}

	// Float <- Int widening is allowed; the reverse (Int <- Float) is narrowing.
	if isPrimitive(expected, "Float") && isPrimitive(actual, "Int") {
		return true
	}
	if isPrimitive(expected, "Int") && isPrimitive(actual, "Float") {
		// Narrowing: compatible only in non-strict mode. Strict mode
		// rejects it outright (the caller decides error-vs-warning from
		// the boolean here being false only in strict mode).
		return !mode.Strict
	}

	// nil is compatible with Option<T> or with any union containing Nil.
	if _, isNil := actual.(NilType); isNil {
		if _, isOpt := IsOption(expected); isOpt {
			return true
		}
		if u, ok := expected.(Union); ok {
			for _, m := range u.Members {
				if _, isNilMember := m.(NilType); isNilMember {
					return true
				}
			}
		}
	}

	// expected is a union: compatible if some member accepts actual.
	if u, ok := expected.(Union); ok {
		for _, m := range u.Members {
			if Compatible(m, actual, mode) {
				return true
			}
		}
		return false
	}

	// actual is a union: compatible only if every member is acceptable.
	if u, ok := actual.(Union); ok {
		for _, m := range u.Members {
			if !Compatible(expected, m, mode) {
				return false
			}
		}
		return len(u.Members) > 0
	}

	// Arrays: element types must be compatible.
	if ea, ok := expected.(Array); ok {
		if aa, ok := actual.(Array); ok {
			return Compatible(ea.Elem, aa.Elem, mode)
		}
		return false
	}

	// Tuples: equal arity, positionwise compatible.
	if et, ok := expected.(Tuple); ok {
		if at, ok := actual.(Tuple); ok {
			if len(et.Elems) != len(at.Elems) {
				return false
			}
			for i := range et.Elems {
				if !Compatible(et.Elems[i], at.Elems[i], mode) {
					return false
				}
			}
			return true
		}
		return false
	}

	// Generics: same base name; gradual when either side is uninstantiated.
	if eg, ok := expected.(Generic); ok {
		if ag, ok := actual.(Generic); ok {
			if eg.Base != ag.Base {
				return false
			}
			if len(eg.Args) == 0 || len(ag.Args) == 0 {
				return true
			}
			if len(eg.Args) != len(ag.Args) {
				return false
			}
			for i := range eg.Args {
				if !Compatible(eg.Args[i], ag.Args[i], mode) {
					return false
				}
			}
			return true
		}
		return false
	}

	return false
}

func isTop(t Type) bool {
	switch t.(type) {
	case AnyType, UnknownType:
		return true
	}
	return t.String() == "_" || t.String() == "Any"
}

func isPrimitive(t Type, name string) bool {
	p, ok := t.(Primitive)
	return ok && p.Name == name
}

// IsNarrowingFloatToInt reports the specific Int<-Float data-loss case, used
// by the analyzer to decide between W204 (non-strict) and an error (strict).
func IsNarrowingFloatToInt(expected, actual Type) bool {
	return isPrimitive(expected, "Int") && isPrimitive(actual, "Float")
}
