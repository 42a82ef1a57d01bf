package analyzer

import (
	"sort"
	"strings"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/typesystem"
)

var builtinPairs = map[string][]string{
	"Result": {"Ok", "Err"},
	"Option": {"Some", "None"},
}

// checkMatchExhaustiveness implements spec.md §4.5's decision procedure
// verbatim: wildcard/unguarded-binding short-circuits to exhaustive;
// otherwise resolve the subject's ADT (precisely, or via the builtin
// Result/Option pair, or via the name-disambiguation superset search) and
// warn once per missing variant.
func (a *Analyzer) checkMatchExhaustiveness(n *ast.MatchExpression, subjectType typesystem.Type) {
	for _, arm := range n.Arms {
		if patternCoversSubject(arm.Pattern, arm.Guard != nil) {
			return
		}
	}

	covered := map[string]bool{}
	for _, arm := range n.Arms {
		if name := variantNameOf(arm.Pattern); name != "" {
			covered[name] = true
		}
	}
	if len(covered) == 0 {
		return // no variant patterns at all: literal/range match, not ours to check
	}

	variants, typeName, found := a.resolveSubjectVariants(subjectType, covered)
	if !found {
		return // ambiguous or unresolvable: stay silent per spec.md §4.5
	}

	var missing []string
	for _, v := range variants {
		if !covered[v] {
			missing = append(missing, v)
		}
	}
	if len(missing) == 0 {
		return
	}
	sort.Strings(missing)
	a.addWarning(diagnostics.NewWarning(diagnostics.WarnNonExhaustiveMatch, n.Token, strings.Join(missing, ", "), typeName))
}

// resolveSubjectVariants finds the ADT variant set to check `covered`
// against, in the order spec.md §4.5 prescribes: precise registry lookup,
// then the builtin Result/Option pair rule, then the superset
// name-disambiguation search.
func (a *Analyzer) resolveSubjectVariants(subjectType typesystem.Type, covered map[string]bool) (variants []string, typeName string, ok bool) {
	if adt, isADT := a.adtFor(subjectType); isADT {
		return adt.VariantOrder(), adt.Name, true
	}
	if g, isGeneric := subjectType.(typesystem.Generic); isGeneric {
		if pair, known := builtinPairs[g.Base]; known {
			return pair, g.Base, true
		}
	}
	for base, pair := range builtinPairs {
		allCovered := true
		for c := range covered {
			found := false
			for _, p := range pair {
				if p == c {
					found = true
					break
				}
			}
			if !found {
				allCovered = false
				break
			}
		}
		if allCovered {
			return pair, base, true
		}
	}
	candidates := a.reg.CandidatesCoveringVariants(covered)
	if len(candidates) == 1 {
		adt, isADT := a.reg.Types[candidates[0]].(typesystem.ADT)
		if isADT {
			return adt.VariantOrder(), candidates[0], true
		}
	}
	return nil, "", false
}
