// Package utils holds small stateless helpers kept separate from the
// analyzer's own visitor logic, matching the teacher's habit of pulling
// leaf helpers out into internal/utils (see path_utils.go there).
package utils

import (
	"strings"
	"unicode"

	"github.com/tova-lang/tova/internal/config"
)

// IsSuppressedName reports whether naming-convention checks should be
// skipped for this name at all (the Open Questions decision: a leading
// underscore suppresses every convention check, for every kind).
func IsSuppressedName(name string) bool {
	return strings.HasPrefix(name, config.NamingSuppressionPrefix)
}

// IsPascalCase reports whether name follows PascalCase: types, components,
// and stores (spec.md §4.6).
func IsPascalCase(name string) bool {
	if name == "" {
		return false
	}
	r := rune(name[0])
	return unicode.IsUpper(r)
}

// IsSnakeOrUpperSnakeCase reports whether name follows snake_case or
// UPPER_SNAKE_CASE: variables, functions, and parameters (spec.md §4.6).
func IsSnakeOrUpperSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	if name != strings.ToLower(name) && name != strings.ToUpper(name) {
		return false
	}
	r := rune(name[0])
	return unicode.IsLower(r) || unicode.IsUpper(r) || r == '_'
}

// NamingViolation returns the convention hint to show the user when a name
// fails its expected-case check, or "" when the name is fine or suppressed.
func NamingViolation(name string, wantPascal bool) string {
	if IsSuppressedName(name) {
		return ""
	}
	if wantPascal {
		if !IsPascalCase(name) {
			return "PascalCase"
		}
		return ""
	}
	if !IsSnakeOrUpperSnakeCase(name) {
		return "snake_case or UPPER_SNAKE_CASE"
	}
	return ""
}
