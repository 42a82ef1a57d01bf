// Package token carries the source-location information threaded through
// every AST node and every diagnostic. The lexer and parser that produce
// these tokens are out of this module's scope (see spec.md §1); the
// analyzer only consumes the shape below.
package token

import "fmt"

// Type discriminates the handful of token kinds the analyzer itself cares
// about when rendering naming-convention diagnostics or synthesizing
// locations for injected nodes. It is not a full lexer token set.
type Type string

const (
	IDENT   Type = "IDENT"
	KEYWORD Type = "KEYWORD"
	LITERAL Type = "LITERAL"
	SYNTH   Type = "SYNTH" // location synthesized by the analyzer itself
)

// Token is a minimal (type, lexeme, location) triple. Every AST node embeds
// one as its primary token for error reporting (GetToken() Token).
type Token struct {
	Type   Type
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d '%s'", t.Line, t.Column, t.Lexeme)
}

// Zero reports whether this token carries no real location, i.e. it was
// never set by a producer (a nil AST node, typically).
func (t Token) Zero() bool {
	return t.Line == 0 && t.Column == 0
}
