// Package config holds the analyzer's ambient constants — the builtin
// name tables the analyzer seeds the module scope with (spec.md §2 step
// 1), naming-convention rules, and the caller-supplied {tolerant, strict}
// configuration (spec.md §6 Configuration). Grounded on the teacher's
// internal/config/constants.go, which plays the same "small pile of
// analyzer-wide constants" role for funxy's builtin/mode-flag surface.
package config

// Version is the analyzer's own version, independent of any language
// frontend that embeds it.
var Version = "0.1.0"

// Options is the analyzer-owned configuration struct spec.md §9 asks for
// ("'Strict mode' as a global mutable flag ... becomes an analyzer-owned
// config struct passed by reference"). It is threaded explicitly through
// every call that needs it rather than read from a package-level global.
type Options struct {
	// Tolerant: diagnostics are collected but the pass always completes.
	Tolerant bool
	// Strict: upgrades certain warnings to errors and tightens type
	// compatibility (same-function Int<-Float becomes an error).
	Strict bool
}

// Default returns the analyzer's default configuration: tolerant, not
// strict — the posture an editor/language-server integration wants.
func Default() Options {
	return Options{Tolerant: true, Strict: false}
}

// NamingSuppressionPrefix is the Open Questions decision recorded in
// SPEC_FULL.md: a single leading underscore suppresses every
// naming-convention check for that symbol, regardless of kind.
const NamingSuppressionPrefix = "_"

// Builtin function names seeded into the module scope at construction
// (spec.md §2 step 1) together with their hard-coded return types
// (spec.md §4.2 Call inference rule for builtins).
const (
	LenFuncName     = "len"
	CountFuncName   = "count"
	TypeOfFuncName  = "type_of"
	RandomFuncName  = "random"
	PrintFuncName   = "print"
	AssertFuncName  = "assert"
)

// BuiltinReturnTypes is the small hard-coded return-type table spec.md
// §4.2 describes: "len, count -> Int; type_of -> String; random -> Float".
var BuiltinReturnTypes = map[string]string{
	LenFuncName:    "Int",
	CountFuncName:  "Int",
	TypeOfFuncName: "String",
	RandomFuncName: "Float",
}

// PipeTransformers is the set of pipe-chain built-in transformer names
// spec.md §4.2 enumerates, mapped to how they affect the piped type: see
// internal/analyzer/inference_pipe.go for the actual rule application.
var PipeTransformers = map[string]bool{
	"filter": true, "sorted": true, "reversed": true, "unique": true,
	"take": true, "drop": true, "map": true, "flatten": true,
	"join": true, "count": true, "len": true, "sum": true,
	"any": true, "all": true, "every": true, "some": true,
	"first": true, "last": true, "find": true,
}

// BlockKinds are the named declaration frames spec.md §6 lists: "server,
// client, shared, data, test, bench".
const (
	BlockServer = "server"
	BlockClient = "client"
	BlockShared = "shared"
	BlockData   = "data"
	BlockTest   = "test"
	BlockBench  = "bench"
)
