// Package tova is the analyzer's stable public entry point (spec.md §6):
// a thin wrapper over internal/analyzer that is the only import path
// external callers — the CLI, a future language server, embedders — are
// meant to use. Grounded on the teacher's own pkg/ boundary convention of
// keeping internal/ free to change shape while pkg/ holds a frozen API.
package tova

import (
	"github.com/tova-lang/tova/internal/analyzer"
	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/config"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/registry"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/typesystem"
)

// Options configures a single Analyze call (spec.md §5 Tolerant/Strict).
type Options = config.Options

// Diagnostic is re-exported so callers never need to import
// internal/diagnostics directly.
type Diagnostic = diagnostics.Diagnostic

// Result is the analyzer's external contract (spec.md §6 Output).
type Result struct {
	ID       string
	Errors   []*Diagnostic
	Warnings []*Diagnostic
	Scope    *symbols.Scope
	Registry *registry.Registry
}

// DefaultOptions returns {Tolerant: true, Strict: false}, the analyzer's
// documented default posture.
func DefaultOptions() Options {
	return config.Default()
}

// LoadOptions reads {tolerant, strict} from a YAML config file.
func LoadOptions(path string) (Options, error) {
	return config.LoadOptions(path)
}

// LoadExtraBuiltins reads a name -> return-type table from a YAML config
// file, for extending the builtin set a host embeds beyond config.Default.
func LoadExtraBuiltins(path string) (map[string]string, error) {
	return config.LoadExtraBuiltins(path)
}

// Analyze runs the full semantic analysis pass over prog and returns its
// diagnostics, final scope tree, and type registry. file is used only to
// stamp diagnostic locations; it need not exist on disk.
func Analyze(prog *ast.Program, file string, opts Options) Result {
	r := analyzer.Analyze(prog, file, opts)
	return fromInternal(r)
}

// New constructs an Analyzer for file and returns a Runner a caller can
// seed with extra builtins (via SeedBuiltin) before calling Run — the
// two-step form Analyze alone can't express.
func New(file string, opts Options) *Runner {
	return &Runner{a: analyzer.New(file, opts)}
}

// Runner wraps a single-use *analyzer.Analyzer, matching spec.md §5's
// "an Analyzer instance is never shared across concurrent runs."
type Runner struct {
	a *analyzer.Analyzer
}

// SeedBuiltin defines an extra builtin function the caller wants
// available on top of config.Default's table, e.g. one loaded via
// LoadExtraBuiltins. Must be called before Run.
func (r *Runner) SeedBuiltin(name, returns string) {
	r.a.SeedBuiltin(name, typesystem.FromString(returns))
}

// Run walks prog and returns the final Result.
func (r *Runner) Run(prog *ast.Program) Result {
	return fromInternal(r.a.Run(prog))
}

func fromInternal(r analyzer.Result) Result {
	return Result{ID: r.ID, Errors: r.Errors, Warnings: r.Warnings, Scope: r.Scope, Registry: r.Registry}
}
