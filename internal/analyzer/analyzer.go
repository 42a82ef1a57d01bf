// Package analyzer implements the semantic analyzer itself: the single
// AST walk that builds the scope tree and type registry while emitting
// diagnostics, plus the post-pass unused-symbol report (spec.md §2, §4).
//
// Grounded on the shape of the teacher's internal/analyzer package — one
// Analyzer struct holding mutable walk state, addError/addWarning with
// dedup-and-sort at the end, a pre-pass before the main walk — but
// reimplemented around spec.md's simpler gradual type system and its
// four-context scope model instead of the teacher's HM-unification engine
// (see internal/typesystem's package doc for why that engine wasn't
// adapted).
package analyzer

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/config"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/registry"
	"github.com/tova-lang/tova/internal/symbols"
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
)

// Result is the analyzer's external contract (spec.md §6 Output). ID
// stamps the run that produced it, so a caller correlating diagnostics
// against a specific invocation (e.g. the language server re-running on
// every keystroke) never confuses two Results for the same file.
type Result struct {
	ID       string
	Errors   []*diagnostics.Diagnostic
	Warnings []*diagnostics.Diagnostic
	Scope    *symbols.Scope
	Registry *registry.Registry
}

// Analyzer owns one run's entire mutable state: its scope tree, type
// registry, diagnostic buffers, and the three state machines spec.md §4.7
// names. Per spec.md §5, an Analyzer instance is never shared across
// concurrent runs.
type Analyzer struct {
	opts    config.Options
	file    string
	root    *symbols.Scope
	scope   *symbols.Scope
	reg     *registry.Registry
	aliases map[string]typesystem.Type // name -> right-hand-side type, for ResolveAlias

	errors   []*diagnostics.Diagnostic
	warnings []*diagnostics.Diagnostic
	seen     map[string]bool

	// State machine 1: async-depth counter (spec.md §4.7).
	asyncDepth int
	// State machine 2: return-type stack, pushed on function entry.
	returnTypeStack []typesystem.Type
	// also tracks whether the enclosing function declared an explicit
	// return-type annotation, for E101 vs. silent inference.
	returnAnnotated []bool
	// State machine 3: current named server block, "" when not inside one
	// or inside an anonymous one.
	currentServerBlock string
	currentBlockKind   *ast.BlockKind

	loopDepth  int
	loopLabels []string

	// lastType is the single-slot channel infer() reads from after calling
	// Accept on an expression node (see infer.go).
	lastType typesystem.Type

	// blockFunctions is the pre-pass map spec.md §4.7 describes: block name
	// -> set of function names declared directly inside it, used to
	// validate `other.fn()` cross-block RPC calls.
	blockFunctions map[string]map[string]bool

	// typeParamsStack tracks the type-parameter names in scope for the
	// innermost generic function/type, so bare names resolve to Variable
	// rather than an opaque Generic.
	typeParamsStack [][]string
}

// New constructs an Analyzer ready to walk a single program.
func New(file string, opts config.Options) *Analyzer {
	root := symbols.New()
	a := &Analyzer{
		opts:           opts,
		file:           file,
		root:           root,
		scope:          root,
		reg:            registry.New(),
		aliases:        make(map[string]typesystem.Type),
		seen:           make(map[string]bool),
		blockFunctions: make(map[string]map[string]bool),
	}
	a.seedBuiltins()
	return a
}

// Analyze runs the full pipeline described in spec.md §2: seed builtins
// (done in New), pre-pass the block-name map, walk the program, then
// post-pass for unused symbols.
func Analyze(prog *ast.Program, file string, opts config.Options) Result {
	a := New(file, opts)
	return a.Run(prog)
}

// Run executes the pre-pass, main walk, and unused-symbol post-pass over
// an already-constructed Analyzer, returning the final Result. Exposed
// separately from Analyze so a caller can seed extra builtins via
// config.LoadExtraBuiltins before running.
func (a *Analyzer) Run(prog *ast.Program) Result {
	a.prepass(prog)
	a.safeWalk(func() { prog.Accept(a) })
	a.unusedPass()

	sort.SliceStable(a.errors, func(i, j int) bool { return diagnostics.Less(a.errors[i], a.errors[j]) })
	sort.SliceStable(a.warnings, func(i, j int) bool { return diagnostics.Less(a.warnings[i], a.warnings[j]) })

	return Result{ID: uuid.NewString(), Errors: a.errors, Warnings: a.warnings, Scope: a.root, Registry: a.reg}
}

// safeWalk runs fn, recovering a panic into an E900 diagnostic when the
// analyzer is tolerant (spec.md §5 Failure semantics: "a single malformed
// subtree in tolerant mode is caught, a diagnostic is recorded, and
// traversal continues"). In strict/non-tolerant mode the panic propagates,
// since spec.md says the accumulated errors surface as one fatal condition
// "after the pass completes, never mid-walk" — a panic mid-walk is exactly
// the case strict mode does not promise to survive.
func (a *Analyzer) safeWalk(fn func()) {
	if !a.opts.Tolerant {
		fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.addError(diagnostics.NewError(diagnostics.ErrInternal, token.Token{Type: token.SYNTH}, fmt.Sprint(r)))
		}
	}()
	fn()
}

// --- diagnostic collection -------------------------------------------------

func (a *Analyzer) dedupKey(d *diagnostics.Diagnostic) string {
	return fmt.Sprintf("%s@%d:%d:%v", d.Code, d.Location.Line, d.Location.Column, d.Args)
}

func (a *Analyzer) addError(d *diagnostics.Diagnostic) {
	d.WithFile(a.file)
	key := a.dedupKey(d)
	if a.seen[key] {
		return
	}
	a.seen[key] = true
	a.errors = append(a.errors, d)
}

func (a *Analyzer) addWarning(d *diagnostics.Diagnostic) {
	d.WithFile(a.file)
	key := a.dedupKey(d)
	if a.seen[key] {
		return
	}
	a.seen[key] = true
	a.warnings = append(a.warnings, d)
}

// --- scope helpers ----------------------------------------------------------

func (a *Analyzer) pushScope(ctx symbols.ContextKind) *symbols.Scope {
	child := a.scope.NewChild(ctx)
	a.scope = child
	return child
}

func (a *Analyzer) popScope() {
	if a.scope.Parent != nil {
		a.scope = a.scope.Parent
	}
}

// define inserts sym into the current scope, routing a redefinition
// conflict straight to the error stream.
func (a *Analyzer) define(sym *symbols.Symbol) {
	if diag := a.scope.Define(sym); diag != nil {
		a.addError(diag)
	}
}

// currentTypeParams flattens the type-parameter stack into a single
// membership set for the innermost generic context.
func (a *Analyzer) currentTypeParams() []string {
	if len(a.typeParamsStack) == 0 {
		return nil
	}
	return a.typeParamsStack[len(a.typeParamsStack)-1]
}
