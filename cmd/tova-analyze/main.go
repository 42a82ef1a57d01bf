// Command tova-analyze is the thin CLI collaborator SPEC_FULL.md scopes
// it as: it owns no lexer or parser (those are explicit non-goals), so it
// reads an already-built AST as a JSON or txtar-encoded fixture and runs
// it straight through pkg/tova, rendering whatever diagnostics come back.
// Grounded on the teacher's cmd/funxy/main.go idiom: a flag-parsing loop
// over os.Args, fmt.Fprintf(os.Stderr, ...) + os.Exit(1) on failure, and a
// top-level recover() that prints "Internal error: %v" unless DEBUG=1.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/tools/txtar"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/fixture"
	"github.com/tova-lang/tova/pkg/tova"
)

const defaultASTSection = "ast.json"

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	var (
		fixturePath string
		configPath  string
		builtinPath string
		astSection  string
	)
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			i++
			if i >= len(args) {
				fatalf("--config requires a path")
			}
			configPath = args[i]
		case "--builtins":
			i++
			if i >= len(args) {
				fatalf("--builtins requires a path")
			}
			builtinPath = args[i]
		case "--ast-section":
			i++
			if i >= len(args) {
				fatalf("--ast-section requires a name")
			}
			astSection = args[i]
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			if fixturePath != "" {
				fatalf("unexpected argument: %s", args[i])
			}
			fixturePath = args[i]
		}
	}
	if fixturePath == "" {
		printHelp()
		os.Exit(2)
	}

	opts := tova.DefaultOptions()
	if configPath != "" {
		o, err := tova.LoadOptions(configPath)
		if err != nil {
			fatalf("loading config: %s", err)
		}
		opts = o
	}

	prog, err := readFixture(fixturePath, astSection)
	if err != nil {
		fatalf("reading fixture: %s", err)
	}

	runner := tova.New(fixturePath, opts)
	if builtinPath != "" {
		extra, err := tova.LoadExtraBuiltins(builtinPath)
		if err != nil {
			fatalf("loading builtins: %s", err)
		}
		for name, ret := range extra {
			runner.SeedBuiltin(name, ret)
		}
	}

	result := runner.Run(prog)
	color := isatty.IsTerminal(os.Stdout.Fd())
	for _, d := range result.Warnings {
		fmt.Println(render(d, color))
	}
	for _, d := range result.Errors {
		fmt.Println(render(d, color))
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// readFixture loads fixturePath as either a plain JSON AST document or a
// txtar archive, in which case the section named by astSection (default
// "ast.json") is decoded.
func readFixture(path, astSection string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if astSection == "" {
		astSection = defaultASTSection
	}
	if bytes.HasPrefix(data, []byte("-- ")) {
		arc := txtar.Parse(data)
		for _, f := range arc.Files {
			if f.Name == astSection {
				return fixture.DecodeProgram(f.Data)
			}
		}
		return nil, fmt.Errorf("txtar archive has no section %q", astSection)
	}
	return fixture.DecodeProgram(data)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printHelp() {
	fmt.Fprintln(os.Stderr, `usage: tova-analyze [--config path] [--builtins path] [--ast-section name] <fixture>

Analyzes a JSON or txtar-encoded AST fixture and prints its diagnostics.
A txtar archive's "ast.json" section (or --ast-section) is decoded as the
program; anything else is treated as a plain JSON AST document.`)
}

func render(d *diagnostics.Diagnostic, color bool) string {
	if !color {
		return d.Error()
	}
	code := string(d.Code)
	prefix := "\x1b[33mwarning\x1b[0m"
	if d.Severity == diagnostics.SeverityError {
		prefix = "\x1b[31merror\x1b[0m"
	}
	return fmt.Sprintf("%s[%s]: %s", prefix, code, d.Error())
}

