package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/config"
	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/token"
	"github.com/tova-lang/tova/internal/typesystem"
)

func tok() token.Token { return token.Token{Line: 1, Column: 1} }

func hasCode(ds []*diagnostics.Diagnostic, code diagnostics.Code) bool {
	for _, d := range ds {
		if d.Code == code {
			return true
		}
	}
	return false
}

// x (bound without var) = 2 must raise E202.
func TestImmutableReassignmentIsAnError(t *testing.T) {
	prog := &ast.Program{
		File: "t.tova",
		Statements: []ast.Statement{
			&ast.VarDeclaration{Token: tok(), Name: "x", Mutable: false, Value: &ast.IntegerLiteral{Token: tok(), Value: 1}},
			&ast.Assignment{Token: tok(), Target: &ast.Identifier{Token: tok(), Value: "x"}, Value: &ast.IntegerLiteral{Token: tok(), Value: 2}},
		},
	}
	result := Analyze(prog, "t.tova", config.Default())
	assert.True(t, hasCode(result.Errors, diagnostics.ErrImmutableReassignment))
}

// var x = 1; x = 2 must not raise E202.
func TestMutableReassignmentIsFine(t *testing.T) {
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.VarDeclaration{Token: tok(), Name: "x", Mutable: true, Value: &ast.IntegerLiteral{Token: tok(), Value: 1}},
			&ast.Assignment{Token: tok(), Target: &ast.Identifier{Token: tok(), Value: "x"}, Value: &ast.IntegerLiteral{Token: tok(), Value: 2}},
		},
	}
	result := Analyze(prog, "t.tova", config.Default())
	assert.False(t, hasCode(result.Errors, diagnostics.ErrImmutableReassignment))
}

// fn f(): Int { if cond { return 1 } } has no else, so not all paths return.
func TestNotAllPathsReturnWarnsWhenIfHasNoElse(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Token:      tok(),
		Name:       "f",
		ReturnType: &ast.NamedTypeExpr{Name: "Int"},
		Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.IfStatement{
				Token:     tok(),
				Condition: &ast.Identifier{Token: tok(), Value: "cond"},
				Consequent: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.ReturnStatement{Token: tok(), Value: &ast.IntegerLiteral{Token: tok(), Value: 1}},
				}},
			},
		}},
	}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VarDeclaration{Token: tok(), Name: "cond", Mutable: false, Value: &ast.BooleanLiteral{Token: tok(), Value: true}},
		fn,
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.True(t, hasCode(result.Warnings, diagnostics.WarnNotAllPathsReturn))
}

// fn f(): Int { if cond { return 1 } else { return 2 } } returns on every path.
func TestAllPathsReturnWhenIfHasElse(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Token:      tok(),
		Name:       "f",
		ReturnType: &ast.NamedTypeExpr{Name: "Int"},
		Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.IfStatement{
				Token:     tok(),
				Condition: &ast.Identifier{Token: tok(), Value: "cond"},
				Consequent: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.ReturnStatement{Token: tok(), Value: &ast.IntegerLiteral{Token: tok(), Value: 1}},
				}},
				Alternate: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.ReturnStatement{Token: tok(), Value: &ast.IntegerLiteral{Token: tok(), Value: 2}},
				}},
			},
		}},
	}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VarDeclaration{Token: tok(), Name: "cond", Mutable: false, Value: &ast.BooleanLiteral{Token: tok(), Value: true}},
		fn,
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.False(t, hasCode(result.Warnings, diagnostics.WarnNotAllPathsReturn))
}

// match over an ADT missing a variant arm warns W200; adding a wildcard
// or the missing variant silences it.
func shapeType() *ast.TypeDeclaration {
	return &ast.TypeDeclaration{
		Token: tok(),
		Name:  "Shape",
		Variants: []ast.VariantDef{
			{Name: "Circle", Fields: map[string]ast.TypeExpr{"radius": &ast.NamedTypeExpr{Name: "Float"}}, Order: []string{"radius"}},
			{Name: "Square", Fields: map[string]ast.TypeExpr{"side": &ast.NamedTypeExpr{Name: "Float"}}, Order: []string{"side"}},
		},
	}
}

func TestNonExhaustiveMatchWarns(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		shapeType(),
		&ast.VarDeclaration{Token: tok(), Name: "s", Mutable: false, Value: &ast.IntegerLiteral{Token: tok(), Value: 0}},
		&ast.ExpressionStatement{Token: tok(), Expression: &ast.MatchExpression{
			Token:   tok(),
			Subject: &ast.Identifier{Token: tok(), Value: "s"},
			Arms: []ast.MatchArm{
				{Pattern: &ast.VariantPattern{Token: tok(), TypeName: "Shape", VariantName: "Circle"}, Body: &ast.IntegerLiteral{Token: tok(), Value: 1}},
			},
		}},
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.True(t, hasCode(result.Warnings, diagnostics.WarnNonExhaustiveMatch))
}

func TestExhaustiveMatchWithWildcardDoesNotWarn(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		shapeType(),
		&ast.VarDeclaration{Token: tok(), Name: "s", Mutable: false, Value: &ast.IntegerLiteral{Token: tok(), Value: 0}},
		&ast.ExpressionStatement{Token: tok(), Expression: &ast.MatchExpression{
			Token:   tok(),
			Subject: &ast.Identifier{Token: tok(), Value: "s"},
			Arms: []ast.MatchArm{
				{Pattern: &ast.VariantPattern{Token: tok(), TypeName: "Shape", VariantName: "Circle"}, Body: &ast.IntegerLiteral{Token: tok(), Value: 1}},
				{Pattern: &ast.WildcardPattern{Token: tok()}, Body: &ast.IntegerLiteral{Token: tok(), Value: 0}},
			},
		}},
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.False(t, hasCode(result.Warnings, diagnostics.WarnNonExhaustiveMatch))
}

// await outside an async function is E300; the same await inside an
// async function raises nothing.
func TestAwaitOutsideAsyncIsAnError(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Token: tok(),
		Name:  "f",
		Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.ExpressionStatement{Token: tok(), Expression: &ast.AwaitExpression{
				Token:   tok(),
				Operand: &ast.CallExpression{Token: tok(), Callee: &ast.Identifier{Token: tok(), Value: "fetch"}},
			}},
		}},
	}
	prog := &ast.Program{Statements: []ast.Statement{fn}}
	opts := config.Default()
	a := New("t.tova", opts)
	a.defineBuiltinFunc("fetch", typesystem.Unknown)
	result := a.Run(prog)
	assert.True(t, hasCode(result.Errors, diagnostics.ErrAwaitOutsideAsync))
}

func TestAwaitInsideAsyncFunctionIsFine(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Token:   tok(),
		Name:    "f",
		IsAsync: true,
		Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.ExpressionStatement{Token: tok(), Expression: &ast.AwaitExpression{
				Token:   tok(),
				Operand: &ast.CallExpression{Token: tok(), Callee: &ast.Identifier{Token: tok(), Value: "fetch"}},
			}},
		}},
	}
	prog := &ast.Program{Statements: []ast.Statement{fn}}
	opts := config.Default()
	a := New("t.tova", opts)
	a.defineBuiltinFunc("fetch", typesystem.Unknown)
	result := a.Run(prog)
	assert.False(t, hasCode(result.Errors, diagnostics.ErrAwaitOutsideAsync))
}

// `state` is client-only; declaring it at module scope raises E302, and
// inside a client block it's fine.
func TestClientOnlyStateOutsideClientBlockIsAnError(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.PluginDeclaration{Token: tok(), Kind: ast.PluginState, Name: "count", Init: &ast.IntegerLiteral{Token: tok(), Value: 0}},
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.True(t, hasCode(result.Errors, diagnostics.ErrClientOutsideClient))
}

func TestClientOnlyStateInsideClientBlockIsFine(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.BlockForm{Token: tok(), Kind: ast.BlockClient, Name: "App", Statements: []ast.Statement{
			&ast.PluginDeclaration{Token: tok(), Kind: ast.PluginState, Name: "count", Init: &ast.IntegerLiteral{Token: tok(), Value: 0}},
		}},
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.False(t, hasCode(result.Errors, diagnostics.ErrClientOutsideClient))
}

// xs |> filter(pred) |> parseOne infers through the user function's
// declared Result<Int, String> return type.
func TestPipeChainInfersThroughUserFunctionReturnType(t *testing.T) {
	parseOne := &ast.FunctionDeclaration{
		Token:      tok(),
		Name:       "parseOne",
		ReturnType: &ast.GenericTypeExpr{Token: tok(), Base: "Result", Args: []ast.TypeExpr{&ast.NamedTypeExpr{Name: "Int"}, &ast.NamedTypeExpr{Name: "String"}}},
		Params:     []ast.Param{{Token: tok(), Name: "xs", TypeAnnotation: &ast.ArrayTypeExpr{Token: tok(), Elem: &ast.NamedTypeExpr{Name: "Int"}}}},
		Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.ReturnStatement{Token: tok(), Value: &ast.CallExpression{Token: tok(), Callee: &ast.Identifier{Token: tok(), Value: "parseOne"}, Arguments: []ast.Expression{&ast.Identifier{Token: tok(), Value: "xs"}}}},
		}},
	}
	predLambda := &ast.Lambda{
		Token:  tok(),
		Params: []ast.Param{{Token: tok(), Name: "n"}},
		Body:   &ast.BinaryExpression{Token: tok(), Operator: ">", Left: &ast.Identifier{Token: tok(), Value: "n"}, Right: &ast.IntegerLiteral{Token: tok(), Value: 0}},
	}
	pipeExpr := &ast.PipeExpression{
		Token: tok(),
		Left: &ast.PipeExpression{
			Token: tok(),
			Left:  &ast.ArrayLiteral{Token: tok(), Elements: []ast.Expression{&ast.IntegerLiteral{Token: tok(), Value: 1}}},
			Right: &ast.CallExpression{Token: tok(), Callee: &ast.Identifier{Token: tok(), Value: "filter"}, Arguments: []ast.Expression{predLambda}},
		},
		Right: &ast.CallExpression{Token: tok(), Callee: &ast.Identifier{Token: tok(), Value: "parseOne"}},
	}
	result := &ast.VarDeclaration{Token: tok(), Name: "out", Mutable: false, Value: pipeExpr}
	prog := &ast.Program{Statements: []ast.Statement{parseOne, result}}

	a := New("t.tova", config.Default())
	res := a.Run(prog)
	require.Empty(t, res.Errors)
	sym := a.root.LookupLocal("out")
	require.NotNil(t, sym)
	assert.Equal(t, "Result<Int, String>", sym.InferredType)
}

// f(a, b) requires 2 positional params; calling it with one positional
// argument plus named arguments counts the named-arg bundle as a single
// additional positional object argument (spec.md §4.7), so the call is
// arity-complete and must not warn.
func TestNamedArgsCountAsOneAdditionalPositionalArgument(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Token: tok(),
		Name:  "f",
		Params: []ast.Param{
			{Token: tok(), Name: "a"},
			{Token: tok(), Name: "b"},
		},
		Body: &ast.BlockStatement{},
	}
	call := &ast.CallExpression{
		Token:     tok(),
		Callee:    &ast.Identifier{Token: tok(), Value: "f"},
		Arguments: []ast.Expression{&ast.IntegerLiteral{Token: tok(), Value: 1}},
		NamedArgs: []ast.NamedArgument{{Name: "b", Value: &ast.IntegerLiteral{Token: tok(), Value: 2}}},
	}
	prog := &ast.Program{Statements: []ast.Statement{
		fn,
		&ast.ExpressionStatement{Token: tok(), Expression: call},
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.False(t, hasCode(result.Warnings, diagnostics.WarnArgumentCount))
}

// Without the named argument, the same call is missing one required
// parameter and must warn.
func TestMissingPositionalArgumentWarns(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Token: tok(),
		Name:  "f",
		Params: []ast.Param{
			{Token: tok(), Name: "a"},
			{Token: tok(), Name: "b"},
		},
		Body: &ast.BlockStatement{},
	}
	call := &ast.CallExpression{
		Token:     tok(),
		Callee:    &ast.Identifier{Token: tok(), Value: "f"},
		Arguments: []ast.Expression{&ast.IntegerLiteral{Token: tok(), Value: 1}},
	}
	prog := &ast.Program{Statements: []ast.Statement{
		fn,
		&ast.ExpressionStatement{Token: tok(), Expression: call},
	}}
	result := Analyze(prog, "t.tova", config.Default())
	assert.True(t, hasCode(result.Warnings, diagnostics.WarnArgumentCount))
}

// Circle{radius} and a two-field Rect{w, h} variant: positional pattern
// binding must bind each name to the field at its declared position, not
// an arbitrary map-iteration pick, and must do so the same way every run.
func TestVariantPositionalPatternBindsByDeclaredFieldOrder(t *testing.T) {
	shape := &ast.TypeDeclaration{
		Token: tok(),
		Name:  "Shape",
		Variants: []ast.VariantDef{
			{Name: "Rect", Fields: map[string]ast.TypeExpr{
				"w": &ast.NamedTypeExpr{Name: "Int"},
				"h": &ast.NamedTypeExpr{Name: "String"},
			}, Order: []string{"w", "h"}},
		},
	}
	fn := &ast.FunctionDeclaration{
		Token: tok(),
		Name:  "describe",
		Params: []ast.Param{
			{Token: tok(), Name: "s", TypeAnnotation: &ast.NamedTypeExpr{Name: "Shape"}},
		},
		Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.ExpressionStatement{Token: tok(), Expression: &ast.MatchExpression{
				Token:   tok(),
				Subject: &ast.Identifier{Token: tok(), Value: "s"},
				Arms: []ast.MatchArm{
					{
						Pattern: &ast.VariantPattern{
							Token: tok(), TypeName: "Shape", VariantName: "Rect",
							Positional: []ast.Pattern{
								&ast.BindingPattern{Token: tok(), Name: "width"},
								&ast.BindingPattern{Token: tok(), Name: "height"},
							},
						},
						Body: &ast.BinaryExpression{Token: tok(), Operator: "+", Left: &ast.Identifier{Token: tok(), Value: "height"}, Right: &ast.StringLiteral{Token: tok(), Value: "cm"}},
					},
					{Pattern: &ast.WildcardPattern{Token: tok()}, Body: &ast.StringLiteral{Token: tok(), Value: ""}},
				},
			}},
		}},
	}
	prog := &ast.Program{Statements: []ast.Statement{shape, fn}}
	result := Analyze(prog, "t.tova", config.Default())
	// `height` is bound to the second field (String); using it with `+`
	// against a string literal must type-check with no diagnostics. If
	// positional binding instead picked `w`'s Int type (or picked
	// arbitrarily), this would intermittently/always mismatch.
	assert.Empty(t, result.Errors)
}

// An empty array literal infers as [Any], not [Unknown] (spec.md §4.2).
func TestEmptyArrayLiteralInfersAsAny(t *testing.T) {
	decl := &ast.VarDeclaration{Token: tok(), Name: "xs", Mutable: false, Value: &ast.ArrayLiteral{Token: tok()}}
	prog := &ast.Program{Statements: []ast.Statement{decl}}
	a := New("t.tova", config.Default())
	res := a.Run(prog)
	require.Empty(t, res.Errors)
	sym := a.root.LookupLocal("xs")
	require.NotNil(t, sym)
	assert.Equal(t, "[Any]", sym.InferredType)
}

// "a" + "b" (arithmetic `+`, not `++`) infers String per spec.md §4.2's
// "else if either is String then String" branch.
func TestStringPlusStringInfersString(t *testing.T) {
	decl := &ast.VarDeclaration{
		Token: tok(), Name: "s", Mutable: false,
		Value: &ast.BinaryExpression{
			Token: tok(), Operator: "+",
			Left:  &ast.StringLiteral{Token: tok(), Value: "a"},
			Right: &ast.StringLiteral{Token: tok(), Value: "b"},
		},
	}
	prog := &ast.Program{Statements: []ast.Statement{decl}}
	a := New("t.tova", config.Default())
	res := a.Run(prog)
	require.Empty(t, res.Errors)
	sym := a.root.LookupLocal("s")
	require.NotNil(t, sym)
	assert.Equal(t, "String", sym.InferredType)
}
