package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tova-lang/tova/internal/ast"
)

func TestDecodeProgramLiteralsAndBinary(t *testing.T) {
	src := `{
		"file": "main.tova",
		"statements": [
			{
				"type": "VarDeclaration",
				"token": {"Line": 1, "Column": 1},
				"name": "total",
				"mutable": false,
				"value": {
					"type": "BinaryExpression",
					"token": {"Line": 1, "Column": 12},
					"operator": "+",
					"left": {"type": "IntegerLiteral", "token": {"Line": 1, "Column": 12}, "value": 1},
					"right": {"type": "IntegerLiteral", "token": {"Line": 1, "Column": 16}, "value": 2}
				}
			}
		]
	}`
	prog, err := DecodeProgram([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "main.tova", prog.File)
	require.Len(t, prog.Statements, 1)

	decl, ok := prog.Statements[0].(*ast.VarDeclaration)
	require.True(t, ok)
	assert.Equal(t, "total", decl.Name)
	assert.False(t, decl.Mutable)

	bin, ok := decl.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
	assert.Equal(t, int64(1), bin.Left.(*ast.IntegerLiteral).Value)
	assert.Equal(t, int64(2), bin.Right.(*ast.IntegerLiteral).Value)
}

func TestDecodeFunctionDeclarationWithParamsAndReturn(t *testing.T) {
	src := `{
		"file": "f.tova",
		"statements": [{
			"type": "FunctionDeclaration",
			"token": {"Line": 1, "Column": 1},
			"name": "add",
			"params": [
				{"token": {"Line": 1, "Column": 1}, "name": "a", "typeAnnotation": {"type": "NamedTypeExpr", "name": "Int"}},
				{"token": {"Line": 1, "Column": 1}, "name": "b", "typeAnnotation": {"type": "NamedTypeExpr", "name": "Int"}}
			],
			"returnType": {"type": "NamedTypeExpr", "name": "Int"},
			"body": {
				"type": "BlockStatement",
				"statements": [{
					"type": "ReturnStatement",
					"value": {
						"type": "BinaryExpression",
						"operator": "+",
						"left": {"type": "Identifier", "value": "a"},
						"right": {"type": "Identifier", "value": "b"}
					}
				}]
			}
		}]
	}`
	prog, err := DecodeProgram([]byte(src))
	require.NoError(t, err)
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.NotNil(t, fn.ReturnType)
	require.Len(t, fn.Body.Statements, 1)
	_, isReturn := fn.Body.Statements[0].(*ast.ReturnStatement)
	assert.True(t, isReturn)
}

func TestDecodeMatchExpressionWithVariantPattern(t *testing.T) {
	src := `{
		"statements": [{
			"type": "ExpressionStatement",
			"expression": {
				"type": "MatchExpression",
				"subject": {"type": "Identifier", "value": "shape"},
				"arms": [
					{
						"pattern": {"type": "VariantPattern", "typeName": "Shape", "variantName": "Circle",
							"fields": {"radius": {"type": "BindingPattern", "name": "r"}}},
						"body": {"type": "Identifier", "value": "r"}
					},
					{
						"pattern": {"type": "WildcardPattern"},
						"body": {"type": "IntegerLiteral", "value": 0}
					}
				]
			}
		}]
	}`
	prog, err := DecodeProgram([]byte(src))
	require.NoError(t, err)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	match := stmt.Expression.(*ast.MatchExpression)
	require.Len(t, match.Arms, 2)
	vp := match.Arms[0].Pattern.(*ast.VariantPattern)
	assert.Equal(t, "Circle", vp.VariantName)
	assert.Contains(t, vp.Fields, "radius")
	_, isWildcard := match.Arms[1].Pattern.(*ast.WildcardPattern)
	assert.True(t, isWildcard)
}

func TestDecodeBlockFormAndPluginDeclaration(t *testing.T) {
	src := `{
		"statements": [{
			"type": "BlockForm",
			"kind": "server",
			"name": "Api",
			"statements": [{
				"type": "PluginDeclaration",
				"kind": "route",
				"name": "listUsers",
				"method": "GET",
				"path": "/users",
				"params": [],
				"body": {"type": "BlockStatement", "statements": []}
			}]
		}]
	}`
	prog, err := DecodeProgram([]byte(src))
	require.NoError(t, err)
	block := prog.Statements[0].(*ast.BlockForm)
	assert.Equal(t, ast.BlockServer, block.Kind)
	assert.Equal(t, "Api", block.Name)
	plugin := block.Statements[0].(*ast.PluginDeclaration)
	assert.Equal(t, ast.PluginRoute, plugin.Kind)
	assert.Equal(t, "GET", plugin.Method)
}

func TestDecodeProgramRejectsUnknownType(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"statements": [{"type": "NotARealNode"}]}`))
	assert.Error(t, err)
}

func TestDecodeProgramRejectsWrongNodeCategory(t *testing.T) {
	// An Identifier is not a Statement; decoding it at top level must fail
	// rather than silently producing a nil interface entry.
	_, err := DecodeProgram([]byte(`{"statements": [{"type": "Identifier", "value": "x"}]}`))
	assert.Error(t, err)
}
