package tova

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tova-lang/tova/internal/fixture"
)

func TestRunnerAnalyzesDecodedFixtureAndSeedsBuiltins(t *testing.T) {
	src := `{
		"file": "main.tova",
		"statements": [{
			"type": "VarDeclaration",
			"token": {"Line": 1, "Column": 1},
			"name": "result",
			"mutable": false,
			"value": {
				"type": "CallExpression",
				"token": {"Line": 1, "Column": 1},
				"callee": {"type": "Identifier", "value": "fetchUser"},
				"arguments": []
			}
		}]
	}`
	prog, err := fixture.DecodeProgram([]byte(src))
	require.NoError(t, err)

	runner := New("main.tova", DefaultOptions())
	runner.SeedBuiltin("fetchUser", "String")
	result := runner.Run(prog)

	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.ID)
	assert.NotNil(t, result.Scope)
	assert.NotNil(t, result.Registry)
}

func TestAnalyzeRejectsUndefinedIdentifier(t *testing.T) {
	src := `{"statements": [{
		"type": "ExpressionStatement",
		"expression": {"type": "Identifier", "value": "nowhere"}
	}]}`
	prog, err := fixture.DecodeProgram([]byte(src))
	require.NoError(t, err)

	result := Analyze(prog, "main.tova", DefaultOptions())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E200", string(result.Errors[0].Code))
}
