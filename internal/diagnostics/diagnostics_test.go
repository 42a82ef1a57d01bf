package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tova-lang/tova/internal/token"
)

func TestMessageFormatsArgs(t *testing.T) {
	d := NewError(ErrUndefinedIdentifier, token.Token{Line: 3, Column: 5}, "foo")
	assert.Equal(t, `undefined identifier "foo"`, d.Message())
}

func TestMessageUnknownCode(t *testing.T) {
	d := &Diagnostic{Code: Code("Z999")}
	assert.Contains(t, d.Message(), "unknown diagnostic code")
}

func TestErrorRendersLocationAndCode(t *testing.T) {
	d := NewWarning(WarnUnusedVariable, token.Token{Line: 2, Column: 7}, "x")
	d.WithFile("main.tova")
	assert.Equal(t, `main.tova:2:7 — unused variable "x" [W001]`, d.Error())
}

func TestErrorWithoutFile(t *testing.T) {
	d := NewWarning(WarnUnusedVariable, token.Token{Line: 1, Column: 1}, "x")
	assert.Equal(t, `1:1 — unused variable "x" [W001]`, d.Error())
}

func TestWithFileOnlySetsOnce(t *testing.T) {
	d := NewError(ErrUndefinedIdentifier, token.Token{}, "x")
	d.WithFile("a.tova")
	d.WithFile("b.tova")
	assert.Equal(t, "a.tova", d.File)
}

func TestWithHintAndFix(t *testing.T) {
	d := NewWarning(WarnUnusedVariable, token.Token{}, "x").
		WithHint("prefix with _ to suppress").
		WithFix("rename to _x", "_x")
	assert.Equal(t, "prefix with _ to suppress", d.Hint)
	assert.Equal(t, "rename to _x", d.Fix.Description)
	assert.Equal(t, "_x", d.Fix.Replacement)
}

func TestLessOrdersByLocationThenCode(t *testing.T) {
	early := NewError(ErrUndefinedIdentifier, token.Token{Line: 1, Column: 1}, "x")
	late := NewError(ErrUndefinedIdentifier, token.Token{Line: 2, Column: 1}, "x")
	assert.True(t, Less(early, late))
	assert.False(t, Less(late, early))

	sameLoc1 := NewError(ErrUndefinedIdentifier, token.Token{Line: 1, Column: 1})
	sameLoc2 := NewError(ErrImmutableReassignment, token.Token{Line: 1, Column: 1})
	assert.True(t, Less(sameLoc1, sameLoc2), "E200 sorts before E202")
}

func TestEveryCodeHasAMessage(t *testing.T) {
	codes := []Code{
		ErrReturnTypeMismatch, ErrAssignmentTypeMismatch, ErrAliasCycle,
		ErrUndefinedIdentifier, ErrUndefinedBlockFunction, ErrImmutableReassignment,
		ErrRedefinition, ErrAwaitOutsideAsync, ErrReturnOutsideFunction,
		ErrClientOutsideClient, ErrServerOutsideServer, ErrBreakOutsideLoop,
		ErrArgumentCount, ErrArgumentType, ErrDataOutsideData, ErrInternal,
		WarnUnusedVariable, WarnUnusedFunction, WarnNamingConvention, WarnShadow,
		WarnNonExhaustiveMatch, WarnUnreachableCode, WarnConstantCondition,
		WarnConstantConditionElse, WarnIntFromFloatNarrowing, WarnNotAllPathsReturn,
		WarnThrowKeyword, WarnUnreachableAfterCatch, WarnDeferOutsideFunction,
		WarnArgumentCount, WarnArgumentType, WarnSelfCallViaRPC,
		WarnTraitMethodMissing, WarnTraitMethodArity, WarnTraitMethodReturn,
		WarnUnknownDerive, WarnRouteBodyUnannotated,
	}
	for _, c := range codes {
		_, ok := messages[c]
		assert.True(t, ok, "code %s has no message template", c)
	}
}
