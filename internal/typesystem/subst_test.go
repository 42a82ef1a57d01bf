package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindTypeParamsFromBareVariable(t *testing.T) {
	s := Subst{}
	BindTypeParams([]string{"T"}, Variable{Name: "T"}, Int, s)
	assert.Equal(t, Int, s["T"])
}

func TestBindTypeParamsFirstBindingWins(t *testing.T) {
	s := Subst{"T": String_}
	BindTypeParams([]string{"T"}, Variable{Name: "T"}, Int, s)
	assert.Equal(t, String_, s["T"], "already-bound parameter is not overwritten")
}

func TestBindTypeParamsThroughArrayAndGeneric(t *testing.T) {
	s := Subst{}
	BindTypeParams([]string{"T"}, Array{Elem: Variable{Name: "T"}}, Array{Elem: Bool}, s)
	assert.Equal(t, Bool, s["T"])

	s2 := Subst{}
	BindTypeParams([]string{"T", "E"},
		Generic{Base: "Result", Args: []Type{Variable{Name: "T"}, Variable{Name: "E"}}},
		Generic{Base: "Result", Args: []Type{Int, String_}},
		s2)
	assert.Equal(t, Int, s2["T"])
	assert.Equal(t, String_, s2["E"])
}

func TestApplySubstitutesBoundParams(t *testing.T) {
	s := Subst{"T": Int}
	got := Apply(Array{Elem: Variable{Name: "T"}}, s)
	assert.Equal(t, "[Int]", got.String())
}

func TestApplyUnboundVariableBecomesUnknown(t *testing.T) {
	got := Apply(Variable{Name: "U"}, Subst{})
	assert.Equal(t, Unknown, got)
}

func TestApplyIdempotent(t *testing.T) {
	s := Subst{"T": Int}
	assert.True(t, ApplyIdempotent(Generic{Base: "Option", Args: []Type{Variable{Name: "T"}}}, s))
}
