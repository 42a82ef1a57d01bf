package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibleExactMatch(t *testing.T) {
	assert.True(t, Compatible(Int, Int, Mode{}))
	assert.False(t, Compatible(Int, String_, Mode{}))
}

func TestCompatibleFloatWideningAndIntNarrowing(t *testing.T) {
	assert.True(t, Compatible(Float, Int, Mode{}), "Int widens to Float")
	assert.True(t, Compatible(Int, Float, Mode{Strict: false}), "Float narrows to Int non-strictly")
	assert.False(t, Compatible(Int, Float, Mode{Strict: true}), "strict mode rejects Float->Int narrowing")
}

func TestCompatibleNilIntoOptionOrUnion(t *testing.T) {
	assert.True(t, Compatible(Option(Int), Nil, Mode{}))
	assert.True(t, Compatible(Union{Members: []Type{Int, Nil}}, Nil, Mode{}))
	assert.False(t, Compatible(Int, Nil, Mode{}))
}

func TestCompatibleUnionExpected(t *testing.T) {
	u := Union{Members: []Type{Int, String_}}
	assert.True(t, Compatible(u, Int, Mode{}))
	assert.True(t, Compatible(u, String_, Mode{}))
	assert.False(t, Compatible(u, Bool, Mode{}))
}

func TestCompatibleUnionActualRequiresEveryMember(t *testing.T) {
	actual := Union{Members: []Type{Int, Float}}
	assert.True(t, Compatible(Float, actual, Mode{}), "Int and Float both widen to Float")
	assert.False(t, Compatible(Bool, actual, Mode{}))
}

func TestCompatibleArraysAndTuples(t *testing.T) {
	assert.True(t, Compatible(Array{Elem: Float}, Array{Elem: Int}, Mode{}))
	assert.False(t, Compatible(Array{Elem: Int}, Array{Elem: String_}, Mode{}))

	assert.True(t, Compatible(Tuple{Elems: []Type{Int, Bool}}, Tuple{Elems: []Type{Int, Bool}}, Mode{}))
	assert.False(t, Compatible(Tuple{Elems: []Type{Int}}, Tuple{Elems: []Type{Int, Bool}}, Mode{}))
}

func TestCompatibleGenericsGradual(t *testing.T) {
	assert.True(t, Compatible(Generic{Base: "Box"}, Generic{Base: "Box", Args: []Type{Int}}, Mode{}), "uninstantiated expected is gradual")
	assert.False(t, Compatible(Generic{Base: "Box", Args: []Type{Int}}, Generic{Base: "Jar", Args: []Type{Int}}, Mode{}))
	assert.True(t, Compatible(Generic{Base: "Box", Args: []Type{Int}}, Generic{Base: "Box", Args: []Type{Int}}, Mode{}))
}

func TestCompatibleTopTypes(t *testing.T) {
	assert.True(t, Compatible(Any, Int, Mode{}))
	assert.True(t, Compatible(Int, Unknown, Mode{}))
	assert.True(t, Compatible(nil, Int, Mode{}))
}

func TestIsNarrowingFloatToInt(t *testing.T) {
	assert.True(t, IsNarrowingFloatToInt(Int, Float))
	assert.False(t, IsNarrowingFloatToInt(Float, Int))
	assert.False(t, IsNarrowingFloatToInt(Int, Int))
}
