package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringEncodings(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		want string
	}{
		{"int", Int, "Int"},
		{"array", Array{Elem: String_}, "[String]"},
		{"tuple", Tuple{Elems: []Type{Int, Bool}}, "(Int, Bool)"},
		{"function", Function{Params: []Type{Int}, Return: Bool}, "(Int) -> Bool"},
		{"generic", Generic{Base: "Result", Args: []Type{Int, String_}}, "Result<Int, String>"},
		{"bare generic", Generic{Base: "Option"}, "Option"},
		{"union", Union{Members: []Type{Int, Nil}}, "Int | Nil"},
		{"variable", Variable{Name: "T"}, "T"},
		{"unknown", Unknown, "_"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.t.String())
		})
	}
}

func TestRecordStringIsSortedByFieldName(t *testing.T) {
	r := Record{Fields: map[string]Type{"b": Bool, "a": Int}}
	assert.Equal(t, "{a: Int, b: Bool}", r.String())
}

func TestOptionAndResultHelpers(t *testing.T) {
	opt := Option(Int)
	inner, ok := IsOption(opt)
	assert.True(t, ok)
	assert.Equal(t, Int, inner)

	res := Result(Int, String_)
	ok1, err1, isRes := IsResult(res)
	assert.True(t, isRes)
	assert.Equal(t, Int, ok1)
	assert.Equal(t, String_, err1)

	_, notOpt := IsOption(Int)
	assert.False(t, notOpt)
}

func TestFromStringRoundTripsPrimitives(t *testing.T) {
	for _, s := range []string{"Int", "Float", "String", "Bool", "Any", "Nil", "_"} {
		got := FromString(s)
		if s == "_" {
			assert.Equal(t, Unknown, got)
			continue
		}
		assert.Equal(t, s, got.String())
	}
}

func TestFromStringParsesCompoundShapes(t *testing.T) {
	assert.Equal(t, "[Int]", FromString("[Int]").String())
	assert.Equal(t, "Result<Int, String>", FromString("Result<Int, String>").String())
	assert.Equal(t, "Int | Nil", FromString("Int | Nil").String())

	tup := FromString("(Int, Bool)")
	asTuple, ok := tup.(Tuple)
	if assert.True(t, ok) {
		assert.Len(t, asTuple.Elems, 2)
	}
}

func TestFromStringNestedGenericArgs(t *testing.T) {
	got := FromString("Result<[Int], Option<String>>")
	g, ok := got.(Generic)
	if assert.True(t, ok) {
		assert.Equal(t, "Result", g.Base)
		assert.Len(t, g.Args, 2)
		assert.Equal(t, "[Int]", g.Args[0].String())
		assert.Equal(t, "Option<String>", g.Args[1].String())
	}
}

func TestADTVariantOrderIsSorted(t *testing.T) {
	adt := ADT{Name: "Shape", Variants: map[string]map[string]Type{
		"Square": {}, "Circle": {}, "Triangle": {},
	}}
	assert.Equal(t, []string{"Circle", "Square", "Triangle"}, adt.VariantOrder())
}
