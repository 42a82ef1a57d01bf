package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tova-lang/tova/internal/typesystem"
)

func TestDefineTypeAndADTVariants(t *testing.T) {
	r := New()
	adt := typesystem.ADT{Name: "Shape", Variants: map[string]map[string]typesystem.Type{
		"Circle": {"radius": typesystem.Float},
		"Square": {"side": typesystem.Float},
	}}
	r.DefineType("Shape", adt)
	assert.Equal(t, []string{"Circle", "Square"}, ADTVariants(r, "Shape"))
	assert.Nil(t, ADTVariants(r, "Nonexistent"))
}

func TestAddImplAndHasMethod(t *testing.T) {
	r := New()
	sig := MethodSignature{Name: "area", ParamCount: 0, Return: typesystem.Float}
	r.AddImpl("Shape", sig)
	got, ok := r.HasMethod("Shape", "area")
	assert.True(t, ok)
	assert.Equal(t, sig, got)

	_, ok = r.HasMethod("Shape", "perimeter")
	assert.False(t, ok)
}

func TestDefineTrait(t *testing.T) {
	r := New()
	sigs := []MethodSignature{{Name: "area", Return: typesystem.Float}}
	r.DefineTrait("Measurable", sigs)
	assert.Equal(t, sigs, r.Traits["Measurable"])
}

func TestCandidatesCoveringVariantsUniqueMatch(t *testing.T) {
	r := New()
	r.DefineType("Shape", typesystem.ADT{Name: "Shape", Variants: map[string]map[string]typesystem.Type{
		"Circle": {}, "Square": {},
	}})
	r.DefineType("Color", typesystem.ADT{Name: "Color", Variants: map[string]map[string]typesystem.Type{
		"Red": {}, "Blue": {},
	}})
	candidates := r.CandidatesCoveringVariants(map[string]bool{"Circle": true})
	assert.Equal(t, []string{"Shape"}, candidates)
}

func TestCandidatesCoveringVariantsAmbiguous(t *testing.T) {
	r := New()
	r.DefineType("Shape", typesystem.ADT{Name: "Shape", Variants: map[string]map[string]typesystem.Type{
		"A": {}, "B": {},
	}})
	r.DefineType("Other", typesystem.ADT{Name: "Other", Variants: map[string]map[string]typesystem.Type{
		"A": {}, "B": {}, "C": {},
	}})
	candidates := r.CandidatesCoveringVariants(map[string]bool{"A": true, "B": true})
	assert.ElementsMatch(t, []string{"Shape", "Other"}, candidates)
}
