package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tova-lang/tova/internal/diagnostics"
	"github.com/tova-lang/tova/internal/token"
)

func TestNewRootScope(t *testing.T) {
	root := New()
	assert.NotEmpty(t, root.ID)
	assert.Equal(t, ContextModule, root.Context)
	assert.True(t, root.IsBoundary())
	assert.True(t, root.AncestorChainIsAcyclic())
}

func TestNewChildGetsDistinctID(t *testing.T) {
	root := New()
	child := root.NewChild(ContextBlock)
	assert.NotEqual(t, root.ID, child.ID)
	assert.Same(t, root, child.Parent)
	assert.Contains(t, root.Children, child)
}

func TestLookupForAssignmentStopsAtFunctionBoundary(t *testing.T) {
	root := New()
	fn := root.NewChild(ContextFunction)
	block := fn.NewChild(ContextBlock)

	outer := &Symbol{Name: "x", Kind: KindVariable}
	require.Nil(t, root.Define(outer))

	// x lives in the module scope, past fn's boundary: invisible to
	// LookupForAssignment from inside the nested block.
	assert.Nil(t, block.LookupForAssignment("x"))
	assert.Same(t, outer, block.Lookup("x"))

	inner := &Symbol{Name: "y", Kind: KindVariable}
	require.Nil(t, fn.Define(inner))
	assert.Same(t, inner, block.LookupForAssignment("y"))
}

func TestExistsInOuterScopeCrossesOneBoundaryOnly(t *testing.T) {
	root := New()
	require.Nil(t, root.Define(&Symbol{Name: "shared", Kind: KindVariable}))

	fn := root.NewChild(ContextFunction)
	block := fn.NewChild(ContextBlock)

	assert.True(t, block.ExistsInOuterScope("shared"))
	assert.False(t, block.ExistsInOuterScope("nope"))

	require.Nil(t, fn.Define(&Symbol{Name: "local", Kind: KindVariable}))
	// local lives inside the same function boundary as block, so it is not
	// "outer" relative to block even though it's in an ancestor scope.
	assert.False(t, block.ExistsInOuterScope("local"))
}

func TestDefineRedefinitionError(t *testing.T) {
	root := New()
	tok := token.Token{Line: 1, Column: 1}
	require.Nil(t, root.Define(&Symbol{Name: "x", Kind: KindVariable, Declared: tok}))

	diag := root.Define(&Symbol{Name: "x", Kind: KindVariable, Declared: tok})
	require.NotNil(t, diag)
	assert.Equal(t, diagnostics.ErrRedefinition, diag.Code)
}

func TestDefineExternShadowsBuiltin(t *testing.T) {
	root := New()
	require.Nil(t, root.Define(&Symbol{Name: "len", Kind: KindBuiltin}))
	diag := root.Define(&Symbol{Name: "len", Kind: KindFunction, Function: &FunctionData{Extern: true}})
	assert.Nil(t, diag)
	assert.Equal(t, KindFunction, root.LookupLocal("len").Kind)
}

func TestNarrowedTypeStopsAtRedeclaration(t *testing.T) {
	root := New()
	require.Nil(t, root.Define(&Symbol{Name: "v", Kind: KindVariable}))
	child := root.NewChild(ContextBlock)
	child.Narrow("v", "Int")
	assert.Equal(t, "Int", child.NarrowedType("v"))

	grandchild := child.NewChild(ContextBlock)
	require.Nil(t, grandchild.Define(&Symbol{Name: "v", Kind: KindVariable}))
	assert.Equal(t, "", grandchild.NarrowedType("v"))
}

func TestWalkVisitsEveryDescendant(t *testing.T) {
	root := New()
	a := root.NewChild(ContextFunction)
	b := root.NewChild(ContextFunction)
	c := a.NewChild(ContextBlock)

	var visited []*Scope
	root.Walk(func(s *Scope) { visited = append(visited, s) })
	assert.ElementsMatch(t, []*Scope{root, a, b, c}, visited)
}

func TestIsAssignableByUser(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KindVariable, true},
		{KindParameter, true},
		{KindState, true},
		{KindFunction, false},
		{KindBuiltin, false},
		{KindType, false},
	}
	for _, c := range cases {
		sym := &Symbol{Kind: c.kind}
		assert.Equal(t, c.want, sym.IsAssignableByUser(), "kind %s", c.kind)
	}
}
