package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAliasFollowsChain(t *testing.T) {
	table := map[string]Type{
		"UserId": Generic{Base: "Int"},
	}
	resolve := func(name string) (Type, bool) {
		t, ok := table[name]
		return t, ok
	}
	resolved, order, err := ResolveAlias("UserId", resolve)
	require.NoError(t, err)
	assert.Equal(t, []string{"UserId", "Int"}, order)
	assert.Equal(t, Generic{Base: "Int"}, resolved)
}

func TestResolveAliasStopsAtInstantiatedGeneric(t *testing.T) {
	table := map[string]Type{
		"Ids": Generic{Base: "Array", Args: []Type{Int}},
	}
	resolve := func(name string) (Type, bool) { t, ok := table[name]; return t, ok }
	resolved, _, err := ResolveAlias("Ids", resolve)
	require.NoError(t, err)
	assert.Equal(t, "Array<Int>", resolved.String())
}

func TestResolveAliasDetectsCycle(t *testing.T) {
	table := map[string]Type{
		"A": Generic{Base: "B"},
		"B": Generic{Base: "A"},
	}
	resolve := func(name string) (Type, bool) { t, ok := table[name]; return t, ok }
	_, order, err := ResolveAlias("A", resolve)
	assert.Error(t, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestResolveAliasUnknownNameIsTerminal(t *testing.T) {
	resolve := func(name string) (Type, bool) { return nil, false }
	resolved, order, err := ResolveAlias("Foo", resolve)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo"}, order)
	assert.Equal(t, Generic{Base: "Foo"}, resolved)
}
