package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrimitive(t *testing.T) {
	for _, name := range []string{
		"bool", "bytes", "double", "float",
		"fixed32", "fixed64", "int32", "int64",
		"sfixed32", "sfixed64", "sint32", "sint64",
		"string", "uint32", "uint64",
	} {
		assert.True(t, IsPrimitive(name), name)
	}
	assert.False(t, IsPrimitive("Person"))
	assert.False(t, IsPrimitive("wire.Person"))
	assert.False(t, IsPrimitive(""))
}

func TestResolveTypePrimitivesAreReturned(t *testing.T) {
	allTypes := map[string]bool{}
	for _, primitive := range []string{"bool", "int64", "string"} {
		resolved, err := ResolveType(allTypes, "foo.Bar", primitive)
		require.NoError(t, err)
		assert.Equal(t, primitive, resolved)
	}
}

func TestResolveTypeSeenFullyQualifiedTypeIsReturned(t *testing.T) {
	allTypes := map[string]bool{"foo.Bar": true}
	resolved, err := ResolveType(allTypes, "ping.pong", "foo.Bar")
	require.NoError(t, err)
	assert.Equal(t, "foo.Bar", resolved)
}

func TestResolveTypeChecksParentScopes(t *testing.T) {
	allTypes := map[string]bool{"foo.Bar": true}
	resolved, err := ResolveType(allTypes, "foo.Bar.Ping.Pong", "Bar")
	require.NoError(t, err)
	assert.Equal(t, "foo.Bar", resolved)
}

func TestResolveTypeInnermostScopeWins(t *testing.T) {
	allTypes := map[string]bool{
		"foo.Bar":          true,
		"foo.Ping.Bar":     true,
		"foo.Ping.Pong.In": true,
	}
	resolved, err := ResolveType(allTypes, "foo.Ping.Pong", "Bar")
	require.NoError(t, err)
	assert.Equal(t, "foo.Ping.Bar", resolved)
}

func TestResolveTypeSupportsAbsoluteTypes(t *testing.T) {
	allTypes := map[string]bool{"foo.Baz": true, "bar.Baz": true}
	resolved, err := ResolveType(allTypes, "foo", ".bar.Baz")
	require.NoError(t, err)
	assert.Equal(t, "bar.Baz", resolved)
}

func TestResolveTypeAbsoluteNeverClimbsScopes(t *testing.T) {
	// foo.Baz exists, but an absolute reference must match verbatim only.
	allTypes := map[string]bool{"foo.Baz": true}
	_, err := ResolveType(allTypes, "foo", ".Baz")
	var unresolved *UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, ".Baz", unresolved.Reference)
	assert.Equal(t, "foo", unresolved.Scope)
}

func TestResolveTypeFailsIfMissing(t *testing.T) {
	_, err := ResolveType(map[string]bool{}, "foo.Bar", "MissingType")
	var unresolved *UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "MissingType", unresolved.Reference)
	assert.Equal(t, "foo.Bar", unresolved.Scope)
	assert.EqualError(t, err, "unknown type MissingType in foo.Bar")
}
