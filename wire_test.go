package wire

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/suparit/wire/schema"
)

const personSource = `syntax = "proto2";
package wire;
import "address.proto";

message Person {
  required string name = 1;
  optional Address address = 2;
}

message Unreferenced {
  optional string note = 1;
}
`

const addressSource = `syntax = "proto2";
package wire;

message Address {
  required string street = 1;
}
`

func uploadFixtures(t *testing.T, baseURL string) {
	t.Helper()
	fs := afs.New()
	for name, content := range map[string]string{
		"person.proto":  personSource,
		"address.proto": addressSource,
	} {
		err := fs.Upload(context.Background(), url.Join(baseURL, name), os.FileMode(0o644), strings.NewReader(content))
		require.NoError(t, err)
	}
}

func TestCompileQualifiesReferences(t *testing.T) {
	baseURL := "mem://localhost/wire/qualify"
	uploadFixtures(t, baseURL)

	files, err := NewCompiler().
		AddDirectory(baseURL).
		AddProto(url.Join(baseURL, "person.proto")).
		Compile(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	person, ok := files[0].LookupType("Person").(*schema.MessageType)
	require.True(t, ok)
	assert.Equal(t, "string", person.Fields[0].Type)
	assert.Equal(t, "wire.Address", person.Fields[1].Type)
	assert.NotNil(t, files[0].LookupType("Unreferenced"))
}

func TestCompilePrunesToRoots(t *testing.T) {
	baseURL := "mem://localhost/wire/prune"
	uploadFixtures(t, baseURL)

	files, err := NewCompiler().
		AddDirectory(baseURL).
		AddProto(url.Join(baseURL, "person.proto")).
		AddRoot("wire.Person").
		Compile(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	require.Len(t, files[0].Types, 1)
	assert.Equal(t, "wire.Person", files[0].Types[0].QualifiedName())
	require.Len(t, files[1].Types, 1)
	assert.Equal(t, "wire.Address", files[1].Types[0].QualifiedName())
}

func TestCompileFailsOnUnknownRoot(t *testing.T) {
	baseURL := "mem://localhost/wire/unknown"
	uploadFixtures(t, baseURL)

	_, err := NewCompiler().
		AddDirectory(baseURL).
		AddProto(url.Join(baseURL, "person.proto")).
		AddRoot("wire.Nope").
		Compile(context.Background())
	assert.EqualError(t, err, "unknown type wire.Nope")
}
