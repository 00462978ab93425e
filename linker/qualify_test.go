package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparit/wire/schema"
)

func TestFullyQualifyMessage(t *testing.T) {
	allTypes := map[string]bool{
		"wire.One":   true,
		"wire.Two":   true,
		"wire.Three": true,
	}

	enum := &schema.EnumType{
		Name:               "Enum",
		FullyQualifiedName: "wire.Enum",
		Values:             []*schema.EnumValue{{Name: "FOO", Tag: 1}},
	}
	nested := schema.NewMessageType("Nested", "wire.Message.Nested", "",
		[]*schema.Field{{Label: schema.Required, Type: "Three", Name: "three", Tag: 1}},
		nil, nil, nil)
	message := schema.NewMessageType("Message", "wire.Message", "",
		[]*schema.Field{
			{Label: schema.Required, Type: "One", Name: "one", Tag: 1},
			{Label: schema.Required, Type: "Two", Name: "two", Tag: 2},
		},
		[]schema.Type{enum, nested}, nil, nil)
	file := schema.NewFile("message.proto", "wire", nil, nil, []schema.Type{message}, nil, nil, nil)

	qualified, err := FullyQualifyFiles([]*schema.File{file}, allTypes)
	require.NoError(t, err)
	require.Len(t, qualified, 1)

	got, ok := qualified[0].LookupType("Message").(*schema.MessageType)
	require.True(t, ok)
	assert.Equal(t, "wire.One", got.Fields[0].Type)
	assert.Equal(t, "wire.Two", got.Fields[1].Type)
	assert.Equal(t, "one", got.Fields[0].Name)
	assert.Equal(t, 1, got.Fields[0].Tag)
	assert.Equal(t, schema.Required, got.Fields[0].Label)

	gotNested, ok := got.LookupNested("Nested").(*schema.MessageType)
	require.True(t, ok)
	assert.Equal(t, "wire.Three", gotNested.Fields[0].Type)

	// Enums carry no references and come through untouched.
	assert.Same(t, schema.Type(enum), got.LookupNested("Enum"))

	// The input model is never mutated.
	assert.Equal(t, "One", message.Fields[0].Type)
	assert.Equal(t, "Three", nested.Fields[0].Type)
}

func TestFullyQualifyService(t *testing.T) {
	allTypes := map[string]bool{
		"wire.Request1":  true,
		"wire.Response1": true,
		"wire.Request2":  true,
		"wire.Response2": true,
	}

	service := schema.NewService("Service", "wire.Service", "", nil, []*schema.Method{
		{Name: "Method1", RequestType: "Request1", ResponseType: "Response1"},
		{Name: "Method2", RequestType: "Request2", ResponseType: "Response2"},
	})
	file := schema.NewFile("service.proto", "wire", nil, nil, nil, []*schema.Service{service}, nil, nil)

	qualified, err := FullyQualifyFiles([]*schema.File{file}, allTypes)
	require.NoError(t, err)

	got := qualified[0].LookupService("Service")
	require.NotNil(t, got)
	assert.Equal(t, "wire.Request1", got.Methods[0].RequestType)
	assert.Equal(t, "wire.Response1", got.Methods[0].ResponseType)
	assert.Equal(t, "wire.Request2", got.Methods[1].RequestType)
	assert.Equal(t, "wire.Response2", got.Methods[1].ResponseType)
	assert.Equal(t, "Request1", service.Methods[0].RequestType)
}

func TestFullyQualifyExtend(t *testing.T) {
	allTypes := map[string]bool{"wire.Foo": true}

	extend := &schema.ExtendDeclaration{
		Name:               "Bar",
		FullyQualifiedName: "wire.Bar",
		Fields:             []*schema.Field{{Label: schema.Required, Type: "Foo", Name: "foo", Tag: 1}},
	}
	file := schema.NewFile("extend.proto", "wire", nil, nil, nil, nil, []*schema.ExtendDeclaration{extend}, nil)

	qualified, err := FullyQualifyFiles([]*schema.File{file}, allTypes)
	require.NoError(t, err)

	require.Len(t, qualified[0].Extends, 1)
	assert.Equal(t, "wire.Foo", qualified[0].Extends[0].Fields[0].Type)
	assert.Equal(t, "Foo", extend.Fields[0].Type)
}

func TestFullyQualifyIsIdempotent(t *testing.T) {
	allTypes := map[string]bool{"wire.One": true}
	message := schema.NewMessageType("Message", "wire.Message", "",
		[]*schema.Field{{Label: schema.Optional, Type: "One", Name: "one", Tag: 1}}, nil, nil, nil)
	file := schema.NewFile("message.proto", "wire", nil, nil, []schema.Type{message}, nil, nil, nil)

	once, err := FullyQualifyFiles([]*schema.File{file}, allTypes)
	require.NoError(t, err)
	twice, err := FullyQualifyFiles(once, allTypes)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFullyQualifyPropagatesUnresolvedType(t *testing.T) {
	message := schema.NewMessageType("Message", "wire.Message", "",
		[]*schema.Field{{Label: schema.Optional, Type: "Missing", Name: "missing", Tag: 1}}, nil, nil, nil)
	file := schema.NewFile("message.proto", "wire", nil, nil, []schema.Type{message}, nil, nil, nil)

	_, err := FullyQualifyFiles([]*schema.File{file}, map[string]bool{})
	var unresolved *UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "Missing", unresolved.Reference)
	assert.Equal(t, "wire.Message", unresolved.Scope)
}
