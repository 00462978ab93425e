package linker

import (
	"github.com/suparit/wire/schema"
)

// FullyQualifyFiles rewrites every type reference in every file to its
// fully-qualified form: message field types, service method request and
// response types, and extend declaration field types. The scope for each
// rewrite is the fully-qualified name of the immediately enclosing
// declaration. Structure, ordering, tags, names, options and documentation
// are copied unchanged into new values; inputs are never mutated.
func FullyQualifyFiles(files []*schema.File, allTypes map[string]bool) ([]*schema.File, error) {
	qualified := make([]*schema.File, 0, len(files))
	for _, file := range files {
		types := make([]schema.Type, 0, len(file.Types))
		for _, typ := range file.Types {
			qualifiedType, err := fullyQualifyType(typ, allTypes)
			if err != nil {
				return nil, err
			}
			types = append(types, qualifiedType)
		}

		services := make([]*schema.Service, 0, len(file.Services))
		for _, service := range file.Services {
			qualifiedService, err := fullyQualifyService(service, allTypes)
			if err != nil {
				return nil, err
			}
			services = append(services, qualifiedService)
		}

		extends := make([]*schema.ExtendDeclaration, 0, len(file.Extends))
		for _, extend := range file.Extends {
			qualifiedExtend, err := fullyQualifyExtend(extend, allTypes)
			if err != nil {
				return nil, err
			}
			extends = append(extends, qualifiedExtend)
		}

		qualified = append(qualified, schema.NewFile(file.Name, file.Package,
			file.Dependencies, file.PublicDependencies, types, services, extends, file.Options))
	}
	return qualified, nil
}

// fullyQualifyType rewrites one message or enum declaration, recursing
// depth-first into nested types. Enums carry no type references and are
// returned as-is.
func fullyQualifyType(typ schema.Type, allTypes map[string]bool) (schema.Type, error) {
	message, ok := typ.(*schema.MessageType)
	if !ok {
		return typ, nil
	}

	nested := make([]schema.Type, 0, len(message.Nested))
	for _, nestedType := range message.Nested {
		qualifiedNested, err := fullyQualifyType(nestedType, allTypes)
		if err != nil {
			return nil, err
		}
		nested = append(nested, qualifiedNested)
	}

	fields, err := fullyQualifyFields(message.Fields, message.FullyQualifiedName, allTypes)
	if err != nil {
		return nil, err
	}

	return schema.NewMessageType(message.Name, message.FullyQualifiedName,
		message.Documentation, fields, nested, message.Extensions, message.Options), nil
}

func fullyQualifyService(service *schema.Service, allTypes map[string]bool) (*schema.Service, error) {
	scope := service.FullyQualifiedName
	methods := make([]*schema.Method, 0, len(service.Methods))
	for _, method := range service.Methods {
		requestType, err := ResolveType(allTypes, scope, method.RequestType)
		if err != nil {
			return nil, err
		}
		responseType, err := ResolveType(allTypes, scope, method.ResponseType)
		if err != nil {
			return nil, err
		}
		methods = append(methods, &schema.Method{
			Name:          method.Name,
			Documentation: method.Documentation,
			RequestType:   requestType,
			ResponseType:  responseType,
			Options:       method.Options,
		})
	}
	return schema.NewService(service.Name, scope, service.Documentation, service.Options, methods), nil
}

func fullyQualifyExtend(extend *schema.ExtendDeclaration, allTypes map[string]bool) (*schema.ExtendDeclaration, error) {
	fields, err := fullyQualifyFields(extend.Fields, extend.FullyQualifiedName, allTypes)
	if err != nil {
		return nil, err
	}
	return &schema.ExtendDeclaration{
		Name:               extend.Name,
		FullyQualifiedName: extend.FullyQualifiedName,
		Documentation:      extend.Documentation,
		Fields:             fields,
	}, nil
}

func fullyQualifyFields(fields []*schema.Field, scope string, allTypes map[string]bool) ([]*schema.Field, error) {
	qualified := make([]*schema.Field, 0, len(fields))
	for _, field := range fields {
		fieldType, err := ResolveType(allTypes, scope, field.Type)
		if err != nil {
			return nil, err
		}
		qualified = append(qualified, &schema.Field{
			Label:         field.Label,
			Type:          fieldType,
			Name:          field.Name,
			Tag:           field.Tag,
			Documentation: field.Documentation,
			Options:       field.Options,
		})
	}
	return qualified, nil
}
