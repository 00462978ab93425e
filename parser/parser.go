// Package parser turns .proto source text into the raw schema model. Type
// references are kept exactly as written; declaration names are qualified
// with their package and enclosing declarations so the linker can resolve
// references against them.
package parser

import (
	"io"
	"os"

	"github.com/jhump/protoreflect/desc/protoparse"
	pkgerrors "github.com/pkg/errors"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/suparit/wire/schema"
)

// Parse reads a single .proto definition from src. Declared dependencies are
// recorded by name only; locating and parsing them is the loader's job.
func Parse(name string, src io.Reader) (*schema.File, error) {
	p := protoparse.Parser{
		IncludeSourceCodeInfo: true,
		Accessor: func(filename string) (io.ReadCloser, error) {
			if filename == name {
				return io.NopCloser(src), nil
			}
			return nil, os.ErrNotExist
		},
	}
	descriptors, err := p.ParseFilesButDoNotLink(name)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "parse %s", name)
	}
	return fromDescriptor(descriptors[0]), nil
}

// fromDescriptor converts an unlinked file descriptor into a schema.File.
func fromDescriptor(fd *descriptorpb.FileDescriptorProto) *schema.File {
	docs := newDocIndex(fd.GetSourceCodeInfo())
	pkg := fd.GetPackage()

	var types []schema.Type
	for i, message := range fd.GetMessageType() {
		types = append(types, messageFromDescriptor(message, pkg, docs, fileMessagesTag, int32(i)))
	}
	for i, enum := range fd.GetEnumType() {
		types = append(types, enumFromDescriptor(enum, pkg, docs, fileEnumsTag, int32(i)))
	}

	var services []*schema.Service
	for i, service := range fd.GetService() {
		services = append(services, serviceFromDescriptor(service, pkg, docs, int32(i)))
	}

	extends := extendsFromDescriptors(fd.GetExtension(), pkg, docs, fileExtensionsTag)

	var publicDependencies []string
	for _, idx := range fd.GetPublicDependency() {
		if int(idx) < len(fd.GetDependency()) {
			publicDependencies = append(publicDependencies, fd.GetDependency()[idx])
		}
	}

	return schema.NewFile(fd.GetName(), pkg, fd.GetDependency(), publicDependencies,
		types, services, extends, optionsFromDescriptor(fd.GetOptions().GetUninterpretedOption()))
}

func messageFromDescriptor(md *descriptorpb.DescriptorProto, prefix string, docs docIndex, path ...int32) *schema.MessageType {
	fqName := qualify(prefix, md.GetName())

	var fields []*schema.Field
	for i, field := range md.GetField() {
		fields = append(fields, fieldFromDescriptor(field, docs, append(path, messageFieldsTag, int32(i))...))
	}

	var nested []schema.Type
	for i, nestedMessage := range md.GetNestedType() {
		nested = append(nested, messageFromDescriptor(nestedMessage, fqName, docs, append(path, messageNestedTag, int32(i))...))
	}
	for i, nestedEnum := range md.GetEnumType() {
		nested = append(nested, enumFromDescriptor(nestedEnum, fqName, docs, append(path, messageEnumsTag, int32(i))...))
	}

	var extensions []*schema.ExtensionRange
	for _, extensionRange := range md.GetExtensionRange() {
		extensions = append(extensions, &schema.ExtensionRange{
			Start: int(extensionRange.GetStart()),
			// Descriptor ranges are half-open; the model keeps them inclusive.
			End: int(extensionRange.GetEnd()) - 1,
		})
	}

	return schema.NewMessageType(md.GetName(), fqName, docs.leading(path...),
		fields, nested, extensions, optionsFromDescriptor(md.GetOptions().GetUninterpretedOption()))
}

func enumFromDescriptor(ed *descriptorpb.EnumDescriptorProto, prefix string, docs docIndex, path ...int32) *schema.EnumType {
	var values []*schema.EnumValue
	for i, value := range ed.GetValue() {
		values = append(values, &schema.EnumValue{
			Name:          value.GetName(),
			Tag:           int(value.GetNumber()),
			Documentation: docs.leading(append(path, enumValuesTag, int32(i))...),
			Options:       optionsFromDescriptor(value.GetOptions().GetUninterpretedOption()),
		})
	}
	return &schema.EnumType{
		Name:               ed.GetName(),
		FullyQualifiedName: qualify(prefix, ed.GetName()),
		Documentation:      docs.leading(path...),
		Values:             values,
		Options:            optionsFromDescriptor(ed.GetOptions().GetUninterpretedOption()),
	}
}

func serviceFromDescriptor(sd *descriptorpb.ServiceDescriptorProto, pkg string, docs docIndex, index int32) *schema.Service {
	var methods []*schema.Method
	for i, method := range sd.GetMethod() {
		methods = append(methods, &schema.Method{
			Name:          method.GetName(),
			Documentation: docs.leading(fileServicesTag, index, serviceMethodsTag, int32(i)),
			RequestType:   method.GetInputType(),
			ResponseType:  method.GetOutputType(),
			Options:       optionsFromDescriptor(method.GetOptions().GetUninterpretedOption()),
		})
	}
	return schema.NewService(sd.GetName(), qualify(pkg, sd.GetName()),
		docs.leading(fileServicesTag, index),
		optionsFromDescriptor(sd.GetOptions().GetUninterpretedOption()), methods)
}

// extendsFromDescriptors groups extension fields by their target, preserving
// declaration order.
func extendsFromDescriptors(extensions []*descriptorpb.FieldDescriptorProto, prefix string, docs docIndex, path ...int32) []*schema.ExtendDeclaration {
	var extends []*schema.ExtendDeclaration
	byTarget := map[string]*schema.ExtendDeclaration{}
	for i, extension := range extensions {
		target := extension.GetExtendee()
		extend, ok := byTarget[target]
		if !ok {
			extend = &schema.ExtendDeclaration{
				Name:               target,
				FullyQualifiedName: extendTargetName(prefix, target),
			}
			byTarget[target] = extend
			extends = append(extends, extend)
		}
		extend.Fields = append(extend.Fields, fieldFromDescriptor(extension, docs, append(path, int32(i))...))
	}
	return extends
}

func fieldFromDescriptor(fd *descriptorpb.FieldDescriptorProto, docs docIndex, path ...int32) *schema.Field {
	options := optionsFromDescriptor(fd.GetOptions().GetUninterpretedOption())
	if fd.GetDefaultValue() != "" {
		options = append(options, &schema.Option{Name: "default", Value: fd.GetDefaultValue()})
	}
	return &schema.Field{
		Label:         fieldLabel(fd.GetLabel()),
		Type:          fieldType(fd),
		Name:          fd.GetName(),
		Tag:           int(fd.GetNumber()),
		Documentation: docs.leading(path...),
		Options:       options,
	}
}

var scalarKeywords = map[descriptorpb.FieldDescriptorProto_Type]string{
	descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:   "double",
	descriptorpb.FieldDescriptorProto_TYPE_FLOAT:    "float",
	descriptorpb.FieldDescriptorProto_TYPE_INT64:    "int64",
	descriptorpb.FieldDescriptorProto_TYPE_UINT64:   "uint64",
	descriptorpb.FieldDescriptorProto_TYPE_INT32:    "int32",
	descriptorpb.FieldDescriptorProto_TYPE_FIXED64:  "fixed64",
	descriptorpb.FieldDescriptorProto_TYPE_FIXED32:  "fixed32",
	descriptorpb.FieldDescriptorProto_TYPE_BOOL:     "bool",
	descriptorpb.FieldDescriptorProto_TYPE_STRING:   "string",
	descriptorpb.FieldDescriptorProto_TYPE_BYTES:    "bytes",
	descriptorpb.FieldDescriptorProto_TYPE_UINT32:   "uint32",
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED32: "sfixed32",
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED64: "sfixed64",
	descriptorpb.FieldDescriptorProto_TYPE_SINT32:   "sint32",
	descriptorpb.FieldDescriptorProto_TYPE_SINT64:   "sint64",
}

// fieldType returns the scalar keyword for primitive fields and the raw
// reference text, exactly as written in the source, for everything else.
func fieldType(fd *descriptorpb.FieldDescriptorProto) string {
	if fd.Type != nil {
		if keyword, ok := scalarKeywords[fd.GetType()]; ok {
			return keyword
		}
	}
	return fd.GetTypeName()
}

func fieldLabel(label descriptorpb.FieldDescriptorProto_Label) schema.Label {
	switch label {
	case descriptorpb.FieldDescriptorProto_LABEL_REQUIRED:
		return schema.Required
	case descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		return schema.Repeated
	default:
		return schema.Optional
	}
}

func optionsFromDescriptor(uninterpreted []*descriptorpb.UninterpretedOption) []*schema.Option {
	var options []*schema.Option
	for _, option := range uninterpreted {
		options = append(options, &schema.Option{
			Name:  optionName(option.GetName()),
			Value: optionValue(option),
		})
	}
	return options
}

func optionName(parts []*descriptorpb.UninterpretedOption_NamePart) string {
	name := ""
	for _, part := range parts {
		if name != "" {
			name += "."
		}
		if part.GetIsExtension() {
			name += "(" + part.GetNamePart() + ")"
		} else {
			name += part.GetNamePart()
		}
	}
	return name
}

func optionValue(option *descriptorpb.UninterpretedOption) interface{} {
	switch {
	case option.IdentifierValue != nil:
		return option.GetIdentifierValue()
	case option.PositiveIntValue != nil:
		return option.GetPositiveIntValue()
	case option.NegativeIntValue != nil:
		return option.GetNegativeIntValue()
	case option.DoubleValue != nil:
		return option.GetDoubleValue()
	case option.StringValue != nil:
		return string(option.GetStringValue())
	default:
		return option.GetAggregateValue()
	}
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// extendTargetName qualifies an extend target the way declarations are
// qualified: absolute targets are taken verbatim, relative ones are prefixed
// with the enclosing package.
func extendTargetName(prefix, target string) string {
	if len(target) > 0 && target[0] == '.' {
		return target[1:]
	}
	return qualify(prefix, target)
}
