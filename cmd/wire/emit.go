package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/suparit/wire/schema"
)

// yamlEmitter renders a schema file as a YAML document.
type yamlEmitter struct{}

func (yamlEmitter) Emit(file *schema.File) ([]byte, error) {
	return yaml.Marshal(fileDoc(file))
}

// writeSchema emits every file as its own YAML document on a single stream.
func writeSchema(w io.Writer, files []*schema.File) error {
	var emitter schema.Emitter = yamlEmitter{}
	for i, file := range files {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		data, err := emitter.Emit(file)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// The yaml mapping mirrors the schema model but leaves out empty members and
// flattens the Type variants, which yaml cannot marshal through an interface
// with unexported state.

type fileDocument struct {
	File     string           `yaml:"file"`
	Package  string           `yaml:"package,omitempty"`
	Imports  []string         `yaml:"imports,omitempty"`
	Types    []typeDocument   `yaml:"types,omitempty"`
	Services []serviceDoc     `yaml:"services,omitempty"`
	Extends  []extendDocument `yaml:"extends,omitempty"`
}

type typeDocument struct {
	Message string         `yaml:"message,omitempty"`
	Enum    string         `yaml:"enum,omitempty"`
	Fields  []fieldDoc     `yaml:"fields,omitempty"`
	Values  []valueDoc     `yaml:"values,omitempty"`
	Nested  []typeDocument `yaml:"nested,omitempty"`
}

type fieldDoc struct {
	Label string `yaml:"label"`
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Tag   int    `yaml:"tag"`
}

type valueDoc struct {
	Name string `yaml:"name"`
	Tag  int    `yaml:"tag"`
}

type serviceDoc struct {
	Service string      `yaml:"service"`
	Methods []methodDoc `yaml:"methods,omitempty"`
}

type methodDoc struct {
	Name     string `yaml:"name"`
	Request  string `yaml:"request"`
	Response string `yaml:"response"`
}

type extendDocument struct {
	Extend string     `yaml:"extend"`
	Fields []fieldDoc `yaml:"fields,omitempty"`
}

func fileDoc(file *schema.File) fileDocument {
	doc := fileDocument{
		File:    file.Name,
		Package: file.Package,
		Imports: file.Dependencies,
	}
	for _, typ := range file.Types {
		doc.Types = append(doc.Types, typeDoc(typ))
	}
	for _, service := range file.Services {
		sd := serviceDoc{Service: service.FullyQualifiedName}
		for _, method := range service.Methods {
			sd.Methods = append(sd.Methods, methodDoc{
				Name:     method.Name,
				Request:  method.RequestType,
				Response: method.ResponseType,
			})
		}
		doc.Services = append(doc.Services, sd)
	}
	for _, extend := range file.Extends {
		ed := extendDocument{Extend: extend.FullyQualifiedName}
		for _, field := range extend.Fields {
			ed.Fields = append(ed.Fields, newFieldDoc(field))
		}
		doc.Extends = append(doc.Extends, ed)
	}
	return doc
}

func typeDoc(typ schema.Type) typeDocument {
	switch typ := typ.(type) {
	case *schema.MessageType:
		doc := typeDocument{Message: typ.FullyQualifiedName}
		for _, field := range typ.Fields {
			doc.Fields = append(doc.Fields, newFieldDoc(field))
		}
		for _, nested := range typ.Nested {
			doc.Nested = append(doc.Nested, typeDoc(nested))
		}
		return doc
	case *schema.EnumType:
		doc := typeDocument{Enum: typ.FullyQualifiedName}
		for _, value := range typ.Values {
			doc.Values = append(doc.Values, valueDoc{Name: value.Name, Tag: value.Tag})
		}
		return doc
	default:
		return typeDocument{}
	}
}

func newFieldDoc(field *schema.Field) fieldDoc {
	return fieldDoc{
		Label: string(field.Label),
		Type:  field.Type,
		Name:  field.Name,
		Tag:   field.Tag,
	}
}
