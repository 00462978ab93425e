package schema

// Type represents a message or enum declaration. The two variants are
// *MessageType and *EnumType; both are addressable by a globally unique
// fully-qualified name (package plus every enclosing declaration, dot-joined).
type Type interface {
	// TypeName returns the simple declared name.
	TypeName() string
	// QualifiedName returns the fully-qualified name.
	QualifiedName() string
	// Doc returns the leading documentation, empty when absent.
	Doc() string
}

// Label represents a field cardinality declaration.
type Label string

const (
	Required Label = "required"
	Optional Label = "optional"
	Repeated Label = "repeated"
)

// MessageType represents a message declaration with ordered fields and
// arbitrarily nested message/enum declarations.
type MessageType struct {
	Name               string
	FullyQualifiedName string
	Documentation      string
	Fields             []*Field
	Nested             []Type
	Extensions         []*ExtensionRange
	Options            []*Option

	nestedMap map[string]int // Map of nested types for quick lookup
}

// NewMessageType creates a message type and indexes its nested declarations.
func NewMessageType(name, fqName, documentation string, fields []*Field, nested []Type, extensions []*ExtensionRange, options []*Option) *MessageType {
	m := &MessageType{
		Name:               name,
		FullyQualifiedName: fqName,
		Documentation:      documentation,
		Fields:             fields,
		Nested:             nested,
		Extensions:         extensions,
		Options:            options,
	}
	m.indexNested()
	return m
}

func (m *MessageType) TypeName() string      { return m.Name }
func (m *MessageType) QualifiedName() string { return m.FullyQualifiedName }
func (m *MessageType) Doc() string           { return m.Documentation }

// LookupNested retrieves a directly nested type by simple name.
func (m *MessageType) LookupNested(name string) Type {
	if m.nestedMap == nil {
		m.indexNested()
	}
	if idx, ok := m.nestedMap[name]; ok && idx < len(m.Nested) {
		return m.Nested[idx]
	}
	return nil
}

func (m *MessageType) indexNested() {
	m.nestedMap = make(map[string]int)
	for i, typ := range m.Nested {
		if typ == nil {
			continue
		}
		if _, ok := m.nestedMap[typ.TypeName()]; !ok {
			m.nestedMap[typ.TypeName()] = i
		}
	}
}

// EnumType represents an enum declaration with its ordered named values.
type EnumType struct {
	Name               string
	FullyQualifiedName string
	Documentation      string
	Values             []*EnumValue
	Options            []*Option
}

func (e *EnumType) TypeName() string      { return e.Name }
func (e *EnumType) QualifiedName() string { return e.FullyQualifiedName }
func (e *EnumType) Doc() string           { return e.Documentation }

// EnumValue represents a single named enum constant.
type EnumValue struct {
	Name          string
	Tag           int
	Documentation string
	Options       []*Option
}

// Field represents a message or extend field. Type holds a raw reference as
// written in the source until the qualifier rewrites it to a fully-qualified
// name or a primitive keyword. Name and Tag are opaque and never rewritten.
type Field struct {
	Label         Label
	Type          string
	Name          string
	Tag           int
	Documentation string
	Options       []*Option
}

// ExtensionRange represents a declared extension tag range on a message.
type ExtensionRange struct {
	Start int
	End   int
}
