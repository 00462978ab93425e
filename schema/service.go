package schema

// Service represents a service declaration with its ordered methods.
type Service struct {
	Name               string
	FullyQualifiedName string
	Documentation      string
	Options            []*Option
	Methods            []*Method

	methodMap map[string]int // Map of methods for quick lookup
}

// NewService creates a service and indexes its methods.
func NewService(name, fqName, documentation string, options []*Option, methods []*Method) *Service {
	s := &Service{
		Name:               name,
		FullyQualifiedName: fqName,
		Documentation:      documentation,
		Options:            options,
		Methods:            methods,
	}
	s.indexMethods()
	return s
}

// LookupMethod retrieves a method by name.
func (s *Service) LookupMethod(name string) *Method {
	if s.methodMap == nil {
		s.indexMethods()
	}
	if idx, ok := s.methodMap[name]; ok && idx < len(s.Methods) {
		return s.Methods[idx]
	}
	return nil
}

func (s *Service) indexMethods() {
	s.methodMap = make(map[string]int)
	for i, method := range s.Methods {
		if method == nil {
			continue
		}
		if _, ok := s.methodMap[method.Name]; !ok {
			s.methodMap[method.Name] = i
		}
	}
}

// Method represents a single service method. RequestType and ResponseType
// carry the same reference semantics as Field.Type.
type Method struct {
	Name          string
	Documentation string
	RequestType   string
	ResponseType  string
	Options       []*Option
}

// ExtendDeclaration represents an extend block targeting a message declared
// elsewhere. Fields resolve exactly like message fields, scoped to the
// fully-qualified target name.
type ExtendDeclaration struct {
	Name               string
	FullyQualifiedName string
	Documentation      string
	Fields             []*Field
}
