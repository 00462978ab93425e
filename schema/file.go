package schema

// File represents a single schema definition file with its declared types,
// services and extend declarations. Values are never mutated after
// construction; rewrite passes build new File values instead.
type File struct {
	Name               string   // File name, as given to the parser
	Package            string   // Declared package, empty when absent
	Dependencies       []string // Declared file dependencies, unresolved names
	PublicDependencies []string // Subset of dependencies re-exported to importers
	Types              []Type   // Top-level message and enum declarations
	Services           []*Service
	Extends            []*ExtendDeclaration
	Options            []*Option

	typeMap    map[string]int // Map of top-level types for quick lookup
	serviceMap map[string]int // Map of services for quick lookup
}

// NewFile creates a file and indexes its declarations.
func NewFile(name, pkg string, dependencies, publicDependencies []string, types []Type, services []*Service, extends []*ExtendDeclaration, options []*Option) *File {
	f := &File{
		Name:               name,
		Package:            pkg,
		Dependencies:       dependencies,
		PublicDependencies: publicDependencies,
		Types:              types,
		Services:           services,
		Extends:            extends,
		Options:            options,
	}
	f.indexDeclarations()
	return f
}

// LookupType retrieves a top-level type by simple name.
func (f *File) LookupType(name string) Type {
	if f.typeMap == nil {
		f.indexDeclarations()
	}
	if idx, ok := f.typeMap[name]; ok && idx < len(f.Types) {
		return f.Types[idx]
	}
	return nil
}

// LookupService retrieves a service by simple name.
func (f *File) LookupService(name string) *Service {
	if f.serviceMap == nil {
		f.indexDeclarations()
	}
	if idx, ok := f.serviceMap[name]; ok && idx < len(f.Services) {
		return f.Services[idx]
	}
	return nil
}

func (f *File) indexDeclarations() {
	f.typeMap = make(map[string]int)
	for i, typ := range f.Types {
		if typ == nil {
			continue
		}
		if _, ok := f.typeMap[typ.TypeName()]; !ok {
			f.typeMap[typ.TypeName()] = i
		}
	}
	f.serviceMap = make(map[string]int)
	for i, service := range f.Services {
		if service == nil {
			continue
		}
		if _, ok := f.serviceMap[service.Name]; !ok {
			f.serviceMap[service.Name] = i
		}
	}
}
