package schema

// Option represents a declared option as an opaque name/value pair. Values
// are never interpreted by the linker and survive every rewrite unchanged.
type Option struct {
	Name  string
	Value interface{}
}

// LookupOption retrieves an option by name from a list, nil when absent.
func LookupOption(options []*Option, name string) *Option {
	for _, option := range options {
		if option != nil && option.Name == name {
			return option
		}
	}
	return nil
}
