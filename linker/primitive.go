package linker

// primitiveTypes is the fixed scalar keyword set. These names are never
// user-defined and never participate in resolution or reachability.
var primitiveTypes = map[string]bool{
	"bool":     true,
	"bytes":    true,
	"double":   true,
	"float":    true,
	"fixed32":  true,
	"fixed64":  true,
	"int32":    true,
	"int64":    true,
	"sfixed32": true,
	"sfixed64": true,
	"sint32":   true,
	"sint64":   true,
	"string":   true,
	"uint32":   true,
	"uint64":   true,
}

// IsPrimitive reports whether name is a scalar type keyword.
func IsPrimitive(name string) bool {
	return primitiveTypes[name]
}
