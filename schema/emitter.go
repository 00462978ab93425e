package schema

// Emitter renders a schema file into an output representation.
type Emitter interface {
	Emit(file *File) ([]byte, error)
}
