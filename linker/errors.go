package linker

import (
	"fmt"
	"strings"
)

// DuplicateSymbolError reports a fully-qualified type name declared by more
// than one file, or twice within one file.
type DuplicateSymbolError struct {
	Symbol string
	Files  []string // Owning file names, in input order, deduplicated
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate type %s defined in %s", e.Symbol, strings.Join(e.Files, ", "))
}

// UnresolvedTypeError reports a type reference that matched no declared type
// as a primitive, absolute, fully-qualified or enclosing-scope name.
type UnresolvedTypeError struct {
	Reference string
	Scope     string
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("unknown type %s in %s", e.Reference, e.Scope)
}

// UnknownRootError reports a requested root type absent from the schema
// universe being filtered.
type UnknownRootError struct {
	Root string
}

func (e *UnknownRootError) Error() string {
	return fmt.Sprintf("unknown type %s", e.Root)
}
