package loader

import (
	"fmt"
	"strings"
)

// MissingDependencyError reports a declared file dependency that could not
// be located in any search directory.
type MissingDependencyError struct {
	Dependency  string
	From        string
	Directories []string
}

func (e *MissingDependencyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot resolve dependency %q from %q in:", e.Dependency, e.From)
	for _, directory := range e.Directories {
		fmt.Fprintf(&b, "\n  * %s", directory)
	}
	return b.String()
}
