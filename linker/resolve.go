package linker

import (
	"strings"
)

// ResolveType resolves a raw type reference to its unique fully-qualified
// name using lexical-scope lookup. scope is the fully-qualified name of the
// declaration the reference appears in. Resolution order: primitive keyword,
// absolute reference (leading dot, exact match only), already fully-qualified
// name, then each enclosing scope from innermost out. Fails with
// *UnresolvedTypeError when nothing matches.
func ResolveType(allTypes map[string]bool, scope, reference string) (string, error) {
	if IsPrimitive(reference) {
		return reference, nil
	}
	if strings.HasPrefix(reference, ".") {
		// Absolute references opt out of scope climbing entirely.
		absolute := reference[1:]
		if allTypes[absolute] {
			return absolute, nil
		}
		return "", &UnresolvedTypeError{Reference: reference, Scope: scope}
	}
	if allTypes[reference] {
		return reference, nil
	}
	for prefix := scope; prefix != ""; {
		if candidate := prefix + "." + reference; allTypes[candidate] {
			return candidate, nil
		}
		if dot := strings.LastIndex(prefix, "."); dot >= 0 {
			prefix = prefix[:dot]
		} else {
			prefix = ""
		}
	}
	return "", &UnresolvedTypeError{Reference: reference, Scope: scope}
}
