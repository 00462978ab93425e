package linker

import (
	"github.com/suparit/wire/schema"
)

// CollectAllTypes walks every declared type in every file, recursing through
// nested declarations, and returns the set of fully-qualified type names.
// It fails with *DuplicateSymbolError when two declarations claim the same
// fully-qualified name.
func CollectAllTypes(files []*schema.File) (map[string]bool, error) {
	owners := map[string][]string{}
	for _, file := range files {
		for _, typ := range file.Types {
			if err := collectTypes(typ, file.Name, owners); err != nil {
				return nil, err
			}
		}
	}
	allTypes := make(map[string]bool, len(owners))
	for name := range owners {
		allTypes[name] = true
	}
	return allTypes, nil
}

func collectTypes(typ schema.Type, fileName string, owners map[string][]string) error {
	name := typ.QualifiedName()
	seen := owners[name]
	if len(seen) > 0 {
		files := seen
		if files[len(files)-1] != fileName {
			files = append(files, fileName)
		}
		return &DuplicateSymbolError{Symbol: name, Files: files}
	}
	owners[name] = append(seen, fileName)

	if message, ok := typ.(*schema.MessageType); ok {
		for _, nested := range message.Nested {
			if err := collectTypes(nested, fileName, owners); err != nil {
				return err
			}
		}
	}
	return nil
}
