// Package wire links .proto schema definitions: it loads files and their
// transitive dependencies, builds the global symbol table, rewrites every
// type reference to its fully-qualified form, and optionally prunes the
// result down to caller-chosen root types.
package wire

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/suparit/wire/linker"
	"github.com/suparit/wire/loader"
	"github.com/suparit/wire/schema"
)

// Compiler drives the full pipeline. Configure it builder-style:
//
//	files, err := wire.NewCompiler().
//		AddDirectory("protos").
//		AddRoot("wire.Person").
//		Compile(ctx)
//
// With no directories the working directory is searched; with no protos every
// discovered file is loaded; with no roots nothing is pruned.
type Compiler struct {
	loader *loader.Loader
	roots  []string
}

// NewCompiler creates a compiler with default loading behavior.
func NewCompiler() *Compiler {
	return &Compiler{loader: loader.New()}
}

// WithLogger replaces the logger used during loading.
func (c *Compiler) WithLogger(log logrus.FieldLogger) *Compiler {
	c.loader.WithLogger(log)
	return c
}

// AddDirectory adds a search directory for protos and their dependencies.
func (c *Compiler) AddDirectory(directory string) *Compiler {
	c.loader.AddDirectory(directory)
	return c
}

// AddProto adds a specific schema file to compile.
func (c *Compiler) AddProto(proto string) *Compiler {
	c.loader.AddProto(proto)
	return c
}

// AddRoot adds a fully-qualified type the output must retain. When any roots
// are set, the compiled schema is pruned to the roots and everything they
// transitively depend on.
func (c *Compiler) AddRoot(root string) *Compiler {
	c.roots = append(c.roots, root)
	return c
}

// Compile loads, links and optionally prunes the schema universe.
func (c *Compiler) Compile(ctx context.Context) ([]*schema.File, error) {
	files, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	allTypes, err := linker.CollectAllTypes(files)
	if err != nil {
		return nil, err
	}
	if files, err = linker.FullyQualifyFiles(files, allTypes); err != nil {
		return nil, err
	}
	if len(c.roots) > 0 {
		if files, err = linker.FilterByRoots(files, c.roots); err != nil {
			return nil, err
		}
	}
	return files, nil
}
