// Package loader locates .proto files across a set of search directories and
// parses them, following declared file dependencies breadth-first, into the
// raw schema model consumed by the linker.
package loader

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/suparit/wire/parser"
	"github.com/suparit/wire/schema"
)

// Loader discovers and parses schema files. Configure it with AddDirectory
// and AddProto; with no directories the working directory is searched, with
// no protos every *.proto under the directories is loaded.
type Loader struct {
	fs          afs.Service
	log         logrus.FieldLogger
	directories []string
	protos      []string
}

// New creates a loader backed by the default file service.
func New() *Loader {
	return &Loader{fs: afs.New(), log: logrus.StandardLogger()}
}

// WithLogger replaces the loader's logger.
func (l *Loader) WithLogger(log logrus.FieldLogger) *Loader {
	l.log = log
	return l
}

// AddDirectory adds a directory dependency declarations are resolved from.
func (l *Loader) AddDirectory(directory string) *Loader {
	l.directories = append(l.directories, directory)
	return l
}

// AddProto adds a schema file to load. The path should live under one of the
// configured directories so its declared name stays consistent with how
// dependant files refer to it.
func (l *Loader) AddProto(proto string) *Loader {
	l.protos = append(l.protos, proto)
	return l
}

// Load parses the configured protos and every file they transitively depend
// on. Each distinct file is parsed once; files reachable through more than
// one directory are recognised by content fingerprint and skipped.
func (l *Loader) Load(ctx context.Context) ([]*schema.File, error) {
	if err := l.validate(ctx); err != nil {
		return nil, err
	}
	directories, err := l.searchDirectories()
	if err != nil {
		return nil, err
	}
	protos := l.protos
	if len(protos) == 0 {
		if protos, err = l.findProtos(ctx, directories); err != nil {
			return nil, err
		}
	}

	var files []*schema.File
	seenPaths := map[string]bool{}
	seenContent := map[uint64]bool{}
	queue := make([]string, 0, len(protos))
	queue = append(queue, protos...)

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if seenPaths[path] {
			continue
		}
		seenPaths[path] = true

		data, err := l.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "read proto %s", path)
		}
		fingerprint, err := schema.Hash(data)
		if err != nil {
			return nil, err
		}
		if seenContent[fingerprint] {
			l.log.WithField("proto", path).Debug("skipping already loaded content")
			continue
		}
		seenContent[fingerprint] = true

		name := declaredName(directories, path)
		l.log.WithField("proto", name).Debug("parsing")
		file, err := parser.Parse(name, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		files = append(files, file)

		for _, dependency := range file.Dependencies {
			dependencyPath, err := l.resolveDependency(ctx, path, directories, dependency)
			if err != nil {
				return nil, err
			}
			if !seenPaths[dependencyPath] {
				queue = append(queue, dependencyPath)
			}
		}
	}
	return files, nil
}

func (l *Loader) validate(ctx context.Context) error {
	for _, directory := range l.directories {
		ok, err := l.fs.Exists(ctx, directory)
		if err != nil {
			return pkgerrors.Wrapf(err, "check directory %s", directory)
		}
		if !ok {
			return pkgerrors.Errorf("directory %s does not exist", directory)
		}
	}
	for _, proto := range l.protos {
		ok, err := l.fs.Exists(ctx, proto)
		if err != nil {
			return pkgerrors.Wrapf(err, "check proto %s", proto)
		}
		if !ok {
			return pkgerrors.Errorf("proto %s does not exist", proto)
		}
	}
	return nil
}

func (l *Loader) searchDirectories() ([]string, error) {
	if len(l.directories) > 0 {
		return l.directories, nil
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "determine working directory")
	}
	return []string{workingDir}, nil
}

// findProtos walks every search directory and collects all *.proto files.
func (l *Loader) findProtos(ctx context.Context, directories []string) ([]string, error) {
	var protos []string
	for _, directory := range directories {
		err := l.fs.Walk(ctx, directory, func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
			if info.IsDir() {
				return true, nil
			}
			if strings.HasSuffix(info.Name(), ".proto") {
				protos = append(protos, url.Join(baseURL, parent, info.Name()))
			}
			return true, nil
		})
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "walk directory %s", directory)
		}
	}
	return protos, nil
}

// resolveDependency finds a declared dependency in the search directories,
// trying them in order.
func (l *Loader) resolveDependency(ctx context.Context, from string, directories []string, dependency string) (string, error) {
	for _, directory := range directories {
		candidate := url.Join(directory, dependency)
		if ok, _ := l.fs.Exists(ctx, candidate); ok {
			return candidate, nil
		}
	}
	return "", &MissingDependencyError{Dependency: dependency, From: from, Directories: directories}
}

// declaredName derives the name a file is known by inside the schema
// universe: its path relative to the directory it was found under.
func declaredName(directories []string, path string) string {
	for _, directory := range directories {
		prefix := strings.TrimSuffix(directory, "/") + "/"
		if strings.HasPrefix(path, prefix) {
			return strings.TrimPrefix(path, prefix)
		}
	}
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
