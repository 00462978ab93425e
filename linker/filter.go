package linker

import (
	"github.com/suparit/wire/schema"
)

// FilterByRoots prunes an already fully-qualified file set down to the types
// reachable from the supplied root type names. The result keeps every root,
// every declaration structurally containing a kept node, and the transitive
// closure of field and method type references. Top-level types and services
// not reachable from any root are dropped; sibling declarations never pull
// each other in. Fails with *UnknownRootError when a root names no declared
// type or service.
func FilterByRoots(files []*schema.File, roots []string) ([]*schema.File, error) {
	tree := newNodeTree(files)

	kept := map[*node]bool{}
	for _, root := range roots {
		n, ok := tree.byName[root]
		if !ok {
			return nil, &UnknownRootError{Root: root}
		}
		tree.keep(n, kept)
	}

	return tree.reifyFiles(kept), nil
}

type nodeKind int

const (
	kindRoot nodeKind = iota
	kindFile
	kindMessage
	kindEnum
	kindService
)

// node is a transient addressable wrapper over one schema declaration. The
// tree is built once and never mutated; reachability lives in a separate
// kept set.
type node struct {
	kind     nodeKind
	parent   *node
	name     string // Fully-qualified name, empty for root and file nodes
	file     *schema.File
	message  *schema.MessageType
	enum     *schema.EnumType
	service  *schema.Service
	children []*node
}

type nodeTree struct {
	root   *node
	byName map[string]*node
}

func newNodeTree(files []*schema.File) *nodeTree {
	tree := &nodeTree{byName: map[string]*node{}}
	tree.root = &node{kind: kindRoot}
	for _, file := range files {
		fileNode := &node{kind: kindFile, parent: tree.root, file: file}
		for _, typ := range file.Types {
			fileNode.children = append(fileNode.children, tree.newTypeNode(fileNode, typ))
		}
		for _, service := range file.Services {
			serviceNode := &node{kind: kindService, parent: fileNode, name: service.FullyQualifiedName, service: service}
			tree.byName[serviceNode.name] = serviceNode
			fileNode.children = append(fileNode.children, serviceNode)
		}
		tree.root.children = append(tree.root.children, fileNode)
	}
	return tree
}

func (t *nodeTree) newTypeNode(parent *node, typ schema.Type) *node {
	switch typ := typ.(type) {
	case *schema.MessageType:
		n := &node{kind: kindMessage, parent: parent, name: typ.FullyQualifiedName, message: typ}
		for _, nested := range typ.Nested {
			n.children = append(n.children, t.newTypeNode(n, nested))
		}
		t.byName[n.name] = n
		return n
	case *schema.EnumType:
		n := &node{kind: kindEnum, parent: parent, name: typ.FullyQualifiedName, enum: typ}
		t.byName[n.name] = n
		return n
	default:
		return nil
	}
}

// keep marks a node and everything it depends on: its ancestor chain plus,
// per kind, the types referenced by message fields or service methods.
// Checking membership before marking guards against reference cycles.
func (t *nodeTree) keep(n *node, kept map[*node]bool) {
	if kept[n] {
		return
	}
	kept[n] = true
	if n.parent != nil {
		t.keep(n.parent, kept)
	}

	switch n.kind {
	case kindMessage:
		for _, field := range n.message.Fields {
			if IsPrimitive(field.Type) {
				continue
			}
			if dep, ok := t.byName[field.Type]; ok {
				t.keep(dep, kept)
			}
		}
	case kindService:
		for _, method := range n.service.Methods {
			if !IsPrimitive(method.RequestType) {
				if dep, ok := t.byName[method.RequestType]; ok {
					t.keep(dep, kept)
				}
			}
			if !IsPrimitive(method.ResponseType) {
				if dep, ok := t.byName[method.ResponseType]; ok {
					t.keep(dep, kept)
				}
			}
		}
	}
}

// reifyFiles rebuilds the schema model from the kept subset of the tree.
func (t *nodeTree) reifyFiles(kept map[*node]bool) []*schema.File {
	var files []*schema.File
	for _, fileNode := range t.root.children {
		if kept[fileNode] {
			files = append(files, fileNode.reifyFile(kept))
		}
	}
	return files
}

func (n *node) reifyFile(kept map[*node]bool) *schema.File {
	var types []schema.Type
	var services []*schema.Service
	for _, child := range n.children {
		if !kept[child] {
			continue
		}
		if child.kind == kindService {
			services = append(services, child.service)
		} else {
			types = append(types, child.reifyType(kept))
		}
	}
	file := n.file
	return schema.NewFile(file.Name, file.Package, file.Dependencies,
		file.PublicDependencies, types, services, file.Extends, file.Options)
}

// reifyType rebuilds a message with nested types restricted to the kept
// subset. Fields are never filtered: a kept message keeps all its fields.
// Enums have no prunable children and are reused as-is.
func (n *node) reifyType(kept map[*node]bool) schema.Type {
	if n.kind == kindEnum {
		return n.enum
	}
	var nested []schema.Type
	for _, child := range n.children {
		if kept[child] {
			nested = append(nested, child.reifyType(kept))
		}
	}
	message := n.message
	return schema.NewMessageType(message.Name, message.FullyQualifiedName,
		message.Documentation, message.Fields, nested, message.Extensions, message.Options)
}
