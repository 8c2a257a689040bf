package fstree

import (
	"github.com/zinzan-vdm/fs-simple/pkg/fspath"
	"github.com/zinzan-vdm/fs-simple/pkg/storage"
)

// Node is one resolved filesystem entry. It is a sealed variant: the only
// implementations are *File and *Dir, so consumers can type-switch
// exhaustively.
type Node interface {
	// Path returns the entry's path as resolved.
	Path() fspath.Path

	// Info returns the stat metadata captured during resolution.
	Info() storage.Info

	node()
}

// File is a leaf entry. It never has children.
type File struct {
	path fspath.Path
	info storage.Info
}

// NewFile creates a leaf node.
func NewFile(path fspath.Path, info storage.Info) *File {
	return &File{path: path, info: info}
}

func (f *File) Path() fspath.Path  { return f.path }
func (f *File) Info() storage.Info { return f.info }
func (*File) node()                {}

// Dir is a directory entry with its fully resolved children, in the order
// storage listed them. An empty directory has a nil Children slice.
type Dir struct {
	path     fspath.Path
	info     storage.Info
	children []Node
}

// NewDir creates a directory node over its resolved children.
func NewDir(path fspath.Path, info storage.Info, children []Node) *Dir {
	return &Dir{path: path, info: info, children: children}
}

func (d *Dir) Path() fspath.Path  { return d.path }
func (d *Dir) Info() storage.Info { return d.info }
func (*Dir) node()                {}

// Children returns the directory's entries in listing order.
func (d *Dir) Children() []Node { return d.children }

var (
	_ Node = (*File)(nil)
	_ Node = (*Dir)(nil)
)
