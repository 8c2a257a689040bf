package fstree

import "github.com/zinzan-vdm/fs-simple/pkg/fspath"

// Flatten returns every path in the tree in pre-order: the node itself
// first, then each child's flattened sequence. A leaf or an empty
// directory yields just its own path.
func Flatten(node Node) []fspath.Path {
	paths := []fspath.Path{node.Path()}
	if dir, ok := node.(*Dir); ok {
		for _, child := range dir.Children() {
			paths = append(paths, Flatten(child)...)
		}
	}
	return paths
}

// Files returns the paths of every leaf in the tree. Directories are
// never emitted, not even empty ones; a leaf root yields itself.
func Files(node Node) []fspath.Path {
	switch n := node.(type) {
	case *File:
		return []fspath.Path{n.Path()}
	case *Dir:
		var paths []fspath.Path
		for _, child := range n.Children() {
			paths = append(paths, Files(child)...)
		}
		return paths
	}
	return nil
}

// Directories returns the paths of every non-empty directory strictly
// below node. The node itself is never emitted (traversal starts at its
// children), empty directories are excluded, and leaves yield nothing —
// a deliberate asymmetry with Files, which never excludes leaves.
func Directories(node Node) []fspath.Path {
	dir, ok := node.(*Dir)
	if !ok {
		return nil
	}
	var paths []fspath.Path
	for _, child := range dir.Children() {
		paths = append(paths, directories(child)...)
	}
	return paths
}

func directories(node Node) []fspath.Path {
	dir, ok := node.(*Dir)
	if !ok || len(dir.Children()) == 0 {
		return nil
	}
	paths := []fspath.Path{dir.Path()}
	for _, child := range dir.Children() {
		paths = append(paths, directories(child)...)
	}
	return paths
}
