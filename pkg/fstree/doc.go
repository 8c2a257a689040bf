// Package fstree resolves a directory subtree into an in-memory tree and
// provides pure queries over the result.
//
// A Resolver walks the tree through a storage.Storage, overlapping the
// latency of sibling stat calls and sibling directory resolutions within
// each directory level. Resolution is all-or-nothing: the first storage
// failure anywhere in the subtree aborts the whole call and no partial
// tree is returned.
//
// The resulting Node graph is a sealed two-variant tree (File, Dir), so a
// file structurally cannot carry children. Flatten, Files, and
// Directories traverse an already-built graph and never touch storage.
package fstree
