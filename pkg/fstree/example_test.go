package fstree_test

import (
	"context"
	"fmt"
	"log"

	"github.com/zinzan-vdm/fs-simple/pkg/fspath"
	"github.com/zinzan-vdm/fs-simple/pkg/fstree"
	"github.com/zinzan-vdm/fs-simple/pkg/storage"
)

// Example_resolveAndQuery demonstrates resolving a subtree and running the
// three queries over the result.
func Example_resolveAndQuery() {
	store := storage.NewMemory()
	store.AddFile("/project/readme.md", "# readme")
	store.AddFile("/project/src/main.go", "package main")
	store.AddDir("/project/build")

	resolver := fstree.NewResolver(store)
	tree, err := resolver.Resolve(context.Background(), fspath.New("/project"))
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range fstree.Files(tree) {
		fmt.Println("file:", p)
	}
	for _, p := range fstree.Directories(tree) {
		fmt.Println("dir: ", p)
	}

	// Output:
	// file: /project/readme.md
	// file: /project/src/main.go
	// dir:  /project/src
}
