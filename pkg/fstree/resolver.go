package fstree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zinzan-vdm/fs-simple/pkg/fspath"
	"github.com/zinzan-vdm/fs-simple/pkg/storage"
)

// Resolver builds Node trees by querying a Storage. Within a directory
// level all child stats run concurrently, then all child-directory
// resolutions run concurrently; the level joins before the parent node is
// assembled, so outstanding work stays proportional to the directory
// frontier rather than the whole tree.
//
// Safe for concurrent use as long as the underlying Storage is.
type Resolver struct {
	store storage.Storage
	log   Logger
}

// NewResolver creates a resolver over the given storage.
// Panics if store is nil.
func NewResolver(store storage.Storage) *Resolver {
	return NewResolverWithLogger(store, NopLogger{})
}

// NewResolverWithLogger creates a resolver that traces per-level fan-out
// to the given logger. Panics if store or log is nil.
func NewResolverWithLogger(store storage.Storage, log Logger) *Resolver {
	if store == nil {
		panic("store cannot be nil")
	}
	if log == nil {
		panic("log cannot be nil")
	}
	return &Resolver{store: store, log: log}
}

// Resolve builds the full tree rooted at root. The root path is
// absolutized first, so every node path and every error names an absolute
// path. Any storage failure at any level aborts the whole call: there is
// no partial tree, no retry, and the error names the offending path and
// operation.
func (r *Resolver) Resolve(ctx context.Context, root fspath.Path) (Node, error) {
	abs := root.Abs()

	ok, err := r.store.Exists(ctx, abs.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &storage.OpError{Op: "resolve", Path: abs.String(), Kind: storage.ErrNotAccessible}
	}

	info, err := r.store.Stat(ctx, abs.String())
	if err != nil {
		return nil, err
	}

	node, err := r.resolve(ctx, abs, info)
	if err != nil {
		r.log.Error("resolve %s failed: %v", abs, err)
		return nil, err
	}
	return node, nil
}

// resolve handles one entry whose stat already succeeded, recursing into
// directories.
func (r *Resolver) resolve(ctx context.Context, path fspath.Path, info storage.Info) (Node, error) {
	if !info.IsDir {
		return NewFile(path, info), nil
	}

	names, err := r.store.List(ctx, path.String())
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return NewDir(path, info, nil), nil
	}

	r.log.Verbose("resolving %d entries under %s", len(names), path)

	// Stat every child of this level concurrently; first failure wins
	// and the level is abandoned.
	infos := make([]storage.Info, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		child := path.Join(name)
		g.Go(func() error {
			childInfo, err := r.store.Stat(gctx, child.String())
			if err != nil {
				return err
			}
			infos[i] = childInfo
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Recurse into child directories concurrently. Children are indexed
	// by listing position, so ordering never depends on completion order.
	children := make([]Node, len(names))
	g, gctx = errgroup.WithContext(ctx)
	for i, name := range names {
		child := path.Join(name)
		childInfo := infos[i]
		if !childInfo.IsDir {
			children[i] = NewFile(child, childInfo)
			continue
		}
		g.Go(func() error {
			node, err := r.resolve(gctx, child, childInfo)
			if err != nil {
				return err
			}
			children[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewDir(path, info, children), nil
}
