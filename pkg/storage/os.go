package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// OS implements Storage over the local filesystem. All methods are thin
// wrappers around the os package; the context is accepted for interface
// compatibility but local syscalls are not cancellable.
type OS struct{}

// NewOS creates a new local-filesystem Storage.
func NewOS() *OS {
	return &OS{}
}

var _ Storage = (*OS)(nil)

func (*OS) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, opError("exists", path, ErrNotAccessible, err)
}

func (*OS) Stat(_ context.Context, path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, opError("stat", path, ErrNotAccessible, err)
	}
	return Info{
		Name:    fi.Name(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}, nil
}

func (*OS) List(_ context.Context, path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, opError("list", path, ErrNotAccessible, err)
	}
	if !fi.IsDir() {
		return nil, opError("list", path, ErrNotADirectory, nil)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, opError("list", path, ErrNotAccessible, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (*OS) ReadFile(_ context.Context, path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, opError("read", path, ErrNotAccessible, err)
	}
	if fi.IsDir() {
		return nil, opError("read", path, ErrNotAFile, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, opError("read", path, ErrNotAccessible, err)
	}
	return data, nil
}

// WriteFile publishes the new content atomically: the data is written to a
// uniquely named temp file in the target directory, then renamed over the
// destination.
func (*OS) WriteFile(_ context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := requireDir("write", path, dir); err != nil {
		return err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return opError("write", path, ErrNotAccessible, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return opError("write", path, ErrNotAccessible, err)
	}
	return nil
}

func (*OS) AppendFile(_ context.Context, path string, data []byte) error {
	if err := requireDir("append", path, filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return opError("append", path, ErrNotAccessible, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return opError("append", path, ErrNotAccessible, err)
	}
	if err := f.Close(); err != nil {
		return opError("append", path, ErrNotAccessible, err)
	}
	return nil
}

func (*OS) MakeDirAll(_ context.Context, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return opError("mkdir", path, ErrNotADirectory, err)
	}
	return nil
}

// requireDir enforces the write contract: the parent must already exist
// as a directory.
func requireDir(op, path, dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return opError(op, path, ErrNotADirectory, err)
	}
	return nil
}
