package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemory_AddFileCreatesParents(t *testing.T) {
	m := NewMemory()
	m.AddFile("/a/b/c.txt", "content")
	ctx := context.Background()

	for _, dir := range []string{"/", "/a", "/a/b"} {
		info, err := m.Stat(ctx, dir)
		if err != nil {
			t.Fatalf("Stat(%q) error = %v", dir, err)
		}
		if !info.IsDir {
			t.Errorf("Stat(%q).IsDir = false, want true", dir)
		}
	}

	data, err := m.ReadFile(ctx, "/a/b/c.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "content" {
		t.Errorf("ReadFile() = %q, want %q", string(data), "content")
	}
}

func TestMemory_ListSortedDirectChildren(t *testing.T) {
	m := NewMemory()
	m.AddFile("/a/z.txt", "z")
	m.AddFile("/a/b/nested.txt", "n")
	m.AddFile("/a/a.txt", "a")

	names, err := m.List(context.Background(), "/a")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"a.txt", "b", "z.txt"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMemory_ListEmptyDirectory(t *testing.T) {
	m := NewMemory()
	m.AddDir("/empty")

	names, err := m.List(context.Background(), "/empty")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List(empty) = %v, want no entries", names)
	}
}

func TestMemory_ErrorTaxonomy(t *testing.T) {
	m := NewMemory()
	m.AddFile("/a/file.txt", "x")
	ctx := context.Background()

	if _, err := m.Stat(ctx, "/missing"); !errors.Is(err, ErrNotAccessible) {
		t.Errorf("Stat(missing) error = %v, want ErrNotAccessible", err)
	}
	if _, err := m.List(ctx, "/a/file.txt"); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("List(file) error = %v, want ErrNotADirectory", err)
	}
	if _, err := m.ReadFile(ctx, "/a"); !errors.Is(err, ErrNotAFile) {
		t.Errorf("ReadFile(dir) error = %v, want ErrNotAFile", err)
	}
	if err := m.WriteFile(ctx, "/nowhere/out.txt", []byte("x")); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("WriteFile(missing parent) error = %v, want ErrNotADirectory", err)
	}
}

func TestMemory_WriteAndAppend(t *testing.T) {
	m := NewMemory()
	m.AddDir("/logs")
	ctx := context.Background()

	if err := m.WriteFile(ctx, "/logs/app.log", []byte("one\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := m.AppendFile(ctx, "/logs/app.log", []byte("two\n")); err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}

	data, err := m.ReadFile(ctx, "/logs/app.log")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("content = %q, want %q", string(data), "one\ntwo\n")
	}

	info, _ := m.Stat(ctx, "/logs/app.log")
	if info.Size != 8 {
		t.Errorf("Size = %d, want 8", info.Size)
	}
}

func TestMemory_MakeDirAll(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.MakeDirAll(ctx, "/x/y/z"); err != nil {
		t.Fatalf("MakeDirAll() error = %v", err)
	}
	if err := m.MakeDirAll(ctx, "/x/y/z"); err != nil {
		t.Errorf("MakeDirAll(existing) error = %v", err)
	}

	m.AddFile("/x/file", "f")
	if err := m.MakeDirAll(ctx, "/x/file"); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("MakeDirAll(file) error = %v, want ErrNotADirectory", err)
	}
}

func TestMemory_FailStat(t *testing.T) {
	m := NewMemory()
	m.AddFile("/a/file.txt", "x")
	m.FailStat("/a/file.txt")

	_, err := m.Stat(context.Background(), "/a/file.txt")
	if !errors.Is(err, ErrNotAccessible) {
		t.Errorf("Stat(failing) error = %v, want ErrNotAccessible", err)
	}
}

func TestMemory_NormalizesKeys(t *testing.T) {
	m := NewMemory()
	m.AddFile("a//b/./c.txt", "x")

	ok, err := m.Exists(context.Background(), "/a/b/c.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !ok {
		t.Error("Exists(normalized form) = false, want true")
	}
}
