package storage

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

type memEntry struct {
	info    Info
	content []byte
}

// Memory implements Storage in memory for tests. Paths are kept in
// slash-normalized absolute form regardless of platform. Listings are
// returned sorted by name, so resolution order is deterministic.
//
// Safe for concurrent use by multiple goroutines.
type Memory struct {
	mu       sync.RWMutex
	entries  map[string]*memEntry
	statErrs map[string]error
}

// NewMemory creates an empty in-memory filesystem containing only the
// root directory "/".
func NewMemory() *Memory {
	m := &Memory{
		entries:  make(map[string]*memEntry),
		statErrs: make(map[string]error),
	}
	m.entries["/"] = &memEntry{info: Info{Name: "/", ModTime: time.Now(), IsDir: true}}
	return m
}

var _ Storage = (*Memory)(nil)

// norm converts any input path to the slash-normalized absolute form used
// as the map key.
func norm(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// AddFile adds a file, creating parent directories as needed.
func (m *Memory) AddFile(p, content string) {
	m.AddFileWithTime(p, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (m *Memory) AddFileWithTime(p, content string, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := norm(p)
	m.entries[abs] = &memEntry{
		info: Info{
			Name:    path.Base(abs),
			Size:    int64(len(content)),
			ModTime: modTime,
			IsDir:   false,
		},
		content: []byte(content),
	}
	m.ensureParents(abs)
}

// AddDir adds an (initially empty) directory, creating parents as needed.
func (m *Memory) AddDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := norm(p)
	m.entries[abs] = &memEntry{info: Info{Name: path.Base(abs), ModTime: time.Now(), IsDir: true}}
	m.ensureParents(abs)
}

// FailStat makes every subsequent Stat of p fail with ErrNotAccessible.
// Used to exercise the resolver's fail-fast contract.
func (m *Memory) FailStat(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statErrs[norm(p)] = ErrNotAccessible
}

func (m *Memory) ensureParents(abs string) {
	for dir := path.Dir(abs); ; dir = path.Dir(dir) {
		if _, ok := m.entries[dir]; ok {
			if dir == "/" {
				return
			}
		} else {
			m.entries[dir] = &memEntry{info: Info{Name: path.Base(dir), ModTime: time.Now(), IsDir: true}}
		}
		if dir == "/" {
			return
		}
	}
}

func (m *Memory) Exists(_ context.Context, p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[norm(p)]
	return ok, nil
}

func (m *Memory) Stat(_ context.Context, p string) (Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	abs := norm(p)
	if kind, ok := m.statErrs[abs]; ok {
		return Info{}, opError("stat", abs, kind, nil)
	}
	entry, ok := m.entries[abs]
	if !ok {
		return Info{}, opError("stat", abs, ErrNotAccessible, fs.ErrNotExist)
	}
	return entry.info, nil
}

func (m *Memory) List(_ context.Context, p string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	abs := norm(p)
	entry, ok := m.entries[abs]
	if !ok {
		return nil, opError("list", abs, ErrNotAccessible, fs.ErrNotExist)
	}
	if !entry.info.IsDir {
		return nil, opError("list", abs, ErrNotADirectory, nil)
	}

	var names []string
	for candidate := range m.entries {
		if candidate != abs && path.Dir(candidate) == abs {
			names = append(names, path.Base(candidate))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) ReadFile(_ context.Context, p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	abs := norm(p)
	entry, ok := m.entries[abs]
	if !ok {
		return nil, opError("read", abs, ErrNotAccessible, fs.ErrNotExist)
	}
	if entry.info.IsDir {
		return nil, opError("read", abs, ErrNotAFile, nil)
	}
	content := make([]byte, len(entry.content))
	copy(content, entry.content)
	return content, nil
}

func (m *Memory) WriteFile(_ context.Context, p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put("write", norm(p), data, false)
}

func (m *Memory) AppendFile(_ context.Context, p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put("append", norm(p), data, true)
}

// put enforces the write contract shared by WriteFile and AppendFile:
// the parent must already exist as a directory.
func (m *Memory) put(op, abs string, data []byte, grow bool) error {
	parent, ok := m.entries[path.Dir(abs)]
	if !ok || !parent.info.IsDir {
		return opError(op, abs, ErrNotADirectory, nil)
	}
	if existing, ok := m.entries[abs]; ok && existing.info.IsDir {
		return opError(op, abs, ErrNotAFile, nil)
	}

	var content []byte
	if grow {
		if existing, ok := m.entries[abs]; ok {
			content = append(content, existing.content...)
		}
	}
	content = append(content, data...)

	m.entries[abs] = &memEntry{
		info: Info{
			Name:    path.Base(abs),
			Size:    int64(len(content)),
			ModTime: time.Now(),
			IsDir:   false,
		},
		content: content,
	}
	return nil
}

func (m *Memory) MakeDirAll(_ context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := norm(p)
	if existing, ok := m.entries[abs]; ok {
		if !existing.info.IsDir {
			return opError("mkdir", abs, ErrNotADirectory, nil)
		}
		return nil
	}
	m.entries[abs] = &memEntry{info: Info{Name: path.Base(abs), ModTime: time.Now(), IsDir: true}}
	m.ensureParents(abs)
	return nil
}
