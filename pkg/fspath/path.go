package fspath

import (
	"os"
	"path/filepath"
	"strings"
)

// Path is an immutable, normalized filesystem path.
// The zero value is usable; it renders as the empty string, whereas
// New("") normalizes to ".".
type Path struct {
	raw string
}

// New creates a Path from a raw string. The input is normalized with
// filepath.Clean after converting slashes to the platform separator, so
// redundant separators and "."/".." segments are collapsed. Normalization
// is idempotent: New(p.String()) equals p.
func New(raw string) Path {
	return Path{raw: filepath.Clean(filepath.FromSlash(raw))}
}

// String returns the normalized path string.
func (p Path) String() string {
	return p.raw
}

// Join appends the given segments to the path, producing a new normalized
// Path equivalent to the platform path-join of the operands in order.
func (p Path) Join(parts ...string) Path {
	return Path{raw: filepath.Join(append([]string{p.raw}, parts...)...)}
}

// JoinPath is Join for Path operands.
func (p Path) JoinPath(parts ...Path) Path {
	segs := make([]string, 0, len(parts)+1)
	segs = append(segs, p.raw)
	for _, part := range parts {
		segs = append(segs, part.raw)
	}
	return Path{raw: filepath.Join(segs...)}
}

// Prepend joins prefix in front of the path.
func (p Path) Prepend(prefix string) Path {
	return Path{raw: filepath.Join(prefix, p.raw)}
}

// PrependPath is Prepend for a Path operand.
func (p Path) PrependPath(prefix Path) Path {
	return Path{raw: filepath.Join(prefix.raw, p.raw)}
}

// Pop removes the trailing base-name segment, and the single separator
// preceding it when present. If the base name does not literally appear as
// a suffix of the underlying string (possible after Replace or other raw
// surgery), the Path is returned unchanged. The result is not re-cleaned;
// callers composing further should go through New.
func (p Path) Pop() Path {
	base := filepath.Base(p.raw)
	if rest, ok := strings.CutSuffix(p.raw, string(filepath.Separator)+base); ok {
		return Path{raw: rest}
	}
	if rest, ok := strings.CutSuffix(p.raw, base); ok {
		return Path{raw: rest}
	}
	return p
}

// Replace substitutes the first occurrence of old with new directly on the
// underlying string. No path-aware validation or re-normalization is
// performed; the caller owns the result.
func (p Path) Replace(old, new string) Path {
	return Path{raw: strings.Replace(p.raw, old, new, 1)}
}

// Abs returns the path resolved against the current working directory.
// An already-absolute path is returned as is. Resolution failures (the
// working directory being unavailable) degrade to returning p unchanged.
func (p Path) Abs() Path {
	if filepath.IsAbs(p.raw) {
		return p
	}
	abs, err := filepath.Abs(p.raw)
	if err != nil {
		return p
	}
	return Path{raw: abs}
}

// Rel returns the path expressed relative to the current working
// directory, or p unchanged when that cannot be computed.
func (p Path) Rel() Path {
	wd, err := os.Getwd()
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(wd, p.Abs().raw)
	if err != nil {
		return p
	}
	return Path{raw: rel}
}

// Is reports whether the absolute forms of p and other are textually
// identical.
func (p Path) Is(other Path) bool {
	return p.Abs().raw == other.Abs().raw
}

// Inside reports whether p is a strict descendant of other, comparing
// absolute forms. A path is never inside itself, and the test is
// separator-boundary aware: "/ab" is not inside "/a".
func (p Path) Inside(other Path) bool {
	a := p.Abs().raw
	b := other.Abs().raw
	if a == b {
		return false
	}
	prefix := b
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(a, prefix)
}

// RelativeTo strips other's absolute form, plus one separator, from the
// front of p's absolute form. When other is not actually a prefix the
// substitution is a no-op and p's absolute form is returned unchanged —
// a documented sharp edge, deliberately not corrected here.
func (p Path) RelativeTo(other Path) Path {
	a := p.Abs().raw
	prefix := other.Abs().raw
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if rest, ok := strings.CutPrefix(a, prefix); ok {
		return Path{raw: rest}
	}
	return Path{raw: a}
}

// Dir returns the directory part of the path.
func (p Path) Dir() string {
	return filepath.Dir(p.raw)
}

// Base returns the trailing base-name segment.
func (p Path) Base() string {
	return filepath.Base(p.raw)
}

// Ext returns the extension of the base name, including the leading dot,
// or "" when there is none.
func (p Path) Ext() string {
	return filepath.Ext(p.raw)
}
