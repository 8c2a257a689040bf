package fspath

// Bundle is a point-in-time snapshot of every derived form of a Path.
// It is a plain value, not a live view: mutating nothing, tracking nothing.
type Bundle struct {
	Path     string
	Relative string
	Absolute string
	Dirname  string
	Basename string
	Extname  string
}

// Bundle computes all derived forms of the path at once.
func (p Path) Bundle() Bundle {
	return Bundle{
		Path:     p.String(),
		Relative: p.Rel().String(),
		Absolute: p.Abs().String(),
		Dirname:  p.Dir(),
		Basename: p.Base(),
		Extname:  p.Ext(),
	}
}
