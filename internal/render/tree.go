// Package render turns a resolved fstree.Node graph into styled terminal
// output for the CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/zinzan-vdm/fs-simple/pkg/fstree"
)

// Renderer formats node trees with box-drawing branches. Styling is
// decided at construction; a colorless Renderer emits plain text suitable
// for pipes and tests.
type Renderer struct {
	styles styles
	long   bool
}

// NewRenderer creates a Renderer. color enables the lipgloss palette;
// long appends size and modification time to every entry.
func NewRenderer(color, long bool) *Renderer {
	s := plainStyles()
	if color {
		s = coloredStyles()
	}
	return &Renderer{styles: s, long: long}
}

// Tree renders the subtree rooted at node. The root line shows the full
// path; descendants show their base names under box-drawing branches.
func (r *Renderer) Tree(node fstree.Node) string {
	var b strings.Builder
	b.WriteString(r.label(node, node.Path().String()))
	b.WriteByte('\n')
	if dir, ok := node.(*fstree.Dir); ok {
		r.writeChildren(&b, dir, "")
	}
	return b.String()
}

func (r *Renderer) writeChildren(b *strings.Builder, dir *fstree.Dir, indent string) {
	children := dir.Children()
	for i, child := range children {
		branch, childIndent := "├── ", indent+"│   "
		if i == len(children)-1 {
			branch, childIndent = "└── ", indent+"    "
		}
		b.WriteString(r.styles.branch.Render(indent + branch))
		b.WriteString(r.label(child, child.Path().Base()))
		b.WriteByte('\n')
		if sub, ok := child.(*fstree.Dir); ok {
			r.writeChildren(b, sub, childIndent)
		}
	}
}

func (r *Renderer) label(node fstree.Node, name string) string {
	info := node.Info()
	style := r.styles.file
	if info.IsDir {
		style = r.styles.dir
	}
	label := style.Render(name)
	if r.long && !info.IsDir {
		label += " " + r.styles.meta.Render(fmt.Sprintf("(%s, %s)", humanSize(info.Size), info.ModTime.Format("2006-01-02 15:04")))
	}
	return label
}

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}
