package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/duofm/duofm/internal/fsx"
	"github.com/duofm/duofm/internal/nav"
	"github.com/duofm/duofm/internal/ui/styles"
)

// pane couples one navigator with its cursor and scroll window. The cursor
// is clamped after every refresh so it always points at a real entry or -1
// for an empty directory.
type pane struct {
	nav    *nav.Navigator
	cursor int
	offset int
}

func newPane(n *nav.Navigator) *pane {
	return &pane{nav: n}
}

// selected returns the entry under the cursor, if any.
func (p *pane) selected() (fsx.Entry, bool) {
	entries := p.nav.Entries()
	if p.cursor < 0 || p.cursor >= len(entries) {
		return fsx.Entry{}, false
	}
	return entries[p.cursor], true
}

func (p *pane) moveCursor(delta int) {
	p.cursor += delta
	p.clamp()
}

func (p *pane) gotoTop()    { p.cursor = 0; p.clamp() }
func (p *pane) gotoBottom() { p.cursor = len(p.nav.Entries()) - 1; p.clamp() }

// clamp keeps the cursor inside the listing. Called after every refresh
// because mutations can shrink the listing under the cursor.
func (p *pane) clamp() {
	n := len(p.nav.Entries())
	if n == 0 {
		p.cursor = -1
		p.offset = 0
		return
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
}

// selectByName points the cursor at the entry with the given base name,
// used to follow a renamed or newly created entry.
func (p *pane) selectByName(name string) {
	for i, e := range p.nav.Entries() {
		if e.Name == name {
			p.cursor = i
			return
		}
	}
	p.clamp()
}

// refresh re-reads the pane's directory and re-clamps the cursor.
func (p *pane) refresh() error {
	err := p.nav.Refresh()
	p.clamp()
	return err
}

// render draws the pane body at the given inner size.
func (p *pane) render(st *styles.Styles, width, height int, active bool, marked map[string]bool) string {
	entries := p.nav.Entries()

	// Keep the cursor inside the visible window
	rows := height - 1 // one line for the title
	if rows < 1 {
		rows = 1
	}
	if p.cursor >= 0 && p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}

	var b strings.Builder
	title := truncatePath(p.nav.Current(), width)
	if active {
		b.WriteString(st.PaneTitle.Render(title))
	} else {
		b.WriteString(st.Status.Render(title))
	}
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(st.Status.Render("(empty)"))
	}

	end := p.offset + rows
	if end > len(entries) {
		end = len(entries)
	}
	for i := p.offset; i < end; i++ {
		e := entries[i]
		line := formatEntryLine(e, width)

		style := lipgloss.NewStyle()
		switch {
		case active && i == p.cursor:
			style = st.Cursor
		case marked[e.Path]:
			style = st.Marked
		case e.IsDir:
			style = st.Dir
		}
		b.WriteString(style.Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	frame := st.InactivePane
	if active {
		frame = st.ActivePane
	}
	return frame.Width(width).Height(height).Render(b.String())
}

const ellipsis = "…"

// formatEntryLine lays out name, size and mtime in fixed columns. Widths are
// measured in terminal cells, not bytes, so wide runes stay aligned.
func formatEntryLine(e fsx.Entry, width int) string {
	name := e.Name
	if e.IsDir {
		name += "/"
	}

	meta := fmt.Sprintf("%8s  %s", e.FormatSize(), e.FormatModTime())
	nameWidth := width - ansi.StringWidth(meta) - 1
	if nameWidth < 8 {
		return ansi.Truncate(name, width, ellipsis)
	}
	name = ansi.Truncate(name, nameWidth, ellipsis)
	return name + strings.Repeat(" ", nameWidth-ansi.StringWidth(name)) + " " + meta
}

// truncatePath fits a path into width cells keeping the tail, which carries
// the most recognizable part of a long path.
func truncatePath(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && ansi.StringWidth(string(r)) > width-1 {
		r = r[1:]
	}
	return ellipsis + string(r)
}
