package ui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/duofm/duofm/internal/fsx"
)

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		width int
		want  string
	}{
		{"fits", "/home/user", 20, "/home/user"},
		{"keeps tail", "/home/user/projects/duofm", 10, "…cts/duofm"},
		{"zero width", "/home/user", 0, ""},
		{"wide runes not split", "/home/日本語のファイル名", 8, "…イル名"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncatePath(tt.path, tt.width)
			if got != tt.want {
				t.Errorf("truncatePath(%q, %d) = %q, want %q", tt.path, tt.width, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncatePath produced invalid UTF-8: %q", got)
			}
			if w := ansi.StringWidth(got); w > tt.width {
				t.Errorf("truncatePath width = %d cells, want <= %d", w, tt.width)
			}
		})
	}
}

func TestFormatEntryLineCellWidths(t *testing.T) {
	mod := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	narrow := fsx.Entry{Name: "aaaaaaaaaaaaaaaaaaaaaaaa.txt", Size: 1234, ModTime: mod}
	wide := fsx.Entry{Name: "日本語のファイル名がとても長い.txt", Size: 1234, ModTime: mod}

	const width = 44
	a := formatEntryLine(narrow, width)
	b := formatEntryLine(wide, width)

	if !utf8.ValidString(b) {
		t.Fatalf("wide name was split mid-rune: %q", b)
	}
	if wa, wb := ansi.StringWidth(a), ansi.StringWidth(b); wa != wb {
		t.Errorf("column misalignment: narrow = %d cells, wide = %d cells", wa, wb)
	}

	// Metadata columns line up when names differ in display width
	if ia, ib := strings.LastIndex(a, mod.Format("2006-01-02")), strings.LastIndex(b, mod.Format("2006-01-02")); ia < 0 || ib < 0 {
		t.Fatalf("mtime column missing: %q / %q", a, b)
	}
}
