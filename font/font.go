// Package font holds the glyph tables used to render text on the LED matrix.
//
// Glyphs are stored in the display's column-major form: one byte per glyph
// column, bit i lighting row i, row 0 at the top. Tables may be authored in
// another orientation; New normalizes them once through a single transform
// path chosen by the table's Layout.
package font

import (
	"errors"
	"fmt"
	"sync"
	"unicode"
)

// Height is the number of rows of every glyph.
const Height = 8

// Layout describes how the source bitmaps of a table are authored.
type Layout int

const (
	// RowMajor sources list Height row words, top row first. Column c of a
	// row is bit width-1-c, so binary literals read like the glyph.
	RowMajor Layout = iota
	// ColumnMajor sources list width column words, leftmost first, with the
	// top row at bit 0. This is the canonical form.
	ColumnMajor
	// ColumnMajorBottomUp sources list width column words with the bottom
	// row at bit 0.
	ColumnMajorBottomUp
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	case ColumnMajorBottomUp:
		return "ColumnMajorBottomUp"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Glyph is a canonical column-major bitmap.
type Glyph []byte

// Table maps characters to glyphs of a fixed width.
type Table struct {
	width  int
	glyphs map[rune]Glyph
	blank  Glyph
}

// New normalizes src into a Table of glyphs width columns wide.
//
// Lowercase keys are rejected since lookups fold to upper case.
func New(width int, layout Layout, src map[rune][]byte) (*Table, error) {
	if width <= 0 || width > 8 {
		return nil, errors.New("font: width must be between 1 and 8")
	}
	t := &Table{
		width:  width,
		glyphs: make(map[rune]Glyph, len(src)),
		blank:  make(Glyph, width),
	}
	for r, data := range src {
		if unicode.IsLower(r) {
			return nil, fmt.Errorf("font: glyph %q must be upper case", r)
		}
		g, err := normalize(width, layout, data)
		if err != nil {
			return nil, fmt.Errorf("font: glyph %q: %w", r, err)
		}
		t.glyphs[r] = g
	}
	return t, nil
}

func normalize(width int, layout Layout, data []byte) (Glyph, error) {
	switch layout {
	case RowMajor:
		if len(data) != Height {
			return nil, fmt.Errorf("got %d rows, want %d", len(data), Height)
		}
		for i, row := range data {
			if int(row) >= 1<<uint(width) {
				return nil, fmt.Errorf("row %d has bits outside %d columns", i, width)
			}
		}
		return Transpose(data, width), nil
	case ColumnMajor, ColumnMajorBottomUp:
		if len(data) != width {
			return nil, fmt.Errorf("got %d columns, want %d", len(data), width)
		}
		g := make(Glyph, width)
		for i, col := range data {
			if layout == ColumnMajorBottomUp {
				col = FlipVertical(col)
			}
			g[i] = col
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown layout %v", layout)
}

// Width returns the number of columns of every glyph in the table.
func (t *Table) Width() int {
	return t.width
}

// Has reports whether the table defines a glyph for r.
func (t *Table) Has(r rune) bool {
	_, ok := t.glyphs[unicode.ToUpper(r)]
	return ok
}

// Lookup returns a copy of the glyph for r, or a blank glyph when r is not in
// the table.
func (t *Table) Lookup(r rune) Glyph {
	return Glyph(t.AppendGlyph(nil, r))
}

// AppendGlyph appends the columns of the glyph for r to dst.
func (t *Table) AppendGlyph(dst []byte, r rune) []byte {
	g, ok := t.glyphs[unicode.ToUpper(r)]
	if !ok {
		g = t.blank
	}
	return append(dst, g...)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in 5x8 table covering A-Z, 0-9, space and common
// punctuation.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(5, RowMajor, latin5x8)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
