package font

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranspose(t *testing.T) {
	tests := []struct {
		name  string
		rows  []byte
		width int
		want  []byte
	}{
		{"empty", make([]byte, 8), 5, []byte{0, 0, 0, 0, 0}},
		{"top left", []byte{0b10000, 0, 0, 0, 0, 0, 0, 0}, 5, []byte{0x01, 0, 0, 0, 0}},
		{"bottom right", []byte{0, 0, 0, 0, 0, 0, 0, 0b00001}, 5, []byte{0, 0, 0, 0, 0x80}},
		{"full row", []byte{0, 0, 0b11111, 0, 0, 0, 0, 0}, 5, []byte{0x04, 0x04, 0x04, 0x04, 0x04}},
		{"full column", []byte{0b001, 0b001, 0b001, 0b001, 0b001, 0b001, 0b001, 0b001}, 3, []byte{0, 0, 0xFF}},
		{"diagonal", []byte{0b1000, 0b0100, 0b0010, 0b0001}, 4, []byte{0x01, 0x02, 0x04, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transpose(tt.rows, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Transpose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlipVertical(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x01, 0x80},
		{0x80, 0x01},
		{0x0F, 0xF0},
		{0x12, 0x48},
		{0xA5, 0xA5},
		{0x7F, 0xFE},
	}

	for _, tt := range tests {
		if got := FlipVertical(tt.in); got != tt.want {
			t.Errorf("FlipVertical(0x%02X) = 0x%02X, want 0x%02X", tt.in, got, tt.want)
		}
	}
	for b := 0; b < 256; b++ {
		if got := FlipVertical(FlipVertical(byte(b))); got != byte(b) {
			t.Errorf("FlipVertical(FlipVertical(0x%02X)) = 0x%02X", b, got)
		}
	}
}

func TestNewLayoutsAgree(t *testing.T) {
	// The same 'T' authored three ways.
	sources := map[Layout][]byte{
		RowMajor:            {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000},
		ColumnMajor:         {0x01, 0x01, 0x7F, 0x01, 0x01},
		ColumnMajorBottomUp: {0x80, 0x80, 0xFE, 0x80, 0x80},
	}
	want := Glyph{0x01, 0x01, 0x7F, 0x01, 0x01}

	for layout, src := range sources {
		t.Run(layout.String(), func(t *testing.T) {
			tbl, err := New(5, layout, map[rune][]byte{'T': src})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if diff := cmp.Diff(want, tbl.Lookup('T')); diff != "" {
				t.Errorf("Lookup('T') mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		layout  Layout
		src     map[rune][]byte
		wantErr string
	}{
		{"zero width", 0, RowMajor, nil, "width"},
		{"too wide", 9, ColumnMajor, nil, "width"},
		{"short rows", 5, RowMajor, map[rune][]byte{'A': {1, 2, 3}}, "got 3 rows"},
		{"row overflow", 5, RowMajor, map[rune][]byte{'A': {0b100000, 0, 0, 0, 0, 0, 0, 0}}, "outside 5 columns"},
		{"column count", 5, ColumnMajor, map[rune][]byte{'A': {1, 2}}, "got 2 columns"},
		{"bottom-up column count", 3, ColumnMajorBottomUp, map[rune][]byte{'A': {1, 2, 3, 4}}, "got 4 columns"},
		{"lowercase key", 5, ColumnMajor, map[rune][]byte{'a': {1, 2, 3, 4, 5}}, "upper case"},
		{"unknown layout", 5, Layout(42), map[rune][]byte{'A': {1, 2, 3, 4, 5}}, "unknown layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.layout, tt.src)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tbl := Default()

	if tbl.Width() != 5 {
		t.Errorf("Width() = %d, want 5", tbl.Width())
	}

	if diff := cmp.Diff(Glyph{0x01, 0x01, 0x7F, 0x01, 0x01}, tbl.Lookup('T')); diff != "" {
		t.Errorf("Lookup('T') mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Glyph{0x7F, 0x40, 0x40, 0x40, 0x40}, tbl.Lookup('L')); diff != "" {
		t.Errorf("Lookup('L') mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tbl.Lookup('E'), tbl.Lookup('e')); diff != "" {
		t.Errorf("Lookup should fold case (-upper +lower):\n%s", diff)
	}

	for _, r := range []rune{'~', 'é', '\n', 'ж'} {
		if tbl.Has(r) {
			t.Errorf("Has(%q) = true, want false", r)
		}
		if diff := cmp.Diff(Glyph{0, 0, 0, 0, 0}, tbl.Lookup(r)); diff != "" {
			t.Errorf("Lookup(%q) should be blank (-want +got):\n%s", r, diff)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	tbl := Default()
	g := tbl.Lookup('A')
	g[0] = 0xFF
	if tbl.Lookup('A')[0] == 0xFF {
		t.Error("mutating a looked up glyph changed the table")
	}
}

func TestDefaultCoverage(t *testing.T) {
	tbl := Default()
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,!?-+=:;'\"/()_#%*<>@&" {
		if !tbl.Has(r) {
			t.Errorf("Default() is missing %q", r)
		}
	}
	for r, g := range tbl.glyphs {
		if len(g) != 5 {
			t.Errorf("glyph %q has %d columns, want 5", r, len(g))
		}
		if r != ' ' && r != '_' {
			for _, col := range g {
				if col&0x80 != 0 {
					t.Errorf("glyph %q lights the descender row", r)
					break
				}
			}
		}
	}
}

func TestAppendGlyph(t *testing.T) {
	tbl := Default()
	dst := []byte{0xAA}
	dst = tbl.AppendGlyph(dst, 'T')
	dst = tbl.AppendGlyph(dst, '~')
	want := []byte{0xAA, 0x01, 0x01, 0x7F, 0x01, 0x01, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("AppendGlyph() mismatch (-want +got):\n%s", diff)
	}
}
