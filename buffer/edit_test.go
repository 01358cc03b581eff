package buffer

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestDocument_NewSplitsLines(t *testing.T) {
	d := New("a\r\nb\n\nc\n", Options{})
	if got, want := d.Lines(), []string{"a", "b", "", "c"}; !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if d.IsDirty() {
		t.Fatalf("fresh document is dirty")
	}
	if got := New("", Options{}).Len(); got != 0 {
		t.Fatalf("empty text len=%d, want 0", got)
	}
}

func TestDocument_RowsToFlatText(t *testing.T) {
	d := New("ab\n\ncd", Options{})
	if got, want := string(d.RowsToFlatText()), "ab\n\ncd\n"; got != want {
		t.Fatalf("flat=%q, want %q", got, want)
	}
	if got := New("", Options{}).RowsToFlatText(); len(got) != 0 {
		t.Fatalf("empty flat=%q", got)
	}
}

func TestDocument_InsertChar(t *testing.T) {
	d := New("ac", Options{})
	d.SetCursor(Point{Row: 0, Col: 1})
	d.InsertChar('b')
	if got, want := d.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Point{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !d.IsDirty() {
		t.Fatalf("expected dirty after insert")
	}
}

func TestDocument_InsertChar_OnVirtualLineAppendsRow(t *testing.T) {
	d := New("a", Options{})
	d.SetCursor(Point{Row: 1, Col: 0})
	d.InsertChar('z')
	if got, want := d.Lines(), []string{"a", "z"}; !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Point{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	empty := New("", Options{})
	empty.InsertChar('x')
	if got, want := empty.Lines(), []string{"x"}; !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	checkRowInvariants(t, d)
}

func TestDocument_DeleteChar(t *testing.T) {
	cases := []struct {
		name       string
		lines      []string
		at         Point
		wantLines  []string
		wantCursor Point
	}{
		{
			name:       "mid-row",
			lines:      []string{"abc"},
			at:         Point{Row: 0, Col: 2},
			wantLines:  []string{"ac"},
			wantCursor: Point{Row: 0, Col: 1},
		},
		{
			name:       "join-rows",
			lines:      []string{"hello", "world"},
			at:         Point{Row: 1, Col: 0},
			wantLines:  []string{"helloworld"},
			wantCursor: Point{Row: 0, Col: 5},
		},
		{
			name:       "join-empty-row",
			lines:      []string{"a", "", "b"},
			at:         Point{Row: 1, Col: 0},
			wantLines:  []string{"a", "b"},
			wantCursor: Point{Row: 0, Col: 1},
		},
		{
			name:       "start-of-document",
			lines:      []string{"abc"},
			at:         Point{Row: 0, Col: 0},
			wantLines:  []string{"abc"},
			wantCursor: Point{Row: 0, Col: 0},
		},
		{
			name:       "virtual-line",
			lines:      []string{"abc"},
			at:         Point{Row: 1, Col: 0},
			wantLines:  []string{"abc"},
			wantCursor: Point{Row: 1, Col: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDoc(t, nil, tc.lines...)
			d.SetCursor(tc.at)
			d.DeleteChar()
			if got := d.Lines(); !slices.Equal(got, tc.wantLines) {
				t.Fatalf("lines=%q, want %q", got, tc.wantLines)
			}
			if got := d.Cursor(); got != tc.wantCursor {
				t.Fatalf("cursor=%v, want %v", got, tc.wantCursor)
			}
			checkRowInvariants(t, d)
		})
	}
}

func TestDocument_DeleteChar_NoopKeepsClean(t *testing.T) {
	d := New("abc", Options{})
	d.DeleteChar()
	if d.IsDirty() {
		t.Fatalf("no-op backspace marked document dirty")
	}
}

func TestDocument_DeleteForward(t *testing.T) {
	d := New("ab\ncd", Options{})
	d.SetCursor(Point{Row: 0, Col: 0})
	d.DeleteForward()
	if got, want := d.Text(), "b\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Point{Row: 0, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	d.MoveCursor(KeyEnd)
	d.DeleteForward()
	if got, want := d.Text(), "bcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Point{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	d.MoveCursor(KeyEnd)
	d.DeleteForward()
	if got, want := d.Text(), "bcd"; got != want {
		t.Fatalf("delete at end changed text to %q", got)
	}
}

func TestDocument_InsertNewline(t *testing.T) {
	cases := []struct {
		name       string
		lines      []string
		at         Point
		wantLines  []string
		wantCursor Point
	}{
		{
			name:       "split-middle",
			lines:      []string{"hello"},
			at:         Point{Row: 0, Col: 2},
			wantLines:  []string{"he", "llo"},
			wantCursor: Point{Row: 1, Col: 0},
		},
		{
			name:       "start-of-row",
			lines:      []string{"a", "b"},
			at:         Point{Row: 1, Col: 0},
			wantLines:  []string{"a", "", "b"},
			wantCursor: Point{Row: 2, Col: 0},
		},
		{
			name:       "end-of-row",
			lines:      []string{"ab"},
			at:         Point{Row: 0, Col: 2},
			wantLines:  []string{"ab", ""},
			wantCursor: Point{Row: 1, Col: 0},
		},
		{
			name:       "virtual-line",
			lines:      []string{"ab"},
			at:         Point{Row: 1, Col: 0},
			wantLines:  []string{"ab", ""},
			wantCursor: Point{Row: 2, Col: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDoc(t, nil, tc.lines...)
			d.SetCursor(tc.at)
			d.InsertNewline()
			if got := d.Lines(); !slices.Equal(got, tc.wantLines) {
				t.Fatalf("lines=%q, want %q", got, tc.wantLines)
			}
			if got := d.Cursor(); got != tc.wantCursor {
				t.Fatalf("cursor=%v, want %v", got, tc.wantCursor)
			}
			checkRowInvariants(t, d)
		})
	}
}

func TestDocument_InsertString_MultiLine(t *testing.T) {
	d := New("ab", Options{})
	d.SetCursor(Point{Row: 0, Col: 1})
	d.InsertString("X\r\nY")
	if got, want := d.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Point{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDocument_InsertAndDeleteRow(t *testing.T) {
	d := New("a\nc", Options{})
	d.InsertRow(1, []byte("b"))
	if got, want := d.Lines(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	checkRowInvariants(t, d)

	d.DeleteRow(0)
	if got, want := d.Lines(), []string{"b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	checkRowInvariants(t, d)

	before := d.Dirty()
	d.InsertRow(-1, nil)
	d.InsertRow(9, nil)
	d.DeleteRow(9)
	if d.Dirty() != before || d.Len() != 2 {
		t.Fatalf("out-of-range row edits changed the document")
	}
}

func TestDocument_InsertRow_DoesNotAliasContent(t *testing.T) {
	d := New("", Options{})
	content := []byte("abc")
	d.InsertRow(0, content)
	content[0] = 'z'
	if got, want := d.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDocument_InsertThenBackspaceIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-z \t/*"]{0,20}`).Draw(t, "line")
		x := rapid.IntRange(0, len(line)).Draw(t, "x")
		c := rapid.SampledFrom([]byte("ab \t/*\"'1")).Draw(t, "c")

		d := newDoc(t, cProfile(t), line, "tail")
		before := classes(d.Row(1))
		d.SetCursor(Point{Row: 0, Col: x})

		d.InsertChar(c)
		d.DeleteChar()

		if got := d.Row(0).String(); got != line {
			t.Fatalf("row=%q, want %q", got, line)
		}
		if got, want := d.Cursor(), (Point{Row: 0, Col: x}); got != want {
			t.Fatalf("cursor=%v, want %v", got, want)
		}
		if got := classes(d.Row(1)); got != before {
			t.Fatalf("next row classes=%q, want %q", got, before)
		}
		checkRowInvariants(t, d)
	})
}

func TestDocument_SetCursorClamps(t *testing.T) {
	d := New("ab\ncdef", Options{})
	cases := []struct {
		in, want Point
	}{
		{in: Point{Row: -1, Col: -1}, want: Point{Row: 0, Col: 0}},
		{in: Point{Row: 0, Col: 9}, want: Point{Row: 0, Col: 2}},
		{in: Point{Row: 2, Col: 3}, want: Point{Row: 2, Col: 0}},
		{in: Point{Row: 7, Col: 0}, want: Point{Row: 2, Col: 0}},
	}
	for _, tc := range cases {
		d.SetCursor(tc.in)
		if got := d.Cursor(); got != tc.want {
			t.Fatalf("SetCursor(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDocument_MarkSaved(t *testing.T) {
	d := New("a", Options{})
	d.InsertChar('b')
	d.InsertChar('c')
	if got := d.Dirty(); got != 2 {
		t.Fatalf("dirty=%d, want 2", got)
	}
	d.MarkSaved()
	if d.IsDirty() {
		t.Fatalf("dirty after MarkSaved")
	}
}
