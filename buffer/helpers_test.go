package buffer

import (
	"strings"

	"github.com/iw2rmb/eru/syntax"
)

// tb is the subset of testing.TB that *rapid.T also satisfies.
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

func cProfile(t tb) *syntax.Profile {
	t.Helper()
	p := syntax.Default().ByName("c")
	if p == nil {
		t.Fatalf("missing c profile")
	}
	return p
}

func newDoc(t tb, p *syntax.Profile, lines ...string) *Document {
	t.Helper()
	d := New("", Options{})
	d.SetSyntax(p)
	d.Load(lines)
	return d
}

var classLetters = map[syntax.Class]byte{
	syntax.Normal:       'N',
	syntax.Comment:      'C',
	syntax.BlockComment: 'B',
	syntax.String:       'S',
	syntax.Number:       'D',
	syntax.Match:        'M',
	syntax.Keyword1:     'K',
	syntax.Keyword2:     'T',
}

// classes renders a row's highlight as one letter per rendered byte.
func classes(r *Row) string {
	var sb strings.Builder
	for _, c := range r.Highlight() {
		sb.WriteByte(classLetters[c])
	}
	return sb.String()
}

func checkRowInvariants(t tb, d *Document) {
	t.Helper()
	for i := 0; i < d.Len(); i++ {
		r := d.Row(i)
		if r.Index() != i {
			t.Fatalf("row %d: index=%d", i, r.Index())
		}
		if len(r.Render()) != len(r.Highlight()) {
			t.Fatalf("row %d: len(render)=%d, len(highlight)=%d", i, len(r.Render()), len(r.Highlight()))
		}
		if got, want := string(r.Render()), string(ExpandTabs(r.Raw(), d.TabStop())); got != want {
			t.Fatalf("row %d: stale render %q, want %q", i, got, want)
		}
	}
}
