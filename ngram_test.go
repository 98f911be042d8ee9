package gibberish

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNGrams(t *testing.T) {
	for _, tc := range []struct {
		in  string
		n   int
		out []string
	}{
		{"Hello, World", 3, []string{"hel", "ell", "llo", "wor", "orl", "rld"}},
		{"ab cd", 2, []string{"ab", "cd"}},
		{"ab cd", 3, nil},
		{"abc", 4, nil},
		{"abc", 0, nil},
		{"abc", -1, nil},
		{"H2O", 2, []string{"h2", "2o"}},
		{"寿司abc", 2, []string{"ab", "bc"}},
		{"", 2, nil},
	} {
		if diff := cmp.Diff(tc.out, NGrams(tc.in, tc.n)); diff != "" {
			t.Fatalf("NGrams(%q, %d) mismatch (-want +got):\n%s", tc.in, tc.n, diff)
		}
	}
}

func TestNGramsWithinTokens(t *testing.T) {
	for _, g := range NGrams("the cat sat on the mat", 3) {
		for i := 0; i < len(g); i++ {
			if g[i] == ' ' {
				t.Fatalf("%q crosses a token boundary", g)
			}
		}
	}
}

func TestPatternSet(t *testing.T) {
	ps := NewPatternSet(3, "the", "and", "toolong", "ab")
	if ps.Order() != 3 || ps.Len() != 2 {
		t.Fatal(ps.Order(), ps.Len())
	}
	if !ps.Contains("the") || ps.Contains("ab") {
		t.Fatal()
	}
	if s := ps.Score(nil); s != 0 {
		t.Fatal(s)
	}
	if s := ps.Score([]string{"the", "xyz", "and", "qqq"}); s != 0.5 {
		t.Fatal(s)
	}
}

func TestCommonTables(t *testing.T) {
	for _, ps := range []PatternSet{CommonBigrams, CommonTrigrams, CommonQuadgrams} {
		if ps.Len() == 0 {
			t.Fatal(ps.Order())
		}
		for _, g := range ps.Grams() {
			if len(g) != ps.Order() {
				t.Fatalf("%q in order %d table", g, ps.Order())
			}
			if Normalize(g, ASCIILetters) != g {
				t.Fatalf("%q is not normalized", g)
			}
		}
	}
	if CommonTrigrams.Len() != DefaultTopK {
		t.Fatal(CommonTrigrams.Len())
	}
}
