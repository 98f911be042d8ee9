package gibberish

import "strings"

// NGrams returns every n-length window of every whitespace-delimited token in
// text, after normalizing it against the letters and digits alphabet. Windows
// never cross token boundaries and are emitted left to right.
func NGrams(text string, n int) []string {
	return ngrams(Normalize(text, ASCIIAlnum), n)
}

// ngrams expects already-normalized input. Normalized text is pure ASCII so
// byte windows and character windows coincide.
func ngrams(cleaned string, n int) []string {
	if n <= 0 {
		return nil
	}
	var out []string
	for _, tok := range strings.Fields(cleaned) {
		for i := 0; i+n <= len(tok); i++ {
			out = append(out, tok[i:i+n])
		}
	}
	return out
}

// PatternSet is a read-only set of n-grams of a single order.
type PatternSet struct {
	order int
	grams map[string]struct{}
}

func NewPatternSet(order int, grams ...string) PatternSet {
	ps := PatternSet{
		order: order,
		grams: make(map[string]struct{}, len(grams)),
	}
	for _, g := range grams {
		if len(g) == order {
			ps.grams[g] = struct{}{}
		}
	}
	return ps
}

func (ps PatternSet) Order() int { return ps.order }
func (ps PatternSet) Len() int   { return len(ps.grams) }

func (ps PatternSet) Contains(gram string) bool {
	_, ok := ps.grams[gram]
	return ok
}

// Score is the fraction of grams found in the set; 0 when grams is empty.
func (ps PatternSet) Score(grams []string) float64 {
	if len(grams) == 0 {
		return 0
	}
	var hits int
	for _, g := range grams {
		if ps.Contains(g) {
			hits++
		}
	}
	return float64(hits) / float64(len(grams))
}
