package gibberish

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// DefaultTopK is the number of n-grams kept by Compile when no explicit size
// is requested; it matches the size of CommonTrigrams.
const DefaultTopK = 50

// Trainer counts n-grams of a single order over one or more corpora. Tokens
// are runs of alphabet members; everything else separates tokens, exactly as
// the normalizer does.
type Trainer struct {
	alpha   Alphabet
	order   int
	counts  map[string]int
	scratch []byte
	window  []byte
}

type TrainerOption func(t *Trainer)

// TrainerAlphabet overrides the default letters and digits alphabet. Only
// the ASCII members of the alphabet can appear in n-grams.
func TrainerAlphabet(alpha Alphabet) TrainerOption {
	return func(t *Trainer) {
		t.alpha = alpha
	}
}

func NewTrainer(order int, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		alpha:   ASCIIAlnum,
		order:   order,
		counts:  make(map[string]int),
		scratch: make([]byte, 8192),
		window:  make([]byte, 0, order),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Trainer) Order() int { return t.order }

func (t *Trainer) Add(rdr io.Reader) error {
	if t.order <= 0 {
		return fmt.Errorf("gibberish: invalid n-gram order %d", t.order)
	}

	var leftover []byte

	// Tokens never continue across corpora.
	t.window = t.window[:0]

	for {
		carried := copy(t.scratch, leftover)
		leftover = nil

		n, err := rdr.Read(t.scratch[carried:])
		end := carried + n
		if n == 0 && err == io.EOF {
			break
		} else if err != nil && err != io.EOF {
			return fmt.Errorf("gibberish: read corpus: %w", err)
		}

		for pos := 0; pos < end; {
			r, sz := utf8.DecodeRune(t.scratch[pos:end])
			if r == utf8.RuneError && err == nil && !utf8.FullRune(t.scratch[pos:end]) {
				// Partial rune at the end of the chunk; finish it next read.
				leftover = append([]byte(nil), t.scratch[pos:end]...)
				break
			}
			pos += sz
			t.push(r)
		}

		if err == io.EOF {
			break
		}
	}

	t.window = t.window[:0]
	return nil
}

func (t *Trainer) push(r rune) {
	if r >= utf8.RuneSelf || t.alpha.FindRune(r) < 0 {
		t.window = t.window[:0]
		return
	}
	b := byte(r)
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if len(t.window) == t.order {
		copy(t.window, t.window[1:])
		t.window = t.window[:t.order-1]
	}
	t.window = append(t.window, b)
	if len(t.window) == t.order {
		t.counts[string(t.window)]++
	}
}

// Count returns how often gram has been seen so far.
func (t *Trainer) Count(gram string) int {
	return t.counts[gram]
}

// Compile returns the topK most frequent n-grams seen so far. Ties are broken
// lexicographically so the result does not depend on map order.
func (t *Trainer) Compile(topK int) (PatternSet, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(t.counts) == 0 {
		return PatternSet{}, fmt.Errorf("gibberish: no %d-grams in training data", t.order)
	}

	grams := make([]string, 0, len(t.counts))
	for g := range t.counts {
		grams = append(grams, g)
	}
	sort.Slice(grams, func(i, j int) bool {
		ci, cj := t.counts[grams[i]], t.counts[grams[j]]
		if ci != cj {
			return ci > cj
		}
		return grams[i] < grams[j]
	})
	if len(grams) > topK {
		grams = grams[:topK]
	}
	return NewPatternSet(t.order, grams...), nil
}

// Train builds a pattern set of the given order from every reader in turn.
func Train(order, topK int, rdr ...io.Reader) (PatternSet, error) {
	if len(rdr) < 1 {
		return PatternSet{}, fmt.Errorf("gibberish: requires at least one reader")
	}
	tr := NewTrainer(order)
	for _, r := range rdr {
		if err := tr.Add(r); err != nil {
			return PatternSet{}, err
		}
	}
	return tr.Compile(topK)
}
