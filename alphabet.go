package gibberish

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numeric = "0123456789"
	vowels  = "aeiouAEIOU"
)

var (
	// ASCIILetters is the English letter set used by the weighted strategy's
	// normalizer and the statistical scorers.
	ASCIILetters = NewAlphabet([]rune(lower + upper))

	// ASCIIAlnum additionally keeps digits; it drives the tiered strategy's
	// normalizer and n-gram extraction.
	ASCIIAlnum = NewAlphabet([]rune(lower + upper + numeric))

	Vowels = NewAlphabet([]rune(vowels))
)

// Alphabet is an immutable rune set with a position for each member. Runes in
// the ASCII range are looked up through a flat table; anything wider falls
// back to a map.
type Alphabet struct {
	ascii [128]int16
	wide  map[rune]int
	runes []rune
}

func NewAlphabet(runes []rune) Alphabet {
	al := Alphabet{
		runes: make([]rune, 0, len(runes)),
	}
	for i := range al.ascii {
		al.ascii[i] = -1
	}
	for _, rn := range runes {
		al.add(rn)
	}
	return al
}

func (al *Alphabet) add(rn rune) {
	if al.FindRune(rn) >= 0 {
		return
	}
	pos := len(al.runes)
	if rn >= 0 && rn < 128 {
		al.ascii[rn] = int16(pos)
	} else {
		if al.wide == nil {
			al.wide = make(map[rune]int)
		}
		al.wide[rn] = pos
	}
	al.runes = append(al.runes, rn)
}

func (al *Alphabet) Len() int { return len(al.runes) }

func (al *Alphabet) Runes() []rune {
	out := make([]rune, len(al.runes))
	copy(out, al.runes)
	return out
}

// FindRune returns the position of rn in the alphabet, or -1.
func (al *Alphabet) FindRune(rn rune) int {
	if rn >= 0 && rn < 128 {
		return int(al.ascii[rn])
	}
	if pos, ok := al.wide[rn]; ok {
		return pos
	}
	return -1
}

// FindByte is FindRune for a single byte; bytes >= 0x80 are never members of
// an ASCII alphabet and are looked up as Latin-1 runes otherwise.
func (al *Alphabet) FindByte(b byte) int {
	if b < 128 {
		return int(al.ascii[b])
	}
	return al.FindRune(rune(b))
}

func (al *Alphabet) Contains(rn rune) bool {
	return al.FindRune(rn) >= 0
}
