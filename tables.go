package gibberish

var (
	CommonBigrams = NewPatternSet(2,
		"th", "he", "in", "er", "an", "re", "nd", "at", "on", "nt",
		"ha", "es", "st", "en", "ed", "to", "it", "ou", "ea", "hi",
		"is", "or", "ti", "as", "te", "et", "ng", "of", "al", "de",
		"se", "le", "sa", "si", "ar", "ve", "ra", "ld", "ur",
	)

	CommonTrigrams = NewPatternSet(3,
		"the", "and", "ing", "ion", "tio", "ent", "ati", "for", "her", "ter",
		"hat", "tha", "ere", "con", "res", "ver", "all", "ons", "nce", "men",
		"ith", "ted", "ers", "pro", "thi", "wit", "are", "ess", "not", "ive",
		"was", "ect", "rea", "com", "eve", "per", "int", "est", "sta", "cti",
		"ica", "ist", "ear", "ain", "one", "our", "iti", "rat", "ell", "ant",
	)

	CommonQuadgrams = NewPatternSet(4,
		"tion", "atio", "that", "ther", "with", "ment", "ions", "this",
		"here", "from", "ould", "ting", "hich", "whic", "ctio", "ever",
		"they", "thin", "have", "othe", "were", "tive", "ough", "ight",
	)
)

// LetterFrequency is the expected share of a letter in English prose.
type LetterFrequency struct {
	Letter byte
	Freq   float64
}

// EnglishLetterFrequencies sums to 1.0 within rounding.
var EnglishLetterFrequencies = [26]LetterFrequency{
	{'a', 0.08167}, {'b', 0.01492}, {'c', 0.02782}, {'d', 0.04253},
	{'e', 0.12702}, {'f', 0.02228}, {'g', 0.02015}, {'h', 0.06094},
	{'i', 0.06966}, {'j', 0.00153}, {'k', 0.00772}, {'l', 0.04025},
	{'m', 0.02406}, {'n', 0.06749}, {'o', 0.07507}, {'p', 0.01929},
	{'q', 0.00095}, {'r', 0.05987}, {'s', 0.06327}, {'t', 0.09056},
	{'u', 0.02758}, {'v', 0.00978}, {'w', 0.02360}, {'x', 0.00150},
	{'y', 0.01974}, {'z', 0.00074},
}

// shiftDistances are the code point gaps left behind by common Caesar/ROT
// style ciphers.
var shiftDistances = [...]int{1, 5, 13}
