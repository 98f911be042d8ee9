package gibberish

import (
	"strings"

	"go.uber.org/zap"
)

// Scores is every signal the strategies derive from a piece of text.
type Scores struct {
	// Gibberish is the verdict of the strategy passed to Analyze and Reason
	// names the gate or tier that reached it.
	Gibberish bool   `json:"gibberish"`
	Reason    string `json:"reason"`

	Normalized string `json:"normalized"`

	Tokens   int `json:"tokens"`
	Words    int `json:"words"`
	Trigrams int `json:"trigrams"`

	WordScore      float64 `json:"word_score"`
	Bigram         float64 `json:"bigram"`
	Trigram        float64 `json:"trigram"`
	Quadgram       float64 `json:"quadgram"`
	Coverage       float64 `json:"coverage"`
	LetterFreq     float64 `json:"letter_freq"`
	VowelConsonant float64 `json:"vowel_consonant"`
	Repetition     float64 `json:"repetition"`
	Shift          float64 `json:"shift"`
	UniqueTokens   float64 `json:"unique_tokens"`
	Combined       float64 `json:"combined"`
}

type Detector struct {
	words     Dictionary
	passwords Dictionary
	bigrams   PatternSet
	trigrams  PatternSet
	quadgrams PatternSet
	log       *zap.Logger
}

type Option func(d *Detector)

// WithDictionary replaces the embedded English word list. Entries must be
// lowercase.
func WithDictionary(words Dictionary) Option {
	return func(d *Detector) { d.words = words }
}

func WithPasswords(pw Dictionary) Option {
	return func(d *Detector) { d.passwords = pw }
}

func WithBigrams(ps PatternSet) Option {
	return func(d *Detector) { d.bigrams = ps }
}

func WithTrigrams(ps PatternSet) Option {
	return func(d *Detector) { d.trigrams = ps }
}

func WithQuadgrams(ps PatternSet) Option {
	return func(d *Detector) { d.quadgrams = ps }
}

// WithLogger makes the detector log every decision at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(d *Detector) {
		if log != nil {
			d.log = log
		}
	}
}

func New(opts ...Option) *Detector {
	d := &Detector{
		words:     englishWords,
		passwords: passwords,
		bigrams:   CommonBigrams,
		trigrams:  CommonTrigrams,
		quadgrams: CommonQuadgrams,
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// IsGibberish classifies text with the given strategy. A nil strategy means
// Tiered{Medium}.
func (d *Detector) IsGibberish(text string, s Strategy) bool {
	if s == nil {
		s = Tiered{Sensitivity: Medium}
	}
	gibberish, _ := d.classify(text, s)
	return gibberish
}

func (d *Detector) classify(text string, s Strategy) (bool, string) {
	gibberish, reason := s.decide(d, text)
	if ce := d.log.Check(zap.DebugLevel, "classified"); ce != nil {
		ce.Write(
			zap.Stringer("strategy", s),
			zap.String("reason", reason),
			zap.Bool("gibberish", gibberish),
			zap.Int("len", len(text)),
		)
	}
	return gibberish, reason
}

// LooksEnglish applies the Weighted strategy with default thresholds. Note
// the polarity: true means the text looks like English, the opposite of
// IsGibberish.
func (d *Detector) LooksEnglish(text string) bool {
	return !d.IsGibberish(text, Weighted{})
}

func (d *Detector) IsPassword(text string) bool {
	return d.passwords.Contains(text)
}

// Analyze returns the signals s would base its decision on, along with the
// decision itself. Every score is computed even when a gate decided early.
// A nil strategy means Tiered{Medium}.
func (d *Detector) Analyze(text string, s Strategy) Scores {
	if s == nil {
		s = Tiered{Sensitivity: Medium}
	}
	keep := ASCIIAlnum
	if _, ok := s.(Weighted); ok {
		keep = ASCIILetters
	}
	sc := d.measure(Normalize(text, keep), text)
	sc.Gibberish, sc.Reason = d.classify(text, s)
	return sc
}

// isWord applies the single character override on top of the dictionary.
func (d *Detector) isWord(w string) bool {
	return len(w) > 1 && d.words.Contains(w)
}

func (d *Detector) measure(cleaned, raw string) Scores {
	tokens := strings.Fields(cleaned)
	sc := Scores{
		Normalized:     cleaned,
		Tokens:         len(tokens),
		LetterFreq:     LetterFrequencyScore(raw),
		VowelConsonant: VowelConsonantScore(raw),
		Repetition:     RepetitionRatio(raw),
		Shift:          ShiftPatternRatio(raw),
		UniqueTokens:   uniqueRatio(tokens),
	}
	for _, t := range tokens {
		if d.isWord(t) {
			sc.Words++
		}
	}
	if sc.Tokens > 0 {
		sc.WordScore = float64(sc.Words) / float64(sc.Tokens)
	}

	tri := ngrams(cleaned, 3)
	sc.Trigrams = len(tri)
	sc.Bigram = d.bigrams.Score(ngrams(cleaned, 2))
	sc.Trigram = d.trigrams.Score(tri)
	sc.Quadgram = d.quadgrams.Score(ngrams(cleaned, 4))

	if len(cleaned) <= 3 {
		sc.Coverage = 1
	} else {
		sc.Coverage = float64(len(tri)) / float64(len(cleaned)-2)
	}

	penalty := 1.0
	if sc.UniqueTokens < minUniqueTokenRatio {
		penalty = repetitionPenalty
	}
	sc.Combined = penalty * (bigramWeight*sc.Bigram +
		trigramWeight*sc.Trigram +
		quadgramWeight*sc.Quadgram +
		letterFreqWeight*sc.LetterFreq +
		vowelConsonantWeight*sc.VowelConsonant +
		wordWeight*sc.WordScore)

	return sc
}

var defaultDetector = New()

// IsGibberish classifies text with the embedded dictionary and the tiered
// strategy at the given sensitivity.
func IsGibberish(text string, sensitivity Sensitivity) bool {
	return defaultDetector.IsGibberish(text, Tiered{Sensitivity: sensitivity})
}

// LooksEnglish is the package level form of Detector.LooksEnglish. It returns
// true for English-like text.
func LooksEnglish(text string) bool {
	return defaultDetector.LooksEnglish(text)
}
