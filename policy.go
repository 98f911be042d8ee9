package gibberish

import (
	"fmt"
	"strings"
)

// Sensitivity controls how much evidence the tiered strategy needs before it
// accepts text as English. Low is the strictest level, High the most lenient.
// The zero value is Medium, the same level a nil Strategy uses.
type Sensitivity int

const (
	Medium Sensitivity = iota
	Low
	High
)

var Sensitivities = []Sensitivity{Low, Medium, High}

func (s Sensitivity) String() string {
	switch s {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Sensitivity(%d)", int(s))
	}
}

func ParseSensitivity(s string) (Sensitivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium", "":
		return Medium, nil
	case "high":
		return High, nil
	}
	return Medium, fmt.Errorf("gibberish: unknown sensitivity %q", s)
}

func (s Sensitivity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sensitivity) UnmarshalText(b []byte) error {
	v, err := ParseSensitivity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Strategy is a decision policy. The set of strategies is closed: Tiered and
// Weighted.
type Strategy interface {
	fmt.Stringer
	decide(d *Detector, text string) (gibberish bool, reason string)
}

// Tiered classifies on dictionary word counts first and falls back to n-gram
// support, with thresholds chosen by Sensitivity. Medium also accepts any text
// whose word ratio is above 0.8, so whatever Low accepts, Medium does too.
type Tiered struct {
	Sensitivity Sensitivity
}

func (t Tiered) String() string { return "tiered/" + t.Sensitivity.String() }

const (
	// Cleaned text shorter than this is only accepted when it is a dictionary
	// word in its entirety.
	shortTextLen = 10

	suspiciousMaxTrigrams  = 3
	suspiciousMinTrigram   = 0.3
	suspiciousMaxCoverage  = 0.3
	suspiciousMaxWordRatio = 0.1
)

func (t Tiered) decide(d *Detector, text string) (bool, string) {
	cleaned := Normalize(text, ASCIIAlnum)
	if cleaned == "" {
		return true, "empty"
	}
	if len(cleaned) < shortTextLen {
		return !d.isWord(cleaned), "short"
	}
	if strings.IndexFunc(text, isControl) >= 0 {
		return true, "control"
	}

	sc := d.measure(cleaned, text)
	if sc.Trigrams <= suspiciousMaxTrigrams &&
		sc.Trigram > suspiciousMinTrigram &&
		sc.Coverage < suspiciousMaxCoverage &&
		sc.WordScore < suspiciousMaxWordRatio {
		return true, "suspicious-trigrams"
	}

	tri, quad := sc.Trigram, sc.Quadgram
	switch t.Sensitivity {
	case Low:
		switch {
		case sc.WordScore > 0.8:
			return false, "low/word-ratio"
		case sc.Words >= 3:
			// Several words but no n-gram support smells like templated noise.
			return tri <= 0.2 && quad <= 0.2, "low/words"
		case sc.Words == 1:
			if tri > 0.8 || quad > 0.8 {
				return true, "low/artificial"
			}
			return tri <= 0.25 && quad <= 0.25, "low/one-word"
		default:
			return true, "low/no-words"
		}

	case High:
		if sc.Words >= 1 {
			return false, "high/words"
		}
		return !(tri > 0.05 || quad > 0.03), "high/no-words"

	default:
		switch {
		case sc.Words >= 2:
			return false, "medium/words"
		case sc.WordScore > 0.8:
			// Anything Low accepts on word ratio alone must pass here too.
			return false, "medium/word-ratio"
		case sc.Words == 1:
			return !(tri > 0.15 || quad > 0.1), "medium/one-word"
		default:
			return !(tri > 0.1 || quad > 0.05), "medium/no-words"
		}
	}
}

// Weighted folds every score into a single weighted sum. Zero fields take the
// package defaults.
type Weighted struct {
	MinCombined  float64
	MinWordScore float64
}

const (
	DefaultMinCombined  = 0.35
	DefaultMinWordScore = 0.25

	maxControlRatio      = 0.8
	shortTokenCount      = 2
	shortMinWordScore    = 0.3
	shortMinLetterFreq   = 0.5
	maxRepetitionRatio   = 0.3
	maxShiftRatio        = 0.3
	minUniqueTokenRatio  = 0.3
	repetitionPenalty    = 0.5
	bigramWeight         = 0.20
	trigramWeight        = 0.25
	quadgramWeight       = 0.25
	letterFreqWeight     = 0.15
	vowelConsonantWeight = 0.15
	wordWeight           = 0.20
)

func (w Weighted) String() string { return "weighted" }

func (w Weighted) thresholds() (combined, word float64) {
	combined, word = w.MinCombined, w.MinWordScore
	if combined == 0 {
		combined = DefaultMinCombined
	}
	if word == 0 {
		word = DefaultMinWordScore
	}
	return combined, word
}

func (w Weighted) decide(d *Detector, text string) (bool, string) {
	english, reason := w.looksEnglish(d, text)
	return !english, reason
}

func (w Weighted) looksEnglish(d *Detector, text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, "empty"
	}
	if controlRatio(text) > maxControlRatio {
		return false, "control"
	}

	cleaned := Normalize(text, ASCIILetters)
	if strings.TrimSpace(cleaned) == "" {
		return false, "no-letters"
	}

	sc := d.measure(cleaned, text)
	if sc.Tokens <= shortTokenCount {
		if len([]rune(trimmed)) == 1 {
			return false, "single-char"
		}
		return sc.WordScore > shortMinWordScore || sc.LetterFreq > shortMinLetterFreq, "short"
	}

	// Naturally repetitive text is let through here, along with some simple
	// shift ciphers.
	if sc.Repetition > maxRepetitionRatio || sc.Shift > maxShiftRatio {
		return true, "pattern"
	}

	minCombined, minWord := w.thresholds()
	return sc.Combined >= minCombined && sc.WordScore > minWord, "combined"
}
