package gibberish

import (
	"math"
	"strings"
)

// LetterFrequencyScore compares the letter distribution of text against
// EnglishLetterFrequencies. 1 is a perfect match, 0 is as far off as the
// scale goes or no letters at all.
func LetterFrequencyScore(text string) float64 {
	var counts [26]int
	var total int
	for _, r := range text {
		if ASCIILetters.FindRune(r) < 0 {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		counts[r-'a']++
		total++
	}
	if total == 0 {
		return 0
	}

	var diff float64
	for i, lf := range EnglishLetterFrequencies {
		observed := float64(counts[i]) / float64(total)
		diff += math.Abs(observed - lf.Freq)
	}
	return math.Max(0, 1-0.5*diff)
}

// VowelConsonantScore peaks at a vowel to consonant ratio of 0.5 and falls
// linearly to 0 at a distance of 0.3 either side.
func VowelConsonantScore(text string) float64 {
	const (
		ideal     = 0.5
		tolerance = 0.3
	)

	var nv, nc int
	for _, r := range text {
		if ASCIILetters.FindRune(r) < 0 {
			continue
		}
		if Vowels.FindRune(r) >= 0 {
			nv++
		} else {
			nc++
		}
	}
	if nc == 0 {
		return 0
	}

	diff := math.Abs(float64(nv)/float64(nc) - ideal)
	if diff > tolerance {
		return 0
	}
	return 1 - diff/tolerance
}

// RepetitionRatio is the share of adjacent rune pairs in the trimmed text
// that are identical.
func RepetitionRatio(text string) float64 {
	return pairRatio(text, func(a, b rune) bool { return a == b })
}

// ShiftPatternRatio is the share of adjacent rune pairs in the trimmed text
// whose code points differ by a common cipher shift distance.
func ShiftPatternRatio(text string) float64 {
	return pairRatio(text, func(a, b rune) bool {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		for _, s := range shiftDistances {
			if d == s {
				return true
			}
		}
		return false
	})
}

func pairRatio(text string, match func(a, b rune) bool) float64 {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < 2 {
		return 0
	}
	var hits int
	for i := 1; i < len(runes); i++ {
		if match(runes[i-1], runes[i]) {
			hits++
		}
	}
	return float64(hits) / float64(len(runes)-1)
}

// controlRatio is the share of runes in text that are non-printable controls.
func controlRatio(text string) float64 {
	var n, ctl int
	for _, r := range text {
		n++
		if isControl(r) {
			ctl++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(ctl) / float64(n)
}

// uniqueRatio is the share of distinct tokens; 0 with no tokens.
func uniqueRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	return float64(len(seen)) / float64(len(tokens))
}
