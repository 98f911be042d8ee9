package gibberish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterFrequencyScore(t *testing.T) {
	assert.Equal(t, 0.0, LetterFrequencyScore(""))
	assert.Equal(t, 0.0, LetterFrequencyScore("12345 !?"))

	// A single repeated letter is as far from English as 'z' allows.
	assert.InDelta(t, 0.00074, LetterFrequencyScore("zzzz"), 1e-4)

	// Case and non-letters are ignored.
	assert.Equal(t, LetterFrequencyScore("etaoin"), LetterFrequencyScore("E-T-A O!I?N"))

	english := LetterFrequencyScore("The quick brown fox jumps over the lazy dog while the farmer watches")
	noise := LetterFrequencyScore("qzxj vkqz jxqq zzvk")
	assert.Greater(t, english, noise)
	assert.LessOrEqual(t, english, 1.0)
}

func TestVowelConsonantScore(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out float64
	}{
		{"", 0},
		{"aaa", 0},    // no consonants
		{"bcd", 0},    // ratio 0
		{"ab", 0},     // ratio 1
		{"abb", 1},    // ratio 0.5
		{"ABB", 1},    // case insensitive
		{"a-b b!", 1}, // non-letters ignored
		{"aabbbbb", 1 - 0.1/0.3},
	} {
		assert.InDelta(t, tc.out, VowelConsonantScore(tc.in), 1e-9, "%q", tc.in)
	}
}

func TestRepetitionRatio(t *testing.T) {
	assert.Equal(t, 0.0, RepetitionRatio(""))
	assert.Equal(t, 0.0, RepetitionRatio("a"))
	assert.Equal(t, 1.0, RepetitionRatio("  aa  "))
	assert.Equal(t, 0.5, RepetitionRatio("aab"))
	assert.Equal(t, 1.0, RepetitionRatio("寿寿寿"))
}

func TestShiftPatternRatio(t *testing.T) {
	assert.Equal(t, 0.0, ShiftPatternRatio("x"))
	assert.Equal(t, 1.0, ShiftPatternRatio("ab"))
	assert.Equal(t, 1.0, ShiftPatternRatio("af"))
	assert.Equal(t, 1.0, ShiftPatternRatio("an"))
	assert.Equal(t, 0.0, ShiftPatternRatio("ac"))
	assert.Equal(t, 1.0, ShiftPatternRatio("ba"))
	// ab, bc hit; 'c ', ' a', ac miss.
	assert.InDelta(t, 0.4, ShiftPatternRatio("abc ac"), 1e-9)
}

func TestControlRatio(t *testing.T) {
	assert.Equal(t, 0.0, controlRatio(""))
	assert.Equal(t, 0.0, controlRatio("a\tb\nc\r"))
	assert.Equal(t, 1.0, controlRatio("\x00\x01\x02"))
	assert.Equal(t, 0.5, controlRatio("a\x07"))
}

func TestUniqueRatio(t *testing.T) {
	assert.Equal(t, 0.0, uniqueRatio(nil))
	assert.Equal(t, 1.0, uniqueRatio([]string{"a", "b"}))
	assert.Equal(t, 0.25, uniqueRatio([]string{"x", "x", "x", "x"}))
}
