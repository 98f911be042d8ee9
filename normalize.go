package gibberish

import "strings"

// Normalize lowercases every rune of text that belongs to keep and replaces
// every other rune with a single space. Normalization is idempotent as long
// as keep is closed under ASCII lowercasing, which holds for the predefined
// alphabets.
func Normalize(text string, keep Alphabet) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if keep.FindRune(r) < 0 {
			sb.WriteByte(' ')
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isControl reports the non-printable runes that force a gibberish verdict:
// everything below the space character except the common whitespace controls.
func isControl(r rune) bool {
	return r < ' ' && r != '\n' && r != '\r' && r != '\t'
}
