package gibberish

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed data/english.txt
var englishWordsData string

//go:embed data/passwords.txt
var passwordsData string

// Dictionary is an exact, case-sensitive membership oracle. Word lists used
// for classification are expected to hold lowercase entries.
type Dictionary interface {
	Contains(word string) bool
}

type WordSet map[string]struct{}

func NewWordSet(words ...string) WordSet {
	ws := make(WordSet, len(words))
	for _, w := range words {
		ws[w] = struct{}{}
	}
	return ws
}

func (ws WordSet) Contains(word string) bool {
	_, ok := ws[word]
	return ok
}

func (ws WordSet) Len() int { return len(ws) }

// Merge adds every word of other to ws.
func (ws WordSet) Merge(other WordSet) {
	for w := range other {
		ws[w] = struct{}{}
	}
}

// LoadWordSet reads one word per line. Blank lines and lines starting with '#'
// are skipped. When fold is true words are lowercased, which is what a
// classification dictionary wants; password lists must keep their case.
func LoadWordSet(rdr io.Reader, fold bool) (WordSet, error) {
	ws := make(WordSet)
	scn := bufio.NewScanner(rdr)
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if fold {
			line = strings.ToLower(line)
		}
		ws[line] = struct{}{}
	}
	if err := scn.Err(); err != nil {
		return nil, fmt.Errorf("gibberish: read word list: %w", err)
	}
	return ws, nil
}

var (
	englishWords = mustWordSet(englishWordsData, true)
	passwords    = mustWordSet(passwordsData, false)
)

func mustWordSet(data string, fold bool) WordSet {
	ws, err := LoadWordSet(strings.NewReader(data), fold)
	if err != nil {
		panic(err)
	}
	return ws
}

// EnglishWords returns the embedded dictionary. The returned set is shared and
// must not be modified; Merge into a fresh WordSet to extend it.
func EnglishWords() WordSet { return englishWords }

// CommonPasswords returns the embedded password list. Shared, read-only.
func CommonPasswords() WordSet { return passwords }

// IsPassword reports whether text exactly matches a common password. There is
// no normalization: case and surrounding whitespace matter.
func IsPassword(text string) bool {
	return passwords.Contains(text)
}
