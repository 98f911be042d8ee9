package gibberish

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordSet(t *testing.T) {
	in := "# comment\nHello\n\n  world  \n#skipped\nHello\n"

	ws, err := LoadWordSet(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, 2, ws.Len())
	assert.True(t, ws.Contains("hello"))
	assert.True(t, ws.Contains("world"))
	assert.False(t, ws.Contains("Hello"))

	ws, err = LoadWordSet(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.True(t, ws.Contains("Hello"))
	assert.False(t, ws.Contains("hello"))
}

func TestLoadWordSetError(t *testing.T) {
	_, err := LoadWordSet(iotest.ErrReader(iotest.ErrTimeout), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestWordSetMerge(t *testing.T) {
	ws := NewWordSet("alpha")
	ws.Merge(NewWordSet("beta", "alpha"))
	assert.Equal(t, 2, ws.Len())
	assert.True(t, ws.Contains("beta"))
}

func TestEmbeddedLists(t *testing.T) {
	words := EnglishWords()
	assert.Greater(t, words.Len(), 1000)
	for _, w := range []string{"the", "hello", "world", "with", "background"} {
		assert.True(t, words.Contains(w), w)
	}
	for _, w := range []string{"ther", "tion", "xkcd", "The"} {
		assert.False(t, words.Contains(w), w)
	}
	assert.Greater(t, CommonPasswords().Len(), 100)
}

func TestIsPassword(t *testing.T) {
	for _, pw := range []string{"123456", "password", "qwerty", "abc123", "iloveyou", "admin", "password1"} {
		assert.True(t, IsPassword(pw), pw)
	}
	for _, txt := range []string{
		"",
		"not-a-common-password",
		"this is not a password",
		"unique_string_123",
		"verylongandunlikelypasswordthatnoonewoulduse",
		" password",
		"PASSWORD",
	} {
		assert.False(t, IsPassword(txt), txt)
	}
}

func TestDetectorPasswords(t *testing.T) {
	det := New(WithPasswords(NewWordSet("hunter2")))
	assert.True(t, det.IsPassword("hunter2"))
	assert.False(t, det.IsPassword("123456"))
}

func TestPasswordIsIndependentOfClassification(t *testing.T) {
	// "admin" is both a word and a password; "123456" is a password and
	// gibberish.
	assert.True(t, IsPassword("admin"))
	assert.False(t, IsGibberish("admin", Medium))
	assert.True(t, IsPassword("hello"))
	assert.False(t, IsGibberish("hello", Medium))
	assert.False(t, IsPassword("world"))
	assert.False(t, IsGibberish("world", Medium))
	assert.True(t, IsPassword("123456"))
	assert.True(t, IsGibberish("123456", Medium))
}
