package gibberish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestPatternSetBinary(t *testing.T) {
	bts, err := CommonQuadgrams.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, tableMagic, string(bts[:len(tableMagic)]))

	var ps PatternSet
	require.NoError(t, ps.UnmarshalBinary(bts))
	assert.Equal(t, 4, ps.Order())
	assert.Equal(t, CommonQuadgrams.Grams(), ps.Grams())
}

func TestPatternSetBinaryRejects(t *testing.T) {
	body := func(tf tableFile) []byte {
		bts, err := msgpack.Marshal(tf)
		require.NoError(t, err)
		return append([]byte(tableMagic), bts...)
	}

	for name, data := range map[string][]byte{
		"empty":       nil,
		"magic":       []byte("gibberfoo!!!abc"),
		"truncated":   []byte(tableMagic + "\x82"),
		"order":       body(tableFile{Order: 0, Grams: []string{}}),
		"entry-order": body(tableFile{Order: 3, Grams: []string{"the", "an"}}),
	} {
		t.Run(name, func(t *testing.T) {
			var ps PatternSet
			assert.Error(t, ps.UnmarshalBinary(data))
		})
	}
}
