package gibberish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorTest(t *testing.T) {
	det := New()

	r, err := det.Test(englishSamples, gibberishSamples, Tiered{Sensitivity: Medium})
	require.NoError(t, err)
	assert.Equal(t, len(englishSamples), r.TrueNegative)
	assert.Equal(t, len(gibberishSamples), r.TruePositive)
	assert.Equal(t, 1.0, r.Accuracy())
	assert.Empty(t, r.Misclassified)
}

func TestDetectorTestFailure(t *testing.T) {
	det := New()
	good := []string{"ther with tion", "The quick brown fox jumps over the lazy dog."}
	bad := []string{"Par, axeeh maxkx. Mabl bl tg xqtfiex hy ehgz mxqm pbma ingvntmbhg!", "xkcd mrrp zxcv qwty"}

	r, err := det.Test(good, bad, Tiered{Sensitivity: Low})
	require.Error(t, err)
	assert.Equal(t, 1, r.FalsePositive)
	assert.Equal(t, 0, r.FalseNegative)
	assert.Equal(t, []string{"ther with tion"}, r.Misclassified)

	r, err = det.Test(good, bad, Tiered{Sensitivity: High})
	require.Error(t, err)
	assert.Equal(t, 1, r.FalseNegative)
	assert.Equal(t, 4, r.Total())
	assert.Equal(t, 0.75, r.Accuracy())
}

func TestDetectorTestEmpty(t *testing.T) {
	_, err := New().Test(nil, []string{"x"}, nil)
	assert.Error(t, err)
	_, err = New().Test([]string{"x"}, nil, nil)
	assert.Error(t, err)
	assert.Equal(t, 0.0, Report{}.Accuracy())
}
