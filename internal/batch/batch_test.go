package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/encoding/unicode"

	"github.com/shabbyrobe/gibberish"
	"github.com/shabbyrobe/gibberish/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	in := "The quick brown fox jumps over the lazy dog.\r\nxkcd mrrp zxcv qwty\n\n123456\n"
	var out bytes.Buffer

	sum, err := Run(context.Background(), strings.NewReader(in), &out, Options{Workers: 2})
	require.NoError(t, err)

	want := "english\tfalse\tThe quick brown fox jumps over the lazy dog.\n" +
		"gibberish\tfalse\txkcd mrrp zxcv qwty\n" +
		"gibberish\tfalse\t\n" +
		"gibberish\ttrue\t123456\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatal(diff)
	}
	assert.Equal(t, Summary{Lines: 4, Gibberish: 3, Passwords: 1}, sum)
}

func TestRunSkipBlank(t *testing.T) {
	var out bytes.Buffer
	sum, err := Run(context.Background(), strings.NewReader("world\n   \n\nhello\n"), &out, Options{SkipBlank: true})
	require.NoError(t, err)
	assert.Equal(t, Summary{Lines: 2, Passwords: 1}, sum)
	assert.Equal(t, "english\tfalse\tworld\nenglish\ttrue\thello\n", out.String())
}

func TestRunPreservesOrder(t *testing.T) {
	det := gibberish.New()
	strategy := gibberish.Tiered{Sensitivity: gibberish.Low}

	samples := []string{"hello world and more", "xkcd mrrp zxcv qwty", "password", "ther with tion", "Vszzc hvwg wg zcbu"}
	var in, want strings.Builder
	for i := 0; i < chunkSize*3+17; i++ {
		txt := samples[i%len(samples)] + " " + strconv.Itoa(i)
		in.WriteString(txt + "\n")
		fmt.Fprintf(&want, "%s\t%t\t%s\n", metrics.Verdict(det.IsGibberish(txt, strategy)), det.IsPassword(txt), txt)
	}

	var out bytes.Buffer
	rec := metrics.New()
	sum, err := Run(context.Background(), strings.NewReader(in.String()), &out, Options{
		Detector: det,
		Strategy: strategy,
		Workers:  7,
		Recorder: rec,
	})
	require.NoError(t, err)
	assert.Equal(t, chunkSize*3+17, sum.Lines)
	if diff := cmp.Diff(want.String(), out.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestRunUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	in, err := enc.String("world\nxkcd mrrp zxcv qwty\n")
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = Run(context.Background(), strings.NewReader(in), &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, "english\tfalse\tworld\ngibberish\tfalse\txkcd mrrp zxcv qwty\n", out.String())
}

func TestNewReaderStripsUTF8BOM(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), strings.NewReader("\ufeffworld\n"), &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, "english\tfalse\tworld\n", out.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Run(ctx, strings.NewReader("hello\nworld\n"), &out, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunReadError(t *testing.T) {
	_, err := Run(context.Background(), iotest.ErrReader(errors.New("boom")), &bytes.Buffer{}, Options{})
	assert.ErrorContains(t, err, "boom")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRunWriteError(t *testing.T) {
	_, err := Run(context.Background(), strings.NewReader("hello\n"), failWriter{}, Options{})
	assert.ErrorContains(t, err, "disk full")
}
