// Package batch classifies newline separated texts in parallel and writes one
// tab separated verdict per input line, in input order.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/shabbyrobe/gibberish"
	"github.com/shabbyrobe/gibberish/internal/metrics"
)

const (
	// Lines are classified in chunks so memory stays bounded on large inputs
	// while output order still matches input order.
	chunkSize = 512

	maxLineBytes = 1 << 20
)

type Options struct {
	Detector *gibberish.Detector
	Strategy gibberish.Strategy

	// Workers bounds the number of concurrent classifications. Zero means
	// GOMAXPROCS.
	Workers int

	// SkipBlank drops empty lines instead of reporting them as gibberish.
	SkipBlank bool

	Recorder metrics.Recorder
	Log      *zap.Logger
}

type Result struct {
	Line      int
	Text      string
	Gibberish bool
	Password  bool
}

// Summary counts what Run has written.
type Summary struct {
	Lines     int
	Gibberish int
	Passwords int
}

// NewReader decodes UTF-8 or, when a byte order mark says so, UTF-16 input and
// composes it to NFC, so that "e" followed by a combining accent is treated
// the same as the precomposed letter.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		norm.NFC,
	))
}

// Run reads r line by line and writes "verdict\tpassword\ttext" for each line
// to w. It stops at the first read or write error, or when ctx is done.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Summary, error) {
	opts = opts.withDefaults()
	log := opts.Log

	var sum Summary
	start := time.Now()

	scn := bufio.NewScanner(NewReader(r))
	scn.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	bw := bufio.NewWriter(w)
	chunk := make([]Result, 0, chunkSize)
	lineNo := 0

	flush := func() error {
		if err := classify(ctx, chunk, opts); err != nil {
			return err
		}
		for _, res := range chunk {
			if err := writeResult(bw, res); err != nil {
				return fmt.Errorf("batch: write: %w", err)
			}
			sum.Lines++
			if res.Gibberish {
				sum.Gibberish++
			}
			if res.Password {
				sum.Passwords++
			}
		}
		chunk = chunk[:0]
		return nil
	}

	for scn.Scan() {
		lineNo++
		text := strings.TrimSuffix(scn.Text(), "\r")
		if opts.SkipBlank && strings.TrimSpace(text) == "" {
			continue
		}
		chunk = append(chunk, Result{Line: lineNo, Text: text})
		if len(chunk) == chunkSize {
			if err := flush(); err != nil {
				return sum, err
			}
		}
	}
	if err := scn.Err(); err != nil {
		return sum, fmt.Errorf("batch: read line %d: %w", lineNo+1, err)
	}
	if err := flush(); err != nil {
		return sum, err
	}
	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("batch: write: %w", err)
	}

	log.Info("batch complete",
		zap.Int("lines", sum.Lines),
		zap.Int("gibberish", sum.Gibberish),
		zap.Int("passwords", sum.Passwords),
		zap.Duration("took", time.Since(start)))
	return sum, nil
}

func classify(ctx context.Context, chunk []Result, opts Options) error {
	if len(chunk) == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Workers, len(chunk)))

	name := opts.Strategy.String()
	for i := range chunk {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// Each goroutine owns chunk[i]; no locking needed.
			res := &chunk[i]
			t := time.Now()
			res.Gibberish = opts.Detector.IsGibberish(res.Text, opts.Strategy)
			res.Password = opts.Detector.IsPassword(res.Text)
			opts.Recorder.ObserveClassification(name, res.Gibberish, res.Password, time.Since(t))
			return nil
		})
	}
	return g.Wait()
}

func writeResult(w *bufio.Writer, res Result) error {
	w.WriteString(metrics.Verdict(res.Gibberish))
	w.WriteByte('\t')
	w.WriteString(strconv.FormatBool(res.Password))
	w.WriteByte('\t')
	w.WriteString(res.Text)
	return w.WriteByte('\n')
}

func (o Options) withDefaults() Options {
	if o.Detector == nil {
		o.Detector = gibberish.New()
	}
	if o.Strategy == nil {
		o.Strategy = gibberish.Tiered{Sensitivity: gibberish.Medium}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Recorder == nil {
		o.Recorder = metrics.Nop
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	return o
}
