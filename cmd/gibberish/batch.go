package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shabbyrobe/gibberish"
	"github.com/shabbyrobe/gibberish/internal/batch"
	"github.com/shabbyrobe/gibberish/internal/metrics"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers   int
		skipBlank bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file...]",
		Short: "Classify every line of the input files (or stdin)",
		Long: `Writes one line per input line: verdict, password flag and the text,
separated by tabs, in input order. UTF-16 input with a byte order mark is
decoded automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := a.strategy(cmd)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := batch.Options{
				Detector:  a.det,
				Strategy:  strategy,
				Workers:   workers,
				SkipBlank: skipBlank,
				Recorder:  metrics.Nop,
				Log:       a.log.Named("batch"),
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				if err := runBatchFile(ctx, cmd, path, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addStrategyFlags(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "concurrent classifications (default from config)")
	cmd.Flags().BoolVar(&skipBlank, "skip-blank", false, "drop blank lines from the output")
	return cmd
}

func runBatchFile(ctx context.Context, cmd *cobra.Command, path string, opts batch.Options) error {
	var in io.Reader
	if path == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = bufio.NewReader(f)
	}

	sum, err := batch.Run(ctx, in, cmd.OutOrStdout(), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	opts.Log.Debug("file done", zap.String("path", path), zap.Int("lines", sum.Lines))
	return nil
}

// readLines loads a sample file for evaluate, one sample per line, skipping
// blank lines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	scn := bufio.NewScanner(batch.NewReader(f))
	for scn.Scan() {
		if line := scn.Text(); line != "" {
			out = append(out, line)
		}
	}
	if err := scn.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func newEvaluateCmd(a *app) *cobra.Command {
	var goodPath, badPath string
	var showMisses bool

	cmd := &cobra.Command{
		Use:   "evaluate --good english.txt --bad gibberish.txt",
		Short: "Measure a strategy against labelled samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := a.strategy(cmd)
			if err != nil {
				return err
			}
			good, err := readLines(goodPath)
			if err != nil {
				return err
			}
			bad, err := readLines(badPath)
			if err != nil {
				return err
			}

			report, testErr := a.det.Test(good, bad, strategy)
			printReport(cmd.OutOrStdout(), strategy, report, showMisses)
			return testErr
		},
	}
	addStrategyFlags(cmd)
	cmd.Flags().StringVar(&goodPath, "good", "", "file of English samples, one per line")
	cmd.Flags().StringVar(&badPath, "bad", "", "file of gibberish samples, one per line")
	cmd.Flags().BoolVar(&showMisses, "misses", false, "list misclassified samples")
	_ = cmd.MarkFlagRequired("good")
	_ = cmd.MarkFlagRequired("bad")
	return cmd
}

func printReport(w io.Writer, s gibberish.Strategy, r gibberish.Report, misses bool) {
	fmt.Fprintf(w, "strategy:        %s\n", s)
	fmt.Fprintf(w, "samples:         %d\n", r.Total())
	fmt.Fprintf(w, "true positives:  %d\n", r.TruePositive)
	fmt.Fprintf(w, "true negatives:  %d\n", r.TrueNegative)
	fmt.Fprintf(w, "false positives: %s\n", countColor(r.FalsePositive))
	fmt.Fprintf(w, "false negatives: %s\n", countColor(r.FalseNegative))
	fmt.Fprintf(w, "accuracy:        %.2f%%\n", r.Accuracy()*100)
	if misses {
		for _, m := range r.Misclassified {
			fmt.Fprintf(w, "  %q\n", m)
		}
	}
}

func countColor(n int) string {
	if n == 0 {
		return englishColor.Sprint(n)
	}
	return gibberishColor.Sprint(n)
}
