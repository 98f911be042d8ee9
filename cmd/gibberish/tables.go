package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shabbyrobe/gibberish"
	"github.com/shabbyrobe/gibberish/internal/batch"
	"github.com/shabbyrobe/gibberish/internal/config"
)

func newTablesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Build and inspect n-gram pattern tables",
	}
	cmd.AddCommand(newTablesBuildCmd(a), newTablesShowCmd())
	return cmd
}

func newTablesBuildCmd(a *app) *cobra.Command {
	var (
		order  int
		topK   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "build -o table.tbl corpus.txt...",
		Short: "Count n-grams over one or more corpora and save the most common",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr := gibberish.NewTrainer(order)
			for _, path := range args {
				if err := addCorpus(tr, path); err != nil {
					return err
				}
			}
			ps, err := tr.Compile(topK)
			if err != nil {
				return err
			}
			bts, err := ps.MarshalBinary()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, bts, 0644); err != nil {
				return err
			}
			a.log.Info("wrote table",
				zap.String("path", output),
				zap.Int("order", ps.Order()),
				zap.Int("grams", ps.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %d-grams\n", output, ps.Len(), ps.Order())
			return nil
		},
	}
	cmd.Flags().IntVarP(&order, "order", "n", 3, "n-gram length")
	cmd.Flags().IntVarP(&topK, "top", "k", gibberish.DefaultTopK, "number of n-grams to keep")
	cmd.Flags().StringVarP(&output, "output", "o", "", "table file to write")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func addCorpus(tr *gibberish.Trainer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := tr.Add(batch.NewReader(f)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func newTablesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show table.tbl",
		Short: "Print the n-grams stored in a table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := config.LoadTable(args[0])
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), ps)
			return nil
		},
	}
}

func printTable(w io.Writer, ps gibberish.PatternSet) {
	fmt.Fprintf(w, "order %d, %d grams\n", ps.Order(), ps.Len())
	grams := ps.Grams()
	const perLine = 10
	for i := 0; i < len(grams); i += perLine {
		end := min(i+perLine, len(grams))
		fmt.Fprintln(w, strings.Join(grams[i:end], " "))
	}
}
