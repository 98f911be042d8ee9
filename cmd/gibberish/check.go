package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/gibberish"
)

var (
	gibberishColor = color.New(color.FgRed, color.Bold)
	englishColor   = color.New(color.FgGreen, color.Bold)
	passwordColor  = color.New(color.FgYellow)
)

// errGibberish makes "check --exit-code" fail without printing anything more.
var errGibberish = errors.New("gibberish")

// readText joins the arguments with spaces, or reads stdin when there are
// none or the only argument is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		bts, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(bts), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

func verdictString(gibberish bool) string {
	if gibberish {
		return gibberishColor.Sprint("gibberish")
	}
	return englishColor.Sprint("english")
}

func newCheckCmd(a *app) *cobra.Command {
	var asJSON, exitCode bool

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Classify a text as English or gibberish",
		Example: `  gibberish check "The quick brown fox jumps over the lazy dog."
  echo "Vszzc hvwg wg zcbu" | gibberish check -l high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			strategy, err := a.strategy(cmd)
			if err != nil {
				return err
			}

			gib := a.det.IsGibberish(text, strategy)
			pw := a.det.IsPassword(text)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				if err := enc.Encode(map[string]interface{}{
					"strategy":  strategy.String(),
					"gibberish": gib,
					"password":  pw,
				}); err != nil {
					return err
				}
			} else {
				line := verdictString(gib)
				if pw {
					line += " " + passwordColor.Sprint("(common password)")
				}
				fmt.Fprintln(out, line)
			}

			if exitCode && gib {
				cmd.SilenceErrors = true
				return errGibberish
			}
			return nil
		},
	}
	addStrategyFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the verdict as JSON")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with status 1 when the text is gibberish")
	return cmd
}

func newPasswordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "password [text...]",
		Short: "Report whether a text is a common password",
		Long:  "Matching is exact: case and surrounding whitespace matter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			if a.det.IsPassword(text) {
				fmt.Fprintln(cmd.OutOrStdout(), passwordColor.Sprint("common password"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not a common password")
			}
			return nil
		},
	}
}

func newScoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Print every signal the classifier computes for a text, as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			strategy, err := a.strategy(cmd)
			if err != nil {
				return err
			}
			sc := a.det.Analyze(text, strategy)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Strategy  string           `json:"strategy"`
				Gibberish bool             `json:"gibberish"`
				Scores    gibberish.Scores `json:"scores"`
			}{
				Strategy:  strategy.String(),
				Gibberish: sc.Gibberish,
				Scores:    sc,
			})
		},
	}
	addStrategyFlags(cmd)
	return cmd
}
