package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/shabbyrobe/gibberish"
	"github.com/shabbyrobe/gibberish/internal/config"
	"github.com/shabbyrobe/gibberish/internal/logging"
)

// app carries what every subcommand needs once the root command has loaded
// configuration.
type app struct {
	configPath string
	envFile    string
	colorMode  string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
	det *gibberish.Detector
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gibberish",
		Short:         "Tell English text from gibberish",
		Long:          `gibberish classifies short texts as English or gibberish using a dictionary, common n-gram tables and letter statistics.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "gibberish.yaml", "config file (missing file means defaults)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the config (missing file is ignored)")
	pf.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVar(&a.verbose, "verbose", false, "log every decision at debug level")

	root.AddCommand(
		newCheckCmd(a),
		newPasswordCmd(a),
		newScoreCmd(a),
		newBatchCmd(a),
		newEvaluateCmd(a),
		newTablesCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.log = log

	a.det, err = cfg.NewDetector(log)
	if err != nil {
		return err
	}

	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color %q (auto|on|off)", a.colorMode)
	}
	return nil
}

// strategy resolves the --strategy and --sensitivity flags of cmd, falling
// back to the configured strategy when neither is set.
func (a *app) strategy(cmd *cobra.Command) (gibberish.Strategy, error) {
	name, _ := cmd.Flags().GetString("strategy")
	sens, _ := cmd.Flags().GetString("sensitivity")
	if name == "" && sens == "" {
		return a.cfg.ClassifyStrategy()
	}
	if name == "" {
		name = "tiered"
	}
	if sens == "" {
		sens = a.cfg.Sensitivity
	}
	return config.StrategyFor(name, sens, a.cfg.Weighted)
}

func addStrategyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("strategy", "s", "", "tiered or weighted (default from config)")
	cmd.Flags().StringP("sensitivity", "l", "", "tiered sensitivity: low, medium or high (default from config)")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
