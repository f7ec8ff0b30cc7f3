package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula"
	"github.com/msto63/molecule/pkg/core/config"
	"github.com/msto63/molecule/pkg/core/logging"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string

	appConfig *config.Config
	logger    *mdwlog.Logger
)

// errReported signals a failure whose details were already written
var errReported = errors.New("one or more formulas failed to parse")

var rootCmd = &cobra.Command{
	Use:   "molecule",
	Short: "molecule - chemical formula atom counter",
	Long: `molecule parses chemical formulas such as K4[ON(SO3)2]2 and counts
the atoms of every element, in order of first appearance.

Brackets (), [] and {} may be nested and followed by a multiplier.

Configuration is read from --config, $MOLECULE_CONFIG or one of
./molecule.toml, ./molecule.yaml, ./configs/molecule.toml and
~/.config/molecule/config.toml. MOLECULE_* variables override file values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: search ./molecule.toml, ./configs/molecule.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// setup loads the configuration and builds the logger before every command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	appConfig, err = loadConfig(cfgFile)
	if err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(logLevel))
	if level != "" && !slices.Contains(config.LogLevels, level) {
		return mdwerror.New(fmt.Sprintf("invalid --log-level %q, expected one of %s", logLevel, strings.Join(config.LogLevels, ", "))).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.setup").
			WithDetail("log_level", logLevel)
	}
	if verbose && level == "" {
		level = "debug"
	}
	logger = logging.FromConfig("molecule", appConfig, cmd.ErrOrStderr(), level)
	mdwlog.SetDefault(logger)
	logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":      appConfig.Path(),
		"maxDepth":  appConfig.Parser.MaxDepth,
		"workers":   appConfig.Parser.Workers,
		"format":    appConfig.Output.Format,
		"logFormat": appConfig.General.LogFormat,
	})
	return nil
}

// loadConfig reads path, or searches the default locations when path is
// empty, then applies MOLECULE_* overrides and validates the result
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine creates a formula engine from the loaded configuration
func newEngine(l *mdwlog.Logger) (*formula.Engine, error) {
	return engineFor(appConfig, l)
}

func engineFor(cfg *config.Config, l *mdwlog.Logger) (*formula.Engine, error) {
	return formula.NewEngine(formula.Options{
		Logger:         l,
		MaxDepth:       cfg.Parser.MaxDepth,
		MaxInputLength: cfg.Parser.MaxInputLength,
		Workers:        cfg.Parser.Workers,
		NewRequestID:   uuid.NewString,
	})
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// isTerminal reports whether v is a file attached to a terminal
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// stdinIsPiped reports whether r delivers data rather than waiting on a terminal
func stdinIsPiped(r io.Reader) bool {
	return !isTerminal(r)
}

// useColor reports whether output to w should be styled
func useColor(w io.Writer, noColor bool) bool {
	if noColor || !appConfig.Output.Color {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isTerminal(w)
}
