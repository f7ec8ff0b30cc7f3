package cmd

import (
	"context"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula"
	"github.com/msto63/molecule/internal/tui/explorer"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [FORMULA]",
	Short: "Start the interactive formula explorer",
	Long: `Start the terminal formula explorer. Every keystroke re-parses the
input and shows the element table or the position of the error.
Changes to the config file are picked up while the explorer runs.

Keys:
  Enter      - Remember the formula in the history
  Ctrl+L     - Clear the input
  Esc/Ctrl+C - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return mdwerror.New("explore requires a terminal").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.explore")
	}

	// log output would corrupt the alternate screen
	engine, err := newEngine(mdwlog.NewNop())
	if err != nil {
		return err
	}

	initial := ""
	if len(args) == 1 {
		initial = args[0]
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var engines <-chan *formula.Engine
	if path := appConfig.Path(); path != "" {
		engines, err = watchConfig(ctx, path, mdwlog.NewNop())
		if err != nil {
			logger.WarnWithErr("Config changes will not be picked up", err)
		}
	}

	return explorer.Run(explorer.Config{
		Engine:  engine,
		Initial: initial,
		Color:   useColor(cmd.OutOrStdout(), false),
		Engines: engines,
	})
}
