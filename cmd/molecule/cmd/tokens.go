package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/molecule/internal/render"
)

var tokensNoColor bool

var tokensCmd = &cobra.Command{
	Use:   "tokens FORMULA",
	Short: "Show the lexer token stream of a formula",
	Long: `Print the tokens the lexer produces for a formula, with their byte
offsets. Lexing stops at the first illegal character, which is reported
with a caret under its position.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	input := args[0]

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	styles := render.NewStyles(useColor(cmd.OutOrStdout(), tokensNoColor))
	tokens, err := engine.Tokenize(input)
	if len(tokens) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), render.TokenTable(tokens, styles))
	}
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), render.ErrorReport(input, err, styles))
		return errReported
	}
	return nil
}
