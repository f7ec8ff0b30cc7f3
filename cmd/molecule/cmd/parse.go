package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/internal/render"
)

var (
	parseFormat  string
	parseFile    string
	parseNoColor bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [FORMULA...]",
	Short: "Count the atoms of one or more formulas",
	Long: `Parse chemical formulas and print the atom count of every element.

Without arguments formulas are read one per line from --file or stdin.
Blank lines and lines starting with # are skipped.

Formats:
  text     K: 4 lines (one per element)
  table    bordered element/count table with a total
  json     {"input", "elements", "atoms"} records
  yaml     same records as YAML
  tuple    Atoms: [("K", 4), ("O", 14)]
  formula  compact form such as K4O14N2S4

Examples:
  molecule parse H2O
  molecule parse 'K4[ON(SO3)2]2' 'Mg(OH)2' --format json
  molecule parse --file formulas.txt --format formula`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (text, table, json, yaml, tuple, formula)")
	parseCmd.Flags().StringVar(&parseFile, "file", "", "read formulas from file, one per line")
	parseCmd.Flags().BoolVar(&parseNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	inputs, err := getInputFormulas(cmd, args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return mdwerror.New("no formula given").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse")
	}

	name := parseFormat
	if name == "" {
		name = appConfig.Output.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := appConfig.Parser.BatchTimeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := engine.ParseAll(ctx, inputs)

	r := render.New(format, cmd.OutOrStdout(), cmd.ErrOrStderr(), useColor(cmd.OutOrStdout(), parseNoColor))
	if err := r.Batch(results); err != nil {
		logger.ErrorWithErr("Failed to write results", err, mdwlog.Fields{"format": string(format)})
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	logger.Debug("Parse command finished", mdwlog.Fields{
		"inputs": len(inputs),
		"failed": failed,
		"format": string(format),
	})
	if failed > 0 {
		return errReported
	}
	return nil
}

// getInputFormulas returns the arguments, or the lines of --file or stdin
func getInputFormulas(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if parseFile != "" {
		f, err := os.Open(parseFile)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to open formula file").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.parse").
				WithDetail("path", parseFile)
		}
		defer f.Close()
		return readFormulas(f)
	}

	if stdinIsPiped(cmd.InOrStdin()) {
		return readFormulas(cmd.InOrStdin())
	}
	return nil, nil
}

// readFormulas reads one formula per line, skipping blanks and # comments
func readFormulas(r io.Reader) ([]string, error) {
	var formulas []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		formulas = append(formulas, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("failed to read formulas after %d lines", len(formulas))).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse")
	}
	return formulas, nil
}
