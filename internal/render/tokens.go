// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     render
// Description: Token stream rendering for lexer diagnostics
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

// TokenTable renders a token stream with offset, type, value and bracket kind
func TokenTable(tokens []mdwparser.Token, styles Styles) string {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		bracket := ""
		if tok.Bracket != mdwparser.BracketNone {
			bracket = tok.Bracket.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(tok.Position),
			tok.Type.String(),
			printable(tok.Value),
			bracket,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers("Offset", "Type", "Value", "Bracket").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := styles.Cell
			if row == table.HeaderRow {
				style = styles.Header
			} else if col == 2 {
				style = styles.Symbol
			}
			if col == 0 {
				style = style.Align(lipgloss.Right)
			}
			return style.Padding(0, 1)
		}).
		Render()
}
