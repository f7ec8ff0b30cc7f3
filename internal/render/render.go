// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     render
// Description: Output formats for parse results and parse errors
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	"github.com/msto63/molecule/foundation/formula"
	"github.com/msto63/molecule/foundation/formula/model"
	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

// Format selects how results are written
type Format string

const (
	FormatText    Format = "text"    // one "K: 4" line per element
	FormatTable   Format = "table"   // bordered element/count table
	FormatJSON    Format = "json"    // {"input", "elements", "atoms"}
	FormatYAML    Format = "yaml"    // same record as JSON
	FormatTuple   Format = "tuple"   // Atoms: [("K", 4), ...]
	FormatFormula Format = "formula" // K4O14N2S4
)

// Formats lists all supported formats
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML, FormatTuple, FormatFormula}
}

// ParseFormat converts a format name
func ParseFormat(name string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Formats() {
		if f == normalized {
			return f, nil
		}
	}
	return "", mdwerror.New(fmt.Sprintf("unknown output format %q", name)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("render.ParseFormat").
		WithDetail("format", name)
}

// IsStructured reports whether errors are part of the regular output
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Renderer writes results to out and, for line oriented formats, errors to errOut
type Renderer struct {
	format Format
	out    io.Writer
	errOut io.Writer
	styles Styles
}

// New creates a renderer. errOut may equal out.
func New(format Format, out, errOut io.Writer, color bool) *Renderer {
	return &Renderer{
		format: format,
		out:    out,
		errOut: errOut,
		styles: NewStyles(color),
	}
}

// Record is the structured form of one parse outcome
type Record struct {
	Input    string         `json:"input" yaml:"input"`
	Elements model.Molecule `json:"elements" yaml:"elements"`
	Atoms    uint64         `json:"atoms" yaml:"atoms"`
	Error    *ErrorRecord   `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorRecord describes a failed parse
type ErrorRecord struct {
	Kind    string `json:"kind" yaml:"kind"`
	Code    string `json:"code" yaml:"code"`
	Offset  int    `json:"offset" yaml:"offset"`
	Message string `json:"message" yaml:"message"`
}

// NewRecord converts a batch entry into its structured form
func NewRecord(r formula.BatchResult) Record {
	rec := Record{Input: r.Input}
	if r.Err != nil {
		rec.Error = newErrorRecord(r.Err)
		return rec
	}
	rec.Elements = r.Result.Molecule
	if rec.Elements == nil {
		rec.Elements = model.Molecule{}
	}
	rec.Atoms = r.Result.Atoms
	return rec
}

func newErrorRecord(err error) *ErrorRecord {
	var pe *mdwparser.ParseError
	if errors.As(err, &pe) {
		return &ErrorRecord{
			Kind:    pe.Kind.String(),
			Code:    string(pe.Code()),
			Offset:  pe.Offset,
			Message: pe.Message,
		}
	}
	return &ErrorRecord{
		Kind:    "Error",
		Code:    string(mdwerror.GetCode(err)),
		Offset:  -1,
		Message: err.Error(),
	}
}

// Batch writes all results. Structured formats emit one document: an object
// for a single result, an array otherwise. Line formats write each result
// to out and each error with a caret to errOut.
func (r *Renderer) Batch(results []formula.BatchResult) error {
	if r.format.IsStructured() {
		records := make([]Record, 0, len(results))
		for _, res := range results {
			records = append(records, NewRecord(res))
		}
		if len(records) == 1 {
			return r.encode(records[0])
		}
		return r.encode(records)
	}

	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(r.out)
			}
			fmt.Fprintln(r.out, r.styles.Heading.Render(res.Input))
		}
		if res.Err != nil {
			if err := r.Error(res.Input, res.Err); err != nil {
				return err
			}
			continue
		}
		if err := r.Result(res.Result); err != nil {
			return err
		}
	}
	return nil
}

// Result writes a single successful result
func (r *Renderer) Result(res *formula.Result) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(NewRecord(formula.BatchResult{Input: res.Input, Result: res}))
	case FormatText:
		return r.writeText(res.Molecule)
	case FormatTable:
		_, err := fmt.Fprintln(r.out, Table(res.Molecule, res.Atoms, r.styles))
		return err
	case FormatTuple:
		_, err := fmt.Fprintf(r.out, "Atoms: %s\n", res.Molecule.String())
		return err
	case FormatFormula:
		_, err := fmt.Fprintln(r.out, res.Molecule.Formula())
		return err
	default:
		return mdwerror.New(fmt.Sprintf("unknown output format %q", r.format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("render.Result")
	}
}

// Error writes err for input. Parse errors get the input with a caret
// under the failing offset.
func (r *Renderer) Error(input string, err error) error {
	if r.format.IsStructured() {
		return r.encode(Record{Input: input, Error: newErrorRecord(err)})
	}
	_, werr := fmt.Fprint(r.errOut, ErrorReport(input, err, r.styles))
	return werr
}

func (r *Renderer) writeText(m model.Molecule) error {
	var b strings.Builder
	for _, ec := range m {
		b.WriteString(r.styles.Symbol.Render(ec.Symbol))
		b.WriteString(": ")
		b.WriteString(strconv.FormatUint(ec.Count, 10))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return mdwerror.Wrap(err, "failed to encode YAML").WithCode(mdwerror.CodeInternal)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return mdwerror.Wrap(err, "failed to encode JSON").WithCode(mdwerror.CodeInternal)
		}
		return nil
	}
}

// Table renders m as a bordered two-column table with a total row
func Table(m model.Molecule, atoms uint64, styles Styles) string {
	rows := make([][]string, 0, len(m)+1)
	for _, ec := range m {
		rows = append(rows, []string{ec.Symbol, strconv.FormatUint(ec.Count, 10)})
	}
	rows = append(rows, []string{"Total", strconv.FormatUint(atoms, 10)})
	totalRow := len(rows) - 1

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("Element", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = styles.Header
			case row == totalRow:
				style = styles.Total
			case col == 0:
				style = styles.Symbol
			default:
				style = styles.Cell
			}
			if col == 1 {
				style = style.Align(lipgloss.Right)
			}
			return style.Padding(0, 1)
		}).
		Render()
}

// ErrorReport formats err as "error: ..." followed, for parse errors, by
// the input and a caret line
func ErrorReport(input string, err error, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Error.Render("error:"))
	b.WriteString(" ")

	var pe *mdwparser.ParseError
	if !errors.As(err, &pe) {
		b.WriteString(err.Error())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(pe.Error())
	b.WriteString("\n")
	b.WriteString(Caret(input, pe.Offset, styles))
	return b.String()
}

// Caret returns two indented lines: input and a caret under the character
// at byte offset
func Caret(input string, offset int, styles Styles) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	line := printable(input)
	column := lipgloss.Width(printable(input[:offset]))
	return "  " + line + "\n  " + strings.Repeat(" ", column) + styles.Caret.Render("^") + "\n"
}

// printable replaces control characters so that columns line up
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}
