package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	"github.com/msto63/molecule/foundation/formula"
	"github.com/msto63/molecule/foundation/formula/model"
	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

func fremysSalt() *formula.Result {
	return &formula.Result{
		Input:    "K4[ON(SO3)2]2",
		Molecule: model.Molecule{{Symbol: "K", Count: 4}, {Symbol: "O", Count: 14}, {Symbol: "N", Count: 2}, {Symbol: "S", Count: 4}},
		Atoms:    24,
	}
}

func parseFailure(t *testing.T, input string) error {
	t.Helper()
	_, err := mdwparser.Parse(input)
	require.Error(t, err)
	return err
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("csv")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
}

func TestRenderer_LineFormats(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "K: 4\nO: 14\nN: 2\nS: 4\n"},
		{FormatTuple, "Atoms: [(\"K\", 4), (\"O\", 14), (\"N\", 2), (\"S\", 4)]\n"},
		{FormatFormula, "K4O14N2S4\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var out bytes.Buffer
			r := New(tt.format, &out, &out, false)
			require.NoError(t, r.Result(fremysSalt()))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRenderer_Table(t *testing.T) {
	var out bytes.Buffer
	r := New(FormatTable, &out, &out, false)
	require.NoError(t, r.Result(fremysSalt()))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 6)
	assert.Contains(t, lines[1], "Element")
	assert.Contains(t, lines[1], "Count")

	body := out.String()
	for _, want := range []string{"K", "14", "Total", "24"} {
		assert.Contains(t, body, want)
	}
	assert.Less(t, strings.Index(body, "S "), strings.Index(body, "Total"), "total row comes last")
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := New(FormatJSON, &out, &out, false)
	require.NoError(t, r.Result(fremysSalt()))

	var rec struct {
		Input    string `json:"input"`
		Elements []struct {
			Symbol string `json:"symbol"`
			Count  uint64 `json:"count"`
		} `json:"elements"`
		Atoms uint64 `json:"atoms"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))

	assert.Equal(t, "K4[ON(SO3)2]2", rec.Input)
	assert.Equal(t, uint64(24), rec.Atoms)
	require.Len(t, rec.Elements, 4)
	assert.Equal(t, "O", rec.Elements[1].Symbol)
	assert.Equal(t, uint64(14), rec.Elements[1].Count)
}

func TestRenderer_YAMLBatch(t *testing.T) {
	results := []formula.BatchResult{
		{Index: 0, Input: "K4[ON(SO3)2]2", Result: fremysSalt()},
		{Index: 1, Input: "Mg(OH}2", Err: parseFailure(t, "Mg(OH}2")},
	}

	var out bytes.Buffer
	r := New(FormatYAML, &out, &out, false)
	require.NoError(t, r.Batch(results))

	var records []Record
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)

	assert.Equal(t, uint64(24), records[0].Atoms)
	assert.Nil(t, records[0].Error)
	assert.Equal(t, "S", records[0].Elements[3].Symbol)

	require.NotNil(t, records[1].Error)
	assert.Equal(t, "UnmatchedClosingBracket", records[1].Error.Kind)
	assert.Equal(t, string(mdwerror.CodeUnmatchedClosingBracket), records[1].Error.Code)
	assert.Equal(t, 5, records[1].Error.Offset)
}

func TestRenderer_BatchLineFormatSplitsStreams(t *testing.T) {
	results := []formula.BatchResult{
		{Input: "H2O", Result: &formula.Result{Input: "H2O", Molecule: model.Molecule{{Symbol: "H", Count: 2}, {Symbol: "O", Count: 1}}, Atoms: 3}},
		{Input: "H2O)", Err: parseFailure(t, "H2O)")},
	}

	var out, errOut bytes.Buffer
	r := New(FormatFormula, &out, &errOut, false)
	require.NoError(t, r.Batch(results))

	assert.Equal(t, "H2O\nH2O\n\nH2O)\n", out.String())
	assert.Contains(t, errOut.String(), "error: parse error at offset 3")
}

func TestRenderer_BatchEmptyMolecule(t *testing.T) {
	var out bytes.Buffer
	r := New(FormatJSON, &out, &out, false)
	require.NoError(t, r.Batch([]formula.BatchResult{
		{Input: "", Result: &formula.Result{Molecule: model.Molecule{}}},
	}))
	assert.Contains(t, out.String(), `"elements": []`)
}

func TestErrorReport_Caret(t *testing.T) {
	err := parseFailure(t, "Mg(OH}2")
	report := ErrorReport("Mg(OH}2", err, NewStyles(false))

	want := "error: parse error at offset 5: expected ')' to close '(' at offset 2 (near '}')\n" +
		"  Mg(OH}2\n" +
		"       ^\n"
	assert.Equal(t, want, report)
}

func TestErrorReport_PlainError(t *testing.T) {
	err := mdwerror.New("formula parsing canceled").WithCode(mdwerror.CodeCanceled)
	assert.Equal(t, "error: formula parsing canceled\n", ErrorReport("H2O", err, NewStyles(false)))
}

func TestCaret(t *testing.T) {
	styles := NewStyles(false)

	assert.Equal(t, "  Mg(OH\n    ^\n", Caret("Mg(OH", 2, styles))
	assert.Equal(t, "  Mg(OH\n       ^\n", Caret("Mg(OH", 5, styles), "end of input")
	assert.Equal(t, "  Hé!\n    ^\n", Caret("Hé!", 3, styles), "multi byte runes count as one column")
	assert.Equal(t, "  H O\n   ^\n", Caret("H\tO", 1, styles), "control characters become spaces")
	assert.Equal(t, "  H\n   ^\n", Caret("H", 10, styles), "offset clamped to input length")
}

func TestTokenTable(t *testing.T) {
	tokens, err := mdwparser.Tokenize("Mg(OH)2")
	require.NoError(t, err)

	out := TokenTable(tokens, NewStyles(false))
	for _, want := range []string{"Offset", "Bracket", "ELEMENT", "Mg", "OPEN", "ROUND", "NUMBER", "EOF"} {
		assert.Contains(t, out, want)
	}
	// header, separator, borders and one row per token
	assert.Equal(t, len(tokens)+4, strings.Count(out, "\n")+1)
}
