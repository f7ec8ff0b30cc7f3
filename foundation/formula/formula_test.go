// File: formula_test.go
// Title: Formula Engine Tests
// Description: Tests for the formula engine covering single parses, logging
//              of syntax errors, request correlation, cancellation and
//              ordered concurrent batch parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine tests

package formula

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula/model"
	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

func newTestEngine(t *testing.T, opts Options) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{
			Level:  mdwlog.LevelDebug,
			Format: mdwlog.FormatJSON,
			Output: &buf,
		})
	}
	engine, err := NewEngine(opts)
	require.NoError(t, err)
	return engine, &buf
}

func TestEngine_Parse(t *testing.T) {
	engine, buf := newTestEngine(t, Options{})

	result, err := engine.Parse(context.Background(), "K4[ON(SO3)2]2")
	require.NoError(t, err)

	assert.Equal(t, "K4[ON(SO3)2]2", result.Input)
	assert.Equal(t, model.Molecule{{Symbol: "K", Count: 4}, {Symbol: "O", Count: 14}, {Symbol: "N", Count: 2}, {Symbol: "S", Count: 4}}, result.Molecule)
	assert.Equal(t, uint64(24), result.Atoms)
	assert.Contains(t, buf.String(), `"message":"Formula parsed"`)
}

func TestEngine_ParseLogsStructuredError(t *testing.T) {
	engine, buf := newTestEngine(t, Options{})
	ctx := WithRequestID(context.Background(), "req-42")

	_, err := engine.Parse(ctx, "Mg(OH}2")
	require.Error(t, err)

	var pe *mdwparser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 5, pe.Offset)

	var logged map[string]interface{}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &logged))

	assert.Equal(t, "info", logged["level"])
	assert.Equal(t, string(mdwerror.CodeUnmatchedClosingBracket), logged["error_code"])
	assert.Equal(t, "req-42", logged["request_id"])
	assert.EqualValues(t, 5, logged["error_offset"])
}

func TestEngine_ParseCanceled(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Parse(ctx, "H2O")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeCanceled))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEngine_ParseTotalOverflow(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	_, err := engine.Parse(context.Background(), "H18446744073709551615O")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))
}

func TestEngine_ParseAllKeepsOrder(t *testing.T) {
	engine, _ := newTestEngine(t, Options{Workers: 3})

	inputs := make([]string, 0, 40)
	for i := 1; i <= 40; i++ {
		if i%7 == 0 {
			inputs = append(inputs, fmt.Sprintf("H%d)", i))
			continue
		}
		inputs = append(inputs, fmt.Sprintf("(H2O)%d", i))
	}

	results := engine.ParseAll(context.Background(), inputs)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, inputs[i], r.Input)
		if (i+1)%7 == 0 {
			assert.True(t, errors.Is(r.Err, mdwparser.UnmatchedClosingBracket), "input %q", r.Input)
			assert.Nil(t, r.Result)
			continue
		}
		require.NoError(t, r.Err, "input %q", r.Input)
		assert.Equal(t, uint64(2*(i+1)), r.Result.Molecule.Count("H"))
	}
}

func TestEngine_ParseAllEmptyAndCanceled(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	assert.Empty(t, engine.ParseAll(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, r := range engine.ParseAll(ctx, []string{"H2O", "O2"}) {
		assert.True(t, mdwerror.HasCode(r.Err, mdwerror.CodeCanceled))
	}
}

func TestNewEngine_Options(t *testing.T) {
	_, err := NewEngine(Options{Logger: mdwlog.NewNop(), Workers: -1})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))

	_, err = NewEngine(Options{Logger: mdwlog.NewNop(), MaxDepth: -1})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))

	engine, err := NewEngine(Options{Logger: mdwlog.NewNop(), MaxDepth: 1})
	require.NoError(t, err)
	_, err = engine.Parse(context.Background(), "((H))")
	assert.True(t, errors.Is(err, mdwparser.NestingTooDeep))
	assert.NoError(t, engine.Validate("(H)"))
}

func TestEngine_Tokenize(t *testing.T) {
	engine, _ := newTestEngine(t, Options{Logger: mdwlog.NewNop()})

	tokens, err := engine.Tokenize("O2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, mdwparser.TokenElement, tokens[0].Type)
	assert.Equal(t, mdwparser.TokenNumber, tokens[1].Type)
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", RequestIDFromContext(WithRequestID(context.Background(), "abc")))
}

func TestEngine_GeneratesRequestIDs(t *testing.T) {
	n := 0
	engine, _ := newTestEngine(t, Options{NewRequestID: func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}})

	result, err := engine.Parse(context.Background(), "H2O")
	require.NoError(t, err)
	assert.Equal(t, "gen-1", result.RequestID)

	result, err = engine.Parse(WithRequestID(context.Background(), "given"), "H2O")
	require.NoError(t, err)
	assert.Equal(t, "given", result.RequestID)
	assert.Equal(t, 1, n)
}
