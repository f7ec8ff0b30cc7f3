package explorer

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula"
	mdwparser "github.com/msto63/molecule/foundation/formula/parser"
)

func newTestModel(t *testing.T, initial string) Model {
	t.Helper()
	engine, err := formula.NewEngine(formula.Options{Logger: mdwlog.NewNop()})
	require.NoError(t, err)
	return New(Config{Engine: engine, Initial: initial})
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestNew_EvaluatesInitialInput(t *testing.T) {
	m := newTestModel(t, "Mg(OH)2")

	require.NoError(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, uint64(5), m.Result().Atoms)
	assert.Contains(t, m.View(), "MgO2H2")
}

func TestUpdate_ReparsesOnEveryKeystroke(t *testing.T) {
	m := newTestModel(t, "")

	m = typeString(m, "H2O")
	require.NoError(t, m.Err())
	assert.Equal(t, uint64(3), m.Result().Atoms)

	m = typeString(m, ")")
	require.Error(t, m.Err())
	assert.True(t, errors.Is(m.Err(), mdwparser.UnmatchedClosingBracket))

	view := m.View()
	assert.Contains(t, view, "error:")
	assert.Contains(t, view, "H2O)")
	assert.Contains(t, view, "   ^")

	m, _ = press(m, tea.KeyBackspace)
	assert.NoError(t, m.Err())

	hits, _, _ := m.outcomes.Stats()
	assert.Equal(t, int64(1), hits, "H2O was parsed before")
}

func TestUpdate_EnterRemembersValidFormulas(t *testing.T) {
	m := newTestModel(t, "")

	m = typeString(m, "O2")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyCtrlL)
	assert.Equal(t, "", m.current)

	m = typeString(m, "pie")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyCtrlL)

	m = typeString(m, "H2O")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyCtrlL)

	m = typeString(m, "O2")
	m, _ = press(m, tea.KeyEnter)

	assert.Equal(t, []string{"O2", "H2O"}, m.History())
	assert.True(t, strings.Contains(m.View(), "History: O2  H2O"))
}

func TestUpdate_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t, "H")
		_, cmd := press(m, key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestView_EmptyInputShowsHint(t *testing.T) {
	m := newTestModel(t, "")
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Enter a formula")
}

func TestUpdate_HistoryCopiesAreIndependent(t *testing.T) {
	m := newTestModel(t, "")
	for _, f := range []string{"O2", "H2O", "CO2"} {
		m = typeString(m, f)
		m, _ = press(m, tea.KeyEnter)
		m, _ = press(m, tea.KeyCtrlL)
	}
	before := m
	require.Equal(t, []string{"CO2", "H2O", "O2"}, before.History())

	m = typeString(m, "H2O")
	m, _ = press(m, tea.KeyEnter)

	assert.Equal(t, []string{"H2O", "CO2", "O2"}, m.History())
	assert.Equal(t, []string{"CO2", "H2O", "O2"}, before.History(), "earlier model values keep their history")
}

func TestUpdate_HistoryIsBounded(t *testing.T) {
	m := newTestModel(t, "")
	for i := 1; i <= maxHistory+3; i++ {
		m = typeString(m, fmt.Sprintf("C%d", i))
		m, _ = press(m, tea.KeyEnter)
		m, _ = press(m, tea.KeyCtrlL)
	}

	history := m.History()
	require.Len(t, history, maxHistory)
	assert.Equal(t, fmt.Sprintf("C%d", maxHistory+3), history[0])
}

func TestUpdate_EngineChangedReparses(t *testing.T) {
	engines := make(chan *formula.Engine, 1)
	engine, err := formula.NewEngine(formula.Options{Logger: mdwlog.NewNop()})
	require.NoError(t, err)
	m := New(Config{Engine: engine, Initial: "K4[ON(SO3)2]2", Engines: engines})
	require.NoError(t, m.Err())
	require.NotNil(t, m.Init())

	strict, err := formula.NewEngine(formula.Options{Logger: mdwlog.NewNop(), MaxDepth: 1})
	require.NoError(t, err)
	next, cmd := m.Update(EngineChangedMsg{Engine: strict})
	m = next.(Model)

	require.Error(t, m.Err())
	assert.True(t, errors.Is(m.Err(), mdwparser.NestingTooDeep))
	assert.Equal(t, 1, m.Reloads())
	assert.NotNil(t, cmd, "keeps waiting for further engines")
	assert.Contains(t, m.View(), "config reloaded 1x")
}

func TestWaitForEngine(t *testing.T) {
	assert.Nil(t, waitForEngine(nil))

	engines := make(chan *formula.Engine, 1)
	engine, err := formula.NewEngine(formula.Options{Logger: mdwlog.NewNop()})
	require.NoError(t, err)
	engines <- engine

	msg := waitForEngine(engines)()
	assert.Equal(t, EngineChangedMsg{Engine: engine}, msg)

	close(engines)
	assert.Nil(t, waitForEngine(engines)())
}
