// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     explorer
// Description: Interactive formula explorer. Every keystroke re-parses the
//              input and shows the element table or the error position.
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package explorer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/molecule/foundation/formula"
	"github.com/msto63/molecule/internal/render"
	"github.com/msto63/molecule/pkg/core/cache"
)

const (
	// maxHistory bounds the list of remembered formulas
	maxHistory = 8

	// outcomeCacheSize bounds the memoized parse outcomes
	outcomeCacheSize = 256
)

// outcome is a memoized parse of one input
type outcome struct {
	result *formula.Result
	err    error
}

// Config holds explorer configuration
type Config struct {
	Engine  *formula.Engine
	Initial string
	Color   bool

	// Engines delivers replacement engines, e.g. after a config reload
	Engines <-chan *formula.Engine
}

// EngineChangedMsg swaps the engine used for parsing
type EngineChangedMsg struct {
	Engine *formula.Engine
}

// waitForEngine blocks until the next engine arrives on ch
func waitForEngine(ch <-chan *formula.Engine) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		engine, ok := <-ch
		if !ok {
			return nil
		}
		return EngineChangedMsg{Engine: engine}
	}
}

// Model is the explorer TUI model
type Model struct {
	engine   *formula.Engine
	engines  <-chan *formula.Engine
	reloads  int
	styles   render.Styles
	outcomes *cache.Cache[outcome]

	input   textinput.Model
	width   int
	current string
	result  *formula.Result
	err     error
	history []string
}

// New creates a new explorer model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "K4[ON(SO3)2]2"
	ti.Prompt = "formula> "
	ti.CharLimit = 4096
	ti.Focus()
	ti.SetValue(cfg.Initial)

	m := Model{
		engine:   cfg.Engine,
		engines:  cfg.Engines,
		styles:   render.NewStyles(cfg.Color),
		outcomes: cache.New[outcome](cache.Config{MaxItems: outcomeCacheSize}),
		input:    ti,
		width:    80,
	}
	m.evaluate()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEngine(m.engines))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			m.remember()
			return m, nil

		case tea.KeyCtrlL:
			m.input.SetValue("")
			m.evaluate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 16

	case EngineChangedMsg:
		// cached outcomes were produced under the old limits
		m.engine = msg.Engine
		m.reloads++
		m.outcomes.Clear()
		m.evaluate()
		return m, waitForEngine(m.engines)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.current {
		m.evaluate()
	}
	return m, cmd
}

// evaluate parses the current input. Outcomes are memoized so that
// deleting characters does not parse known prefixes again.
func (m *Model) evaluate() {
	m.current = m.input.Value()
	o := m.outcomes.GetOrSet(m.current, func() outcome {
		result, err := m.engine.Parse(context.Background(), m.current)
		return outcome{result: result, err: err}
	})
	m.result, m.err = o.result, o.err
}

// remember adds the current formula to the history if it parsed
func (m *Model) remember() {
	if m.err != nil || strings.TrimSpace(m.current) == "" {
		return
	}
	history := make([]string, 0, maxHistory)
	history = append(history, m.current)
	for _, h := range m.history {
		if h != m.current && len(history) < maxHistory {
			history = append(history, h)
		}
	}
	m.history = history
}

// Result returns the last successful parse, or nil
func (m Model) Result() *formula.Result {
	return m.result
}

// Err returns the error of the last parse
func (m Model) Err() error {
	return m.err
}

// History returns the remembered formulas, newest first
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// Reloads returns how often the engine was replaced
func (m Model) Reloads() int {
	return m.reloads
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(InputPanelStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(ResultPanelStyle.Render(m.renderResult()))
	b.WriteString("\n")
	if len(m.history) > 0 {
		b.WriteString(m.renderHistory())
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the logo and subtitle
func (m Model) renderHeader() string {
	subtitle := "atoms counted as you type"
	if m.reloads > 0 {
		subtitle += fmt.Sprintf(" (config reloaded %dx)", m.reloads)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		"   ",
		SubHeaderStyle.Render(subtitle),
	)
}

// renderResult renders the element table, or the error with a caret
func (m Model) renderResult() string {
	if m.err != nil {
		return render.ErrorReport(m.current, m.err, m.styles)
	}
	if m.result == nil || len(m.result.Molecule) == 0 {
		return HelpDescStyle.Render("Enter a formula such as Mg(OH)2")
	}

	table := render.Table(m.result.Molecule, m.result.Atoms, m.styles)
	summary := SummaryStyle.Render(fmt.Sprintf("%s  %d atoms, %d elements",
		m.result.Molecule.Formula(), m.result.Atoms, len(m.result.Molecule)))
	return table + "\n" + summary
}

// renderHistory renders the remembered formulas
func (m Model) renderHistory() string {
	return HistoryStyle.Render("History: " + strings.Join(m.history, "  "))
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Remember"),
		RenderKeyHint("Ctrl+L", "Clear"),
		RenderKeyHint("Esc/Ctrl+C", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the explorer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
