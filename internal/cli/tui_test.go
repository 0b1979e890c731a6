package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/internal/dawgtest"
)

func newTestModel(t *testing.T, words ...string) SolveModel {
	t.Helper()
	solver := anagram.NewSolver(dawgtest.New(t, words...), anagram.Options{})
	return NewSolveModel(context.Background(), solver)
}

func typeKeys(m SolveModel, keys string) SolveModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(SolveModel)
}

func press(m SolveModel, key tea.KeyType) (SolveModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(SolveModel), cmd
}

func TestSolveModelTyping(t *testing.T) {
	m := newTestModel(t, "AT", "TA", "ACT", "CAT")

	m = typeKeys(m, "c1a-t")
	assert.Equal(t, "CAT", string(m.Input))
	require.NotNil(t, m.Result)
	assert.Equal(t, []string{"ACT", "AT", "CAT", "TA"}, m.Result.Words)

	view := m.View()
	assert.Contains(t, view, "ACT CAT")
	assert.Contains(t, view, "AT TA")

	m, _ = press(m, tea.KeyBackspace)
	assert.Equal(t, "CA", string(m.Input))
	assert.Empty(t, m.Result.Words)
	assert.Equal(t, []string{"A"}, m.Result.Extra)
}

func TestSolveModelWildcard(t *testing.T) {
	m := typeKeys(newTestModel(t, "CAT"), "c?t")
	require.NotNil(t, m.Result)
	assert.Equal(t, []string{"CaT"}, m.Result.Words)
}

func TestSolveModelNoResults(t *testing.T) {
	m := typeKeys(newTestModel(t, "CAT"), "xyz")
	assert.Contains(t, m.View(), "No results found!")

	m, _ = press(m, tea.KeyBackspace)
	m, _ = press(m, tea.KeyBackspace)
	m, _ = press(m, tea.KeyBackspace)
	assert.Empty(t, m.Input)
	assert.Nil(t, m.Result)
	assert.NotContains(t, m.View(), "No results found!")

	// backspace on empty input is a no-op
	m, _ = press(m, tea.KeyBackspace)
	assert.Empty(t, m.Input)
}

func TestSolveModelCapsInput(t *testing.T) {
	m := typeKeys(newTestModel(t, "CAT"), strings.Repeat("a", anagram.MaxWordLength+5))
	assert.Len(t, m.Input, anagram.MaxWordLength)
}

func TestSolveModelQuit(t *testing.T) {
	m := newTestModel(t, "CAT")

	_, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
