package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/errors"
)

// SolveModel is the bubbletea model for searching as you type. Every key
// press re-runs the query.
type SolveModel struct {
	solver *anagram.Solver
	ctx    context.Context

	Input  []byte
	Result *anagram.Result
	Err    error
}

// NewSolveModel creates a model that queries solver.
func NewSolveModel(ctx context.Context, solver *anagram.Solver) SolveModel {
	return SolveModel{solver: solver, ctx: ctx}
}

func (m SolveModel) Init() tea.Cmd {
	return nil
}

func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.Input) == 0 {
			return m, nil
		}
		m.Input = m.Input[:len(m.Input)-1]
	case tea.KeyRunes:
		changed := false
		for _, r := range key.Runes {
			if len(m.Input) >= anagram.MaxWordLength {
				break
			}
			if ch, ok := acceptKey(r); ok {
				m.Input = append(m.Input, ch)
				changed = true
			}
		}
		if !changed {
			return m, nil
		}
	default:
		return m, nil
	}

	m.solve()
	return m, nil
}

// acceptKey reports whether r can go into the letter bank, upper cased.
func acceptKey(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z', r == anagram.Wildcard:
		return byte(r), true
	}
	return 0, false
}

func (m *SolveModel) solve() {
	m.Result, m.Err = nil, nil
	if len(m.Input) == 0 {
		return
	}
	m.Result, m.Err = m.solver.Solve(m.ctx, string(m.Input))
}

func (m SolveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Anagram Search"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("type up to %d letters, ? for any letter  ⌫ delete  esc quit", anagram.MaxWordLength)))
	b.WriteString("\n\n")

	b.WriteString("Letters: ")
	b.WriteString(StyleValue.Render(string(m.Input)))
	b.WriteString(StyleDim.Render("_"))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	case m.Result == nil:
	case len(m.Result.All()) == 0:
		b.WriteString(StyleWarning.Render("No results found!"))
		b.WriteString("\n")
	default:
		b.WriteString(renderGroups(anagram.GroupByLength(m.Result.All())))
	}

	return b.String()
}

func (c *CLI) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Search as you type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := c.newSolver()
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				NewSolveModel(cmd.Context(), solver),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
