package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/internal/server"
)

func (c *CLI) solveCommand() *cobra.Command {
	var (
		group  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "solve LETTERS...",
		Short: "Print the words that can be built from LETTERS",
		Long: `Print every word in the graph that can be spelled from LETTERS, one per line,
followed by the _EOR marker. A '?' stands for any letter; the letters it
supplies are printed in lower case. Several arguments are joined into one set.`,
		Example: `  anagram solve cat
  anagram solve 'c?t' --group`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			solver, err := c.newSolver()
			if err != nil {
				return err
			}

			letters := strings.Join(args, "")
			p := newProgress(logger)
			result, err := solver.Solve(cmd.Context(), letters)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Solved %s, %d words", result.Letters, result.Count))

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(server.Response{
					Result: result,
					Groups: anagram.GroupByLength(result.All()),
				})
			case group:
				groups := anagram.GroupByLength(result.All())
				if len(groups) == 0 {
					printInfo(out, "No results found!")
					return nil
				}
				fmt.Fprint(out, renderGroups(groups))
			default:
				for _, line := range result.Lines() {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "group the words by length")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("group", "json")

	return cmd
}
