package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	dawg "github.com/milden6/dawg-anagram"
	"github.com/milden6/dawg-anagram/errors"
)

func (c *CLI) dumpCommand() *cobra.Command {
	var (
		wordsFile   string
		nodesFile   string
		decodedFile string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Validate a graph and dump its contents",
		Long: `Load the graph, check its structure and count its words. With --words the
word list is written out one word per line; with --nodes the raw node table
is written out with the offset of every record, and with --decoded the
validated nodes are written out with their letters and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			g, path, err := c.loadGraph()
			if err != nil {
				return err
			}

			words, err := writeTo(wordsFile, func(w io.Writer) (int, error) {
				return g.Lexicon(w)
			})
			if err != nil {
				return err
			}

			if nodesFile != "" {
				if _, err := writeTo(nodesFile, func(w io.Writer) (int, error) {
					return 0, dawg.DumpFile(w, path)
				}); err != nil {
					return err
				}
				logger.Debug("Wrote node table", "file", nodesFile)
			}

			if decodedFile != "" {
				if _, err := writeTo(decodedFile, func(w io.Writer) (int, error) {
					g.Print(w)
					return 0, nil
				}); err != nil {
					return err
				}
				logger.Debug("Wrote decoded nodes", "file", decodedFile)
			}

			printSuccess(out, "Graph %s is valid", path)
			printKeyValue(out, "nodes", strconv.Itoa(g.NumNodes()))
			printKeyValue(out, "words", strconv.Itoa(words))
			if wordsFile != "" {
				printFile(out, wordsFile)
			}
			if nodesFile != "" {
				printFile(out, nodesFile)
			}
			if decodedFile != "" {
				printFile(out, decodedFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wordsFile, "words", "", "write the word list to this file")
	cmd.Flags().StringVar(&nodesFile, "nodes", "", "write the raw node table to this file")
	cmd.Flags().StringVar(&decodedFile, "decoded", "", "write the decoded nodes to this file")

	return cmd
}

// writeTo runs fn against the named file, or against io.Discard when name is
// empty.
func writeTo(name string, fn func(io.Writer) (int, error)) (int, error) {
	if name == "" {
		return fn(io.Discard)
	}

	f, err := os.Create(name)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "create %s", name)
	}
	n, err := fn(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", name)
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}
