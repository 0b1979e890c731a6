package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	dawg "github.com/milden6/dawg-anagram"
	"github.com/milden6/dawg-anagram/errors"
	"github.com/milden6/dawg-anagram/internal/config"
	"github.com/milden6/dawg-anagram/internal/fsutil"
)

func (c *CLI) graphsCommand() *cobra.Command {
	var (
		dir  string
		long bool
	)

	cmd := &cobra.Command{
		Use:   "graphs",
		Short: "List the graph files in a directory",
		Long: `List the graph files under --dir, or under graph_dir from the config when
--dir is not given. With --long every graph is loaded and its node count
shown, so broken files stand out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if dir == "" {
				dir = c.Config.GraphDir
			}
			if dir == "" {
				dir = "."
			}

			files, err := fsutil.FindFilesByExtension(dir, config.GraphExtension)
			if err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "scan %s", dir)
			}
			if len(files) == 0 {
				printInfo(out, "No graphs in %s", dir)
				return nil
			}

			for _, file := range files {
				if !long {
					printFile(out, file)
					continue
				}

				g, err := dawg.Load(file)
				if err != nil {
					printError(out, "%s: %s", file, errors.UserMessage(err))
					continue
				}
				printSuccess(out, "%s %s", file, StyleDim.Render(fmt.Sprintf("(%d nodes)", g.NumNodes())))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to scan (default graph_dir)")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "load every graph and show its size")

	return cmd
}
