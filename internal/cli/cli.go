// Package cli implements the anagram command-line interface.
//
// The commands are:
//   - solve: print the words that can be built from a set of letters
//   - interactive: search as you type
//   - dump: validate a graph file and write out its words or nodes
//   - graphs: list the graph files in a directory
//   - serve: answer queries over HTTP
//
// Settings come from a TOML config file; --graph and the per-command flags
// override it. All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	dawg "github.com/milden6/dawg-anagram"
	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/errors"
	"github.com/milden6/dawg-anagram/internal/buildinfo"
	"github.com/milden6/dawg-anagram/internal/config"
	"github.com/milden6/dawg-anagram/internal/fsutil"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	graphPath  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "anagram",
		Short:        "Find the words hidden in a set of letters",
		Long:         `anagram lists every word of a word graph that can be spelled from a set of letters, with '?' standing for any letter.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.SetLogLevel(parseLevel(cfg.LogLevel))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dawg-anagram/config.toml)")
	root.PersistentFlags().StringVar(&c.graphPath, "graph", "", "graph file to search")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.graphsCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// graphFile resolves the graph to open. The --graph flag wins over the
// config; a relative config graph is looked up in graph_dir, and with no
// graph configured the first graph file in graph_dir is used.
func (c *CLI) graphFile() (string, error) {
	if c.graphPath != "" {
		return c.graphPath, nil
	}

	cfg := c.Config
	if cfg.Graph != "" {
		if cfg.GraphDir != "" && !filepath.IsAbs(cfg.Graph) {
			return filepath.Join(cfg.GraphDir, cfg.Graph), nil
		}
		return cfg.Graph, nil
	}

	files, err := fsutil.FindFilesByExtension(cfg.GraphDir, config.GraphExtension)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "scan %s", cfg.GraphDir)
	}
	if len(files) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "no %s graphs in %s", config.GraphExtension, cfg.GraphDir)
	}
	return files[0], nil
}

// loadGraph opens and validates the graph.
func (c *CLI) loadGraph() (dawg.Finder, string, error) {
	path, err := c.graphFile()
	if err != nil {
		return nil, "", err
	}

	p := newProgress(c.Logger)
	g, err := dawg.Load(path)
	if err != nil {
		return nil, path, err
	}
	p.done("Loaded " + path)
	c.Logger.Debug("Graph ready", "nodes", g.NumNodes())

	return g, path, nil
}

// newSolver loads the graph and wraps it in a solver configured from the
// settings.
func (c *CLI) newSolver() (*anagram.Solver, error) {
	g, _, err := c.loadGraph()
	if err != nil {
		return nil, err
	}
	return anagram.NewSolver(g, anagram.Options{
		MaxResults: c.Config.MaxResults,
		Timeout:    c.Config.SearchTimeout.Duration,
	}), nil
}
