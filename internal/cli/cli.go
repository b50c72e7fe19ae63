// Package cli implements the hillclimb command-line interface.
//
// Commands:
//   - solve:  fewest steps from S, from the lowest ground, or both
//   - render: print the height map shaded by distance from the chosen sources
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML file (see Config). Logs go to stderr; answers go to stdout.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/terrain"
)

// appName is the application name used for display.
const appName = "hillclimb"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  = ""    // git commit SHA
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	Config     Config
	configPath string
	verbose    bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The config file is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "hillclimb finds the fewest steps up a height map",
		Long:          `hillclimb reads a height map of letters a..z with a start S and a goal E and finds the fewest steps to E, climbing at most one level per step.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			if c.verbose || cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file (default ./"+defaultConfigFile+" if present)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// inputPath picks the positional argument, falling back to the config file.
func (c *CLI) inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if c.Config.Input != "" {
		return c.Config.Input, nil
	}
	return "", fmt.Errorf("no input file: pass one as an argument or set input in %s", defaultConfigFile)
}

// loadGrid reads and parses the height map at path.
func (c *CLI) loadGrid(path string) (*terrain.Grid, error) {
	p := newProgress(c.Logger)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := terrain.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.done(fmt.Sprintf("Parsed %dx%d map", g.Width(), g.Height()), "start", g.Start(), "goal", g.Goal())
	return g, nil
}

// modeFlag resolves --mode against the config file value.
func (c *CLI) modeFlag(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("mode") || c.Config.Mode == "" {
		return flag
	}
	return c.Config.Mode
}
