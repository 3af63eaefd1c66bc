// Package cli implements the tinygrep command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/internal/cliconfig"
	"github.com/coregx/tinyre/internal/logging"
)

// Exit statuses, following grep.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// errNoMatch ends a command that ran cleanly but matched nothing.
var errNoMatch = errors.New("no match")

// app carries state shared by all subcommands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// persistent flags
	configPath string
	logLevel   string
	logFormat  string
	maxSteps   int

	file   *cliconfig.File
	logger *slog.Logger
}

// Execute runs tinygrep with args and returns the exit status.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: logging.Nop()}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, errNoMatch):
		return ExitNoMatch
	default:
		fmt.Fprintln(stderr, "tinygrep:", err)
		return ExitError
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tinygrep",
		Short: "Search text and file names with tinyre patterns",
		Long: `tinygrep searches lines of text or file names with the tinyre pattern
language: literals, '.', [classes], \d, \D, ^, $ and the *, + and ? quantifiers.

Exit status is 0 when something matched, 1 when nothing matched and 2 on error.
Configuration is read from --config, or from .tinygrep.yaml in the working
directory; flags override the file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.IntVar(&a.maxSteps, "max-steps", 0, "node visits allowed per search (0 keeps the configured budget)")

	root.AddCommand(a.matchCommand(), a.findCommand(), a.testCommand())
	return root
}

// setup loads the configuration file and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	f, err := cliconfig.Load(a.configPath)
	if err != nil {
		return err
	}
	a.file = f

	lc, err := f.Logging()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		if lc.Level, err = logging.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-format") {
		if lc.Format, err = logging.ParseFormat(a.logFormat); err != nil {
			return err
		}
	}
	lc.Output = a.stderr
	a.logger = logging.New(lc)

	if f.Path != "" {
		a.logger.Debug("loaded config", slog.String("path", f.Path))
	}
	return nil
}

// engineFlags are the per-command flags that shape compilation.
type engineFlags struct {
	ignoreCase bool
	shortest   bool
	longest    bool
}

func (ef *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&ef.ignoreCase, "ignore-case", "i", false, "match letters in either case")
	cmd.Flags().BoolVar(&ef.shortest, "shortest", false, "resolve quantifiers shortest-first")
	cmd.Flags().BoolVar(&ef.longest, "longest", false, "resolve quantifiers longest-first")
	cmd.MarkFlagsMutuallyExclusive("shortest", "longest")
}

// config merges defaults, the config file and flags, in that order.
func (a *app) config(cmd *cobra.Command, ef *engineFlags) (tinyre.Config, error) {
	cfg := tinyre.DefaultConfig()
	if err := a.file.Apply(&cfg); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = a.maxSteps
	}
	if cmd.Flags().Changed("ignore-case") {
		cfg.FoldCase = ef.ignoreCase
	}
	switch {
	case ef.shortest:
		cfg.Mode = tinyre.ShortestFirst
	case ef.longest:
		cfg.Mode = tinyre.LongestFirst
	}
	cfg.Logger = a.logger
	return cfg, cfg.Validate()
}

// compile compiles every pattern, freeing what was compiled on failure.
func (a *app) compile(cfg tinyre.Config, patterns []string) ([]*tinyre.Regex, error) {
	res := make([]*tinyre.Regex, 0, len(patterns))
	for _, p := range patterns {
		re, err := tinyre.CompileWithConfig(p, cfg)
		if err != nil {
			freeAll(res)
			return nil, err
		}
		res = append(res, re)
	}
	return res, nil
}

func freeAll(res []*tinyre.Regex) {
	for _, re := range res {
		re.Free()
	}
}
