package cli

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

type findOptions struct {
	engineFlags
	base    string
	include []string
	json    bool
}

func (a *app) findCommand() *cobra.Command {
	opts := &findOptions{}
	cmd := &cobra.Command{
		Use:   "find [flags] PATTERN",
		Short: "Print paths whose base name matches a pattern",
		Long: `Walk the base directory and print every file or directory whose base
name contains a match. --include restricts the walk to paths, relative to the
base and slash-separated, that match a doublestar glob such as "**/*.go".`,
		Example: `  tinygrep find '\.jpg$' -b ~/photos -i
  tinygrep find 'test' --include 'internal/**'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(cmd, opts, args[0])
		},
	}

	opts.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&opts.base, "base", "b", ".", "directory to search")
	f.StringArrayVar(&opts.include, "include", nil, "only consider paths matching this glob (repeatable)")
	f.BoolVar(&opts.json, "json", false, "write JSON lines")
	return cmd
}

func (a *app) runFind(cmd *cobra.Command, opts *findOptions, pattern string) error {
	for _, g := range opts.include {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("find: invalid --include glob %q", g)
		}
	}

	cfg, err := a.config(cmd, &opts.engineFlags)
	if err != nil {
		return err
	}
	res, err := a.compile(cfg, []string{pattern})
	if err != nil {
		return err
	}
	defer freeAll(res)
	re := res[0]

	out := newPrinter(a.stdout, opts.json, false, false)
	found := 0
	err = filepath.WalkDir(opts.base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == opts.base {
				return err
			}
			a.logger.Warn("skipping unreadable path", slog.String("path", path), slog.Any("error", err))
			return nil
		}
		if path == opts.base {
			return nil
		}
		if !included(opts.include, opts.base, path) {
			return nil
		}
		if re.MatchString(d.Name()) {
			found++
			return out.path(path)
		}
		return nil
	})
	if ferr := out.flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	if found == 0 {
		return errNoMatch
	}
	return nil
}

// included reports whether path passes the --include globs.
func included(globs []string, base, path string) bool {
	if len(globs) == 0 {
		return true
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}
