package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/tinyre/internal/input"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

type matchOptions struct {
	engineFlags
	patterns    []string
	only        bool
	lineNumbers bool
	count       bool
	json        bool
}

func (a *app) matchCommand() *cobra.Command {
	opts := &matchOptions{}
	cmd := &cobra.Command{
		Use:   "match [flags] PATTERN [FILE...]",
		Short: "Print lines that match a pattern",
		Long: `Print each input line that contains a match. With -e the pattern
arguments are taken from the flag (repeatable) and every positional argument
is a file. Files may be gzip or zstd compressed. No file, or "-", reads
standard input.`,
		Example: `  tinygrep match 'colou?r' notes.txt
  tinygrep match -o '\d+' access.log.gz
  tinygrep match -e ERROR -e WARN -c app.log`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(opts.patterns) == 0 && len(args) == 0 {
				return errors.New("match: missing pattern")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMatch(cmd, opts, args)
		},
	}

	opts.register(cmd)
	f := cmd.Flags()
	f.StringArrayVarP(&opts.patterns, "regexp", "e", nil, "pattern to search for (repeatable)")
	f.BoolVarP(&opts.only, "only-matching", "o", false, "print only the matched parts of lines")
	f.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix output with line numbers")
	f.BoolVarP(&opts.count, "count", "c", false, "print a count of matching lines per file")
	f.BoolVar(&opts.json, "json", false, "write JSON lines")
	cmd.MarkFlagsMutuallyExclusive("count", "only-matching")
	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, opts *matchOptions, args []string) error {
	patterns, files := opts.patterns, args
	if len(patterns) == 0 {
		patterns, files = args[:1], args[1:]
	}
	if len(files) == 0 {
		files = []string{input.Stdin}
	}

	cfg, err := a.config(cmd, &opts.engineFlags)
	if err != nil {
		return err
	}
	res, err := a.compile(cfg, patterns)
	if err != nil {
		return err
	}
	defer freeAll(res)

	m := newLineMatcher(res, a.logger)
	out := newPrinter(a.stdout, opts.json, len(files) > 1, opts.lineNumbers)

	total := 0
	for _, path := range files {
		n, err := a.matchFile(path, m, out, opts)
		if err != nil {
			out.flush()
			return err
		}
		total += n
	}
	if err := out.flush(); err != nil {
		return err
	}
	if total == 0 {
		return errNoMatch
	}
	return nil
}

// matchFile scans one input and returns the number of matching lines.
func (a *app) matchFile(path string, m *lineMatcher, out *printer, opts *matchOptions) (int, error) {
	r, err := a.open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	name := path
	if path == input.Stdin {
		name = "(standard input)"
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	matched, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()

		if opts.only {
			spans := m.all(line)
			if len(spans) == 0 {
				continue
			}
			matched++
			for _, s := range spans {
				if err := out.match(name, lineNo, line, s); err != nil {
					return matched, err
				}
			}
			continue
		}

		if !m.match(line) {
			continue
		}
		matched++
		if !opts.count {
			if err := out.line(name, lineNo, line); err != nil {
				return matched, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return matched, fmt.Errorf("%s: %w", name, err)
	}

	if opts.count {
		if err := out.count(name, matched); err != nil {
			return matched, err
		}
	}
	return matched, nil
}

// open opens a named input, or the command's standard input for "-".
func (a *app) open(path string) (io.ReadCloser, error) {
	if path == input.Stdin {
		return input.NewReader(a.stdin)
	}
	return input.Open(path)
}
