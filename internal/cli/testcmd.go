package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func (a *app) testCommand() *cobra.Command {
	ef := &engineFlags{}
	cmd := &cobra.Command{
		Use:   "test [flags] PATTERN TEXT",
		Short: "Run one search and print its bounds",
		Long: `Search TEXT for PATTERN once and print "match START END" with byte
offsets, or "no match".`,
		Example: `  tinygrep test '\d+' ab123cd
  tinygrep test --shortest '\d+' ab123cd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, ef)
			if err != nil {
				return err
			}
			res, err := a.compile(cfg, args[:1])
			if err != nil {
				return err
			}
			defer freeAll(res)
			re := res[0]

			r, err := re.MatchResult([]byte(args[1]))
			if err != nil {
				return err
			}
			a.logger.Debug("search done", slog.Any("stats", re.Stats()))
			if !r.Matched {
				fmt.Fprintln(a.stdout, "no match")
				return errNoMatch
			}
			fmt.Fprintf(a.stdout, "match %d %d\n", r.Start, r.End)
			return nil
		},
	}
	ef.register(cmd)
	return cmd
}
