package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"bbip/pkg/datemath"
	"bbip/pkg/planparser"
)

const nowLayout = "2006-01-02 15:04"

type options struct {
	now      string
	timezone string
	asJSON   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "planparse [text...]",
		Short: "Extract timed plans from Korean free text",
		Long: `Splits the text into clauses, reads a time and a title from each,
and prints the plans sorted by time. Reads stdin when no text is given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.now, "now", "", `reference time "YYYY-MM-DD HH:MM" (default: current time)`)
	cmd.Flags().StringVar(&opts.timezone, "timezone", "Asia/Seoul", "IANA timezone of --now and of the output date")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	dates, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return err
	}

	now := dates.In(time.Now())
	if opts.now != "" {
		now, err = time.ParseInLocation(nowLayout, opts.now, dates.Location())
		if err != nil {
			return fmt.Errorf("--now: expected %q: %w", nowLayout, err)
		}
	}

	text := strings.Join(args, " ")
	if text == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}

	tasks := planparser.Parse(text, now)
	out := cmd.OutOrStdout()

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "no plans found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTITLE\tDATE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Time, t.Title, t.Date)
	}
	return w.Flush()
}
