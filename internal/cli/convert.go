package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude/liftnotes/internal/export"
	"github.com/claude/liftnotes/internal/ingest/notes"
	"github.com/claude/liftnotes/internal/sample"
)

func newConvertCommand(ctx context.Context, root *rootOptions) *cobra.Command {
	var (
		format    string
		out       string
		dsn       string
		skipDates []string
		useSample bool
	)

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a training log into CSV, JSON, SQLite or Postgres records.",
		Long: `Convert reads a training log from a file, stdin ("-" or no argument) or the
embedded sample, and writes the consolidated records to exactly one output.
A summary with the record count and sample rows goes to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useSample && len(args) > 0 {
				return errors.New("--sample takes no file argument")
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Output.Format = format
			}
			if flags.Changed("out") {
				cfg.Output.Path = out
			}
			if flags.Changed("dsn") {
				cfg.Output.DSN = dsn
			}
			if flags.Changed("skip-date") {
				cfg.Parser.SkipDates = skipDates
			} else if useSample && len(cfg.Parser.SkipDates) == 0 {
				cfg.Parser.SkipDates = sample.SkipDates()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args, useSample)
			if err != nil {
				return err
			}
			defer closeIn()

			sink, err := export.Open(cfg.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			provider := notes.NewProvider(notes.NewOptions(cfg.Parser.SkipDates, cfg.Parser.IgnoreMarkers), log)
			result, records, err := provider.Convert(ctx, in, sink)
			if err != nil {
				return err
			}

			printSummary(cmd.ErrOrStderr(), result, records, destination(cfg.Output.Format, cfg.Output.Path))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: csv, json, sqlite or postgres (default from config: csv)")
	cmd.Flags().StringVarP(&out, "out", "o", "", `Output file, "-" for stdout, or the sqlite database path`)
	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres connection string for --format postgres")
	cmd.Flags().StringSliceVar(&skipDates, "skip-date", nil, "MM/DD/YY date to skip (repeatable, replaces configured dates)")
	cmd.Flags().BoolVar(&useSample, "sample", false, "Convert the embedded sample log")

	return cmd
}

// openInput resolves the notes source. The returned close func is always safe to call.
func openInput(cmd *cobra.Command, args []string, useSample bool) (io.Reader, func(), error) {
	noop := func() {}
	switch {
	case useSample:
		return strings.NewReader(sample.Notes()), noop, nil
	case len(args) == 0 || args[0] == "-":
		return cmd.InOrStdin(), noop, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, noop, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func destination(format, path string) string {
	switch {
	case format == "postgres":
		return "postgres"
	case path == "" || path == "-":
		return "stdout"
	default:
		return path
	}
}
