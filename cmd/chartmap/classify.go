package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/chart-mapper/internal/chart"
	"github.com/Veraticus/chart-mapper/internal/cli"
	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/engine"
	"github.com/Veraticus/chart-mapper/internal/learning"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/spf13/cobra"
)

type classifyOptions struct {
	output      string
	delimiter   string
	keywordOnly bool
	verbose     bool
	quiet       bool
}

func classifyCmd() *cobra.Command {
	var opts classifyOptions

	cmd := &cobra.Command{
		Use:   "classify <accounts.csv>",
		Short: "Suggest fields for a chart of accounts",
		Long: `Suggest a canonical field for every account in a chart-of-accounts CSV.

The file needs a "name" column and may carry "classification", "code"
and "type" columns. Use "-" to read from stdin.`,
		Example: `  # Full pipeline with learned history
  chartmap classify accounts.csv

  # Keyword rules only, with reasoning
  chartmap classify accounts.csv --keyword-only --verbose

  # Write suggestions to a CSV
  chartmap classify accounts.csv --output suggestions.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write suggestions to this CSV file instead of printing a table")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", ",", `CSV field delimiter ("\t" or "tab" for tabs)`)
	cmd.Flags().BoolVar(&opts.keywordOnly, "keyword-only", false, "use keyword rules only, skipping code ranges and history")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show the reasoning for each suggestion")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

func runClassify(cmd *cobra.Command, input string, opts classifyOptions) error {
	delim, err := chart.ParseDelimiter(opts.delimiter)
	if err != nil {
		return err
	}

	accounts, err := readAccounts(cmd.InOrStdin(), input, delim)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return common.NewUserError(fmt.Sprintf("No accounts found in %s", input), common.ErrInvalidInput)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "No suggestions were written.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	engineOpts := engine.KeywordOnly()
	var history learning.HistoryStore
	if !opts.keywordOnly {
		store, err := initStorage(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStorage(store)

		engineOpts = engine.FullPipeline()
		engineOpts.SimilarityThreshold = cfg.Learning.SimilarityThreshold
		history = store
	}
	if !opts.quiet {
		engineOpts.Progress = cli.NewProgress(cmd.ErrOrStderr(), "Classifying accounts")
	}

	slog.Debug("Classifying chart of accounts",
		"input", input,
		"accounts", len(accounts),
		"keyword_only", opts.keywordOnly)

	result, err := engine.New(rules, history, engineOpts).Suggest(ctx, accounts)
	if err != nil {
		if handler.WasInterrupted() || errors.Is(err, context.Canceled) {
			return common.NewUserError("Classification interrupted", err)
		}
		return fmt.Errorf("classification failed: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), result, opts, delim)
}

func readAccounts(stdin io.Reader, input string, delim rune) ([]model.RawAccount, error) {
	if input == "-" {
		return chart.ReadAccounts(stdin, delim)
	}
	return chart.ReadAccountsFile(input, delim)
}

func writeResult(out io.Writer, result *engine.Result, opts classifyOptions, delim rune) error {
	if opts.output == "" {
		return cli.WriteSuggestionTable(out, result.Suggestions, result.Stats, opts.verbose)
	}

	if err := chart.WriteSuggestionsFile(opts.output, delim, result.Suggestions); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, cli.FormatSummary(result.Stats, cli.CountUnmapped(result.Suggestions)))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, cli.FormatInfo("Suggestions written to "+opts.output))
	return err
}
