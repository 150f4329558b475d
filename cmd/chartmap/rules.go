package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/catalog"
	"github.com/Veraticus/chart-mapper/internal/classification"
	"github.com/Veraticus/chart-mapper/internal/cli"
	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the classification rule tables",
		Long: `Export or validate the code-range and keyword tables.

Table order is evaluation order: the first matching code range and the
first matching keyword win. Export the built-in tables, edit them, and
point rules.path (or --rules) at the result.`,
	}

	cmd.AddCommand(exportRulesCmd())
	cmd.AddCommand(validateRulesCmd())

	return cmd
}

func exportRulesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the active rule tables as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rules, err := loadRules(cfg)
			if err != nil {
				return err
			}

			if output == "" {
				return classification.WriteRuleSet(cmd.OutOrStdout(), rules)
			}

			f, err := os.Create(output) //nolint:gosec // path comes from the command line
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := classification.WriteRuleSet(f, rules); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Rules written to "+output))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func validateRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rules.yaml>",
		Short: "Check a rule file against the field catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := classification.LoadRuleSet(args[0], catalog.Default())
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("%s is valid: %d code ranges, %d keyword rules",
				args[0], len(rules.CodeRanges), len(rules.KeywordRules))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
			return err
		},
	}
}

func catalogCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   "List the canonical financial statement fields",
		Example: "  chartmap catalog --section cogs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()

			sections := cat.Sections()
			if section != "" {
				sec, err := model.ParseSection(section)
				if err != nil {
					return common.NewUserError(
						fmt.Sprintf("Unknown section %q (choose from %s)", section, sectionNames(sections)),
						fmt.Errorf("%w: %w", common.ErrInvalidInput, err))
				}
				sections = []model.Section{sec}
			}

			return cli.WriteCatalog(cmd.OutOrStdout(), cat.Version(), sections, cat.BySection)
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "only list fields of this statement section")

	return cmd
}

func sectionNames(sections []model.Section) string {
	names := make([]string, len(sections))
	for i, sec := range sections {
		names[i] = string(sec)
	}
	return strings.Join(names, ", ")
}
