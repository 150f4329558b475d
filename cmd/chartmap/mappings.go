package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/chart-mapper/internal/catalog"
	"github.com/Veraticus/chart-mapper/internal/chart"
	"github.com/Veraticus/chart-mapper/internal/cli"
	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func mappingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Manage accepted mappings",
		Long: `List, import, back up and delete the mappings companies have accepted.

Accepted mappings are the history the learned strategies draw on.`,
	}

	cmd.AddCommand(listMappingsCmd())
	cmd.AddCommand(importMappingsCmd())
	cmd.AddCommand(clearMappingsCmd())
	cmd.AddCommand(deleteMappingCmd())
	cmd.AddCommand(backupCmd())

	return cmd
}

func listMappingsCmd() *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "list <company>",
		Short: "List a company's accepted mappings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			mappings, err := store.GetMappings(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get mappings: %w", err)
			}

			out := cmd.OutOrStdout()
			if asCSV {
				return chart.WriteMappings(out, chart.DefaultDelimiter, mappings)
			}

			if len(mappings) == 0 {
				_, err := fmt.Fprintln(out, cli.InfoStyle.Render("No mappings found. Use 'chartmap mappings import' to add some."))
				return err
			}
			return writeMappingTable(out, mappings)
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "print as CSV")

	return cmd
}

func writeMappingTable(out io.Writer, mappings []model.AcceptedMapping) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Account"),
		headerStyle.Render("Classification"),
		headerStyle.Render("Field")); err != nil {
		return err
	}

	for _, m := range mappings {
		class := m.AccountClassification
		if class == "" {
			class = "-"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.AccountName, class, m.TargetField); err != nil {
			return err
		}
	}

	return w.Flush()
}

func importMappingsCmd() *cobra.Command {
	var (
		company   string
		delimiter string
		backup    string
	)

	cmd := &cobra.Command{
		Use:   "import <mappings.csv>",
		Short: "Replace companies' mappings from a CSV",
		Long: `Replace the accepted mappings of every company named in a CSV.

Columns: company_id, account_name, account_classification, target_field.
Rows without a company_id belong to --company. Each company's existing
mappings are replaced by the rows given for it.`,
		Example: `  chartmap mappings import history.csv
  chartmap mappings import acme.csv --company acme --backup before-import.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			delim, err := chart.ParseDelimiter(delimiter)
			if err != nil {
				return err
			}

			mappings, err := chart.ReadMappingsFile(args[0], delim)
			if err != nil {
				return err
			}

			groups, err := chart.GroupByTenant(mappings, company)
			if err != nil {
				return common.NewUserError("Rows without company_id need --company", err)
			}
			if err := checkTargetFields(catalog.Default(), mappings); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if backup != "" {
				if err := store.Backup(ctx, backup); err != nil {
					return fmt.Errorf("failed to back up database: %w", err)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Backed up database to "+backup)); err != nil {
					return err
				}
			}

			tenants := make([]string, 0, len(groups))
			for tenant := range groups {
				tenants = append(tenants, tenant)
			}
			sort.Strings(tenants)

			for _, tenant := range tenants {
				saved, err := store.ReplaceMappings(ctx, tenant, groups[tenant])
				if err != nil {
					return fmt.Errorf("failed to import mappings for %s: %w", tenant, err)
				}
				msg := fmt.Sprintf("Imported %d mappings for %s", len(saved), tenant)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&company, "company", "c", "", "company for rows without company_id")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "CSV field delimiter")
	cmd.Flags().StringVar(&backup, "backup", "", "back up the database to this path before importing")

	return cmd
}

// checkTargetFields rejects mappings whose field is not in the catalogue.
func checkTargetFields(cat *catalog.Catalog, mappings []model.AcceptedMapping) error {
	var unknown []string
	seen := make(map[string]bool)
	for _, m := range mappings {
		field := strings.TrimSpace(m.TargetField)
		if !cat.Has(field) && !seen[field] {
			seen[field] = true
			unknown = append(unknown, strconv.Quote(field))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", common.ErrUnknownField, strings.Join(unknown, ", "))
	}
	return nil
}

func clearMappingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <company>",
		Short: "Delete every mapping of a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			deleted, err := store.DeleteMappingsForTenant(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to clear mappings: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted %d mappings for %s", deleted, args[0])))
			return err
		},
	}
}

func deleteMappingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one mapping by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid mapping ID: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.DeleteMapping(ctx, id); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("Mapping %d does not exist", id), err)
				}
				return fmt.Errorf("failed to delete mapping: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted mapping %d", id)))
			return err
		},
	}
}

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <path>",
		Short: "Copy the mapping database to a new file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.Backup(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					return common.NewUserError(args[0]+" already exists", err)
				}
				return fmt.Errorf("failed to back up database: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Backed up database to "+args[0]))
			return err
		},
	}
}
