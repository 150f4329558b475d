package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/chart-mapper/internal/model"
)

const unmappedField = "(select manually)"

// WriteSuggestionTable prints suggestions as aligned columns followed by a
// per-source summary. verbose adds the reasoning column.
func WriteSuggestionTable(out io.Writer, suggestions []model.MappingSuggestion, stats model.SuggestionStats, verbose bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "ACCOUNT\tCLASSIFICATION\tFIELD\tSOURCE\tCONFIDENCE"
	if verbose {
		header += "\tREASONING"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, s := range suggestions {
		field := s.TargetField
		if field == "" {
			field = unmappedField
		}
		row := strings.Join([]string{
			cell(s.AccountName), cell(s.AccountClassification), field, string(s.Source), s.Confidence.String(),
		}, "\t")
		if verbose {
			row += "\t" + s.Reasoning
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "\n"+FormatSummary(stats, CountUnmapped(suggestions)))
	return err
}

// FormatSummary renders suggestion counts per source.
func FormatSummary(stats model.SuggestionStats, unmapped int) string {
	line := fmt.Sprintf("%d accounts: %d by code, %d by keyword, %d learned, %d similar",
		stats.Total, stats.AccountCode, stats.Keyword, stats.Learned, stats.Similar)
	if unmapped > 0 {
		return FormatWarning(fmt.Sprintf("%s (%d need manual selection)", line, unmapped))
	}
	return FormatSuccess(line)
}

// WriteCatalog prints canonical fields grouped by section.
func WriteCatalog(out io.Writer, version string, sections []model.Section, fieldsOf func(model.Section) []model.CanonicalField) error {
	if _, err := fmt.Fprintln(out, FormatTitle("Canonical fields (catalog "+version+")")); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, section := range sections {
		if _, err := fmt.Fprintf(w, "%s\t\t\n", strings.ToUpper(string(section))); err != nil {
			return err
		}
		for _, f := range fieldsOf(section) {
			if _, err := fmt.Fprintf(w, "  %s\t%s\t\n", f.ID, f.Label); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// CountUnmapped returns how many suggestions carry no target field.
func CountUnmapped(suggestions []model.MappingSuggestion) int {
	n := 0
	for _, s := range suggestions {
		if !s.IsMapped() {
			n++
		}
	}
	return n
}

// cell keeps tabs and newlines in account data from breaking the columns.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.NewReplacer("\t", " ", "\n", " ").Replace(s)
}
