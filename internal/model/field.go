package model

import (
	"fmt"
	"strings"
)

// Section groups canonical fields by financial statement area.
type Section string

// Statement sections.
const (
	SectionRevenue          Section = "Revenue"
	SectionCOGS             Section = "COGS"
	SectionOperatingExpense Section = "OperatingExpense"
	SectionAsset            Section = "Asset"
	SectionLiability        Section = "Liability"
	SectionEquity           Section = "Equity"
)

// ParseSection parses a section name (case-insensitive).
func ParseSection(s string) (Section, error) {
	for _, sec := range []Section{
		SectionRevenue, SectionCOGS, SectionOperatingExpense,
		SectionAsset, SectionLiability, SectionEquity,
	} {
		if strings.EqualFold(string(sec), strings.TrimSpace(s)) {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// CanonicalField is a standardized financial statement line item.
type CanonicalField struct {
	ID      string  `json:"id"`
	Section Section `json:"section"`
	Label   string  `json:"label"`
}

// CodeRange maps an inclusive range of account numbers to a field.
type CodeRange struct {
	Field      string     `json:"field" yaml:"field"`
	Label      string     `json:"label" yaml:"label"`
	Low        int        `json:"low" yaml:"low"`
	High       int        `json:"high" yaml:"high"`
	Confidence Confidence `json:"confidence" yaml:"confidence"`
}

// Contains reports whether code falls inside the range.
func (r CodeRange) Contains(code int) bool {
	return code >= r.Low && code <= r.High
}

// KeywordRule maps any of an ordered list of keywords to a field.
type KeywordRule struct {
	Field      string     `json:"field" yaml:"field"`
	Keywords   []string   `json:"keywords" yaml:"keywords"`
	Confidence Confidence `json:"confidence" yaml:"confidence"`
}
