// Package classification holds the ordered rule tables that drive the static classifiers.
package classification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/catalog"
	"github.com/Veraticus/chart-mapper/internal/model"
)

// ErrInvalidRuleSet is returned when a rule table fails validation.
var ErrInvalidRuleSet = errors.New("invalid rule set")

// RuleSet is the single canonical configuration of code ranges and keyword rules.
// Table order is evaluation order. A RuleSet must not be mutated once handed to a classifier.
type RuleSet struct {
	Version      string              `yaml:"version"`
	CodeRanges   []model.CodeRange   `yaml:"codeRanges"`
	KeywordRules []model.KeywordRule `yaml:"keywordRules"`
}

// DefaultRuleSet returns a fresh copy of the built-in tables.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version:      DefaultVersion,
		CodeRanges:   defaultCodeRanges(),
		KeywordRules: defaultKeywordRules(),
	}
}

// Validate checks the tables against a catalogue. Overlapping ranges are allowed;
// the first range in table order wins.
func (rs *RuleSet) Validate(cat *catalog.Catalog) error {
	if rs == nil {
		return fmt.Errorf("%w: nil rule set", ErrInvalidRuleSet)
	}

	var problems []string
	for i, r := range rs.CodeRanges {
		if r.Low > r.High {
			problems = append(problems, fmt.Sprintf("code range %d: low %d is greater than high %d", i, r.Low, r.High))
		}
		if !cat.Has(r.Field) {
			problems = append(problems, fmt.Sprintf("code range %d: unknown field %q", i, r.Field))
		}
	}

	for i, r := range rs.KeywordRules {
		if !cat.Has(r.Field) {
			problems = append(problems, fmt.Sprintf("keyword rule %d: unknown field %q", i, r.Field))
		}
		if len(r.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("keyword rule %d: no keywords", i))
		}
		for _, kw := range r.Keywords {
			if strings.TrimSpace(kw) == "" {
				problems = append(problems, fmt.Sprintf("keyword rule %d: empty keyword", i))
				break
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRuleSet, strings.Join(problems, "; "))
	}
	return nil
}

// Clone returns a deep copy.
func (rs *RuleSet) Clone() *RuleSet {
	out := &RuleSet{
		Version:      rs.Version,
		CodeRanges:   make([]model.CodeRange, len(rs.CodeRanges)),
		KeywordRules: make([]model.KeywordRule, len(rs.KeywordRules)),
	}
	copy(out.CodeRanges, rs.CodeRanges)
	for i, r := range rs.KeywordRules {
		r.Keywords = append([]string(nil), r.Keywords...)
		out.KeywordRules[i] = r
	}
	return out
}
