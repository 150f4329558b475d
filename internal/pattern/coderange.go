package pattern

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Veraticus/chart-mapper/internal/model"
)

var (
	// A ledger prefix such as the "1" in "1-1005" is not part of the account number.
	prefixedCodeRegex = regexp.MustCompile(`(\d+)-(\d+)`)
	digitsRegex       = regexp.MustCompile(`\d+`)
)

// Ensure CodeRangeClassifier implements CodeClassifier.
var _ CodeClassifier = (*CodeRangeClassifier)(nil)

// CodeRangeClassifier maps account numbers to fields via an ordered range table.
type CodeRangeClassifier struct {
	ranges []model.CodeRange
}

// NewCodeRangeClassifier creates a classifier over the given ranges.
// The first range containing a code wins, so overlapping ranges resolve by table order.
func NewCodeRangeClassifier(ranges []model.CodeRange) *CodeRangeClassifier {
	return &CodeRangeClassifier{ranges: ranges}
}

// ParseAccountCode extracts the effective account number from a raw code.
func ParseAccountCode(raw string) (int, bool) {
	var digits string
	if m := prefixedCodeRegex.FindStringSubmatch(raw); m != nil {
		digits = m[2]
	} else {
		digits = digitsRegex.FindString(raw)
	}

	if digits == "" {
		return 0, false
	}

	code, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return code, true
}

// Classify returns the first range containing the parsed code.
func (c *CodeRangeClassifier) Classify(raw string) (model.Candidate, bool) {
	code, ok := ParseAccountCode(raw)
	if !ok {
		return model.Candidate{}, false
	}

	for _, r := range c.ranges {
		if !r.Contains(code) {
			continue
		}
		return model.Candidate{
			Field:      r.Field,
			Score:      r.Confidence.Score(),
			Confidence: r.Confidence,
			Source:     model.SourceAccountCode,
			Reasoning:  fmt.Sprintf("Account code %d is in range %d-%d (%s)", code, r.Low, r.High, r.Label),
		}, true
	}

	return model.Candidate{}, false
}
