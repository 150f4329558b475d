package pattern

import (
	"fmt"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/model"
)

// Ensure KeywordClassifier implements NameClassifier.
var _ NameClassifier = (*KeywordClassifier)(nil)

type compiledRule struct {
	field      string
	keywords   []string // lower-cased, declared order
	original   []string
	confidence model.Confidence
}

// KeywordClassifier matches account names against an ordered keyword table.
type KeywordClassifier struct {
	rules []compiledRule
}

// NewKeywordClassifier creates a classifier over the given rules.
func NewKeywordClassifier(rules []model.KeywordRule) *KeywordClassifier {
	k := &KeywordClassifier{rules: make([]compiledRule, 0, len(rules))}

	// Pre-lower keywords
	for _, r := range rules {
		cr := compiledRule{
			field:      r.Field,
			confidence: r.Confidence,
			keywords:   make([]string, len(r.Keywords)),
			original:   r.Keywords,
		}
		for i, kw := range r.Keywords {
			cr.keywords[i] = strings.ToLower(kw)
		}
		k.rules = append(k.rules, cr)
	}

	return k
}

// Classify scans rules and keywords in declared order and returns the first
// rule with a keyword contained in the name. This is a first-match scan, not a best match.
func (k *KeywordClassifier) Classify(name string) (model.Candidate, bool) {
	lower := strings.ToLower(name)
	if strings.TrimSpace(lower) == "" {
		return model.Candidate{}, false
	}

	for _, r := range k.rules {
		for i, kw := range r.keywords {
			if kw == "" || !strings.Contains(lower, kw) {
				continue
			}
			return model.Candidate{
				Field:      r.field,
				Score:      r.confidence.Score(),
				Confidence: r.confidence,
				Source:     model.SourceKeyword,
				Reasoning:  fmt.Sprintf("Matched keyword %q", r.original[i]),
			}, true
		}
	}

	return model.Candidate{}, false
}
