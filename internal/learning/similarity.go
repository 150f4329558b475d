package learning

import (
	"fmt"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"
)

// DefaultSimilarityThreshold is the minimum combined score a similar account must reach.
const DefaultSimilarityThreshold = 70

var (
	nameWeight          = decimal.RequireFromString("0.7")
	classWeight         = decimal.RequireFromString("0.3")
	classMatch          = decimal.NewFromInt(100)
	classMismatch       = decimal.Zero
	classUnknown        = decimal.NewFromInt(50)
	exactSimilarity     = decimal.NewFromInt(100)
	defaultThresholdDec = decimal.NewFromInt(DefaultSimilarityThreshold)
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// StringSimilarity returns round((maxLen - distance) / maxLen * 100) over
// lower-cased, trimmed input. Two empty strings are 100% similar.
func StringSimilarity(a, b string) int {
	a, b = normalize(a), normalize(b)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 100
	}
	return percent(maxLen-Levenshtein(a, b), maxLen)
}

func classificationSimilarity(a, b string) decimal.Decimal {
	a, b = normalize(a), normalize(b)
	switch {
	case a == "" || b == "":
		return classUnknown
	case a == b:
		return classMatch
	default:
		return classMismatch
	}
}

// Similarity scores two (name, classification) pairs: 70% name similarity and
// 30% classification agreement. Identical pairs score exactly 100.
func Similarity(nameA, classA, nameB, classB string) decimal.Decimal {
	if normalize(nameA) == normalize(nameB) && normalize(classA) == normalize(classB) {
		return exactSimilarity
	}

	name := decimal.NewFromInt(int64(StringSimilarity(nameA, nameB)))
	return name.Mul(nameWeight).Add(classificationSimilarity(classA, classB).Mul(classWeight))
}

// Matcher finds the closest previously accepted account.
type Matcher struct {
	threshold decimal.Decimal
}

// NewMatcher creates a matcher; a threshold outside 1-100 falls back to the default.
func NewMatcher(threshold int) *Matcher {
	t := defaultThresholdDec
	if threshold > 0 && threshold <= 100 {
		t = decimal.NewFromInt(int64(threshold))
	}
	return &Matcher{threshold: t}
}

// Threshold returns the minimum combined score.
func (m *Matcher) Threshold() int {
	return int(m.threshold.IntPart())
}

// BestMatch returns the highest scoring pool entry at or above the threshold.
// Ties keep the entry encountered first in pool order.
func (m *Matcher) BestMatch(name, classification string, pool []model.MappingUsage) (model.Candidate, bool) {
	var (
		best      *model.MappingUsage
		bestScore decimal.Decimal
	)

	for i := range pool {
		entry := &pool[i]
		if entry.TargetField == "" {
			continue
		}

		score := Similarity(name, classification, entry.AccountName, entry.AccountClassification)
		if score.LessThan(m.threshold) {
			continue
		}
		if best == nil || score.GreaterThan(bestScore) {
			best = entry
			bestScore = score
		}
	}

	if best == nil {
		return model.Candidate{}, false
	}

	score := int(bestScore.Round(0).IntPart())
	return model.Candidate{
		Field:      best.TargetField,
		Score:      score,
		Confidence: model.ConfidenceFromScore(score),
		Source:     model.SourceSimilar,
		Reasoning:  fmt.Sprintf("Similar to %q (%d%% match)", best.AccountName, score),
	}, true
}
