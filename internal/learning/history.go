package learning

import (
	"fmt"

	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/shopspring/decimal"
)

// ExactMatch picks the field most often accepted for an account name.
// Ties go to the field chosen by more tenants, then to the smaller field id.
func ExactMatch(usage []model.FieldUsage) (model.Candidate, bool) {
	var (
		total  int
		winner *model.FieldUsage
	)

	for i := range usage {
		u := &usage[i]
		if u.UsageCount <= 0 || u.TargetField == "" {
			continue
		}
		total += u.UsageCount
		if winner == nil || beats(u, winner) {
			winner = u
		}
	}

	if winner == nil {
		return model.Candidate{}, false
	}

	score := percent(winner.UsageCount, total)

	return model.Candidate{
		Field:      winner.TargetField,
		Score:      score,
		Confidence: model.ConfidenceFromScore(score),
		Source:     model.SourceLearned,
		Reasoning: fmt.Sprintf("Mapped to %s by %d %s (%d of %d times)",
			winner.TargetField, winner.TenantCount, plural(winner.TenantCount, "company", "companies"),
			winner.UsageCount, total),
	}, true
}

func beats(a, b *model.FieldUsage) bool {
	if a.UsageCount != b.UsageCount {
		return a.UsageCount > b.UsageCount
	}
	if a.TenantCount != b.TenantCount {
		return a.TenantCount > b.TenantCount
	}
	return a.TargetField < b.TargetField
}

// percent returns round(part / whole * 100), rounding halves up.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(whole)), 0).
		IntPart())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
