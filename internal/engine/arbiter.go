package engine

import "github.com/Veraticus/chart-mapper/internal/model"

// NoMatchReasoning explains a suggestion that needs manual selection.
const NoMatchReasoning = "No keyword or learned match found - please select manually"

// Arbitrate combines the candidates for one account into a single suggestion.
//
// The code-range candidate is authoritative unless a keyword candidate scores
// strictly higher. The learned candidate (the exact match when present,
// otherwise the similarity match) then replaces the result only when it too
// scores strictly higher. Nil candidates abstained.
func Arbitrate(name, classification string, code, keyword, exact, similar *model.Candidate) model.MappingSuggestion {
	var best *model.Candidate

	if code != nil {
		c := *code
		c.Source = model.SourceAccountCode
		best = &c
	}

	if keyword != nil && (best == nil || keyword.Score > best.Score) {
		k := *keyword
		k.Source = model.SourceKeyword
		best = &k
	}

	learned := exact
	if learned == nil {
		learned = similar
	}
	if learned != nil && (best == nil || learned.Score > best.Score) {
		best = learned
	}

	if best == nil || best.Field == "" {
		return model.MappingSuggestion{
			AccountName:           name,
			AccountClassification: classification,
			Confidence:            model.ConfidenceLow,
			Reasoning:             NoMatchReasoning,
			Source:                model.SourceKeyword,
		}
	}

	return model.MappingSuggestion{
		AccountName:           name,
		AccountClassification: classification,
		TargetField:           best.Field,
		Confidence:            best.Confidence,
		Reasoning:             best.Reasoning,
		Source:                best.Source,
	}
}
