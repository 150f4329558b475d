// Package pattern provides the static rule-based account classifiers.
package pattern

import (
	"github.com/Veraticus/chart-mapper/internal/model"
)

// CodeClassifier maps a raw account code to a candidate field.
type CodeClassifier interface {
	// Classify returns false when the code has no digits or falls in no range.
	Classify(code string) (model.Candidate, bool)
}

// NameClassifier maps an account name to a candidate field.
type NameClassifier interface {
	// Classify returns false when no rule matches the name.
	Classify(name string) (model.Candidate, bool)
}
