// Package model defines the core data structures for the chart mapper.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Confidence is the coarse ordinal attached to every suggestion.
type Confidence int

// Confidence levels, ordered low to high.
const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

// Numeric scores used to compare candidates produced by different strategies.
const (
	ScoreNone   = 0
	ScoreLow    = 50
	ScoreMedium = 70
	ScoreHigh   = 90
)

// Thresholds for turning a numeric score back into a level.
const (
	highScoreFloor   = 80
	mediumScoreFloor = 60
)

// Score returns the canonical numeric score for the level.
func (c Confidence) Score() int {
	switch c {
	case ConfidenceHigh:
		return ScoreHigh
	case ConfidenceMedium:
		return ScoreMedium
	case ConfidenceLow:
		return ScoreLow
	default:
		return ScoreNone
	}
}

// String returns the wire name of the level.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return fmt.Sprintf("Confidence(%d)", int(c))
	}
}

// ConfidenceFromScore maps a 0-100 score onto a level.
func ConfidenceFromScore(score int) Confidence {
	switch {
	case score >= highScoreFloor:
		return ConfidenceHigh
	case score >= mediumScoreFloor:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ParseConfidence parses "low", "medium" or "high" (case-insensitive).
func ParseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return ConfidenceHigh, nil
	case "medium":
		return ConfidenceMedium, nil
	case "low":
		return ConfidenceLow, nil
	default:
		return ConfidenceLow, fmt.Errorf("unknown confidence %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Confidence) MarshalText() ([]byte, error) {
	if c < ConfidenceLow || c > ConfidenceHigh {
		return nil, fmt.Errorf("invalid confidence %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Confidence) UnmarshalText(text []byte) error {
	parsed, err := ParseConfidence(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes the level as a string.
func (c Confidence) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON decodes the level from a string.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("confidence must be a string: %w", err)
	}
	return c.UnmarshalText([]byte(s))
}
