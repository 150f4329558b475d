package model

import "time"

// Source identifies which strategy produced a suggestion.
type Source string

// Suggestion sources.
const (
	SourceAccountCode Source = "accountCode"
	SourceKeyword     Source = "keyword"
	SourceLearned     Source = "learned"
	SourceSimilar     Source = "similar"
)

func (s Source) String() string {
	return string(s)
}

// AcceptedMapping is a mapping a human confirmed for one tenant's account.
type AcceptedMapping struct {
	CreatedAt             time.Time `json:"createdAt" csv:"-"`
	TenantID              string    `json:"companyId" csv:"company_id"`
	AccountName           string    `json:"qbAccount" csv:"account_name"`
	AccountClassification string    `json:"qbAccountClassification,omitempty" csv:"account_classification"`
	TargetField           string    `json:"targetField" csv:"target_field"`
	ID                    int64     `json:"id" csv:"-"`
}

// FieldUsage aggregates accepted mappings of one account name to one field.
type FieldUsage struct {
	TargetField string
	UsageCount  int
	TenantCount int
}

// MappingUsage aggregates accepted mappings per (name, classification, field).
type MappingUsage struct {
	AccountName           string
	AccountClassification string
	TargetField           string
	UsageCount            int
	TenantCount           int
}

// Candidate is one strategy's proposal for an account.
type Candidate struct {
	Field      string
	Reasoning  string
	Source     Source
	Score      int
	Confidence Confidence
}

// MappingSuggestion is the arbitrated result for one account.
type MappingSuggestion struct {
	AccountName           string     `json:"qbAccount" csv:"account_name"`
	AccountClassification string     `json:"qbAccountClassification" csv:"account_classification"`
	TargetField           string     `json:"targetField" csv:"target_field"`
	Reasoning             string     `json:"reasoning" csv:"reasoning"`
	Source                Source     `json:"source" csv:"source"`
	Confidence            Confidence `json:"confidence" csv:"confidence"`
}

// IsMapped reports whether the suggestion carries a target field.
func (s MappingSuggestion) IsMapped() bool {
	return s.TargetField != ""
}

// SuggestionStats counts suggestions per source.
type SuggestionStats struct {
	Total       int `json:"total"`
	AccountCode int `json:"accountCode"`
	Keyword     int `json:"keyword"`
	Learned     int `json:"learned"`
	Similar     int `json:"similar"`
}

// Add counts one suggestion.
func (s *SuggestionStats) Add(suggestion MappingSuggestion) {
	s.Total++
	switch suggestion.Source {
	case SourceAccountCode:
		s.AccountCode++
	case SourceKeyword:
		s.Keyword++
	case SourceLearned:
		s.Learned++
	case SourceSimilar:
		s.Similar++
	}
}
