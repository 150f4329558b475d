package pattern

import (
	"testing"

	"github.com/Veraticus/chart-mapper/internal/classification"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	rules := []model.KeywordRule{
		{Keywords: []string{"tax expense", "tax"}, Field: "taxesLicenses", Confidence: model.ConfidenceMedium},
		{Keywords: []string{"property tax"}, Field: "rent", Confidence: model.ConfidenceHigh},
		{Keywords: []string{"Bank", "checking"}, Field: "cash", Confidence: model.ConfidenceHigh},
	}
	k := NewKeywordClassifier(rules)

	tests := []struct {
		name        string
		account     string
		wantField   string
		wantKeyword string
		wantOK      bool
	}{
		{name: "first keyword of first rule", account: "Tax Expense", wantField: "taxesLicenses", wantKeyword: "tax expense", wantOK: true},
		{name: "earlier short keyword shadows later rule", account: "Property Tax", wantField: "taxesLicenses", wantKeyword: "tax", wantOK: true},
		{name: "case insensitive keyword", account: "FIRST BANK", wantField: "cash", wantKeyword: "Bank", wantOK: true},
		{name: "substring not whole word", account: "Bankruptcy Reserve", wantField: "cash", wantKeyword: "Bank", wantOK: true},
		{name: "second keyword of later rule", account: "Checking 123", wantField: "cash", wantKeyword: "checking", wantOK: true},
		{name: "no match", account: "Widgets", wantOK: false},
		{name: "blank name", account: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := k.Classify(tt.account)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantField, got.Field)
			assert.Equal(t, model.SourceKeyword, got.Source)
			assert.Equal(t, `Matched keyword "`+tt.wantKeyword+`"`, got.Reasoning)
		})
	}
}

func TestKeywordClassifier_RuleOrderBeatsKeywordPosition(t *testing.T) {
	// The scan is rule-major: a late keyword of rule 0 beats an early keyword of rule 1.
	k := NewKeywordClassifier([]model.KeywordRule{
		{Keywords: []string{"zzz", "supplies"}, Field: "officeExpenses", Confidence: model.ConfidenceLow},
		{Keywords: []string{"shop"}, Field: "cogsMaterials", Confidence: model.ConfidenceHigh},
	})

	got, ok := k.Classify("Shop Supplies")
	require.True(t, ok)
	assert.Equal(t, "officeExpenses", got.Field)
	assert.Equal(t, model.ScoreLow, got.Score)
}

func TestKeywordClassifier_DefaultRules(t *testing.T) {
	k := NewKeywordClassifier(classification.DefaultRuleSet().KeywordRules)

	tests := []struct {
		account    string
		wantField  string
		confidence model.Confidence
	}{
		{"Owner's Draw - Jan", "ownersDraw", model.ConfidenceHigh},
		{"Checking - Ops", "cash", model.ConfidenceHigh},
		{"Accounts Payable", "ap", model.ConfidenceHigh},
		{"Cost of Sales", "cogsOther", model.ConfidenceMedium},
		{"Sales Tax Payable", "salesTaxPayable", model.ConfidenceHigh},
		{"Accumulated Depreciation - Equipment", "accumulatedDepreciation", model.ConfidenceHigh},
		{"Retained Earnings", "retainedEarnings", model.ConfidenceHigh},
		{"Sales", "revenue", model.ConfidenceHigh},
		{"Office Rent", "rent", model.ConfidenceHigh},
		{"Automobile Expense", "vehicle", model.ConfidenceHigh},
		{"Mobile Hotspot", "telephone", model.ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			got, ok := k.Classify(tt.account)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, got.Field)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}

	for _, account := range []string{"Miscellaneous XYZ-442", "Shop Supplies"} {
		_, ok := k.Classify(account)
		assert.False(t, ok, account)
	}
}

func TestKeywordClassifier_FirstMatchingRuleProperty(t *testing.T) {
	rules := classification.DefaultRuleSet().KeywordRules
	k := NewKeywordClassifier(rules)

	// A name built from rule i's first keyword resolves to rule i unless an
	// earlier rule also matches it.
	for i, r := range rules {
		name := "Acct " + r.Keywords[0]
		shadowed := false
		for _, earlier := range rules[:i] {
			if _, ok := NewKeywordClassifier([]model.KeywordRule{earlier}).Classify(name); ok {
				shadowed = true
				break
			}
		}
		if shadowed {
			continue
		}

		got, ok := k.Classify(name)
		require.True(t, ok, name)
		assert.Equal(t, r.Field, got.Field, name)
	}
}

func TestKeywordClassifier_DefaultsReachLongerKeywords(t *testing.T) {
	k := NewKeywordClassifier(classification.DefaultRuleSet().KeywordRules)

	tests := []struct {
		account     string
		wantField   string
		wantKeyword string
	}{
		{"Gas & Electric", "utilities", "gas & electric"},
		{"Cell Phone - Owner", "telephone", "cell phone"},
		{"Automobile Lease", "vehicle", "automobile"},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			got, ok := k.Classify(tt.account)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, got.Field)
			assert.Equal(t, `Matched keyword "`+tt.wantKeyword+`"`, got.Reasoning)
		})
	}
}
