package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidence_Score(t *testing.T) {
	assert.Equal(t, 90, ConfidenceHigh.Score())
	assert.Equal(t, 70, ConfidenceMedium.Score())
	assert.Equal(t, 50, ConfidenceLow.Score())
	assert.Equal(t, 0, Confidence(7).Score())
}

func TestConfidenceFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  Confidence
	}{
		{100, ConfidenceHigh},
		{80, ConfidenceHigh},
		{79, ConfidenceMedium},
		{70, ConfidenceMedium},
		{60, ConfidenceMedium},
		{59, ConfidenceLow},
		{0, ConfidenceLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceFromScore(tt.score), "score %d", tt.score)
	}
}

func TestConfidence_JSON(t *testing.T) {
	data, err := json.Marshal(ConfidenceMedium)
	require.NoError(t, err)
	assert.Equal(t, `"medium"`, string(data))

	var c Confidence
	require.NoError(t, json.Unmarshal([]byte(`"HIGH"`), &c))
	assert.Equal(t, ConfidenceHigh, c)

	assert.Error(t, json.Unmarshal([]byte(`"certain"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`2`), &c))
}

func TestRawAccount_UnmarshalJSON(t *testing.T) {
	var accounts []RawAccount
	body := `["Checking", {"name": "Sales", "classification": "Revenue", "accountCode": "4000"}, {"name": "Loan", "accountType": "Liability"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &accounts))
	require.Len(t, accounts, 3)

	assert.Equal(t, RawAccount{Name: "Checking"}, accounts[0])
	assert.Equal(t, "Revenue", accounts[1].EffectiveClassification())
	assert.Equal(t, "4000", accounts[1].Code)
	assert.Equal(t, "Liability", accounts[2].EffectiveClassification())

	var bad RawAccount
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestSuggestionStats_Add(t *testing.T) {
	var stats SuggestionStats
	for _, src := range []Source{SourceAccountCode, SourceKeyword, SourceKeyword, SourceLearned, SourceSimilar} {
		stats.Add(MappingSuggestion{Source: src})
	}
	assert.Equal(t, SuggestionStats{Total: 5, AccountCode: 1, Keyword: 2, Learned: 1, Similar: 1}, stats)
}

func TestParseSection(t *testing.T) {
	sec, err := ParseSection("operatingexpense")
	require.NoError(t, err)
	assert.Equal(t, SectionOperatingExpense, sec)

	_, err = ParseSection("Income")
	assert.Error(t, err)
}
