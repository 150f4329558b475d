package pattern

import (
	"strconv"
	"testing"

	"github.com/Veraticus/chart-mapper/internal/classification"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountCode(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: "1-1005", want: 1005, wantOK: true},
		{raw: "2-1005", want: 1005, wantOK: true},
		{raw: "1005", want: 1005, wantOK: true},
		{raw: "1-1005 JBP", want: 1005, wantOK: true},
		{raw: "ACC 4010", want: 4010, wantOK: true},
		{raw: "4010.1", want: 4010, wantOK: true},
		{raw: "GL 12-340-9", want: 340, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "JBP", wantOK: false},
		{raw: "-", wantOK: false},
		{raw: "99999999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAccountCode(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCodeRangeClassifier_Classify(t *testing.T) {
	c := NewCodeRangeClassifier(classification.DefaultRuleSet().CodeRanges)

	got, ok := c.Classify("1-1005")
	require.True(t, ok)
	assert.Equal(t, "cash", got.Field)
	assert.Equal(t, model.ConfidenceHigh, got.Confidence)
	assert.Equal(t, model.ScoreHigh, got.Score)
	assert.Equal(t, model.SourceAccountCode, got.Source)
	assert.Equal(t, "Account code 1005 is in range 1000-1099 (Cash)", got.Reasoning)

	got, ok = c.Classify("2000")
	require.True(t, ok)
	assert.Equal(t, "ap", got.Field)

	_, ok = c.Classify("no digits here")
	assert.False(t, ok)

	_, ok = c.Classify("42")
	assert.False(t, ok, "codes outside every range abstain")
}

func TestCodeRangeClassifier_FirstRangeWins(t *testing.T) {
	c := NewCodeRangeClassifier([]model.CodeRange{
		{Low: 100, High: 199, Field: "cash", Confidence: model.ConfidenceLow, Label: "Wide"},
		{Low: 150, High: 159, Field: "ar", Confidence: model.ConfidenceHigh, Label: "Narrow"},
	})

	got, ok := c.Classify("155")
	require.True(t, ok)
	assert.Equal(t, "cash", got.Field)
	assert.Equal(t, model.ScoreLow, got.Score)
}

func TestCodeRangeClassifier_InclusiveBounds(t *testing.T) {
	c := NewCodeRangeClassifier([]model.CodeRange{
		{Low: 100, High: 199, Field: "cash", Confidence: model.ConfidenceMedium},
	})

	for _, code := range []string{"100", "199"} {
		_, ok := c.Classify(code)
		assert.True(t, ok, code)
	}
	for _, code := range []string{"99", "200"} {
		_, ok := c.Classify(code)
		assert.False(t, ok, code)
	}
}

func TestCodeRangeClassifier_DefaultRanges(t *testing.T) {
	c := NewCodeRangeClassifier(classification.DefaultRuleSet().CodeRanges)

	// Prefixed codes resolve through the second digit group.
	for _, r := range classification.DefaultRuleSet().CodeRanges {
		got, ok := c.Classify("9-" + strconv.Itoa(r.Low))
		require.True(t, ok)
		assert.Equal(t, r.Field, got.Field)
		assert.Equal(t, r.Confidence, got.Confidence)
	}
}
