package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestWriteSuggestionTable(t *testing.T) {
	suggestions := []model.MappingSuggestion{
		{AccountName: "Checking - Ops", AccountClassification: "Asset", TargetField: "cash", Source: model.SourceAccountCode, Confidence: model.ConfidenceHigh, Reasoning: "Account code 1005 is in range 1000-1099 (Cash)"},
		{AccountName: "Miscellaneous XYZ-442", Source: model.SourceKeyword, Confidence: model.ConfidenceLow, Reasoning: "No keyword or learned match found - please select manually"},
	}
	stats := model.SuggestionStats{Total: 2, AccountCode: 1, Keyword: 1}

	var out bytes.Buffer
	require.NoError(t, WriteSuggestionTable(&out, suggestions, stats, false))

	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "ACCOUNT"))
	assert.NotContains(t, lines[0], "REASONING")
	assert.Contains(t, lines[1], "cash")
	assert.Contains(t, lines[1], "high")
	assert.Contains(t, lines[2], unmappedField)
	assert.Contains(t, lines[2], " - ", "missing classification renders as a dash")
	assert.Contains(t, out.String(), "2 accounts: 1 by code, 1 by keyword, 0 learned, 0 similar (1 need manual selection)")

	out.Reset()
	require.NoError(t, WriteSuggestionTable(&out, suggestions, stats, true))
	assert.Contains(t, out.String(), "REASONING")
	assert.Contains(t, out.String(), "(Cash)")
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(model.SuggestionStats{Total: 3, Learned: 2, Similar: 1}, 0)
	assert.Contains(t, got, SuccessIcon)
	assert.Contains(t, got, "3 accounts: 0 by code, 0 by keyword, 2 learned, 1 similar")
	assert.NotContains(t, got, "manual")
}

func TestWriteCatalog(t *testing.T) {
	fields := map[model.Section][]model.CanonicalField{
		model.SectionRevenue: {{ID: "revenue", Section: model.SectionRevenue, Label: "Revenue"}},
		model.SectionAsset:   {{ID: "cash", Section: model.SectionAsset, Label: "Cash"}},
	}

	var out bytes.Buffer
	err := WriteCatalog(&out, "test", []model.Section{model.SectionRevenue, model.SectionAsset}, func(s model.Section) []model.CanonicalField {
		return fields[s]
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "catalog test")
	assert.Less(t, strings.Index(text, "revenue"), strings.Index(text, "cash"))
}

func TestNewProgress(t *testing.T) {
	var out syncBuffer
	progress := NewProgress(&out, "Classifying accounts")

	progress(1, 3)
	progress(1, 3)
	progress(3, 3)

	assert.Contains(t, out.String(), "3/3")
}

func TestConfidenceStyle(t *testing.T) {
	assert.Equal(t, SuccessStyle, ConfidenceStyle(model.ConfidenceHigh))
	assert.Equal(t, WarningStyle, ConfidenceStyle(model.ConfidenceMedium))
	assert.Equal(t, ErrorStyle, ConfidenceStyle(model.ConfidenceLow))
}

func TestInterruptHandler(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Nothing was saved.")

	ctx, stop := handler.HandleInterrupts(context.Background())
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("Context should not be canceled initially")
	default:
	}
	assert.False(t, handler.WasInterrupted())

	handler.interrupt()
	handler.interrupt()

	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, strings.Count(output.String(), "Interrupted!"))
	assert.Contains(t, output.String(), "Nothing was saved.")

	stop()
	<-ctx.Done()
}

func TestNewInterruptHandler_NilWriter(t *testing.T) {
	handler := NewInterruptHandler(nil, "")
	assert.NotNil(t, handler.writer)
}
