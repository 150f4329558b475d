// Package engine runs the classification strategies over a chart of accounts.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/chart-mapper/internal/classification"
	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/learning"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/Veraticus/chart-mapper/internal/pattern"
)

// ProgressFunc is called after each account with the number done so far.
type ProgressFunc func(done, total int)

// Options selects which strategies an entry point runs.
type Options struct {
	Progress            ProgressFunc
	SimilarityThreshold int
	EnableCodeRanges    bool
	EnableKeywords      bool
	EnableLearning      bool
}

// KeywordOnly runs the keyword rules and nothing else.
func KeywordOnly() Options {
	return Options{EnableKeywords: true}
}

// FullPipeline runs code ranges, keywords and learned history.
func FullPipeline() Options {
	return Options{
		EnableCodeRanges:    true,
		EnableKeywords:      true,
		EnableLearning:      true,
		SimilarityThreshold: learning.DefaultSimilarityThreshold,
	}
}

// Result is the outcome of one batch.
type Result struct {
	Suggestions []model.MappingSuggestion `json:"mappings"`
	Stats       model.SuggestionStats     `json:"stats"`
}

// Engine classifies batches of raw accounts. It holds no per-request state.
type Engine struct {
	codes   pattern.CodeClassifier
	names   pattern.NameClassifier
	history learning.HistoryStore
	matcher *learning.Matcher
	opts    Options
}

// New creates an engine over the given rule set. history may be nil, in which
// case learning is disabled regardless of opts.
func New(rules *classification.RuleSet, history learning.HistoryStore, opts Options) *Engine {
	if rules == nil {
		rules = classification.DefaultRuleSet()
	}
	if history == nil {
		opts.EnableLearning = false
	}

	return &Engine{
		codes:   pattern.NewCodeRangeClassifier(rules.CodeRanges),
		names:   pattern.NewKeywordClassifier(rules.KeywordRules),
		history: history,
		matcher: learning.NewMatcher(opts.SimilarityThreshold),
		opts:    opts,
	}
}

// Options returns the strategies the engine runs, with the similarity
// threshold the matcher actually applies.
func (e *Engine) Options() Options {
	opts := e.opts
	opts.SimilarityThreshold = e.matcher.Threshold()
	return opts
}

// Suggest classifies accounts and returns one suggestion per account in input
// order. History failures never fail the batch: affected accounts fall back to
// code-range and keyword evidence. Only context cancellation aborts.
func (e *Engine) Suggest(ctx context.Context, accounts []model.RawAccount) (*Result, error) {
	result := &Result{Suggestions: make([]model.MappingSuggestion, 0, len(accounts))}
	if len(accounts) == 0 {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := common.LoggerFrom(ctx)
	start := time.Now()

	var pool []model.MappingUsage
	poolLoaded := false
	if e.opts.EnableLearning {
		var err error
		pool, err = e.history.MappingPool(ctx)
		switch {
		case err == nil:
			poolLoaded = true
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			logger.Warn("Mapping pool unavailable, similarity matching disabled for batch",
				"accounts", len(accounts),
				"error", err)
		}
	}

	for i, account := range accounts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("classification aborted after %d of %d accounts: %w", i, len(accounts), err)
		}

		suggestion := e.classify(ctx, account, pool, poolLoaded)
		result.Suggestions = append(result.Suggestions, suggestion)
		result.Stats.Add(suggestion)

		if e.opts.Progress != nil {
			e.opts.Progress(i+1, len(accounts))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Classified accounts",
		"total", result.Stats.Total,
		"account_code", result.Stats.AccountCode,
		"keyword", result.Stats.Keyword,
		"learned", result.Stats.Learned,
		"similar", result.Stats.Similar,
		"duration", time.Since(start))

	return result, nil
}

func (e *Engine) classify(ctx context.Context, account model.RawAccount, pool []model.MappingUsage, poolLoaded bool) model.MappingSuggestion {
	class := account.EffectiveClassification()

	var code, keyword, exact, similar *model.Candidate

	if e.opts.EnableCodeRanges && account.Code != "" {
		if c, ok := e.codes.Classify(account.Code); ok {
			code = &c
		}
	}

	if e.opts.EnableKeywords {
		if c, ok := e.names.Classify(account.Name); ok {
			keyword = &c
		}
	}

	if e.opts.EnableLearning && strings.TrimSpace(account.Name) != "" {
		exact, similar = e.learned(ctx, account.Name, class, pool, poolLoaded)
	}

	return Arbitrate(account.Name, class, code, keyword, exact, similar)
}

// learned returns the exact and similarity candidates, or neither when the
// account's history cannot be read.
func (e *Engine) learned(ctx context.Context, name, class string, pool []model.MappingUsage, poolLoaded bool) (exact, similar *model.Candidate) {
	usage, err := e.history.AccountHistory(ctx, name)
	if err != nil {
		common.LoggerFrom(ctx).Warn("Mapping history unavailable, using rules only",
			"account", name,
			"error", err)
		return nil, nil
	}

	if c, ok := learning.ExactMatch(usage); ok {
		return &c, nil
	}

	if poolLoaded {
		if c, ok := e.matcher.BestMatch(name, class, pool); ok {
			return nil, &c
		}
	}

	return nil, nil
}
