// ABOUTME: Ordered fallback pipeline that tries extraction strategies until one is acceptable
// ABOUTME: Classifies every attempt as success, soft failure or hard failure

package extraction

import (
	"context"
	"errors"
	"fmt"

	"studio-app-api/core/domain"
	coreerrors "studio-app-api/core/errors"
	"studio-app-api/core/interfaces"
)

// AttemptFunc runs one extraction strategy against a reference
type AttemptFunc func(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error)

// Strategy is one way of obtaining an article.
// MinContentLength > 0 turns short bodies into soft failures.
type Strategy struct {
	Name             string
	Attempt          AttemptFunc
	MinContentLength int
}

// Pipeline runs strategies in order and stops at the first acceptable article
type Pipeline struct {
	strategies []Strategy
	logger     interfaces.Logger
}

// NewPipeline creates a pipeline; strategy order is precedence order
func NewPipeline(logger interfaces.Logger, strategies ...Strategy) *Pipeline {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Pipeline{
		strategies: strategies,
		logger:     logger,
	}
}

// Strategies returns the strategy names in order
func (p *Pipeline) Strategies() []string {
	names := make([]string, len(p.strategies))
	for i, s := range p.strategies {
		names[i] = s.Name
	}
	return names
}

// Run executes the strategies. It returns either a normalized article or an
// ExtractionFailedError, never both and never a partial article.
func (p *Pipeline) Run(ctx context.Context, ref domain.ArticleReference) (*domain.Article, error) {
	failures := make([]coreerrors.StrategyFailure, 0, len(p.strategies))

	for _, strategy := range p.strategies {
		if err := ctx.Err(); err != nil {
			failures = append(failures, coreerrors.StrategyFailure{Strategy: strategy.Name, Err: err})
			break
		}

		article, err := strategy.Attempt(ctx, ref)
		if err == nil && article == nil {
			err = errors.New("strategy returned no article")
		}
		if err != nil {
			p.logger.Warn("Extraction strategy failed", map[string]interface{}{
				"strategy": strategy.Name,
				"url":      ref.URL,
				"error":    err.Error(),
			})
			failures = append(failures, coreerrors.StrategyFailure{Strategy: strategy.Name, Err: err})
			continue
		}

		normalized := Normalize(*article, ref, strategy.Name)

		if strategy.MinContentLength > 0 {
			if length := ContentLength(normalized); length < strategy.MinContentLength {
				p.logger.Info("Extraction strategy returned too little content", map[string]interface{}{
					"strategy": strategy.Name,
					"url":      ref.URL,
					"length":   length,
					"minimum":  strategy.MinContentLength,
				})
				failures = append(failures, coreerrors.StrategyFailure{
					Strategy: strategy.Name,
					Soft:     true,
					Err:      fmt.Errorf("%w: %d of %d characters", coreerrors.ErrContentTooShort, length, strategy.MinContentLength),
				})
				continue
			}
		}

		p.logger.Info("Extraction strategy succeeded", map[string]interface{}{
			"strategy": strategy.Name,
			"url":      ref.URL,
			"length":   ContentLength(normalized),
		})
		return &normalized, nil
	}

	return nil, &coreerrors.ExtractionFailedError{
		URL:      ref.URL,
		Failures: failures,
	}
}
