package checker

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/povarna/tsa-item-checker/internal/config"
	"github.com/povarna/tsa-item-checker/internal/llm"
	"github.com/povarna/tsa-item-checker/internal/models"
	"github.com/rs/zerolog"
)

// Checker runs the full item-check pipeline: validate, build prompt, invoke
// the completion API, parse the reply, assemble the result. Stateless across
// requests; safe for concurrent use.
type Checker struct {
	llmClient      llm.LLMClient
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	logger         *zerolog.Logger
}

func NewChecker(cfg *config.PromptConfig, llmClient llm.LLMClient, logger *zerolog.Logger) (*Checker, error) {
	tmpl, err := template.New("item-check").Parse(cfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &Checker{
		llmClient:      llmClient,
		promptTemplate: tmpl,
		modelConfig:    cfg.Model,
		logger:         logger,
	}, nil
}

// Check classifies a single item. The upstream call is bounded by the
// configured timeout and is never retried; every error is terminal for the
// request.
func (c *Checker) Check(ctx context.Context, req models.ItemCheckRequest) (*models.ItemCheckResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	prompt, err := c.BuildPrompt(req.Item, req.Description)
	if err != nil {
		c.logger.Error().Err(err).Str("item", req.Item).Msg("failed to build prompt")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.modelConfig.Timeout())
	defer cancel()

	resp, err := c.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   c.modelConfig.MaxTokens,
		Temperature: c.modelConfig.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			c.logger.Error().
				Str("item", req.Item).
				Dur("timeout", c.modelConfig.Timeout()).
				Msg("completion call timed out")
			return nil, ErrUpstreamTimeout
		}
		c.logger.Error().Err(err).Str("item", req.Item).Msg("completion call failed")
		return nil, &UpstreamError{Err: err}
	}

	c.logger.Debug().
		Str("item", req.Item).
		Str("stop_reason", resp.StopReason).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("completion received")

	reply, usedFallback, err := parseReply(resp.Content)
	if err != nil {
		// Keep the raw reply in the log for prompt tuning.
		c.logger.Error().
			Err(err).
			Str("item", req.Item).
			Str("content", resp.Content).
			Msg("failed to interpret model reply")
		return nil, err
	}

	if usedFallback {
		c.logger.Warn().
			Str("item", req.Item).
			Msg("strict parse failed, used keyword fallback")
	}

	// Always echo the trimmed input item, whatever the model returned.
	return &models.ItemCheckResult{
		Item:                  req.Item,
		CarryOnAllowed:        bool(reply.CarryOnAllowed),
		CheckedBaggageAllowed: bool(reply.CheckedBaggageAllowed),
		Description:           reply.Description,
		Restrictions:          reply.Restrictions,
		AdditionalNotes:       reply.AdditionalNotes,
	}, nil
}
