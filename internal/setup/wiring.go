package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/tsa-item-checker/internal/checker"
	"github.com/povarna/tsa-item-checker/internal/config"
	"github.com/povarna/tsa-item-checker/internal/llm"
	"github.com/povarna/tsa-item-checker/internal/llm/bedrock"
	"github.com/povarna/tsa-item-checker/internal/llm/gpt"
	"github.com/povarna/tsa-item-checker/internal/llm/openrouter"
	"github.com/rs/zerolog"
)

// Config holds the process-wide settings, read once at startup and treated
// as read-only afterwards.
type Config struct {
	OpenRouterKey     string
	OpenRouterBaseURL string
	OpenRouterModelID string
	OpenAIKey         string
	OpenAIModelID     string
	AWSRegion         string
	ClaudeModelID     string
	DefaultProvider   string
}

type Dependencies struct {
	Checker *checker.Checker
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		OpenRouterKey:     getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", ""),
		OpenRouterModelID: getEnv("OPENROUTER_MODEL_ID", "anthropic/claude-3.5-sonnet"),
		OpenAIKey:         getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:     getEnv("OPEN_AI_MODEL_ID", ""),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		DefaultProvider:   getEnv("DEFAULT_LLM_PROVIDER", "openrouter"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	promptConfig, err := config.LoadPromptConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt config: %w", err)
	}

	itemChecker, err := checker.NewChecker(promptConfig, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create checker: %w", err)
	}

	return &Dependencies{
		Checker: itemChecker,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "openrouter":
		return openrouter.NewClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	default:
		return openrouter.NewClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModelID)
	}
}
