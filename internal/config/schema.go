package config

import "time"

// PromptConfig holds the classification prompt template and model parameters.
type PromptConfig struct {
	Prompt string      `yaml:"prompt"`
	Model  ModelConfig `yaml:"model"`
}

// ModelConfig contains sampling and budget parameters for the upstream call.
type ModelConfig struct {
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// Timeout is the per-request budget for the upstream completion call.
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}
