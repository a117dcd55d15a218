package config

import (
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPrompt = `You are an expert TSA (Transportation Security Administration) assistant. Analyze the following item and determine if it can be carried in carry-on luggage, checked baggage, or both.

Item: {{.Item}}
{{- if .Description}}
Additional description: {{.Description}}
{{- end}}

Respond with ONLY a JSON object in exactly this format, with no surrounding prose and no markdown fencing:
{"carry_on_allowed": true, "checked_baggage_allowed": false, "description": "clear explanation of the TSA rules for this item", "restrictions": "size, quantity or packaging restrictions, empty string if none", "additional_notes": "important safety or regulatory notes, empty string if none"}

Base your response on current TSA regulations. Be specific about any size limits, liquid restrictions, or special requirements. If the item is prohibited in both carry-on and checked baggage, explain why.`

// Default returns the built-in prompt and model parameters. Used when no
// config file is present so the binary runs with zero files on disk.
func Default() *PromptConfig {
	return &PromptConfig{
		Prompt: defaultPrompt,
		Model: ModelConfig{
			MaxTokens:      1024,
			Temperature:    0.1,
			TimeoutSeconds: 30,
		},
	}
}

// LoadPromptConfig reads the prompt configuration from PROMPT_CONFIG_PATH
// (default configs/prompt.yaml). A missing file is not an error.
func LoadPromptConfig() (*PromptConfig, error) {
	path := os.Getenv("PROMPT_CONFIG_PATH")
	if path == "" {
		path = "configs/prompt.yaml"
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg PromptConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PromptConfig) {
	def := Default()
	if cfg.Prompt == "" {
		cfg.Prompt = def.Prompt
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = def.Model.MaxTokens
	}
	if cfg.Model.TimeoutSeconds == 0 {
		cfg.Model.TimeoutSeconds = def.Model.TimeoutSeconds
	}
}

func (c *PromptConfig) Validate() error {
	if _, err := template.New("prompt").Parse(c.Prompt); err != nil {
		return fmt.Errorf("invalid prompt template: %w", err)
	}
	if c.Model.Temperature < 0.0 || c.Model.Temperature > 1.0 {
		return fmt.Errorf("temperature %f out of range [0.0, 1.0]", c.Model.Temperature)
	}
	return nil
}
