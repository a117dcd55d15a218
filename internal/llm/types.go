package llm

import "errors"

// Provider failure classes. Providers wrap these so callers can react
// without inspecting provider-specific error strings.
var (
	ErrAuth        = errors.New("upstream rejected credentials")
	ErrRateLimited = errors.New("upstream rate limit exceeded")
)

type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
	Usage      Usage
}

// Usage carries the provider's token accounting. Diagnostic only, but must
// not be dropped silently when the provider supplies it.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
