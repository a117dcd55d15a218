package checker

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/tsa-item-checker/internal/config"
	"github.com/povarna/tsa-item-checker/internal/llm"
	"github.com/povarna/tsa-item-checker/internal/llm/mocks"
	"github.com/povarna/tsa-item-checker/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newMockedChecker(t *testing.T) (*Checker, *mocks.MockLLMClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockLLMClient(ctrl)

	logger := zerolog.Nop()
	c, err := NewChecker(config.Default(), mockClient, &logger)
	if err != nil {
		t.Fatalf("NewChecker failed: %v", err)
	}
	return c, mockClient
}

func TestCheck_Success(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{
			Content:    wellFormedReply,
			StopReason: "end_turn",
			Usage:      llm.Usage{PromptTokens: 120, CompletionTokens: 60, TotalTokens: 180},
		}, nil)

	result, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "toothpaste"})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if result.Item != "toothpaste" {
		t.Errorf("Expected item 'toothpaste', got %q", result.Item)
	}
	if result.CarryOnAllowed {
		t.Error("Expected carry_on_allowed=false")
	}
	if !result.CheckedBaggageAllowed {
		t.Error("Expected checked_baggage_allowed=true")
	}
	if result.Restrictions != "3-1-1 rule applies" {
		t.Errorf("Unexpected restrictions: %q", result.Restrictions)
	}
}

func TestCheck_EchoesTrimmedItem(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	// The model claims a different item name; the input wins.
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{
			Content: `{"item": "something else", "carry_on_allowed": true, "checked_baggage_allowed": true, "description": "Fine.", "restrictions": "", "additional_notes": ""}`,
		}, nil)

	result, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "  laptop  "})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if result.Item != "laptop" {
		t.Errorf("Expected trimmed input item 'laptop', got %q", result.Item)
	}
}

func TestCheck_ValidationFailure_NoUpstreamCall(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	mockClient.EXPECT().InvokeModel(gomock.Any(), gomock.Any()).Times(0)

	_, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "   "})
	if !errors.Is(err, models.ErrItemRequired) {
		t.Errorf("Expected ErrItemRequired, got %v", err)
	}
}

func TestCheck_UpstreamTimeout(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded).
		Times(1) // never retried

	_, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "toothpaste"})
	if !errors.Is(err, ErrUpstreamTimeout) {
		t.Errorf("Expected ErrUpstreamTimeout, got %v", err)
	}
}

func TestCheck_UpstreamFailure(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	providerErr := errors.New("status 401: invalid key: upstream rejected credentials")
	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(nil, providerErr).
		Times(1)

	_, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "toothpaste"})

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	// Sanitized message, provider detail only reachable via Unwrap
	if upstreamErr.Error() != "upstream completion API failure" {
		t.Errorf("Unexpected error message: %q", upstreamErr.Error())
	}
	if !errors.Is(err, providerErr) {
		t.Error("Expected provider error to be wrapped")
	}
}

func TestCheck_FallbackParse(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{
			Content: "Sure! Here's the answer: yes for carry-on, no for checked.",
		}, nil)

	result, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "umbrella"})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !result.CarryOnAllowed {
		t.Error("Expected carry_on_allowed=true from fallback")
	}
	if result.CheckedBaggageAllowed {
		t.Error("Expected checked_baggage_allowed=false from fallback")
	}
}

func TestCheck_UnparsableReply(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{Content: "As an AI model I cannot help with that."}, nil)

	_, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "toothpaste"})
	if !errors.Is(err, ErrUnparsableReply) {
		t.Errorf("Expected ErrUnparsableReply, got %v", err)
	}
}

func TestCheck_RequestUsesConfiguredParameters(t *testing.T) {
	c, mockClient := newMockedChecker(t)

	mockClient.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
			if request.MaxTokens != config.Default().Model.MaxTokens {
				t.Errorf("Unexpected max tokens: %d", request.MaxTokens)
			}
			if request.Temperature != config.Default().Model.Temperature {
				t.Errorf("Unexpected temperature: %f", request.Temperature)
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Error("Expected a deadline on the upstream context")
			}
			return &llm.LLMResponse{Content: wellFormedReply}, nil
		})

	if _, err := c.Check(context.Background(), models.ItemCheckRequest{Item: "toothpaste"}); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
}
