package checker

import (
	"strings"
	"testing"

	"github.com/povarna/tsa-item-checker/internal/config"
	"github.com/rs/zerolog"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	logger := zerolog.Nop()

	c, err := NewChecker(config.Default(), nil, &logger)
	if err != nil {
		t.Fatalf("NewChecker failed: %v", err)
	}
	return c
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	c := newTestChecker(t)

	first, err := c.BuildPrompt("toothpaste", "travel size tube")
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	second, err := c.BuildPrompt("toothpaste", "travel size tube")
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}

	if first != second {
		t.Error("Expected identical prompts for identical inputs")
	}
}

func TestBuildPrompt_ContainsInstruction(t *testing.T) {
	c := newTestChecker(t)

	prompt, err := c.BuildPrompt("pocket knife", "")
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}

	if !strings.Contains(prompt, "pocket knife") {
		t.Error("Expected prompt to contain the item name")
	}
	for _, key := range []string{"carry_on_allowed", "checked_baggage_allowed", "description", "restrictions", "additional_notes"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("Expected prompt to name the %q field", key)
		}
	}
	if !strings.Contains(prompt, "ONLY a JSON object") {
		t.Error("Expected prompt to demand JSON-only output")
	}
}

func TestBuildPrompt_DescriptionOptional(t *testing.T) {
	c := newTestChecker(t)

	without, err := c.BuildPrompt("laptop", "")
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	if strings.Contains(without, "Additional description") {
		t.Error("Expected no description line when description is empty")
	}

	with, err := c.BuildPrompt("laptop", "gaming laptop with large battery")
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	if !strings.Contains(with, "Additional description: gaming laptop with large battery") {
		t.Error("Expected description line when description is set")
	}
}
