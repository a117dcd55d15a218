package checker

import (
	"errors"
	"strings"
	"testing"
)

const wellFormedReply = `{"carry_on_allowed": false, "checked_baggage_allowed": true, "description": "Liquids over 3.4oz are restricted in carry-on.", "restrictions": "3-1-1 rule applies", "additional_notes": ""}`

func TestParseReply_StrictJSON(t *testing.T) {
	reply, usedFallback, err := parseReply(wellFormedReply)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if usedFallback {
		t.Error("Expected strict parse, got fallback")
	}

	if bool(reply.CarryOnAllowed) {
		t.Error("Expected carry_on_allowed=false")
	}
	if !bool(reply.CheckedBaggageAllowed) {
		t.Error("Expected checked_baggage_allowed=true")
	}
	if reply.Description != "Liquids over 3.4oz are restricted in carry-on." {
		t.Errorf("Unexpected description: %q", reply.Description)
	}
	if reply.Restrictions != "3-1-1 rule applies" {
		t.Errorf("Unexpected restrictions: %q", reply.Restrictions)
	}
	if reply.AdditionalNotes != "" {
		t.Errorf("Expected empty additional_notes, got %q", reply.AdditionalNotes)
	}
}

func TestParseReply_MarkdownFencing(t *testing.T) {
	fenced := "```json\n" + wellFormedReply + "\n```"

	reply, usedFallback, err := parseReply(fenced)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if usedFallback {
		t.Error("Expected strict parse after stripping fencing")
	}
	if !bool(reply.CheckedBaggageAllowed) {
		t.Error("Expected checked_baggage_allowed=true")
	}
}

func TestParseReply_ProseWrappedJSON(t *testing.T) {
	wrapped := "Here is my analysis:\n" + wellFormedReply + "\nLet me know if you need more detail."

	reply, usedFallback, err := parseReply(wrapped)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if usedFallback {
		t.Error("Expected strict parse of the embedded object")
	}
	if bool(reply.CarryOnAllowed) {
		t.Error("Expected carry_on_allowed=false")
	}
}

func TestParseReply_BooleanLikeStrings(t *testing.T) {
	raw := `{"carry_on_allowed": "yes", "checked_baggage_allowed": "No", "description": "d", "restrictions": "", "additional_notes": ""}`

	reply, usedFallback, err := parseReply(raw)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if usedFallback {
		t.Error("Expected strict parse with coerced booleans")
	}
	if !bool(reply.CarryOnAllowed) {
		t.Error(`Expected "yes" to coerce to true`)
	}
	if bool(reply.CheckedBaggageAllowed) {
		t.Error(`Expected "No" to coerce to false`)
	}
}

func TestParseReply_MissingFieldsDefaultConservatively(t *testing.T) {
	raw := `{"description": "A common household item."}`

	reply, usedFallback, err := parseReply(raw)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if usedFallback {
		t.Error("Expected strict parse")
	}
	if bool(reply.CarryOnAllowed) || bool(reply.CheckedBaggageAllowed) {
		t.Error("Expected absent booleans to default to false")
	}
	if reply.Restrictions != "" || reply.AdditionalNotes != "" {
		t.Error("Expected absent strings to default to empty")
	}
}

func TestParseReply_FallbackKeywords(t *testing.T) {
	raw := "Sure! Here's the answer: yes for carry-on, no for checked."

	reply, usedFallback, err := parseReply(raw)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if !usedFallback {
		t.Error("Expected fallback path for free text")
	}

	if !bool(reply.CarryOnAllowed) {
		t.Error("Expected carry_on_allowed=true from fallback")
	}
	if bool(reply.CheckedBaggageAllowed) {
		t.Error("Expected checked_baggage_allowed=false from fallback")
	}
	if !strings.Contains(reply.Description, "yes for carry-on") {
		t.Errorf("Expected raw text as description, got %q", reply.Description)
	}
	if reply.Restrictions != "" || reply.AdditionalNotes != "" {
		t.Error("Expected empty restrictions and notes on fallback")
	}
}

func TestParseReply_FallbackNegativeLanguage(t *testing.T) {
	raw := "This item is prohibited in carry-on luggage. It is allowed in checked baggage."

	reply, usedFallback, err := parseReply(raw)
	if err != nil {
		t.Fatalf("parseReply failed: %v", err)
	}
	if !usedFallback {
		t.Error("Expected fallback path")
	}
	if bool(reply.CarryOnAllowed) {
		t.Error("Expected carry_on_allowed=false for prohibited language")
	}
	if !bool(reply.CheckedBaggageAllowed) {
		t.Error("Expected checked_baggage_allowed=true for allowed language")
	}
}

func TestParseReply_NoSignal(t *testing.T) {
	_, _, err := parseReply("I'm sorry, I don't understand the question.")
	if !errors.Is(err, ErrUnparsableReply) {
		t.Errorf("Expected ErrUnparsableReply, got %v", err)
	}
}

func TestParseReply_EmptyReply(t *testing.T) {
	_, _, err := parseReply("   \n  ")
	if !errors.Is(err, ErrUnparsableReply) {
		t.Errorf("Expected ErrUnparsableReply, got %v", err)
	}
}

func TestParseReply_EmptyObjectFallsThrough(t *testing.T) {
	// A bare {} carries no schema keys; the heuristic sees no keywords
	// either, so the reply is unparsable.
	_, _, err := parseReply("{}")
	if !errors.Is(err, ErrUnparsableReply) {
		t.Errorf("Expected ErrUnparsableReply, got %v", err)
	}
}
