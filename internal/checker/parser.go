package checker

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// modelReply is the schema the prompt asks the model to emit.
type modelReply struct {
	CarryOnAllowed        looseBool `json:"carry_on_allowed"`
	CheckedBaggageAllowed looseBool `json:"checked_baggage_allowed"`
	Description           string    `json:"description"`
	Restrictions          string    `json:"restrictions"`
	AdditionalNotes       string    `json:"additional_notes"`
}

var replyKeys = []string{
	"carry_on_allowed",
	"checked_baggage_allowed",
	"description",
	"restrictions",
	"additional_notes",
}

// looseBool accepts JSON booleans and the strings "true"/"false"/"yes"/"no".
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case bool:
		*b = looseBool(v)
		return nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes":
			*b = true
			return nil
		case "false", "no":
			*b = false
			return nil
		}
	}

	return fmt.Errorf("cannot interpret %s as a boolean", string(data))
}

// parseReply interprets the raw completion text. It first attempts a strict
// JSON parse (tolerating markdown fencing and surrounding prose), then falls
// back to keyword extraction. The second return value reports whether the
// fallback path produced the reply. Errors wrap ErrUnparsableReply.
func parseReply(raw string) (*modelReply, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false, fmt.Errorf("empty completion: %w", ErrUnparsableReply)
	}

	if reply, err := parseStrict(trimmed); err == nil {
		return reply, false, nil
	}

	reply, err := parseFallback(trimmed)
	if err != nil {
		return nil, true, err
	}
	return reply, true, nil
}

func parseStrict(content string) (*modelReply, error) {
	content = stripMarkdownCodeBlock(content)

	// The model occasionally wraps the object in prose; take the outermost
	// brace window.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}
	content = content[start : end+1]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, fmt.Errorf("reply is not a JSON object: %w", err)
	}

	// A parsed object with none of the schema keys carries no signal; let
	// the fallback look at the surrounding text instead.
	known := false
	for _, key := range replyKeys {
		if _, ok := fields[key]; ok {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("no recognized fields in reply object")
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("reply does not match schema: %w", err)
	}

	return &reply, nil
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}

var (
	clauseSplitter     = regexp.MustCompile(`[.,;:!?\n]`)
	negativePattern    = regexp.MustCompile(`\b(no|not|cannot|can't|prohibited|banned|forbidden|restricted|never)\b`)
	affirmativePattern = regexp.MustCompile(`\b(yes|allowed|permitted|can|ok|okay|fine|acceptable)\b`)
)

var carryOnTerms = []string{"carry-on", "carry on", "carryon", "cabin"}

// parseFallback extracts a best-effort reply from free text. The text is
// split into clauses on sentence punctuation; a clause mentioning carry-on
// or checked-baggage language is scanned for negative keywords first, then
// affirmative ones. A field with no mentioning clause stays false.
func parseFallback(raw string) (*modelReply, error) {
	lower := strings.ToLower(raw)

	foundCarryOn := false
	foundChecked := false
	reply := &modelReply{}

	for _, clause := range clauseSplitter.Split(lower, -1) {
		if mentionsAny(clause, carryOnTerms...) {
			foundCarryOn = true
			reply.CarryOnAllowed = looseBool(clausePolarity(clause))
		}
		if mentionsAny(clause, "checked") {
			foundChecked = true
			reply.CheckedBaggageAllowed = looseBool(clausePolarity(clause))
		}
	}

	if !foundCarryOn && !foundChecked {
		return nil, fmt.Errorf("no baggage keywords in reply: %w", ErrUnparsableReply)
	}

	// The raw text is the best explanation we have.
	reply.Description = excerpt(raw, 1000)
	return reply, nil
}

func mentionsAny(clause string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(clause, term) {
			return true
		}
	}
	return false
}

// clausePolarity is conservative: negatives win, and a clause with no
// polarity keyword at all counts as not allowed.
func clausePolarity(clause string) bool {
	if negativePattern.MatchString(clause) {
		return false
	}
	return affirmativePattern.MatchString(clause)
}

func excerpt(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
