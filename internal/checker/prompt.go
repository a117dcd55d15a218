package checker

import (
	"bytes"
	"fmt"
)

type promptData struct {
	Item        string
	Description string
}

// BuildPrompt renders the classification instruction for an item. Pure: the
// same inputs always produce the same prompt.
func (c *Checker) BuildPrompt(item string, description string) (string, error) {
	var buf bytes.Buffer
	if err := c.promptTemplate.Execute(&buf, promptData{Item: item, Description: description}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
