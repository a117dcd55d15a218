package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/tsa-item-checker/internal/checker"
	"github.com/povarna/tsa-item-checker/internal/models"
)

// CheckItemInput is the MCP tool input schema for an item check.
type CheckItemInput struct {
	Item        string `json:"item" jsonschema:"name of the item to check"`
	Description string `json:"description,omitempty" jsonschema:"optional description of the item"`
}

// NewCheckItemHandler returns a tool handler that uses the given checker.
// Pass the returned function to mcp.AddTool.
func NewCheckItemHandler(itemChecker *checker.Checker) func(context.Context, *mcp.CallToolRequest, CheckItemInput) (*mcp.CallToolResult, models.ItemCheckResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CheckItemInput) (*mcp.CallToolResult, models.ItemCheckResult, error) {
		return CheckItem(ctx, itemChecker, req, input)
	}
}

// CheckItem runs the item check pipeline and returns the result.
func CheckItem(
	ctx context.Context,
	itemChecker *checker.Checker,
	req *mcp.CallToolRequest,
	input CheckItemInput,
) (*mcp.CallToolResult, models.ItemCheckResult, error) {
	result, err := itemChecker.Check(ctx, models.ItemCheckRequest{
		Item:        input.Item,
		Description: input.Description,
	})
	if err != nil {
		return nil, models.ItemCheckResult{}, err
	}

	return nil, *result, nil
}
