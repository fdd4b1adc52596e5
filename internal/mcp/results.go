package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a successful payload as indented JSON text content.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to encode response: " + err.Error())
	}
	return mcp.NewToolResultText(string(data))
}

// jsonErrorResult marshals a structured error payload (compact) and flags the
// result as an error. Used for caller mistakes like unknown ids; transport
// and backend failures go through mcp.NewToolResultError instead.
func jsonErrorResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("failed to encode error response: " + err.Error())
	}
	result := mcp.NewToolResultText(string(data))
	result.IsError = true
	return result
}
