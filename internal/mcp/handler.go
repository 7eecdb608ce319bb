package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/2beens/sportlog/internal/sports"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type sportsReader interface {
	Profile(ctx context.Context, userID string) (*sports.UserProfile, error)
	ListSports(ctx context.Context, userID string) ([]sports.Sport, error)
	ListRecords(ctx context.Context, sportID string) ([]sports.Record, error)
}

// Handler turns MCP tool calls into sports service calls and formats the results as JSON text.
type Handler struct {
	service sportsReader
}

func NewHandler(service sportsReader) *Handler {
	return &Handler{
		service: service,
	}
}

type UserInput struct {
	UserID string `json:"user_id" jsonschema:"User id (UUID)"`
}

type SportInput struct {
	SportID string `json:"sport_id" jsonschema:"Sport id (UUID)"`
}

// GetUserProfileTool returns the MCP tool handler for get_user_profile.
func (h *Handler) GetUserProfileTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		profile, err := h.service.Profile(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching profile: " + describe(err)), nil, nil
		}
		return jsonResult(profile), nil, nil
	}
}

// ListSportsTool returns the MCP tool handler for list_sports.
func (h *Handler) ListSportsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.UserID) == "" {
			return errorResult("user_id is required"), nil, nil
		}
		list, err := h.service.ListSports(ctx, in.UserID)
		if err != nil {
			return errorResult("Error listing sports: " + describe(err)), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// GetSportRecordsTool returns the MCP tool handler for get_sport_records.
func (h *Handler) GetSportRecordsTool() func(context.Context, *mcp.CallToolRequest, SportInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SportInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.SportID) == "" {
			return errorResult("sport_id is required"), nil, nil
		}
		records, err := h.service.ListRecords(ctx, in.SportID)
		if err != nil {
			return errorResult("Error listing records: " + describe(err)), nil, nil
		}
		return jsonResult(records), nil, nil
	}
}

// describe hides store internals from the tool output.
func describe(err error) string {
	if errors.Is(err, sports.ErrNotFound) || errors.Is(err, sports.ErrInvalidInput) {
		return err.Error()
	}
	return "internal error"
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
