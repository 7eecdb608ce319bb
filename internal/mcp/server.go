package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only sportlog tools: user profile, sports, sport records.
// Used by cmd/sportlog_mcp over stdio and by the main backend mounted at /mcp.
func NewServer(service sportsReader) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "sportlog-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user_profile",
		Description: "Returns the dashboard profile of a user: name, avatar, weekly message and, per sport, the best record, the most recent record and the full history newest first. Arg: user_id (UUID).",
	}, h.GetUserProfileTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_sports",
		Description: "Returns the sports a user tracks (id, name, image), oldest first. Arg: user_id (UUID). Use it to find a sport_id for get_sport_records.",
	}, h.ListSportsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_sport_records",
		Description: "Returns all records of one sport (value, unit, display date, timestamp in ms, tags, images), newest first. Arg: sport_id (UUID).",
	}, h.GetSportRecordsTool())

	return s
}
