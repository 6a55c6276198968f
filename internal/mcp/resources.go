package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── jurisdesk://reminders ──────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"jurisdesk://reminders",
		"All Reminders",
		mcp.WithMIMEType("application/json"),
	), s.handleRemindersResource)
}

func (s *Server) handleRemindersResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	reminders, err := s.reminders.List()
	if err != nil {
		return nil, err
	}

	data, _ := json.MarshalIndent(reminders, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "jurisdesk://reminders",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
