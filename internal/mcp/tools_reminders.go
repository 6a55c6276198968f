package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/thiagovelsa/jurisdesk/internal/service"
)

func (s *Server) registerReminderTools() {
	s.mcp.AddTool(mcp.NewTool("list_reminders",
		mcp.WithDescription("List all reminders with their due times and firing state"),
	), s.handleListReminders)

	s.mcp.AddTool(mcp.NewTool("create_reminder",
		mcp.WithDescription("Create a reminder. It fires a desktop notification when due."),
		mcp.WithString("title", mcp.Description("Reminder title"), mcp.Required()),
		mcp.WithString("body", mcp.Description("Reminder body text")),
		mcp.WithString("dueAt", mcp.Description("Due time in RFC3339 format, e.g. 2026-09-01T09:00:00Z"), mcp.Required()),
		mcp.WithString("repeat", mcp.Description("Cron expression for recurring reminders (e.g. \"0 9 * * MON\"); empty for one-shot")),
	), s.handleCreateReminder)
}

func (s *Server) handleListReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reminders, err := s.reminders.List()
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return jsonResult(reminders)
}

func (s *Server) handleCreateReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	title, _ := args["title"].(string)
	body, _ := args["body"].(string)
	dueAtStr, _ := args["dueAt"].(string)
	repeat, _ := args["repeat"].(string)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if dueAtStr == "" {
		return nil, fmt.Errorf("dueAt is required")
	}
	dueAt, err := time.Parse(time.RFC3339, dueAtStr)
	if err != nil {
		return nil, fmt.Errorf("parse dueAt: %w", err)
	}

	reminder, err := s.reminders.Create(ctx, service.CreateReminderInput{
		Title:   title,
		Body:    body,
		DueAt:   dueAt,
		Repeat:  repeat,
		Enabled: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	s.emitter.Emit(ctx, "mcp:reminders-changed", map[string]string{"id": reminder.ID})
	return jsonResult(reminder)
}
