package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("review_deadlines",
		mcp.WithPromptDescription("Review upcoming and overdue reminders and propose follow-ups"),
		mcp.WithArgument("horizon",
			mcp.ArgumentDescription("How far ahead to look (e.g. \"7 days\")"),
			mcp.RequiredArgument(),
		),
	), s.handleReviewDeadlinesPrompt)
}

func (s *Server) handleReviewDeadlinesPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	horizon := req.Params.Arguments["horizon"]
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Review deadlines over the next %s", horizon),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Review my deadlines for the next %s. Follow these steps:

1. Use list_reminders to fetch every reminder
2. Flag anything overdue: dueAt in the past with no firedAt
3. Flag anything due within the next %s, soonest first
4. Where a deadline clearly needs preparation (filings, hearings), use create_reminder to add a prep reminder a few days ahead of it
5. Finish with a short summary: overdue items, upcoming items, and the prep reminders you created

Keep the summary factual; do not invent deadlines that are not in the reminder list.`, horizon, horizon),
				},
			},
		},
	}, nil
}
