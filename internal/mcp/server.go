package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thiagovelsa/jurisdesk/internal/service"
)

// EventEmitter allows tool handlers to notify the frontend.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// Server is the MCP server for JurisDesk.
// It exposes tools, resources, and prompts so AI agents can read matter
// documents, query attached databases, and manage reminders. The tool
// surface is read-only apart from create_reminder; there are no
// destructive tools.
type Server struct {
	mcp     *server.MCPServer
	emitter EventEmitter

	// Services (injected from app layer)
	reminders *service.ReminderService
	sql       *service.SQLService
	fs        *service.FSService

	documentsDir string
	databasesDir string
}

// Deps holds all dependencies passed from the App layer to the MCP server.
type Deps struct {
	Emitter      EventEmitter
	Reminders    *service.ReminderService
	SQL          *service.SQLService
	FS           *service.FSService
	DocumentsDir string
	DatabasesDir string
}

// New creates and configures a new MCP server with all tools and resources.
func New(deps Deps) *Server {
	s := &Server{
		emitter:      deps.Emitter,
		reminders:    deps.Reminders,
		sql:          deps.SQL,
		fs:           deps.FS,
		documentsDir: deps.DocumentsDir,
		databasesDir: deps.DatabasesDir,
	}

	s.mcp = server.NewMCPServer(
		"jurisdesk-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerDatabaseTools()
	s.registerDocumentTools()
	s.registerReminderTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}
