package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/thiagovelsa/jurisdesk/internal/dbclient"
)

func (s *Server) registerDatabaseTools() {
	s.mcp.AddTool(mcp.NewTool("query_database",
		mcp.WithDescription("Run a read-only SQL query against a database. Write statements (INSERT/UPDATE/DELETE/DDL) are rejected."),
		mcp.WithString("db", mcp.Description("Database to query: a sqlite file name from list_databases, or a full URL (sqlite:..., mysql://..., postgres://...)"), mcp.Required()),
		mcp.WithString("query", mcp.Description("SQL query to execute"), mcp.Required()),
	), s.handleQueryDatabase)

	s.mcp.AddTool(mcp.NewTool("list_databases",
		mcp.WithDescription("List the SQLite database files stored by the app"),
	), s.handleListDatabases)
}

func (s *Server) handleQueryDatabase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	db, _ := args["db"].(string)
	query, _ := args["query"].(string)

	if db == "" || query == "" {
		return nil, fmt.Errorf("db and query are required")
	}
	if !dbclient.IsReadQuery(query) {
		return nil, fmt.Errorf("only read queries are allowed here; write statements must go through the app")
	}

	dbURL := resolveDatabaseURL(db)
	if _, err := s.sql.Load(ctx, dbURL); err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	rows, err := s.sql.Select(ctx, dbURL, query, nil)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return jsonResult(rows)
}

func (s *Server) handleListDatabases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type databaseInfo struct {
		Name      string `json:"name"`
		SizeBytes int64  `json:"sizeBytes"`
		Loaded    bool   `json:"loaded"`
	}

	loaded := make(map[string]bool)
	for _, u := range s.sql.Loaded() {
		loaded[u] = true
	}

	databases := []databaseInfo{}
	entries, err := os.ReadDir(s.databasesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return jsonResult(databases)
		}
		return nil, fmt.Errorf("read databases dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		databases = append(databases, databaseInfo{
			Name:      entry.Name(),
			SizeBytes: info.Size(),
			Loaded:    loaded["sqlite:"+entry.Name()],
		})
	}
	return jsonResult(databases)
}

// resolveDatabaseURL turns a bare sqlite file name into a database URL.
// Anything that already carries a scheme passes through unchanged.
func resolveDatabaseURL(db string) string {
	if strings.Contains(db, ":") {
		return db
	}
	return "sqlite:" + db
}
