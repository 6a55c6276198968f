package mcpserver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/thiagovelsa/jurisdesk/internal/service"
	"github.com/thiagovelsa/jurisdesk/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *service.MockEmitter) {
	t.Helper()
	root := t.TempDir()
	documentsDir := filepath.Join(root, "documents")
	databasesDir := filepath.Join(root, "databases")

	db, err := storage.New(filepath.Join(root, "jurisdesk.db"), documentsDir)
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	emitter := &service.MockEmitter{}
	notify := service.NewNotifyService(&service.MockNotifier{}, emitter)
	reminders := service.NewReminderService(storage.NewReminderStore(db), notify, emitter)
	t.Cleanup(reminders.Stop)

	sqlSvc := service.NewSQLService(databasesDir)
	t.Cleanup(sqlSvc.CloseAll)

	fsSvc, err := service.NewFSService(documentsDir, emitter)
	if err != nil {
		t.Fatalf("NewFSService failed: %v", err)
	}
	t.Cleanup(func() { fsSvc.Close() })

	s := New(Deps{
		Emitter:      emitter,
		Reminders:    reminders,
		SQL:          sqlSvc,
		FS:           fsSvc,
		DocumentsDir: documentsDir,
		DatabasesDir: databasesDir,
	})
	return s, emitter
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return tc.Text
}

func TestResolveDatabaseURL(t *testing.T) {
	cases := map[string]string{
		"matters.db":          "sqlite:matters.db",
		"sqlite:matters.db":   "sqlite:matters.db",
		"mysql://u:p@h/name":  "mysql://u:p@h/name",
		"postgres://h/matter": "postgres://h/matter",
	}
	for in, want := range cases {
		if got := resolveDatabaseURL(in); got != want {
			t.Errorf("resolveDatabaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQueryDatabaseRejectsWrites(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	for _, query := range []string{
		"DELETE FROM matters",
		"INSERT INTO matters (name) VALUES ('x')",
		"DROP TABLE matters",
	} {
		_, err := s.handleQueryDatabase(ctx, toolRequest(map[string]any{
			"db":    "matters.db",
			"query": query,
		}))
		if err == nil {
			t.Fatalf("expected %q to be rejected", query)
		}
		if !strings.Contains(err.Error(), "read") {
			t.Fatalf("unexpected rejection message: %v", err)
		}
	}
}

func TestQueryDatabaseRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	if _, err := s.sql.Load(ctx, "sqlite:matters.db"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := s.sql.Execute(ctx, "sqlite:matters.db",
		`CREATE TABLE matters (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`, nil); err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	if _, err := s.sql.Execute(ctx, "sqlite:matters.db",
		`INSERT INTO matters (name) VALUES ('Albers v. Crane')`, nil); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	res, err := s.handleQueryDatabase(ctx, toolRequest(map[string]any{
		"db":    "matters.db",
		"query": "SELECT name FROM matters",
	}))
	if err != nil {
		t.Fatalf("query_database failed: %v", err)
	}
	if text := resultText(t, res); !strings.Contains(text, "Albers v. Crane") {
		t.Fatalf("expected query result to contain the row, got: %s", text)
	}

	listRes, err := s.handleListDatabases(ctx, toolRequest(nil))
	if err != nil {
		t.Fatalf("list_databases failed: %v", err)
	}
	text := resultText(t, listRes)
	if !strings.Contains(text, `"name": "matters.db"`) {
		t.Fatalf("expected matters.db in listing, got: %s", text)
	}
	if !strings.Contains(text, `"loaded": true`) {
		t.Fatalf("expected matters.db to show as loaded, got: %s", text)
	}
}

func TestReadDocumentRejectsEscapingPaths(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	for _, path := range []string{"../outside.txt", "/etc/passwd", "a/../../b"} {
		_, err := s.handleReadDocument(ctx, toolRequest(map[string]any{"path": path}))
		if err == nil {
			t.Fatalf("expected %q to be rejected", path)
		}
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	if err := s.fs.Mkdir("motions", true); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := s.fs.WriteTextFile("motions/brief.txt", "Motion to dismiss, draft 2"); err != nil {
		t.Fatalf("WriteTextFile failed: %v", err)
	}

	res, err := s.handleReadDocument(ctx, toolRequest(map[string]any{"path": "motions/brief.txt"}))
	if err != nil {
		t.Fatalf("read_document failed: %v", err)
	}
	if text := resultText(t, res); text != "Motion to dismiss, draft 2" {
		t.Fatalf("unexpected document contents: %s", text)
	}

	listRes, err := s.handleListDocuments(ctx, toolRequest(nil))
	if err != nil {
		t.Fatalf("list_documents failed: %v", err)
	}
	if text := resultText(t, listRes); !strings.Contains(text, filepath.Join("motions", "brief.txt")) {
		t.Fatalf("expected listing to contain the document, got: %s", text)
	}
}

func TestCreateAndListReminders(t *testing.T) {
	s, emitter := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleCreateReminder(ctx, toolRequest(map[string]any{
		"title": "File answer",
		"dueAt": "not-a-time",
	}))
	if err == nil {
		t.Fatal("expected invalid dueAt to be rejected")
	}

	dueAt := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	res, err := s.handleCreateReminder(ctx, toolRequest(map[string]any{
		"title": "File answer in Albers v. Crane",
		"body":  "Due at the clerk's office",
		"dueAt": dueAt,
	}))
	if err != nil {
		t.Fatalf("create_reminder failed: %v", err)
	}
	if text := resultText(t, res); !strings.Contains(text, "File answer in Albers v. Crane") {
		t.Fatalf("unexpected create result: %s", text)
	}

	var changed bool
	for _, e := range emitter.Events {
		if e.Event == "mcp:reminders-changed" {
			changed = true
		}
	}
	if !changed {
		t.Fatal("expected mcp:reminders-changed event")
	}

	listRes, err := s.handleListReminders(ctx, toolRequest(nil))
	if err != nil {
		t.Fatalf("list_reminders failed: %v", err)
	}
	if text := resultText(t, listRes); !strings.Contains(text, "File answer in Albers v. Crane") {
		t.Fatalf("expected reminder in listing, got: %s", text)
	}
}
