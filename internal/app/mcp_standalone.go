package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mcpserver "github.com/thiagovelsa/jurisdesk/internal/mcp"
	"github.com/thiagovelsa/jurisdesk/internal/service"
	"github.com/thiagovelsa/jurisdesk/internal/storage"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no GUI.
// It initializes storage and services and serves until stdin closes or the
// process is interrupted.
func ServeMCP() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := dataRoot()
	db, err := storage.New(filepath.Join(root, "jurisdesk.db"), documentsDir())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	emitter := noopEmitter{}

	notify := service.NewNotifyService(service.BeeepNotifier{}, emitter)
	reminders := service.NewReminderService(storage.NewReminderStore(db), notify, emitter)
	defer reminders.Stop()

	sqlSvc := service.NewSQLService(databasesDir())
	defer sqlSvc.CloseAll()

	fsSvc, err := service.NewFSService(db.DataDir(), emitter)
	if err != nil {
		log.Fatalf("Failed to start file service: %v", err)
	}
	defer fsSvc.Close()

	// Reminders keep firing while the MCP server runs.
	reminders.RestartScheduler(ctx)

	mcpSrv := mcpserver.New(mcpserver.Deps{
		Emitter:      emitter,
		Reminders:    reminders,
		SQL:          sqlSvc,
		FS:           fsSvc,
		DocumentsDir: documentsDir(),
		DatabasesDir: databasesDir(),
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
