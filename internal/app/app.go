package app

import (
	"context"
	"path/filepath"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/thiagovelsa/jurisdesk/internal/secret"
	"github.com/thiagovelsa/jurisdesk/internal/service"
	"github.com/thiagovelsa/jurisdesk/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	db     *storage.DB
	window *service.WindowSettingsService

	secrets   *service.SecretService
	sql       *service.SQLService
	fs        *service.FSService
	notify    *service.NotifyService
	reminders *service.ReminderService
}

// New creates a new App.
func New() *App {
	return &App{}
}

// wailsEmitter forwards service events to the frontend. It pins the
// Wails context from Startup; the per-call ctx is not guaranteed to
// carry the Wails runtime state (watch goroutines pass Background).
type wailsEmitter struct {
	ctx context.Context
}

func (e *wailsEmitter) Emit(_ context.Context, event string, data any) {
	wailsRuntime.EventsEmit(e.ctx, event, data)
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	root := dataRoot()
	db, err := storage.New(filepath.Join(root, "jurisdesk.db"), documentsDir())
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.db = db

	emitter := &wailsEmitter{ctx: ctx}

	a.secrets = service.NewSecretService(secret.NewKeyringStore())
	a.sql = service.NewSQLService(databasesDir())
	a.notify = service.NewNotifyService(service.BeeepNotifier{}, emitter)
	a.reminders = service.NewReminderService(storage.NewReminderStore(db), a.notify, emitter)
	a.window = service.NewWindowSettingsService(db)

	fsSvc, err := service.NewFSService(db.DataDir(), emitter)
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to start file service: %v", err)
		return
	}
	a.fs = fsSvc

	a.restoreWindowState()
	a.reminders.RestartScheduler(ctx)
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.reminders != nil {
		a.reminders.Stop()
	}
	if a.fs != nil {
		a.fs.Close()
	}
	if a.sql != nil {
		a.sql.CloseAll()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// OnBeforeClose persists window geometry before the window closes.
// Returning false lets the close proceed.
func (a *App) OnBeforeClose(ctx context.Context) bool {
	a.saveWindowState(ctx)
	return false
}
