package app

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// restoreWindowState applies the persisted window geometry on startup.
func (a *App) restoreWindowState() {
	state := a.window.LoadWindowState()
	if state.Maximised {
		wailsRuntime.WindowMaximise(a.ctx)
		return
	}
	wailsRuntime.WindowSetSize(a.ctx, state.Width, state.Height)
}

// saveWindowState persists the current window geometry.
func (a *App) saveWindowState(ctx context.Context) {
	if a.window == nil {
		return
	}
	maximised := wailsRuntime.WindowIsMaximised(ctx)
	width, height := wailsRuntime.WindowGetSize(ctx)
	if maximised {
		// Keep the last normal size; the maximised dimensions would
		// replace it otherwise.
		state := a.window.LoadWindowState()
		width, height = state.Width, state.Height
	}
	if err := a.window.SaveWindowState(width, height, maximised); err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to save window state: %v", err)
	}
}
