package main

import (
	"embed"
	"fmt"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	jurisdeskApp "github.com/thiagovelsa/jurisdesk/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/appicon.png
var icon []byte

func main() {
	// jurisdesk --mcp serves MCP on stdio instead of opening a window.
	if len(os.Args) > 1 && os.Args[1] == "--mcp" {
		jurisdeskApp.ServeMCP()
		return
	}

	// Log panics before the process dies. SQLite runs in WAL mode and
	// needs no cleanup here.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic occurred: %v", r)
			panic(r)
		}
	}()

	app := jurisdeskApp.New()

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	err := wails.Run(&options.App{
		Title:     "JurisDesk",
		Width:     1280,
		Height:    800,
		MinWidth:  940,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour:   &options.RGBA{R: 250, G: 250, B: 250, A: 1},
		Menu:               appMenu,
		Logger:             logger.NewFileLogger(jurisdeskApp.LogFile()),
		LogLevel:           logger.INFO,
		LogLevelProduction: logger.ERROR,
		OnStartup:          app.Startup,
		OnShutdown:         app.Shutdown,
		OnBeforeClose:      app.OnBeforeClose,
		Bind: []interface{}{
			app,
		},
		Debug: options.Debug{
			OpenInspectorOnStartup: true,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   "JurisDesk",
				Message: "Matter tracking for small legal practices",
				Icon:    icon,
			},
		},
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start JurisDesk: %s\n", err)
		os.Exit(1)
	}
}
