package app

import wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

// FileFilter restricts a file dialog to matching files.
type FileFilter struct {
	DisplayName string `json:"displayName"`
	Pattern     string `json:"pattern"` // e.g. "*.pdf;*.docx"
}

// FileDialogOptions configures the native open/save dialogs.
type FileDialogOptions struct {
	Title            string       `json:"title"`
	DefaultDirectory string       `json:"defaultDirectory"`
	DefaultFilename  string       `json:"defaultFilename"`
	Filters          []FileFilter `json:"filters"`
}

func (o FileDialogOptions) filters() []wailsRuntime.FileFilter {
	filters := make([]wailsRuntime.FileFilter, len(o.Filters))
	for i, f := range o.Filters {
		filters[i] = wailsRuntime.FileFilter{DisplayName: f.DisplayName, Pattern: f.Pattern}
	}
	return filters
}

func (o FileDialogOptions) openOptions() wailsRuntime.OpenDialogOptions {
	return wailsRuntime.OpenDialogOptions{
		Title:            o.Title,
		DefaultDirectory: o.DefaultDirectory,
		DefaultFilename:  o.DefaultFilename,
		Filters:          o.filters(),
	}
}

func (o FileDialogOptions) saveOptions() wailsRuntime.SaveDialogOptions {
	return wailsRuntime.SaveDialogOptions{
		Title:            o.Title,
		DefaultDirectory: o.DefaultDirectory,
		DefaultFilename:  o.DefaultFilename,
		Filters:          o.filters(),
	}
}
