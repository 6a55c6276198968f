package app

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// OpenFileDialog shows the native file picker and returns the chosen
// path, or "" when cancelled.
func (a *App) OpenFileDialog(opts FileDialogOptions) (string, error) {
	return wailsRuntime.OpenFileDialog(a.ctx, opts.openOptions())
}

// OpenMultipleFilesDialog shows the native file picker allowing
// multiple selections.
func (a *App) OpenMultipleFilesDialog(opts FileDialogOptions) ([]string, error) {
	return wailsRuntime.OpenMultipleFilesDialog(a.ctx, opts.openOptions())
}

// OpenDirectoryDialog shows the native directory picker.
func (a *App) OpenDirectoryDialog(opts FileDialogOptions) (string, error) {
	return wailsRuntime.OpenDirectoryDialog(a.ctx, opts.openOptions())
}

// SaveFileDialog shows the native save dialog and returns the chosen
// path, or "" when cancelled.
func (a *App) SaveFileDialog(opts FileDialogOptions) (string, error) {
	return wailsRuntime.SaveFileDialog(a.ctx, opts.saveOptions())
}

// ShowMessage shows an informational dialog.
func (a *App) ShowMessage(title, message string) error {
	_, err := wailsRuntime.MessageDialog(a.ctx, wailsRuntime.MessageDialogOptions{
		Type:    wailsRuntime.InfoDialog,
		Title:   title,
		Message: message,
	})
	return err
}

// ShowWarning shows a warning dialog.
func (a *App) ShowWarning(title, message string) error {
	_, err := wailsRuntime.MessageDialog(a.ctx, wailsRuntime.MessageDialogOptions{
		Type:    wailsRuntime.WarningDialog,
		Title:   title,
		Message: message,
	})
	return err
}

// ShowError shows an error dialog.
func (a *App) ShowError(title, message string) error {
	_, err := wailsRuntime.MessageDialog(a.ctx, wailsRuntime.MessageDialogOptions{
		Type:    wailsRuntime.ErrorDialog,
		Title:   title,
		Message: message,
	})
	return err
}

// Ask shows a yes/no question dialog and reports the answer.
func (a *App) Ask(title, message string) (bool, error) {
	result, err := wailsRuntime.MessageDialog(a.ctx, wailsRuntime.MessageDialogOptions{
		Type:          wailsRuntime.QuestionDialog,
		Title:         title,
		Message:       message,
		Buttons:       []string{"Yes", "No"},
		DefaultButton: "Yes",
		CancelButton:  "No",
	})
	if err != nil {
		return false, err
	}
	return result == "Yes", nil
}
