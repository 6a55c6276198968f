package app

import "github.com/thiagovelsa/jurisdesk/internal/service"

// The FS bindings resolve relative paths under the documents directory;
// absolute paths pass through untouched.

// FSReadTextFile returns a file's contents as UTF-8 text.
func (a *App) FSReadTextFile(path string) (string, error) {
	return a.fs.ReadTextFile(path)
}

// FSWriteTextFile writes text to a file, replacing its contents.
func (a *App) FSWriteTextFile(path, contents string) error {
	return a.fs.WriteTextFile(path, contents)
}

// FSAppendTextFile appends text to a file, creating it if missing.
func (a *App) FSAppendTextFile(path, contents string) error {
	return a.fs.AppendTextFile(path, contents)
}

// FSReadFile returns a file's contents base64-encoded.
func (a *App) FSReadFile(path string) (string, error) {
	return a.fs.ReadFile(path)
}

// FSWriteFile decodes base64 data and writes it to a file.
func (a *App) FSWriteFile(path, data string) error {
	return a.fs.WriteFile(path, data)
}

// FSExists reports whether a file or directory exists.
func (a *App) FSExists(path string) (bool, error) {
	return a.fs.Exists(path)
}

// FSStat returns metadata for a file or directory.
func (a *App) FSStat(path string) (*service.FileInfo, error) {
	return a.fs.Stat(path)
}

// FSMkdir creates a directory, with parents when recursive.
func (a *App) FSMkdir(path string, recursive bool) error {
	return a.fs.Mkdir(path, recursive)
}

// FSRemove deletes a file or directory.
func (a *App) FSRemove(path string, recursive bool) error {
	return a.fs.Remove(path, recursive)
}

// FSRename moves a file or directory.
func (a *App) FSRename(oldPath, newPath string) error {
	return a.fs.Rename(oldPath, newPath)
}

// FSCopyFile copies a file.
func (a *App) FSCopyFile(srcPath, dstPath string) error {
	return a.fs.CopyFile(srcPath, dstPath)
}

// FSReadDir lists a directory.
func (a *App) FSReadDir(path string) ([]service.DirEntry, error) {
	return a.fs.ReadDir(path)
}

// FSWatch starts watching a file or directory and returns a watch
// handle. Changes arrive as "fs:change" events carrying the handle.
func (a *App) FSWatch(path string, recursive bool) (string, error) {
	return a.fs.Watch(path, recursive)
}

// FSUnwatch stops the watch with the given handle.
func (a *App) FSUnwatch(id string) {
	a.fs.Unwatch(id)
}

// AppDataDir returns the app's per-user data directory.
func (a *App) AppDataDir() string {
	return dataRoot()
}

// DocumentsDir returns the directory matter documents live in.
func (a *App) DocumentsDir() string {
	return documentsDir()
}
