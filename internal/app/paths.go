package app

import (
	"os"
	"path/filepath"
)

// dataRoot returns the per-user data directory. The directories under
// it are created on demand by the storage and service layers.
func dataRoot() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "jurisdesk")
}

// documentsDir is where matter documents live; the FS surface resolves
// relative paths against it.
func documentsDir() string {
	return filepath.Join(dataRoot(), "documents")
}

// databasesDir is where relative sqlite: URLs land.
func databasesDir() string {
	return filepath.Join(dataRoot(), "databases")
}

// LogFile returns the app log path, creating the logs directory.
func LogFile() string {
	dir := filepath.Join(dataRoot(), "logs")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jurisdesk.log")
}
