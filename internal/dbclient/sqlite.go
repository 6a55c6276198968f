package dbclient

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// sqliteDSN resolves a "sqlite:" URL to a driver DSN. Relative paths
// land under baseDir so the frontend can address its databases by bare
// file name. Attached files open in WAL mode with a busy timeout,
// matching the app's own store.
func sqliteDSN(dbURL, baseDir string) (string, error) {
	path := strings.TrimPrefix(dbURL, "sqlite:")
	path = strings.TrimPrefix(path, "//")
	if path == "" {
		return "", fmt.Errorf("sqlite url %q has no path", dbURL)
	}
	if path != ":memory:" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("create sqlite directory: %w", err)
		}
	}
	return "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", nil
}
