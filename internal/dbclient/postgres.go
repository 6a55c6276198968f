package dbclient

import (
	"fmt"

	"github.com/lib/pq"
)

// buildPostgresDSN converts a postgres:// URL into the keyword/value
// connection string lib/pq uses. Parsing up front surfaces malformed
// URLs at load time instead of on first query.
func buildPostgresDSN(dbURL string) (string, error) {
	dsn, err := pq.ParseURL(dbURL)
	if err != nil {
		return "", fmt.Errorf("parse postgres url: %w", err)
	}
	return dsn, nil
}
